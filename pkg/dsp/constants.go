// Package dsp provides digital signal processing utilities and algorithms.
package dsp

// Common audio constants used throughout the DSP packages.
const (
	// Phase constants
	TwoPi  = 6.283185307179586
	Pi     = 3.141592653589793
	HalfPi = 1.5707963267948966

	// Common sample rates
	SampleRate32k  = 32000.0
	SampleRate44k1 = 44100.0
	SampleRate48k  = 48000.0
	SampleRate88k2 = 88200.0
	SampleRate96k  = 96000.0
	SampleRate192k = 192000.0

	// Frequency ranges
	MinFrequency = 20.0    // 20 Hz
	MaxFrequency = 20000.0 // 20 kHz

	// LFO rate range
	DefaultMinRate = 0.01 // Hz
	DefaultMaxRate = 20.0 // Hz

	// Buffer sizes
	MinBufferSize     = 32
	DefaultBufferSize = 512
	MaxBufferSize     = 8192

	// Concert pitch
	TuningA4 = 440.0

	// Small values for comparisons
	Epsilon = 1e-6
)

// Nyquist returns the highest representable frequency for a sample rate.
func Nyquist(sampleRate float64) float64 {
	return sampleRate / 2
}
