// Package synth renders single oscillator voices: a phase accumulator, a
// waveform, an amplitude envelope and optional vibrato and phase modulation.
package synth

import (
	"errors"
	"fmt"
	"math"

	"github.com/justyntemme/phasor/pkg/dsp"
	"github.com/justyntemme/phasor/pkg/dsp/oscillator"
)

// Configuration errors, wrapped with the offending value by Validate.
var (
	ErrInvalidSampleRate = errors.New("invalid sample rate")
	ErrInvalidFrequency  = errors.New("invalid frequency")
	ErrInvalidDuration   = errors.New("invalid duration")
	ErrUnknownWaveform   = errors.New("unknown waveform")
	ErrInvalidLevel      = errors.New("invalid level")
	ErrInvalidPhase      = errors.New("invalid start phase")
	ErrInvalidEnvelope   = errors.New("invalid envelope")
	ErrInvalidModulation = errors.New("invalid modulation")
)

// Config describes one rendered note.
type Config struct {
	SampleRate float64 // samples per second
	Frequency  float64 // Hz
	Shape      oscillator.Shape
	PulseWidth float64 // 0-1, ShapePulse only
	Amplitude  float64 // 0-1
	Duration   float64 // seconds, including the release
	StartPhase float64 // radians

	// Envelope
	Attack       float64 // seconds
	Decay        float64 // seconds
	Sustain      float64 // level 0-1
	SustainDecay float64 // seconds, 0 holds
	Release      float64 // seconds

	// Vibrato (frequency modulation by an LFO)
	VibratoRate  float64 // Hz
	VibratoDepth float64 // peak deviation in Hz, 0 disables

	// Phase modulation by an audio-rate sine operator
	PMRatio float64 // modulator frequency as a multiple of Frequency
	PMIndex float64 // peak deviation in radians, 0 disables
}

// DefaultConfig returns a one second 440 Hz sine at 44.1 kHz.
func DefaultConfig() Config {
	return Config{
		SampleRate:  dsp.SampleRate44k1,
		Frequency:   dsp.TuningA4,
		Shape:       oscillator.ShapeSine,
		PulseWidth:  0.5,
		Amplitude:   0.8,
		Duration:    1.0,
		Attack:      0.01,
		Decay:       0.08,
		Sustain:     0.5,
		Release:     0.2,
		VibratoRate: 5.0,
		PMRatio:     1.0,
	}
}

// MaxSamples is the longest note Validate accepts, in samples.
const MaxSamples = math.MaxInt32

// Validate checks c and returns the first problem found. Comparisons are
// written so that NaN fails them.
func (c Config) Validate() error {
	if !(c.SampleRate > 0) || math.IsInf(c.SampleRate, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidSampleRate, c.SampleRate)
	}
	nyquist := dsp.Nyquist(c.SampleRate)
	if !(c.Frequency > 0) || c.Frequency >= nyquist {
		return fmt.Errorf("%w: %v Hz (must be between 0 and %v Hz)", ErrInvalidFrequency, c.Frequency, nyquist)
	}
	if !(c.Duration > 0) || !(math.Round(c.Duration*c.SampleRate) < MaxSamples) {
		return fmt.Errorf("%w: %v s (at most %d samples)", ErrInvalidDuration, c.Duration, MaxSamples)
	}
	if c.Shape.String() == "unknown" {
		return fmt.Errorf("%w: %d", ErrUnknownWaveform, c.Shape)
	}
	if c.Shape == oscillator.ShapePulse && !(c.PulseWidth > 0 && c.PulseWidth < 1) {
		return fmt.Errorf("%w: pulse width %v", ErrInvalidLevel, c.PulseWidth)
	}
	if !(c.Amplitude >= 0 && c.Amplitude <= 1) {
		return fmt.Errorf("%w: amplitude %v", ErrInvalidLevel, c.Amplitude)
	}
	if !finite(c.StartPhase) {
		return fmt.Errorf("%w: %v rad", ErrInvalidPhase, c.StartPhase)
	}
	for _, t := range []struct {
		name    string
		seconds float64
	}{
		{"attack", c.Attack},
		{"decay", c.Decay},
		{"release", c.Release},
		{"sustain decay", c.SustainDecay},
	} {
		if !(t.seconds >= 0) || math.IsInf(t.seconds, 0) {
			return fmt.Errorf("%w: %s time %v s", ErrInvalidEnvelope, t.name, t.seconds)
		}
	}
	if !(c.Sustain >= 0 && c.Sustain <= 1) {
		return fmt.Errorf("%w: sustain level %v", ErrInvalidEnvelope, c.Sustain)
	}
	if !(c.VibratoDepth >= 0) {
		return fmt.Errorf("%w: vibrato depth %v Hz", ErrInvalidModulation, c.VibratoDepth)
	}
	if c.VibratoDepth > 0 {
		if !(c.VibratoRate >= dsp.DefaultMinRate && c.VibratoRate <= dsp.DefaultMaxRate) {
			return fmt.Errorf("%w: vibrato rate %v Hz", ErrInvalidModulation, c.VibratoRate)
		}
		if c.Frequency+c.VibratoDepth >= nyquist || c.VibratoDepth >= c.Frequency {
			return fmt.Errorf("%w: vibrato depth %v Hz around %v Hz", ErrInvalidModulation, c.VibratoDepth, c.Frequency)
		}
	}
	if !(c.PMIndex >= 0) || math.IsInf(c.PMIndex, 0) {
		return fmt.Errorf("%w: PM index %v", ErrInvalidModulation, c.PMIndex)
	}
	if c.PMIndex > 0 && !(c.PMRatio > 0 && c.Frequency*c.PMRatio < nyquist) {
		return fmt.Errorf("%w: PM ratio %v", ErrInvalidModulation, c.PMRatio)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Samples returns the length of the note in samples.
func (c Config) Samples() int {
	return int(math.Round(c.Duration * c.SampleRate))
}

// HoldSamples returns the number of samples before note off. The release
// fits inside Duration when it can.
func (c Config) HoldSamples() int {
	samples := c.Samples()
	release := math.Round(c.Release * c.SampleRate)
	if !(release < float64(samples)) {
		return 0
	}
	return samples - int(release)
}
