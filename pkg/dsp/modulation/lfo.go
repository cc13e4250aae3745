// Package modulation provides modulation sources and the frequency and phase
// modulation policies that let them drive a phase accumulator.
package modulation

import (
	"math"

	"github.com/justyntemme/phasor/pkg/dsp"
	"github.com/justyntemme/phasor/pkg/dsp/oscillator"
	"github.com/justyntemme/phasor/pkg/dsp/phase"
)

// Waveform represents the LFO waveform shape
type Waveform int

const (
	// WaveformSine produces a sine wave
	WaveformSine Waveform = iota
	// WaveformTriangle produces a triangle wave
	WaveformTriangle
	// WaveformSquare produces a square wave
	WaveformSquare
	// WaveformSawtooth produces a sawtooth wave (ramp up)
	WaveformSawtooth
	// WaveformRandom produces random values (sample & hold noise)
	WaveformRandom
)

// LFO implements a Low Frequency Oscillator for modulation
type LFO struct {
	sampleRate float64

	// Parameters
	frequency float64  // Frequency in Hz
	waveform  Waveform // Waveform type
	depth     float64  // Modulation depth (0-1)
	offset    float64  // DC offset (-1 to 1)

	// Sync
	syncEnabled bool
	syncPhase   phase.Phase // Phase to reset to on sync

	rate oscillator.Var
	acc  oscillator.Accumulator[*oscillator.Var, oscillator.Const]

	// Last output, read by modulation policies
	value float64

	// For random waveform
	currentRandom float64
	randState     uint32
}

// NewLFO creates a new LFO
func NewLFO(sampleRate float64) *LFO {
	lfo := &LFO{
		sampleRate: sampleRate,
		waveform:   WaveformSine,
		depth:      1.0,
		randState:  1,
	}
	lfo.acc = oscillator.NewAccumulator[*oscillator.Var, oscillator.Const](&lfo.rate, 0)
	lfo.SetFrequency(1.0)
	return lfo
}

// SetFrequency sets the LFO frequency in Hz
func (l *LFO) SetFrequency(hz float64) {
	l.frequency = math.Max(dsp.DefaultMinRate, math.Min(dsp.DefaultMaxRate, hz)) // Limit to reasonable LFO range
	l.rate.Set(phase.FromFrequency(l.frequency, l.sampleRate))
}

// Frequency returns the LFO frequency in Hz
func (l *LFO) Frequency() float64 {
	return l.frequency
}

// SetWaveform sets the LFO waveform
func (l *LFO) SetWaveform(waveform Waveform) {
	l.waveform = waveform
}

// SetDepth sets the modulation depth (0-1)
func (l *LFO) SetDepth(depth float64) {
	l.depth = math.Max(0.0, math.Min(1.0, depth))
}

// SetOffset sets the DC offset (-1 to 1)
func (l *LFO) SetOffset(offset float64) {
	l.offset = math.Max(-1.0, math.Min(1.0, offset))
}

// SetPhase sets the current phase (0-1)
func (l *LFO) SetPhase(frac float64) {
	l.acc.SetPhase(phase.FromFloat(frac))
}

// EnableSync enables sync with configurable reset phase (0-1)
func (l *LFO) EnableSync(enabled bool, resetPhase float64) {
	l.syncEnabled = enabled
	l.syncPhase = phase.FromFloat(math.Max(0.0, math.Min(1.0, resetPhase)))
}

// Sync resets the LFO phase (for tempo sync or note retrigger)
func (l *LFO) Sync() {
	if l.syncEnabled {
		l.acc.SetPhase(l.syncPhase)
	}
}

// generateWaveform returns the raw waveform value at p
func (l *LFO) generateWaveform(p phase.Phase, start bool) float64 {
	switch l.waveform {
	case WaveformSine:
		return float64(oscillator.Sine(p))
	case WaveformTriangle:
		return float64(oscillator.Triangle(p))
	case WaveformSquare:
		return float64(oscillator.Square(p))
	case WaveformSawtooth:
		return float64(oscillator.Saw(p))
	case WaveformRandom:
		// A new value is held for each cycle
		if start {
			l.currentRandom = 2.0*l.randFloat() - 1.0
		}
		return l.currentRandom
	default:
		return 0.0
	}
}

// Process generates the next LFO sample
func (l *LFO) Process() float64 {
	start := l.acc.IsStart()
	wave := l.generateWaveform(l.acc.Next(), start)

	// Apply depth and offset, clamped to valid range
	output := wave*l.depth + l.offset
	l.value = math.Max(-1.0, math.Min(1.0, output))
	return l.value
}

// ProcessBuffer fills a buffer with LFO values
func (l *LFO) ProcessBuffer(output []float64) {
	for i := range output {
		output[i] = l.Process()
	}
}

// Value returns the most recent output of Process without advancing.
func (l *LFO) Value() float64 {
	return l.value
}

// GetPhase returns the current phase (0-1)
func (l *LFO) GetPhase() float64 {
	return l.acc.Phase().Float()
}

// Reset resets the LFO state
func (l *LFO) Reset() {
	l.acc.Reset()
	l.value = 0.0
	l.currentRandom = 0.0
}

// Seed sets the state of the random waveform generator
func (l *LFO) Seed(seed uint32) {
	l.randState = seed
}

// randFloat is a linear congruential generator in [0, 1)
func (l *LFO) randFloat() float64 {
	l.randState = l.randState*1664525 + 1013904223
	return float64(l.randState) / float64(1<<32)
}
