package modulation

import (
	"github.com/justyntemme/phasor/pkg/dsp"
	"github.com/justyntemme/phasor/pkg/dsp/phase"
)

// FM is a frequency policy: a base rate deviated by a modulation source.
// With the source at ±1 the frequency swings by ±deviation Hz.
type FM[M Source] struct {
	base      phase.Phase
	deviation float64 // cycles per sample at full scale
	mod       M
}

// NewFM returns an FM policy around baseHz.
func NewFM[M Source](baseHz, deviationHz, sampleRate float64, mod M) FM[M] {
	return FM[M]{
		base:      phase.FromFrequency(baseHz, sampleRate),
		deviation: deviationHz / sampleRate,
		mod:       mod,
	}
}

// Value returns the modulated rate.
func (f FM[M]) Value() phase.Phase {
	return f.base + phase.FromFloat(f.deviation*f.mod.Value())
}

// Base returns the unmodulated rate.
func (f FM[M]) Base() phase.Phase {
	return f.base
}

// PM is a shift policy: a phase offset proportional to a modulation source.
type PM[M Source] struct {
	index float64 // cycles at full scale
	mod   M
}

// NewPM returns a PM policy with a peak deviation of index radians.
func NewPM[M Source](index float64, mod M) PM[M] {
	return PM[M]{index: index / dsp.TwoPi, mod: mod}
}

// Value returns the current phase offset.
func (p PM[M]) Value() phase.Phase {
	return phase.FromFloat(p.index * p.mod.Value())
}
