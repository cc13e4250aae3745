package modulation

import (
	"github.com/justyntemme/phasor/pkg/dsp/oscillator"
	"github.com/justyntemme/phasor/pkg/dsp/phase"
)

// Source is a modulator whose current output can be read without advancing
// it. The owner advances the source once per sample, before the accumulator
// it modulates.
type Source interface {
	Value() float64
}

// Operator is an audio-rate sine modulator for FM and PM synthesis.
type Operator struct {
	acc   oscillator.Accumulator[oscillator.Const, oscillator.Const]
	level float64
	value float64
}

// NewOperator creates a sine operator at freq Hz with the given output level.
func NewOperator(freq, sampleRate, level float64) *Operator {
	return &Operator{
		acc:   oscillator.NewAccumulator(oscillator.Const(phase.FromFrequency(freq, sampleRate)), oscillator.Const(0)),
		level: level,
	}
}

// Process advances the operator one sample and returns its output
func (o *Operator) Process() float64 {
	o.value = o.level * float64(oscillator.Sine(o.acc.Next()))
	return o.value
}

// Value returns the most recent output of Process
func (o *Operator) Value() float64 {
	return o.value
}

// SetLevel sets the output level
func (o *Operator) SetLevel(level float64) {
	o.level = level
}

// Reset restarts the operator at phase zero
func (o *Operator) Reset() {
	o.acc.Reset()
	o.value = 0
}
