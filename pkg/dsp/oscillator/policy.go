package oscillator

import "github.com/justyntemme/phasor/pkg/dsp/phase"

// Policy supplies a phase value on demand. An accumulator asks its
// frequency policy for the per-sample rate and its shift policy for the
// phase offset, once per operation.
//
// Implementations run on the audio thread: Value must be O(1), must not
// block or allocate, and should return the same value when called twice
// without anything else changing. Modulated policies read the current value
// of a modulator that is advanced elsewhere.
type Policy interface {
	Value() phase.Phase
}

// Const is a fixed rate or offset.
type Const phase.Phase

// Value returns c.
func (c Const) Value() phase.Phase {
	return phase.Phase(c)
}

// Var is a rate or offset that can be changed between samples. It is used by
// pointer so that the owner and the accumulator see the same value.
type Var struct {
	v phase.Phase
}

// NewVar returns a Var holding p.
func NewVar(p phase.Phase) *Var {
	return &Var{v: p}
}

// Set replaces the held value.
func (v *Var) Set(p phase.Phase) {
	v.v = p
}

// Value returns the held value.
func (v *Var) Value() phase.Phase {
	return v.v
}

// Func adapts a plain function to a Policy.
type Func func() phase.Phase

// Value calls f.
func (f Func) Value() phase.Phase {
	return f()
}
