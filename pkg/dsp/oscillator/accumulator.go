package oscillator

import "github.com/justyntemme/phasor/pkg/dsp/phase"

// Accumulator is a phase accumulator. Every sample it adds the rate given by
// its frequency policy to a running phase, and reports that phase offset by
// its shift policy.
//
// The policies are type parameters rather than interface values so that a
// concrete Accumulator calls them directly. An Accumulator owns its phase
// and is not safe for concurrent use; one voice on one audio thread is the
// expected arrangement.
type Accumulator[F, S Policy] struct {
	freq  F
	shift S
	phase phase.Phase
}

// NewAccumulator returns an accumulator at phase zero.
func NewAccumulator[F, S Policy](freq F, shift S) Accumulator[F, S] {
	return Accumulator[F, S]{freq: freq, shift: shift}
}

// Next returns the phase to render for this sample and steps to the next
// one. The returned value is the shift added to the phase as it was before
// the step; the step itself does not depend on the shift.
func (a *Accumulator[F, S]) Next() phase.Phase {
	prev := a.phase
	a.phase += a.freq.Value()
	return a.shift.Value() + prev
}

// Get returns the shifted current phase without stepping.
func (a *Accumulator[F, S]) Get() phase.Phase {
	return a.shift.Value() + a.phase
}

// IsStart reports whether the last step wrapped past the end of a cycle.
// It is also true right after construction or Reset. The test is exact as
// long as the rate stays below one cycle per sample.
func (a *Accumulator[F, S]) IsStart() bool {
	return a.phase < a.freq.Value()
}

// Phase returns the stored phase, without the shift.
func (a *Accumulator[F, S]) Phase() phase.Phase {
	return a.phase
}

// SetPhase moves the stored phase.
func (a *Accumulator[F, S]) SetPhase(p phase.Phase) {
	a.phase = p
}

// Reset returns the stored phase to zero (hard sync).
func (a *Accumulator[F, S]) Reset() {
	a.phase = 0
}

// Freq returns the frequency policy.
func (a *Accumulator[F, S]) Freq() F {
	return a.freq
}

// Shift returns the shift policy.
func (a *Accumulator[F, S]) Shift() S {
	return a.shift
}

// Render fills buffer with wave evaluated once per sample. No allocations.
func Render[F, S Policy](a *Accumulator[F, S], wave WaveFunc, buffer []float32) {
	for i := range buffer {
		buffer[i] = wave(a.Next())
	}
}
