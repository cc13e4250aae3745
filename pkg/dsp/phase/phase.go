// Package phase provides the fixed-point phase representation used by the
// oscillators.
//
// A Phase is an unsigned 32-bit value where all the bits are fractional: the
// range 0..MaxUint32 maps onto one full cycle, 0 to 2π. Addition and
// subtraction are plain uint32 arithmetic, so overflow wraps past the end of
// the cycle exactly, with no drift and no saturation.
//
// Comparisons are ordinary unsigned comparisons on the encoded value. They
// do not measure circular distance; callers comparing phases across a wrap
// must account for it themselves.
package phase

import (
	"fmt"
	"math"

	"github.com/justyntemme/phasor/pkg/dsp"
)

// Phase is a point on the unit circle in 0.32 fixed point.
// It is also used for rates (phase advance per sample) and offsets.
type Phase uint32

// scale is one full cycle in encoding units.
const scale = 1 << 32

// Landmark phases.
const (
	Zero         Phase = 0
	Quarter      Phase = 1 << 30
	Half         Phase = 1 << 31
	ThreeQuarter Phase = 3 << 30
	Max          Phase = math.MaxUint32
)

// FromFloat encodes a fraction of a cycle. Values outside [0, 1) are wrapped
// into it first, so 1.25 and -0.75 both encode a quarter cycle. The result is
// rounded to the nearest encoding unit.
//
// NaN and infinite inputs have no meaningful encoding and are not checked.
func FromFloat(frac float64) Phase {
	frac -= math.Floor(frac)
	// frac may round up to exactly one cycle; the uint64 to Phase
	// conversion truncates that back to zero.
	return Phase(uint64(math.Round(frac * scale)))
}

// FromFrequency returns the per-sample rate that advances freq cycles per
// second at the given sample rate.
//
// Frequencies at or above the sample rate alias according to the wrap rule.
func FromFrequency(freq, sampleRate float64) Phase {
	return FromFloat(freq / sampleRate)
}

// FromPeriod returns the per-sample rate that completes one cycle every
// period seconds.
func FromPeriod(period, sampleRate float64) Phase {
	return FromFloat(1 / (sampleRate * period))
}

// FromSamples returns the per-sample rate that completes one cycle every
// samples samples. Fractional periods are allowed.
func FromSamples(samples float64) Phase {
	return FromFloat(1 / samples)
}

// FromRadians encodes an angle. Any real angle is accepted and wrapped into
// [0, 2π) before encoding.
func FromRadians(angle float64) Phase {
	return FromFloat(angle / dsp.TwoPi)
}

// Float returns the phase as a fraction of a cycle in [0, 1).
func (p Phase) Float() float64 {
	return float64(p) / scale
}

// Radians returns the phase as an angle in [0, 2π).
func (p Phase) Radians() float64 {
	return p.Float() * dsp.TwoPi
}

// Frequency interprets p as a per-sample rate and returns it in Hz.
func (p Phase) Frequency(sampleRate float64) float64 {
	return p.Float() * sampleRate
}

// Distance returns the signed circular distance from q to p in encoding
// units, in the range [-2^31, 2^31).
func (p Phase) Distance(q Phase) int32 {
	return int32(p - q)
}

// String formats the phase as a fraction of a cycle and its raw encoding.
func (p Phase) String() string {
	return fmt.Sprintf("%.6f (0x%08x)", p.Float(), uint32(p))
}
