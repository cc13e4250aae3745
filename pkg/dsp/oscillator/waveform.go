package oscillator

import (
	"fmt"
	"math"
	"strings"

	"github.com/justyntemme/phasor/pkg/dsp/phase"
)

// WaveFunc maps a phase to a sample in [-1, 1]. Implementations must be pure.
type WaveFunc func(p phase.Phase) float32

// Shape identifies one of the built-in waveforms.
type Shape int

const (
	// ShapeSine produces a sine wave
	ShapeSine Shape = iota
	// ShapeSaw produces a rising sawtooth
	ShapeSaw
	// ShapeSquare produces a square wave
	ShapeSquare
	// ShapePulse produces a pulse wave with variable width
	ShapePulse
	// ShapeTriangle produces a triangle wave
	ShapeTriangle
)

// String returns the string representation of a Shape
func (s Shape) String() string {
	switch s {
	case ShapeSine:
		return "sine"
	case ShapeSaw:
		return "saw"
	case ShapeSquare:
		return "square"
	case ShapePulse:
		return "pulse"
	case ShapeTriangle:
		return "triangle"
	default:
		return "unknown"
	}
}

// ParseShape parses a waveform name as printed by Shape.String.
func ParseShape(str string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "sine", "sin":
		return ShapeSine, nil
	case "saw", "sawtooth":
		return ShapeSaw, nil
	case "square", "sqr":
		return ShapeSquare, nil
	case "pulse":
		return ShapePulse, nil
	case "triangle", "tri":
		return ShapeTriangle, nil
	}
	return 0, fmt.Errorf("unknown waveform: %s", str)
}

// Func returns the wave function for s. Pulse uses a 50% width; use
// PulseFunc for other widths.
func (s Shape) Func() WaveFunc {
	switch s {
	case ShapeSaw:
		return Saw
	case ShapeSquare:
		return Square
	case ShapePulse:
		return PulseFunc(phase.Half)
	case ShapeTriangle:
		return Triangle
	default:
		return Sine
	}
}

const (
	sineBits = 11
	sineSize = 1 << sineBits
	fracBits = 32 - sineBits
)

// sineTable holds one cycle plus a guard point for interpolation.
var sineTable [sineSize + 1]float32

func init() {
	for i := range sineTable {
		sineTable[i] = float32(math.Sin(2.0 * math.Pi * float64(i) / sineSize))
	}
}

// Sine returns sin(2π·p) from a lookup table with linear interpolation.
func Sine(p phase.Phase) float32 {
	idx := uint32(p) >> fracBits
	frac := float32(uint32(p)&(1<<fracBits-1)) * (1.0 / (1 << fracBits))
	a := sineTable[idx]
	b := sineTable[idx+1]
	return a + (b-a)*frac
}

// Saw ramps from -1 at phase zero up towards 1 at the end of the cycle.
func Saw(p phase.Phase) float32 {
	return float32(2.0*p.Float() - 1.0)
}

// Square is 1 for the first half of the cycle and -1 for the second.
func Square(p phase.Phase) float32 {
	if p < phase.Half {
		return 1.0
	}
	return -1.0
}

// Pulse is 1 while p is below width and -1 after.
func Pulse(p, width phase.Phase) float32 {
	if p < width {
		return 1.0
	}
	return -1.0
}

// PulseFunc binds a width to Pulse.
func PulseFunc(width phase.Phase) WaveFunc {
	return func(p phase.Phase) float32 {
		return Pulse(p, width)
	}
}

// Triangle rises from -1 to 1 over the first half of the cycle and falls
// back over the second.
func Triangle(p phase.Phase) float32 {
	x := p.Float()
	if x < 0.5 {
		return float32(4.0*x - 1.0)
	}
	return float32(3.0 - 4.0*x)
}
