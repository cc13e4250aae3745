package oscillator

import (
	"math"
	"testing"

	"github.com/justyntemme/phasor/pkg/dsp/phase"
)

func TestWaveforms(t *testing.T) {
	testCases := []struct {
		name      string
		wave      WaveFunc
		phase     float64
		expected  float64
		tolerance float64
	}{
		{"sine at 0", Sine, 0.0, 0.0, 1e-5},
		{"sine at 0.25", Sine, 0.25, 1.0, 1e-5},
		{"sine at 0.5", Sine, 0.5, 0.0, 1e-5},
		{"sine at 0.75", Sine, 0.75, -1.0, 1e-5},

		{"triangle at 0", Triangle, 0.0, -1.0, 1e-6},
		{"triangle at 0.25", Triangle, 0.25, 0.0, 1e-6},
		{"triangle at 0.5", Triangle, 0.5, 1.0, 1e-6},
		{"triangle at 0.75", Triangle, 0.75, 0.0, 1e-6},

		{"square at 0", Square, 0.0, 1.0, 0},
		{"square at 0.25", Square, 0.25, 1.0, 0},
		{"square at 0.5", Square, 0.5, -1.0, 0},
		{"square at 0.75", Square, 0.75, -1.0, 0},

		{"saw at 0", Saw, 0.0, -1.0, 1e-6},
		{"saw at 0.25", Saw, 0.25, -0.5, 1e-6},
		{"saw at 0.5", Saw, 0.5, 0.0, 1e-6},
		{"saw at 0.75", Saw, 0.75, 0.5, 1e-6},

		{"pulse 25% at 0.2", PulseFunc(phase.Quarter), 0.2, 1.0, 0},
		{"pulse 25% at 0.3", PulseFunc(phase.Quarter), 0.3, -1.0, 0},
	}

	for _, tc := range testCases {
		got := float64(tc.wave(phase.FromFloat(tc.phase)))
		if math.Abs(got-tc.expected) > tc.tolerance {
			t.Errorf("%s: got %f, expected %f", tc.name, got, tc.expected)
		}
	}
}

func TestSineAccuracy(t *testing.T) {
	maxErr := 0.0
	for i := 0; i < 100000; i++ {
		p := phase.Phase(uint32(i) * 0x9E3779B9)
		want := math.Sin(p.Radians())
		got := float64(Sine(p))
		if err := math.Abs(got - want); err > maxErr {
			maxErr = err
		}
	}
	if maxErr > 1e-5 {
		t.Errorf("sine table max error %g, want <= 1e-5", maxErr)
	}
}

func TestWaveformRange(t *testing.T) {
	for _, shape := range []Shape{ShapeSine, ShapeSaw, ShapeSquare, ShapePulse, ShapeTriangle} {
		wave := shape.Func()
		for i := 0; i < 10000; i++ {
			v := wave(phase.Phase(uint32(i) * 0x01000193))
			if v < -1 || v > 1 {
				t.Fatalf("%v: sample %f out of range", shape, v)
			}
		}
	}
}

func TestParseShape(t *testing.T) {
	for _, shape := range []Shape{ShapeSine, ShapeSaw, ShapeSquare, ShapePulse, ShapeTriangle} {
		got, err := ParseShape(shape.String())
		if err != nil {
			t.Errorf("ParseShape(%q): %v", shape.String(), err)
			continue
		}
		if got != shape {
			t.Errorf("ParseShape(%q): got %v", shape.String(), got)
		}
	}

	if got, err := ParseShape(" Tri "); err != nil || got != ShapeTriangle {
		t.Errorf("ParseShape alias: got %v, %v", got, err)
	}
	if _, err := ParseShape("wobble"); err == nil {
		t.Error("ParseShape should reject unknown names")
	}
	if Shape(42).String() != "unknown" {
		t.Errorf("unknown shape string: %q", Shape(42).String())
	}
}
