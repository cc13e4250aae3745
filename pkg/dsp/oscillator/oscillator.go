// Package oscillator provides fixed-point phase accumulators and the audio
// oscillators built on them.
package oscillator

import "github.com/justyntemme/phasor/pkg/dsp/phase"

// Oscillator is a sample-rate aware accumulator with a settable frequency
// and no phase modulation.
type Oscillator struct {
	sampleRate float64
	frequency  float64
	rate       Var
	acc        Accumulator[*Var, Const]
}

// New creates a new oscillator at 440 Hz
func New(sampleRate float64) *Oscillator {
	o := &Oscillator{sampleRate: sampleRate}
	o.acc = NewAccumulator[*Var, Const](&o.rate, 0)
	o.SetFrequency(440.0)
	return o
}

// SetFrequency sets the oscillator frequency in Hz
func (o *Oscillator) SetFrequency(freq float64) {
	o.frequency = freq
	o.rate.Set(phase.FromFrequency(freq, o.sampleRate))
}

// SetPeriod sets the frequency from a period in seconds
func (o *Oscillator) SetPeriod(seconds float64) {
	o.frequency = 1.0 / seconds
	o.rate.Set(phase.FromPeriod(seconds, o.sampleRate))
}

// Frequency returns the frequency in Hz
func (o *Oscillator) Frequency() float64 {
	return o.frequency
}

// Rate returns the per-sample phase increment
func (o *Oscillator) Rate() phase.Phase {
	return o.rate.Value()
}

// SetPhase sets the oscillator phase in radians
func (o *Oscillator) SetPhase(radians float64) {
	o.acc.SetPhase(phase.FromRadians(radians))
}

// Phase returns the current phase
func (o *Oscillator) Phase() phase.Phase {
	return o.acc.Phase()
}

// IsStart reports whether the oscillator has just begun a new cycle
func (o *Oscillator) IsStart() bool {
	return o.acc.IsStart()
}

// Reset resets the oscillator phase to 0
func (o *Oscillator) Reset() {
	o.acc.Reset()
}

// Next renders one sample of wave and advances the phase
func (o *Oscillator) Next(wave WaveFunc) float32 {
	return wave(o.acc.Next())
}

// Sine generates a sine wave sample
func (o *Oscillator) Sine() float32 {
	return Sine(o.acc.Next())
}

// Saw generates a sawtooth wave sample
func (o *Oscillator) Saw() float32 {
	return Saw(o.acc.Next())
}

// Square generates a square wave sample
func (o *Oscillator) Square() float32 {
	return Square(o.acc.Next())
}

// Pulse generates a pulse wave with variable width (0-1)
func (o *Oscillator) Pulse(width float64) float32 {
	return Pulse(o.acc.Next(), phase.FromFloat(width))
}

// Triangle generates a triangle wave sample
func (o *Oscillator) Triangle() float32 {
	return Triangle(o.acc.Next())
}

// Process fills buffer with the given wave - no allocations
func (o *Oscillator) Process(wave WaveFunc, buffer []float32) {
	Render(&o.acc, wave, buffer)
}

// ProcessSine fills buffer with sine wave - no allocations
func (o *Oscillator) ProcessSine(buffer []float32) {
	Render(&o.acc, Sine, buffer)
}

// ProcessSaw fills buffer with sawtooth wave - no allocations
func (o *Oscillator) ProcessSaw(buffer []float32) {
	Render(&o.acc, Saw, buffer)
}

// ProcessSquare fills buffer with square wave - no allocations
func (o *Oscillator) ProcessSquare(buffer []float32) {
	Render(&o.acc, Square, buffer)
}

// ProcessPulse fills buffer with pulse wave - no allocations
func (o *Oscillator) ProcessPulse(buffer []float32, width float64) {
	w := phase.FromFloat(width)
	for i := range buffer {
		buffer[i] = Pulse(o.acc.Next(), w)
	}
}

// ProcessTriangle fills buffer with triangle wave - no allocations
func (o *Oscillator) ProcessTriangle(buffer []float32) {
	Render(&o.acc, Triangle, buffer)
}
