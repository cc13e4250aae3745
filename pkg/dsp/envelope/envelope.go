// Package envelope provides envelope generators for audio synthesis
package envelope

import "math"

// Stage represents the current envelope stage
type Stage int

const (
	// StageIdle represents envelope idle state
	StageIdle Stage = iota
	// StageAttack represents envelope attack phase
	StageAttack
	// StageDecay represents envelope decay phase
	StageDecay
	// StageSustain represents envelope sustain phase
	StageSustain
	// StageRelease represents envelope release phase
	StageRelease
)

// String returns the string representation of a Stage
func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StageAttack:
		return "attack"
	case StageDecay:
		return "decay"
	case StageSustain:
		return "sustain"
	case StageRelease:
		return "release"
	default:
		return "unknown"
	}
}

const (
	minTime = 0.001 // 1ms
	// silence is the level at which the release stage ends
	silence = 1e-4
)

// ADSR is an attack-decay-sustain-release envelope. The attack is a linear
// ramp; decay, sustain and release are exponential. The sustain level can
// itself fade out slowly, like a plucked or struck note.
type ADSR struct {
	sampleRate float64

	// Parameters (seconds, except sustain which is a 0-1 level)
	attack       float64
	decay        float64
	sustain      float64
	sustainDecay float64 // 0 holds the sustain level indefinitely
	release      float64

	attackStep  float64
	decayCoef   float64
	sustainCoef float64
	releaseCoef float64

	stage Stage
	value float64
}

// New creates a new ADSR envelope
func New(sampleRate float64) *ADSR {
	env := &ADSR{
		sampleRate: sampleRate,
		attack:     0.01,
		decay:      0.1,
		sustain:    0.7,
		release:    0.3,
	}
	env.updateCoefficients()
	return env
}

// SetAttack sets the attack time in seconds
func (e *ADSR) SetAttack(seconds float64) {
	e.attack = math.Max(minTime, seconds)
	e.updateCoefficients()
}

// SetDecay sets the decay time constant in seconds
func (e *ADSR) SetDecay(seconds float64) {
	e.decay = math.Max(minTime, seconds)
	e.updateCoefficients()
}

// SetSustain sets the sustain level (0-1)
func (e *ADSR) SetSustain(level float64) {
	e.sustain = math.Max(0.0, math.Min(1.0, level))
}

// SetSustainDecay sets the time constant of the fade during sustain.
// Zero or less holds the sustain level.
func (e *ADSR) SetSustainDecay(seconds float64) {
	e.sustainDecay = math.Max(0, seconds)
	e.updateCoefficients()
}

// SetRelease sets the release time constant in seconds
func (e *ADSR) SetRelease(seconds float64) {
	e.release = math.Max(minTime, seconds)
	e.updateCoefficients()
}

// SetADSR sets all parameters at once
func (e *ADSR) SetADSR(attack, decay, sustain, release float64) {
	e.attack = math.Max(minTime, attack)
	e.decay = math.Max(minTime, decay)
	e.sustain = math.Max(0.0, math.Min(1.0, sustain))
	e.release = math.Max(minTime, release)
	e.updateCoefficients()
}

// updateCoefficients recalculates the per-sample steps
func (e *ADSR) updateCoefficients() {
	e.attackStep = 1.0 / (e.attack * e.sampleRate)
	e.decayCoef = calcCoef(e.decay, e.sampleRate)
	e.sustainCoef = calcCoef(e.sustainDecay, e.sampleRate)
	e.releaseCoef = calcCoef(e.release, e.sampleRate)
}

// calcCoef returns the per-sample multiplier of an exponential segment
func calcCoef(timeSeconds, sampleRate float64) float64 {
	if timeSeconds <= 0.0 {
		return 1.0
	}
	return math.Exp(-1.0 / (timeSeconds * sampleRate))
}

// Trigger starts the envelope (note on). The attack starts from the
// current level so a retrigger does not click.
func (e *ADSR) Trigger() {
	e.stage = StageAttack
}

// Release starts the release stage (note off)
func (e *ADSR) Release() {
	if e.stage != StageIdle {
		e.stage = StageRelease
	}
}

// Reset immediately returns the envelope to idle
func (e *ADSR) Reset() {
	e.stage = StageIdle
	e.value = 0.0
}

// Active returns true if the envelope is generating output
func (e *ADSR) Active() bool {
	return e.stage != StageIdle
}

// Stage returns the current envelope stage
func (e *ADSR) Stage() Stage {
	return e.stage
}

// Value returns the current level without advancing
func (e *ADSR) Value() float64 {
	return e.value
}

// Next generates the next envelope value
func (e *ADSR) Next() float32 {
	switch e.stage {
	case StageAttack:
		e.value += e.attackStep
		if e.value >= 1.0 {
			e.value = 1.0
			e.stage = StageDecay
		}

	case StageDecay:
		e.value = e.sustain + (e.value-e.sustain)*e.decayCoef
		if e.value-e.sustain <= 0.001 {
			e.value = e.sustain
			e.stage = StageSustain
		}

	case StageSustain:
		e.value *= e.sustainCoef

	case StageRelease:
		e.value *= e.releaseCoef
		if e.value <= silence {
			e.value = 0.0
			e.stage = StageIdle
		}

	case StageIdle:
		e.value = 0.0
	}

	return float32(e.value)
}

// Process fills buffer with envelope values - no allocations
func (e *ADSR) Process(buffer []float32) {
	for i := range buffer {
		buffer[i] = e.Next()
	}
}

// ProcessMultiply multiplies buffer by envelope - no allocations
func (e *ADSR) ProcessMultiply(buffer []float32) {
	for i := range buffer {
		buffer[i] *= e.Next()
	}
}
