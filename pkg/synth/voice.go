package synth

import (
	"github.com/justyntemme/phasor/pkg/debug"
	"github.com/justyntemme/phasor/pkg/dsp"
	"github.com/justyntemme/phasor/pkg/dsp/envelope"
	"github.com/justyntemme/phasor/pkg/dsp/modulation"
	"github.com/justyntemme/phasor/pkg/dsp/oscillator"
	"github.com/justyntemme/phasor/pkg/dsp/phase"
)

// generator is a phase accumulator together with the modulators that feed
// its policies.
type generator interface {
	process(buffer []float32)
	reset()
	rate() phase.Phase
}

// core binds one accumulator instantiation. Modulators are advanced before
// the accumulator on every sample so the policies read this sample's value.
type core[F, S oscillator.Policy] struct {
	acc     oscillator.Accumulator[F, S]
	wave    oscillator.WaveFunc
	base    phase.Phase
	start   phase.Phase
	vibrato *modulation.LFO
	op      *modulation.Operator
}

func (c *core[F, S]) process(buffer []float32) {
	if c.vibrato == nil && c.op == nil {
		oscillator.Render(&c.acc, c.wave, buffer)
		return
	}
	for i := range buffer {
		if c.vibrato != nil {
			c.vibrato.Process()
		}
		if c.op != nil {
			c.op.Process()
		}
		buffer[i] = c.wave(c.acc.Next())
	}
}

func (c *core[F, S]) reset() {
	c.acc.SetPhase(c.start)
	if c.vibrato != nil {
		c.vibrato.Reset()
	}
	if c.op != nil {
		c.op.Reset()
	}
}

func (c *core[F, S]) rate() phase.Phase {
	return c.base
}

func newCore[F, S oscillator.Policy](freq F, shift S, base, start phase.Phase, wave oscillator.WaveFunc,
	vibrato *modulation.LFO, op *modulation.Operator) *core[F, S] {
	c := &core[F, S]{
		acc:     oscillator.NewAccumulator(freq, shift),
		wave:    wave,
		base:    base,
		start:   start,
		vibrato: vibrato,
		op:      op,
	}
	c.acc.SetPhase(start)
	return c
}

// Voice renders one note from a Config.
type Voice struct {
	cfg Config
	gen generator
	env *envelope.ADSR
	amp float32
}

// NewVoice validates cfg and builds a triggered voice.
func NewVoice(cfg Config) (*Voice, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	wave := cfg.Shape.Func()
	if cfg.Shape == oscillator.ShapePulse {
		wave = oscillator.PulseFunc(phase.FromFloat(cfg.PulseWidth))
	}

	base := phase.FromFrequency(cfg.Frequency, cfg.SampleRate)
	start := phase.FromRadians(cfg.StartPhase)

	var vibrato *modulation.LFO
	if cfg.VibratoDepth > 0 {
		vibrato = modulation.NewLFO(cfg.SampleRate)
		vibrato.SetWaveform(modulation.WaveformSine)
		vibrato.SetFrequency(cfg.VibratoRate)
	}
	var op *modulation.Operator
	if cfg.PMIndex > 0 {
		op = modulation.NewOperator(cfg.Frequency*cfg.PMRatio, cfg.SampleRate, 1.0)
	}

	// Pick the accumulator instantiation once; the per-sample loop has no
	// branches on modulation mode.
	var gen generator
	switch {
	case vibrato != nil && op != nil:
		gen = newCore(
			modulation.NewFM(cfg.Frequency, cfg.VibratoDepth, cfg.SampleRate, vibrato),
			modulation.NewPM(cfg.PMIndex, op),
			base, start, wave, vibrato, op)
	case vibrato != nil:
		gen = newCore(
			modulation.NewFM(cfg.Frequency, cfg.VibratoDepth, cfg.SampleRate, vibrato),
			oscillator.Const(0),
			base, start, wave, vibrato, nil)
	case op != nil:
		gen = newCore(
			oscillator.Const(base),
			modulation.NewPM(cfg.PMIndex, op),
			base, start, wave, nil, op)
	default:
		gen = newCore(oscillator.Const(base), oscillator.Const(0), base, start, wave, nil, nil)
	}

	env := envelope.New(cfg.SampleRate)
	env.SetADSR(cfg.Attack, cfg.Decay, cfg.Sustain, cfg.Release)
	env.SetSustainDecay(cfg.SustainDecay)
	env.Trigger()

	debug.Debug("voice: %s %.3f Hz, rate %s, vibrato %.2f Hz, pm index %.2f",
		cfg.Shape, cfg.Frequency, base, cfg.VibratoDepth, cfg.PMIndex)

	return &Voice{
		cfg: cfg,
		gen: gen,
		env: env,
		amp: float32(cfg.Amplitude),
	}, nil
}

// Process fills buffer with the next samples of the note.
// A finished voice outputs silence until retriggered.
func (v *Voice) Process(buffer []float32) {
	if !v.env.Active() {
		dsp.Clear(buffer)
		return
	}
	v.gen.process(buffer)
	v.env.ProcessMultiply(buffer)
	dsp.Scale(buffer, v.amp)
}

// NoteOff starts the release stage.
func (v *Voice) NoteOff() {
	v.env.Release()
}

// Active reports whether the envelope is still sounding.
func (v *Voice) Active() bool {
	return v.env.Active()
}

// Retrigger restarts the note from its start phase.
func (v *Voice) Retrigger() {
	v.gen.reset()
	v.env.Reset()
	v.env.Trigger()
}

// Rate returns the unmodulated phase increment per sample.
func (v *Voice) Rate() phase.Phase {
	return v.gen.rate()
}

// Config returns the configuration the voice was built from.
func (v *Voice) Config() Config {
	return v.cfg
}

// Render validates cfg and renders the whole note, releasing it after
// cfg.HoldSamples samples.
func Render(cfg Config) ([]float32, error) {
	v, err := NewVoice(cfg)
	if err != nil {
		return nil, err
	}
	out := make([]float32, cfg.Samples())
	hold := cfg.HoldSamples()
	renderBlocks(v, out[:hold])
	v.NoteOff()
	renderBlocks(v, out[hold:])
	return out, nil
}

func renderBlocks(v *Voice, buffer []float32) {
	for len(buffer) > 0 {
		n := min(len(buffer), dsp.DefaultBufferSize)
		v.Process(buffer[:n])
		buffer = buffer[n:]
	}
}
