package synth

import (
	"errors"
	"math"
	"testing"

	"github.com/justyntemme/phasor/pkg/dsp/oscillator"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Samples() != 44100 {
		t.Errorf("Samples() = %d, want 44100", cfg.Samples())
	}
	if want := 44100 - 8820; cfg.HoldSamples() != want {
		t.Errorf("HoldSamples() = %d, want %d", cfg.HoldSamples(), want)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{"zero sample rate", func(c *Config) { c.SampleRate = 0 }, ErrInvalidSampleRate},
		{"NaN sample rate", func(c *Config) { c.SampleRate = math.NaN() }, ErrInvalidSampleRate},
		{"infinite sample rate", func(c *Config) { c.SampleRate = math.Inf(1) }, ErrInvalidSampleRate},
		{"zero frequency", func(c *Config) { c.Frequency = 0 }, ErrInvalidFrequency},
		{"negative frequency", func(c *Config) { c.Frequency = -1 }, ErrInvalidFrequency},
		{"at nyquist", func(c *Config) { c.Frequency = 22050 }, ErrInvalidFrequency},
		{"zero duration", func(c *Config) { c.Duration = 0 }, ErrInvalidDuration},
		{"NaN duration", func(c *Config) { c.Duration = math.NaN() }, ErrInvalidDuration},
		{"huge duration", func(c *Config) { c.Duration = 1e300 }, ErrInvalidDuration},
		{"duration over max samples", func(c *Config) { c.Duration = 1e6 }, ErrInvalidDuration},
		{"NaN start phase", func(c *Config) { c.StartPhase = math.NaN() }, ErrInvalidPhase},
		{"infinite start phase", func(c *Config) { c.StartPhase = math.Inf(-1) }, ErrInvalidPhase},
		{"NaN attack", func(c *Config) { c.Attack = math.NaN() }, ErrInvalidEnvelope},
		{"NaN decay", func(c *Config) { c.Decay = math.NaN() }, ErrInvalidEnvelope},
		{"infinite release", func(c *Config) { c.Release = math.Inf(1) }, ErrInvalidEnvelope},
		{"NaN sustain decay", func(c *Config) { c.SustainDecay = math.NaN() }, ErrInvalidEnvelope},
		{"NaN sustain", func(c *Config) { c.Sustain = math.NaN() }, ErrInvalidEnvelope},
		{"NaN vibrato depth", func(c *Config) { c.VibratoDepth = math.NaN() }, ErrInvalidModulation},
		{"NaN vibrato rate", func(c *Config) { c.VibratoDepth = 5; c.VibratoRate = math.NaN() }, ErrInvalidModulation},
		{"NaN PM index", func(c *Config) { c.PMIndex = math.NaN() }, ErrInvalidModulation},
		{"NaN amplitude", func(c *Config) { c.Amplitude = math.NaN() }, ErrInvalidLevel},
		{"unknown shape", func(c *Config) { c.Shape = oscillator.Shape(42) }, ErrUnknownWaveform},
		{"pulse width zero", func(c *Config) { c.Shape = oscillator.ShapePulse; c.PulseWidth = 0 }, ErrInvalidLevel},
		{"pulse width one", func(c *Config) { c.Shape = oscillator.ShapePulse; c.PulseWidth = 1 }, ErrInvalidLevel},
		{"amplitude too high", func(c *Config) { c.Amplitude = 1.5 }, ErrInvalidLevel},
		{"negative attack", func(c *Config) { c.Attack = -0.1 }, ErrInvalidEnvelope},
		{"sustain too high", func(c *Config) { c.Sustain = 2 }, ErrInvalidEnvelope},
		{"negative vibrato", func(c *Config) { c.VibratoDepth = -1 }, ErrInvalidModulation},
		{"vibrato rate too high", func(c *Config) { c.VibratoDepth = 5; c.VibratoRate = 100 }, ErrInvalidModulation},
		{"vibrato deeper than carrier", func(c *Config) { c.VibratoDepth = 500 }, ErrInvalidModulation},
		{"negative PM index", func(c *Config) { c.PMIndex = -1 }, ErrInvalidModulation},
		{"PM modulator above nyquist", func(c *Config) { c.PMIndex = 1; c.PMRatio = 100 }, ErrInvalidModulation},
		{"PM ratio zero", func(c *Config) { c.PMIndex = 1; c.PMRatio = 0 }, ErrInvalidModulation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestValidateAcceptsModulation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Shape = oscillator.ShapePulse
	cfg.PulseWidth = 0.25
	cfg.VibratoDepth = 6
	cfg.PMIndex = 2
	cfg.PMRatio = 2
	cfg.SustainDecay = 1.5
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestHoldSamplesShortNote(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Duration = 0.1
	cfg.Release = 0.5
	if cfg.HoldSamples() != 0 {
		t.Errorf("HoldSamples() = %d, want 0", cfg.HoldSamples())
	}
	if cfg.Samples() != 4410 {
		t.Errorf("Samples() = %d, want 4410", cfg.Samples())
	}
}

func TestValidateAcceptsLongestNote(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Duration = float64(MaxSamples-1) / cfg.SampleRate
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
	if cfg.Samples() != MaxSamples-1 {
		t.Errorf("Samples() = %d, want %d", cfg.Samples(), MaxSamples-1)
	}
}

func TestHoldSamplesLongRelease(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Release = 1e300
	if cfg.HoldSamples() != 0 {
		t.Errorf("HoldSamples() = %d, want 0", cfg.HoldSamples())
	}
}

// Rejected configurations never reach rendering.
func TestRenderRejectsUnrenderable(t *testing.T) {
	for name, modify := range map[string]func(*Config){
		"huge duration": func(c *Config) { c.Duration = 1e300 },
		"NaN attack":    func(c *Config) { c.Attack = math.NaN() },
		"NaN phase":     func(c *Config) { c.StartPhase = math.NaN() },
	} {
		cfg := DefaultConfig()
		modify(&cfg)
		if out, err := Render(cfg); err == nil {
			t.Errorf("%s: Render() returned %d samples and no error", name, len(out))
		}
	}
}
