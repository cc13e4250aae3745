// Command phasor renders a single synthesized note to a WAV file, to stdout
// as raw float32 samples, or to the default audio device.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/justyntemme/phasor/pkg/debug"
	"github.com/justyntemme/phasor/pkg/dsp"
	"github.com/justyntemme/phasor/pkg/dsp/oscillator"
	"github.com/justyntemme/phasor/pkg/midi"
	"github.com/justyntemme/phasor/pkg/stream"
	"github.com/justyntemme/phasor/pkg/synth"
)

var errTerminal = errors.New("refusing to write raw samples to a terminal")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		debug.Error("%v", err)
		os.Exit(1)
	}
}

type options struct {
	cfg     synth.Config
	note    string
	output  string
	play    bool
	verbose bool
}

func parseFlags(args []string) (options, error) {
	def := synth.DefaultConfig()
	fs := flag.NewFlagSet("phasor", flag.ContinueOnError)

	sampleRate := fs.Float64("rate", def.SampleRate, "sample rate in Hz")
	freq := fs.Float64("freq", def.Frequency, "frequency in Hz")
	note := fs.String("note", "", "note name such as A4 or C#3 (overrides -freq)")
	wave := fs.String("wave", def.Shape.String(), "waveform: sine, saw, square, pulse or triangle")
	width := fs.Float64("width", def.PulseWidth, "pulse width, 0-1")
	amp := fs.Float64("amp", def.Amplitude, "amplitude, 0-1")
	dur := fs.Float64("dur", def.Duration, "duration in seconds, including release")
	startPhase := fs.Float64("phase", def.StartPhase, "start phase in radians")
	attack := fs.Float64("attack", def.Attack, "attack time in seconds")
	decay := fs.Float64("decay", def.Decay, "decay time in seconds")
	sustain := fs.Float64("sustain", def.Sustain, "sustain level, 0-1")
	sustainDecay := fs.Float64("sustain-decay", def.SustainDecay, "sustain fade time in seconds, 0 holds")
	release := fs.Float64("release", def.Release, "release time in seconds")
	vibRate := fs.Float64("vib-rate", def.VibratoRate, "vibrato rate in Hz")
	vibDepth := fs.Float64("vib-depth", def.VibratoDepth, "vibrato depth in Hz, 0 disables")
	pmRatio := fs.Float64("pm-ratio", def.PMRatio, "phase modulator frequency ratio")
	pmIndex := fs.Float64("pm-index", def.PMIndex, "phase modulation index in radians, 0 disables")
	output := fs.String("o", "tone.wav", "output file, or - for raw float32 samples on stdout")
	play := fs.Bool("play", false, "play through the default audio device instead of writing a file")
	verbose := fs.Bool("v", false, "verbose logging")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	shape, err := oscillator.ParseShape(*wave)
	if err != nil {
		return options{}, fmt.Errorf("%w: %s", synth.ErrUnknownWaveform, *wave)
	}

	cfg := synth.Config{
		SampleRate:   *sampleRate,
		Frequency:    *freq,
		Shape:        shape,
		PulseWidth:   *width,
		Amplitude:    *amp,
		Duration:     *dur,
		StartPhase:   *startPhase,
		Attack:       *attack,
		Decay:        *decay,
		Sustain:      *sustain,
		SustainDecay: *sustainDecay,
		Release:      *release,
		VibratoRate:  *vibRate,
		VibratoDepth: *vibDepth,
		PMRatio:      *pmRatio,
		PMIndex:      *pmIndex,
	}
	opts := options{output: *output, play: *play, verbose: *verbose}
	if *note != "" {
		n, err := midi.ParseNote(*note)
		if err != nil {
			return options{}, err
		}
		cfg.Frequency = midi.NoteToFrequency(n, dsp.TuningA4)
		opts.note = midi.NoteName(n)
	}
	opts.cfg = cfg
	return opts, nil
}

func run(args []string, stdout io.Writer) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}
	if opts.verbose {
		debug.SetLevel(debug.LogLevelDebug)
	}
	if opts.note != "" {
		debug.Debug("note %s = %.3f Hz", opts.note, opts.cfg.Frequency)
	}
	if err := opts.cfg.Validate(); err != nil {
		return err
	}
	if opts.verbose {
		report(opts.cfg)
	}

	switch {
	case opts.play:
		return play(opts.cfg)
	case opts.output == "-":
		return writeRaw(stdout, opts.cfg)
	default:
		return writeWAV(opts.output, opts.cfg)
	}
}

func writeWAV(path string, cfg synth.Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := stream.EncodeWAV(f, cfg); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	debug.Info("wrote %s (%d samples at %.0f Hz)", path, cfg.Samples(), cfg.SampleRate)
	return nil
}

func writeRaw(w io.Writer, cfg synth.Config) error {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return errTerminal
	}
	note, err := stream.Note(cfg)
	if err != nil {
		return err
	}
	if _, err := io.Copy(w, stream.NewReader(note)); err != nil {
		return fmt.Errorf("write samples: %w", err)
	}
	return nil
}

// report renders the note block by block and logs its analysis and the
// render load.
func report(cfg synth.Config) {
	v, err := synth.NewVoice(cfg)
	if err != nil {
		debug.Warn("analysis skipped: %v", err)
		return
	}

	prof := debug.NewProfiler()
	out := make([]float32, cfg.Samples())
	hold := cfg.HoldSamples()
	for start := 0; start < len(out); start += dsp.DefaultBufferSize {
		end := min(start+dsp.DefaultBufferSize, len(out))
		if start <= hold && hold < end {
			stop := prof.Start("block")
			v.Process(out[start:hold])
			v.NoteOff()
			v.Process(out[hold:end])
			stop()
			continue
		}
		stop := prof.Start("block")
		v.Process(out[start:end])
		stop()
	}

	analyzer := debug.NewAudioAnalyzer()
	result := analyzer.Analyze(out)
	debug.Debug("%s", result)
	estimate := result.EstimateFrequency(cfg.SampleRate)
	if estimate > 0 {
		debug.Debug("estimated frequency %.2f Hz, nearest note %s", estimate,
			midi.NoteName(midi.FrequencyToNote(estimate, dsp.TuningA4)))
	}
	if m, ok := prof.Measurement("block"); ok {
		debug.Debug("render load %.3f%% (%d blocks, avg %v)",
			m.Load(dsp.DefaultBufferSize, cfg.SampleRate), m.Count, m.Average())
	}
	for _, issue := range analyzer.Check(out, "note") {
		debug.Warn("%s", issue)
	}
}
