// Package stream adapts synth voices to beep streamers and encodes them as
// WAV files or raw float32 sample streams.
package stream

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"

	"github.com/justyntemme/phasor/pkg/dsp"
	"github.com/justyntemme/phasor/pkg/synth"
)

// Streamer is an endless beep.Streamer over a voice. Both channels carry the
// same mono signal. Once the voice has finished it streams silence.
type Streamer struct {
	voice *synth.Voice
	buf   []float32
}

// NewStreamer wraps voice.
func NewStreamer(voice *synth.Voice) *Streamer {
	return &Streamer{
		voice: voice,
		buf:   make([]float32, dsp.DefaultBufferSize),
	}
}

// Stream implements beep.Streamer.
func (s *Streamer) Stream(samples [][2]float64) (n int, ok bool) {
	for len(samples) > 0 {
		chunk := s.buf[:min(len(samples), len(s.buf))]
		s.voice.Process(chunk)
		for i, v := range chunk {
			samples[i][0] = float64(v)
			samples[i][1] = float64(v)
		}
		samples = samples[len(chunk):]
		n += len(chunk)
	}
	return n, true
}

// Err implements beep.Streamer.
func (s *Streamer) Err() error {
	return nil
}

// Format returns the mono 16-bit beep format for cfg.
func Format(cfg synth.Config) beep.Format {
	return beep.Format{
		SampleRate:  beep.SampleRate(int(math.Round(cfg.SampleRate))),
		NumChannels: 1,
		Precision:   2,
	}
}

// Note returns a finite streamer for the note described by cfg: the voice
// is held for cfg.HoldSamples samples, released, and cut at cfg.Samples.
func Note(cfg synth.Config) (beep.Streamer, error) {
	voice, err := synth.NewVoice(cfg)
	if err != nil {
		return nil, err
	}
	s := NewStreamer(voice)
	hold := cfg.HoldSamples()
	return beep.Seq(
		beep.Take(hold, s),
		beep.Callback(voice.NoteOff),
		beep.Take(cfg.Samples()-hold, s),
	), nil
}

// EncodeWAV renders cfg and writes it to w as a 16-bit mono WAV file.
func EncodeWAV(w io.WriteSeeker, cfg synth.Config) error {
	note, err := Note(cfg)
	if err != nil {
		return err
	}
	if err := wav.Encode(w, note, Format(cfg)); err != nil {
		return fmt.Errorf("encode wav: %w", err)
	}
	return nil
}

// reader drains a streamer as little-endian float32 mono samples.
type reader struct {
	s       beep.Streamer
	frames  [][2]float64
	out     []byte
	pending []byte
	done    bool
}

// NewReader returns an io.Reader producing the left channel of s as
// little-endian float32 samples. It returns io.EOF when s is drained.
func NewReader(s beep.Streamer) io.Reader {
	return &reader{
		s:      s,
		frames: make([][2]float64, dsp.DefaultBufferSize),
		out:    make([]byte, 0, 4*dsp.DefaultBufferSize),
	}
}

func (r *reader) Read(p []byte) (int, error) {
	if len(r.pending) == 0 {
		if r.done {
			return 0, io.EOF
		}
		n, ok := r.s.Stream(r.frames)
		if !ok {
			r.done = true
			if err := r.s.Err(); err != nil {
				return 0, err
			}
		}
		if n == 0 {
			if r.done {
				return 0, io.EOF
			}
			return 0, nil
		}
		r.out = r.out[:0]
		for _, frame := range r.frames[:n] {
			r.out = binary.LittleEndian.AppendUint32(r.out, math.Float32bits(float32(frame[0])))
		}
		r.pending = r.out
	}
	n := copy(p, r.pending)
	r.pending = r.pending[n:]
	return n, nil
}
