//go:build !headless

package main

import (
	"fmt"
	"math"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/justyntemme/phasor/pkg/debug"
	"github.com/justyntemme/phasor/pkg/stream"
	"github.com/justyntemme/phasor/pkg/synth"
)

// play renders cfg through the default audio device and blocks until the
// note has finished.
func play(cfg synth.Config) error {
	note, err := stream.Note(cfg)
	if err != nil {
		return err
	}

	op := &oto.NewContextOptions{
		SampleRate:   int(math.Round(cfg.SampleRate)),
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	}
	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return fmt.Errorf("open audio device: %w", err)
	}
	<-ready

	player := ctx.NewPlayer(stream.NewReader(note))
	defer player.Close()

	debug.Info("playing %s at %.2f Hz for %.2fs", cfg.Shape, cfg.Frequency, cfg.Duration)
	player.Play()
	for player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}
	if err := player.Err(); err != nil {
		return fmt.Errorf("playback: %w", err)
	}
	return nil
}
