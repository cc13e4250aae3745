//go:build headless

package main

import (
	"errors"

	"github.com/justyntemme/phasor/pkg/synth"
)

func play(synth.Config) error {
	return errors.New("playback is not available in headless builds")
}
