// Package midi converts between MIDI note numbers, note names and
// frequencies.
package midi

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/justyntemme/phasor/pkg/dsp"
)

// A4 is the MIDI note number of concert A.
const A4 = 69

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var noteOffsets = map[string]int{
	"C": 0, "B#": 12,
	"C#": 1, "DB": 1,
	"D": 2,
	"D#": 3, "EB": 3,
	"E": 4, "FB": 4,
	"F": 5, "E#": 5,
	"F#": 6, "GB": 6,
	"G": 7,
	"G#": 8, "AB": 8,
	"A": 9,
	"A#": 10, "BB": 10,
	"B": 11, "CB": -1,
}

// NoteToFrequency returns the equal-tempered frequency of note. A zero
// tuningA4 means 440 Hz.
func NoteToFrequency(note uint8, tuningA4 float64) float64 {
	if tuningA4 == 0 {
		tuningA4 = dsp.TuningA4
	}
	return tuningA4 * math.Exp2((float64(note)-A4)/12.0)
}

// FrequencyToNote returns the nearest note to freq, clamped to 0-127.
func FrequencyToNote(freq, tuningA4 float64) uint8 {
	if tuningA4 == 0 {
		tuningA4 = dsp.TuningA4
	}
	if freq <= 0 {
		return 0
	}
	note := math.Round(A4 + 12.0*math.Log2(freq/tuningA4))
	return uint8(math.Max(0, math.Min(127, note)))
}

// NoteName returns the name of note in scientific pitch notation, e.g. "A4".
func NoteName(note uint8) string {
	octave := int(note)/12 - 1
	return fmt.Sprintf("%s%d", noteNames[note%12], octave)
}

// ParseNote parses a note name such as "A4", "c#3" or "Eb-1".
func ParseNote(str string) (uint8, error) {
	str = strings.ToUpper(strings.TrimSpace(str))

	octaveStart := strings.IndexFunc(str, func(ch rune) bool {
		return ch >= '0' && ch <= '9' || ch == '-'
	})
	if octaveStart == -1 {
		return 0, fmt.Errorf("no octave number found in note: %s", str)
	}

	noteName := str[:octaveStart]
	octaveStr := str[octaveStart:]

	offset, ok := noteOffsets[noteName]
	if !ok {
		return 0, fmt.Errorf("unknown note name: %s", noteName)
	}

	octave, err := strconv.Atoi(octaveStr)
	if err != nil {
		return 0, fmt.Errorf("invalid octave number: %s", octaveStr)
	}

	note := (octave+1)*12 + offset
	if note < 0 || note > 127 {
		return 0, fmt.Errorf("note out of MIDI range: %s", str)
	}
	return uint8(note), nil
}
