package midiexport

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jsphweid/chordkey/constants"
	"github.com/jsphweid/chordkey/model"
	"github.com/jsphweid/chordkey/scale"
	"github.com/jsphweid/chordkey/util"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Pitches derives the playable MIDI notes for a chord from its parsed
// fields only: root, third, fifth, optional seventh, optional slash bass
// an octave below. The Roman-numeral side of the analysis is not
// consulted.
func Pitches(c model.Chord) []uint8 {
	rootIdx := scale.NoteIndex(c.Root)
	if rootIdx < 0 {
		return nil
	}
	root := 12*(constants.ChordOctave+1) + rootIdx

	third := root + 4
	if c.IsMinor || c.IsDiminished {
		third = root + 3
	}
	fifth := root + 7
	switch {
	case c.IsDiminished:
		fifth = root + 6
	case c.IsAugmented:
		fifth = root + 8
	}

	notes := []int{root, third, fifth}
	if c.IsSeventh {
		seventh := root + 10
		if c.IsMajorSeventh {
			seventh = root + 11
		}
		notes = append(notes, seventh)
	}

	if c.Bass != "" {
		if bassIdx := scale.NoteIndex(c.Bass); bassIdx >= 0 {
			bass := 12*constants.ChordOctave + bassIdx
			notes = append([]int{bass}, notes...)
		}
	}

	res := make([]uint8, 0, len(notes))
	for _, n := range notes {
		if n < 0 {
			continue
		}
		res = append(res, uint8(util.Min(n, 127)))
	}
	return res
}

// Build renders the progression as a single-track SMF, one whole-note
// bar per chord.
func Build(chords []model.Chord) *smf.SMF {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(constants.TicksPerQuarter)

	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName("chordkey"))
	for _, c := range chords {
		pitches := Pitches(c)
		for _, p := range pitches {
			tr.Add(0, midi.NoteOn(0, p, constants.ChordVelocity))
		}
		for i, p := range pitches {
			var delta uint32
			if i == 0 {
				delta = constants.TicksPerBar
			}
			tr.Add(delta, midi.NoteOff(0, p))
		}
	}
	tr.Close(0)
	s.Add(tr)
	return s
}

// WriteFile writes the progression under dir, named after the detected
// key label plus a uuid so repeated exports never clobber each other.
// An empty key label falls back to "unknown".
func WriteFile(chords []model.Chord, keyLabel string, dir string) (string, error) {
	if keyLabel == "" {
		keyLabel = "unknown"
	}
	if err := os.MkdirAll(dir, 0777); err != nil {
		return "", fmt.Errorf("could not create export dir: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("%v-%v.mid", keyLabel, uuid.New().String()))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("could not create midi file: %w", err)
	}
	defer f.Close()

	if _, err := Build(chords).WriteTo(f); err != nil {
		return "", fmt.Errorf("could not write midi file: %w", err)
	}
	return path, nil
}
