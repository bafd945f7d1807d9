package key

import (
	"github.com/jsphweid/chordkey/model"
	"github.com/jsphweid/chordkey/scale"
)

// CandidateKeys is the fixed iteration order for everything in this
// package. Score ties resolve to the earliest entry.
var CandidateKeys = [12]string{
	"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B",
}

const invalidPenalty = -1000

// borrowed holds the pitch classes of a key's borrowed degrees, each one
// semitone below the named scale position.
type borrowed struct {
	flat2 int
	flat3 int
	flat5 int
	flat6 int
	flat7 int
}

func borrowedDegrees(sc []string) borrowed {
	below := func(pos int) int {
		return (scale.NoteIndex(sc[pos]) + 11) % 12
	}
	return borrowed{
		flat2: below(1),
		flat3: below(2),
		flat5: below(4),
		flat6: below(5),
		flat7: below(6),
	}
}

func rootIndex(c model.Chord) int {
	return scale.NoteIndex(c.Root)
}

func hasChordOn(chords []model.Chord, n string) bool {
	idx := scale.NoteIndex(n)
	for _, c := range chords {
		if rootIndex(c) == idx {
			return true
		}
	}
	return false
}

func hasMajorOn(chords []model.Chord, n string) bool {
	return hasMajorOnIndex(chords, scale.NoteIndex(n))
}

func hasMajorOnIndex(chords []model.Chord, idx int) bool {
	for _, c := range chords {
		if c.IsPlainMajor() && rootIndex(c) == idx {
			return true
		}
	}
	return false
}

func hasMinorOn(chords []model.Chord, n string) bool {
	idx := scale.NoteIndex(n)
	for _, c := range chords {
		if c.IsMinor && rootIndex(c) == idx {
			return true
		}
	}
	return false
}

func hasMinorOnIndex(chords []model.Chord, idx int) bool {
	for _, c := range chords {
		if c.IsMinor && rootIndex(c) == idx {
			return true
		}
	}
	return false
}

// MatchesDegree reports whether a chord's quality is the diatonic
// expectation for a scale position: I, IV, V major; ii, iii, vi minor;
// vii diminished.
func MatchesDegree(pos int, c model.Chord) bool {
	switch pos {
	case 0, 3, 4:
		return c.IsPlainMajor()
	case 1, 2, 5:
		return c.IsMinor
	case 6:
		return c.IsDiminished
	}
	return false
}

// Invalid flags candidate keys whose best reading would force borrowed
// labels that essentially never occur in practice. Invalid keys are not
// removed, they just score the penalty.
func Invalid(keyName string, chords []model.Chord) bool {
	sc, ok := scale.ForKey(keyName)
	if !ok {
		return true
	}
	b := borrowedDegrees(sc)

	// A minor chord on the flat-two or flat-five reads as nonsense in
	// this key; some other key fits.
	if hasMinorOnIndex(chords, b.flat2) || hasMinorOnIndex(chords, b.flat5) {
		return true
	}
	// A raised submediant alongside a flat-six or flat-seven pulls the
	// progression somewhere else entirely.
	if hasMajorOn(chords, sc[5]) &&
		(hasMajorOnIndex(chords, b.flat6) || hasMajorOnIndex(chords, b.flat7)) {
		return true
	}
	// A flat-seven chord with a minor dominant reads as the relative
	// key, not this one.
	if hasMajorOnIndex(chords, b.flat7) && hasMinorOn(chords, sc[4]) {
		return true
	}
	return false
}
