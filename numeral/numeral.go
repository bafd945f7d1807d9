package numeral

import (
	"strings"

	"github.com/jsphweid/chordkey/key"
	"github.com/jsphweid/chordkey/model"
	"github.com/jsphweid/chordkey/scale"
)

var romanNumerals = [7]string{"I", "II", "III", "IV", "V", "VI", "VII"}

var functionNames = [7]string{
	"Tonic",
	"Supertonic",
	"Mediant",
	"Subdominant",
	"Dominant",
	"Submediant",
	"Leading Tone",
}

// chromaticNumerals maps semitone distance from the tonic for chords
// whose root is outside the scale entirely.
var chromaticNumerals = [12]string{
	"I", "bII", "II", "bIII", "III", "IV", "bV", "V", "bVI", "VI", "bVII", "VII",
}

const borrowedFunction = "Borrowed Chord"

// Generate labels every chord relative to the chosen key, in order.
func Generate(keyName string, chords []model.Chord) []model.AnalysisEntry {
	sc, ok := scale.ForKey(keyName)
	if !ok {
		return []model.AnalysisEntry{}
	}
	entries := make([]model.AnalysisEntry, 0, len(chords))
	for _, c := range chords {
		entries = append(entries, entryFor(sc, c))
	}
	return entries
}

func entryFor(sc []string, c model.Chord) model.AnalysisEntry {
	entry := model.AnalysisEntry{Chord: c.OriginalSymbol}

	// Non-minor chords on the borrowed flat-six or flat-seven get their
	// fixed labels without a scale-position lookup.
	rootIdx := scale.NoteIndex(c.Root)
	tonicIdx := scale.NoteIndex(sc[0])
	if !c.IsMinor {
		switch rootIdx {
		case (scale.NoteIndex(sc[5]) + 11) % 12:
			entry.Numeral = "bVI*"
			entry.Function = borrowedFunction
			return entry
		case (scale.NoteIndex(sc[6]) + 11) % 12:
			entry.Numeral = "bVII*"
			entry.Function = borrowedFunction
			return entry
		}
	}

	pos := scale.PositionInScale(c.Root, sc)
	if pos < 0 {
		dist := (rootIdx - tonicIdx + 12) % 12
		entry.Numeral = decorate(chromaticNumerals[dist], c) + "*"
		entry.Function = borrowedFunction
		return entry
	}

	diatonic := key.MatchesDegree(pos, c)
	numeral := decorate(romanNumerals[pos], c)
	if !diatonic {
		numeral += "*"
	}

	entry.Numeral = numeral
	entry.Function = functionFor(pos, c)
	entry.Diatonic = diatonic
	return entry
}

// decorate applies the case, quality mark and seventh suffix shared by
// scale-position and chromatic numerals.
func decorate(base string, c model.Chord) string {
	switch c.Quality() {
	case model.QualityMinor:
		base = strings.ToLower(base)
	case model.QualityDiminished:
		base = strings.ToLower(base) + "°"
	case model.QualityAugmented:
		base += "+"
	}
	if c.IsSeventh {
		if c.IsMajorSeventh {
			base += "maj7"
		} else {
			base += "7"
		}
	}
	return base
}

func functionFor(pos int, c model.Chord) string {
	major := c.IsPlainMajor()
	switch {
	case pos == 1 && major:
		return "V of V"
	case pos == 2 && major:
		return "Phrygian Dominant"
	case pos == 3 && c.IsMinor:
		return "Minor Four"
	case pos == 5 && major:
		return "Tierce de Picardie"
	}
	return functionNames[pos]
}
