package analysis

import (
	"github.com/jsphweid/chordkey/chord"
	"github.com/jsphweid/chordkey/key"
	"github.com/jsphweid/chordkey/model"
	"github.com/jsphweid/chordkey/numeral"
)

// Run analyzes a comma-separated chord progression: pick the best key,
// then label every chord against it. Always answers; an input with no
// parseable chords yields an empty result rather than an error.
func Run(progression string) model.AnalysisResult {
	res := model.AnalysisResult{Analysis: []model.AnalysisEntry{}}

	chords := chord.ParseProgression(progression)
	if len(chords) == 0 {
		return res
	}

	k, ok := key.Detect(chords)
	if !ok {
		return res
	}

	res.Key = k
	res.Analysis = numeral.Generate(k, chords)
	return res
}
