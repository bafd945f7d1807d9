package key

import (
	"github.com/jsphweid/chordkey/model"
	"github.com/jsphweid/chordkey/scale"
)

// keyFacts is everything the scoring rules look at for one candidate.
type keyFacts struct {
	name   string
	sc     []string
	b      borrowed
	chords []model.Chord
}

// baseBonuses are applied in order on top of the per-chord diatonic
// count. Values and order are load-bearing: reweighting changes which
// key wins on ambiguous progressions.
var baseBonuses = []struct {
	points  int
	applies func(f *keyFacts) bool
}{
	{1, func(f *keyFacts) bool { return hasMajorOn(f.chords, f.sc[0]) }},
	{1, func(f *keyFacts) bool { return hasMajorOn(f.chords, f.sc[3]) }},
	{1, func(f *keyFacts) bool { return hasMajorOn(f.chords, f.sc[4]) }},
	// Borrowed mediant: a major chord where iii belongs.
	{3, func(f *keyFacts) bool { return hasMajorOn(f.chords, f.sc[2]) }},
	// Borrowed submediant: a major chord where vi belongs.
	{2, func(f *keyFacts) bool { return hasMajorOn(f.chords, f.sc[5]) }},
	// Major tonic, minor submediant and a flat-six or flat-seven chord
	// together: the parallel-minor blend strongly marks this key.
	{4, func(f *keyFacts) bool {
		return hasMajorOn(f.chords, f.sc[0]) &&
			hasMinorOn(f.chords, f.sc[5]) &&
			(hasMajorOnIndex(f.chords, f.b.flat6) || hasMajorOnIndex(f.chords, f.b.flat7))
	}},
}

// afterBonuses run after base scoring for every key, valid or not.
var afterBonuses = []struct {
	points  int
	applies func(f *keyFacts) bool
}{
	// Relative-major cadence: minor vi plus major I and IV.
	{12, func(f *keyFacts) bool {
		return hasMinorOn(f.chords, f.sc[5]) &&
			hasMajorOn(f.chords, f.sc[0]) &&
			hasMajorOn(f.chords, f.sc[3])
	}},
	// No tonic at all, but major chords on vi, IV and ii.
	{10, func(f *keyFacts) bool {
		return !hasChordOn(f.chords, f.sc[0]) &&
			hasMajorOn(f.chords, f.sc[5]) &&
			hasMajorOn(f.chords, f.sc[3]) &&
			hasMajorOn(f.chords, f.sc[1])
	}},
}

func factsFor(keyName string, chords []model.Chord) *keyFacts {
	sc, _ := scale.ForKey(keyName)
	return &keyFacts{
		name:   keyName,
		sc:     sc,
		b:      borrowedDegrees(sc),
		chords: chords,
	}
}

// baseScore is the diatonic-membership score, or the flat penalty for a
// key the filter rejected.
func baseScore(f *keyFacts, invalid bool) int {
	if invalid {
		return invalidPenalty
	}
	score := 0
	for _, c := range f.chords {
		pos := scale.PositionInScale(c.Root, f.sc)
		if pos >= 0 && MatchesDegree(pos, c) {
			score += 2
		}
	}
	for _, rule := range baseBonuses {
		if rule.applies(f) {
			score += rule.points
		}
	}
	return score
}

// Detect picks the best key for a progression. The bool is false only
// when there are no chords to judge.
func Detect(chords []model.Chord) (string, bool) {
	if len(chords) == 0 {
		return "", false
	}

	rotBest, rotCount, rotTally := rotationCandidate(chords)
	fourthKey := fourthPairCandidate(chords)
	viKey := submediantCandidate(chords)

	var best, bestValid string
	bestScore := invalidPenalty * 2
	bestValidScore := invalidPenalty * 2

	for _, k := range CandidateKeys {
		f := factsFor(k, chords)
		invalid := Invalid(k, chords)
		score := baseScore(f, invalid)

		if k == viKey {
			score += 10
		}
		if k == fourthKey {
			if hasChordOn(chords, f.sc[0]) {
				score += 8
			} else {
				score += 4
			}
		}
		score += rotTally[k] * 2
		if k == rotBest && rotCount >= 2 {
			score += 2
		}
		for _, rule := range afterBonuses {
			if rule.applies(f) {
				score += rule.points
			}
		}

		if score > bestScore {
			bestScore = score
			best = k
		}
		if !invalid && score > bestValidScore {
			bestValidScore = score
			bestValid = k
		}
	}

	// Every key being invalid can leave an invalid winner; prefer the
	// best valid one when it exists.
	if Invalid(best, chords) && bestValid != "" {
		return bestValid, true
	}
	return best, true
}
