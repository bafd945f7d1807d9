package chord

import (
	"github.com/jsphweid/chordkey/model"
	"github.com/jsphweid/chordkey/scale"
)

type triadShape struct {
	intervals []int
	suffix    string
}

// Triads first, then sevenths layered on top by interval check.
var triadShapes = []triadShape{
	{[]int{0, 4, 7}, ""},
	{[]int{0, 3, 7}, "m"},
	{[]int{0, 3, 6}, "dim"},
	{[]int{0, 4, 8}, "aug"},
}

// Identify names a set of held MIDI notes as a chord symbol, trying
// every pitch class as the root and matching triad shapes. Used by the
// live listen mode; progressions typed as text never go through here.
func Identify(held []uint8) (model.Chord, bool) {
	classes := make(map[int]bool)
	for _, n := range held {
		classes[int(n)%12] = true
	}
	if len(classes) < 3 {
		return model.Chord{}, false
	}

	for root := 0; root < 12; root++ {
		if !classes[root] {
			continue
		}
		for _, shape := range triadShapes {
			if !hasAll(classes, root, shape.intervals) {
				continue
			}
			symbol := scale.FlatName(scale.Transpose("C", root)) + shape.suffix
			switch {
			case shape.suffix == "" && classes[(root+11)%12]:
				symbol += "maj7"
			case classes[(root+10)%12]:
				symbol += "7"
			}
			return mustParse(symbol), true
		}
	}
	return model.Chord{}, false
}

func hasAll(classes map[int]bool, root int, intervals []int) bool {
	for _, iv := range intervals {
		if !classes[(root+iv)%12] {
			return false
		}
	}
	return true
}

func mustParse(symbol string) model.Chord {
	c, ok := Parse(symbol)
	if !ok {
		panic("identified chord failed to parse: " + symbol)
	}
	return c
}
