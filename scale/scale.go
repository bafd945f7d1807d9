package scale

// note is one of the 12 pitch classes. Black keys carry their flat
// spelling as an alternate; both resolve to the same index.
type note struct {
	Name string
	Alt  string
}

var notes = [12]note{
	{"C", ""},
	{"C#", "Db"},
	{"D", ""},
	{"D#", "Eb"},
	{"E", ""},
	{"F", ""},
	{"F#", "Gb"},
	{"G", ""},
	{"G#", "Ab"},
	{"A", ""},
	{"A#", "Bb"},
	{"B", ""},
}

// Keys are labeled with flats rather than sharps.
var flatNames = map[string]string{
	"G#": "Ab",
	"D#": "Eb",
	"A#": "Bb",
	"C#": "Db",
	"F#": "Gb",
}

var majorPattern = [7]int{0, 2, 4, 5, 7, 9, 11}

// scales holds all 12 major scales, keyed by both spellings of the root.
// Built once at init and never mutated.
var scales = buildScales()

func buildScales() map[string][]string {
	res := make(map[string][]string)
	for i, n := range notes {
		sc := buildScale(i, prefersFlats(n))
		res[n.Name] = sc
		if n.Alt != "" {
			res[n.Alt] = sc
		}
	}
	return res
}

// prefersFlats decides the spelling convention for a key's scale. Keys
// labeled with flats (the 5 black keys) and F spell their black-key
// degrees flat; every other key spells them sharp.
func prefersFlats(n note) bool {
	return n.Alt != "" || n.Name == "F"
}

func buildScale(rootIdx int, flats bool) []string {
	sc := make([]string, 7)
	for i, interval := range majorPattern {
		n := notes[(rootIdx+interval)%12]
		if flats && n.Alt != "" {
			sc[i] = n.Alt
		} else {
			sc[i] = n.Name
		}
	}
	return sc
}

// NoteIndex resolves a spelling to its 0-11 pitch class, -1 if unknown.
func NoteIndex(n string) int {
	for i, candidate := range notes {
		if candidate.Name == n || (candidate.Alt != "" && candidate.Alt == n) {
			return i
		}
	}
	return -1
}

// Alternate returns the enharmonic twin of a spelling, "" if it has none
// or the spelling is unknown.
func Alternate(n string) string {
	for _, candidate := range notes {
		if candidate.Name == n {
			return candidate.Alt
		}
		if candidate.Alt != "" && candidate.Alt == n {
			return candidate.Name
		}
	}
	return ""
}

// SemitoneDistance is the distance from a up to b, 0-11, or -1 if either
// spelling is unknown.
func SemitoneDistance(a, b string) int {
	ai := NoteIndex(a)
	bi := NoteIndex(b)
	if ai < 0 || bi < 0 {
		return -1
	}
	return (bi - ai + 12) % 12
}

// Transpose moves root by semitones (negative ok) and returns the
// canonical spelling, "" if root is unknown.
func Transpose(root string, semitones int) string {
	idx := NoteIndex(root)
	if idx < 0 {
		return ""
	}
	for semitones < 0 {
		semitones += 12
	}
	return notes[(idx+semitones)%12].Name
}

// TransposeIn is Transpose resolved against a scale: when the literal
// result has an enharmonic twin that the scale spells out, the twin is
// returned instead. This is what lets a fourth below F come out as Bb
// rather than A# inside a flat key.
func TransposeIn(root string, semitones int, sc []string) string {
	literal := Transpose(root, semitones)
	if literal == "" {
		return ""
	}
	for _, n := range sc {
		if n == literal {
			return literal
		}
	}
	if alt := Alternate(literal); alt != "" {
		for _, n := range sc {
			if n == alt {
				return alt
			}
		}
	}
	return literal
}

// PositionInScale is the 0-6 position of a note in a scale, trying the
// enharmonic twin when the literal spelling is absent. -1 when neither
// spelling is present.
func PositionInScale(n string, sc []string) int {
	for i, s := range sc {
		if s == n {
			return i
		}
	}
	if alt := Alternate(n); alt != "" {
		for i, s := range sc {
			if s == alt {
				return i
			}
		}
	}
	return -1
}

// ForKey returns the major scale for a key spelled either way.
func ForKey(root string) ([]string, bool) {
	sc, ok := scales[root]
	return sc, ok
}

// FlatName converts a sharp spelling to the flat spelling keys are
// labeled with; naturals and flats pass through.
func FlatName(n string) string {
	if flat, ok := flatNames[n]; ok {
		return flat
	}
	return n
}

// IsValidRoot reports whether a spelling names one of the 12 pitch
// classes. Spellings like Cb or E# are not in the table and are treated
// as malformed, same as any other junk.
func IsValidRoot(n string) bool {
	return NoteIndex(n) >= 0
}
