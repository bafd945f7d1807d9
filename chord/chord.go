package chord

import (
	"strings"

	"github.com/jsphweid/chordkey/model"
	"github.com/jsphweid/chordkey/scale"
)

// Parse turns one chord token into a Chord. The bool is false for
// anything that doesn't match ROOT QUALITY? (/BASS)? -- callers drop
// those tokens silently, there is no error channel.
func Parse(token string) (model.Chord, bool) {
	var c model.Chord

	token = strings.TrimSpace(token)
	if token == "" {
		return c, false
	}

	body := token
	if i := strings.Index(token, "/"); i >= 0 {
		body = token[:i]
		bass := strings.TrimSpace(token[i+1:])
		if scale.IsValidRoot(bass) {
			c.Bass = bass
		}
	}
	if body == "" {
		return c, false
	}

	letter := body[0]
	if letter < 'A' || letter > 'G' {
		return c, false
	}
	rootLen := 1
	if len(body) > 1 && (body[1] == '#' || body[1] == 'b') {
		rootLen = 2
	}
	root := body[:rootLen]
	if !scale.IsValidRoot(root) {
		return c, false
	}

	quality := body[rootLen:]
	c.Root = root
	c.OriginalSymbol = token
	c.IsDiminished = strings.Contains(quality, "dim") || strings.Contains(quality, "°")
	c.IsAugmented = !c.IsDiminished &&
		(strings.Contains(quality, "aug") || strings.Contains(quality, "+"))
	c.IsMinor = !c.IsDiminished && !c.IsAugmented &&
		strings.Contains(quality, "m") && !strings.Contains(quality, "maj")
	c.IsSeventh = strings.Contains(quality, "7")
	c.IsMajorSeventh = strings.Contains(quality, "maj7") || strings.Contains(quality, "M7")

	return c, true
}

// ParseProgression splits a comma-separated progression and keeps every
// token that parses. Invalid tokens just disappear from the result.
func ParseProgression(progression string) []model.Chord {
	var res []model.Chord
	for _, token := range strings.Split(progression, ",") {
		if c, ok := Parse(token); ok {
			res = append(res, c)
		}
	}
	return res
}
