package chord

import (
	"fmt"
	"testing"

	"github.com/jsphweid/chordkey/model"
	"github.com/stretchr/testify/assert"
)

func TestParsesPlainMajor(t *testing.T) {
	c, ok := Parse("C")
	assert := assert.New(t)
	assert.True(ok)
	assert.Equal("C", c.Root)
	assert.Equal(model.QualityMajor, c.Quality())
	assert.False(c.IsSeventh)
	assert.Equal("C", c.OriginalSymbol)
}

func TestParsesQualities(t *testing.T) {
	cases := []struct {
		symbol  string
		quality model.Quality
	}{
		{"Am", model.QualityMinor},
		{"F#m", model.QualityMinor},
		{"Bdim", model.QualityDiminished},
		{"B°", model.QualityDiminished},
		{"Caug", model.QualityAugmented},
		{"C+", model.QualityAugmented},
		{"Cmaj7", model.QualityMajor},
		{"Eb", model.QualityMajor},
	}
	for _, tc := range cases {
		name := fmt.Sprintf("parse %v", tc.symbol)
		t.Run(name, func(t *testing.T) {
			c, ok := Parse(tc.symbol)
			assert := assert.New(t)
			assert.True(ok)
			assert.Equal(tc.quality, c.Quality())
		})
	}
}

func TestParsesSevenths(t *testing.T) {
	assert := assert.New(t)

	c, _ := Parse("G7")
	assert.True(c.IsSeventh)
	assert.False(c.IsMajorSeventh)

	c, _ = Parse("Dm7")
	assert.True(c.IsMinor)
	assert.True(c.IsSeventh)
	assert.False(c.IsMajorSeventh)

	c, _ = Parse("Cmaj7")
	assert.True(c.IsSeventh)
	assert.True(c.IsMajorSeventh)

	c, _ = Parse("CM7")
	assert.True(c.IsSeventh)
	assert.True(c.IsMajorSeventh)
	assert.False(c.IsMinor)
}

func TestParsesSlashBass(t *testing.T) {
	assert := assert.New(t)

	c, ok := Parse("C/G")
	assert.True(ok)
	assert.Equal("C", c.Root)
	assert.Equal("G", c.Bass)
	assert.Equal("C/G", c.OriginalSymbol)

	c, ok = Parse("Am7/E")
	assert.True(ok)
	assert.True(c.IsMinor)
	assert.True(c.IsSeventh)
	assert.Equal("E", c.Bass)

	// Junk bass is ignored, not fatal.
	c, ok = Parse("C/X")
	assert.True(ok)
	assert.Equal("", c.Bass)
}

func TestRejectsMalformedTokens(t *testing.T) {
	for _, symbol := range []string{"", "  ", "H", "h", "X7", "/G", "bb", "Cb"} {
		t.Run(fmt.Sprintf("reject %q", symbol), func(t *testing.T) {
			_, ok := Parse(symbol)
			assert.New(t).False(ok)
		})
	}
}

func TestProgressionDropsInvalidTokensSilently(t *testing.T) {
	chords := ParseProgression("C, H, X9, G")
	assert := assert.New(t)
	assert.Equal(2, len(chords))
	assert.Equal("C", chords[0].Root)
	assert.Equal("G", chords[1].Root)
}

func TestProgressionTrimsWhitespace(t *testing.T) {
	chords := ParseProgression("  C ,G ,  Am7  ")
	assert := assert.New(t)
	assert.Equal(3, len(chords))
	assert.Equal("Am7", chords[2].OriginalSymbol)
}

func TestEmptyProgression(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(0, len(ParseProgression("")))
	assert.Equal(0, len(ParseProgression(" , , ")))
}

func TestIdentifyTriads(t *testing.T) {
	cases := []struct {
		notes  []uint8
		symbol string
	}{
		{[]uint8{60, 64, 67}, "C"},
		{[]uint8{57, 60, 64}, "Am"},
		{[]uint8{55, 59, 62, 65}, "G7"},
		{[]uint8{60, 64, 67, 71}, "Cmaj7"},
		{[]uint8{61, 65, 68}, "Db"},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("identify %v", tc.symbol), func(t *testing.T) {
			c, ok := Identify(tc.notes)
			assert := assert.New(t)
			assert.True(ok)
			assert.Equal(tc.symbol, c.OriginalSymbol)
		})
	}
}

func TestIdentifyNeedsAFullTriad(t *testing.T) {
	assert := assert.New(t)
	_, ok := Identify([]uint8{60, 64})
	assert.False(ok)
	_, ok = Identify([]uint8{60, 61, 62})
	assert.False(ok)
}
