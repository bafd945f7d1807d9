package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAxisProgression(t *testing.T) {
	res := Run("C, G, Am, F")
	assert := assert.New(t)
	assert.Equal("C", res.Key)
	assert.Equal(4, len(res.Analysis))
	assert.Equal("I", res.Analysis[0].Numeral)
	assert.Equal("V", res.Analysis[1].Numeral)
	assert.Equal("vi", res.Analysis[2].Numeral)
	assert.Equal("IV", res.Analysis[3].Numeral)
	for _, e := range res.Analysis {
		assert.True(e.Diatonic)
	}
}

func TestRelativeMajorWinsOverMinor(t *testing.T) {
	res := Run("Am, F, G")
	assert := assert.New(t)
	assert.Equal("C", res.Key)
	assert.Equal("vi", res.Analysis[0].Numeral)
	assert.Equal("IV", res.Analysis[1].Numeral)
	assert.Equal("V", res.Analysis[2].Numeral)
}

func TestJazzTurnaround(t *testing.T) {
	res := Run("Dm7, G7, Cmaj7")
	assert := assert.New(t)
	assert.Equal("C", res.Key)
	assert.Equal("ii7", res.Analysis[0].Numeral)
	assert.Equal("V7", res.Analysis[1].Numeral)
	assert.Equal("Imaj7", res.Analysis[2].Numeral)
	assert.Equal("Supertonic", res.Analysis[0].Function)
	assert.Equal("Dominant", res.Analysis[1].Function)
	assert.Equal("Tonic", res.Analysis[2].Function)
}

func TestBorrowedSubmediantScenario(t *testing.T) {
	res := Run("A, C, F")
	assert := assert.New(t)
	assert.Equal("C", res.Key)
	assert.Equal("VI*", res.Analysis[0].Numeral)
	assert.Equal("Tierce de Picardie", res.Analysis[0].Function)
	assert.False(res.Analysis[0].Diatonic)
}

func TestAnalysisPreservesInputOrderAndLength(t *testing.T) {
	res := Run("C, H, Am, X7, F")
	assert := assert.New(t)
	assert.Equal(3, len(res.Analysis))
	assert.Equal("C", res.Analysis[0].Chord)
	assert.Equal("Am", res.Analysis[1].Chord)
	assert.Equal("F", res.Analysis[2].Chord)
}

func TestEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "H, X, Y", ",,,"} {
		res := Run(input)
		assert := assert.New(t)
		assert.Equal("", res.Key)
		assert.Equal(0, len(res.Analysis))
		assert.NotNil(res.Analysis)
	}
}

func TestDeterminism(t *testing.T) {
	first := Run("C, G, Am, F, Bb, Eb, F#m7")
	second := Run("C, G, Am, F, Bb, Eb, F#m7")
	assert.New(t).Equal(first, second)
}

func TestEnharmonicSpellingsAnalyzeAlike(t *testing.T) {
	flats := Run("C, Db, Eb")
	sharps := Run("C, C#, D#")
	assert := assert.New(t)
	assert.Equal(flats.Key, sharps.Key)
	for i := range flats.Analysis {
		assert.Equal(flats.Analysis[i].Numeral, sharps.Analysis[i].Numeral)
		assert.Equal(flats.Analysis[i].Diatonic, sharps.Analysis[i].Diatonic)
	}
}

func TestEveryChordGetsSomeNumeral(t *testing.T) {
	res := Run("C, F#, Abm, Bdim, Caug, Db7")
	assert := assert.New(t)
	assert.Equal(6, len(res.Analysis))
	for _, e := range res.Analysis {
		assert.NotEmpty(e.Numeral)
		assert.NotEmpty(e.Function)
	}
}
