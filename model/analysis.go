package model

type AnalysisEntry struct {
	Chord    string `json:"chord"`
	Numeral  string `json:"numeral"`
	Function string `json:"function"`
	Diatonic bool   `json:"diatonic"`
}

// AnalysisResult is built fresh per analysis call. Key is empty when no
// key could be determined (empty or fully unparseable input).
type AnalysisResult struct {
	Key      string
	Analysis []AnalysisEntry
}

type ExampleProgression struct {
	Name        string `json:"name"`
	Chords      string `json:"chords"`
	ExpectedKey string `json:"expected_key"`
}
