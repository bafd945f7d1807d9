package model

type Quality int

const (
	QualityMajor Quality = iota
	QualityMinor
	QualityDiminished
	QualityAugmented
)

type Chord struct {
	Root           string
	Bass           string
	IsMinor        bool
	IsDiminished   bool
	IsAugmented    bool
	IsSeventh      bool
	IsMajorSeventh bool
	OriginalSymbol string
}

func (c Chord) Quality() Quality {
	switch {
	case c.IsDiminished:
		return QualityDiminished
	case c.IsAugmented:
		return QualityAugmented
	case c.IsMinor:
		return QualityMinor
	default:
		return QualityMajor
	}
}

// IsPlainMajor reports a plain major triad (a seventh is fine),
// the shape the pattern detectors care about.
func (c Chord) IsPlainMajor() bool {
	return !c.IsMinor && !c.IsDiminished && !c.IsAugmented
}
