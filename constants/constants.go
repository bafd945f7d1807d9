package constants

import "os"

func GetPort() string {
	port := os.Getenv("PORT")
	if port != "" {
		return port
	}
	return "8080"
}

func GetExportDir() string {
	path := os.Getenv("EXPORT_PATH")
	if path != "" {
		return path
	}
	return "./out"
}

// Exported MIDI layout: one whole-note bar per chord.
const (
	TicksPerQuarter = 960
	TicksPerBar     = TicksPerQuarter * 4
	ChordVelocity   = 90
	ChordOctave     = 4
)
