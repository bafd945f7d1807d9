package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/chordkey/chord"
	"github.com/jsphweid/chordkey/constants"
	"github.com/jsphweid/chordkey/key"
	"github.com/jsphweid/chordkey/midiexport"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export [progression]",
	Short: "Exports a progression as a MIDI file",
	Long:  `Exports a comma-separated chord progression as a MIDI file named after the detected key`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			panic("Need a progression, e.g. \"C, G, Am, F\"")
		}
		export(strings.Join(args, " "))
	},
}

func export(progression string) {
	chords := chord.ParseProgression(progression)
	if len(chords) == 0 {
		fmt.Println("No parseable chords, nothing to export")
		return
	}

	// The key label only feeds the file name here.
	keyLabel, _ := key.Detect(chords)

	path, err := midiexport.WriteFile(chords, keyLabel, constants.GetExportDir())
	if err != nil {
		panic("Could not export: " + err.Error())
	}
	fmt.Printf("Wrote %v\n", path)
}
