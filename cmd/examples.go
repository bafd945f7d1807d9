package cmd

import (
	"fmt"

	"github.com/jsphweid/chordkey/examples"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(examplesCmd)
}

var examplesCmd = &cobra.Command{
	Use:   "examples",
	Short: "Lists the example progressions",
	Long:  `Lists the example progressions`,
	Run: func(cmd *cobra.Command, args []string) {
		for _, e := range examples.All {
			fmt.Printf("%-20v %-24v expected key %v\n", e.Name, e.Chords, e.ExpectedKey)
		}
	},
}
