package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chordkey",
	Short: "Key detection and Roman numeral analysis for chord progressions",
	Long:  `Detects the most plausible major key for a chord progression and labels every chord with a Roman numeral and harmonic function.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
