package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/chordkey/analysis"
	"github.com/jsphweid/chordkey/model"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [progression]",
	Short: "Analyzes a chord progression",
	Long:  `Analyzes a comma-separated chord progression, e.g. chordkey analyze "C, G, Am, F"`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			panic("Need a progression, e.g. \"C, G, Am, F\"")
		}
		PrintAnalysis(analysis.Run(strings.Join(args, " ")))
	},
}

func PrintAnalysis(res model.AnalysisResult) {
	key := res.Key
	if key == "" {
		key = "Unknown"
	}
	fmt.Printf("Key: %v\n", key)
	for _, e := range res.Analysis {
		marker := ""
		if !e.Diatonic {
			marker = " (non-diatonic)"
		}
		fmt.Printf("%-10v %-10v %v%v\n", e.Chord, e.Numeral, e.Function, marker)
	}
}
