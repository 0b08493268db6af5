package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jsphweid/chordex/chord"
	"github.com/spf13/cobra"
)

var analyzeFlats bool
var analyzeSlash bool

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeFlats, "flats", false, "use flat note names")
	analyzeCmd.Flags().BoolVar(&analyzeSlash, "slash", false, "use slash notation when bass differs from root")
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [note numbers]",
	Short: "Analyzes a set of midi note numbers",
	Long:  `Analyzes a set of midi note numbers`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			panic("Need at least 1 note number...")
		}
		var notes []int
		for _, arg := range args {
			n, err := strconv.Atoi(arg)
			if err != nil {
				panic(err)
			}
			notes = append(notes, n)
		}
		analyze(notes)
	},
}

func analyze(notes []int) {
	da := chord.GetDetailedAnalysis(notes, analyzeFlats, analyzeSlash)
	fmt.Printf("Chord: %v\n", da.Chord.FullName)
	fmt.Printf("Bass: %v\n", da.Chord.BassNote)
	fmt.Printf("Inversion: %v\n", da.InversionType)
	fmt.Printf("Notes: %v\n", strings.Join(da.NoteNames, " "))
	fmt.Printf("Intervals from root: %v\n", da.IntervalsFromRoot)
}
