package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chordex",
	Short: "Names chords from midi notes",
	Long:  `Names chords from midi notes, typed in, played live or read from midi files.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
