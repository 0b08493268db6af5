package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/jsphweid/chordex/chord"
	"github.com/jsphweid/chordex/db"
	"github.com/jsphweid/chordex/midi"
	"github.com/jsphweid/chordex/util"
	"github.com/spf13/cobra"
)

var scanFlats bool
var scanSlash bool
var scanMetadata bool

func init() {
	scanCmd.Flags().BoolVar(&scanFlats, "flats", false, "use flat note names")
	scanCmd.Flags().BoolVar(&scanSlash, "slash", true, "use slash notation when bass differs from root")
	scanCmd.Flags().BoolVar(&scanMetadata, "metadata", false, "look up file metadata in DynamoDB")
	rootCmd.AddCommand(scanCmd)
}

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Labels the chords in midi files over time",
	Long:  `Labels the chords in midi files over time. Path may be a .mid file or a directory of them.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		scan(args[0])
	},
}

func scan(path string) {
	paths := util.GatherAllMidiPaths(path, 0)
	if len(paths) == 0 {
		fmt.Printf("No midi files found at %v\n", path)
		return
	}
	for _, p := range paths {
		scanFile(p)
	}
}

func scanFile(path string) {
	parsed, err := midi.ReadMidiFile(path)
	if err != nil {
		fmt.Printf("Skipping %v because: %v\n", path, err)
		return
	}

	fmt.Printf("%v\n", path)
	if scanMetadata {
		filename := filepath.Base(path)
		metadatas := db.GetMidiMetadatas([]string{filename})
		if m, ok := metadatas[filename]; ok {
			fmt.Printf("  %v - %v (%v, %v)\n", m.Artist, m.Title, m.Release, m.Year)
		}
	}

	last := ""
	for _, ns := range midi.GetNoteSets(parsed) {
		name := chord.GetChordName(chord.IntNotes(ns.Notes), scanFlats, scanSlash)
		if name == "" || name == last {
			continue
		}
		last = name
		fmt.Printf("%8.2fs  %v\n", float64(ns.OffsetMs)/1000, name)
	}
}
