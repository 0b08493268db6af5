package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/chordex/chord"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

var listenFlats bool
var listenSlash bool

func init() {
	listenCmd.Flags().BoolVar(&listenFlats, "flats", false, "use flat note names")
	listenCmd.Flags().BoolVar(&listenSlash, "slash", true, "use slash notation when bass differs from root")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Names chords played on a live midi input",
	Long:  `Names chords played on a live midi input`,
	Run: func(cmd *cobra.Command, args []string) {
		startListening()
	},
}

func startListening() {
	defer midi.CloseDriver()
	in, err := midi.InPort(0)
	if err != nil {
		fmt.Println("can't find a midi input port")
		return
	}

	onNotes := make(chord.OnNotes)

	// let the fingers land before naming anything
	debounced := debounce.New(30 * time.Millisecond)
	lastPrinted := ""
	printChord := func(notes []int) func() {
		return func() {
			name := chord.GetChordName(notes, listenFlats, listenSlash)
			if name == "" || name == lastPrinted {
				return
			}
			lastPrinted = name
			fmt.Printf("%v\n", name)
		}
	}

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			onNotes[key] = true
			debounced(printChord(chord.NoteNums(onNotes)))
		case msg.GetNoteEnd(&ch, &key):
			delete(onNotes, key)
			debounced(printChord(chord.NoteNums(onNotes)))
		default:
			// ignore
		}
	})

	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
	stop()
}
