package cmd

import (
	"fmt"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/chordkey/chord"
	"github.com/jsphweid/chordkey/key"
	"github.com/jsphweid/chordkey/model"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

func init() {
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Detects the key from live MIDI input",
	Long:  `Listens on the first MIDI input port, captures each chord you hold, and re-detects the key as the progression grows`,
	Run: func(cmd *cobra.Command, args []string) {
		listen()
	},
}

func listen() {
	defer midi.CloseDriver()
	in, err := midi.InPort(0)
	if err != nil {
		fmt.Println("No MIDI input port found")
		return
	}

	held := make(map[uint8]bool)
	var progression []model.Chord

	// Wait for the hands to settle before reading the held notes as a
	// chord, otherwise every partial grab becomes an entry.
	debounced := debounce.New(400 * time.Millisecond)
	capture := func(notes []uint8) {
		c, ok := chord.Identify(notes)
		if !ok {
			return
		}
		progression = append(progression, c)
		if k, ok := key.Detect(progression); ok {
			fmt.Printf("%v -> key %v\n", c.OriginalSymbol, k)
		}
	}

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, note, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &note, &vel):
			held[note] = true
			notes := make([]uint8, 0, len(held))
			for n := range held {
				notes = append(notes, n)
			}
			debounced(func() { capture(notes) })
		case msg.GetNoteEnd(&ch, &note):
			delete(held, note)
		default:
			// ignore
		}
	}, midi.UseSysEx())
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}
	defer stop()

	fmt.Printf("Listening on %v, play some chords...\n", in)
	select {}
}
