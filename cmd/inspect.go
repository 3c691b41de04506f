package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/scaledegree/chord"
	"github.com/jsphweid/scaledegree/midi"
	"github.com/jsphweid/scaledegree/pitch"
	"github.com/spf13/cobra"
)

var (
	inspectFrom uint64
	inspectMax  int
)

func init() {
	inspectCmd.Flags().Uint64Var(&inspectFrom, "from", 0, "start at this tick")
	inspectCmd.Flags().IntVar(&inspectMax, "max", 0, "stop after this many note messages per track")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Lists the chords sounding in a MIDI file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := midi.ReadMidiFile(args[0])
		if err != nil {
			return err
		}
		if inspectFrom > 0 || inspectMax > 0 {
			s = midi.Excerpt(s, inspectFrom, inspectMax)
		}

		for _, c := range chord.GetChords(s) {
			notes := chord.Notes(c)
			names := make([]string, 0, len(notes))
			for _, n := range notes {
				name, err := pitch.SharpName(n)
				if err != nil {
					return err
				}
				names = append(names, name.String())
			}
			fmt.Printf("%8d  %-16s %s\n", c.TicksOffset, chord.Key(notes), strings.Join(names, " "))
		}
		return nil
	},
}
