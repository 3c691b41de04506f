package cmd

import (
	"github.com/jsphweid/scaledegree/chord"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(chordCmd)
}

var chordCmd = &cobra.Command{
	Use:   "chord <root> <voicing>",
	Short: "Stacks an open voicing above a root",
	Long: `Stacks an open voicing above a root, lowest voice first, e.g.

  scaledegree chord D3 "5 9 3 7"   # A3 E4 F#4 C#5`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		notes, err := chord.BuildNotes(args[1], args[0])
		if err != nil {
			return err
		}
		printNotes(notes)
		return nil
	},
}
