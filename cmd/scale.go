package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/scaledegree/pitch"
	"github.com/jsphweid/scaledegree/scale"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var scalePreset string

func init() {
	scaleCmd.Flags().StringVarP(&scalePreset, "preset", "p", "", "use a named formula instead of a formula argument")
	rootCmd.AddCommand(scaleCmd)
}

var scaleCmd = &cobra.Command{
	Use:   "scale <root> [formula]",
	Short: "Spells a melodic formula from a root",
	Long: `Spells a melodic formula from a root, e.g.

  scaledegree scale G4 "1 2 b3 4 5 b6 7 8"
  scaledegree scale --preset dorian D3`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := scaleFormula(scalePreset, args)
		if err != nil {
			return err
		}
		notes, err := scale.BuildNotes(f, args[0])
		if err != nil {
			return err
		}
		printNotes(notes)
		return nil
	},
}

// scaleFormula picks the formula from either --preset or the second
// argument; exactly one of them must be given.
func scaleFormula(preset string, args []string) (string, error) {
	switch {
	case preset != "" && len(args) == 2:
		return "", errors.New("give either a formula or --preset, not both")
	case preset != "":
		return scale.Preset(preset)
	case len(args) == 2:
		return args[1], nil
	}
	return "", errors.New("need a formula or --preset")
}

func printNotes(notes pitch.Notes) {
	fmt.Printf("notes: %v\n", strings.Join(notes.Strings(), " "))
	fmt.Printf("midi:  %v\n", notes.MIDI())
	if notes.Degraded() {
		fmt.Println("some notes could not take their expected letter and were spelled with sharps")
	}
}
