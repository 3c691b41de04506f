package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/scaledegree/progression"
	"github.com/jsphweid/scaledegree/rhythm"
	"github.com/spf13/cobra"
)

var (
	minor   bool
	variant int
	pattern int
)

func init() {
	progressionCmd.Flags().BoolVarP(&minor, "minor", "m", false, "minor II-V-I")
	progressionCmd.Flags().IntVarP(&variant, "variant", "v", 0, "voicing template")
	walkbassCmd.Flags().BoolVarP(&minor, "minor", "m", false, "minor II-V-I")
	walkbassCmd.Flags().IntVarP(&pattern, "pattern", "p", 0, "bass pattern")
	rootCmd.AddCommand(progressionCmd)
	rootCmd.AddCommand(walkbassCmd)
}

var progressionCmd = &cobra.Command{
	Use:   "progression <key>",
	Short: "Voices a II-V-I in a key over the default comping rhythm",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := progression.TwoFiveOne(args[0], minor, variant)
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Printf("%-8s %-4s %s\n", e.Label, e.Root, e.Voicing)
		}

		durations, groups, err := progression.Build(entries, progression.DefaultChordRhythm)
		if err != nil {
			return err
		}
		next := 0
		for _, d := range durations {
			if rhythm.IsRest(d) {
				fmt.Printf("%-6s -\n", d)
				continue
			}
			fmt.Printf("%-6s %s\n", d, strings.Join(groups[next].Strings(), " "))
			next++
		}
		return nil
	},
}

var walkbassCmd = &cobra.Command{
	Use:   "walkbass <key>",
	Short: "Spells a walking bass line over a II-V-I",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		notes, err := progression.WalkBass(args[0], minor, pattern)
		if err != nil {
			return err
		}
		printNotes(notes)
		return nil
	},
}
