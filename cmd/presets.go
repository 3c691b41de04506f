package cmd

import (
	"fmt"

	"github.com/jsphweid/scaledegree/progression"
	"github.com/jsphweid/scaledegree/scale"
	"github.com/jsphweid/scaledegree/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(presetsCmd)
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "Lists named scale formulas and the bass and voicing libraries",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range scale.PresetNames() {
			fmt.Printf("%-20s %s\n", name, scale.Presets[name])
		}
		for _, name := range util.GetSortedKeys(progression.Library) {
			fmt.Printf("\n%s:\n", name)
			for i, f := range progression.Library[name] {
				fmt.Printf("  %d  %s\n", i, f)
			}
		}
	},
}
