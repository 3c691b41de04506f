package cmd

import (
	"fmt"

	"github.com/jsphweid/scaledegree/formula"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(degreeCmd)
}

var degreeCmd = &cobra.Command{
	Use:   "degree <key> <degree>",
	Short: "Names a degree of a key, e.g. the b6 of G is Eb",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := formula.RootOf(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Println(root)
		return nil
	},
}
