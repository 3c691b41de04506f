package cmd

import (
	"fmt"
	"strconv"

	"github.com/jsphweid/scaledegree/pitch"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(transposeCmd)
}

var transposeCmd = &cobra.Command{
	Use:   "transpose <half steps> <note>...",
	Short: "Moves notes by half steps, spelled with sharps",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		steps, err := strconv.Atoi(args[0])
		if err != nil {
			return errors.Wrapf(err, "half steps %q", args[0])
		}
		names, err := pitch.Transpose(args[1:], steps)
		if err != nil {
			return err
		}
		for _, n := range names {
			fmt.Printf("%v ", n)
		}
		fmt.Println()
		return nil
	},
}
