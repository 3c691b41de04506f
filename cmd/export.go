package cmd

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jsphweid/scaledegree/constants"
	"github.com/jsphweid/scaledegree/midi"
	"github.com/jsphweid/scaledegree/model"
	"github.com/jsphweid/scaledegree/progression"
	"github.com/jsphweid/scaledegree/rhythm"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	exportPath string
	exportBPM  float64
)

func init() {
	exportCmd.Flags().BoolVarP(&minor, "minor", "m", false, "minor II-V-I")
	exportCmd.Flags().IntVarP(&variant, "variant", "v", 0, "voicing template")
	exportCmd.Flags().IntVarP(&pattern, "pattern", "p", 0, "bass pattern")
	exportCmd.Flags().StringVarP(&exportPath, "out", "o", "", "output file (default a new file in SCALEDEGREE_OUT_DIR)")
	exportCmd.Flags().Float64Var(&exportBPM, "bpm", 0, "tempo (default SCALEDEGREE_BPM)")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <key>",
	Short: "Writes a II-V-I with walking bass to a MIDI file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parts, err := TwoFiveOneParts(args[0], minor, variant, pattern)
		if err != nil {
			return err
		}

		path := exportPath
		if path == "" {
			if err := os.MkdirAll(constants.GetOutDir(), 0755); err != nil {
				return errors.Wrap(err, "creating output dir")
			}
			path = filepath.Join(constants.GetOutDir(), uuid.New().String()+".mid")
		}
		bpm := exportBPM
		if bpm <= 0 {
			bpm = constants.GetBPM()
		}
		if err := midi.WriteFile(path, parts, bpm); err != nil {
			return err
		}
		logrus.WithField("path", path).Info("exported")
		return nil
	},
}

// TwoFiveOneParts lays out a comped II-V-I and a walking bass under it.
func TwoFiveOneParts(key string, minor bool, variant int, pattern int) ([]model.Part, error) {
	entries, err := progression.TwoFiveOne(key, minor, variant)
	if err != nil {
		return nil, err
	}
	durations, groups, err := progression.Build(entries, progression.DefaultChordRhythm)
	if err != nil {
		return nil, err
	}
	chordEvents, err := progression.Events(durations, groups, constants.DefaultVelocity, 0)
	if err != nil {
		return nil, err
	}

	bass, err := progression.WalkBass(key, minor, pattern)
	if err != nil {
		return nil, err
	}
	bassPitches := make([][]int, len(bass))
	for i, n := range bass {
		bassPitches[i] = []int{n.MIDI}
	}
	bassEvents, err := rhythm.Merge(progression.DefaultBassRhythm, bassPitches, constants.DefaultVelocity, 0)
	if err != nil {
		return nil, err
	}

	return []model.Part{
		{Name: "chords", Channel: 0, Events: chordEvents},
		{Name: "bass", Channel: 1, Events: bassEvents},
	}, nil
}
