package scale

import (
	"github.com/jsphweid/scaledegree/util"
	"github.com/pkg/errors"
)

var Presets = map[string]string{
	"major":          "1 2 3 4 5 6 7 8",
	"natural-minor":  "1 2 b3 4 5 b6 b7 8",
	"harmonic-minor": "1 2 b3 4 5 b6 7 8",
	"melodic-minor":  "1 2 b3 4 5 6 7 8",

	"ionian":     "1 2 3 4 5 6 7 8",
	"dorian":     "1 2 b3 4 5 6 b7 8",
	"phrygian":   "1 b2 b3 4 5 b6 b7 8",
	"lydian":     "1 2 3 #4 5 6 7 8",
	"mixolydian": "1 2 3 4 5 6 b7 8",
	"aeolian":    "1 2 b3 4 5 b6 b7 8",
	"locrian":    "1 b2 b3 4 b5 b6 b7 8",

	// modes of the major scale built on its root
	"rel-dorian":     "2 3 4 5 6 7 8 9",
	"rel-phrygian":   "3 4 5 6 7 8 9 10",
	"rel-lydian":     "4 5 6 7 8 9 10 11",
	"rel-mixolydian": ",5 ,6 ,7 1 2 3 4 5",
	"rel-aeolian":    ",6 ,7 1 2 3 4 5 6",
	"rel-locrian":    ",7 1 2 3 4 5 6 7",

	"minor-pentatonic": "1 b3 4 5 b7 8",
	"major-pentatonic": "1 2 3 5 6 8",
	"minor-blues":      "1 b3 4 b5 5 b7 8",
	"major-blues":      "1 2 b3 3 5 6 8",
}

func Preset(name string) (string, error) {
	f, ok := Presets[name]
	if !ok {
		return "", errors.Errorf("unknown scale preset %q", name)
	}
	return f, nil
}

func PresetNames() []string {
	return util.GetSortedKeys(Presets)
}
