package progression

import (
	"strconv"

	"github.com/jsphweid/scaledegree/constants"
	"github.com/jsphweid/scaledegree/formula"
	"github.com/jsphweid/scaledegree/model"
	"github.com/jsphweid/scaledegree/pitch"
	"github.com/jsphweid/scaledegree/scale"
	"github.com/pkg/errors"
)

// Template voices a II-V-I. Qualities and Voicings are listed II, V, I.
type Template struct {
	Qualities     [3]string
	Voicings      [3]string
	DefaultOctave int
}

var MajorTemplates = []Template{
	{[3]string{"m7", "7", "ma7"}, [3]string{"1 b3 b7 9", "1 b7 3 13", "1 3 7 9"}, 2},
	{[3]string{"m7", "7", "ma7"}, [3]string{"1 b7 b3 5", "8 3 b7 9", "1 7 3 5"}, 2},
	{[3]string{"m7", "7", "ma7"}, [3]string{"1 5 b7 b3", "1 8 3 b7", "1 5 7 3"}, 2},
}

var MinorTemplates = []Template{
	{[3]string{"m7b5", "7", "mi6"}, [3]string{"1 b5 b7 b3", "1 b7 3 b13", "1 b3 6 9"}, 3},
	{[3]string{"m7b5", "7", "mi6"}, [3]string{"1 b7 b3 b5", "8 3 b7 b9", "1 6 b3 5"}, 3},
	{[3]string{"m7b5", "7", "mi6"}, [3]string{"1 b5 b7 b3", "1 8 3 b7", "1 5 6 b3"}, 2},
}

var DefaultChordRhythm = []string{
	"2n+4n", "8n", "|",
	"8n+4n", "8nr", "8n", "2nr", "|",
	"4n", "8nr", "8n", "2nr", "2n+4n", "4nr",
}

var DefaultBassRhythm = []string{
	"4n", "4n", "4n", "4n", "4n", "4n", "4n", "4n",
	"4n", "4n", "4n", "4n", "4n", "4n", "4n", "4n",
}

type VariantError struct {
	Variant int
	Count   int
}

func (e *VariantError) Error() string {
	return "variant " + strconv.Itoa(e.Variant) + " out of range 0-" + strconv.Itoa(e.Count-1)
}

// octaves keeps each chord's root in a playable register for the key,
// returning the II, V and I octaves.
func octaves(key pitch.Letter, defaultOctave int) (int, int, int) {
	switch key {
	case pitch.C, pitch.D, pitch.E:
		return 3, 2, 3
	case pitch.B:
		return 3, 2, 2
	case pitch.A:
		return 2, 2, 2
	}
	return defaultOctave, defaultOctave, defaultOctave
}

func Templates(minor bool) []Template {
	if minor {
		return MinorTemplates
	}
	return MajorTemplates
}

// TwoFiveOne voices a II-V-I in key, e.g. Dm7 G7 Cma7 for C.
func TwoFiveOne(key string, minor bool, variant int) ([]model.ChordVoicingEntry, error) {
	templates := Templates(minor)
	if variant < 0 || variant >= len(templates) {
		return nil, &VariantError{Variant: variant, Count: len(templates)}
	}
	tmpl := templates[variant]

	k, err := pitch.ParseSpelling(key)
	if err != nil {
		return nil, err
	}
	ii, v, i := octaves(k.Letter, tmpl.DefaultOctave)

	var entries []model.ChordVoicingEntry
	for j, step := range []struct {
		degree string
		octave int
	}{{"2", ii}, {"5", v}, {"1", i}} {
		root, err := formula.RootOf(k.String(), step.degree)
		if err != nil {
			return nil, errors.Wrapf(err, "II-V-I in %s", key)
		}
		entries = append(entries, model.ChordVoicingEntry{
			Label:   root.String() + tmpl.Qualities[j],
			Root:    root.String() + strconv.Itoa(step.octave),
			Voicing: tmpl.Voicings[j],
		})
	}
	return entries, nil
}

// BassLine spells a bass formula from key in the bass octave.
func BassLine(bassFormula string, key string) (pitch.Notes, error) {
	k, err := pitch.ParseSpelling(key)
	if err != nil {
		return nil, err
	}
	return scale.BuildNotes(bassFormula, k.String()+strconv.Itoa(constants.BassOctave))
}

// WalkBass spells one of the II-V-I walking bass patterns for key.
func WalkBass(key string, minor bool, pattern int) (pitch.Notes, error) {
	patterns := MajorWalkBass
	if minor {
		patterns = MinorWalkBass
	}
	if pattern < 0 || pattern >= len(patterns) {
		return nil, &VariantError{Variant: pattern, Count: len(patterns)}
	}
	return BassLine(patterns[pattern], key)
}
