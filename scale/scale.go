package scale

import (
	"github.com/jsphweid/scaledegree/formula"
	"github.com/jsphweid/scaledegree/pitch"
	"github.com/pkg/errors"
)

// BuildNotes spells a melodic formula from root, e.g.
// BuildNotes("1 2 b3 4 5 b6 7 8", "G4") gives G4 A4 Bb4 C5 D5 Eb5 F#5 G5.
func BuildNotes(f string, root string) (pitch.Notes, error) {
	anchor, err := pitch.ParseName(root)
	if err != nil {
		return nil, err
	}
	tokens, err := formula.Tokens(f)
	if err != nil {
		return nil, errors.Wrapf(err, "scale %q", f)
	}
	notes, err := formula.Spell(anchor, tokens, formula.ScaleOffsets(tokens))
	if err != nil {
		return nil, errors.Wrapf(err, "scale %q from %s", f, root)
	}
	return notes, nil
}

func BuildMIDI(f string, root string) ([]int, error) {
	notes, err := BuildNotes(f, root)
	if err != nil {
		return nil, err
	}
	return notes.MIDI(), nil
}

func BuildFrequencies(f string, root string) ([]float64, error) {
	midis, err := BuildMIDI(f, root)
	if err != nil {
		return nil, err
	}
	res := make([]float64, len(midis))
	for i, m := range midis {
		res[i] = pitch.Frequency(m)
	}
	return res, nil
}
