package chord

import (
	"fmt"
	"sort"

	"github.com/jsphweid/scaledegree/formula"
	"github.com/jsphweid/scaledegree/pitch"
	"github.com/pkg/errors"
)

// BuildNotes stacks an open voicing above root, lowest voice first, so
// BuildNotes("5 9 3 7", "D3") gives A3 E4 F#4 C#5.
func BuildNotes(voicing string, root string) (pitch.Notes, error) {
	anchor, err := pitch.ParseName(root)
	if err != nil {
		return nil, err
	}
	tokens, err := formula.Tokens(voicing)
	if err != nil {
		return nil, errors.Wrapf(err, "voicing %q", voicing)
	}
	notes, err := formula.Spell(anchor, tokens, formula.ChordOffsets(tokens))
	if err != nil {
		return nil, errors.Wrapf(err, "voicing %q on %s", voicing, root)
	}
	return notes, nil
}

// BuildArray voices several chords on the same root.
func BuildArray(voicings []string, root string) ([]pitch.Notes, error) {
	res := make([]pitch.Notes, 0, len(voicings))
	for _, v := range voicings {
		notes, err := BuildNotes(v, root)
		if err != nil {
			return nil, err
		}
		res = append(res, notes)
	}
	return res, nil
}

func BuildMIDI(voicings []string, root string) ([][]int, error) {
	chords, err := BuildArray(voicings, root)
	if err != nil {
		return nil, err
	}
	res := make([][]int, len(chords))
	for i, c := range chords {
		res[i] = c.MIDI()
	}
	return res, nil
}

func BuildFrequencies(voicings []string, root string) ([][]float64, error) {
	chords, err := BuildMIDI(voicings, root)
	if err != nil {
		return nil, err
	}
	res := make([][]float64, len(chords))
	for i, c := range chords {
		res[i] = make([]float64, len(c))
		for j, m := range c {
			res[i][j] = pitch.Frequency(m)
		}
	}
	return res, nil
}

// Key identifies a chord by its sorted MIDI numbers, e.g. "60-64-67".
func Key(notes []int) string {
	sorted := append([]int(nil), notes...)
	sort.Ints(sorted)
	var res string
	for i, note := range sorted {
		res += fmt.Sprintf("%v", note)
		if i < len(sorted)-1 {
			res += "-"
		}
	}
	return res
}
