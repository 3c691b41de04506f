package formula

import (
	"fmt"

	"github.com/jsphweid/scaledegree/degree"
	"github.com/jsphweid/scaledegree/pitch"
	"github.com/jsphweid/scaledegree/util"
)

type UnspellableError struct {
	Key    string
	Degree string
	Diff   int
}

func (e *UnspellableError) Error() string {
	return fmt.Sprintf("degree %q of %s needs %+d half steps of accidentals", e.Degree, e.Key, e.Diff)
}

// RootOf names a scale degree of a key without an octave, e.g. the b6 of G
// is Eb. A trailing octave number on key is ignored.
func RootOf(key string, token string) (pitch.Spelling, error) {
	root, err := pitch.ParseSpelling(key)
	if err != nil {
		return pitch.Spelling{}, err
	}
	tok, err := degree.Parse(token)
	if err != nil {
		return pitch.Spelling{}, err
	}

	letter := Letters(root.Letter, []degree.Token{tok})[0]
	target := util.Mod(root.PitchClass()+tok.Offset(), 12)
	diff := util.Mod(target-letter.Natural()+6, 12) - 6
	if diff < int(pitch.DoubleFlat) || diff > int(pitch.DoubleSharp) {
		return pitch.Spelling{}, &UnspellableError{Key: key, Degree: token, Diff: diff}
	}
	return pitch.Spelling{Letter: letter, Accidental: pitch.Accidental(diff)}, nil
}
