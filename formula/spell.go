package formula

import (
	"github.com/jsphweid/scaledegree/degree"
	"github.com/jsphweid/scaledegree/pitch"
)

// Spell anchors offsets at root and names each pitch with the letter its
// token expects. offsets must line up with tokens.
func Spell(root pitch.Name, tokens []degree.Token, offsets []int) (pitch.Notes, error) {
	base := root.MIDI()
	expected := Letters(root.Letter, tokens)
	res := make(pitch.Notes, 0, len(tokens))
	for i, offset := range offsets {
		n, err := pitch.Spell(base+offset, expected[i])
		if err != nil {
			return nil, err
		}
		res = append(res, n)
	}
	return res, nil
}
