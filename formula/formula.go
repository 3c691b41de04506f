package formula

import (
	"fmt"
	"strings"

	"github.com/jsphweid/scaledegree/degree"
	"github.com/jsphweid/scaledegree/pitch"
)

type MalformedError struct {
	Formula string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed formula: %q", e.Formula)
}

// Tokens splits a formula on whitespace and parses every degree. Nothing is
// returned unless every token parses.
func Tokens(formula string) ([]degree.Token, error) {
	fields := strings.Fields(formula)
	if len(fields) == 0 {
		return nil, &MalformedError{Formula: formula}
	}
	tokens := make([]degree.Token, 0, len(fields))
	for _, f := range fields {
		tok, err := degree.Parse(f)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// Letters gives the diatonic letter each token must be spelled with when
// counted up from root. Accidentals and octave markers do not matter.
func Letters(root pitch.Letter, tokens []degree.Token) []pitch.Letter {
	res := make([]pitch.Letter, len(tokens))
	for i, tok := range tokens {
		res[i] = root.Add(tok.LetterNumeral() - 1)
	}
	return res
}

func ScaleOffsets(tokens []degree.Token) []int {
	res := make([]int, len(tokens))
	for i, tok := range tokens {
		res[i] = tok.Offset()
	}
	return res
}

// ChordOffsets stacks the tokens lowest voice first: each offset is raised by
// octaves until it is at least the one before it.
func ChordOffsets(tokens []degree.Token) []int {
	res := make([]int, len(tokens))
	for i, tok := range tokens {
		curr := tok.Offset()
		if i > 0 {
			for curr < res[i-1] {
				curr += 12
			}
		}
		res[i] = curr
	}
	return res
}

// Scale resolves a melodic formula; entries may ascend, descend or repeat.
func Scale(formula string) ([]int, error) {
	tokens, err := Tokens(formula)
	if err != nil {
		return nil, err
	}
	return ScaleOffsets(tokens), nil
}

// Chord resolves an open voicing such as "5 9 3 7" into ascending offsets.
func Chord(voicing string) ([]int, error) {
	tokens, err := Tokens(voicing)
	if err != nil {
		return nil, err
	}
	return ChordOffsets(tokens), nil
}
