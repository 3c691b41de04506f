package degree

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jsphweid/scaledegree/util"
)

const (
	OctaveUp   = 'u'
	OctaveDown = ','
)

const (
	MinNumeral = 1
	MaxNumeral = 15
)

// half steps above the root for the bare numerals 1 through 7
var majorSteps = [7]int{0, 2, 4, 5, 7, 9, 11}

// majorOffset extends majorSteps by octaves, so 9 is 14 and 15 is 24.
// Numerals below 1 count down from the root.
func majorOffset(numeral int) int {
	k := numeral - 1
	step := util.Mod(k, 7)
	return 12*((k-step)/7) + majorSteps[step]
}

type special struct {
	numeral int
	offset  int
}

var specials = map[string]special{
	"sus":  {numeral: 4, offset: 5},
	"sus2": {numeral: 2, offset: 2},
	"d7":   {numeral: 7, offset: 9},
}

var accidentals = map[string]int{
	"":   0,
	"#":  1,
	"##": 2,
	"x":  2,
	"b":  -1,
	"bb": -2,
}

type UnknownDegreeError struct {
	Token string
}

func (e *UnknownDegreeError) Error() string {
	return fmt.Sprintf("unknown scale degree: %q", e.Token)
}

// Token is a parsed scale degree such as ",b7" or "u#11".
type Token struct {
	Raw        string
	Octave     int // +1 per 'u', -1 per ','
	Accidental int // -2..2
	Numeral    int // 1..15, or the numeral a special token stands for
	Special    string
}

// Offset is the signed number of half steps from the formula's root.
func (t Token) Offset() int {
	base := majorOffset(t.Numeral) + t.Accidental
	if t.Special != "" {
		base = specials[t.Special].offset
	}
	return base + 12*t.Octave
}

// LetterNumeral is the numeral that decides the token's letter; "sus" is
// spelled like a 4.
func (t Token) LetterNumeral() int {
	return t.Numeral
}

func (t Token) String() string {
	return t.Raw
}

func Parse(raw string) (Token, error) {
	tok := Token{Raw: raw}
	rest := raw

	var marker byte
	for len(rest) > 0 && (rest[0] == OctaveUp || rest[0] == OctaveDown) {
		if marker != 0 && rest[0] != marker {
			return Token{}, &UnknownDegreeError{Token: raw}
		}
		marker = rest[0]
		if marker == OctaveUp {
			tok.Octave++
		} else {
			tok.Octave--
		}
		rest = rest[1:]
	}

	if s, ok := specials[rest]; ok {
		tok.Special = rest
		tok.Numeral = s.numeral
		return tok, nil
	}

	i := strings.IndexFunc(rest, func(r rune) bool { return r >= '0' && r <= '9' })
	if i < 0 {
		return Token{}, &UnknownDegreeError{Token: raw}
	}
	acc, ok := accidentals[rest[:i]]
	if !ok {
		return Token{}, &UnknownDegreeError{Token: raw}
	}
	numeral, err := strconv.Atoi(rest[i:])
	if err != nil || numeral < MinNumeral || numeral > MaxNumeral || rest[i] == '0' {
		return Token{}, &UnknownDegreeError{Token: raw}
	}

	tok.Accidental = acc
	tok.Numeral = numeral
	return tok, nil
}

func OffsetOf(raw string) (int, error) {
	tok, err := Parse(raw)
	if err != nil {
		return 0, err
	}
	return tok.Offset(), nil
}

// Lexicon lists the documented bare tokens with their offsets.
func Lexicon() map[string]int {
	res := make(map[string]int)
	for n := MinNumeral; n <= MaxNumeral; n++ {
		for _, acc := range []string{"b", "", "#"} {
			tok := Token{Numeral: n, Accidental: accidentals[acc]}
			res[acc+strconv.Itoa(n)] = tok.Offset()
		}
	}
	for name, s := range specials {
		res[name] = s.offset
	}
	return res
}
