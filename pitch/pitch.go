package pitch

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jsphweid/scaledegree/constants"
	"github.com/jsphweid/scaledegree/util"
)

// Letter indexes the cyclic sequence A B C D E F G.
type Letter int

const (
	A Letter = iota
	B
	C
	D
	E
	F
	G
)

const NumLetters = 7

var letterNames = "ABCDEFG"

// pitch class of each natural letter, C = 0
var naturals = [NumLetters]int{9, 11, 0, 2, 4, 5, 7}

func (l Letter) String() string {
	if l < A || l > G {
		return "?"
	}
	return letterNames[l : l+1]
}

// Natural is the pitch class of the unaltered letter.
func (l Letter) Natural() int {
	return naturals[l]
}

// Add moves n letters up the cycle, wrapping G to A.
func (l Letter) Add(n int) Letter {
	return Letter(util.Mod(int(l)+n, NumLetters))
}

func ParseLetter(r byte) (Letter, bool) {
	i := strings.IndexByte(letterNames, r)
	if i < 0 {
		i = strings.IndexByte(letterNames, r-'a'+'A')
	}
	if i < 0 {
		return 0, false
	}
	return Letter(i), true
}

// Accidental is the number of half steps a letter is raised (negative for
// flats).
type Accidental int

const (
	DoubleFlat  Accidental = -2
	Flat        Accidental = -1
	Natural     Accidental = 0
	Sharp       Accidental = 1
	DoubleSharp Accidental = 2
)

func (a Accidental) String() string {
	switch a {
	case DoubleFlat:
		return "bb"
	case Flat:
		return "b"
	case Natural:
		return ""
	case Sharp:
		return "#"
	case DoubleSharp:
		return "x"
	}
	return fmt.Sprintf("(%+d)", int(a))
}

func parseAccidental(s string) (Accidental, bool) {
	switch s {
	case "bb":
		return DoubleFlat, true
	case "b":
		return Flat, true
	case "":
		return Natural, true
	case "#":
		return Sharp, true
	case "x", "##":
		return DoubleSharp, true
	}
	return 0, false
}

// Spelling is a letter plus accidental with no octave, e.g. "Eb".
type Spelling struct {
	Letter     Letter
	Accidental Accidental
}

func (s Spelling) String() string {
	return s.Letter.String() + s.Accidental.String()
}

// PitchClass is in 0..11.
func (s Spelling) PitchClass() int {
	return util.Mod(s.Letter.Natural()+int(s.Accidental), 12)
}

// octaves a name may carry; anything wider is not a pitch name
const (
	MinOctave = -2
	MaxOctave = 10
)

// Name is a fully spelled pitch such as "F#4" or "Ebb3". C4 is MIDI 60 and
// the octave number changes between B and C, so B#3 and C4 sound the same.
type Name struct {
	Spelling
	Octave int
}

func (n Name) String() string {
	return n.Spelling.String() + strconv.Itoa(n.Octave)
}

// MIDI may fall outside 0..127 for extreme octaves.
func (n Name) MIDI() int {
	return 12*(n.Octave+1) + n.Letter.Natural() + int(n.Accidental)
}

type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse pitch name: %q", e.Input)
}

type OutOfRangeError struct {
	Value int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("pitch %d outside MIDI range %d-%d", e.Value, constants.MinMIDI, constants.MaxMIDI)
}

func splitSpelling(s string) (Spelling, string, bool) {
	if len(s) == 0 {
		return Spelling{}, "", false
	}
	letter, ok := ParseLetter(s[0])
	if !ok {
		return Spelling{}, "", false
	}
	i := 1
	for i < len(s) && strings.IndexByte("b#x", s[i]) >= 0 {
		i++
	}
	acc, ok := parseAccidental(s[1:i])
	if !ok {
		return Spelling{}, "", false
	}
	return Spelling{Letter: letter, Accidental: acc}, s[i:], true
}

// ParseSpelling reads a key such as "G", "Eb" or "F#". A trailing octave
// number is accepted and ignored.
func ParseSpelling(s string) (Spelling, error) {
	sp, rest, ok := splitSpelling(strings.TrimSpace(s))
	if !ok {
		return Spelling{}, &ParseError{Input: s}
	}
	if rest != "" {
		if _, err := strconv.Atoi(rest); err != nil {
			return Spelling{}, &ParseError{Input: s}
		}
	}
	return sp, nil
}

// ParseName reads a pitch such as "C4", "Bb3", "Cx5" or "C-1".
func ParseName(s string) (Name, error) {
	sp, rest, ok := splitSpelling(strings.TrimSpace(s))
	if !ok || rest == "" {
		return Name{}, &ParseError{Input: s}
	}
	octave, err := strconv.Atoi(rest)
	if err != nil || !util.InRange(octave, MinOctave, MaxOctave) {
		return Name{}, &ParseError{Input: s}
	}
	return Name{Spelling: sp, Octave: octave}, nil
}

// ToMIDI parses a name and checks that it lies on the keyboard.
func ToMIDI(s string) (int, error) {
	n, err := ParseName(s)
	if err != nil {
		return 0, err
	}
	m := n.MIDI()
	if !util.InRange(m, constants.MinMIDI, constants.MaxMIDI) {
		return 0, &OutOfRangeError{Value: m}
	}
	return m, nil
}

// Frequency in Hz with A4 = 440.
func Frequency(midi int) float64 {
	return constants.ConcertA * math.Pow(2, float64(midi-69)/12)
}
