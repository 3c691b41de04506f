package pitch

import (
	"github.com/jsphweid/scaledegree/constants"
	"github.com/jsphweid/scaledegree/util"
	"github.com/sirupsen/logrus"
)

type tableEntry struct {
	accidental Accidental
	octave     int
	ok         bool
}

// spellings[midi][letter] holds the accidental and octave that make the
// letter sound at midi, if one within a double flat/sharp exists. Built once
// in init and only read afterwards.
var spellings [constants.MaxMIDI + 1][NumLetters]tableEntry

var sharpFamily = [12]Spelling{
	{C, Natural}, {C, Sharp}, {D, Natural}, {D, Sharp}, {E, Natural}, {F, Natural},
	{F, Sharp}, {G, Natural}, {G, Sharp}, {A, Natural}, {A, Sharp}, {B, Natural},
}

func init() {
	for midi := constants.MinMIDI; midi <= constants.MaxMIDI; midi++ {
		for l := A; l <= G; l++ {
			spellings[midi][l] = reach(midi, l)
		}
	}
}

func reach(midi int, l Letter) tableEntry {
	d := midi - l.Natural()
	alt := util.Mod(d+6, 12) - 6
	if alt < int(DoubleFlat) || alt > int(DoubleSharp) {
		return tableEntry{}
	}
	return tableEntry{
		accidental: Accidental(alt),
		octave:     (d-alt)/12 - 1,
		ok:         true,
	}
}

// Note is a spelled pitch plus its MIDI number. Degraded is set when the
// expected letter could not reach the pitch and the sharp spelling was used
// instead.
type Note struct {
	Name
	MIDI     int
	Degraded bool
}

type Notes []Note

func (ns Notes) Strings() []string {
	res := make([]string, len(ns))
	for i, n := range ns {
		res[i] = n.Name.String()
	}
	return res
}

func (ns Notes) MIDI() []int {
	res := make([]int, len(ns))
	for i, n := range ns {
		res[i] = n.MIDI
	}
	return res
}

// Degraded reports whether any note fell back to its sharp spelling.
func (ns Notes) Degraded() bool {
	for _, n := range ns {
		if n.Degraded {
			return true
		}
	}
	return false
}

func checkRange(midi int) error {
	if !util.InRange(midi, constants.MinMIDI, constants.MaxMIDI) {
		return &OutOfRangeError{Value: midi}
	}
	return nil
}

// Lookup returns the spelling of midi that uses letter, if there is one.
func Lookup(midi int, letter Letter) (Name, bool) {
	if checkRange(midi) != nil || letter < A || letter > G {
		return Name{}, false
	}
	e := spellings[midi][letter]
	if !e.ok {
		return Name{}, false
	}
	return Name{Spelling: Spelling{Letter: letter, Accidental: e.accidental}, Octave: e.octave}, true
}

// SharpName spells midi with naturals and sharps only.
func SharpName(midi int) (Name, error) {
	if err := checkRange(midi); err != nil {
		return Name{}, err
	}
	return Name{Spelling: sharpFamily[midi%12], Octave: midi/12 - 1}, nil
}

// Spell names midi with the expected letter.
func Spell(midi int, letter Letter) (Note, error) {
	if err := checkRange(midi); err != nil {
		return Note{}, err
	}
	if name, ok := Lookup(midi, letter); ok {
		return Note{Name: name, MIDI: midi}, nil
	}

	name, _ := SharpName(midi)
	logrus.WithFields(logrus.Fields{
		"midi":     midi,
		"letter":   letter.String(),
		"fallback": name.String(),
	}).Warn("letter cannot spell pitch, using sharp spelling")
	return Note{Name: name, MIDI: midi, Degraded: true}, nil
}

// Transpose shifts each note by halfSteps and respells it with sharps. The
// original letters are not preserved.
func Transpose(names []string, halfSteps int) ([]Name, error) {
	res := make([]Name, 0, len(names))
	for _, s := range names {
		m, err := ToMIDI(s)
		if err != nil {
			return nil, err
		}
		n, err := SharpName(m + halfSteps)
		if err != nil {
			return nil, err
		}
		res = append(res, n)
	}
	return res, nil
}
