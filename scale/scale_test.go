package scale

import (
	"testing"

	"github.com/jsphweid/scaledegree/degree"
	"github.com/jsphweid/scaledegree/formula"
	"github.com/jsphweid/scaledegree/pitch"
	"github.com/jsphweid/scaledegree/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allKeys = []string{
	"C", "G", "D", "A", "E", "B", "F#", "C#",
	"F", "Bb", "Eb", "Ab", "Db", "Gb", "Cb",
}

func TestNaturalMinorFromC4(t *testing.T) {
	notes, err := BuildNotes("1 2 b3 4 5 b6 b7 8", "C4")
	require.NoError(t, err)
	assert.Equal(t, []string{"C4", "D4", "Eb4", "F4", "G4", "Ab4", "Bb4", "C5"}, notes.Strings())
	assert.False(t, notes.Degraded())
}

func TestHarmonicMinorFromG4(t *testing.T) {
	notes, err := BuildNotes(Presets["harmonic-minor"], "G4")
	require.NoError(t, err)
	assert.Equal(t, []string{"G4", "A4", "Bb4", "C5", "D5", "Eb5", "F#5", "G5"}, notes.Strings())
}

func TestMajorScaleForEveryKey(t *testing.T) {
	for _, key := range allKeys {
		t.Run(key, func(t *testing.T) {
			notes, err := BuildNotes(Presets["major"], key+"4")
			require.NoError(t, err)
			require.Len(t, notes, 8)
			assert.False(t, notes.Degraded())
			assert.True(t, util.IsAscending(notes.MIDI()))

			root := notes[0].Letter
			for i, n := range notes[:7] {
				assert.Equal(t, root.Add(i), n.Letter)
			}
			assert.Equal(t, notes[0].Spelling, notes[7].Spelling)
			assert.Equal(t, notes[0].MIDI+12, notes[7].MIDI)
			assert.Equal(t, notes[0].Octave+1, notes[7].Octave)
		})
	}
}

func TestFSharpMajorUsesESharp(t *testing.T) {
	notes, err := BuildNotes("1 2 3 4 5 6 7 8", "F#3")
	require.NoError(t, err)
	assert.Equal(t, []string{"F#3", "G#3", "A#3", "B3", "C#4", "D#4", "E#4", "F#4"}, notes.Strings())
}

func TestCbMajorCrossesOctaveOnLetters(t *testing.T) {
	notes, err := BuildNotes("1 2 3 4 5 6 7 8", "Cb4")
	require.NoError(t, err)
	assert.Equal(t, []string{"Cb4", "Db4", "Eb4", "Fb4", "Gb4", "Ab4", "Bb4", "Cb5"}, notes.Strings())
	assert.Equal(t, 59, notes[0].MIDI)
}

func TestDescendingAndOctaveMarkers(t *testing.T) {
	notes, err := BuildNotes("1 #5 6 #1 2 #4 5 ,7", "C3")
	require.NoError(t, err)
	assert.Equal(t, []string{"C3", "G#3", "A3", "C#3", "D3", "F#3", "G3", "B2"}, notes.Strings())
}

func TestSpellingRoundTrip(t *testing.T) {
	for _, key := range allKeys {
		for name, f := range Presets {
			notes, err := BuildNotes(f, key+"3")
			require.NoError(t, err, name)

			anchor, err := pitch.ParseName(key + "3")
			require.NoError(t, err)
			tokens, err := formula.Tokens(f)
			require.NoError(t, err)
			letters := formula.Letters(anchor.Letter, tokens)

			for i, n := range notes {
				if n.Degraded {
					continue
				}
				back, err := pitch.ToMIDI(n.Name.String())
				require.NoError(t, err)
				assert.Equal(t, n.MIDI, back)
				assert.Equal(t, letters[i], n.Letter, "%s %s %d", key, name, i)
			}
		}
	}
}

// Natural roots with single accidentals never need more than a double
// accidental, so the sharp fallback is never taken.
func TestNoFallbackForNaturalRoots(t *testing.T) {
	for _, root := range []string{"C4", "D4", "E4", "F4", "G4", "A3", "B3"} {
		for n := degree.MinNumeral; n <= degree.MaxNumeral; n++ {
			for _, acc := range []string{"b", "", "#"} {
				f := acc + string(rune('0'+n%10))
				if n >= 10 {
					f = acc + "1" + string(rune('0'+n%10))
				}
				notes, err := BuildNotes(f, root)
				require.NoError(t, err)
				assert.False(t, notes.Degraded(), "%s %s", root, f)
			}
		}
	}
}

func TestFallbackIsFlagged(t *testing.T) {
	notes, err := BuildNotes("1 #7", "G#3")
	require.NoError(t, err)
	assert.False(t, notes[0].Degraded)
	assert.True(t, notes[1].Degraded)
	assert.Equal(t, "G#4", notes[1].Name.String())
	assert.True(t, notes.Degraded())
}

func TestIdempotent(t *testing.T) {
	first, err := BuildNotes("1 b3 5 b7 9 #11 13", "Eb3")
	require.NoError(t, err)
	second, err := BuildNotes("1 b3 5 b7 9 #11 13", "Eb3")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestUnknownTokenLeavesNoOutput(t *testing.T) {
	notes, err := BuildNotes("1 2 z3", "C4")
	var unknown *degree.UnknownDegreeError
	require.ErrorAs(t, err, &unknown)
	assert.Nil(t, notes)
}

func TestOutOfRange(t *testing.T) {
	notes, err := BuildNotes("1 15", "C9")
	var rerr *pitch.OutOfRangeError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, 144, rerr.Value)
	assert.Nil(t, notes)
}

func TestBadRoot(t *testing.T) {
	_, err := BuildNotes("1 3 5", "C")
	var perr *pitch.ParseError
	assert.ErrorAs(t, err, &perr)
}

func TestBuildMIDIAndFrequencies(t *testing.T) {
	midis, err := BuildMIDI("1 3 5", "A4")
	require.NoError(t, err)
	assert.Equal(t, []int{69, 73, 76}, midis)

	freqs, err := BuildFrequencies("1 8", "A4")
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{440, 880}, freqs, 1e-9)
}

func TestPresets(t *testing.T) {
	names := PresetNames()
	assert.Len(t, names, len(Presets))
	assert.True(t, util.IsAscending(names))

	_, err := Preset("nope")
	assert.Error(t, err)

	f, err := Preset("lydian")
	require.NoError(t, err)
	notes, err := BuildNotes(f, "F4")
	require.NoError(t, err)
	assert.Equal(t, "B4", notes[3].Name.String())
}
