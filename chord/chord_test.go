package chord

import (
	"testing"

	"github.com/jsphweid/scaledegree/degree"
	"github.com/jsphweid/scaledegree/model"
	"github.com/jsphweid/scaledegree/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func TestOpenVoicingStacksUpward(t *testing.T) {
	notes, err := BuildNotes("5 9 3 7", "D3")
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal([]string{"A3", "E4", "F#4", "C#5"}, notes.Strings())
	assert.Equal([]int{57, 64, 66, 73}, notes.MIDI())
}

func TestMinorSeventhVoicing(t *testing.T) {
	notes, err := BuildNotes("1 b3 b7 9", "D3")
	require.NoError(t, err)
	assert.Equal(t, []string{"D3", "F3", "C4", "E4"}, notes.Strings())
}

func TestEveryOrderIsStrictlyAscending(t *testing.T) {
	tones := []string{"5", "9", "3", "7"}
	var permute func(prefix []string, rest []string)
	count := 0
	permute = func(prefix []string, rest []string) {
		if len(rest) == 0 {
			count++
			voicing := prefix[0] + " " + prefix[1] + " " + prefix[2] + " " + prefix[3]
			notes, err := BuildNotes(voicing, "D3")
			require.NoError(t, err)
			require.Len(t, notes, 4)
			for i := 1; i < len(notes); i++ {
				assert.Greater(t, notes[i].MIDI, notes[i-1].MIDI, voicing)
			}
			return
		}
		for i := range rest {
			next := append(append([]string(nil), rest[:i]...), rest[i+1:]...)
			permute(append(append([]string(nil), prefix...), rest[i]), next)
		}
	}
	permute(nil, tones)
	assert.Equal(t, 24, count)
}

func TestDominantThirteenthOnG2(t *testing.T) {
	notes, err := BuildNotes("1 b7 3 13", "G2")
	require.NoError(t, err)
	assert.Equal(t, []string{"G2", "F3", "B3", "E4"}, notes.Strings())
	assert.True(t, util.IsAscending(notes.MIDI()))
}

func TestOctaveUpMarkerInVoicing(t *testing.T) {
	notes, err := BuildNotes("b7 10 13 u9", "C3")
	require.NoError(t, err)
	assert.Equal(t, []string{"Bb3", "E4", "A4", "D5"}, notes.Strings())
}

func TestVoicingErrors(t *testing.T) {
	notes, err := BuildNotes("1 3 q5", "C3")
	var unknown *degree.UnknownDegreeError
	require.ErrorAs(t, err, &unknown)
	assert.Nil(t, notes)

	_, err = BuildNotes("1 3 5", "nope")
	assert.Error(t, err)
}

func TestBuildArrayAndMIDI(t *testing.T) {
	chords, err := BuildArray([]string{"1 3 5", "1 b3 5"}, "C4")
	require.NoError(t, err)
	require.Len(t, chords, 2)
	assert.Equal(t, []string{"C4", "Eb4", "G4"}, chords[1].Strings())

	midis, err := BuildMIDI([]string{"1 3 5"}, "C4")
	require.NoError(t, err)
	assert.Equal(t, [][]int{{60, 64, 67}}, midis)

	freqs, err := BuildFrequencies([]string{"1 8"}, "A4")
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{440, 880}, freqs[0], 1e-9)
}

func TestKey(t *testing.T) {
	in := []int{67, 60, 64}
	assert.Equal(t, "60-64-67", Key(in))
	assert.Equal(t, []int{67, 60, 64}, in)
	assert.Equal(t, "", Key(nil))
}

func TestGetChords(t *testing.T) {
	s := smf.New()
	var track smf.Track
	track.Add(0, midi.NoteOn(0, 60, 100))
	track.Add(0, midi.NoteOn(0, 64, 100))
	track.Add(480, midi.NoteOff(0, 60))
	track.Add(0, midi.NoteOff(0, 64))
	track.Add(0, midi.NoteOn(0, 67, 100))
	track.Add(480, midi.NoteOff(0, 67))
	track.Close(0)
	require.NoError(t, s.Add(track))

	chords := GetChords(s)
	assert.Equal(t, []model.Chord{
		{TicksOffset: 0, Notes: []uint8{60, 64}},
		{TicksOffset: 480, Notes: []uint8{67}},
	}, chords)
	assert.Equal(t, []int{60, 64}, Notes(chords[0]))
}
