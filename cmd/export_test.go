package cmd

import (
	"path/filepath"
	"testing"

	"github.com/jsphweid/scaledegree/midi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTwoFiveOneParts(t *testing.T) {
	parts, err := TwoFiveOneParts("C", false, 0, 0)
	require.NoError(t, err)
	require.Len(t, parts, 2)
	assert.Len(t, parts[0].Events, 7)
	assert.Len(t, parts[1].Events, 16)
	assert.Equal(t, []int{50}, parts[1].Events[0].Pitches)
	assert.Equal(t, uint32(15*960), parts[1].Events[15].StartTicks)

	path := filepath.Join(t.TempDir(), "251.mid")
	require.NoError(t, midi.WriteFile(path, parts, 120))
	notes, err := midi.ReadNotes(path)
	require.NoError(t, err)
	assert.Len(t, notes, 7*4+16)
}

func TestTwoFiveOnePartsErrors(t *testing.T) {
	_, err := TwoFiveOneParts("C", false, 0, 12)
	assert.Error(t, err)
	_, err = TwoFiveOneParts("X", true, 0, 0)
	assert.Error(t, err)
}
