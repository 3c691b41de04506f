package cmd

import (
	"testing"

	"github.com/jsphweid/scaledegree/scale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaleFormula(t *testing.T) {
	f, err := scaleFormula("", []string{"C4", "1 3 5"})
	require.NoError(t, err)
	assert.Equal(t, "1 3 5", f)

	f, err = scaleFormula("dorian", []string{"D3"})
	require.NoError(t, err)
	assert.Equal(t, scale.Presets["dorian"], f)
}

func TestScaleFormulaNeedsExactlyOneSource(t *testing.T) {
	_, err := scaleFormula("dorian", []string{"D3", "1 3 5"})
	assert.Error(t, err)

	_, err = scaleFormula("", []string{"D3"})
	assert.Error(t, err)

	_, err = scaleFormula("nope", []string{"D3"})
	assert.Error(t, err)
}
