package formula

import (
	"testing"

	"github.com/jsphweid/scaledegree/degree"
	"github.com/jsphweid/scaledegree/pitch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func letters(t *testing.T, root pitch.Letter, formula string) string {
	tokens, err := Tokens(formula)
	require.NoError(t, err)
	var res string
	for _, l := range Letters(root, tokens) {
		res += l.String()
	}
	return res
}

func TestLettersIgnoreAccidentals(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("CDEFGABC", letters(t, pitch.C, "1 2 3 4 5 6 7 8"))
	assert.Equal("CDEFGABC", letters(t, pitch.C, "1 2 b3 4 5 b6 b7 8"))
	assert.Equal("GABCDEFG", letters(t, pitch.G, "1 2 3 #4 5 6 b7 8"))
	assert.Equal("EFGG", letters(t, pitch.A, ",5 ,6 ,b7 ,7"))
}

func TestLettersReduceExtensions(t *testing.T) {
	for n := 8; n <= 15; n++ {
		tokens := []degree.Token{{Numeral: n}, {Numeral: n - 7}}
		got := Letters(pitch.D, tokens)
		assert.Equal(t, got[1], got[0], n)
	}
	assert.Equal(t, "EGBDFAC", letters(t, pitch.E, "1 3 5 7 9 11 13"))
}

func TestLettersForSpecialTokens(t *testing.T) {
	assert.Equal(t, "CFDB", letters(t, pitch.C, "1 sus sus2 d7"))
}

func TestScaleOffsets(t *testing.T) {
	got, err := Scale("1 2 b3 4 5 b6 b7 8")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 3, 5, 7, 8, 10, 12}, got)

	got, err = Scale("8 b7 6 b6 5 4 b3 3")
	require.NoError(t, err)
	assert.Equal(t, []int{12, 10, 9, 8, 7, 5, 3, 4}, got)

	got, err = Scale(",5 ,6 ,7 1 u2")
	require.NoError(t, err)
	assert.Equal(t, []int{-5, -3, -1, 0, 14}, got)
}

func TestScaleAcceptsAnyWhitespace(t *testing.T) {
	got, err := Scale("  1\t3\n5  ")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 4, 7}, got)
}

func TestChordStacksAscending(t *testing.T) {
	got, err := Chord("5 9 3 7")
	require.NoError(t, err)
	assert.Equal(t, []int{7, 14, 16, 23}, got)

	got, err = Chord("1 b7 3 13")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 10, 16, 21}, got)

	got, err = Chord("1 1 8")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 12}, got)
}

func TestChordStackingForEveryOrder(t *testing.T) {
	perms := [][]string{
		{"5", "9", "3", "7"}, {"5", "9", "7", "3"}, {"5", "3", "9", "7"},
		{"5", "3", "7", "9"}, {"5", "7", "9", "3"}, {"5", "7", "3", "9"},
		{"9", "5", "3", "7"}, {"9", "5", "7", "3"}, {"9", "3", "5", "7"},
		{"9", "3", "7", "5"}, {"9", "7", "5", "3"}, {"9", "7", "3", "5"},
		{"3", "5", "9", "7"}, {"3", "5", "7", "9"}, {"3", "9", "5", "7"},
		{"3", "9", "7", "5"}, {"3", "7", "5", "9"}, {"3", "7", "9", "5"},
		{"7", "5", "9", "3"}, {"7", "5", "3", "9"}, {"7", "9", "5", "3"},
		{"7", "9", "3", "5"}, {"7", "3", "5", "9"}, {"7", "3", "9", "5"},
	}
	for _, p := range perms {
		tokens := make([]degree.Token, len(p))
		for i, s := range p {
			tok, err := degree.Parse(s)
			require.NoError(t, err)
			tokens[i] = tok
		}
		got := ChordOffsets(tokens)
		for i := 1; i < len(got); i++ {
			assert.Greater(t, got[i], got[i-1], p)
		}
	}
}

func TestMalformed(t *testing.T) {
	for _, f := range []string{"", "   ", "\t\n"} {
		_, err := Scale(f)
		var merr *MalformedError
		assert.ErrorAs(t, err, &merr)
	}
}

func TestUnknownDegreeAbortsWithoutPartialOutput(t *testing.T) {
	got, err := Scale("1 2 z3")
	var unknown *degree.UnknownDegreeError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "z3", unknown.Token)
	assert.Nil(t, got)

	got, err = Chord("1 3 5 q")
	require.ErrorAs(t, err, &unknown)
	assert.Nil(t, got)
}

func TestRootOf(t *testing.T) {
	cases := []struct {
		key, degree, want string
	}{
		{"G", "b6", "Eb"},
		{"C", "2", "D"},
		{"C", "5", "G"},
		{"C", "1", "C"},
		{"Bb", "2", "C"},
		{"Bb", "5", "F"},
		{"Eb", "2", "F"},
		{"F#", "5", "C#"},
		{"F#", "7", "E#"},
		{"Db", "b3", "Fb"},
		{"Gb", "b6", "Ebb"},
		{"C#", "#3", "Ex"},
		{"A4", "2", "B"},
		{"D", "b9", "Eb"},
		{"C", "sus", "F"},
	}

	for _, c := range cases {
		t.Run(c.key+" "+c.degree, func(t *testing.T) {
			got, err := RootOf(c.key, c.degree)
			require.NoError(t, err)
			assert.Equal(t, c.want, got.String())
		})
	}
}

func TestRootOfErrors(t *testing.T) {
	_, err := RootOf("G#", "#7")
	var uerr *UnspellableError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, 3, uerr.Diff)

	_, err = RootOf("G", "z3")
	var unknown *degree.UnknownDegreeError
	assert.ErrorAs(t, err, &unknown)

	_, err = RootOf("Q", "3")
	var perr *pitch.ParseError
	assert.ErrorAs(t, err, &perr)
}
