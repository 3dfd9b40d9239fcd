package alphabet

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex(t *testing.T) {
	tests := []struct {
		r    rune
		want int
		ok   bool
	}{
		{'A', 0, true},
		{'M', 12, true},
		{'Z', 25, true},
		{'a', 0, false},
		{'@', 0, false},
		{'[', 0, false},
		{'1', 0, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.r), func(t *testing.T) {
			got, ok := Index(tt.r)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "HELLOWORLD", Sanitize("  hello World\t\n"))
	assert.Equal(t, "", Sanitize(" \t "))
	assert.Equal(t, "ABC1", Sanitize("a b c 1"))
}

func TestParse(t *testing.T) {
	got, err := Parse("Hello world")
	require.NoError(t, err)
	assert.Equal(t, []int{7, 4, 11, 11, 14, 22, 14, 17, 11, 3}, got)
	assert.Equal(t, "HELLOWORLD", Decode(got))
}

func TestParseInvalidCharacter(t *testing.T) {
	tests := []struct {
		input string
		char  rune
		pos   int
	}{
		{"abc1", '1', 3},
		{"he llo!", '!', 5},
		{"ÄB", 'Ä', 0},
		{"ab é", 'É', 2},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)

			var invalid *InvalidCharError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, tt.char, invalid.Char)
			assert.Equal(t, tt.pos, invalid.Position)
		})
	}
}

func TestGroup(t *testing.T) {
	tests := []struct {
		input string
		size  int
		want  string
	}{
		{"ABCDEFGHIJKL", 5, "ABCDE FGHIJ KL"},
		{"ABCDEFGHIJ", 5, "ABCDE FGHIJ"},
		{"ABC", 5, "ABC"},
		{"ABCDEF", 0, "ABCDEF"},
		{"", 4, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Group(tt.input, tt.size))
		})
	}
}

func TestParsePairs(t *testing.T) {
	pairs, err := ParsePairs("ab  CD ez")
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 1}, {2, 3}, {4, 25}}, pairs)
	assert.Equal(t, "AB CD EZ", FormatPairs(pairs))

	pairs, err = ParsePairs("")
	require.NoError(t, err)
	assert.Empty(t, pairs)

	_, err = ParsePairs("ABC")
	require.Error(t, err)

	_, err = ParsePairs("A1")
	require.Error(t, err)
}
