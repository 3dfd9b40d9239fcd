package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWiring(t *testing.T) {
	tests := []struct {
		name    string
		table   []int
		wantErr error
	}{
		{name: "empty", table: []int{}},
		{name: "identity", table: []int{0, 1, 2, 3}},
		{name: "permutation", table: symbols(wiringI)},
		{name: "out of range", table: []int{0, 1, 4, 2}, wantErr: ErrWiringOutOfRange},
		{name: "negative", table: []int{0, -1, 2}, wantErr: ErrWiringOutOfRange},
		{name: "repeated output", table: []int{1, 1, 0}, wantErr: ErrNotBijective},
		{name: "too large", table: make([]int, MaxSymbols+1), wantErr: ErrWiringTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := NewWiring(tt.table)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, w)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, len(tt.table), w.Len())
		})
	}
}

func TestNewWiringMaxSize(t *testing.T) {
	table := make([]int, MaxSymbols)
	for i := range table {
		table[i] = MaxSymbols - 1 - i
	}

	w, err := NewWiring(table)
	require.NoError(t, err)
	assert.Equal(t, MaxSymbols, w.Len())
	assert.Equal(t, 0, w.Translate(MaxSymbols-1))
}

func TestWiringCopiesTable(t *testing.T) {
	table := []int{1, 2, 0}

	w, err := NewWiring(table)
	require.NoError(t, err)

	table[0] = 0
	assert.Equal(t, 1, w.Translate(0))

	got := w.Table()
	got[1] = 99
	assert.Equal(t, 2, w.Translate(1))
}

func TestWiringRoundTrip(t *testing.T) {
	for _, s := range []string{letters, wiringI, wiringII, wiringIII, wiringVI, reflectorB} {
		w := mustWiring(t, s)

		for x := range w.Len() {
			back, err := w.TranslateBackward(w.Translate(x))
			require.NoError(t, err)
			assert.Equal(t, x, back, "%s: backward(forward(%d))", s, x)

			back, err = w.TranslateBackward(x)
			require.NoError(t, err)
			assert.Equal(t, x, w.Translate(back), "%s: forward(backward(%d))", s, x)
		}
	}
}

func TestWiringTranslateBackwardOutOfRange(t *testing.T) {
	w := mustWiring(t, wiringI)

	_, err := w.TranslateBackward(26)
	require.ErrorIs(t, err, ErrNoBackwardContact)

	_, err = w.TranslateBackward(-1)
	require.ErrorIs(t, err, ErrNoBackwardContact)
}

func TestWiringInverse(t *testing.T) {
	w := mustWiring(t, wiringI)
	inv := w.Inverse()

	for x := range w.Len() {
		assert.Equal(t, x, inv.Translate(w.Translate(x)))

		back, err := w.TranslateBackward(x)
		require.NoError(t, err)
		assert.Equal(t, back, inv.Translate(x))
	}
}

func TestWiringInvolution(t *testing.T) {
	assert.True(t, mustWiring(t, reflectorB).IsInvolution())
	assert.Empty(t, mustWiring(t, reflectorB).FixedPoints())

	assert.True(t, mustWiring(t, letters).IsInvolution())
	assert.Len(t, mustWiring(t, letters).FixedPoints(), 26)

	assert.False(t, mustWiring(t, wiringI).IsInvolution())
}

func TestPlugboard(t *testing.T) {
	w, err := Plugboard(26, [][2]int{{0, 1}, {2, 25}})
	require.NoError(t, err)

	assert.True(t, w.IsInvolution())
	assert.Equal(t, 1, w.Translate(0))
	assert.Equal(t, 0, w.Translate(1))
	assert.Equal(t, 25, w.Translate(2))
	assert.Equal(t, 2, w.Translate(25))
	assert.Equal(t, 3, w.Translate(3))
}

func TestPlugboardErrors(t *testing.T) {
	tests := []struct {
		name    string
		pairs   [][2]int
		wantErr error
	}{
		{name: "plug out of range", pairs: [][2]int{{0, 26}}, wantErr: ErrOutOfRange},
		{name: "contact plugged twice", pairs: [][2]int{{0, 1}, {1, 2}}, wantErr: ErrNotBijective},
		{name: "self plug", pairs: [][2]int{{4, 4}}, wantErr: ErrNotBijective},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Plugboard(26, tt.pairs)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestContactCountLimits(t *testing.T) {
	_, err := Identity(-1)
	require.ErrorIs(t, err, ErrOutOfRange)

	_, err = Plugboard(-3, nil)
	require.ErrorIs(t, err, ErrOutOfRange)

	_, err = Identity(MaxSymbols + 1)
	require.ErrorIs(t, err, ErrWiringTooLarge)

	_, err = Plugboard(MaxSymbols+1, nil)
	require.ErrorIs(t, err, ErrWiringTooLarge)

	w, err := Identity(0)
	require.NoError(t, err)
	assert.Equal(t, 0, w.Len())
}
