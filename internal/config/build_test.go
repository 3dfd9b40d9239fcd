package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enigma-simulator/internal/alphabet"
)

func encipher(t *testing.T, f *File, text string) string {
	t.Helper()

	m, err := Build(f)
	require.NoError(t, err)

	syms, err := alphabet.Parse(text)
	require.NoError(t, err)

	out, err := m.TranslateAll(syms)
	require.NoError(t, err)

	return alphabet.Decode(out)
}

func TestBuildDefault(t *testing.T) {
	assert.Equal(t, "BDZGO", encipher(t, Default(), "AAAAA"))
}

func TestBuildOrdersRotorsRightToLeft(t *testing.T) {
	f := Default()
	require.NoError(t, f.Apply(Overrides{Positions: "ADU"}))

	m, err := Build(f)
	require.NoError(t, err)

	// Right to left: III at U, II at D, I at A.
	assert.Equal(t, []int{20, 3, 0}, m.Positions())
	assert.Equal(t, "III", f.Rotors[2].Name)
}

func TestBuildHistoricalMessage(t *testing.T) {
	yaml := `
reflector: B
rotors:
  - {name: II, ring: B, position: B}
  - {name: IV, ring: U, position: L}
  - {name: V, ring: L, position: A}
plugboard: AV BS CG DL FU HZ IN KM OW RX
`

	f, err := Parse([]byte(yaml))
	require.NoError(t, err)

	got := encipher(t, f, "EDPUD NRGYS ZRCXN UYTPO MRMBO FKTBZ REZKM LXLVE FGUEY SIOZV EHXOJ VASXC VAHUT FJLTZ TLIHU")
	assert.Equal(t, "AUFKLXABTEILUNGXVONXKURTINOWAXKURTINOWAXNORDWESTLXSFABCMMLZRIRINFTQTNDIKSPF", got)
}

func TestBuildMultiNotchMachine(t *testing.T) {
	// Scharnhorst, 1943: rotors III VI VIII, rings AHM, window UZV.
	yaml := `
reflector: UKW-B
rotors:
  - {name: III, ring: A, position: U}
  - {name: VI, ring: H, position: Z}
  - {name: VIII, ring: M, position: V}
plugboard: AN EZ HK IJ LR MQ OT PV SW UX
`

	f, err := Parse([]byte(yaml))
	require.NoError(t, err)

	got := encipher(t, f, "YKAENZAPMSCHZBFOCUVMRMDPYCOFHADZIZMEFXTHFLOLPZLFGGBOTGOXGRETDWTJIQHLMXVJWKZUASTR")
	assert.Equal(t, "STEUEREJTANAFJORDJANSTANDORTQUAAACCCVIERNEUNNEUNZWOFAHRTZWONULSMXXSCHARNHORSTHCO", got)
}

func TestBuildCustomRotor(t *testing.T) {
	f := Default()
	f.Rotors[2] = RotorConfig{Wiring: "BDFHJLCPRTXVZNYEIWGAKMUSQO", Turnover: "V"}

	// A custom copy of rotor III behaves exactly like the catalog rotor.
	assert.Equal(t, "BDZGO", encipher(t, f, "AAAAA"))
}

func TestBuildInvalid(t *testing.T) {
	f := Default()
	f.Rotors[0].Name = "IX"

	m, err := Build(f)
	require.Error(t, err)
	assert.Nil(t, m)
	assert.Contains(t, err.Error(), "unknown_rotor")
}
