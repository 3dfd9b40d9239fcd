package machine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

const (
	wiringI    = "EKMFLGDQVZNTOWYHXUSPAIBRCJ"
	wiringII   = "AJDKSIRUXBLHWTMCQGZNPYFVOE"
	wiringIII  = "BDFHJLCPRTXVZNYEIWGAKMUSQO"
	wiringIV   = "ESOVPZJAYQUIRHXLNFTGKDCMWB"
	wiringV    = "VZBRGITYUPSDNHLXAWMJQOFECK"
	wiringVI   = "JPGVOUMFYQBENHZRDKASXLICTW"
	reflectorB = "YRUHQSLDPXNGOKMIEBFZCWVJAT"
)

func symbols(s string) []int {
	out := make([]int, len(s))
	for i := range s {
		out[i] = int(s[i] - 'A')
	}

	return out
}

func text(s []int) string {
	out := make([]byte, len(s))
	for i, v := range s {
		out[i] = letters[v]
	}

	return string(out)
}

func mustWiring(t *testing.T, s string) *Wiring {
	t.Helper()

	w, err := NewWiring(symbols(s))
	require.NoError(t, err)

	return w
}

func mustRotor(t *testing.T, wiring string, turnovers string, ring, position byte) *Rotor {
	t.Helper()

	r, err := NewRotor(int(position-'A'), symbols(turnovers), int(ring-'A'), mustWiring(t, wiring))
	require.NoError(t, err)

	return r
}

type rotorSpec struct {
	wiring   string
	turnover string
}

var (
	rotorI   = rotorSpec{wiringI, "Q"}
	rotorII  = rotorSpec{wiringII, "E"}
	rotorIII = rotorSpec{wiringIII, "V"}
	rotorIV  = rotorSpec{wiringIV, "J"}
	rotorV   = rotorSpec{wiringV, "Z"}
	rotorVI  = rotorSpec{wiringVI, "ZM"}
)

// newMachine builds a machine the way an operator reads it: rotors, rings
// and window letters are given leftmost first.
func newMachine(t *testing.T, rotors []rotorSpec, rings, window, plugs string) *Machine {
	t.Helper()

	stack := make([]*Rotor, len(rotors))
	for i, spec := range rotors {
		j := len(rotors) - 1 - i
		stack[j] = mustRotor(t, spec.wiring, spec.turnover, rings[i], window[i])
	}

	var pairs [][2]int
	for i := 0; i+1 < len(plugs); i += 3 {
		pairs = append(pairs, [2]int{int(plugs[i] - 'A'), int(plugs[i+1] - 'A')})
	}

	plugboard, err := Plugboard(len(letters), pairs)
	require.NoError(t, err)

	m, err := NewMachine(stack, mustWiring(t, letters), mustWiring(t, reflectorB), plugboard)
	require.NoError(t, err)

	return m
}

// window renders rotor positions leftmost first.
func window(positions []int) string {
	out := make([]byte, len(positions))
	for i, p := range positions {
		out[len(positions)-1-i] = letters[p]
	}

	return string(out)
}
