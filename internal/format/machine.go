package format

import (
	"fmt"
	"strings"

	"enigma-simulator/internal/alphabet"
	"enigma-simulator/internal/catalog"
	"enigma-simulator/internal/config"
	"enigma-simulator/machine"
)

// Settings renders one row per rotor, leftmost first, with the rotor's
// current window letter taken from m.
func Settings(f *config.File, m *machine.Machine, mode Mode) string {
	t := NewTable(mode)
	t.Header("#", "Rotor", "Ring", "Window", "Turnover")
	t.AlignRight(1)

	positions := m.Positions()
	n := len(positions)

	for i, rc := range f.Rotors {
		r := m.Mechanism().Rotor(n - 1 - i)
		t.Row(i+1, rc.Label(), rc.Ring.String(), string(alphabet.Letter(positions[n-1-i])), letters(r.Turnovers()))
	}

	t.Footer("", "Reflector "+f.Reflector, "Entry "+f.EntryWheel, "Plugs", plugboard(f.Plugboard))

	return t.String()
}

// Trace renders one row per keystroke with the window after stepping and
// the step cause of every rotor, leftmost first.
func Trace(keys []machine.Keystroke, mode Mode) string {
	t := NewTable(mode)

	if len(keys) == 0 {
		t.Header("#", "Key", "Lamp", "Window")
		return t.String()
	}

	n := len(keys[0].Causes)

	header := []string{"#", "Key", "Lamp", "Window"}
	for i := range n {
		header = append(header, fmt.Sprintf("R%d", i+1))
	}

	t.Header(header...)
	t.AlignRight(1)

	for i, k := range keys {
		row := []any{i + 1, string(alphabet.Letter(k.Input)), string(alphabet.Letter(k.Output)), Window(k.Positions)}
		for j := n - 1; j >= 0; j-- {
			row = append(row, k.Causes[j].String())
		}

		t.Row(row...)
	}

	return t.String()
}

// Catalog renders every catalog rotor, reflector and entry wheel.
func Catalog(mode Mode) string {
	t := NewTable(mode)
	t.Header("Kind", "Name", "Wiring", "Turnover")

	for _, r := range catalog.Rotors() {
		t.Row("rotor", r.Name, r.Wiring, r.Turnovers)
	}

	for _, r := range catalog.Reflectors() {
		t.Row("reflector", r.Name, r.Wiring, "")
	}

	for _, e := range catalog.EntryWheels() {
		t.Row("entry wheel", e.Name, e.Wiring, "")
	}

	return t.String()
}

// Window renders right-to-left positions as window letters, leftmost first.
func Window(positions []int) string {
	b := make([]byte, len(positions))
	for i, p := range positions {
		b[len(positions)-1-i] = alphabet.Letter(p)
	}

	return string(b)
}

func letters(symbols []int) string {
	return alphabet.Decode(symbols)
}

func plugboard(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}

	return strings.ToUpper(s)
}
