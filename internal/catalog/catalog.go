// Package catalog lists the historical Wehrmacht and Kriegsmarine rotors,
// reflectors and entry wheel by name.
package catalog

import (
	"fmt"

	"enigma-simulator/internal/alphabet"
	"enigma-simulator/internal/match"
	"enigma-simulator/machine"
)

// RotorSpec describes a catalog rotor.
type RotorSpec struct {
	Name      string
	Wiring    string
	Turnovers string // window letters at which the left neighbour is carried
}

// ReflectorSpec describes a reflector or an entry wheel.
type ReflectorSpec struct {
	Name   string
	Wiring string
}

var rotors = []RotorSpec{
	{Name: "I", Wiring: "EKMFLGDQVZNTOWYHXUSPAIBRCJ", Turnovers: "Q"},
	{Name: "II", Wiring: "AJDKSIRUXBLHWTMCQGZNPYFVOE", Turnovers: "E"},
	{Name: "III", Wiring: "BDFHJLCPRTXVZNYEIWGAKMUSQO", Turnovers: "V"},
	{Name: "IV", Wiring: "ESOVPZJAYQUIRHXLNFTGKDCMWB", Turnovers: "J"},
	{Name: "V", Wiring: "VZBRGITYUPSDNHLXAWMJQOFECK", Turnovers: "Z"},
	{Name: "VI", Wiring: "JPGVOUMFYQBENHZRDKASXLICTW", Turnovers: "ZM"},
	{Name: "VII", Wiring: "NZJHGRCXMYSWBOUFAIVLPEKQDT", Turnovers: "ZM"},
	{Name: "VIII", Wiring: "FKQHTLXOCBJSPDZRAMEWNIUYGV", Turnovers: "ZM"},
}

var reflectors = []ReflectorSpec{
	{Name: "UKW-A", Wiring: "EJMZALYXVBWFCRQUONTSPIKHGD"},
	{Name: "UKW-B", Wiring: "YRUHQSLDPXNGOKMIEBFZCWVJAT"},
	{Name: "UKW-C", Wiring: "FVPJIAOYEDRZXWGCTKUQSBNMHL"},
}

var entryWheels = []ReflectorSpec{
	{Name: "ETW", Wiring: alphabet.Letters},
}

// Lookup prefixes ignored when matching names.
var (
	rotorPrefixes     = []string{"ROTOR", "WALZE"}
	reflectorPrefixes = []string{"UKW", "REFLECTOR"}
)

// Rotor returns the rotor with the given name. Names are matched ignoring
// case, separators and a leading "rotor".
func Rotor(name string) (RotorSpec, bool) {
	key := match.NormalizeNameWithPrefixStrip(name, rotorPrefixes...)
	for _, r := range rotors {
		if match.NormalizeName(r.Name) == key {
			return r, true
		}
	}

	return RotorSpec{}, false
}

// Reflector returns the reflector with the given name; "B" and "UKW-B" are
// the same reflector.
func Reflector(name string) (ReflectorSpec, bool) {
	key := match.NormalizeNameWithPrefixStrip(name, reflectorPrefixes...)
	for _, r := range reflectors {
		if match.NormalizeNameWithPrefixStrip(r.Name, reflectorPrefixes...) == key {
			return r, true
		}
	}

	return ReflectorSpec{}, false
}

// EntryWheel returns the entry wheel with the given name.
func EntryWheel(name string) (ReflectorSpec, bool) {
	key := match.NormalizeName(name)
	for _, e := range entryWheels {
		if match.NormalizeName(e.Name) == key {
			return e, true
		}
	}

	return ReflectorSpec{}, false
}

// Rotors returns every catalog rotor in catalog order.
func Rotors() []RotorSpec {
	return append([]RotorSpec(nil), rotors...)
}

// Reflectors returns every catalog reflector.
func Reflectors() []ReflectorSpec {
	return append([]ReflectorSpec(nil), reflectors...)
}

// EntryWheels returns every catalog entry wheel.
func EntryWheels() []ReflectorSpec {
	return append([]ReflectorSpec(nil), entryWheels...)
}

// RotorNames returns the catalog rotor names.
func RotorNames() []string {
	names := make([]string, len(rotors))
	for i, r := range rotors {
		names[i] = r.Name
	}

	return names
}

// ReflectorNames returns the catalog reflector names.
func ReflectorNames() []string {
	names := make([]string, len(reflectors))
	for i, r := range reflectors {
		names[i] = r.Name
	}

	return names
}

// EntryWheelNames returns the catalog entry wheel names.
func EntryWheelNames() []string {
	names := make([]string, len(entryWheels))
	for i, e := range entryWheels {
		names[i] = e.Name
	}

	return names
}

// Build returns a machine rotor with the given ring setting and window position.
func (s RotorSpec) Build(ring, position int) (*machine.Rotor, error) {
	w, err := WiringFromLetters(s.Wiring)
	if err != nil {
		return nil, fmt.Errorf("rotor %s: %w", s.Name, err)
	}

	turnovers, err := alphabet.Encode(s.Turnovers)
	if err != nil {
		return nil, fmt.Errorf("rotor %s turnovers: %w", s.Name, err)
	}

	r, err := machine.NewRotor(position, turnovers, ring, w)
	if err != nil {
		return nil, fmt.Errorf("rotor %s: %w", s.Name, err)
	}

	return r, nil
}

// Build returns the wiring.
func (s ReflectorSpec) Build() (*machine.Wiring, error) {
	w, err := WiringFromLetters(s.Wiring)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Name, err)
	}

	return w, nil
}

// WiringFromLetters builds a wiring from a letter string where the i-th
// letter is the contact reached from the i-th key.
func WiringFromLetters(s string) (*machine.Wiring, error) {
	table, err := alphabet.Encode(s)
	if err != nil {
		return nil, err
	}

	if len(table) != alphabet.Size {
		return nil, fmt.Errorf("%w: wiring has %d letters, want %d", machine.ErrSizeMismatch, len(table), alphabet.Size)
	}

	return machine.NewWiring(table)
}
