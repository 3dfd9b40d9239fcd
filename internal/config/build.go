package config

import (
	"fmt"

	"enigma-simulator/internal/alphabet"
	"enigma-simulator/internal/catalog"
	"enigma-simulator/machine"
)

// Build validates f and assembles a machine from it.
func Build(f *File) (*machine.Machine, error) {
	if diags := Validate(f); diags.HasErrors() {
		return nil, fmt.Errorf("invalid machine: %w", diags.Error())
	}

	// Machine rotors run right to left; the file lists them left to right.
	rotors := make([]*machine.Rotor, len(f.Rotors))

	for i, rc := range f.Rotors {
		r, err := buildRotor(rc)
		if err != nil {
			return nil, fmt.Errorf("rotors[%d]: %w", i, err)
		}

		rotors[len(rotors)-1-i] = r
	}

	entry, _, err := resolveWiring(f.EntryWheel, catalog.EntryWheel)
	if err != nil {
		return nil, fmt.Errorf("entry wheel: %w", err)
	}

	reflector, _, err := resolveWiring(f.Reflector, catalog.Reflector)
	if err != nil {
		return nil, fmt.Errorf("reflector: %w", err)
	}

	pairs, err := alphabet.ParsePairs(f.Plugboard)
	if err != nil {
		return nil, fmt.Errorf("plugboard: %w", err)
	}

	plugboard, err := machine.Plugboard(alphabet.Size, pairs)
	if err != nil {
		return nil, fmt.Errorf("plugboard: %w", err)
	}

	return machine.NewMachine(rotors, entry, reflector, plugboard)
}

func buildRotor(rc RotorConfig) (*machine.Rotor, error) {
	if rc.Name != "" {
		spec, ok := catalog.Rotor(rc.Name)
		if !ok {
			return nil, fmt.Errorf("unknown rotor %q", rc.Name)
		}

		return spec.Build(int(rc.Ring), int(rc.Position))
	}

	return catalog.RotorSpec{
		Name:      rc.Label(),
		Wiring:    rc.Wiring,
		Turnovers: alphabet.Sanitize(string(rc.Turnover)),
	}.Build(int(rc.Ring), int(rc.Position))
}

// Window returns the configured window letters, leftmost first.
func (f *File) Window() string {
	b := make([]byte, len(f.Rotors))
	for i, rc := range f.Rotors {
		b[i] = settingLetter(rc.Position)
	}

	return string(b)
}

// Rings returns the configured ring letters, leftmost first.
func (f *File) Rings() string {
	b := make([]byte, len(f.Rotors))
	for i, rc := range f.Rotors {
		b[i] = settingLetter(rc.Ring)
	}

	return string(b)
}

func settingLetter(s Setting) byte {
	if s < 0 || int(s) >= alphabet.Size {
		return '?'
	}

	return alphabet.Letter(int(s))
}
