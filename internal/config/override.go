package config

import (
	"fmt"

	"enigma-simulator/internal/alphabet"
)

// Overrides replace parts of a File, typically from command-line flags.
// Empty fields leave the file untouched.
type Overrides struct {
	Rotors    []string // catalog names, leftmost first
	Rings     string   // one letter per rotor, leftmost first
	Positions string   // one letter per rotor, leftmost first
	Reflector string
	Plugboard *string
}

// Apply merges o into f. Replacing the rotors resets their rings and
// positions to A unless Rings and Positions are also given.
func (f *File) Apply(o Overrides) error {
	if len(o.Rotors) > 0 {
		f.Rotors = make([]RotorConfig, len(o.Rotors))
		for i, name := range o.Rotors {
			f.Rotors[i] = RotorConfig{Name: name}
		}
	}

	if o.Rings != "" {
		rings, err := settings(o.Rings, len(f.Rotors))
		if err != nil {
			return fmt.Errorf("rings: %w", err)
		}

		for i, s := range rings {
			f.Rotors[i].Ring = s
		}
	}

	if o.Positions != "" {
		positions, err := settings(o.Positions, len(f.Rotors))
		if err != nil {
			return fmt.Errorf("positions: %w", err)
		}

		for i, s := range positions {
			f.Rotors[i].Position = s
		}
	}

	if o.Reflector != "" {
		f.Reflector = o.Reflector
	}

	if o.Plugboard != nil {
		f.Plugboard = *o.Plugboard
	}

	applyDefaults(f)

	return nil
}

func settings(letters string, rotors int) ([]Setting, error) {
	syms, err := alphabet.Parse(letters)
	if err != nil {
		return nil, err
	}

	if len(syms) != rotors {
		return nil, fmt.Errorf("%q has %d letters for %d rotors", letters, len(syms), rotors)
	}

	out := make([]Setting, len(syms))
	for i, s := range syms {
		out[i] = Setting(s)
	}

	return out, nil
}
