package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"enigma-simulator/internal/catalog"
)

// CurrentVersion is the only schema version understood by this package.
const CurrentVersion = "1"

// Default entry wheel and reflector names.
const (
	DefaultEntryWheel = "ETW"
	DefaultReflector  = "UKW-B"
)

// LoadFile loads and parses a YAML machine file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read machine file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse machine YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// Default returns the Enigma I with rotors I, II, III, reflector UKW-B,
// all rings and positions at A and no plugs.
func Default() *File {
	f := &File{
		Rotors: []RotorConfig{
			{Name: "I"},
			{Name: "II"},
			{Name: "III"},
		},
	}

	applyDefaults(f)

	return f
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = CurrentVersion
	}

	if f.EntryWheel == "" {
		f.EntryWheel = DefaultEntryWheel
	}

	if f.Reflector == "" {
		f.Reflector = DefaultReflector
	}

	// Canonical catalog names keep marshalled files stable.
	for i := range f.Rotors {
		r := &f.Rotors[i]
		if spec, ok := catalog.Rotor(r.Name); ok {
			r.Name = spec.Name
		}
	}

	if spec, ok := catalog.Reflector(f.Reflector); ok {
		f.Reflector = spec.Name
	}

	if spec, ok := catalog.EntryWheel(f.EntryWheel); ok {
		f.EntryWheel = spec.Name
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal machine: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write machine file %s: %w", path, err)
	}

	return nil
}
