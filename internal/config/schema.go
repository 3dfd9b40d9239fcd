package config

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"enigma-simulator/internal/alphabet"
)

// File is the top-level machine configuration.
type File struct {
	Version    string        `yaml:"version"`
	EntryWheel string        `yaml:"entry_wheel,omitempty"`
	Reflector  string        `yaml:"reflector,omitempty"`
	Rotors     []RotorConfig `yaml:"rotors"`
	Plugboard  string        `yaml:"plugboard,omitempty"`
}

// RotorConfig selects a rotor and its settings. Either Name or Wiring is set.
type RotorConfig struct {
	Name     string  `yaml:"name,omitempty"`
	Wiring   string  `yaml:"wiring,omitempty"`
	Turnover Letters `yaml:"turnover,omitempty"`
	Ring     Setting `yaml:"ring"`
	Position Setting `yaml:"position"`
}

// Label returns the rotor name, or "custom" for an explicit wiring.
func (r RotorConfig) Label() string {
	if r.Name != "" {
		return r.Name
	}

	return "custom"
}

// Setting is a ring setting or window position. In YAML it is written as a
// letter ("Q") or a zero-based number (16).
type Setting int

// UnmarshalYAML implements custom YAML unmarshaling for Setting.
func (s *Setting) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: setting must be a letter or a number", node.Line)
	}

	if node.Tag == "!!int" {
		n, err := strconv.Atoi(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}

		*s = Setting(n)

		return nil
	}

	v, err := ParseSetting(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}

	*s = v

	return nil
}

// MarshalYAML writes in-range settings as letters.
func (s Setting) MarshalYAML() (any, error) {
	if s >= 0 && int(s) < alphabet.Size {
		return s.String(), nil
	}

	return int(s), nil
}

// String returns the window letter for s.
func (s Setting) String() string {
	if s < 0 || int(s) >= alphabet.Size {
		return strconv.Itoa(int(s))
	}

	return string(alphabet.Letter(int(s)))
}

// ParseSetting reads a single letter.
func ParseSetting(v string) (Setting, error) {
	v = strings.TrimSpace(v)

	syms, err := alphabet.Parse(v)
	if err != nil {
		return 0, fmt.Errorf("setting %q: %w", v, err)
	}

	if len(syms) != 1 {
		return 0, fmt.Errorf("setting %q: want a single letter", v)
	}

	return Setting(syms[0]), nil
}

// Letters is a set of letters written either as one string ("ZM") or as a
// list (["Z", "M"]).
type Letters string

// UnmarshalYAML implements custom YAML unmarshaling for Letters.
// Accepts either a single string or an array of strings.
func (l *Letters) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		if err := node.Decode(&str); err != nil {
			return err
		}

		*l = Letters(str)

		return nil

	case yaml.SequenceNode:
		var arr []string

		if err := node.Decode(&arr); err != nil {
			return err
		}

		*l = Letters(strings.Join(arr, ""))

		return nil

	default:
		return fmt.Errorf("line %d: expected letters or a list of letters", node.Line)
	}
}

// Symbols returns the letters as symbols.
func (l Letters) Symbols() ([]int, error) {
	return alphabet.Parse(string(l))
}
