package config

import (
	"fmt"

	"enigma-simulator/internal/alphabet"
	"enigma-simulator/internal/catalog"
	"enigma-simulator/internal/diagnostic"
	"enigma-simulator/internal/match"
	"enigma-simulator/machine"
)

// maxSuggestions bounds "did you mean" lists.
const maxSuggestions = 3

// Validate checks a machine file without building it. Every problem is
// reported, not only the first.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("config_is_nil", "machine file is nil", "", "")
		return res
	}

	if f.Version != CurrentVersion {
		res.AddError("unsupported_version", fmt.Sprintf("unsupported version %q", f.Version), "", "version")
	}

	if len(f.Rotors) < machine.MinRotors {
		res.AddError("too_few_rotors",
			fmt.Sprintf("machine needs at least %d rotors, got %d", machine.MinRotors, len(f.Rotors)), "rotors", "")
	}

	seen := map[string]int{}

	for i := range f.Rotors {
		rc := &f.Rotors[i]
		component := fmt.Sprintf("rotors[%d]", i)

		validateRotor(res, component, rc)

		if rc.Name == "" {
			continue
		}

		if prev, ok := seen[rc.Name]; ok {
			res.AddWarning("repeated_rotor",
				fmt.Sprintf("rotor %s is also used at rotors[%d]", rc.Name, prev), component, "name")
		} else {
			seen[rc.Name] = i
		}
	}

	validateReflector(res, f.Reflector)
	validateEntryWheel(res, f.EntryWheel)
	validatePlugboard(res, f.Plugboard)

	return res
}

func validateRotor(res *diagnostic.Diagnostics, component string, rc *RotorConfig) {
	switch {
	case rc.Name != "" && rc.Wiring != "":
		res.AddError("ambiguous_rotor", "set either name or wiring, not both", component, "")
	case rc.Name == "" && rc.Wiring == "":
		res.AddError("missing_rotor", "rotor needs a name or a wiring", component, "")
	case rc.Name != "":
		if _, ok := catalog.Rotor(rc.Name); !ok {
			res.AddError("unknown_rotor", fmt.Sprintf("unknown rotor %q", rc.Name), component, "name",
				match.Suggest(rc.Name, catalog.RotorNames(), maxSuggestions)...)
		}

		if rc.Turnover != "" {
			res.AddError("turnover_with_name", "turnover can only be set on a custom wiring", component, "turnover")
		}
	default:
		if _, err := catalog.WiringFromLetters(rc.Wiring); err != nil {
			res.AddError("invalid_wiring", err.Error(), component, "wiring")
		}

		turnovers, err := rc.Turnover.Symbols()

		switch {
		case err != nil:
			res.AddError("invalid_turnover", err.Error(), component, "turnover")
		case len(turnovers) == 0:
			res.AddWarning("no_turnover", "rotor never carries its left neighbour", component, "turnover")
		}
	}

	validateSetting(res, component, "ring", rc.Ring)
	validateSetting(res, component, "position", rc.Position)
}

func validateSetting(res *diagnostic.Diagnostics, component, name string, s Setting) {
	if s < 0 || int(s) >= alphabet.Size {
		res.AddError("setting_out_of_range",
			fmt.Sprintf("%s %d is outside 0..%d", name, int(s), alphabet.Size-1), component, name)
	}
}

func validateReflector(res *diagnostic.Diagnostics, name string) {
	w, known, err := resolveWiring(name, catalog.Reflector)

	switch {
	case err != nil:
		res.AddError("unknown_reflector", fmt.Sprintf("unknown reflector %q", name), "reflector", "",
			match.Suggest(name, catalog.ReflectorNames(), maxSuggestions)...)
	case known:
	case !w.IsInvolution():
		res.AddError("invalid_reflector", "reflector wiring must pair letters", "reflector", "wiring")
	case len(w.FixedPoints()) > 0:
		res.AddError("invalid_reflector", "reflector must not wire a letter to itself", "reflector", "wiring")
	}
}

func validateEntryWheel(res *diagnostic.Diagnostics, name string) {
	if _, _, err := resolveWiring(name, catalog.EntryWheel); err != nil {
		res.AddError("unknown_entry_wheel", fmt.Sprintf("unknown entry wheel %q", name), "entry_wheel", "",
			match.Suggest(name, catalog.EntryWheelNames(), maxSuggestions)...)
	}
}

func validatePlugboard(res *diagnostic.Diagnostics, plugs string) {
	pairs, err := alphabet.ParsePairs(plugs)
	if err != nil {
		res.AddError("invalid_plugboard", err.Error(), "plugboard", "")
		return
	}

	if _, err := machine.Plugboard(alphabet.Size, pairs); err != nil {
		res.AddError("invalid_plugboard", err.Error(), "plugboard", "")
	}
}

// resolveWiring looks name up in the catalog and falls back to reading it as
// an explicit wiring. known reports a catalog hit.
func resolveWiring(name string, lookup func(string) (catalog.ReflectorSpec, bool)) (*machine.Wiring, bool, error) {
	if spec, ok := lookup(name); ok {
		w, err := spec.Build()
		return w, true, err
	}

	w, err := catalog.WiringFromLetters(name)

	return w, false, err
}
