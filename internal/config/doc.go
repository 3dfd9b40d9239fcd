// Package config provides the YAML schema, parsing, validation and assembly
// of machine configurations.
//
// # Schema Overview
//
//	version: "1"
//	entry_wheel: ETW        # catalog name or 26-letter wiring
//	reflector: UKW-B        # catalog name ("B" works too) or 26-letter wiring
//	rotors:                 # leftmost first, as the operator sees them
//	  - name: I             # catalog rotor
//	    ring: A             # letter or zero-based number
//	    position: A
//	  - name: II
//	    ring: 1
//	    position: E
//	  - wiring: BDFHJLCPRTXVZNYEIWGAKMUSQO   # custom rotor
//	    turnover: V                          # letters, or a list of letters
//	plugboard: AB CD EF
//
// # Defaults
//
//   - version: "1"
//   - entry_wheel: ETW
//   - reflector: UKW-B
//   - ring and position: A
//   - plugboard: empty (every letter unplugged)
//
// Rotors are written leftmost first because that is how ring settings and
// window letters are read off the machine. Build reverses them into the
// right-to-left order used by the rotor mechanism.
package config
