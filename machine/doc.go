// Package machine models an electromechanical rotor cipher machine.
//
// A Machine is assembled from a stack of Rotors, a non-stepping entry wheel,
// a reflector and a plugboard. Every symbol is an index in [0, N) where N is
// the shared size of all wirings (at most MaxSymbols).
//
// # Signal path
//
// Each keystroke first advances the rotor stack, then sends the signal
//
//	plugboard -> entry wheel -> rotors (right to left) -> reflector
//	          -> rotors (left to right) -> entry wheel -> plugboard
//
// Because the reflector is an involution without fixed points and the rotor
// stack is traversed symmetrically, the whole path is self-inverse for a fixed
// set of rotor positions: the same settings encipher and decipher.
//
// # Stepping
//
// Rotors are indexed right to left. Before each keystroke the rightmost rotor
// always steps, a middle rotor steps when it or its right neighbour sits at a
// turnover position, and the leftmost rotor steps when its right neighbour
// sits at a turnover position. All decisions use the positions from before the
// keystroke. The middle-rotor rule reproduces the double-stepping anomaly.
//
// A Machine holds mutable rotor positions and must not be used from several
// goroutines at once.
package machine
