package machine

import "errors"

var (
	// ErrWiringTooLarge is returned when a wiring has more than MaxSymbols contacts.
	ErrWiringTooLarge = errors.New("wiring too large")
	// ErrWiringOutOfRange is returned when a wiring maps to a contact outside [0, N).
	ErrWiringOutOfRange = errors.New("wiring contact out of range")
	// ErrNotBijective is returned when a wiring uses an output contact more than once.
	ErrNotBijective = errors.New("wiring is not a permutation")
	// ErrNoBackwardContact is returned by a backward lookup that has no matching forward entry.
	ErrNoBackwardContact = errors.New("no backward contact")
	// ErrNotInvolution is returned when a reflector or plugboard is not its own inverse.
	ErrNotInvolution = errors.New("wiring is not an involution")
	// ErrFixedPoint is returned when a reflector maps a contact to itself.
	ErrFixedPoint = errors.New("reflector maps contact to itself")
	// ErrOutOfRange is returned for positions, ring settings, turnovers or symbols outside [0, N).
	ErrOutOfRange = errors.New("value out of range")
	// ErrTooFewRotors is returned when a mechanism is built with fewer than MinRotors rotors.
	ErrTooFewRotors = errors.New("too few rotors")
	// ErrSharedRotor is returned when one rotor is mounted in more than one slot.
	ErrSharedRotor = errors.New("rotor mounted more than once")
	// ErrSizeMismatch is returned when wirings or rotors of different sizes are combined.
	ErrSizeMismatch = errors.New("alphabet size mismatch")
)
