package machine

import "fmt"

// Machine is a complete rotor cipher machine: a RotorMechanism sandwiched
// between two passes through a plugboard.
type Machine struct {
	mechanism *RotorMechanism
	plugboard *Wiring
	size      int
}

// Keystroke describes one pressed key.
type Keystroke struct {
	Input  int
	Output int
	// Causes holds, right to left, why each rotor moved before the signal passed.
	Causes []StepCause
	// Positions holds the rotor positions the signal passed through, right to left.
	Positions []int
}

// NewMachine assembles a machine. Rotors are ordered right to left. The entry
// wheel never steps. The reflector must be an involution without fixed points
// and the plugboard must be an involution.
func NewMachine(rotors []*Rotor, entry, reflector, plugboard *Wiring) (*Machine, error) {
	if entry == nil || reflector == nil || plugboard == nil {
		return nil, fmt.Errorf("%w: entry wheel, reflector and plugboard wirings are required", ErrSizeMismatch)
	}

	size := entry.Len()
	if reflector.Len() != size || plugboard.Len() != size {
		return nil, fmt.Errorf("%w: entry wheel has %d contacts, reflector %d, plugboard %d",
			ErrSizeMismatch, size, reflector.Len(), plugboard.Len())
	}

	for i, r := range rotors {
		if r != nil && r.NumPositions() != size {
			return nil, fmt.Errorf("%w: rotor %d has %d contacts, wirings have %d",
				ErrSizeMismatch, i, r.NumPositions(), size)
		}
	}

	if !reflector.IsInvolution() {
		return nil, fmt.Errorf("reflector: %w", ErrNotInvolution)
	}

	if fixed := reflector.FixedPoints(); len(fixed) > 0 {
		return nil, fmt.Errorf("reflector: %w: %v", ErrFixedPoint, fixed)
	}

	if !plugboard.IsInvolution() {
		return nil, fmt.Errorf("plugboard: %w", ErrNotInvolution)
	}

	entryWheel, err := NewRotor(0, nil, 0, entry)
	if err != nil {
		return nil, fmt.Errorf("entry wheel: %w", err)
	}

	mechanism, err := NewRotorMechanism(entryWheel, rotors, reflector, size)
	if err != nil {
		return nil, err
	}

	return &Machine{
		mechanism: mechanism,
		plugboard: plugboard,
		size:      size,
	}, nil
}

// Translate presses one key and returns the lit lamp. An out-of-range input
// is rejected before any rotor moves.
func (m *Machine) Translate(input int) (int, error) {
	k, err := m.Press(input)
	if err != nil {
		return 0, err
	}

	return k.Output, nil
}

// Press is Translate with the stepping details of the keystroke.
func (m *Machine) Press(input int) (Keystroke, error) {
	if !inRange(input, m.size) {
		return Keystroke{}, fmt.Errorf("%w: symbol %d of %d", ErrOutOfRange, input, m.size)
	}

	causes := m.mechanism.Advance()

	out, err := m.mechanism.Translate(m.plugboard.Translate(input))
	if err != nil {
		return Keystroke{}, err
	}

	return Keystroke{
		Input:     input,
		Output:    m.plugboard.Translate(out),
		Causes:    causes,
		Positions: m.mechanism.Positions(),
	}, nil
}

// TranslateAll enciphers a message. Every symbol is checked before the first
// key is pressed, so a rejected message leaves the rotors untouched.
func (m *Machine) TranslateAll(input []int) ([]int, error) {
	for i, s := range input {
		if !inRange(s, m.size) {
			return nil, fmt.Errorf("%w: symbol %d of %d at offset %d", ErrOutOfRange, s, m.size, i)
		}
	}

	out := make([]int, len(input))

	for i, s := range input {
		c, err := m.Translate(s)
		if err != nil {
			return nil, err
		}

		out[i] = c
	}

	return out, nil
}

// Positions returns the rotor positions, right to left.
func (m *Machine) Positions() []int {
	return m.mechanism.Positions()
}

// SetPositions moves all rotors, right to left.
func (m *Machine) SetPositions(positions []int) error {
	return m.mechanism.SetPositions(positions)
}

// Mechanism exposes the rotor stack.
func (m *Machine) Mechanism() *RotorMechanism {
	return m.mechanism
}

// Plugboard returns the plugboard wiring.
func (m *Machine) Plugboard() *Wiring {
	return m.plugboard
}

// AlphabetSize returns N.
func (m *Machine) AlphabetSize() int {
	return m.size
}
