package machine

import (
	"fmt"

	"enigma-simulator/utils"
)

// MinRotors is the smallest stack a RotorMechanism accepts.
const MinRotors = 3

// RotorMechanism is the stepping rotor stack between a fixed entry wheel and
// a fixed reflector. Rotors are ordered right to left: index 0 is next to the
// entry wheel, the last index is next to the reflector.
type RotorMechanism struct {
	entry     *Rotor
	rotors    []*Rotor
	reflector *Wiring
	size      int
}

// NewRotorMechanism assembles a mechanism over an alphabet of size symbols.
// The mechanism takes ownership of the rotors; each must be a distinct value.
func NewRotorMechanism(entry *Rotor, rotors []*Rotor, reflector *Wiring, size int) (*RotorMechanism, error) {
	if len(rotors) < MinRotors {
		return nil, fmt.Errorf("%w: mechanism requires at least %d rotors, got %d", ErrTooFewRotors, MinRotors, len(rotors))
	}

	if entry == nil || entry.NumPositions() != size {
		return nil, fmt.Errorf("%w: entry wheel does not match %d position mechanism", ErrSizeMismatch, size)
	}

	if reflector == nil || reflector.Len() != size {
		return nil, fmt.Errorf("%w: reflector does not match %d position mechanism", ErrSizeMismatch, size)
	}

	mounted := map[*Rotor]int{entry: -1}

	for i, r := range rotors {
		if r == nil {
			return nil, fmt.Errorf("%w: rotor %d is missing", ErrSizeMismatch, i)
		}

		if slot, ok := mounted[r]; ok {
			if slot < 0 {
				return nil, fmt.Errorf("%w: rotor %d is the entry wheel", ErrSharedRotor, i)
			}

			return nil, fmt.Errorf("%w: rotor %d is also rotor %d", ErrSharedRotor, i, slot)
		}

		mounted[r] = i

		if r.NumPositions() != size {
			return nil, fmt.Errorf("%w: %d position mechanism given %d position rotor at index %d",
				ErrSizeMismatch, size, r.NumPositions(), i)
		}
	}

	return &RotorMechanism{
		entry:     entry,
		rotors:    append([]*Rotor(nil), rotors...),
		reflector: reflector,
		size:      size,
	}, nil
}

// Advance performs one keystroke's worth of stepping and reports, per rotor
// index, why each rotor moved. Turnover state is sampled for every rotor
// before any rotor moves.
func (m *RotorMechanism) Advance() []StepCause {
	n := len(m.rotors)

	notched := make([]bool, n)
	for i, r := range m.rotors {
		notched[i] = r.IsAtTurnover()
	}

	causes := make([]StepCause, n)
	causes[0] = StepRatchet

	for i := n - 2; i >= 1; i-- {
		switch {
		case notched[i-1]:
			causes[i] = StepCarry
		case notched[i]:
			causes[i] = StepDouble
		}
	}

	if notched[n-2] {
		causes[n-1] = StepCarry
	}

	for i, c := range causes {
		if c.Stepped() {
			m.rotors[i].Advance()
		}
	}

	return causes
}

// Translate passes one symbol from the entry wheel to the reflector and back
// without stepping.
func (m *RotorMechanism) Translate(input int) (int, error) {
	if !inRange(input, m.size) {
		return 0, fmt.Errorf("%w: symbol %d of %d", ErrOutOfRange, input, m.size)
	}

	contact, err := m.entry.TranslateRightToLeft(input)
	if err != nil {
		return 0, err
	}

	for _, r := range m.rotors {
		contact, err = m.through(r, contact, r.TranslateRightToLeft)
		if err != nil {
			return 0, err
		}
	}

	contact = m.reflector.Translate(contact)

	for i := len(m.rotors) - 1; i >= 0; i-- {
		r := m.rotors[i]

		contact, err = m.through(r, contact, r.TranslateLeftToRight)
		if err != nil {
			return 0, err
		}
	}

	return m.entry.TranslateLeftToRight(contact)
}

// through moves contact into the rotor's rotated frame, applies translate and
// moves the result back into the fixed frame of the entry wheel.
func (m *RotorMechanism) through(r *Rotor, contact int, translate func(int) (int, error)) (int, error) {
	out, err := translate(utils.Shift(contact, r.position, m.size))
	if err != nil {
		return 0, err
	}

	return utils.Shift(out, -r.position, m.size), nil
}

// Positions returns the rotor positions, right to left.
func (m *RotorMechanism) Positions() []int {
	positions := make([]int, len(m.rotors))
	for i, r := range m.rotors {
		positions[i] = r.position
	}

	return positions
}

// SetPositions moves every rotor at once. Nothing changes unless all
// positions are valid.
func (m *RotorMechanism) SetPositions(positions []int) error {
	if len(positions) != len(m.rotors) {
		return fmt.Errorf("%w: %d positions for %d rotors", ErrSizeMismatch, len(positions), len(m.rotors))
	}

	for i, p := range positions {
		if !inRange(p, m.size) {
			return fmt.Errorf("%w: position %d of %d for rotor %d", ErrOutOfRange, p, m.size, i)
		}
	}

	for i, p := range positions {
		m.rotors[i].position = p
	}

	return nil
}

// Rotors returns the number of stepping rotors.
func (m *RotorMechanism) Rotors() int {
	return len(m.rotors)
}

// Rotor returns the rotor at index i, counted from the right.
func (m *RotorMechanism) Rotor(i int) *Rotor {
	return m.rotors[i]
}

// AlphabetSize returns N.
func (m *RotorMechanism) AlphabetSize() int {
	return m.size
}
