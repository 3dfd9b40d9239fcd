package machine

import (
	"fmt"
	"slices"

	"enigma-simulator/utils"
)

// Rotor is a Wiring mounted in a rotating body. The wiring is fixed relative
// to the body, the ring setting offsets it against the alphabet ring, and the
// position is the rotation of the body against the machine's fixed contacts.
type Rotor struct {
	position  int
	ring      int
	turnovers []int
	wiring    *Wiring
}

// NewRotor builds a rotor at the given position. Every turnover position is a
// window position at which the next keystroke also steps the left neighbour;
// more than one turnover is allowed.
func NewRotor(position int, turnovers []int, ring int, wiring *Wiring) (*Rotor, error) {
	if wiring == nil {
		return nil, fmt.Errorf("%w: rotor has no wiring", ErrSizeMismatch)
	}

	n := wiring.Len()
	if !inRange(position, n) {
		return nil, fmt.Errorf("%w: rotor position %d of %d", ErrOutOfRange, position, n)
	}

	if !inRange(ring, n) {
		return nil, fmt.Errorf("%w: rotor ring setting %d of %d", ErrOutOfRange, ring, n)
	}

	for _, t := range turnovers {
		if !inRange(t, n) {
			return nil, fmt.Errorf("%w: rotor turnover position %d of %d", ErrOutOfRange, t, n)
		}
	}

	return &Rotor{
		position:  position,
		ring:      ring,
		turnovers: slices.Clone(turnovers),
		wiring:    wiring,
	}, nil
}

// Advance rotates the rotor by one step.
func (r *Rotor) Advance() {
	r.position = utils.Shift(r.position, 1, r.NumPositions())
}

// SetPosition moves the rotor to p.
func (r *Rotor) SetPosition(p int) error {
	if !inRange(p, r.NumPositions()) {
		return fmt.Errorf("%w: rotor position %d of %d", ErrOutOfRange, p, r.NumPositions())
	}

	r.position = p

	return nil
}

// Position returns the current rotor position.
func (r *Rotor) Position() int {
	return r.position
}

// RingSetting returns the ring offset.
func (r *Rotor) RingSetting() int {
	return r.ring
}

// Turnovers returns a copy of the turnover positions.
func (r *Rotor) Turnovers() []int {
	return slices.Clone(r.turnovers)
}

// IsAtTurnover reports whether the current position is a turnover position.
func (r *Rotor) IsAtTurnover() bool {
	return slices.Contains(r.turnovers, r.position)
}

// NumPositions returns the number of contacts on the rotor.
func (r *Rotor) NumPositions() int {
	return r.wiring.Len()
}

// TranslateRightToLeft passes a signal through the wiring towards the reflector.
func (r *Rotor) TranslateRightToLeft(input int) (int, error) {
	contact, err := r.enter(input)
	if err != nil {
		return 0, err
	}

	return r.leave(r.wiring.Translate(contact)), nil
}

// TranslateLeftToRight passes a signal through the wiring away from the reflector.
func (r *Rotor) TranslateLeftToRight(input int) (int, error) {
	contact, err := r.enter(input)
	if err != nil {
		return 0, err
	}

	out, err := r.wiring.TranslateBackward(contact)
	if err != nil {
		return 0, err
	}

	return r.leave(out), nil
}

// enter shifts an external contact into the wiring frame.
func (r *Rotor) enter(input int) (int, error) {
	n := r.NumPositions()
	if !inRange(input, n) {
		return 0, fmt.Errorf("%w: rotor input %d of %d", ErrOutOfRange, input, n)
	}

	return utils.Shift(input, -r.ring, n), nil
}

func (r *Rotor) leave(out int) int {
	return utils.Shift(out, r.ring, r.NumPositions())
}

func inRange(v, n int) bool {
	return utils.IsInRange(0, v, n-1)
}
