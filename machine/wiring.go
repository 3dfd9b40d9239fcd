package machine

import "fmt"

// MaxSymbols is the largest alphabet a wiring may cover.
const MaxSymbols = 256

// Wiring is an immutable permutation of N contacts. Forward lookups follow
// the table, backward lookups use the precomputed inverse.
type Wiring struct {
	forward []int
	reverse []int
}

// NewWiring builds a Wiring where contact i is connected to table[i].
// The table must be a permutation of [0, len(table)). The table is copied.
func NewWiring(table []int) (*Wiring, error) {
	n := len(table)
	if n > MaxSymbols {
		return nil, fmt.Errorf("%w: %d contacts, limit is %d", ErrWiringTooLarge, n, MaxSymbols)
	}

	forward := make([]int, n)
	reverse := make([]int, n)

	for i := range reverse {
		reverse[i] = -1
	}

	for i, out := range table {
		if out < 0 || out >= n {
			return nil, fmt.Errorf("%w: contact %d maps to %d of %d", ErrWiringOutOfRange, i, out, n)
		}

		if prev := reverse[out]; prev >= 0 {
			return nil, fmt.Errorf("%w: contacts %d and %d both map to %d", ErrNotBijective, prev, i, out)
		}

		forward[i] = out
		reverse[out] = i
	}

	return &Wiring{forward: forward, reverse: reverse}, nil
}

// Identity returns the wiring that connects every contact to itself.
func Identity(n int) (*Wiring, error) {
	if err := checkContacts(n); err != nil {
		return nil, err
	}

	table := make([]int, n)
	for i := range table {
		table[i] = i
	}

	return NewWiring(table)
}

func checkContacts(n int) error {
	switch {
	case n < 0:
		return fmt.Errorf("%w: %d contacts", ErrOutOfRange, n)
	case n > MaxSymbols:
		return fmt.Errorf("%w: %d contacts, limit is %d", ErrWiringTooLarge, n, MaxSymbols)
	}

	return nil
}

// Plugboard builds an involutive wiring of n contacts that swaps each pair.
// Contacts not named in any pair are left unconnected (mapped to themselves).
func Plugboard(n int, pairs [][2]int) (*Wiring, error) {
	if err := checkContacts(n); err != nil {
		return nil, err
	}

	table := make([]int, n)
	for i := range table {
		table[i] = i
	}

	used := make(map[int]struct{}, 2*len(pairs))

	for _, p := range pairs {
		for _, c := range p {
			if c < 0 || c >= n {
				return nil, fmt.Errorf("%w: plug %d of %d", ErrOutOfRange, c, n)
			}

			if _, ok := used[c]; ok {
				return nil, fmt.Errorf("%w: contact %d is plugged twice", ErrNotBijective, c)
			}

			used[c] = struct{}{}
		}

		table[p[0]], table[p[1]] = p[1], p[0]
	}

	return NewWiring(table)
}

// Translate follows the wiring forward. The input must be in [0, Len()).
func (w *Wiring) Translate(input int) int {
	return w.forward[input]
}

// TranslateBackward returns the contact i such that Translate(i) == input.
func (w *Wiring) TranslateBackward(input int) (int, error) {
	if input < 0 || input >= len(w.reverse) {
		return 0, fmt.Errorf("%w: backward input %d of %d", ErrNoBackwardContact, input, len(w.reverse))
	}

	out := w.reverse[input]
	if out < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNoBackwardContact, input)
	}

	return out, nil
}

// Len returns the number of contacts.
func (w *Wiring) Len() int {
	return len(w.forward)
}

// Table returns a copy of the forward table.
func (w *Wiring) Table() []int {
	return append([]int(nil), w.forward...)
}

// Inverse returns the wiring that undoes w.
func (w *Wiring) Inverse() *Wiring {
	return &Wiring{
		forward: append([]int(nil), w.reverse...),
		reverse: append([]int(nil), w.forward...),
	}
}

// IsInvolution reports whether w is its own inverse.
func (w *Wiring) IsInvolution() bool {
	for i, out := range w.forward {
		if w.forward[out] != i {
			return false
		}
	}

	return true
}

// FixedPoints returns the contacts wired to themselves.
func (w *Wiring) FixedPoints() []int {
	var fixed []int

	for i, out := range w.forward {
		if i == out {
			fixed = append(fixed, i)
		}
	}

	return fixed
}
