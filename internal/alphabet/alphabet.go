// Package alphabet converts between text and machine symbols.
//
// Symbols are zero-based letter indices: 'A' is 0 and 'Z' is 25. Input text
// is upper-cased and stripped of whitespace before conversion; any other
// character is rejected with its position in the cleaned text.
package alphabet

import (
	"fmt"
	"strings"
	"unicode"

	"enigma-simulator/utils"
)

// Letters is the machine keyboard in symbol order.
const Letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Size is the number of symbols.
const Size = len(Letters)

// InvalidCharError reports a character that has no key on the keyboard.
type InvalidCharError struct {
	Char     rune
	Position int
}

func (e *InvalidCharError) Error() string {
	return fmt.Sprintf("invalid character %q at position %d", e.Char, e.Position)
}

// Index returns the symbol for an upper-case letter.
func Index(r rune) (int, bool) {
	if !utils.IsInRange('A', r, 'Z') {
		return 0, false
	}

	return int(r - 'A'), true
}

// Letter returns the letter for a symbol.
func Letter(symbol int) byte {
	return Letters[symbol]
}

// Sanitize upper-cases s and removes all whitespace.
func Sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return unicode.ToUpper(r)
	}, s)
}

// Encode converts upper-case letters to symbols. Positions in errors count
// runes from zero.
func Encode(s string) ([]int, error) {
	out := make([]int, 0, len(s))

	pos := 0
	for _, r := range s {
		sym, ok := Index(r)
		if !ok {
			return nil, &InvalidCharError{Char: r, Position: pos}
		}

		out = append(out, sym)
		pos++
	}

	return out, nil
}

// Parse sanitizes s and encodes it.
func Parse(s string) ([]int, error) {
	return Encode(Sanitize(s))
}

// Decode converts symbols back to letters.
func Decode(symbols []int) string {
	var b strings.Builder

	b.Grow(len(symbols))

	for _, s := range symbols {
		b.WriteByte(Letter(s))
	}

	return b.String()
}

// Group splits s into blocks of size letters separated by single spaces.
// A size of zero or less returns s unchanged.
func Group(s string, size int) string {
	if size <= 0 || len(s) <= size {
		return s
	}

	var b strings.Builder

	b.Grow(len(s) + len(s)/size)

	for i := 0; i < len(s); i += size {
		if i > 0 {
			b.WriteByte(' ')
		}

		b.WriteString(s[i:min(i+size, len(s))])
	}

	return b.String()
}

// ParsePairs reads plugboard pairs such as "AB CD EF". Each field must be
// exactly two letters.
func ParsePairs(s string) ([][2]int, error) {
	fields := strings.Fields(strings.ToUpper(s))
	pairs := make([][2]int, 0, len(fields))

	for _, f := range fields {
		syms, err := Encode(f)
		if err != nil {
			return nil, fmt.Errorf("plug %q: %w", f, err)
		}

		if len(syms) != 2 {
			return nil, fmt.Errorf("plug %q: want two letters", f)
		}

		pairs = append(pairs, [2]int{syms[0], syms[1]})
	}

	return pairs, nil
}

// FormatPairs renders pairs the way ParsePairs reads them.
func FormatPairs(pairs [][2]int) string {
	fields := make([]string, len(pairs))
	for i, p := range pairs {
		fields[i] = string([]byte{Letter(p[0]), Letter(p[1])})
	}

	return strings.Join(fields, " ")
}
