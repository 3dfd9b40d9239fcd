package match

import (
	"strings"
	"unicode"
)

// NormalizeName normalizes a component name for comparison.
// The normalization pipeline:
// 1. Case-fold to upper (catalog names are roman numerals and letters).
// 2. Strip separators (_, -, ., spaces).
//
// Examples:
//   - "ukw-b" -> "UKWB"
//   - "Rotor III" -> "ROTORIII"
func NormalizeName(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToUpper(r))
	}

	return b.String()
}

// NormalizeNameWithPrefixStrip normalizes and strips the first matching
// prefix. A prefix is only stripped when something remains after it.
func NormalizeNameWithPrefixStrip(s string, prefixes ...string) string {
	normalized := NormalizeName(s)

	for _, prefix := range prefixes {
		prefix = NormalizeName(prefix)
		if strings.HasPrefix(normalized, prefix) && len(normalized) > len(prefix) {
			return strings.TrimPrefix(normalized, prefix)
		}
	}

	return normalized
}

// isSeparator returns true if the rune is a common separator.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.' || unicode.IsSpace(r)
}
