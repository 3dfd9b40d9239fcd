package utils

type integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// IsInRange checks if a value is within the specified range, both inclusive.
func IsInRange[T integer](min T, value T, max T) bool {
	return min <= value && value <= max
}

// Shift returns (v + d) mod n for v in [0, n). Negative d shifts backwards.
func Shift(v, d, n int) int {
	return ((v+d)%n + n) % n
}
