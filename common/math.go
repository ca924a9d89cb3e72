package common

// ClampMin returns v, or min when v is below it.
func ClampMin(v, min float64) float64 {
	if v < min {
		return min
	}
	return v
}

// Wrap returns i modulo n in the range [0, n).
func Wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
