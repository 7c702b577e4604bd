package vars

// FirstNonZero picks the first non-zero value, the precedence rule for
// config resolution: flag beats config file beats built-in default.
func FirstNonZero[T comparable](values ...T) T {
	var zero T
	for _, value := range values {
		if value != zero {
			return value
		}
	}
	return zero
}
