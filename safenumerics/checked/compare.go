package checked

// Less reports whether a is arithmetically less than b, for any mix of
// signed and unsigned operand types. Unlike Go's < on a common type, a
// negative operand is never reinterpreted as a large unsigned magnitude.
func Less[T, U Integer](a T, b U) bool {
	aNeg, bNeg := a < 0, b < 0

	switch {
	case aNeg && !bNeg:
		return true
	case !aNeg && bNeg:
		return false
	case aNeg: // both negative, both signed
		return int64(a) < int64(b)
	default: // both non-negative
		return uint64(a) < uint64(b)
	}
}

// Equal reports whether a and b hold the same arithmetic value, for any
// mix of signed and unsigned operand types.
func Equal[T, U Integer](a T, b U) bool {
	aNeg, bNeg := a < 0, b < 0

	if aNeg != bNeg {
		return false
	}

	if aNeg {
		return int64(a) == int64(b)
	}

	return uint64(a) == uint64(b)
}

// Greater reports whether a is arithmetically greater than b.
func Greater[T, U Integer](a T, b U) bool {
	return Less(b, a)
}

// LessEqual reports whether a is arithmetically at most b.
func LessEqual[T, U Integer](a T, b U) bool {
	return !Less(b, a)
}

// GreaterEqual reports whether a is arithmetically at least b.
func GreaterEqual[T, U Integer](a T, b U) bool {
	return !Less(a, b)
}

// NotEqual reports whether a and b hold different arithmetic values.
func NotEqual[T, U Integer](a T, b U) bool {
	return !Equal(a, b)
}
