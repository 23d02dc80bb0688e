package checked

import "strconv"

// Add returns a + b, or a classified overflow when the exact sum is not
// representable in T.
func Add[T Integer](a, b T) Result[T] {
	if b > 0 && a > MaxOf[T]()-b {
		return Fail[T](PositiveOverflow, "addition result too large")
	}

	if b < 0 && a < MinOf[T]()-b {
		return Fail[T](NegativeOverflow, "addition result too small")
	}

	return Ok(a + b)
}

// Sub returns a - b, or a classified overflow when the exact difference
// is not representable in T.
func Sub[T Integer](a, b T) Result[T] {
	if !IsSigned[T]() {
		if a < b {
			return Fail[T](NegativeOverflow, "subtraction result below zero")
		}

		return Ok(a - b)
	}

	if b > 0 && a < MinOf[T]()+b {
		return Fail[T](NegativeOverflow, "subtraction result too small")
	}

	if b < 0 && a > MaxOf[T]()+b {
		return Fail[T](PositiveOverflow, "subtraction result too large")
	}

	return Ok(a - b)
}

// Mul returns a * b, or a classified overflow when the exact product is
// not representable in T.
func Mul[T Integer](a, b T) Result[T] {
	if a == 0 || b == 0 {
		var zero T

		return Ok(zero)
	}

	switch {
	case a > 0 && b > 0:
		if a > MaxOf[T]()/b {
			return Fail[T](PositiveOverflow, "multiplication result too large")
		}
	case a > 0 && b < 0:
		if b < MinOf[T]()/a {
			return Fail[T](NegativeOverflow, "multiplication result too small")
		}
	case a < 0 && b > 0:
		if a < MinOf[T]()/b {
			return Fail[T](NegativeOverflow, "multiplication result too small")
		}
	default: // both negative
		if b < MaxOf[T]()/a {
			return Fail[T](PositiveOverflow, "multiplication result too large")
		}
	}

	return Ok(a * b)
}

// Div returns a / b. A zero divisor is a domain error; for signed T,
// dividing the minimum by -1 is a positive overflow.
func Div[T Integer](a, b T) Result[T] {
	if b == 0 {
		return Fail[T](DomainError, "division by zero")
	}

	var zero T
	if IsSigned[T]() && a == MinOf[T]() && b == zero-1 {
		return Fail[T](PositiveOverflow, "division result too large")
	}

	return Ok(a / b)
}

// Mod returns a % b with a zero divisor classified as a domain error.
// The remainder of the minimum by -1 is zero.
func Mod[T Integer](a, b T) Result[T] {
	if b == 0 {
		return Fail[T](DomainError, "modulus by zero")
	}

	var zero T
	if IsSigned[T]() && a == MinOf[T]() && b == zero-1 {
		return Ok(zero)
	}

	return Ok(a % b)
}

// Neg returns -a. Negating a nonzero unsigned value or the signed
// minimum is a classified overflow.
func Neg[T Integer](a T) Result[T] {
	var zero T

	if !IsSigned[T]() {
		if a != zero {
			return Fail[T](NegativeOverflow, "negation of unsigned value")
		}

		return Ok(zero)
	}

	if a == MinOf[T]() {
		return Fail[T](PositiveOverflow, "negation result too large")
	}

	return Ok(-a)
}

// ShiftLeft returns a << s with every shift fault classified: a negative
// amount, an amount at or beyond T's width, a negative shifted value,
// and a result that does not fit T.
func ShiftLeft[T Integer](a, s T) Result[T] {
	if s < 0 {
		return Fail[T](NegativeShift, "shift by negative amount")
	}

	if s >= T(BitSize[T]()) {
		return Fail[T](ShiftTooLarge, "shift amount exceeds operand width")
	}

	if a < 0 {
		return Fail[T](NegativeValueShift, "left shift of negative value")
	}

	if a > MaxOf[T]()>>s {
		return Fail[T](PositiveOverflow, "left shift result too large")
	}

	return Ok(a << s)
}

// ShiftRight returns a >> s with the same shift-fault classification as
// ShiftLeft. Right shifts cannot overflow.
func ShiftRight[T Integer](a, s T) Result[T] {
	if s < 0 {
		return Fail[T](NegativeShift, "shift by negative amount")
	}

	if s >= T(BitSize[T]()) {
		return Fail[T](ShiftTooLarge, "shift amount exceeds operand width")
	}

	if a < 0 {
		return Fail[T](NegativeValueShift, "right shift of negative value")
	}

	return Ok(a >> s)
}

// Cast validates a value of type T into type R. A value outside R's
// range is a range error; a value inside converts exactly.
func Cast[R, T Integer](v T) Result[R] {
	if Less(v, MinOf[R]()) {
		return Fail[R](RangeError, "value below target range")
	}

	if Greater(v, MaxOf[R]()) {
		return Fail[R](RangeError, "value above target range")
	}

	return Ok(R(v))
}

func formatInteger[T Integer](v T) string {
	if IsSigned[T]() {
		return strconv.FormatInt(int64(v), 10)
	}

	return strconv.FormatUint(uint64(v), 10)
}
