package checked

import "github.com/shopspring/decimal"

// FromDecimal validates an exact decimal into T. A fractional value is a
// precision overflow; an integer outside T's range is a range error.
func FromDecimal[T Integer](d decimal.Decimal) Result[T] {
	if !d.IsInteger() {
		return Fail[T](PrecisionOverflow, "fractional value cannot be held exactly")
	}

	if IsSigned[T]() {
		if d.Cmp(decimal.NewFromInt(int64(MinOf[T]()))) < 0 {
			return Fail[T](RangeError, "value below target range")
		}

		if d.Cmp(decimal.NewFromInt(int64(MaxOf[T]()))) > 0 {
			return Fail[T](RangeError, "value above target range")
		}

		return Ok(T(d.IntPart()))
	}

	if d.Sign() < 0 {
		return Fail[T](RangeError, "value below target range")
	}

	if d.Cmp(decimal.NewFromUint64(uint64(MaxOf[T]()))) > 0 {
		return Fail[T](RangeError, "value above target range")
	}

	return Ok(T(d.BigInt().Uint64()))
}

// Decimal renders v as an exact decimal.
func Decimal[T Integer](v T) decimal.Decimal {
	if IsSigned[T]() {
		return decimal.NewFromInt(int64(v))
	}

	return decimal.NewFromUint64(uint64(v))
}
