package interval

import (
	"github.com/LerianStudio/lib-safenumerics/safenumerics/checked"
)

// Checked is an interval whose bounds are checked results. A failed
// bound records that the true bound is not representable in T; the
// interval is open on that side. Arithmetic evaluates the relevant
// corner combinations of the operand bounds with checked primitives and
// folds corner failures back into open bounds, so range information
// degrades gracefully instead of being replaced by a wrong value.
type Checked[T checked.Integer] struct {
	lo, hi checked.Result[T]
}

// NewChecked builds a checked interval from explicit bound results.
func NewChecked[T checked.Integer](lo, hi checked.Result[T]) Checked[T] {
	return Checked[T]{lo: lo, hi: hi}
}

// Lo returns the lower bound result.
func (c Checked[T]) Lo() checked.Result[T] {
	return c.lo
}

// Hi returns the upper bound result.
func (c Checked[T]) Hi() checked.Result[T] {
	return c.hi
}

// Open reports whether either bound carries a failure.
func (c Checked[T]) Open() bool {
	return c.lo.Failed() || c.hi.Failed()
}

// corner applies a checked primitive to two bound results, propagating a
// bound failure instead of computing.
func corner[T checked.Integer](f func(a, b T) checked.Result[T], a, b checked.Result[T]) checked.Result[T] {
	if a.Failed() {
		return a
	}

	if b.Failed() {
		return b
	}

	return f(a.Value(), b.Value())
}

// spanCorners folds candidate corner results into [min, max] bounds. A
// corner that failed toward negative infinity opens the lower bound, one
// that failed toward positive infinity opens the upper bound, and a
// corner with no direction (domain errors, shift faults) opens both.
func spanCorners[T checked.Integer](rs ...checked.Result[T]) Checked[T] {
	var (
		lo, hi         checked.Result[T]
		loFail, hiFail checked.Result[T]
		haveVal        bool
		haveLoFail     bool
		haveHiFail     bool
	)

	for _, r := range rs {
		if r.Failed() {
			switch r.Kind() {
			case checked.NegativeOverflow, checked.Underflow:
				if !haveLoFail {
					loFail = r
					haveLoFail = true
				}
			case checked.PositiveOverflow:
				if !haveHiFail {
					hiFail = r
					haveHiFail = true
				}
			default:
				if !haveLoFail {
					loFail = r
					haveLoFail = true
				}

				if !haveHiFail {
					hiFail = r
					haveHiFail = true
				}
			}

			continue
		}

		if !haveVal {
			lo, hi = r, r
			haveVal = true

			continue
		}

		if r.Value() < lo.Value() {
			lo = r
		}

		if r.Value() > hi.Value() {
			hi = r
		}
	}

	out := Checked[T]{lo: lo, hi: hi}

	if haveLoFail {
		out.lo = loFail
	} else if !haveVal {
		out.lo = hiFail
	}

	if haveHiFail {
		out.hi = hiFail
	} else if !haveVal {
		out.hi = loFail
	}

	return out
}

// Add returns [lo1+lo2, hi1+hi2]; addition is monotone in both corners.
func (c Checked[T]) Add(o Checked[T]) Checked[T] {
	return Checked[T]{
		lo: corner(checked.Add[T], c.lo, o.lo),
		hi: corner(checked.Add[T], c.hi, o.hi),
	}
}

// Sub returns [lo1-hi2, hi1-lo2].
func (c Checked[T]) Sub(o Checked[T]) Checked[T] {
	return Checked[T]{
		lo: corner(checked.Sub[T], c.lo, o.hi),
		hi: corner(checked.Sub[T], c.hi, o.lo),
	}
}

// Mul spans the four bound products.
func (c Checked[T]) Mul(o Checked[T]) Checked[T] {
	return spanCorners(
		corner(checked.Mul[T], c.lo, o.lo),
		corner(checked.Mul[T], c.lo, o.hi),
		corner(checked.Mul[T], c.hi, o.lo),
		corner(checked.Mul[T], c.hi, o.hi),
	)
}

// Div spans the quotients of c's bounds by o's worst-case divisors. When
// o cannot be proven to exclude zero, the divisors closest to zero in
// magnitude (+1, and -1 for signed T) join the corner set, since they
// produce the extreme quotients.
func (c Checked[T]) Div(o Checked[T]) Checked[T] {
	return c.perDivisor(checked.Div[T], o)
}

// Mod bounds the remainder without corner evaluation: a truncated
// remainder keeps the dividend's sign, never exceeds the dividend in
// magnitude, and stays strictly below the largest divisor magnitude.
func (c Checked[T]) Mod(o Checked[T]) Checked[T] {
	m, bounded := maxRemainder(o)

	var zero T

	lo := checked.Ok(zero)

	if checked.IsSigned[T]() && !(!c.lo.Failed() && c.lo.Value() >= 0) {
		switch {
		case bounded:
			l := zero - m
			if !c.lo.Failed() && c.lo.Value() > l {
				l = c.lo.Value()
			}

			lo = checked.Ok(l)
		default:
			lo = c.lo
		}
	}

	hi := checked.Ok(zero)

	if !(!c.hi.Failed() && c.hi.Value() <= 0) {
		switch {
		case bounded:
			h := m
			if !c.hi.Failed() && c.hi.Value() < h {
				h = c.hi.Value()
			}

			hi = checked.Ok(h)
		default:
			hi = c.hi
		}
	}

	return Checked[T]{lo: lo, hi: hi}
}

// maxRemainder returns the largest remainder magnitude any divisor in o
// admits, false when an open bound or an unrepresentable magnitude
// leaves it unbounded.
func maxRemainder[T checked.Integer](o Checked[T]) (T, bool) {
	if o.lo.Failed() || o.hi.Failed() {
		var zero T

		return zero, false
	}

	var m T

	for _, v := range []T{o.lo.Value(), o.hi.Value()} {
		if v < 0 {
			r := checked.Neg(v)
			if r.Failed() {
				return m, false
			}

			v = r.Value()
		}

		if v > m {
			m = v
		}
	}

	if m == 0 {
		return m, true
	}

	return m - 1, true
}

func (c Checked[T]) perDivisor(f func(a, b T) checked.Result[T], o Checked[T]) Checked[T] {
	divisors := divisorCorners(o)

	rs := make([]checked.Result[T], 0, 2*len(divisors))
	for _, d := range divisors {
		rs = append(rs, corner(f, c.lo, d), corner(f, c.hi, d))
	}

	return spanCorners(rs...)
}

func divisorCorners[T checked.Integer](o Checked[T]) []checked.Result[T] {
	if o.ExcludesValue(0).IsTrue() {
		return []checked.Result[T]{o.lo, o.hi}
	}

	var zero T

	out := make([]checked.Result[T], 0, 4)
	for _, b := range []checked.Result[T]{o.lo, o.hi} {
		if b.Failed() || b.Value() != zero {
			out = append(out, b)
		}
	}

	out = append(out, checked.Ok(zero+1))
	if checked.IsSigned[T]() {
		out = append(out, checked.Ok(zero-1))
	}

	return out
}

// ShiftLeft spans the four corner shifts of value bounds by amount
// bounds. Corner shift faults (negative amount or value, amount beyond
// the width) open both sides.
func (c Checked[T]) ShiftLeft(o Checked[T]) Checked[T] {
	return spanCorners(
		corner(checked.ShiftLeft[T], c.lo, o.lo),
		corner(checked.ShiftLeft[T], c.lo, o.hi),
		corner(checked.ShiftLeft[T], c.hi, o.lo),
		corner(checked.ShiftLeft[T], c.hi, o.hi),
	)
}

// ShiftRight spans the four corner right shifts.
func (c Checked[T]) ShiftRight(o Checked[T]) Checked[T] {
	return spanCorners(
		corner(checked.ShiftRight[T], c.lo, o.lo),
		corner(checked.ShiftRight[T], c.lo, o.hi),
		corner(checked.ShiftRight[T], c.hi, o.lo),
		corner(checked.ShiftRight[T], c.hi, o.hi),
	)
}

// ExcludesValue reports whether no value of the interval can equal v,
// Indeterminate when an open bound leaves the answer unprovable.
func (c Checked[T]) ExcludesValue(v T) Tribool {
	if !c.hi.Failed() && c.hi.Value() < v {
		return True
	}

	if !c.lo.Failed() && c.lo.Value() > v {
		return True
	}

	if !c.lo.Failed() && !c.hi.Failed() {
		return False
	}

	return Indeterminate
}

// Includes reports whether every value of o certainly lies within c.
// Closed bounds that already violate containment give a certain False
// even when other bounds are open.
func (c Checked[T]) Includes(o Checked[T]) Tribool {
	if !c.lo.Failed() && !o.lo.Failed() && o.lo.Value() < c.lo.Value() {
		return False
	}

	if !c.hi.Failed() && !o.hi.Failed() && o.hi.Value() > c.hi.Value() {
		return False
	}

	if c.Open() || o.Open() {
		return Indeterminate
	}

	return True
}

// Less orders c before o. The True branch needs only c's upper and o's
// lower bound to be closed, the False branch only c's lower and o's
// upper, so a partially open interval can still decide.
func (c Checked[T]) Less(o Checked[T]) Tribool {
	if !c.hi.Failed() && !o.lo.Failed() && c.hi.Value() < o.lo.Value() {
		return True
	}

	if !c.lo.Failed() && !o.hi.Failed() && c.lo.Value() > o.hi.Value() {
		return False
	}

	return Indeterminate
}

// Greater orders c after o, mirroring Less.
func (c Checked[T]) Greater(o Checked[T]) Tribool {
	return o.Less(c)
}

// Clamp resolves the interval into closed bounds within [min, max],
// reporting whether a bound was open or fell outside the limits. The
// report is the "can this range escape the representable range" signal.
func (c Checked[T]) Clamp(min, max T) (Interval[T], bool) {
	clamped := false

	lo := min

	if c.lo.Failed() {
		clamped = true
	} else {
		switch v := c.lo.Value(); {
		case v < min:
			clamped = true
		case v > max:
			lo = max
			clamped = true
		default:
			lo = v
		}
	}

	hi := max

	if c.hi.Failed() {
		clamped = true
	} else {
		switch v := c.hi.Value(); {
		case v > max:
			clamped = true
		case v < min:
			hi = min
			clamped = true
		default:
			hi = v
		}
	}

	if lo > hi {
		lo, hi = hi, lo
	}

	return Interval[T]{lo: lo, hi: hi}, clamped
}

// String renders closed bounds numerically and open bounds as the
// failure that opened them.
func (c Checked[T]) String() string {
	return "[" + c.lo.String() + "," + c.hi.String() + "]"
}
