package interval

import (
	"strconv"

	"github.com/LerianStudio/lib-safenumerics/safenumerics/checked"
)

// Interval is an immutable closed range [lo, hi] over a fixed-range
// integer type. lo <= hi is a construction contract.
type Interval[T checked.Integer] struct {
	lo, hi T
}

// New builds the closed interval [lo, hi]. Passing lo > hi is a
// programming error and panics.
func New[T checked.Integer](lo, hi T) Interval[T] {
	if lo > hi {
		panic("interval: lower bound exceeds upper bound")
	}

	return Interval[T]{lo: lo, hi: hi}
}

// Point builds the single-value interval [v, v].
func Point[T checked.Integer](v T) Interval[T] {
	return Interval[T]{lo: v, hi: v}
}

// Full returns the interval spanning every representable value of T.
func Full[T checked.Integer]() Interval[T] {
	return Interval[T]{lo: checked.MinOf[T](), hi: checked.MaxOf[T]()}
}

// Lo returns the inclusive lower bound.
func (i Interval[T]) Lo() T {
	return i.lo
}

// Hi returns the inclusive upper bound.
func (i Interval[T]) Hi() T {
	return i.hi
}

// Union returns the smallest interval containing both i and o.
func (i Interval[T]) Union(o Interval[T]) Interval[T] {
	lo := i.lo
	if o.lo < lo {
		lo = o.lo
	}

	hi := i.hi
	if o.hi > hi {
		hi = o.hi
	}

	return Interval[T]{lo: lo, hi: hi}
}

// Intersect returns the overlap of i and o, with ok false when the
// intervals are disjoint.
func (i Interval[T]) Intersect(o Interval[T]) (Interval[T], bool) {
	lo := i.lo
	if o.lo > lo {
		lo = o.lo
	}

	hi := i.hi
	if o.hi < hi {
		hi = o.hi
	}

	if lo > hi {
		return Interval[T]{}, false
	}

	return Interval[T]{lo: lo, hi: hi}, true
}

// Includes reports whether v lies within the interval.
func (i Interval[T]) Includes(v T) bool {
	return i.lo <= v && v <= i.hi
}

// IncludesInterval reports whether every value of o lies within i.
func (i Interval[T]) IncludesInterval(o Interval[T]) bool {
	return i.lo <= o.lo && o.hi <= i.hi
}

// Excludes reports whether no value of the interval can equal v.
func (i Interval[T]) Excludes(v T) bool {
	return v < i.lo || v > i.hi
}

// ExcludesInterval reports whether i and o share no value.
func (i Interval[T]) ExcludesInterval(o Interval[T]) bool {
	return o.hi < i.lo || i.hi < o.lo
}

// Less orders i before o: True when every value of i is below every
// value of o, False when none is, Indeterminate when the ranges overlap.
func (i Interval[T]) Less(o Interval[T]) Tribool {
	if i.hi < o.lo {
		return True
	}

	if i.lo > o.hi {
		return False
	}

	return Indeterminate
}

// Greater orders i after o, mirroring Less.
func (i Interval[T]) Greater(o Interval[T]) Tribool {
	return o.Less(i)
}

// LessEqual is the three-valued complement of Greater.
func (i Interval[T]) LessEqual(o Interval[T]) Tribool {
	return i.Greater(o).Not()
}

// GreaterEqual is the three-valued complement of Less.
func (i Interval[T]) GreaterEqual(o Interval[T]) Tribool {
	return i.Less(o).Not()
}

// Equal reports whether i and o have identical bounds.
func (i Interval[T]) Equal(o Interval[T]) bool {
	return i.lo == o.lo && i.hi == o.hi
}

// Checked lifts the interval into the checked-bound representation.
func (i Interval[T]) Checked() Checked[T] {
	return Checked[T]{lo: checked.Ok(i.lo), hi: checked.Ok(i.hi)}
}

// Add returns the range of a+b over the operand ranges; an overflowing
// bound leaves the result open on that side.
func (i Interval[T]) Add(o Interval[T]) Checked[T] {
	return i.Checked().Add(o.Checked())
}

// Sub returns the range of a-b over the operand ranges.
func (i Interval[T]) Sub(o Interval[T]) Checked[T] {
	return i.Checked().Sub(o.Checked())
}

// Mul returns the range of a*b over the operand ranges.
func (i Interval[T]) Mul(o Interval[T]) Checked[T] {
	return i.Checked().Mul(o.Checked())
}

// Div returns the range of a/b over the operand ranges.
func (i Interval[T]) Div(o Interval[T]) Checked[T] {
	return i.Checked().Div(o.Checked())
}

// Mod returns the range of a%b over the operand ranges.
func (i Interval[T]) Mod(o Interval[T]) Checked[T] {
	return i.Checked().Mod(o.Checked())
}

// ShiftLeft returns the range of a<<s over the operand ranges.
func (i Interval[T]) ShiftLeft(o Interval[T]) Checked[T] {
	return i.Checked().ShiftLeft(o.Checked())
}

// ShiftRight returns the range of a>>s over the operand ranges.
func (i Interval[T]) ShiftRight(o Interval[T]) Checked[T] {
	return i.Checked().ShiftRight(o.Checked())
}

// String renders the interval as [lo,hi]. Byte-sized bound types render
// numerically, never as characters.
func (i Interval[T]) String() string {
	return "[" + formatBound(i.lo) + "," + formatBound(i.hi) + "]"
}

func formatBound[T checked.Integer](v T) string {
	if checked.IsSigned[T]() {
		return strconv.FormatInt(int64(v), 10)
	}

	return strconv.FormatUint(uint64(v), 10)
}
