package safe

import (
	"github.com/shopspring/decimal"

	"github.com/LerianStudio/lib-safenumerics/safenumerics/checked"
)

// Int is a ranged value: a value of storage type S guaranteed by
// construction to lie within its Type's declared range (under the ignore
// action the guarantee is explicitly waived).
//
// The zero value is an uninitialized ranged value. Its first use in an
// operation routes uninitialized_value through the resolved exception
// policy; if the policy does not reject it, the value continues with the
// implicit full-range type.
type Int[S checked.Integer] struct {
	val S
	typ *Type[S]
}

// New validates v into the declared range. A value outside the range is
// dispatched as range_error; under a trapping policy any range that
// cannot accept all of S is rejected up front, because a raw S value has
// no static range to prove safety with.
func (t *Type[S]) New(v S) (Int[S], error) {
	if t.fullRange() {
		return Int[S]{val: v, typ: t}, nil
	}

	pol := t.resolvedPolicy()
	if err := pol.trapped(checked.ArithmeticError, "construction of "+t.String()); err != nil {
		return Int[S]{}, err
	}

	if !t.Contains(v) {
		err := pol.dispatch(checked.RangeError, "value outside declared range of "+t.String())
		if err != nil {
			return Int[S]{}, err
		}
	}

	return Int[S]{val: v, typ: t}, nil
}

// MustNew is New for values known valid at the declaration site; it
// panics on any construction error.
func (t *Type[S]) MustNew(v S) Int[S] {
	x, err := t.New(v)
	if err != nil {
		panic("safe: " + err.Error())
	}

	return x
}

// FromDecimal validates an exact decimal into the declared range. A
// fractional value is precision_overflow, an out-of-range integer
// range_error. A decimal has no static range, so a trapping policy
// rejects the conversion up front.
func (t *Type[S]) FromDecimal(d decimal.Decimal) (Int[S], error) {
	pol := t.resolvedPolicy()
	if err := pol.trapped(checked.ArithmeticError, "decimal conversion into "+t.String()); err != nil {
		return Int[S]{}, err
	}

	r := checked.FromDecimal[S](d)
	if r.Failed() {
		err := pol.dispatch(r.Kind(), r.Message())
		if err != nil {
			return Int[S]{}, err
		}

		var zero S

		return Int[S]{val: zero, typ: t}, nil
	}

	return t.New(r.Value())
}

// Const builds a literal ranged value whose static range is the single
// point [v, v], giving the dispatcher maximal room to prove operations
// safe. Policies stay unspecified so a Const operand never conflicts.
func Const[S checked.Integer](v S) Int[S] {
	t, _ := NewType(v, v)

	return Int[S]{val: v, typ: t}
}

// Value returns the stored value.
func (v Int[S]) Value() S {
	return v.val
}

// Type returns the value's range descriptor, nil for the uninitialized
// zero value.
func (v Int[S]) Type() *Type[S] {
	return v.typ
}

// IsInitialized reports whether v was produced by a construction path.
func (v Int[S]) IsInitialized() bool {
	return v.typ != nil
}

// Decimal renders the value as an exact decimal.
func (v Int[S]) Decimal() decimal.Decimal {
	return checked.Decimal(v.val)
}
