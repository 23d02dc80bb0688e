package safe

import (
	"errors"

	"github.com/LerianStudio/lib-safenumerics/safenumerics/checked"
)

// ErrDisjointRanges is returned when a conversion's source and target
// ranges share no value, so the conversion could never succeed for any
// source value. It is a declaration mistake, reported at the conversion
// site rather than dispatched as a data failure.
var ErrDisjointRanges = errors.New("conversion between disjoint ranges")

// Convert moves a ranged value into another ranged type. The static
// ranges decide the path: a target range covering the source converts
// with no runtime check, disjoint ranges are rejected outright, and
// overlapping ranges run a checked cast whose failure is dispatched as
// range_error through the resolved exception policy.
//
// Example:
//
//	wide, err := safe.Convert(count, safe.TypeOf[int64]())
//	if err != nil {
//	    return fmt.Errorf("widen count: %w", err)
//	}
func Convert[R, S checked.Integer](v Int[S], to *Type[R]) (Int[R], error) {
	pol := conversionPolicy(v, to)

	v, err := settleUninitialized(v, pol)
	if err != nil {
		return Int[R]{}, err
	}

	src := v.typ

	if checked.Less(to.max, src.min) || checked.Less(src.max, to.min) {
		return Int[R]{}, ErrDisjointRanges
	}

	if checked.LessEqual(to.min, src.min) && checked.GreaterEqual(to.max, src.max) {
		// target covers the source range: conversion cannot fail
		return Int[R]{val: R(v.val), typ: to}, nil
	}

	if err := pol.trapped(checked.ArithmeticError, "conversion into "+to.String()); err != nil {
		return Int[R]{}, err
	}

	r := checked.Cast[R](v.val)
	if r.Failed() {
		err := pol.dispatch(r.Kind(), r.Message()+" of "+to.String())
		if err != nil {
			return Int[R]{}, err
		}

		return Int[R]{val: R(v.val), typ: to}, nil
	}

	if !to.Contains(r.Value()) {
		err := pol.dispatch(checked.RangeError, "value outside declared range of "+to.String())
		if err != nil {
			return Int[R]{}, err
		}
	}

	return Int[R]{val: r.Value(), typ: to}, nil
}

// As converts a ranged value back to a plain numeric type, with a
// runtime check only when R does not provably cover the source range.
//
// Example:
//
//	port, err := safe.As[uint16](cfgPort)
func As[R, S checked.Integer](v Int[S]) (R, error) {
	out, err := Convert(v, TypeOf[R]())
	if err != nil {
		var zero R

		return zero, err
	}

	return out.val, nil
}

// conversionPolicy resolves the effective exception policy of a
// conversion from the two declaration sites, with the same conflict
// rules as binary operations.
func conversionPolicy[R, S checked.Integer](v Int[S], to *Type[R]) *ExceptionPolicy {
	var ps *ExceptionPolicy
	if v.typ != nil {
		ps = v.typ.policy
	}

	pt := to.policy

	if ps != nil && pt != nil && ps != pt {
		panic("safe: conflicting exception policies: " + ps.name + " vs " + pt.name)
	}

	if pt != nil {
		return pt
	}

	if ps != nil {
		return ps
	}

	return Strict
}
