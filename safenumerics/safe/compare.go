package safe

import (
	"github.com/LerianStudio/lib-safenumerics/safenumerics/checked"
)

// Less reports whether a is arithmetically less than b, across any two
// storage types. When the static ranges are disjoint the answer is
// decided without touching the values; otherwise a sign-aware runtime
// comparison runs. A negative signed value is never reinterpreted as a
// large unsigned magnitude.
//
// Example:
//
//	ok, err := safe.Less(spent, limit)
//	if err != nil {
//	    return fmt.Errorf("check limit: %w", err)
//	}
func Less[A, B checked.Integer](a Int[A], b Int[B]) (bool, error) {
	at, bt, err := resolveCompare(a, b)
	if err != nil {
		return false, err
	}

	// every value of a below every value of b, or none
	if checked.Less(at.max, bt.min) {
		return true, nil
	}

	if checked.Greater(at.min, bt.max) {
		return false, nil
	}

	return checked.Less(a.val, b.val), nil
}

// Greater reports whether a is arithmetically greater than b.
func Greater[A, B checked.Integer](a Int[A], b Int[B]) (bool, error) {
	return Less(b, a)
}

// LessEqual reports whether a is arithmetically at most b.
func LessEqual[A, B checked.Integer](a Int[A], b Int[B]) (bool, error) {
	g, err := Less(b, a)

	return !g && err == nil, err
}

// GreaterEqual reports whether a is arithmetically at least b.
func GreaterEqual[A, B checked.Integer](a Int[A], b Int[B]) (bool, error) {
	l, err := Less(a, b)

	return !l && err == nil, err
}

// Equal reports whether a and b hold the same arithmetic value. Disjoint
// static ranges decide false without touching the values.
func Equal[A, B checked.Integer](a Int[A], b Int[B]) (bool, error) {
	at, bt, err := resolveCompare(a, b)
	if err != nil {
		return false, err
	}

	if checked.Less(at.max, bt.min) || checked.Less(bt.max, at.min) {
		return false, nil
	}

	return checked.Equal(a.val, b.val), nil
}

// NotEqual reports whether a and b hold different arithmetic values.
func NotEqual[A, B checked.Integer](a Int[A], b Int[B]) (bool, error) {
	eq, err := Equal(a, b)

	return !eq && err == nil, err
}

// resolveCompare is resolve for heterogeneous operands: same conflict
// rules, same uninitialized-value settlement, but no shared storage.
func resolveCompare[A, B checked.Integer](a Int[A], b Int[B]) (*Type[A], *Type[B], error) {
	var pa, pb *ExceptionPolicy

	if a.typ != nil {
		pa = a.typ.policy
	}

	if b.typ != nil {
		pb = b.typ.policy
	}

	if pa != nil && pb != nil && pa != pb {
		panic("safe: conflicting exception policies: " + pa.name + " vs " + pb.name)
	}

	pol := pa
	if pol == nil {
		pol = pb
	}

	if pol == nil {
		pol = Strict
	}

	var ma, mb PromotionPolicy

	if a.typ != nil {
		ma = a.typ.promote
	}

	if b.typ != nil {
		mb = b.typ.promote
	}

	if ma != nil && mb != nil && ma != mb {
		panic("safe: conflicting promotion policies")
	}

	a, err := settleUninitialized(a, pol)
	if err != nil {
		return nil, nil, err
	}

	b, err = settleUninitialized(b, pol)
	if err != nil {
		return nil, nil, err
	}

	return a.typ, b.typ, nil
}
