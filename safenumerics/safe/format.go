package safe

import (
	"errors"
	"strconv"
	"strings"

	"github.com/LerianStudio/lib-safenumerics/safenumerics/checked"
)

// String renders the numeric value. Byte-sized storages render as
// numbers, never as characters.
func (v Int[S]) String() string {
	if checked.IsSigned[S]() {
		return strconv.FormatInt(int64(v.val), 10)
	}

	return strconv.FormatUint(uint64(v.val), 10)
}

// Parse reads a base-10 numeral and validates it into the declared
// range. A negative numeral for an unsigned range is rejected outright
// instead of being wrapped into a large magnitude; malformed input is a
// domain error, out-of-range input a range error, both dispatched
// through the type's exception policy. Parsed input has no static
// range, so a trapping policy rejects Parse up front.
func (t *Type[S]) Parse(s string) (Int[S], error) {
	pol := t.resolvedPolicy()
	if err := pol.trapped(checked.ArithmeticError, "parse into "+t.String()); err != nil {
		return Int[S]{}, err
	}

	s = strings.TrimSpace(s)

	if !checked.IsSigned[S]() && strings.HasPrefix(s, "-") {
		if err := pol.dispatch(checked.DomainError, "negative numeral for unsigned range"); err != nil {
			return Int[S]{}, err
		}

		var zero S

		return Int[S]{val: zero, typ: t}, nil
	}

	var r checked.Result[S]

	if checked.IsSigned[S]() {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return t.parseFailed(rangeOrMalformed(err))
		}

		r = checked.Cast[S](n)
	} else {
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return t.parseFailed(rangeOrMalformed(err))
		}

		r = checked.Cast[S](n)
	}

	if r.Failed() {
		return t.parseFailed(r.Kind(), r.Message())
	}

	return t.New(r.Value())
}

func (t *Type[S]) parseFailed(kind checked.ErrorKind, msg string) (Int[S], error) {
	if err := t.resolvedPolicy().dispatch(kind, msg); err != nil {
		return Int[S]{}, err
	}

	var zero S

	return Int[S]{val: zero, typ: t}, nil
}

// rangeOrMalformed maps strconv failures onto the failure taxonomy:
// numerals too large for 64 bits are range errors, anything else is
// malformed input.
func rangeOrMalformed(err error) (checked.ErrorKind, string) {
	var ne *strconv.NumError
	if errors.As(err, &ne) && errors.Is(ne.Err, strconv.ErrRange) {
		return checked.RangeError, "numeral outside representable range"
	}

	return checked.DomainError, "malformed numeral"
}
