package safe

import (
	"math/bits"

	"github.com/LerianStudio/lib-safenumerics/safenumerics/checked"
)

type bitop uint8

const (
	bitAnd bitop = iota
	bitOr
	bitXor
)

// And returns the bitwise conjunction of the operand patterns. Bitwise
// operations treat values as S-width bit patterns and can never fail, so
// the result skips validation entirely.
func And[S checked.Integer](a, b Int[S]) (Int[S], error) {
	return bitwise(a, b, bitAnd)
}

// Or returns the bitwise disjunction of the operand patterns.
func Or[S checked.Integer](a, b Int[S]) (Int[S], error) {
	return bitwise(a, b, bitOr)
}

// Xor returns the bitwise exclusive-or of the operand patterns.
func Xor[S checked.Integer](a, b Int[S]) (Int[S], error) {
	return bitwise(a, b, bitXor)
}

func bitwise[S checked.Integer](a, b Int[S], op bitop) (Int[S], error) {
	a, b, pol, prom, err := resolve(a, b)
	if err != nil {
		return Int[S]{}, err
	}

	// patterns are S-width by definition, so the promotion rule cannot
	// widen the computation; it still gates the operation like every
	// other operator family
	sk := KindOf[S]()
	if k := prom.Bitwise(sk, sk); k.Signed() != sk.Signed() || k.Bits() < sk.Bits() {
		panic("safe: promotion selected incompatible kind " + k.String() + " for " + sk.String())
	}

	mask := patternMask[S]()
	px := uint64(a.val) & mask
	py := uint64(b.val) & mask

	var pr uint64

	switch op {
	case bitAnd:
		pr = px & py
	case bitOr:
		pr = px | py
	default:
		pr = px ^ py
	}

	rt := bitwiseResultType(a.typ, b.typ, op, pol, prom)

	return Int[S]{val: S(pr), typ: rt}, nil
}

// bitwiseResultType declares the result range. With non-negative operand
// ranges the patterns are bounded, so the range is [0, m] where m rounds
// the reachable maximum out to all-ones. An operand admitting negative
// values can produce any S-width pattern, so the range falls back to S's
// full span: every result value must stay inside its declared range, and
// a negative pattern would escape a [0, m] range.
func bitwiseResultType[S checked.Integer](at, bt *Type[S], op bitop, pol *ExceptionPolicy, prom PromotionPolicy) *Type[S] {
	rt := &Type[S]{promote: prom, policy: pol}

	if at.min < 0 || bt.min < 0 {
		rt.min = checked.MinOf[S]()
		rt.max = checked.MaxOf[S]()

		return rt
	}

	am, bm := uint64(at.max), uint64(bt.max)

	m := am
	if op == bitAnd {
		if bm < m {
			m = bm
		}
	} else if bm > m {
		m = bm
	}

	m = roundOut(m)

	smax := uint64(checked.MaxOf[S]())
	if m > smax {
		m = smax
	}

	rt.max = S(m)

	return rt
}

// patternMask selects the S-width low bits of a 64-bit pattern.
func patternMask[S checked.Integer]() uint64 {
	return ^uint64(0) >> (64 - checked.BitSize[S]())
}

// roundOut fills every bit below the highest set bit, the tightest
// power-of-two-minus-one bound on any pattern of the same length.
func roundOut(v uint64) uint64 {
	if v == 0 {
		return 0
	}

	return 1<<bits.Len64(v) - 1
}
