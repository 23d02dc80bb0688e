package safe

// PromotionPolicy selects, per operator family, the computation kind for
// an operation over two ranged operands. It is a pure type-level rule:
// swapping the policy never changes interval or checked-arithmetic
// logic, only the domain they run in. The selected kind must keep the
// operands' signedness and be at least as wide as their storage;
// anything else is rejected at dispatch as API misuse.
//
// Implementations must be comparable so conflicting policies on the two
// operands of one operation can be detected.
type PromotionPolicy interface {
	// Arithmetic picks the kind for addition, subtraction and
	// multiplication.
	Arithmetic(a, b Kind) Kind
	// Division picks the kind for division.
	Division(a, b Kind) Kind
	// Modulus picks the kind for remainder.
	Modulus(a, b Kind) Kind
	// Comparison picks the intermediate kind values are compared in.
	Comparison(a, b Kind) Kind
	// LeftShift picks the kind for left shifts.
	LeftShift(a, b Kind) Kind
	// RightShift picks the kind for right shifts.
	RightShift(a, b Kind) Kind
	// Bitwise picks the kind for and, or and xor.
	Bitwise(a, b Kind) Kind
}

// NativePromotion computes every operation in the wider of the operand
// kinds, mirroring Go's own arithmetic: no hidden widening, so an
// intermediate result that would not fit the storage kind is a failure.
type NativePromotion struct{}

func (NativePromotion) Arithmetic(a, b Kind) Kind { return widerKind(a, b) }
func (NativePromotion) Division(a, b Kind) Kind   { return widerKind(a, b) }
func (NativePromotion) Modulus(a, b Kind) Kind    { return widerKind(a, b) }
func (NativePromotion) Comparison(a, b Kind) Kind { return widerKind(a, b) }
func (NativePromotion) LeftShift(a, b Kind) Kind  { return widerKind(a, b) }
func (NativePromotion) RightShift(a, b Kind) Kind { return widerKind(a, b) }
func (NativePromotion) Bitwise(a, b Kind) Kind    { return widerKind(a, b) }

// WidenedPromotion computes every operation in the 64-bit kind of the
// operands' signedness, so intermediate results of narrow storages
// cannot overflow the computation domain; only the final store back into
// the declared range can fail.
type WidenedPromotion struct{}

func (WidenedPromotion) Arithmetic(a, b Kind) Kind { return wide64(a) }
func (WidenedPromotion) Division(a, b Kind) Kind   { return wide64(a) }
func (WidenedPromotion) Modulus(a, b Kind) Kind    { return wide64(a) }
func (WidenedPromotion) Comparison(a, b Kind) Kind { return wide64(a) }
func (WidenedPromotion) LeftShift(a, b Kind) Kind  { return wide64(a) }
func (WidenedPromotion) RightShift(a, b Kind) Kind { return wide64(a) }
func (WidenedPromotion) Bitwise(a, b Kind) Kind    { return wide64(a) }

var (
	// Native is the promotion policy mirroring Go arithmetic.
	Native PromotionPolicy = NativePromotion{}
	// Widened is the promotion policy computing in 64 bits.
	Widened PromotionPolicy = WidenedPromotion{}
)

func widerKind(a, b Kind) Kind {
	if a.Bits() >= b.Bits() {
		return a
	}

	return b
}

func wide64(a Kind) Kind {
	if a.Signed() {
		return Int64
	}

	return Uint64
}
