package safe

import (
	"github.com/LerianStudio/lib-safenumerics/safenumerics/checked"
	"github.com/LerianStudio/lib-safenumerics/safenumerics/interval"
)

type operator uint8

const (
	opAdd operator = iota
	opSub
	opMul
	opDiv
	opMod
	opShl
	opShr
)

func (op operator) String() string {
	switch op {
	case opAdd:
		return "addition"
	case opSub:
		return "subtraction"
	case opMul:
		return "multiplication"
	case opDiv:
		return "division"
	case opMod:
		return "modulus"
	case opShl:
		return "left shift"
	}

	return "right shift"
}

// resolve merges the operands' declaration-site policies into the
// operation's effective policies and settles uninitialized operands.
// Two different explicitly bound policies on one operation is API misuse
// and panics, mirroring the rejection of the same conflict at a stricter
// build stage; one side nil means unspecified and defers to the other.
func resolve[S checked.Integer](a, b Int[S]) (Int[S], Int[S], *ExceptionPolicy, PromotionPolicy, error) {
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

	prom := ma
	if prom == nil {
		prom = mb
	}

	if prom == nil {
		prom = Native
	}

	var err error

	a, err = settleUninitialized(a, pol)
	if err != nil {
		return a, b, pol, prom, err
	}

	b, err = settleUninitialized(b, pol)

	return a, b, pol, prom, err
}

// settleUninitialized routes first use of a never-constructed value
// through the policy, then substitutes the implicit full-range type so
// the operation can proceed when the policy allows it.
func settleUninitialized[S checked.Integer](v Int[S], pol *ExceptionPolicy) (Int[S], error) {
	if v.typ != nil {
		return v, nil
	}

	if err := pol.trapped(checked.Uninitialized, "use of uninitialized value"); err != nil {
		return v, err
	}

	if err := pol.dispatch(checked.UninitializedValue, "use of uninitialized value"); err != nil {
		return v, err
	}

	v.typ = nativeType[S]()

	return v, nil
}

// promotedKind applies the promotion policy for op's operator family and
// rejects a selection the storage cannot be losslessly widened into.
func promotedKind[S checked.Integer](op operator, prom PromotionPolicy) Kind {
	sk := KindOf[S]()

	var k Kind

	switch op {
	case opAdd, opSub, opMul:
		k = prom.Arithmetic(sk, sk)
	case opDiv:
		k = prom.Division(sk, sk)
	case opMod:
		k = prom.Modulus(sk, sk)
	case opShl:
		k = prom.LeftShift(sk, sk)
	default:
		k = prom.RightShift(sk, sk)
	}

	if k.Signed() != sk.Signed() || k.Bits() < sk.Bits() {
		panic("safe: promotion selected incompatible kind " + k.String() + " for " + sk.String())
	}

	return k
}

// arith runs one binary arithmetic operation through the decision
// procedure. The computation domain is the 64-bit type of S's
// signedness, wide enough to hold any promoted kind exactly.
func arith[S checked.Integer](a, b Int[S], op operator) (Int[S], error) {
	a, b, pol, prom, err := resolve(a, b)
	if err != nil {
		return Int[S]{}, err
	}

	if checked.IsSigned[S]() {
		return arithIn[int64](a, b, op, pol, prom)
	}

	return arithIn[uint64](a, b, op, pol, prom)
}

func arithIn[C, S checked.Integer](a, b Int[S], op operator, pol *ExceptionPolicy, prom PromotionPolicy) (Int[S], error) {
	k := promotedKind[S](op, prom)
	kmin, kmax := kindMin[C](k), kindMax[C](k)

	ti := interval.New(C(a.typ.min), C(a.typ.max)).Checked()
	ui := interval.New(C(b.typ.min), C(b.typ.max)).Checked()

	// static range of the result, plus op-specific conditions that force
	// the runtime check regardless of how the range fits
	var (
		cand   interval.Checked[C]
		forced bool
		shifty bool
	)

	switch op {
	case opAdd:
		cand = ti.Add(ui)
	case opSub:
		cand = ti.Sub(ui)
	case opMul:
		cand = ti.Mul(ui)
	case opDiv:
		forced = !ui.ExcludesValue(0).IsTrue()
		cand = ti.Div(ui)
	case opMod:
		forced = !ui.ExcludesValue(0).IsTrue()
		cand = ti.Mod(ui)
	case opShl, opShr:
		shifty = true
		forced = !shiftProven(ti, ui, k)

		if op == opShl {
			cand = ti.ShiftLeft(ui)
		} else {
			cand = ti.ShiftRight(ui)
		}
	}

	// clamp the candidate range into the computation kind, then into the
	// declared storage range
	ki, clamped := cand.Clamp(kmin, kmax)

	smin, smax := C(checked.MinOf[S]()), C(checked.MaxOf[S]())

	dl, du := clampStorage(ki.Lo(), smin, smax), clampStorage(ki.Hi(), smin, smax)
	if dl != ki.Lo() || du != ki.Hi() {
		clamped = true
	}

	rt := &Type[S]{min: S(dl), max: S(du), promote: prom, policy: pol}
	possible := forced || clamped

	if !possible {
		// statically proven safe: skip validation entirely
		r := evalOp(op, C(a.val), C(b.val))
		if r.Failed() {
			panic("safe: proven-safe " + op.String() + " failed: " + r.Kind().String())
		}

		return Int[S]{val: S(r.Value()), typ: rt}, nil
	}

	arithPossible := clamped || ((op == opDiv || op == opMod) && forced)
	if err := trapPossible(pol, op, arithPossible, shifty && forced); err != nil {
		return Int[S]{}, err
	}

	return runChecked(a, b, op, pol, k, rt, dl, du)
}

func clampStorage[C checked.Integer](v, min, max C) C {
	if v < min {
		return min
	}

	if v > max {
		return max
	}

	return v
}

// trapPossible rejects the operation when the policy traps a category
// that the static analysis could not rule out.
func trapPossible(pol *ExceptionPolicy, op operator, arithPossible, idbPossible bool) error {
	if idbPossible {
		// unproven shift preconditions are implementation-defined faults
		if err := pol.trapped(checked.ImplementationDefined, op.String()); err != nil {
			return err
		}
	}

	if !arithPossible {
		return nil
	}

	return pol.trapped(checked.ArithmeticError, op.String())
}

// runChecked executes the operation in the computation domain and
// validates the outcome against the declared result range [dl, du].
func runChecked[C, S checked.Integer](a, b Int[S], op operator, pol *ExceptionPolicy, k Kind, rt *Type[S], dl, du C) (Int[S], error) {
	x, y := C(a.val), C(b.val)

	kind, msg := checked.Success, ""

	if op == opShl || op == opShr {
		kind, msg = shiftFault(x, y, k)
	}

	if kind == checked.Success {
		r := evalOp(op, x, y)
		if !r.Failed() {
			switch v := r.Value(); {
			case v > du:
				kind, msg = checked.PositiveOverflow, op.String()+" result above declared range"
			case v < dl:
				kind, msg = checked.NegativeOverflow, op.String()+" result below declared range"
			default:
				return Int[S]{val: S(v), typ: rt}, nil
			}
		} else {
			kind, msg = r.Kind(), r.Message()
		}
	}

	if err := pol.dispatch(kind, msg); err != nil {
		return Int[S]{}, err
	}

	// ignore action: best-effort native result, wrapped into storage
	return Int[S]{val: S(bestEffort(op, x, y)), typ: rt}, nil
}

// shiftProven reports whether the shift preconditions hold for every
// value in the operand ranges: amount within [0, width) and, for signed
// domains, a non-negative shifted value.
func shiftProven[C checked.Integer](ti, ui interval.Checked[C], k Kind) bool {
	if ui.Lo().Failed() || ui.Hi().Failed() || ti.Lo().Failed() {
		return false
	}

	if ui.Lo().Value() < 0 || ui.Hi().Value() >= C(k.Bits()) {
		return false
	}

	return ti.Lo().Value() >= 0
}

// shiftFault classifies a runtime shift-precondition violation against
// the computation kind's width.
func shiftFault[C checked.Integer](x, y C, k Kind) (checked.ErrorKind, string) {
	if y < 0 {
		return checked.NegativeShift, "shift by negative amount"
	}

	if y >= C(k.Bits()) {
		return checked.ShiftTooLarge, "shift amount exceeds operand width"
	}

	if x < 0 {
		return checked.NegativeValueShift, "shift of negative value"
	}

	return checked.Success, ""
}

func evalOp[C checked.Integer](op operator, x, y C) checked.Result[C] {
	switch op {
	case opAdd:
		return checked.Add(x, y)
	case opSub:
		return checked.Sub(x, y)
	case opMul:
		return checked.Mul(x, y)
	case opDiv:
		return checked.Div(x, y)
	case opMod:
		return checked.Mod(x, y)
	case opShl:
		return checked.ShiftLeft(x, y)
	}

	return checked.ShiftRight(x, y)
}

// bestEffort mirrors what unchecked native code would produce, with the
// operations Go itself would panic on pinned to a defined substitute.
func bestEffort[C checked.Integer](op operator, x, y C) C {
	var zero C

	switch op {
	case opAdd:
		return x + y
	case opSub:
		return x - y
	case opMul:
		return x * y
	case opDiv:
		if y == 0 {
			return zero
		}

		if checked.IsSigned[C]() && x == checked.MinOf[C]() && y == zero-1 {
			return x
		}

		return x / y
	case opMod:
		if y == 0 {
			return zero
		}

		return x % y
	case opShl:
		if y < 0 || y >= C(checked.BitSize[C]()) {
			return zero
		}

		return x << y
	}

	if y < 0 || y >= C(checked.BitSize[C]()) {
		return zero
	}

	return x >> y
}
