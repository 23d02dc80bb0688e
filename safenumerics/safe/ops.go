package safe

import (
	"github.com/LerianStudio/lib-safenumerics/safenumerics/checked"
)

// Add returns a + b. When the operand ranges prove the sum fits both the
// computation kind and the storage range, no runtime check runs;
// otherwise the checked sum is validated and failures are routed through
// the resolved exception policy.
//
// Example:
//
//	total, err := safe.Add(balance, deposit)
//	if err != nil {
//	    return fmt.Errorf("apply deposit: %w", err)
//	}
func Add[S checked.Integer](a, b Int[S]) (Int[S], error) {
	return arith(a, b, opAdd)
}

// Sub returns a - b under the same decision procedure as Add.
func Sub[S checked.Integer](a, b Int[S]) (Int[S], error) {
	return arith(a, b, opSub)
}

// Mul returns a * b under the same decision procedure as Add.
func Mul[S checked.Integer](a, b Int[S]) (Int[S], error) {
	return arith(a, b, opMul)
}

// Neg returns the negation of a, evaluated as zero minus a so the
// operand range decides statically whether negation can overflow.
func Neg[S checked.Integer](a Int[S]) (Int[S], error) {
	var zero S

	return arith(Const(zero), a, opSub)
}

// Div returns a / b. Division by zero is a domain error; when b's range
// excludes zero and the quotient range fits, the operation is proven
// safe and runs unchecked.
func Div[S checked.Integer](a, b Int[S]) (Int[S], error) {
	return arith(a, b, opDiv)
}

// Mod returns a % b with the same zero-divisor treatment as Div.
func Mod[S checked.Integer](a, b Int[S]) (Int[S], error) {
	return arith(a, b, opMod)
}

// ShiftLeft returns a << s. Unless s's range is proven within [0, width)
// and a's range non-negative, the preconditions are checked at runtime
// and violations classified as shift faults.
func ShiftLeft[S checked.Integer](a, s Int[S]) (Int[S], error) {
	return arith(a, s, opShl)
}

// ShiftRight returns a >> s under the same precondition treatment as
// ShiftLeft.
func ShiftRight[S checked.Integer](a, s Int[S]) (Int[S], error) {
	return arith(a, s, opShr)
}
