// Package safe implements ranged integer values whose operations are
// guaranteed to either produce an arithmetically correct result or
// report the failure through a configurable exception policy.
//
// A Type[S] describes a storage type S together with a declared
// inclusive range and the policies bound at the declaration site. An
// Int[S] is a value proven to lie inside its Type's range. Before an
// operation executes, the static ranges of the operands decide whether a
// failure is even possible; a proven-safe operation runs with no runtime
// check at all, and an operation that could fail runs checked, routing
// any detected failure through the resolved exception policy.
//
// Mixed-storage arithmetic requires an explicit Convert, mirroring Go's
// explicit conversion rule. Comparisons are heterogeneous and
// sign-correct across any two storage types. Plain numeric operands
// enter expressions through Const, which carries a single-point range:
//
//	x := safe.TypeOf[int8]().MustNew(100)
//	sum, err := safe.Add(x, safe.Const[int8](27))
//	if err != nil {
//	    return fmt.Errorf("accumulate: %w", err)
//	}
package safe
