// Package checked implements runtime-checked arithmetic over Go's
// fixed-range integer types.
//
// Every primitive computes the mathematically exact result and returns a
// Result holding either that value or a classified failure (overflow,
// domain error, shift fault, lossy cast) instead of a silently wrapped
// value. The comparison helpers (Less, Equal and friends) are sign-aware:
// they return the correct arithmetic answer when mixing signed and
// unsigned operands of any width, never converting a negative value into
// a large unsigned magnitude.
package checked
