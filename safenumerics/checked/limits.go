package checked

import "unsafe"

// Integer enumerates the fixed-range integer types checked arithmetic
// operates on.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// IsSigned reports whether T is a signed type.
func IsSigned[T Integer]() bool {
	var zero T

	return zero-1 < zero
}

// BitSize returns the width of T in bits.
func BitSize[T Integer]() int {
	var zero T

	return int(unsafe.Sizeof(zero)) * 8
}

// MinOf returns the smallest representable value of T.
func MinOf[T Integer]() T {
	var zero T
	if !IsSigned[T]() {
		return zero
	}

	return (zero - 1) << (BitSize[T]() - 1)
}

// MaxOf returns the largest representable value of T.
func MaxOf[T Integer]() T {
	var zero T
	if !IsSigned[T]() {
		return zero - 1
	}

	return ^((zero - 1) << (BitSize[T]() - 1))
}
