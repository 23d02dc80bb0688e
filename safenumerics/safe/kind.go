package safe

import (
	"github.com/LerianStudio/lib-safenumerics/safenumerics/checked"
)

// Kind identifies a computation domain: the bit width and signedness in
// which static range reasoning and runtime checking run for one
// operation.
type Kind uint8

const (
	Int8 Kind = iota
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
)

// Signed reports whether the kind is a signed domain.
func (k Kind) Signed() bool {
	return k <= Int64
}

// Bits returns the width of the kind in bits.
func (k Kind) Bits() int {
	switch k {
	case Int8, Uint8:
		return 8
	case Int16, Uint16:
		return 16
	case Int32, Uint32:
		return 32
	}

	return 64
}

func (k Kind) String() string {
	switch k {
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Uint32:
		return "uint32"
	}

	return "uint64"
}

// KindOf returns the kind matching S's width and signedness.
func KindOf[S checked.Integer]() Kind {
	signed := checked.IsSigned[S]()

	switch checked.BitSize[S]() {
	case 8:
		if signed {
			return Int8
		}

		return Uint8
	case 16:
		if signed {
			return Int16
		}

		return Uint16
	case 32:
		if signed {
			return Int32
		}

		return Uint32
	}

	if signed {
		return Int64
	}

	return Uint64
}

// kindMin returns k's minimum expressed in the computation type C. The
// caller guarantees C's signedness matches k's.
func kindMin[C checked.Integer](k Kind) C {
	var zero C
	if !k.Signed() {
		return zero
	}

	return (zero - 1) << (k.Bits() - 1)
}

// kindMax returns k's maximum expressed in the computation type C.
func kindMax[C checked.Integer](k Kind) C {
	var zero C
	if k.Signed() {
		return ^((zero - 1) << (k.Bits() - 1))
	}

	if k.Bits() == checked.BitSize[C]() {
		return ^zero
	}

	return ((zero + 1) << k.Bits()) - 1
}
