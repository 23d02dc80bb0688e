//go:build unit

package safe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LerianStudio/lib-safenumerics/safenumerics/checked"
)

func TestShiftLeft_ProvenPreconditions(t *testing.T) {
	t.Parallel()

	// value and amount ranges prove the preconditions, so even a
	// trap-everything policy accepts the shift
	val := MustType[uint8](1, 3, WithPolicy(StrictTrap))
	amt := MustType[uint8](1, 4, WithPolicy(StrictTrap))

	v := mustConvert(t, Const[uint8](3), val)
	s := mustConvert(t, Const[uint8](4), amt)

	r, err := ShiftLeft(v, s)
	require.NoError(t, err)
	assert.Equal(t, uint8(48), r.Value())
	assert.Equal(t, uint8(2), r.Type().Min())
	assert.Equal(t, uint8(48), r.Type().Max())
}

func TestShiftLeft_RuntimeFaults(t *testing.T) {
	t.Parallel()

	one := TypeOf[int8]().MustNew(1)

	tests := []struct {
		name   string
		amount int8
		want   checked.ErrorKind
	}{
		{name: "negative amount", amount: -2, want: checked.NegativeShift},
		{name: "amount at width", amount: 8, want: checked.ShiftTooLarge},
		{name: "amount beyond width", amount: 100, want: checked.ShiftTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ShiftLeft(one, TypeOf[int8]().MustNew(tt.amount))
			assert.ErrorIs(t, err, checked.NewError(tt.want, ""))
		})
	}
}

func TestShiftLeft_NegativeValue(t *testing.T) {
	t.Parallel()

	neg := TypeOf[int8]().MustNew(-4)

	_, err := ShiftLeft(neg, Const[int8](1))
	assert.ErrorIs(t, err, checked.NewError(checked.NegativeValueShift, ""))
}

func TestShiftLeft_Overflow(t *testing.T) {
	t.Parallel()

	_, err := ShiftLeft(TypeOf[int8]().MustNew(64), Const[int8](1))
	assert.ErrorIs(t, err, checked.NewError(checked.PositiveOverflow, ""))
}

func TestShiftRight(t *testing.T) {
	t.Parallel()

	r, err := ShiftRight(TypeOf[uint8]().MustNew(128), Const[uint8](3))
	require.NoError(t, err)
	assert.Equal(t, uint8(16), r.Value())

	_, err = ShiftRight(TypeOf[int8]().MustNew(-4), Const[int8](1))
	assert.ErrorIs(t, err, checked.NewError(checked.NegativeValueShift, ""))

	_, err = ShiftRight(TypeOf[uint8]().MustNew(1), TypeOf[uint8]().MustNew(8))
	assert.ErrorIs(t, err, checked.NewError(checked.ShiftTooLarge, ""))
}

func TestShift_UnprovenAmountTrapsAsImplementationDefined(t *testing.T) {
	t.Parallel()

	trapIDB := NewPolicy("trap-idb", Ignore, Trap, Ignore, Ignore)

	v := TypeOf[uint8](WithPolicy(trapIDB)).MustNew(1)
	s := TypeOf[uint8](WithPolicy(trapIDB)).MustNew(3)

	// the amount's static range spans the full storage, so the
	// precondition cannot be proven and the trap fires
	_, err := ShiftLeft(v, s)
	assert.ErrorIs(t, err, ErrTrap)
}
