//go:build unit

package checked

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd_Int8(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a, b     int8
		want     int8
		wantKind ErrorKind
	}{
		{name: "success", a: 100, b: 27, want: 127, wantKind: Success},
		{name: "positive overflow", a: 127, b: 2, wantKind: PositiveOverflow},
		{name: "negative overflow", a: -128, b: -1, wantKind: NegativeOverflow},
		{name: "negative operands", a: -100, b: -28, want: -128, wantKind: Success},
		{name: "cancellation", a: 127, b: -127, want: 0, wantKind: Success},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := Add(tt.a, tt.b)

			assert.Equal(t, tt.wantKind, r.Kind())

			if tt.wantKind == Success {
				assert.Equal(t, tt.want, r.Value())
			}
		})
	}
}

func TestAdd_Uint8(t *testing.T) {
	t.Parallel()

	r := Add[uint8](200, 100)
	assert.Equal(t, PositiveOverflow, r.Kind())

	r = Add[uint8](200, 55)
	require.False(t, r.Failed())
	assert.Equal(t, uint8(255), r.Value())
}

func TestSub(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		run      func() ErrorKind
		wantKind ErrorKind
	}{
		{
			name:     "unsigned below zero",
			run:      func() ErrorKind { return Sub[uint16](3, 4).Kind() },
			wantKind: NegativeOverflow,
		},
		{
			name:     "signed negative overflow",
			run:      func() ErrorKind { return Sub[int8](-128, 1).Kind() },
			wantKind: NegativeOverflow,
		},
		{
			name:     "signed positive overflow",
			run:      func() ErrorKind { return Sub[int8](127, -1).Kind() },
			wantKind: PositiveOverflow,
		},
		{
			name:     "success",
			run:      func() ErrorKind { return Sub[int8](-128, -128).Kind() },
			wantKind: Success,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.wantKind, tt.run())
		})
	}
}

func TestMul(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		run      func() ErrorKind
		wantKind ErrorKind
	}{
		{name: "both positive overflow", run: func() ErrorKind { return Mul[int8](16, 8).Kind() }, wantKind: PositiveOverflow},
		{name: "mixed sign overflow", run: func() ErrorKind { return Mul[int8](16, -9).Kind() }, wantKind: NegativeOverflow},
		{name: "both negative overflow", run: func() ErrorKind { return Mul[int8](-16, -8).Kind() }, wantKind: PositiveOverflow},
		{name: "zero operand", run: func() ErrorKind { return Mul[int8](0, -128).Kind() }, wantKind: Success},
		{name: "unsigned overflow", run: func() ErrorKind { return Mul[uint8](16, 16).Kind() }, wantKind: PositiveOverflow},
		{name: "boundary fit", run: func() ErrorKind { return Mul[int8](-64, 2).Kind() }, wantKind: Success},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.wantKind, tt.run())
		})
	}

	r := Mul[int64](math.MaxInt64, -1)
	require.False(t, r.Failed())
	assert.Equal(t, int64(math.MinInt64+1), r.Value())
}

func TestDiv(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DomainError, Div[int32](10, 0).Kind())
	assert.Equal(t, PositiveOverflow, Div[int8](-128, -1).Kind())

	r := Div[int8](-128, -2)
	require.False(t, r.Failed())
	assert.Equal(t, int8(64), r.Value())

	u := Div[uint8](255, 5)
	require.False(t, u.Failed())
	assert.Equal(t, uint8(51), u.Value())
}

func TestMod(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DomainError, Mod[int32](10, 0).Kind())

	r := Mod[int8](-128, -1)
	require.False(t, r.Failed())
	assert.Equal(t, int8(0), r.Value())

	r = Mod[int8](-7, 3)
	require.False(t, r.Failed())
	assert.Equal(t, int8(-1), r.Value())
}

func TestNeg(t *testing.T) {
	t.Parallel()

	assert.Equal(t, NegativeOverflow, Neg[uint8](1).Kind())
	assert.Equal(t, PositiveOverflow, Neg[int8](-128).Kind())

	r := Neg[int8](127)
	require.False(t, r.Failed())
	assert.Equal(t, int8(-127), r.Value())

	u := Neg[uint32](0)
	require.False(t, u.Failed())
	assert.Equal(t, uint32(0), u.Value())
}

func TestShiftLeft(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		run      func() ErrorKind
		wantKind ErrorKind
	}{
		{name: "negative amount", run: func() ErrorKind { return ShiftLeft[int8](1, -1).Kind() }, wantKind: NegativeShift},
		{name: "amount at width", run: func() ErrorKind { return ShiftLeft[int8](1, 8).Kind() }, wantKind: ShiftTooLarge},
		{name: "negative value", run: func() ErrorKind { return ShiftLeft[int8](-1, 1).Kind() }, wantKind: NegativeValueShift},
		{name: "overflow", run: func() ErrorKind { return ShiftLeft[int8](64, 1).Kind() }, wantKind: PositiveOverflow},
		{name: "success", run: func() ErrorKind { return ShiftLeft[int8](1, 6).Kind() }, wantKind: Success},
		{name: "unsigned width", run: func() ErrorKind { return ShiftLeft[uint16](1, 15).Kind() }, wantKind: Success},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.wantKind, tt.run())
		})
	}
}

func TestShiftRight(t *testing.T) {
	t.Parallel()

	assert.Equal(t, NegativeShift, ShiftRight[int8](1, -1).Kind())
	assert.Equal(t, ShiftTooLarge, ShiftRight[uint8](1, 8).Kind())
	assert.Equal(t, NegativeValueShift, ShiftRight[int8](-4, 1).Kind())

	r := ShiftRight[uint8](128, 3)
	require.False(t, r.Failed())
	assert.Equal(t, uint8(16), r.Value())
}

func TestCast(t *testing.T) {
	t.Parallel()

	assert.Equal(t, RangeError, Cast[int8](int16(300)).Kind())
	assert.Equal(t, RangeError, Cast[uint8](int16(-1)).Kind())
	assert.Equal(t, RangeError, Cast[int64](uint64(math.MaxUint64)).Kind())

	r := Cast[int8](int64(-128))
	require.False(t, r.Failed())
	assert.Equal(t, int8(-128), r.Value())

	u := Cast[uint64](int8(127))
	require.False(t, u.Failed())
	assert.Equal(t, uint64(127), u.Value())
}

func TestLimits(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int8(-128), MinOf[int8]())
	assert.Equal(t, int8(127), MaxOf[int8]())
	assert.Equal(t, uint8(0), MinOf[uint8]())
	assert.Equal(t, uint8(255), MaxOf[uint8]())
	assert.Equal(t, int64(math.MinInt64), MinOf[int64]())
	assert.Equal(t, uint64(math.MaxUint64), MaxOf[uint64]())

	assert.True(t, IsSigned[int16]())
	assert.False(t, IsSigned[uint32]())
	assert.Equal(t, 16, BitSize[int16]())
	assert.Equal(t, 64, BitSize[uint64]())
}
