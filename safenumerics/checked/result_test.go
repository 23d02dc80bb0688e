//go:build unit

package checked

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_ZeroValueIsUninitialized(t *testing.T) {
	t.Parallel()

	var r Result[int32]

	assert.True(t, r.Failed())
	assert.Equal(t, UninitializedValue, r.Kind())

	_, err := r.Get()
	assert.ErrorIs(t, err, NewError(UninitializedValue, ""))
}

func TestResult_Ok(t *testing.T) {
	t.Parallel()

	r := Ok[int16](-42)

	assert.False(t, r.Failed())
	assert.Equal(t, Success, r.Kind())
	assert.Equal(t, int16(-42), r.Value())
	assert.NoError(t, r.Err())
	assert.Equal(t, "-42", r.String())

	v, err := r.Get()
	require.NoError(t, err)
	assert.Equal(t, int16(-42), v)
}

func TestResult_Fail(t *testing.T) {
	t.Parallel()

	r := Fail[uint8](PositiveOverflow, "sum too large")

	assert.True(t, r.Failed())
	assert.Equal(t, PositiveOverflow, r.Kind())
	assert.Equal(t, "sum too large", r.Message())
	assert.ErrorIs(t, r.Err(), NewError(PositiveOverflow, ""))
	assert.Equal(t, "<positive_overflow: sum too large>", r.String())
}

func TestResult_FailRejectsSuccess(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { Fail[int8](Success, "") })
}

func TestResult_ValuePanicsOnFailure(t *testing.T) {
	t.Parallel()

	r := Fail[int8](DomainError, "division by zero")

	assert.Panics(t, func() { r.Value() })
}

func TestResultCast(t *testing.T) {
	t.Parallel()

	// failure propagates with its original kind
	f := ResultCast[int8](Fail[int64](DomainError, "division by zero"))
	assert.Equal(t, DomainError, f.Kind())
	assert.Equal(t, "division by zero", f.Message())

	// unrepresentable value becomes a range error
	r := ResultCast[int8](Ok[int64](300))
	assert.Equal(t, RangeError, r.Kind())

	// representable value converts exactly
	v := ResultCast[uint16](Ok[int64](300))
	require.False(t, v.Failed())
	assert.Equal(t, uint16(300), v.Value())
}

func TestError_Matching(t *testing.T) {
	t.Parallel()

	err := NewError(NegativeOverflow, "difference too small")

	assert.ErrorIs(t, err, NewError(NegativeOverflow, ""))
	assert.NotErrorIs(t, err, NewError(PositiveOverflow, ""))
	assert.Equal(t, "negative_overflow: difference too small", err.Error())

	var target *Error
	require.ErrorAs(t, error(err), &target)
	assert.Equal(t, NegativeOverflow, target.Kind)
}
