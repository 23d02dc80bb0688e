//go:build unit

package checked

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKind_Action(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind ErrorKind
		want Action
	}{
		{kind: Success, want: NoAction},
		{kind: PositiveOverflow, want: ArithmeticError},
		{kind: NegativeOverflow, want: ArithmeticError},
		{kind: Underflow, want: ArithmeticError},
		{kind: RangeError, want: ArithmeticError},
		{kind: DomainError, want: ArithmeticError},
		{kind: PrecisionOverflow, want: ArithmeticError},
		{kind: NegativeShift, want: ImplementationDefined},
		{kind: NegativeValueShift, want: ImplementationDefined},
		{kind: ShiftTooLarge, want: ImplementationDefined},
		{kind: UninitializedValue, want: Uninitialized},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.kind.Action())
		})
	}
}

func TestErrorKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "positive_overflow", PositiveOverflow.String())
	assert.Equal(t, "uninitialized_value", UninitializedValue.String())
	assert.Equal(t, "unknown", ErrorKind(200).String())

	assert.Equal(t, "arithmetic_error", ArithmeticError.String())
	assert.Equal(t, "implementation_defined_behavior", ImplementationDefined.String())
}
