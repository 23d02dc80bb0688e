//go:build unit

package interval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTribool_Predicates(t *testing.T) {
	t.Parallel()

	assert.True(t, True.IsTrue())
	assert.False(t, True.IsFalse())
	assert.True(t, False.IsFalse())
	assert.True(t, Indeterminate.IsIndeterminate())

	// the zero value is undecided, not false
	var zero Tribool
	assert.True(t, zero.IsIndeterminate())

	assert.Equal(t, True, FromBool(true))
	assert.Equal(t, False, FromBool(false))
}

func TestTribool_Not(t *testing.T) {
	t.Parallel()

	assert.Equal(t, False, True.Not())
	assert.Equal(t, True, False.Not())
	assert.Equal(t, Indeterminate, Indeterminate.Not())
}

func TestTribool_AndOr(t *testing.T) {
	t.Parallel()

	all := []Tribool{True, False, Indeterminate}

	for _, a := range all {
		for _, b := range all {
			and := a.And(b)
			or := a.Or(b)

			switch {
			case a == False || b == False:
				assert.Equal(t, False, and, "%v and %v", a, b)
			case a == True && b == True:
				assert.Equal(t, True, and, "%v and %v", a, b)
			default:
				assert.Equal(t, Indeterminate, and, "%v and %v", a, b)
			}

			switch {
			case a == True || b == True:
				assert.Equal(t, True, or, "%v or %v", a, b)
			case a == False && b == False:
				assert.Equal(t, False, or, "%v or %v", a, b)
			default:
				assert.Equal(t, Indeterminate, or, "%v or %v", a, b)
			}
		}
	}
}

func TestTribool_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "true", True.String())
	assert.Equal(t, "false", False.String())
	assert.Equal(t, "indeterminate", Indeterminate.String())
}
