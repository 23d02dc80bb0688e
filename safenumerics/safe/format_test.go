//go:build unit

package safe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LerianStudio/lib-safenumerics/safenumerics/checked"
)

func TestInt_String(t *testing.T) {
	t.Parallel()

	// byte-sized storages render numerically, never as characters
	assert.Equal(t, "65", TypeOf[uint8]().MustNew(65).String())
	assert.Equal(t, "-128", TypeOf[int8]().MustNew(-128).String())
	assert.Equal(t, "18446744073709551615", TypeOf[uint64]().MustNew(^uint64(0)).String())
}

func TestParse(t *testing.T) {
	t.Parallel()

	percent := MustType[int8](0, 100)

	tests := []struct {
		name    string
		input   string
		want    int8
		wantErr error
	}{
		{name: "plain", input: "42", want: 42},
		{name: "surrounding space", input: "  7 ", want: 7},
		{name: "boundary", input: "100", want: 100},
		{name: "above range", input: "101", wantErr: checked.NewError(checked.RangeError, "")},
		{name: "above storage", input: "300", wantErr: checked.NewError(checked.RangeError, "")},
		{name: "beyond 64 bits", input: "99999999999999999999", wantErr: checked.NewError(checked.RangeError, "")},
		{name: "malformed", input: "4x2", wantErr: checked.NewError(checked.DomainError, "")},
		{name: "empty", input: "", wantErr: checked.NewError(checked.DomainError, "")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v, err := percent.Parse(tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, v.Value())
		})
	}
}

func TestParse_RejectsNegativeForUnsigned(t *testing.T) {
	t.Parallel()

	// a negative numeral must not wrap into a large unsigned value
	_, err := TypeOf[uint16]().Parse("-1")
	assert.ErrorIs(t, err, checked.NewError(checked.DomainError, ""))

	v, err := TypeOf[uint16]().Parse("65535")
	require.NoError(t, err)
	assert.Equal(t, uint16(65535), v.Value())
}

func TestParse_SignedNegative(t *testing.T) {
	t.Parallel()

	v, err := TypeOf[int8]().Parse("-128")
	require.NoError(t, err)
	assert.Equal(t, int8(-128), v.Value())
}

func TestParse_TrapRejectsUnprovableInput(t *testing.T) {
	t.Parallel()

	_, err := TypeOf[int8](WithPolicy(StrictTrap)).Parse("1")
	assert.ErrorIs(t, err, ErrTrap)
}

func TestParse_StringRoundTrip(t *testing.T) {
	t.Parallel()

	ty := TypeOf[int16]()

	for _, want := range []int16{-32768, -1, 0, 1, 32767} {
		v := ty.MustNew(want)

		back, err := ty.Parse(v.String())
		require.NoError(t, err)
		assert.Equal(t, want, back.Value())
	}
}
