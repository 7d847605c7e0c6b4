package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLabel_Decimal(t *testing.T) {
	testCases := []struct {
		token string
		want  int
	}{
		{"1", 1},
		{"19", 19},
		{"035", 35},
		{" 42 ", 42},
	}
	for _, tc := range testCases {
		t.Run(tc.token, func(t *testing.T) {
			got, err := ParseLabel(tc.token)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseLabel_Roman(t *testing.T) {
	testCases := []struct {
		token string
		want  int
	}{
		{"iv", 4},
		{"ix", 9},
		{"xiii", 13},
		{"xl", 40},
		{"mcmxcix", 1999},
		{"XIII", 13},
		{"MCMXCIX", 1999},
	}
	for _, tc := range testCases {
		t.Run(tc.token, func(t *testing.T) {
			got, err := ParseLabel(tc.token)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// Malformed numerals decode without error; the parser reproduces the loose
// arithmetic of the source index rather than validating well-formedness.
func TestParseLabel_LooseRoman(t *testing.T) {
	got, err := ParseLabel("IIII")
	require.NoError(t, err)
	assert.Equal(t, 4, got)

	got, err = ParseLabel("VX")
	require.NoError(t, err)
	assert.Equal(t, 5, got)
}

func TestParseLabel_Unrecognized(t *testing.T) {
	for _, token := range []string{"2a", "", "1 2", "page 3", "-5", "IV.", "x/v"} {
		t.Run(token, func(t *testing.T) {
			_, err := ParseLabel(token)
			require.Error(t, err)
			var labelErr *UnrecognizedLabelError
			require.ErrorAs(t, err, &labelErr)
		})
	}
}
