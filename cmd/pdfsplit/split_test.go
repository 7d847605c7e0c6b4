package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAnchorPage(t *testing.T) {
	n, err := parseAnchorPage("12\n")
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	n, err = parseAnchorPage("  7  ")
	require.NoError(t, err)
	assert.Equal(t, 7, n)
}

func TestParseAnchorPage_Invalid(t *testing.T) {
	for _, in := range []string{"", "abc", "1.5", "ten"} {
		_, err := parseAnchorPage(in)
		assert.Error(t, err)
	}
}
