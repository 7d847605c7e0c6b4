package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_BasicIndex(t *testing.T) {
	raw := "Preface\txiii\nIntroduction\t1\nChapter One\t19\n"

	entries, skips, err := Load(raw)
	require.NoError(t, err)
	assert.Empty(t, skips)
	assert.Equal(t, []Entry{
		{Title: "Preface", Ordinal: 13},
		{Title: "Introduction", Ordinal: 1},
		{Title: "Chapter One", Ordinal: 19},
	}, entries)
}

func TestLoad_HeaderRowDropped(t *testing.T) {
	raw := "PDF File Name\tPDF Page\nIntroduction\t1\n"

	entries, _, err := Load(raw)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, Entry{Title: "Introduction", Ordinal: 1}, entries[0])
}

func TestLoad_HeaderLikeRowIsData(t *testing.T) {
	// Only an exact match on both column names counts as a header.
	raw := "PDF File Name\t7\nIntroduction\t1\n"

	entries, _, err := Load(raw)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, Entry{Title: "PDF File Name", Ordinal: 7}, entries[0])
}

func TestLoad_MalformedRowSkipped(t *testing.T) {
	raw := "Introduction\t1\nJustATitleNoTab\nChapter One\t19\n"

	entries, skips, err := Load(raw)
	require.NoError(t, err)
	require.Len(t, skips, 1)
	assert.Equal(t, SkipMalformedRow, skips[0].Reason)
	assert.Equal(t, 2, skips[0].Line)
	assert.Len(t, entries, 2)
}

func TestLoad_UnrecognizedLabelSkipped(t *testing.T) {
	raw := "Introduction\t1\nAppendix\t2a\nChapter One\t19\n"

	entries, skips, err := Load(raw)
	require.NoError(t, err)
	require.Len(t, skips, 1)
	assert.Equal(t, SkipUnrecognizedLabel, skips[0].Reason)
	assert.Equal(t, "2a", skips[0].Label)
	assert.Len(t, entries, 2)
}

func TestLoad_TitlesAndLabelsTrimmed(t *testing.T) {
	raw := "  Introduction  \t 1 \n"

	entries, _, err := Load(raw)
	require.NoError(t, err)
	assert.Equal(t, Entry{Title: "Introduction", Ordinal: 1}, entries[0])
}

func TestLoad_PreservesInputOrder(t *testing.T) {
	// Ordinals out of order stay out of order; sorting is the resolver's job.
	raw := "C\t35\nA\t1\nB\t19\n"

	entries, _, err := Load(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "A", "B"}, []string{entries[0].Title, entries[1].Title, entries[2].Title})
}

func TestLoad_EmptyInput(t *testing.T) {
	for _, raw := range []string{"", "   \n\t\n"} {
		_, _, err := Load(raw)
		assert.ErrorIs(t, err, ErrEmptyIndex)
	}
}

func TestLoad_AllRowsSkipped(t *testing.T) {
	raw := "NoTabHere\nBad\t??\n"

	entries, skips, err := Load(raw)
	assert.ErrorIs(t, err, ErrEmptyIndex)
	assert.Empty(t, entries)
	assert.Len(t, skips, 2)
}
