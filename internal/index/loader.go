// Package index parses a pasted table-of-contents index into title/ordinal
// entries. The expected input is tab-separated rows of "title<TAB>page label",
// optionally preceded by a header row.
package index

import (
	"errors"
	"strings"
)

// Header column names recognized on the first row. The row is a header only
// when both markers appear as exact column values; a row merely resembling
// them is data.
const (
	headerTitleCol = "PDF File Name"
	headerPageCol  = "PDF Page"
)

// ErrEmptyIndex means no input text was supplied or no row survived parsing.
var ErrEmptyIndex = errors.New("no valid entries in index")

// Entry is one index row: a section title and the page ordinal as printed in
// the index (not yet aligned with the document's physical numbering).
type Entry struct {
	Title   string `json:"title"`
	Ordinal int    `json:"ordinal"`
}

// SkipReason tags why a row was discarded.
type SkipReason string

const (
	SkipMalformedRow      SkipReason = "malformed_row"
	SkipUnrecognizedLabel SkipReason = "unrecognized_label"
)

// Skip records a discarded row so the caller can report it. Skips are
// non-fatal; the run proceeds with the surviving entries.
type Skip struct {
	Line   int    // 1-based line number within the data rows
	Raw    string // the raw line as received
	Reason SkipReason
	Label  string // the offending page label, for SkipUnrecognizedLabel
}

// Load parses raw tab-separated index text into entries, in input order.
// Rows with fewer than two columns or unparseable page labels are skipped
// and returned in the skip list. Returns ErrEmptyIndex when the input is
// blank or every row was skipped.
func Load(raw string) ([]Entry, []Skip, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil, ErrEmptyIndex
	}
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}

	header := strings.Split(lines[0], "\t")
	if isHeader(header) {
		lines = lines[1:]
	}

	var entries []Entry
	var skips []Skip
	for i, line := range lines {
		cols := strings.Split(line, "\t")
		if len(cols) < 2 {
			skips = append(skips, Skip{Line: i + 1, Raw: line, Reason: SkipMalformedRow})
			continue
		}
		title := strings.TrimSpace(cols[0])
		label := strings.TrimSpace(cols[1])
		ordinal, err := ParseLabel(label)
		if err != nil {
			skips = append(skips, Skip{Line: i + 1, Raw: line, Reason: SkipUnrecognizedLabel, Label: label})
			continue
		}
		entries = append(entries, Entry{Title: title, Ordinal: ordinal})
	}

	if len(entries) == 0 {
		return nil, skips, ErrEmptyIndex
	}
	return entries, skips, nil
}

func isHeader(cols []string) bool {
	var hasTitle, hasPage bool
	for _, c := range cols {
		switch c {
		case headerTitleCol:
			hasTitle = true
		case headerPageCol:
			hasPage = true
		}
	}
	return hasTitle && hasPage
}
