// Package split turns parsed index entries into physical page ranges over a
// document, given one anchor correspondence between index numbering and
// physical numbering.
package split

import (
	"errors"
	"sort"

	"github.com/racoci/pdf-splitter/internal/index"
)

// ErrNoNumericEntries means no entry has a positive ordinal, so no anchor can
// be chosen and no offset computed.
var ErrNoNumericEntries = errors.New("no numeric entries in index")

// Range is a 1-based inclusive physical page span for one index entry.
type Range struct {
	Title string `json:"title"`
	Start int    `json:"start_page"`
	End   int    `json:"end_page"`
}

// Dropped records a range discarded because it collapsed to nothing after
// clipping (end < start). Usually a sign the index numbering ran past the
// document, or two entries share a page.
type Dropped struct {
	Title string `json:"title"`
	Start int    `json:"start_page"`
	End   int    `json:"end_page"`
}

// Anchor picks the entry the offset is computed against: the one with the
// smallest positive ordinal, first occurrence winning ties. The caller
// reports this entry to the operator and asks for its physical page.
func Anchor(entries []index.Entry) (index.Entry, error) {
	var anchor index.Entry
	found := false
	for _, e := range entries {
		if e.Ordinal <= 0 {
			continue
		}
		if !found || e.Ordinal < anchor.Ordinal {
			anchor = e
			found = true
		}
	}
	if !found {
		return index.Entry{}, ErrNoNumericEntries
	}
	return anchor, nil
}

// Resolve aligns every entry with the document via the anchor's physical page
// and derives one contiguous range per entry: each entry runs up to the page
// before the next entry's start, the last to the end of the document. Ranges
// are clipped to [1, pageCount]; ranges that collapse after clipping are
// returned as Dropped rather than failing the run.
//
// Resolve is pure: the same entries, anchor page and page count always
// produce the same ranges.
func Resolve(entries []index.Entry, anchorPage, pageCount int) ([]Range, []Dropped, error) {
	anchor, err := Anchor(entries)
	if err != nil {
		return nil, nil, err
	}
	// Offset may be negative, e.g. when the index restarts numbering after
	// unnumbered front matter.
	offset := anchorPage - anchor.Ordinal

	adjusted := make([]index.Entry, len(entries))
	for i, e := range entries {
		adjusted[i] = index.Entry{Title: e.Title, Ordinal: e.Ordinal + offset}
	}
	sort.SliceStable(adjusted, func(i, j int) bool {
		return adjusted[i].Ordinal < adjusted[j].Ordinal
	})

	var ranges []Range
	var dropped []Dropped
	for i, e := range adjusted {
		start := e.Ordinal
		end := pageCount
		if i < len(adjusted)-1 {
			end = adjusted[i+1].Ordinal - 1
		}
		if start < 1 {
			start = 1
		}
		if end > pageCount {
			end = pageCount
		}
		if end < start {
			dropped = append(dropped, Dropped{Title: e.Title, Start: start, End: end})
			continue
		}
		ranges = append(ranges, Range{Title: e.Title, Start: start, End: end})
	}
	return ranges, dropped, nil
}
