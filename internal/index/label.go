package index

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Page labels come in two forms: plain decimal ("19") for the numbered body
// of the book, and roman numerals ("xiii") for front matter.
var (
	decimalRe = regexp.MustCompile(`^[0-9]+$`)
	romanRe   = regexp.MustCompile(`^[IVXLCDMivxlcdm]+$`)
)

var romanValues = map[byte]int{
	'm': 1000, 'd': 500, 'c': 100, 'l': 50,
	'x': 10, 'v': 5, 'i': 1,
}

// UnrecognizedLabelError reports a page label that is neither decimal nor a
// roman numeral.
type UnrecognizedLabelError struct {
	Label string
}

func (e *UnrecognizedLabelError) Error() string {
	return fmt.Sprintf("page label %q not recognized as numeric or roman", e.Label)
}

// ParseLabel converts a raw page label into its integer ordinal.
// Decimal labels parse as-is; roman labels decode right-to-left, adding a
// symbol when it is at least the value to its right and subtracting
// otherwise. Well-formedness is deliberately not checked: "IIII" and "VX"
// decode without error, matching how loose real-world indexes are.
func ParseLabel(token string) (int, error) {
	token = strings.TrimSpace(token)
	if decimalRe.MatchString(token) {
		return strconv.Atoi(token)
	}
	if romanRe.MatchString(token) {
		return romanToInt(token), nil
	}
	return 0, &UnrecognizedLabelError{Label: token}
}

func romanToInt(roman string) int {
	roman = strings.ToLower(roman)
	result := 0
	prev := 0
	for i := len(roman) - 1; i >= 0; i-- {
		v := romanValues[roman[i]]
		if v >= prev {
			result += v
		} else {
			result -= v
		}
		prev = v
	}
	return result
}
