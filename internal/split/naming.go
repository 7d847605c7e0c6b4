package split

import (
	"fmt"
	"regexp"
)

var unsafeFilenameChars = regexp.MustCompile(`[\\/:*?"<>|]`)

// SanitizeTitle replaces characters that are unsafe in file names with "_".
func SanitizeTitle(title string) string {
	return unsafeFilenameChars.ReplaceAllString(title, "_")
}

// Filename builds the output file name for the seq-th emitted range
// (1-based): "01 Introduction.pdf". The sequence number keeps duplicate
// titles apart.
func Filename(seq int, title string) string {
	return fmt.Sprintf("%02d %s.pdf", seq, SanitizeTitle(title))
}
