// Package pdfdoc wraps the PDF operations the splitter needs: counting pages
// and materializing a page range as a standalone file.
package pdfdoc

import (
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	rpdf "rsc.io/pdf"
)

// PageCount returns the number of pages in the document at path. pdfcpu is
// tried first; rsc.io/pdf serves as a fallback reader since each tolerates
// PDFs the other rejects.
func PageCount(path string) (int, error) {
	ctx, err := api.ReadContextFile(path)
	if err == nil {
		return ctx.PageCount, nil
	}
	if n := fallbackPageCount(path); n > 0 {
		return n, nil
	}
	return 0, fmt.Errorf("failed to read PDF %s: %w", path, err)
}

func fallbackPageCount(path string) int {
	f, err := os.Open(path)
	if err != nil {
		return 0
	}
	defer f.Close()
	fi, err := f.Stat()
	if err != nil {
		return 0
	}
	doc, err := rpdf.NewReader(f, fi.Size())
	if err != nil {
		return 0
	}
	return doc.NumPage()
}

// ExtractRange writes pages [start, end] (1-based inclusive) of the source
// document to outPath as an independent PDF.
func ExtractRange(srcPath, outPath string, start, end int) error {
	selection := []string{fmt.Sprintf("%d-%d", start, end)}
	if err := api.TrimFile(srcPath, outPath, selection, nil); err != nil {
		return fmt.Errorf("failed to extract pages %d-%d: %w", start, end, err)
	}
	return nil
}
