package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/racoci/pdf-splitter/internal/index"
	"github.com/racoci/pdf-splitter/internal/split"
)

var (
	// warnStyle for skipped rows and dropped ranges
	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	// successStyle for created files
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// dimStyle for muted metadata text
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

func printSkip(w io.Writer, s index.Skip) {
	switch s.Reason {
	case index.SkipUnrecognizedLabel:
		fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("Warning: page %q not recognized as numeric or roman. Skipping.", s.Label)))
	default:
		fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("Warning: line %d has fewer than 2 columns. Skipping.", s.Line)))
	}
}

func printDropped(w io.Writer, d split.Dropped) {
	fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("Warning: invalid range for %q. Skipping.", d.Title)))
}

func printCreated(w io.Writer, name string, r split.Range) {
	fmt.Fprintf(w, "%s %s\n",
		successStyle.Render("Created: "+name),
		dimStyle.Render(fmt.Sprintf("(pages %d-%d)", r.Start, r.End)))
}

func printSummary(w io.Writer, files []string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, successStyle.Render("Splitting complete!"))
	fmt.Fprintln(w, "Generated files:")
	for _, f := range files {
		fmt.Fprintln(w, "  -", f)
	}
}
