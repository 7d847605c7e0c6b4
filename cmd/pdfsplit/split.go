package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/racoci/pdf-splitter/internal/index"
	"github.com/racoci/pdf-splitter/internal/pdfdoc"
	"github.com/racoci/pdf-splitter/internal/split"
)

type runResult struct {
	Ranges []split.Range `json:"ranges"`
	Files  []string      `json:"files"`
	OutDir string        `json:"out_dir"`
}

func splitCmd() *cobra.Command {
	var out string
	var indexFile string
	var anchorPage int
	var dryRun bool
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "split <pdf>",
		Short: "Split a PDF into one file per index entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pdfPath := args[0]
			stdout := cmd.OutOrStdout()
			stderr := cmd.ErrOrStderr()

			raw, err := readIndexText(cmd, indexFile)
			if err != nil {
				return err
			}
			entries, skips, err := index.Load(raw)
			for _, s := range skips {
				printSkip(stderr, s)
			}
			if err != nil {
				return err
			}

			anchor, err := split.Anchor(entries)
			if err != nil {
				return err
			}
			if anchorPage <= 0 {
				anchorPage, err = promptAnchorPage(cmd, anchor)
				if err != nil {
					return err
				}
			}

			pageCount, err := pdfdoc.PageCount(pdfPath)
			if err != nil {
				return err
			}

			ranges, dropped, err := split.Resolve(entries, anchorPage, pageCount)
			if err != nil {
				return err
			}
			for _, d := range dropped {
				printDropped(stderr, d)
			}

			if out == "" {
				stem := strings.TrimSuffix(filepath.Base(pdfPath), filepath.Ext(pdfPath))
				out = filepath.Join(filepath.Dir(pdfPath), stem+"_split")
			}

			res := runResult{Ranges: ranges, OutDir: out}
			if dryRun {
				for i, r := range ranges {
					name := split.Filename(i+1, r.Title)
					fmt.Fprintf(stdout, "%s  %s\n", name, dimStyle.Render(fmt.Sprintf("pages %d-%d", r.Start, r.End)))
					res.Files = append(res.Files, name)
				}
				if jsonOut {
					return printJSON(stdout, res)
				}
				return nil
			}

			if err := os.MkdirAll(out, 0o755); err != nil {
				return err
			}

			var failed int
			for i, r := range ranges {
				name := split.Filename(i+1, r.Title)
				path := filepath.Join(out, name)
				if err := pdfdoc.ExtractRange(pdfPath, path, r.Start, r.End); err != nil {
					fmt.Fprintln(stderr, warnStyle.Render(fmt.Sprintf("Warning: %s: %v", name, err)))
					failed++
					continue
				}
				printCreated(stdout, name, r)
				res.Files = append(res.Files, name)
			}

			if jsonOut {
				if err := printJSON(stdout, res); err != nil {
					return err
				}
			} else {
				printSummary(stdout, res.Files)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d ranges failed to extract", failed, len(ranges))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output directory (default: <pdf>_split next to the source)")
	cmd.Flags().StringVar(&indexFile, "index-file", "", "read the tab-separated index from a file instead of stdin")
	cmd.Flags().IntVar(&anchorPage, "anchor", 0, "physical page of the first numbered index entry (0 = ask)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the resolved ranges without writing any files")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the run result as JSON")
	return cmd
}

func readIndexText(cmd *cobra.Command, indexFile string) (string, error) {
	if indexFile != "" {
		b, err := os.ReadFile(indexFile)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Paste your tab-separated index below, then press Ctrl+D (Ctrl+Z on Windows) to finish.")
	fmt.Fprintln(cmd.OutOrStdout())
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func promptAnchorPage(cmd *cobra.Command, anchor index.Entry) (int, error) {
	fmt.Fprintf(cmd.OutOrStdout(), "The first numbered chapter in your index appears to be %q (index page %d).\n", anchor.Title, anchor.Ordinal)
	fmt.Fprint(cmd.OutOrStdout(), "Please type the actual PDF page number where this chapter starts: ")
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return 0, fmt.Errorf("failed to read anchor page: %w", err)
	}
	return parseAnchorPage(line)
}

func parseAnchorPage(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid page number %q", strings.TrimSpace(s))
	}
	return n, nil
}

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(b))
	return nil
}
