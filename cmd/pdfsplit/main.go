package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/racoci/pdf-splitter/internal/version"
)

func main() {
	root := &cobra.Command{
		Use:   "pdfsplit",
		Short: "Split a PDF into per-chapter files using a pasted index",
	}
	root.Version = version.Version
	root.SetVersionTemplate(fmt.Sprintf("pdfsplit %s\n", version.String()))

	root.AddCommand(splitCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
