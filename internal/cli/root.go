// Package cli implements the ramlnav command line interface.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/ramlnav/raml"
)

var indentWidth int

var rootCmd = &cobra.Command{
	Use:   "ramlnav",
	Short: "Inspect the structure of RAML documents by indentation",
	Long: `ramlnav answers structural questions about RAML and similar
indentation-based documents without parsing them into a tree: every query
re-derives its answer from the lines around it, so it stays useful on
malformed or in-progress files.

Example usage:
  ramlnav node api.raml --line 12        # describe the node at a line
  ramlnav path api.raml --line 12        # ancestor keys, root first
  ramlnav neighbors api.raml --line 12   # the node's sibling run
  ramlnav outline 'api/**/*.raml'        # indented outline per file`,
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVar(&indentWidth, "indent-width", raml.DefaultIndentWidth, "columns per indentation level")
}
