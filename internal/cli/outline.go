package cli

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/dshills/ramlnav/document"
	"github.com/dshills/ramlnav/nav"
)

var outlineCmd = &cobra.Command{
	Use:   "outline PATTERN...",
	Short: "Print an indented outline of every matching file",
	Long: `Outline prints one line per structural node of each file matching
the glob patterns. ** matches across directory boundaries. Nodes are
indented by their ancestor count rather than their raw column, so
inconsistently indented documents still read as a tree.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var files []string
		for _, pattern := range args {
			matches, err := doublestar.FilepathGlob(pattern)
			if err != nil {
				return fmt.Errorf("bad pattern %q: %w", pattern, err)
			}
			files = append(files, matches...)
		}
		if len(files) == 0 {
			return errors.New("no files matched")
		}
		sort.Strings(files)

		out := cmd.OutOrStdout()
		for i, path := range files {
			doc, err := openDocument(path)
			if err != nil {
				return err
			}
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "%s:\n", path)
			writeOutline(out, newNavigator(doc), doc)
		}
		return nil
	},
}

// writeOutline prints one line per structural node, indented two columns per
// ancestor.
func writeOutline(w io.Writer, nv *nav.Navigator, doc *document.Lines) {
	for i := 0; i < doc.LineCount(); i++ {
		n, ok := nv.Resolve(i)
		if !ok || !n.IsStructural() {
			continue
		}
		level := len(nv.Path(n))
		fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", level), display(n))
	}
}

func init() {
	rootCmd.AddCommand(outlineCmd)
}
