package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var neighborsLine int

type neighborReport struct {
	Line  int    `yaml:"line"`
	Depth int    `yaml:"depth"`
	Key   string `yaml:"key,omitempty"`
	Value string `yaml:"value,omitempty"`
	Item  bool   `yaml:"item,omitempty"`
}

type neighborsReport struct {
	File      string           `yaml:"file"`
	Line      int              `yaml:"line"`
	Neighbors []neighborReport `yaml:"neighbors"`
}

var neighborsCmd = &cobra.Command{
	Use:   "neighbors FILE",
	Short: "Print a node's sibling run: one list element's fields, or one level's siblings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := openDocument(args[0])
		if err != nil {
			return err
		}

		nv := newNavigator(doc)
		n, ok := nv.Resolve(neighborsLine)
		if !ok {
			return fmt.Errorf("%s has no line %d", args[0], neighborsLine)
		}

		rep := neighborsReport{File: args[0], Line: n.Line}
		for _, nb := range nv.Neighbors(n) {
			r := neighborReport{
				Line:  nb.Line,
				Depth: nb.Depth,
				Item:  nb.IsListItemStart(),
			}
			r.Key, _ = nb.Key()
			r.Value, _ = nb.Value()
			rep.Neighbors = append(rep.Neighbors, r)
		}

		return writeYAML(cmd.OutOrStdout(), rep)
	},
}

func init() {
	neighborsCmd.Flags().IntVar(&neighborsLine, "line", 0, "0-indexed line to resolve")
	rootCmd.AddCommand(neighborsCmd)
}
