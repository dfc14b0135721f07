package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	nodeLine   int
	nodeColumn int
)

type nodeReport struct {
	File    string   `yaml:"file"`
	Line    int      `yaml:"line"`
	Depth   int      `yaml:"depth"`
	Kind    string   `yaml:"kind"`
	Key     string   `yaml:"key,omitempty"`
	Value   string   `yaml:"value,omitempty"`
	InArray bool     `yaml:"inArray"`
	Parent  *nodeRef `yaml:"parent,omitempty"`
}

var nodeCmd = &cobra.Command{
	Use:   "node FILE",
	Short: "Describe the structural node at a line",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := openDocument(args[0])
		if err != nil {
			return err
		}
		doc.SetCursor(nodeLine, nodeColumn)

		nv := newNavigator(doc)
		n, ok := nv.Resolve(nodeLine)
		if !ok {
			return fmt.Errorf("%s has no line %d", args[0], nodeLine)
		}

		rep := nodeReport{
			File:    args[0],
			Line:    n.Line,
			Depth:   n.Depth,
			Kind:    kindOf(n),
			InArray: nv.InArray(n),
		}
		rep.Key, _ = n.Key()
		rep.Value, _ = n.Value()
		if p, ok := nv.Parent(n); ok {
			ref := refOf(p)
			rep.Parent = &ref
		}

		return writeYAML(cmd.OutOrStdout(), rep)
	},
}

func init() {
	nodeCmd.Flags().IntVar(&nodeLine, "line", 0, "0-indexed line to resolve")
	nodeCmd.Flags().IntVar(&nodeColumn, "column", 0, "cursor column, used for blank-line depth")
	rootCmd.AddCommand(nodeCmd)
}
