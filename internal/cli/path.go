package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pathLine int

type pathReport struct {
	File string    `yaml:"file"`
	Line int       `yaml:"line"`
	Path []nodeRef `yaml:"path"`
}

var pathCmd = &cobra.Command{
	Use:   "path FILE",
	Short: "Print a node's ancestor path, root first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := openDocument(args[0])
		if err != nil {
			return err
		}

		nv := newNavigator(doc)
		n, ok := nv.Resolve(pathLine)
		if !ok {
			return fmt.Errorf("%s has no line %d", args[0], pathLine)
		}

		rep := pathReport{File: args[0], Line: n.Line}
		for _, a := range nv.Path(n) {
			rep.Path = append(rep.Path, refOf(a))
		}

		return writeYAML(cmd.OutOrStdout(), rep)
	},
}

func init() {
	pathCmd.Flags().IntVar(&pathLine, "line", 0, "0-indexed line to resolve")
	rootCmd.AddCommand(pathCmd)
}
