package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dshills/ramlnav/document"
	"github.com/dshills/ramlnav/nav"
	"github.com/dshills/ramlnav/raml"
)

// openDocument loads a file into an in-memory document.
func openDocument(path string) (*document.Lines, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := document.FromReader(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return doc, nil
}

// newNavigator builds a navigator over doc using the configured indent width.
func newNavigator(doc *document.Lines) *nav.Navigator {
	return nav.New(doc, raml.NewClassifier(raml.WithIndentWidth(indentWidth)))
}

// writeYAML marshals v to w as YAML.
func writeYAML(w io.Writer, v any) error {
	out, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// nodeRef identifies a node in report output.
type nodeRef struct {
	Line int    `yaml:"line"`
	Key  string `yaml:"key,omitempty"`
}

func refOf(n nav.Node) nodeRef {
	ref := nodeRef{Line: n.Line}
	ref.Key, _ = n.Key()
	return ref
}

// kindOf names a node's case for report output.
func kindOf(n nav.Node) string {
	switch {
	case n.IsComment():
		return "comment"
	case n.IsEmpty():
		return "empty"
	case n.IsListItemStart():
		return "item"
	default:
		return "mapping"
	}
}

// display renders a node's content for outline output.
func display(n nav.Node) string {
	key, hasKey := n.Key()
	value, hasValue := n.Value()

	var s string
	switch {
	case hasKey && hasValue:
		s = key + ": " + value
	case hasKey:
		s = key + ":"
	case hasValue:
		s = value
	}

	if n.IsListItemStart() {
		return strings.TrimRight("- "+s, " ")
	}
	return s
}
