package nav

import "fmt"

// Node is the structural identity of one document line: its index, its
// indentation depth, and the classifier facts needed to relate it to other
// lines. Nodes are plain values built fresh for each query and hold no
// references to other Nodes or to the document; all relations are computed
// by the Navigator.
type Node struct {
	// Line is the 0-indexed source line this node represents.
	Line int

	// Depth is the indentation level reported by the classifier, or derived
	// from the cursor column when the cursor rests on this line and the line
	// is blank.
	Depth int

	comment  bool
	empty    bool
	listItem bool
	key      string
	hasKey   bool
	value    string
	hasValue bool
}

// IsComment returns true if the line is a comment. Comment nodes carry a
// depth but no list-marker, key, or value state.
func (n Node) IsComment() bool {
	return n.comment
}

// IsEmpty returns true if the line is empty or whitespace-only.
func (n Node) IsEmpty() bool {
	return n.empty
}

// IsStructural returns true if the line participates in parent/child/sibling
// relations: it is neither a comment nor empty.
func (n Node) IsStructural() bool {
	return !n.comment && !n.empty
}

// IsListItemStart returns true if the line begins a list element. Always
// false for comments.
func (n Node) IsListItemStart() bool {
	return !n.comment && n.listItem
}

// Key returns the line's key text. The second result is false on comments
// and on lines with no key.
func (n Node) Key() (string, bool) {
	return n.key, n.hasKey
}

// Value returns the line's value text. The second result is false on
// comments and on lines with no value.
func (n Node) Value() (string, bool) {
	return n.value, n.hasValue
}

// String returns a compact human-readable representation, useful in tests
// and debug output.
func (n Node) String() string {
	switch {
	case n.comment:
		return fmt.Sprintf("comment(line=%d depth=%d)", n.Line, n.Depth)
	case n.empty:
		return fmt.Sprintf("empty(line=%d depth=%d)", n.Line, n.Depth)
	case n.listItem:
		return fmt.Sprintf("item(line=%d depth=%d key=%q)", n.Line, n.Depth, n.key)
	default:
		return fmt.Sprintf("node(line=%d depth=%d key=%q)", n.Line, n.Depth, n.key)
	}
}
