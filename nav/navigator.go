package nav

import "strings"

// Source is the text contract the navigator consumes: indexed line access,
// a line count, and the current caret position. document.Lines implements
// it; host editors supply their own.
type Source interface {
	// Line returns the text of line i without its line ending, or false if
	// i is outside [0, LineCount).
	Line(i int) (string, bool)

	// LineCount returns the number of lines in the document.
	LineCount() int

	// Cursor returns the current caret position.
	Cursor() (line, column int)
}

// Classifier is the per-line lexical contract: every method must be total
// and deterministic for any text, including whitespace-only text.
// raml.Classifier implements it.
type Classifier interface {
	// Depth returns the indentation level of the line.
	Depth(text string) int

	// IsComment returns true if the line is a comment.
	IsComment(text string) bool

	// IsListItemStart returns true if the line begins a list element.
	IsListItemStart(text string) bool

	// Key returns the line's key text, if any.
	Key(text string) (string, bool)

	// Value returns the line's value text, if any.
	Value(text string) (string, bool)
}

// Navigator resolves structural relations over a Source. It keeps no state
// beyond the two collaborators: every operation re-reads the source and
// rebuilds the nodes it inspects, so edits between calls need no
// invalidation.
type Navigator struct {
	src Source
	cls Classifier
}

// New creates a Navigator over the given source and classifier.
func New(src Source, cls Classifier) *Navigator {
	return &Navigator{src: src, cls: cls}
}

// Resolve returns the node at the given line, or false if the source has no
// such line.
func (nv *Navigator) Resolve(line int) (Node, bool) {
	return nv.nodeAt(line)
}

// ResolveAtCursor returns the node at the source's current cursor line.
func (nv *Navigator) ResolveAtCursor() (Node, bool) {
	line, _ := nv.src.Cursor()
	return nv.nodeAt(line)
}

// nodeAt builds the node for line i from the source and classifier. A blank
// line under the cursor takes its depth from the cursor column instead of
// the stored text: the caret's horizontal position is the intended
// indentation of a line that has not been typed yet.
func (nv *Navigator) nodeAt(i int) (Node, bool) {
	text, ok := nv.src.Line(i)
	if !ok {
		return Node{}, false
	}

	n := Node{Line: i}
	n.empty = strings.TrimSpace(text) == ""

	depthText := text
	if n.empty {
		if line, col := nv.src.Cursor(); line == i {
			depthText = strings.Repeat(" ", col)
		}
	}
	n.Depth = nv.cls.Depth(depthText)

	n.comment = nv.cls.IsComment(text)
	if !n.comment {
		n.listItem = nv.cls.IsListItemStart(text)
		n.key, n.hasKey = nv.cls.Key(text)
		n.value, n.hasValue = nv.cls.Value(text)
	}

	return n, true
}

// NextSibling returns the nearest following structural node at the same
// logical nesting level as c, or false if a shallower node intervenes or
// the document ends first.
func (nv *Navigator) NextSibling(c Node) (Node, bool) {
	return nv.sibling(c, 1)
}

// PrevSibling returns the nearest preceding structural node at the same
// logical nesting level as c, or false if a shallower node intervenes or
// the document start is reached first.
func (nv *Navigator) PrevSibling(c Node) (Node, bool) {
	return nv.sibling(c, -1)
}

// sibling scans structural nodes from c in the given direction. Same depth
// is always a sibling. The two cross-depth cases bridge the list-marker
// offset: from a marker line, a non-marker one level deeper is a secondary
// field of the same element; from a secondary field, a marker one level
// shallower starts an adjacent element. Any other shallower node ends the
// search.
func (nv *Navigator) sibling(c Node, step int) (Node, bool) {
	for i := c.Line + step; ; i += step {
		n, ok := nv.nodeAt(i)
		if !ok {
			return Node{}, false
		}
		if !n.IsStructural() {
			continue
		}

		switch {
		case n.Depth == c.Depth:
			return n, true
		case c.IsListItemStart() && !n.IsListItemStart() && n.Depth == c.Depth+1:
			return n, true
		case !c.IsListItemStart() && n.IsListItemStart() && n.Depth == c.Depth-1:
			return n, true
		case n.Depth < c.Depth:
			return Node{}, false
		}
	}
}

// FirstChild returns the first structural node nested under c, or false if
// none exists. Children of a list-marker line sit two levels deeper, since
// one level is consumed by the marker-to-field offset. Deeper-than-required
// indentation still counts as a child, so malformed over-indented documents
// resolve usefully.
func (nv *Navigator) FirstChild(c Node) (Node, bool) {
	want := c.Depth + 1
	if c.IsListItemStart() {
		want = c.Depth + 2
	}

	for i := c.Line + 1; ; i++ {
		n, ok := nv.nodeAt(i)
		if !ok {
			return Node{}, false
		}
		if !n.IsStructural() {
			continue
		}
		if n.Depth >= want {
			return n, true
		}
		return Node{}, false
	}
}

// Parent returns the nearest preceding structural node shallow enough to
// contain c, or false if c is at the root. A non-marker member of a list
// element looks two levels up, past its own element's marker, so the marker
// line is never its parent.
func (nv *Navigator) Parent(c Node) (Node, bool) {
	ceil := c.Depth - 1
	if !c.IsListItemStart() && nv.InArray(c) {
		ceil = c.Depth - 2
	}

	for i := c.Line - 1; ; i-- {
		n, ok := nv.nodeAt(i)
		if !ok {
			return Node{}, false
		}
		if !n.IsStructural() {
			continue
		}
		if n.Depth <= ceil {
			return n, true
		}
	}
}

// InArray reports whether c belongs to a list element: either it starts one,
// or climbing back over same-or-deeper siblings lands on the marker line one
// level shallower. The climb is iterative so arbitrarily long sibling runs
// cannot exhaust the stack.
func (nv *Navigator) InArray(c Node) bool {
	if c.IsListItemStart() {
		return true
	}

	n := c
	for {
		p, ok := nv.PrevSibling(n)
		if !ok {
			return false
		}
		if p.Depth >= c.Depth {
			n = p
			continue
		}
		return p.IsListItemStart() && p.Depth == c.Depth-1
	}
}

// Neighbors collects c together with the sibling run it belongs to: the
// fields of a single list element, or one nesting level's run of siblings.
// The result starts with c, then preceding siblings nearest first, ending
// with the element's marker line when there is one, then following
// siblings nearest first, stopping before the next element's marker.
// Siblings whose array membership differs from c's are outside the run.
func (nv *Navigator) Neighbors(c Node) []Node {
	inArray := nv.InArray(c)
	out := []Node{c}

	// The backward collection stops once a marker has been included. Self
	// is included first, so a marker node owns no preceding neighbors:
	// walking further back would cross into the previous element's fields.
	if !c.IsListItemStart() {
		for n := c; ; {
			p, ok := nv.PrevSibling(n)
			if !ok || nv.InArray(p) != inArray {
				break
			}
			out = append(out, p)
			if p.IsListItemStart() {
				break
			}
			n = p
		}
	}

	for n := c; ; {
		x, ok := nv.NextSibling(n)
		if !ok || x.IsListItemStart() || nv.InArray(x) != inArray {
			break
		}
		out = append(out, x)
		n = x
	}

	return out
}

// Path returns c's ancestors in root-first order: the outermost ancestor
// first, c's direct parent last. The result is empty when c has no parent.
func (nv *Navigator) Path(c Node) []Node {
	var out []Node
	for n, ok := nv.Parent(c); ok; n, ok = nv.Parent(n) {
		out = append(out, n)
	}

	// Parents were collected nearest first; flip to root-first.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
