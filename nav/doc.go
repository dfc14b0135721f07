// Package nav infers tree structure from an indentation-based document
// without building a tree. Every relation (parent, first child, siblings,
// array membership, ancestor path) is re-derived on demand by scanning
// nearby lines and comparing indentation depth, so the answers stay correct
// while the underlying text is edited, with no invalidation step.
//
// The package operates through two small contracts: a Source yields line
// text, a line count, and the caret position; a Classifier reports the
// depth, comment/list-marker status, and key/value text of a single line.
// Nodes are ephemeral values constructed per query; no Node ever references
// another Node.
//
// Basic usage:
//
//	doc := document.FromString(text)
//	nv := nav.New(doc, raml.NewClassifier())
//
//	node, ok := nv.Resolve(12)
//	if !ok {
//	    // no such line
//	}
//	parent, ok := nv.Parent(node)
//
// Missing lines and missing relations are reported uniformly through the
// second comma-ok result; no operation returns an error.
//
// List elements use an asymmetric depth convention: the "- " marker line and
// the element's remaining fields sit one indentation level apart yet belong
// to the same element. The sibling, child, parent, and membership rules all
// compensate for this offset, so "- title: foo" and its "content: bar" line
// resolve as siblings, and both resolve the node above the marker as their
// parent.
//
// All traversal is iterative and bounded by the document edges, so deeply
// nested or very long documents cannot exhaust the stack.
package nav
