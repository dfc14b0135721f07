// Package raml classifies single lines of RAML and similar indentation-based
// documents. Given one line of raw text it reports the indentation depth,
// whether the line is a comment or the start of a list item, and the key and
// value text if present.
//
// The classifier is total: any input, including empty or malformed text,
// produces a deterministic result. It never inspects more than one line, so
// it can be applied to documents that are mid-edit or structurally broken.
//
// Depth is measured in indent units. A space contributes one column, a tab
// contributes a configurable tab width (one full unit unless WithTabWidth
// says otherwise), and the depth is the number of whole units of leading
// whitespace:
//
//	cls := raml.NewClassifier()                     // 2-column units
//	cls.Depth("    title: x")                       // 2
//
//	cls = raml.NewClassifier(raml.WithIndentWidth(4))
//	cls.Depth("    title: x")                       // 1
package raml
