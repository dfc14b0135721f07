package raml

import "strings"

// DefaultIndentWidth is the number of leading columns that make up one
// indentation level, matching the two-space convention of RAML documents.
const DefaultIndentWidth = 2

// Classifier reports the structural facts of a single line: indentation
// depth, comment and list-marker status, and key/value text. It holds no
// document state; the same Classifier can be shared across documents.
type Classifier struct {
	indentWidth int
	tabWidth    int
}

// NewClassifier creates a classifier with default settings. Unless
// WithTabWidth is given, a tab is as wide as one indent unit.
func NewClassifier(opts ...Option) *Classifier {
	c := &Classifier{
		indentWidth: DefaultIndentWidth,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.tabWidth <= 0 {
		c.tabWidth = c.indentWidth
	}

	return c
}

// IndentWidth returns the configured columns-per-level.
func (c *Classifier) IndentWidth() int {
	return c.indentWidth
}

// TabWidth returns the number of columns a tab contributes.
func (c *Classifier) TabWidth() int {
	return c.tabWidth
}

// Depth returns the indentation level of the line. Spaces count one column,
// a tab counts the configured tab width, and partial units round down.
func (c *Classifier) Depth(text string) int {
	cols := 0
	for _, r := range text {
		switch r {
		case ' ':
			cols++
		case '\t':
			cols += c.tabWidth
		default:
			return cols / c.indentWidth
		}
	}
	return cols / c.indentWidth
}

// IsComment returns true if the line's first non-blank character opens a
// comment.
func (c *Classifier) IsComment(text string) bool {
	return strings.HasPrefix(content(text), "#")
}

// IsListItemStart returns true if the line begins a list element: its
// content starts with the "- " marker (or is a bare "-").
func (c *Classifier) IsListItemStart(text string) bool {
	s := content(text)
	return s == "-" || strings.HasPrefix(s, "- ")
}

// Key returns the key text of the line, if any. The key is everything before
// the first unquoted colon, after the list marker has been stripped. Lines
// with no colon, or nothing before it, have no key.
func (c *Classifier) Key(text string) (string, bool) {
	b := body(text)
	i := splitIndex(b)
	if i < 0 {
		return "", false
	}
	key := strings.TrimSpace(b[:i])
	if key == "" {
		return "", false
	}
	return key, true
}

// Value returns the value text of the line, if any. For keyed lines this is
// everything after the first unquoted colon; for scalar lines (no colon) it
// is the whole content after the list marker. Empty values are absent.
func (c *Classifier) Value(text string) (string, bool) {
	b := body(text)
	i := splitIndex(b)
	var val string
	if i < 0 {
		val = strings.TrimSpace(b)
	} else {
		val = strings.TrimSpace(b[i+1:])
	}
	if val == "" {
		return "", false
	}
	return val, true
}

// content returns the line with leading indentation removed.
func content(text string) string {
	return strings.TrimLeft(text, " \t")
}

// body returns the line's content with any list marker removed as well, so
// key/value extraction sees "title: foo" for both a plain field and a
// "- title: foo" list entry.
func body(text string) string {
	s := content(text)
	if s == "-" {
		return ""
	}
	if strings.HasPrefix(s, "- ") {
		return strings.TrimLeft(s[2:], " \t")
	}
	return s
}

// splitIndex returns the index of the first colon outside single or double
// quotes, or -1 if there is none.
func splitIndex(s string) int {
	var quote byte
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case quote != 0:
			if ch == quote {
				quote = 0
			}
		case ch == '\'' || ch == '"':
			quote = ch
		case ch == ':':
			return i
		}
	}
	return -1
}
