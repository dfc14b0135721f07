// Package document provides an in-memory, line-oriented text source with a
// caret position. It is the reference implementation of the text contract
// the navigator consumes: indexed line access, a line count, and the current
// cursor.
//
// A Lines value is a plain slice of lines plus a cursor; there is no
// structural state to invalidate, so callers may edit lines freely between
// navigation queries.
//
// Basic usage:
//
//	doc := document.FromString("documentation:\n  - title: foo\n    content: bar")
//	doc.SetCursor(2, 4)
//
// Line endings are normalized to LF on construction, so documents read from
// CRLF or CR sources index the same way.
package document
