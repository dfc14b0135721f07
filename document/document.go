package document

import (
	"io"
	"strings"
)

// Lines is an in-memory text source. It stores the document as a slice of
// lines (without line endings) together with the current cursor position.
// The zero value is an empty document with the cursor at the origin.
type Lines struct {
	lines      []string
	cursorLine int
	cursorCol  int
}

// New creates a document from individual lines.
func New(lines ...string) *Lines {
	d := &Lines{lines: make([]string, len(lines))}
	copy(d.lines, lines)
	return d
}

// FromString creates a document by splitting s on line endings.
// CRLF and CR endings are normalized to LF first.
func FromString(s string) *Lines {
	return &Lines{lines: strings.Split(normalizeLineEndings(s), "\n")}
}

// FromReader creates a document from an io.Reader.
func FromReader(r io.Reader) (*Lines, error) {
	// Read everything first so CRLF sequences split across read boundaries
	// normalize correctly.
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return FromString(string(data)), nil
}

// normalizeLineEndings converts CRLF and CR line endings to LF.
func normalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return s
}

// Line returns the text of line i, without its line ending. The second
// result is false if i is outside [0, LineCount).
func (d *Lines) Line(i int) (string, bool) {
	if i < 0 || i >= len(d.lines) {
		return "", false
	}
	return d.lines[i], true
}

// LineCount returns the number of lines in the document.
func (d *Lines) LineCount() int {
	return len(d.lines)
}

// Text returns the full document joined with LF line endings.
func (d *Lines) Text() string {
	return strings.Join(d.lines, "\n")
}

// Cursor returns the current caret position.
func (d *Lines) Cursor() (line, column int) {
	return d.cursorLine, d.cursorCol
}

// SetCursor moves the caret. The line is clamped into the document; the
// column is clamped to zero but may exceed the line length, since a caret
// past the end of a blank line is how intended indentation is expressed.
func (d *Lines) SetCursor(line, column int) {
	if line < 0 {
		line = 0
	}
	if last := len(d.lines) - 1; line > last && last >= 0 {
		line = last
	}
	if column < 0 {
		column = 0
	}
	d.cursorLine = line
	d.cursorCol = column
}

// SetLine replaces the text of line i. Out-of-range indexes are ignored.
func (d *Lines) SetLine(i int, text string) {
	if i < 0 || i >= len(d.lines) {
		return
	}
	d.lines[i] = text
}

// InsertLine inserts text as a new line before index i. An index at or past
// the end appends.
func (d *Lines) InsertLine(i int, text string) {
	if i < 0 {
		i = 0
	}
	if i >= len(d.lines) {
		d.lines = append(d.lines, text)
		return
	}
	d.lines = append(d.lines[:i], append([]string{text}, d.lines[i:]...)...)
}

// RemoveLine deletes line i. Out-of-range indexes are ignored.
func (d *Lines) RemoveLine(i int) {
	if i < 0 || i >= len(d.lines) {
		return
	}
	d.lines = append(d.lines[:i], d.lines[i+1:]...)
}
