package raml

import "testing"

func TestDepthDefaultWidth(t *testing.T) {
	cls := NewClassifier()

	tests := []struct {
		text string
		want int
	}{
		{"title: x", 0},
		{"  title: x", 1},
		{"    title: x", 2},
		{"   title: x", 1}, // partial unit rounds down
		{"\ttitle: x", 1},
		{"\t\ttitle: x", 2},
		{"\t  title: x", 2}, // tab then one full unit of spaces
		{"", 0},
		{"      ", 3}, // whitespace-only still has a depth
	}

	for _, tt := range tests {
		if got := cls.Depth(tt.text); got != tt.want {
			t.Errorf("Depth(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestDepthCustomWidth(t *testing.T) {
	cls := NewClassifier(WithIndentWidth(4))

	tests := []struct {
		text string
		want int
	}{
		{"Foo:", 0},
		{"    Bar:", 1},
		{"          Baz:", 2},
		{"\tBar:", 1},
		{"        ", 2},
	}

	for _, tt := range tests {
		if got := cls.Depth(tt.text); got != tt.want {
			t.Errorf("Depth(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestDepthCustomTabWidth(t *testing.T) {
	cls := NewClassifier(WithTabWidth(8))

	tests := []struct {
		text string
		want int
	}{
		{"\ttitle: x", 4}, // 8 columns over 2-column units
		{"\t\ttitle: x", 8},
		{"\t  title: x", 5},
		{"  title: x", 1}, // spaces unaffected
	}

	for _, tt := range tests {
		if got := cls.Depth(tt.text); got != tt.want {
			t.Errorf("Depth(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}

	// Tab width follows the indent width unless set.
	cls = NewClassifier(WithIndentWidth(4))
	if cls.TabWidth() != 4 {
		t.Errorf("TabWidth() = %d, want indent width 4", cls.TabWidth())
	}
	if got := cls.Depth("\ttitle: x"); got != 1 {
		t.Errorf("Depth(tab) = %d, want 1", got)
	}
}

func TestWithTabWidthIgnoresInvalid(t *testing.T) {
	cls := NewClassifier(WithTabWidth(-1))
	if cls.TabWidth() != DefaultIndentWidth {
		t.Errorf("TabWidth() = %d, want default %d", cls.TabWidth(), DefaultIndentWidth)
	}
}

func TestWithIndentWidthIgnoresInvalid(t *testing.T) {
	cls := NewClassifier(WithIndentWidth(0))
	if cls.IndentWidth() != DefaultIndentWidth {
		t.Errorf("IndentWidth() = %d, want default %d", cls.IndentWidth(), DefaultIndentWidth)
	}
}

func TestIsComment(t *testing.T) {
	cls := NewClassifier()

	tests := []struct {
		text string
		want bool
	}{
		{"# a comment", true},
		{"   # indented comment", true},
		{"\t#tight", true},
		{"title: x", false},
		{"title: x # not a comment line", false},
		{"", false},
		{"   ", false},
	}

	for _, tt := range tests {
		if got := cls.IsComment(tt.text); got != tt.want {
			t.Errorf("IsComment(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestIsListItemStart(t *testing.T) {
	cls := NewClassifier()

	tests := []struct {
		text string
		want bool
	}{
		{"- title: foo", true},
		{"  - title: foo", true},
		{"-", true},
		{"  -", true},
		{"- scalar", true},
		{"-notalist", false},
		{"title: foo", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := cls.IsListItemStart(tt.text); got != tt.want {
			t.Errorf("IsListItemStart(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestKeyValue(t *testing.T) {
	cls := NewClassifier()

	tests := []struct {
		text     string
		key      string
		hasKey   bool
		value    string
		hasValue bool
	}{
		{"title: foo", "title", true, "foo", true},
		{"documentation:", "documentation", true, "", false},
		{"  - title: foo", "title", true, "foo", true},
		{"- scalar entry", "", false, "scalar entry", true},
		{"-", "", false, "", false},
		{"'a: b': c", "'a: b'", true, "c", true},
		{`"x:y": z`, `"x:y"`, true, "z", true},
		{"bare text", "", false, "bare text", true},
		{"", "", false, "", false},
		{"   ", "", false, "", false},
		{": dangling", "", false, "dangling", true},
	}

	for _, tt := range tests {
		key, ok := cls.Key(tt.text)
		if ok != tt.hasKey || key != tt.key {
			t.Errorf("Key(%q) = %q, %v, want %q, %v", tt.text, key, ok, tt.key, tt.hasKey)
		}

		value, ok := cls.Value(tt.text)
		if ok != tt.hasValue || value != tt.value {
			t.Errorf("Value(%q) = %q, %v, want %q, %v", tt.text, value, ok, tt.value, tt.hasValue)
		}
	}
}
