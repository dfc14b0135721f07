package raml

// Option is a functional option for configuring a Classifier.
type Option func(*Classifier)

// WithIndentWidth sets the number of leading columns per indentation level.
// Non-positive widths are ignored.
func WithIndentWidth(width int) Option {
	return func(c *Classifier) {
		if width > 0 {
			c.indentWidth = width
		}
	}
}

// WithTabWidth sets the number of columns a tab contributes to the
// indentation. Defaults to the indent width, so a tab is one level.
// Non-positive widths are ignored.
func WithTabWidth(width int) Option {
	return func(c *Classifier) {
		if width > 0 {
			c.tabWidth = width
		}
	}
}
