// Package convert defines the document converters shared by the batch tools.
// A converter takes the full HTML text of one file and produces the text
// written to the mirrored output file.
package convert

// Converter transforms one HTML document into its output representation.
type Converter interface {
	// Convert transforms the input HTML. Implementations must not panic on
	// malformed input; parsing degrades best-effort.
	Convert(html string) (string, error)

	// Name returns the converter type for logging.
	Name() string

	// Ext returns the output file extension, including the leading dot.
	Ext() string
}

// Noop passes content through unchanged. Used by driver tests and as a
// baseline when comparing converter output.
type Noop struct{}

// NewNoop creates a new no-op converter.
func NewNoop() *Noop {
	return &Noop{}
}

// Convert returns the input unchanged.
func (c *Noop) Convert(html string) (string, error) {
	return html, nil
}

// Name returns the converter type.
func (c *Noop) Name() string {
	return "noop"
}

// Ext returns the output extension.
func (c *Noop) Ext() string {
	return ".html"
}
