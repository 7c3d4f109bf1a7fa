package convert

import "htmlconv/internal/extract"

// Text extracts normalized plain text using a fragment profile.
type Text struct {
	profile extract.Profile
}

// NewText creates a text converter for the given extraction profile.
func NewText(p extract.Profile) *Text {
	return &Text{profile: p}
}

// Convert extracts the readable text of the document. Extraction never
// fails; documents without a title or content container yield "\n".
func (c *Text) Convert(html string) (string, error) {
	return extract.FromHTML(html, c.profile), nil
}

// Name returns the converter type.
func (c *Text) Name() string {
	return "text"
}

// Ext returns the output extension.
func (c *Text) Ext() string {
	return ".txt"
}
