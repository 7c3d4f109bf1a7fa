package convert

import (
	"errors"
	"fmt"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// ErrConverterUnavailable means the Markdown converter failed its startup
// probe. It is fatal: the batch must not start with a broken converter.
var ErrConverterUnavailable = errors.New("markdown converter unavailable")

// Markdown converts HTML to Markdown by delegating to html-to-markdown.
// It performs no transformation of its own and does not hard-wrap lines;
// the library output is written verbatim.
type Markdown struct{}

// NewMarkdown creates a new Markdown converter.
func NewMarkdown() *Markdown {
	return &Markdown{}
}

// Probe converts a canary document and reports ErrConverterUnavailable if
// the converter cannot produce output. Call it once before any file work.
func (c *Markdown) Probe() error {
	out, err := md.ConvertString("<h1>probe</h1>")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConverterUnavailable, err)
	}
	if strings.TrimSpace(out) == "" {
		return fmt.Errorf("%w: empty probe output", ErrConverterUnavailable)
	}
	return nil
}

// Convert converts HTML to Markdown.
func (c *Markdown) Convert(html string) (string, error) {
	return md.ConvertString(html)
}

// Name returns the converter type.
func (c *Markdown) Name() string {
	return "markdown"
}

// Ext returns the output extension.
func (c *Markdown) Ext() string {
	return ".md"
}
