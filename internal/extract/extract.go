// Package extract turns HTML documents into normalized plain text.
//
// Extraction is a two-pass pipeline: Scan reduces a document to an ordered
// sequence of fragments (title, paragraphs, separators), and Render joins
// that sequence with a fixed spacing contract. Both passes are pure; the
// parsed tree is discarded as soon as the scan finishes.
package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Kind classifies a fragment.
type Kind int

const (
	// KindTitle is the document heading.
	KindTitle Kind = iota
	// KindParagraph is one block of body text.
	KindParagraph
	// KindSeparator marks a horizontal rule between sections.
	KindSeparator
)

// Fragment is one semantic unit of extracted text. Separators carry no text.
type Fragment struct {
	Kind Kind
	Text string
}

// FromHTML extracts and renders the readable text of an HTML document.
// The result always ends with exactly one newline, even when the document
// contains neither a title nor a content container.
func FromHTML(input string, p Profile) string {
	return Render(Scan(input, p))
}

// Scan walks a document and collects its fragments in document order.
//
// The title is the first match of the profile's title selector; the body is
// the direct children of the first content-container match, scanned once:
// paragraph elements become paragraph fragments (empty ones are dropped),
// separator elements become separator fragments (adjacent ones collapse to
// one, and a separator is never the first fragment), and everything else is
// ignored. Malformed HTML is parsed best-effort and never fails the scan.
func Scan(input string, p Profile) []Fragment {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(input))
	if err != nil {
		return nil
	}

	var frags []Fragment

	if title := strings.TrimSpace(doc.Find(p.TitleSelector).First().Text()); title != "" {
		frags = append(frags, Fragment{Kind: KindTitle, Text: title})
	}

	container := doc.Find(p.ContentSelector).First()
	if container.Length() == 0 {
		return frags
	}

	for n := container.Nodes[0].FirstChild; n != nil; n = n.NextSibling {
		if n.Type != html.ElementNode {
			continue
		}
		switch {
		case p.isParagraph(n.Data):
			if text := strings.TrimSpace(nodeText(n)); text != "" {
				frags = append(frags, Fragment{Kind: KindParagraph, Text: text})
			}
		case p.isSeparator(n.Data):
			// Collapse runs of separators and drop a leading one.
			if len(frags) > 0 && frags[len(frags)-1].Kind != KindSeparator {
				frags = append(frags, Fragment{Kind: KindSeparator})
			}
		}
	}

	return frags
}

// nodeText concatenates all text beneath a node.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		if cur.Type == html.TextNode {
			b.WriteString(cur.Data)
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
