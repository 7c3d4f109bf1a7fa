package extract

import "strings"

// separatorText is what a separator fragment renders as.
const separatorText = "---"

// Render joins a fragment sequence into the final text.
//
// The gap after each fragment depends only on that fragment: one newline
// after a title or a separator, a blank line after a paragraph. The joined
// result is trimmed and terminated with exactly one newline, so an empty
// sequence renders as "\n".
func Render(frags []Fragment) string {
	var b strings.Builder
	for i, f := range frags {
		if f.Kind == KindSeparator {
			b.WriteString(separatorText)
		} else {
			b.WriteString(f.Text)
		}
		if i == len(frags)-1 {
			break
		}
		if f.Kind == KindParagraph {
			b.WriteString("\n\n")
		} else {
			b.WriteString("\n")
		}
	}
	return strings.TrimSpace(b.String()) + "\n"
}
