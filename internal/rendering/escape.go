// Package rendering produces the bilingual HTML pages from transformed data.
package rendering

import "strings"

// EscapeHTML escapes special HTML characters in text.
// Special characters: & < > "
//
// Every dynamic string on a rendered page passes through here while the
// template data is built; the templates themselves do no escaping.
func EscapeHTML(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text) + len(text)/4)

	for _, r := range text {
		switch r {
		case '&':
			result.WriteString("&amp;")
		case '<':
			result.WriteString("&lt;")
		case '>':
			result.WriteString("&gt;")
		case '"':
			result.WriteString("&quot;")
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}
