// Package textutil holds small text helpers shared by the form and
// rendering layers.
package textutil

import "strings"

// SplitList turns a comma-separated string into trimmed, non-empty parts.
// Order of first occurrence is preserved and duplicates are kept; set
// semantics are applied at filter time, not here.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML escapes the five HTML-significant characters. Every
// user-controlled field goes through this before being rendered into
// markup.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
