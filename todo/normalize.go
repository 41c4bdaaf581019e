package todo

import "strings"

// NormalizeText strips leading and trailing whitespace, including the
// full-width ideographic space (U+3000). Inner whitespace is preserved.
func NormalizeText(text string) string {
	return strings.TrimSpace(text)
}

func normalizeSearch(search string) string {
	return strings.ToLower(search)
}
