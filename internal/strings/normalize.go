// Package strings holds small text helpers shared by the CLI and UIs.
package strings

import (
	"strings"
	"unicode"
)

// NormalizeWhitespace collapses runs of whitespace into single spaces.
func NormalizeWhitespace(value string) string {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return ""
	}
	return strings.Join(fields, " ")
}

// NormalizeLowerTrimSpace trims surrounding whitespace and lowercases the input.
func NormalizeLowerTrimSpace(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// TrimSpace trims surrounding Unicode whitespace, including U+3000.
func TrimSpace(value string) string {
	return strings.TrimSpace(value)
}

// IsBlank reports whether value is empty or whitespace only.
func IsBlank(value string) bool {
	return strings.TrimFunc(value, unicode.IsSpace) == ""
}

// NormalizeNewlines replaces CRLF and CR with LF.
func NormalizeNewlines(value string) string {
	if value == "" {
		return value
	}
	value = strings.ReplaceAll(value, "\r\n", "\n")
	return strings.ReplaceAll(value, "\r", "\n")
}

// TrimTrailingNewlines removes trailing CR/LF characters.
func TrimTrailingNewlines(value string) string {
	return strings.TrimRight(value, "\r\n")
}

// TrimTrailingSlash removes trailing slashes from a URL or path.
func TrimTrailingSlash(value string) string {
	return strings.TrimRight(value, "/")
}
