package utils

import (
	"strings"
	"unicode"
)

// GenerateSlug derives a URL-safe slug from an article title: lower-cased,
// punctuation stripped, whitespace runs collapsed to single hyphens.
func GenerateSlug(title string) string {
	lowered := strings.ToLower(title)

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(b.String()), "-")
}
