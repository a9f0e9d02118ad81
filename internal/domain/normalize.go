package domain

import (
	"strings"
)

// NormalizeWord prepares a word typed or extracted by the user:
//   - trims leading/trailing whitespace
//   - replaces tabs and non-breaking spaces with a plain space
//   - compresses multiple spaces into one
//
// Case, diacritics, hyphens, and apostrophes are preserved since the
// player compares answers literally.
func NormalizeWord(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == '\t' || r == '\u00a0' {
			r = ' '
		}
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
