// Package scoring computes the weighted multi-signal match score between a
// structured resume record and a job description.
package scoring

import (
	"regexp"
	"strings"
)

// punctuation is the ASCII punctuation stripped during normalization.
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

var whitespace = regexp.MustCompile(`\s+`)

// CleanText normalizes text for similarity computation: lower-case, strip
// punctuation, collapse whitespace. Both resume-derived text and job text
// go through this identically before any comparison.
func CleanText(text string) string {
	text = strings.ToLower(text)
	text = strings.Map(func(r rune) rune {
		if strings.ContainsRune(punctuation, r) {
			return -1
		}
		return r
	}, text)
	return strings.TrimSpace(whitespace.ReplaceAllString(text, " "))
}
