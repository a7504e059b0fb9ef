// Package textscore provides the pure string-comparison primitives the
// classifier and search index are built on: normalization, substring and
// edit-distance scoring, phonetic encodings, and a coarse semantic
// similarity over a small curated lexicon. Everything here is stateless
// and safe to call concurrently.
package textscore

import (
	"strings"
	"unicode"
)

// Normalize lowercases the text, strips punctuation, and collapses runs of
// whitespace into single spaces.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	lastSpace := true
	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastSpace = false
		case unicode.IsSpace(r):
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
		default:
			// Punctuation acts as a soft separator so "coffee,bagel"
			// still splits into two tokens.
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
		}
	}
	return strings.TrimSpace(b.String())
}

// Tokens normalizes the text and splits it on whitespace.
func Tokens(text string) []string {
	norm := Normalize(text)
	if norm == "" {
		return nil
	}
	return strings.Fields(norm)
}
