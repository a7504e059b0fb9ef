package search

import "strings"

// MergeIndices collapses sorted matched-rune indices into contiguous
// [start,end) spans: [2,3,4,7] becomes [2,5) and [7,8).
func MergeIndices(indices []int) []Span {
	if len(indices) == 0 {
		return nil
	}
	var spans []Span
	start := indices[0]
	prev := indices[0]
	for _, i := range indices[1:] {
		if i == prev+1 {
			prev = i
			continue
		}
		spans = append(spans, Span{Start: start, End: prev + 1})
		start, prev = i, i
	}
	return append(spans, Span{Start: start, End: prev + 1})
}

// subsequenceIndices greedily matches the query's runes in order against
// the text, returning the rune indices it touched. It approximates the
// alignment implied by the edit distance well enough for highlighting.
func subsequenceIndices(text, query string) []int {
	var indices []int
	t := []rune(text)
	ti := 0
	for _, qr := range query {
		for ti < len(t) && t[ti] != qr {
			ti++
		}
		if ti >= len(t) {
			break
		}
		indices = append(indices, ti)
		ti++
	}
	return indices
}

// runeOffset converts a byte offset in s into a rune offset.
func runeOffset(s string, byteOffset int) int {
	return len([]rune(s[:byteOffset]))
}

// indexRuneFrom finds the rune offset of word in s at or after fromRune.
func indexRuneFrom(s, word string, fromRune int) int {
	runes := []rune(s)
	if fromRune > len(runes) {
		fromRune = len(runes)
	}
	tail := string(runes[fromRune:])
	at := strings.Index(tail, word)
	if at < 0 {
		return fromRune
	}
	return fromRune + runeOffset(tail, at)
}
