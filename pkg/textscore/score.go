package textscore

import (
	"strings"
	"unicode/utf8"

	"github.com/hbollon/go-edlib"
)

// maxEditDistance caps how many edits still count as a candidate match,
// whatever the string lengths.
const maxEditDistance = 3

// ExactOrSubstringScore scores two strings by containment. Equal strings
// score 1.0. When one contains the other, the score is the length ratio
// scaled into (0, 0.9], with a 0.2 bonus when the shorter string sits at
// the start of the longer one. Strings with no containment score 0.
func ExactOrSubstringScore(a, b string) float64 {
	if a == b {
		if a == "" {
			return 0
		}
		return 1.0
	}
	if a == "" || b == "" {
		return 0
	}
	shorter, longer := a, b
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	idx := strings.Index(longer, shorter)
	if idx < 0 {
		return 0
	}
	score := 0.9 * float64(len(shorter)) / float64(len(longer))
	if idx == 0 {
		score += 0.2
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// EditDistance returns the Levenshtein distance between a and b.
func EditDistance(a, b string) int {
	return edlib.LevenshteinDistance(a, b)
}

// WithinEditLimit reports whether the edit distance between a and b is
// small enough to treat them as a fuzzy match candidate: at most
// min(3, floor(0.4 * maxLen)) edits, where maxLen counts runes to match
// the rune-based distance.
func WithinEditLimit(a, b string) bool {
	maxLen := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if maxLen == 0 {
		return false
	}
	limit := min(maxEditDistance, maxLen*4/10)
	if limit == 0 {
		return false
	}
	return EditDistance(a, b) <= limit
}

// EditDistanceScore converts the Levenshtein distance between a and b into
// a similarity in [0,1]: 1 - distance/maxLen over rune counts. Two empty
// strings score 0.
func EditDistanceScore(a, b string) float64 {
	maxLen := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if maxLen == 0 {
		return 0
	}
	score := 1.0 - float64(EditDistance(a, b))/float64(maxLen)
	if score < 0 {
		return 0
	}
	return score
}
