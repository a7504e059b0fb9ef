package textscore

import (
	"math"
	"testing"
)

func almost(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestExactOrSubstringScore(t *testing.T) {
	cases := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "coffee", "coffee", 1.0},
		{"prefix gets bonus", "star", "starbucks", 0.9*4.0/9.0 + 0.2},
		{"interior substring", "bucks", "starbucks", 0.9 * 5.0 / 9.0},
		{"symmetric", "starbucks", "star", 0.9*4.0/9.0 + 0.2},
		{"no containment", "coffee", "grocery", 0},
		{"empty strings", "", "", 0},
		{"one empty", "coffee", "", 0},
		{"near-full prefix caps at one", "starbuck", "starbucks", 1.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExactOrSubstringScore(tc.a, tc.b)
			if !almost(got, tc.want) {
				t.Errorf("ExactOrSubstringScore(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestExactOrSubstringScorePrefixBeatsInterior(t *testing.T) {
	prefix := ExactOrSubstringScore("star", "starbucks")
	interior := ExactOrSubstringScore("buck", "starbucks")
	if prefix <= interior {
		t.Errorf("prefix match (%v) should outscore interior match (%v) of equal length", prefix, interior)
	}
}

func TestEditDistanceScore(t *testing.T) {
	cases := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "coffee", "coffee", 1.0},
		{"one edit", "coffee", "cofee", 1.0 - 1.0/6.0},
		{"two edits", "starbucks", "stabucks", 1.0 - 1.0/9.0},
		{"both empty", "", "", 0},
		{"completely different stays nonnegative", "ab", "xyzxyzxyz", 1.0 - 9.0/9.0},
		{"accented letters count as one rune", "café", "cafe", 1.0 - 1.0/4.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := EditDistanceScore(tc.a, tc.b)
			if !almost(got, tc.want) {
				t.Errorf("EditDistanceScore(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestEditDistanceScoreMonotonic(t *testing.T) {
	// Each extra edit against the same target must not raise the score.
	target := "starbucks"
	variants := []string{"starbucks", "stabucks", "stabuks", "stbuks"}
	prev := 1.1
	for _, v := range variants {
		s := EditDistanceScore(target, v)
		if s > prev {
			t.Errorf("score for %q (%v) exceeds score for fewer edits (%v)", v, s, prev)
		}
		prev = s
	}
}

func TestWithinEditLimit(t *testing.T) {
	cases := []struct {
		name string
		a, b string
		want bool
	}{
		{"one typo in six letters", "coffee", "cofee", true},
		{"unrelated words", "coffee", "tea", false},
		{"short strings never fuzzy", "ab", "cd", false},
		{"hard cap at three edits", "abcdefghijkl", "xyzdefghijkl", true},
		{"four edits over the cap", "abcdefghijkl", "wxyzefghijkl", false},
		{"one typo in accented word", "crème", "creme", true},
		{"rune length bounds the limit", "一二三四五六", "一二三七八九", false},
		{"empty", "", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := WithinEditLimit(tc.a, tc.b); got != tc.want {
				t.Errorf("WithinEditLimit(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}
