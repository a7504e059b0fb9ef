// Package classify turns free-text expense descriptions into ranked
// category decisions. It orchestrates the textscore primitives, the
// vocabulary store, abbreviation expansion, and context heuristics into a
// single confidence-fused pipeline, and owns the learning hook fed by
// user corrections.
package classify

import (
	"github.com/0xshadow-dev/skipwise-sub000/pkg/category"
)

// Algorithm tags which matcher produced a candidate.
type Algorithm string

const (
	AlgoLearned  Algorithm = "learned"
	AlgoExact    Algorithm = "exact"
	AlgoFuzzy    Algorithm = "fuzzy"
	AlgoPhonetic Algorithm = "phonetic"
	AlgoSemantic Algorithm = "semantic"
	AlgoContext  Algorithm = "context"
	AlgoFallback Algorithm = "fallback"
)

// Candidate is one scored category guess from a single algorithm.
type Candidate struct {
	Category   category.Category
	RawScore   float64
	Confidence float64
	Term       string
	Matched    string
	Original   string
	Algorithm  Algorithm
	Note       string
}

// Result is the ranked decision for one description.
type Result struct {
	Category     category.Category
	Confidence   float64
	Explanation  string
	Alternatives []Candidate
	Trace        []string
}
