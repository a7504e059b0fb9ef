// Package vocab holds the weighted category vocabulary: prioritized term
// sources, the pure consolidation fold that merges them into one immutable
// snapshot, and the learned source that grows from user corrections.
package vocab

import (
	"github.com/0xshadow-dev/skipwise-sub000/pkg/category"
)

// Term is one canonical word or phrase tied to a category.
type Term struct {
	// Canonical is the primary spelling, stored normalized.
	Canonical string
	// Variations are alternate spellings and abbreviations that count as
	// the same term.
	Variations []string
	// Weight in [0,1] expresses how strongly the term indicates its
	// category. Primary curated terms carry 1.0, learned terms 0.95.
	Weight float64
	// Source names the source the winning weight came from.
	Source string
	// ContextClues are words that often appear near the term and nudge
	// explanation text, not scores.
	ContextClues []string
	// Region tags regional or cultural tables, empty for global terms.
	Region string
}

// Source is one prioritized vocabulary table. Higher priority wins weight
// conflicts during consolidation. Sources are read-only once built; only
// the learned source (see Store) is ever mutated.
type Source struct {
	Name     string
	Priority int
	Terms    map[category.Category][]Term
}

// Source priorities, highest first. The learned source always outranks
// every curated table so corrections stick.
const (
	PriorityLearned  = 100
	PriorityCustom   = 80
	PriorityPrimary  = 60
	PriorityBrands   = 50
	PriorityRegional = 40
	PrioritySynonyms = 30
	PriorityActions  = 20
)

// Weight tiers for the curated sources.
const (
	WeightPrimary = 1.0
	WeightBrand   = 0.9
	WeightCustom  = 0.9
	WeightLearned = 0.95
	WeightSynonym = 0.75
	WeightAction  = 0.6
)
