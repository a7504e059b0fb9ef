// Package search ranks arbitrary records against a free-text query across
// weighted fields, with highlight spans into the original field text and
// a typo-tolerant second pass that only runs when strict search comes up
// empty.
package search

import (
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/0xshadow-dev/skipwise-sub000/pkg/config"
	"github.com/0xshadow-dev/skipwise-sub000/pkg/textscore"
)

// Field describes one searchable attribute of an item: a display name, a
// relative weight, and an extractor pulling the text out of the opaque
// item. An extractor error skips the field for that item only.
type Field struct {
	Name    string
	Weight  float64
	Extract func(item any) (string, error)
}

// Span is a [Start,End) character range into the original, non-normalized
// field text.
type Span struct {
	Start int
	End   int
}

// Hit is one ranked result.
type Hit struct {
	Item any
	// Index is the item's position in the searched slice; ties on score
	// preserve this order.
	Index int
	Score float64
	// MatchedRunes holds, per field, the rune indices a fuzzy match
	// touched in the original text.
	MatchedRunes map[string][]int
	// Highlights holds, per field, merged spans for display.
	Highlights map[string][]Span
}

// Index searches items over a fixed field configuration.
type Index struct {
	fields []Field
	cfg    config.SearchConfig
}

// New builds an index. Zero-valued cfg fields fall back to the package
// defaults so a partially filled config still behaves.
func New(fields []Field, cfg config.SearchConfig) *Index {
	def := config.DefaultConfig().Search
	if cfg.MinScore <= 0 {
		cfg.MinScore = def.MinScore
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = def.MaxResults
	}
	if cfg.SubstringScore <= 0 {
		cfg.SubstringScore = def.SubstringScore
	}
	if cfg.FuzzyDiscount <= 0 {
		cfg.FuzzyDiscount = def.FuzzyDiscount
	}
	if cfg.FuzzyFloor <= 0 {
		cfg.FuzzyFloor = def.FuzzyFloor
	}
	if cfg.TypoDiscount <= 0 {
		cfg.TypoDiscount = def.TypoDiscount
	}
	if cfg.MinQueryLength <= 0 {
		cfg.MinQueryLength = def.MinQueryLength
	}
	if cfg.MinWordLength <= 0 {
		cfg.MinWordLength = def.MinWordLength
	}
	return &Index{fields: fields, cfg: cfg}
}

// Search ranks items against the query. An empty or too-short query is a
// pass-through browse: every item comes back at score 1 in original
// order, uncapped by MaxResults.
func (ix *Index) Search(items []any, query string) []Hit {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < ix.cfg.MinQueryLength {
		out := make([]Hit, 0, len(items))
		for i, item := range items {
			out = append(out, Hit{Item: item, Index: i, Score: 1})
		}
		return out
	}

	q := ix.fold(query)
	var hits []Hit
	for i, item := range items {
		if hit, ok := ix.scoreItem(item, i, q); ok {
			hits = append(hits, hit)
		}
	}
	return ix.rank(hits)
}

// SearchWithTypoTolerance runs Search first and, only if it finds
// nothing, retries word by word with a bounded edit distance and half the
// configured threshold. It therefore never returns fewer results than
// the strict pass.
func (ix *Index) SearchWithTypoTolerance(items []any, query string, maxTypos int) []Hit {
	strict := ix.Search(items, query)
	if len(strict) > 0 {
		return strict
	}
	if maxTypos <= 0 {
		maxTypos = ix.cfg.DefaultMaxTypos
	}

	q := ix.fold(strings.TrimSpace(query))
	var hits []Hit
	for i, item := range items {
		if hit, ok := ix.scoreItemLoose(item, i, q, maxTypos); ok {
			hits = append(hits, hit)
		}
	}
	return ix.rank(hits)
}

// scoreItem applies the strict per-field scoring: substring containment
// first, then the edit-distance fallback, normalized over field count.
func (ix *Index) scoreItem(item any, idx int, q string) (Hit, bool) {
	hit := Hit{
		Item:         item,
		Index:        idx,
		MatchedRunes: map[string][]int{},
		Highlights:   map[string][]Span{},
	}
	total := 0.0
	matchedAny := false

	for _, field := range ix.fields {
		text, err := field.Extract(item)
		if err != nil {
			log.Debugf("field %q extractor failed for item %d: %v", field.Name, idx, err)
			continue
		}
		folded := ix.fold(text)

		if at := strings.Index(folded, q); at >= 0 {
			start := runeOffset(folded, at)
			span := Span{Start: start, End: start + len([]rune(q))}
			hit.Highlights[field.Name] = []Span{span}
			total += ix.cfg.SubstringScore * field.Weight
			matchedAny = true
			continue
		}

		score := textscore.EditDistanceScore(q, folded)
		if score <= ix.cfg.FuzzyFloor {
			continue
		}
		indices := subsequenceIndices(folded, q)
		hit.MatchedRunes[field.Name] = indices
		hit.Highlights[field.Name] = MergeIndices(indices)
		total += score * ix.cfg.FuzzyDiscount * field.Weight
		matchedAny = true
	}

	if !matchedAny || len(ix.fields) == 0 {
		return Hit{}, false
	}
	hit.Score = total / float64(len(ix.fields))
	return hit, hit.Score >= ix.cfg.MinScore
}

// scoreItemLoose is the permissive second pass: per field, per word,
// bounded Levenshtein distance against each query word.
func (ix *Index) scoreItemLoose(item any, idx int, q string, maxTypos int) (Hit, bool) {
	hit := Hit{
		Item:         item,
		Index:        idx,
		MatchedRunes: map[string][]int{},
		Highlights:   map[string][]Span{},
	}
	total := 0.0
	matchedAny := false

	for _, field := range ix.fields {
		text, err := field.Extract(item)
		if err != nil {
			log.Debugf("field %q extractor failed for item %d: %v", field.Name, idx, err)
			continue
		}
		folded := ix.fold(text)

		best := 0.0
		var bestSpan Span
		pos := 0
		for _, word := range strings.Fields(folded) {
			wordStart := indexRuneFrom(folded, word, pos)
			pos = wordStart + len([]rune(word))
			if len([]rune(word)) < ix.cfg.MinWordLength {
				continue
			}
			for _, qw := range strings.Fields(q) {
				dist := textscore.EditDistance(qw, word)
				if dist > maxTypos {
					continue
				}
				score := textscore.EditDistanceScore(qw, word)
				if score > best {
					best = score
					bestSpan = Span{Start: wordStart, End: wordStart + len([]rune(word))}
				}
			}
		}
		if best > 0 {
			hit.Highlights[field.Name] = []Span{bestSpan}
			total += best * ix.cfg.TypoDiscount * field.Weight
			matchedAny = true
		}
	}

	if !matchedAny || len(ix.fields) == 0 {
		return Hit{}, false
	}
	hit.Score = total / float64(len(ix.fields))
	return hit, hit.Score >= ix.cfg.MinScore/2
}

// rank sorts by score descending, stable on original order, and caps to
// MaxResults.
func (ix *Index) rank(hits []Hit) []Hit {
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score > hits[j].Score
	})
	if len(hits) > ix.cfg.MaxResults {
		hits = hits[:ix.cfg.MaxResults]
	}
	return hits
}

// fold lowercases rune by rune, preserving rune offsets so spans into the
// folded text line up with the original.
func (ix *Index) fold(s string) string {
	if ix.cfg.CaseSensitive {
		return s
	}
	runes := []rune(s)
	for i, r := range runes {
		if 'A' <= r && r <= 'Z' {
			runes[i] = r + ('a' - 'A')
		} else {
			runes[i] = toLowerRune(r)
		}
	}
	return string(runes)
}

func toLowerRune(r rune) rune {
	if r < 128 {
		return r
	}
	lowered := strings.ToLower(string(r))
	rs := []rune(lowered)
	if len(rs) == 1 {
		return rs[0]
	}
	return r
}
