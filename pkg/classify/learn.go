package classify

import (
	"errors"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/0xshadow-dev/skipwise-sub000/pkg/category"
	"github.com/0xshadow-dev/skipwise-sub000/pkg/textscore"
	"github.com/0xshadow-dev/skipwise-sub000/pkg/vocab"
)

// LearnFromCorrection records a user correction: the input is pinned as a
// learned pattern, added as a learned vocabulary term, and its short
// tokens become abbreviation candidates for the category. Repeating the
// identical call changes nothing, so vocabulary never grows unbounded
// from the same correction. Empty input or category is a silent no-op.
func (e *Engine) LearnFromCorrection(input string, cat category.Category) {
	norm := textscore.Normalize(input)
	if norm == "" || cat.IsZero() {
		log.Debugf("ignoring correction %q -> %q", input, cat)
		return
	}

	changed := false
	if existing, ok := e.learnedPatterns[norm]; !ok || existing != cat {
		e.learnedPatterns[norm] = cat
		changed = true
	}

	// Abbreviation scan uses the snapshot from before this correction so
	// the input's own tokens do not mask themselves.
	before := e.store.Consolidated()
	e.registerAbbreviations(before, norm, cat)

	if e.store.AddLearnedTerm(norm, cat) {
		changed = true
	}

	if changed && e.sink != nil {
		e.sink(norm, cat)
	}
}

// registerAbbreviations maps short unknown tokens of the corrected input
// onto the category's strongest canonical term.
func (e *Engine) registerAbbreviations(cons *vocab.Consolidated, norm string, cat category.Category) {
	target := strongestTerm(cons, cat)
	if target == "" {
		return
	}
	for _, tok := range strings.Fields(norm) {
		if len(tok) < 2 || len(tok) > 5 {
			continue
		}
		if overlapsKnownTerm(cons, cat, tok) {
			continue
		}
		e.expander.LearnAbbreviation(tok, target)
	}
}

func strongestTerm(cons *vocab.Consolidated, cat category.Category) string {
	best := ""
	bestWeight := 0.0
	for _, t := range cons.Terms(cat) {
		if t.Weight > bestWeight || (t.Weight == bestWeight && t.Canonical < best) {
			best, bestWeight = t.Canonical, t.Weight
		}
	}
	return best
}

var errOverlapFound = errors.New("overlap found")

// overlapsKnownTerm reports whether the token already appears in, or
// contains, any known term or variation for the category. Tokens that
// equal or prefix an indexed name resolve through the trie; only the
// mid-word case needs the term scan.
func overlapsKnownTerm(cons *vocab.Consolidated, cat category.Category, tok string) bool {
	err := cons.VisitPrefix(tok, func(_ string, entries []vocab.IndexEntry) error {
		for _, entry := range entries {
			if entry.Category == cat {
				return errOverlapFound
			}
		}
		return nil
	})
	if errors.Is(err, errOverlapFound) {
		return true
	}
	for _, t := range cons.Terms(cat) {
		for _, name := range termNames(t) {
			if strings.Contains(name, tok) || strings.Contains(tok, name) {
				return true
			}
		}
	}
	return false
}

// LearnedPatterns exposes a copy of the learned-pattern table for the
// debug API.
func (e *Engine) LearnedPatterns() map[string]category.Category {
	out := make(map[string]category.Category, len(e.learnedPatterns))
	for k, v := range e.learnedPatterns {
		out[k] = v
	}
	return out
}
