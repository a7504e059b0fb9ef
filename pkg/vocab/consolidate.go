package vocab

import (
	"sort"

	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/0xshadow-dev/skipwise-sub000/pkg/category"
	"github.com/0xshadow-dev/skipwise-sub000/pkg/textscore"
)

// Consolidated is the immutable merged snapshot of every source. For each
// (category, canonical term) pair there is exactly one entry carrying the
// weight of the highest-priority source that produced it, with variation
// and context lists unioned across all sources. Term lists are sorted so
// consolidating the same sources twice yields identical snapshots.
type Consolidated struct {
	terms map[category.Category][]Term
	index *patricia.Trie
}

// IndexEntry associates a normalized trie key with the term and category
// it belongs to. One key can serve several categories.
type IndexEntry struct {
	Category category.Category
	Term     Term
}

// Consolidate folds the sources, highest priority first, into one
// snapshot. Inputs are not mutated.
func Consolidate(sources []Source) *Consolidated {
	ordered := make([]Source, len(sources))
	copy(ordered, sources)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Priority != ordered[j].Priority {
			return ordered[i].Priority > ordered[j].Priority
		}
		return ordered[i].Name < ordered[j].Name
	})

	merged := make(map[category.Category]map[string]*Term)

	for _, src := range ordered {
		for cat, list := range src.Terms {
			byKey := merged[cat]
			if byKey == nil {
				byKey = make(map[string]*Term)
				merged[cat] = byKey
			}
			for _, t := range list {
				key := textscore.Normalize(t.Canonical)
				if key == "" {
					continue
				}
				if existing, ok := byKey[key]; ok {
					// Lower priority: keep the winning weight and
					// source, union the lists.
					existing.Variations = append(existing.Variations, t.Variations...)
					existing.ContextClues = append(existing.ContextClues, t.ContextClues...)
					continue
				}
				added := Term{
					Canonical:    key,
					Variations:   normalizeAll(t.Variations),
					Weight:       t.Weight,
					Source:       t.Source,
					ContextClues: append([]string(nil), t.ContextClues...),
					Region:       t.Region,
				}
				byKey[key] = &added
			}
		}
	}

	c := &Consolidated{
		terms: make(map[category.Category][]Term, len(merged)),
		index: patricia.NewTrie(),
	}
	for cat, byKey := range merged {
		list := make([]Term, 0, len(byKey))
		for _, t := range byKey {
			t.Variations = dedupeSorted(normalizeAll(t.Variations))
			t.ContextClues = dedupeSorted(t.ContextClues)
			list = append(list, *t)
		}
		sort.Slice(list, func(i, j int) bool { return list[i].Canonical < list[j].Canonical })
		c.terms[cat] = list

		for _, t := range list {
			c.indexTerm(cat, t, t.Canonical)
			for _, v := range t.Variations {
				c.indexTerm(cat, t, v)
			}
		}
	}
	return c
}

func (c *Consolidated) indexTerm(cat category.Category, t Term, key string) {
	if key == "" {
		return
	}
	prefix := patricia.Prefix(key)
	entry := IndexEntry{Category: cat, Term: t}
	if item := c.index.Get(prefix); item != nil {
		entries := item.([]IndexEntry)
		for _, e := range entries {
			if e.Category == cat && e.Term.Canonical == t.Canonical {
				return
			}
		}
		c.index.Insert(prefix, append(entries, entry))
		return
	}
	c.index.Insert(prefix, []IndexEntry{entry})
}

// Lookup returns the index entries whose normalized term or variation
// equals text exactly.
func (c *Consolidated) Lookup(text string) []IndexEntry {
	item := c.index.Get(patricia.Prefix(text))
	if item == nil {
		return nil
	}
	return item.([]IndexEntry)
}

// VisitPrefix walks every indexed term that starts with the given prefix.
func (c *Consolidated) VisitPrefix(prefix string, fn func(term string, entries []IndexEntry) error) error {
	return c.index.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
		return fn(string(p), item.([]IndexEntry))
	})
}

// Terms returns the consolidated term list for one category. The returned
// slice is shared; callers must not mutate it.
func (c *Consolidated) Terms(cat category.Category) []Term {
	return c.terms[cat]
}

// Categories returns every category present in the snapshot, sorted by
// name for deterministic iteration.
func (c *Consolidated) Categories() []category.Category {
	out := make([]category.Category, 0, len(c.terms))
	for cat := range c.terms {
		out = append(out, cat)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Kind < out[j].Kind
	})
	return out
}

// TermCount reports the total number of consolidated terms.
func (c *Consolidated) TermCount() int {
	n := 0
	for _, list := range c.terms {
		n += len(list)
	}
	return n
}

// HasTerm reports whether the category carries the normalized text as a
// canonical term or variation.
func (c *Consolidated) HasTerm(cat category.Category, text string) bool {
	for _, e := range c.Lookup(textscore.Normalize(text)) {
		if e.Category == cat {
			return true
		}
	}
	return false
}

func normalizeAll(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, s := range in {
		if n := textscore.Normalize(s); n != "" {
			out = append(out, n)
		}
	}
	return out
}

func dedupeSorted(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	sort.Strings(in)
	out := in[:0]
	var last string
	for i, s := range in {
		if i == 0 || s != last {
			out = append(out, s)
		}
		last = s
	}
	return out
}
