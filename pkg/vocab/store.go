package vocab

import (
	"strings"

	"github.com/charmbracelet/log"

	"github.com/0xshadow-dev/skipwise-sub000/pkg/category"
	"github.com/0xshadow-dev/skipwise-sub000/pkg/textscore"
)

// Store owns the ordered source list and the consolidated snapshot derived
// from it. Every source is read-only after construction except the learned
// source, which AddLearnedTerm appends to. Learning mutates shared state
// and must be serialized externally; read paths are safe to share.
type Store struct {
	sources      []Source
	learned      Source
	consolidated *Consolidated
}

// StoreOption configures NewStore.
type StoreOption func(*Store)

// WithSources replaces the builtin curated stack.
func WithSources(sources ...Source) StoreOption {
	return func(s *Store) { s.sources = sources }
}

// WithExtraSources appends to the curated stack, e.g. a CustomSource built
// from user-defined categories.
func WithExtraSources(sources ...Source) StoreOption {
	return func(s *Store) { s.sources = append(s.sources, sources...) }
}

// WithLearned seeds the learned source from a previously persisted
// snapshot (see DecodeLearned).
func WithLearned(learned Source) StoreOption {
	return func(s *Store) {
		learned.Name = "learned"
		learned.Priority = PriorityLearned
		s.learned = learned
	}
}

// NewStore builds a store over the builtin curated sources plus any
// options, and consolidates once.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		sources: BuiltinSources(),
		learned: Source{
			Name:     "learned",
			Priority: PriorityLearned,
			Terms:    map[category.Category][]Term{},
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.learned.Terms == nil {
		s.learned.Terms = map[category.Category][]Term{}
	}
	s.reconsolidate()
	return s
}

// Consolidated returns the current merged snapshot. The snapshot itself is
// immutable; learning swaps in a fresh one.
func (s *Store) Consolidated() *Consolidated {
	return s.consolidated
}

// Learned returns a copy of the learned source for persistence.
func (s *Store) Learned() Source {
	out := Source{Name: s.learned.Name, Priority: s.learned.Priority, Terms: map[category.Category][]Term{}}
	for cat, list := range s.learned.Terms {
		out.Terms[cat] = append([]Term(nil), list...)
	}
	return out
}

// AddLearnedTerm inserts the term into the learned source at the learned
// weight and reconsolidates. Case-insensitive duplicates for the category
// are rejected; empty input is a no-op. Returns whether anything changed.
func (s *Store) AddLearnedTerm(term string, cat category.Category) bool {
	norm := textscore.Normalize(term)
	if norm == "" || cat.IsZero() {
		log.Debugf("ignoring learned term %q for %q", term, cat)
		return false
	}
	for _, existing := range s.learned.Terms[cat] {
		if strings.EqualFold(existing.Canonical, norm) {
			return false
		}
	}
	s.learned.Terms[cat] = append(s.learned.Terms[cat], Term{
		Canonical: norm,
		Weight:    WeightLearned,
		Source:    s.learned.Name,
	})
	s.reconsolidate()
	log.Debugf("learned term %q -> %s", norm, cat)
	return true
}

func (s *Store) reconsolidate() {
	all := make([]Source, 0, len(s.sources)+1)
	all = append(all, s.sources...)
	all = append(all, s.learned)
	s.consolidated = Consolidate(all)
}
