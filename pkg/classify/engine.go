package classify

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/0xshadow-dev/skipwise-sub000/internal/utils"
	"github.com/0xshadow-dev/skipwise-sub000/pkg/category"
	"github.com/0xshadow-dev/skipwise-sub000/pkg/config"
	"github.com/0xshadow-dev/skipwise-sub000/pkg/textscore"
	"github.com/0xshadow-dev/skipwise-sub000/pkg/vocab"
)

// LearnSink receives (term, category) pairs whenever a learning event
// changes vocabulary state. The persistence collaborator hangs off this.
type LearnSink func(term string, cat category.Category)

// Engine is the classification pipeline. Reads are safe to share across
// goroutines; LearnFromCorrection mutates shared state and must be
// serialized by the caller.
type Engine struct {
	store    *vocab.Store
	expander *Expander
	context  *ContextAnalyzer
	cfg      config.MatchingConfig

	// learnedPatterns maps a normalized input verbatim onto the category
	// a correction assigned it.
	learnedPatterns map[string]category.Category

	sink LearnSink
	now  func() time.Time
}

// Option configures New.
type Option func(*Engine)

// WithSink installs the persistence collaborator callback.
func WithSink(sink LearnSink) Option {
	return func(e *Engine) { e.sink = sink }
}

// WithClock overrides the wall clock, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithExpander replaces the default abbreviation expander.
func WithExpander(x *Expander) Option {
	return func(e *Engine) { e.expander = x }
}

// New builds an engine over the given vocabulary store and config.
func New(store *vocab.Store, cfg *config.Config, opts ...Option) *Engine {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	e := &Engine{
		store:           store,
		expander:        NewExpander(),
		context:         NewContextAnalyzer(cfg.Context),
		cfg:             cfg.Matching,
		learnedPatterns: make(map[string]category.Category),
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Classify runs the full pipeline at the current wall-clock hour.
func (e *Engine) Classify(text string) Result {
	return e.ClassifyAt(text, e.now().Hour())
}

// ClassifyAt runs the pipeline at an explicit hour. Output is
// deterministic for a fixed vocabulary snapshot and hour. It never fails:
// inputs nothing matches fall through to contextual guesses and finally
// the catch-all category.
func (e *Engine) ClassifyAt(text string, hour int) Result {
	var trace []string
	norm := textscore.Normalize(text)
	if norm == "" {
		return Result{
			Category:    category.Miscellaneous,
			Confidence:  0,
			Explanation: "empty input, defaulting to " + category.Miscellaneous.Name,
			Trace:       append(trace, "empty input short-circuit"),
		}
	}
	trace = append(trace, fmt.Sprintf("normalized: %q", norm))

	// Stage 1: learned pattern lookup is terminal.
	if cat, ok := e.learnedPatterns[norm]; ok {
		trace = append(trace, "learned pattern hit")
		return Result{
			Category:    cat,
			Confidence:  e.cfg.LearnedConfidence,
			Explanation: fmt.Sprintf("previously corrected to %s", cat),
			Trace:       trace,
		}
	}

	// Stage 2: abbreviation expansion, original always included.
	variants := e.expander.Expand(norm)
	trace = append(trace, fmt.Sprintf("%d variant(s) after expansion", len(variants)))

	// Stage 3: exact/substring against the vocabulary is terminal.
	if cand, ok := e.exactMatch(variants); ok {
		trace = append(trace, fmt.Sprintf("exact/substring hit on %q", cand.Term))
		return Result{
			Category:    cand.Category,
			Confidence:  cand.Confidence,
			Explanation: cand.Note,
			Trace:       trace,
		}
	}

	// Stage 4: full multi-algorithm sweep.
	candidates := e.sweep(variants, norm, hour)
	trace = append(trace, fmt.Sprintf("sweep produced %d raw candidate(s)", len(candidates)))

	// Stage 5+6: fuse and rank.
	fused := e.fuse(candidates)
	trace = append(trace, fmt.Sprintf("fused into %d categor(ies)", len(fused)))

	if len(fused) > 0 && fused[0].Confidence >= e.cfg.MinConfidence {
		top := fused[0]
		return Result{
			Category:     top.Category,
			Confidence:   top.Confidence,
			Explanation:  top.Note,
			Alternatives: capAlternatives(fused[1:], e.cfg.MaxAlternatives),
			Trace:        trace,
		}
	}

	// Stage 7: low-confidence fallbacks, then catch-all.
	return e.fallback(text, norm, hour, fused, trace)
}

// exactMatch looks every variant up against the consolidated vocabulary:
// whole-variant trie lookups first, falling back to the whole-word term
// containment scan only when no variant is itself an indexed name.
func (e *Engine) exactMatch(variants []string) (Candidate, bool) {
	cons := e.store.Consolidated()
	best := Candidate{}
	found := false

	for _, variant := range variants {
		for _, entry := range cons.Lookup(variant) {
			cand := e.exactCandidate(variant, entry, 1.0)
			if !found || betterCandidate(cand, best) {
				best, found = cand, true
			}
		}
	}
	if found {
		return best, true
	}

	for _, variant := range variants {
		for _, cat := range cons.Categories() {
			for _, term := range cons.Terms(cat) {
				for _, name := range termNames(term) {
					score := containmentScore(variant, name)
					if score <= 0 {
						continue
					}
					cand := e.exactCandidate(variant, vocab.IndexEntry{Category: cat, Term: term}, score)
					cand.Matched = name
					if !found || betterCandidate(cand, best) {
						best, found = cand, true
					}
				}
			}
		}
	}
	return best, found
}

func (e *Engine) exactCandidate(variant string, entry vocab.IndexEntry, score float64) Candidate {
	return Candidate{
		Category:   entry.Category,
		RawScore:   utils.Clamp01(score * entry.Term.Weight),
		Confidence: e.cfg.ExactConfidence,
		Term:       entry.Term.Canonical,
		Matched:    entry.Term.Canonical,
		Original:   variant,
		Algorithm:  AlgoExact,
		Note:       fmt.Sprintf("matched %q directly", entry.Term.Canonical),
	}
}

// sweep runs the fuzzy, phonetic, and semantic matchers over every
// variant token against every term, plus the context analyzer.
func (e *Engine) sweep(variants []string, norm string, hour int) []Candidate {
	cons := e.store.Consolidated()
	var out []Candidate

	for _, variant := range variants {
		tokens := strings.Fields(variant)
		for _, cat := range cons.Categories() {
			for _, term := range cons.Terms(cat) {
				for _, name := range termNames(term) {
					out = append(out, e.matchTerm(tokens, variant, cat, term, name)...)
				}
			}
		}
	}

	// Context boosts are additive: every band and rule that fires for a
	// category stacks into one candidate.
	fired, total := e.context.Boosts(norm, hour)
	reasons := make(map[category.Category][]string)
	var boosted []category.Category
	for _, b := range fired {
		if _, ok := reasons[b.Category]; !ok {
			boosted = append(boosted, b.Category)
		}
		reasons[b.Category] = append(reasons[b.Category], b.Reason)
	}
	for _, cat := range boosted {
		sum := utils.Clamp01(total[cat])
		out = append(out, Candidate{
			Category:   cat,
			RawScore:   sum,
			Confidence: sum,
			Original:   norm,
			Algorithm:  AlgoContext,
			Note:       strings.Join(reasons[cat], " + "),
		})
	}
	return out
}

func (e *Engine) matchTerm(tokens []string, variant string, cat category.Category, term vocab.Term, name string) []Candidate {
	var out []Candidate
	candidatesFrom := tokens
	// Multi-word terms compare against the whole variant instead of
	// token by token.
	if strings.ContainsRune(name, ' ') {
		candidatesFrom = []string{variant}
	}

	for _, tok := range candidatesFrom {
		if len(tok) < 2 {
			continue
		}
		if textscore.WithinEditLimit(tok, name) {
			score := textscore.EditDistanceScore(tok, name)
			out = append(out, Candidate{
				Category:   cat,
				RawScore:   utils.Clamp01(score),
				Confidence: utils.Clamp01(score * term.Weight * e.cfg.FuzzyDiscount),
				Term:       term.Canonical,
				Matched:    tok,
				Original:   variant,
				Algorithm:  AlgoFuzzy,
				Note:       fmt.Sprintf("%q is a close spelling of %q", tok, name),
			})
		}
		if p := textscore.PhoneticSimilarity(tok, name); p > 0 {
			out = append(out, Candidate{
				Category:   cat,
				RawScore:   utils.Clamp01(p),
				Confidence: utils.Clamp01(p * term.Weight * e.cfg.PhoneticDiscount),
				Term:       term.Canonical,
				Matched:    tok,
				Original:   variant,
				Algorithm:  AlgoPhonetic,
				Note:       fmt.Sprintf("%q sounds like %q", tok, name),
			})
		}
		if s := textscore.SemanticSimilarity(tok, name); s > 0 {
			out = append(out, Candidate{
				Category:   cat,
				RawScore:   utils.Clamp01(s),
				Confidence: utils.Clamp01(s * term.Weight * e.cfg.SemanticDiscount),
				Term:       term.Canonical,
				Matched:    tok,
				Original:   variant,
				Algorithm:  AlgoSemantic,
				Note:       fmt.Sprintf("%q is semantically near %q", tok, name),
			})
		}
	}
	return out
}

// fuse groups candidates by category, keeps the best per category, and
// rewards agreement between distinct algorithms with a multiplicative
// bonus capped at 1.0.
func (e *Engine) fuse(candidates []Candidate) []Candidate {
	type group struct {
		best  Candidate
		algos map[Algorithm]struct{}
	}
	groups := make(map[category.Category]*group)
	for _, c := range candidates {
		g := groups[c.Category]
		if g == nil {
			g = &group{best: c, algos: map[Algorithm]struct{}{}}
			groups[c.Category] = g
		} else if betterCandidate(c, g.best) {
			g.best = c
		}
		g.algos[c.Algorithm] = struct{}{}
	}

	out := make([]Candidate, 0, len(groups))
	for _, g := range groups {
		fusedConf := g.best.Confidence
		if n := len(g.algos); n >= 2 {
			fusedConf = utils.Clamp01(fusedConf * (1 + e.cfg.AgreementBonus*float64(n-1)))
			g.best.Note = fmt.Sprintf("%s (%d signals agree)", g.best.Note, n)
		}
		g.best.Confidence = fusedConf
		out = append(out, g.best)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Confidence != out[j].Confidence {
			return out[i].Confidence > out[j].Confidence
		}
		return out[i].Category.Name < out[j].Category.Name
	})
	return out
}

func capAlternatives(rest []Candidate, maxAlt int) []Candidate {
	if maxAlt <= 0 || len(rest) == 0 {
		return nil
	}
	if len(rest) > maxAlt {
		rest = rest[:maxAlt]
	}
	return append([]Candidate(nil), rest...)
}

func betterCandidate(a, b Candidate) bool {
	if a.Confidence != b.Confidence {
		return a.Confidence > b.Confidence
	}
	if a.RawScore != b.RawScore {
		return a.RawScore > b.RawScore
	}
	// Deterministic tie-break so repeated calls agree.
	if a.Category.Name != b.Category.Name {
		return a.Category.Name < b.Category.Name
	}
	return a.Term < b.Term
}

// containmentScore reports a positive score when name appears as a whole
// word or phrase inside variant (or vice versa), 0 otherwise.
func containmentScore(variant, name string) float64 {
	if variant == name {
		return 1.0
	}
	padded := " " + variant + " "
	if strings.Contains(padded, " "+name+" ") {
		return textscore.ExactOrSubstringScore(variant, name)
	}
	return 0
}

func termNames(t vocab.Term) []string {
	if len(t.Variations) == 0 {
		return []string{t.Canonical}
	}
	out := make([]string, 0, 1+len(t.Variations))
	out = append(out, t.Canonical)
	out = append(out, t.Variations...)
	return out
}
