package classify

import (
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/0xshadow-dev/skipwise-sub000/pkg/textscore"
)

// staticAbbreviations maps common shorthand tokens to their expansions.
// Learned abbreviations live beside these and shadow nothing; both tables
// contribute expansions.
var staticAbbreviations = map[string][]string{
	"sbux":  {"starbucks"},
	"mcd":   {"mcdonalds"},
	"bk":    {"burger king"},
	"kfc":   {"kfc"},
	"dd":    {"dunkin"},
	"amzn":  {"amazon"},
	"wmt":   {"walmart"},
	"tj":    {"trader joes"},
	"wf":    {"whole foods"},
	"gro":   {"groceries"},
	"bfast": {"breakfast"},
	"appt":  {"appointment"},
	"rx":    {"prescription"},
	"gs":    {"gas station"},
	"uber":  {"uber"},
	"sub":   {"subscription", "subway sandwiches"},
	"fb":    {"facebook marketplace"},
	"yt":    {"youtube premium"},
}

// Expander produces candidate rewrites of a description by substituting
// known abbreviations token by token. The unmodified input is always the
// first variant returned, so a bad expansion can never lose the original.
type Expander struct {
	static  map[string][]string
	learned map[string][]string
}

// NewExpander builds an expander over the static table.
func NewExpander() *Expander {
	return &Expander{
		static:  staticAbbreviations,
		learned: make(map[string][]string),
	}
}

// LearnAbbreviation registers token as shorthand for expansion. Duplicate
// and empty registrations are no-ops.
func (e *Expander) LearnAbbreviation(token, expansion string) {
	token = textscore.Normalize(token)
	expansion = textscore.Normalize(expansion)
	if token == "" || expansion == "" || token == expansion {
		return
	}
	for _, existing := range e.learned[token] {
		if existing == expansion {
			return
		}
	}
	e.learned[token] = append(e.learned[token], expansion)
	sort.Strings(e.learned[token])
	log.Debugf("learned abbreviation %q -> %q", token, expansion)
}

// Knows reports whether the token has any static or learned expansion.
func (e *Expander) Knows(token string) bool {
	token = textscore.Normalize(token)
	if len(e.static[token]) > 0 {
		return true
	}
	return len(e.learned[token]) > 0
}

func (e *Expander) expansionsFor(token string) []string {
	out := append([]string(nil), e.static[token]...)
	out = append(out, e.learned[token]...)
	return out
}

// Expand returns the original text plus one variant per applicable token
// expansion, deduplicated, original first.
func (e *Expander) Expand(text string) []string {
	variants := []string{text}
	seen := map[string]struct{}{text: {}}

	tokens := strings.Fields(text)
	for i, tok := range tokens {
		for _, expansion := range e.expansionsFor(tok) {
			rewritten := make([]string, len(tokens))
			copy(rewritten, tokens)
			rewritten[i] = expansion
			variant := strings.Join(rewritten, " ")
			if _, ok := seen[variant]; ok {
				continue
			}
			seen[variant] = struct{}{}
			variants = append(variants, variant)
		}
	}
	return variants
}
