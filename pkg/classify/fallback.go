package classify

import (
	"fmt"
	"regexp"

	"github.com/0xshadow-dev/skipwise-sub000/pkg/category"
)

// Fallback heuristics fire only when the multi-algorithm sweep clears no
// candidate above the confidence floor. They guess, cheaply and at low
// fixed confidence, rather than refuse.

var amountPattern = regexp.MustCompile(`(?:[$€£₹]\s*\d+(?:\.\d{1,2})?)|\b\d+(?:\.\d{1,2})?\s*(?:bucks|dollars|usd|eur|gbp|inr)\b`)

const (
	amountFallbackConfidence = 0.2
	timeFallbackConfidence   = 0.25
	catchAllConfidence       = 0.02
)

func (e *Engine) fallback(original, norm string, hour int, fused []Candidate, trace []string) Result {
	alternatives := capAlternatives(fused, e.cfg.MaxAlternatives)

	if amountPattern.MatchString(original) || amountPattern.MatchString(norm) {
		trace = append(trace, "fallback: amount pattern")
		return Result{
			Category:     category.Shopping,
			Confidence:   amountFallbackConfidence,
			Explanation:  "only an amount was recognized, guessing " + category.Shopping.Name,
			Alternatives: alternatives,
			Trace:        trace,
		}
	}

	if cat, ok := e.context.TimeGuess(hour); ok {
		trace = append(trace, fmt.Sprintf("fallback: time of day (%02d:00)", hour))
		return Result{
			Category:     cat,
			Confidence:   timeFallbackConfidence,
			Explanation:  fmt.Sprintf("no vocabulary match, %02d:00 suggests %s", hour, cat),
			Alternatives: alternatives,
			Trace:        trace,
		}
	}

	trace = append(trace, "fallback: catch-all")
	return Result{
		Category:     category.Miscellaneous,
		Confidence:   catchAllConfidence,
		Explanation:  "no confident match, defaulting to " + category.Miscellaneous.Name,
		Alternatives: alternatives,
		Trace:        trace,
	}
}
