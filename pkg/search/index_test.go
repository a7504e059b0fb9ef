package search

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xshadow-dev/skipwise-sub000/pkg/config"
)

type expense struct {
	Description string
	Note        string
}

func descField() Field {
	return Field{
		Name:   "description",
		Weight: 1.0,
		Extract: func(item any) (string, error) {
			return item.(expense).Description, nil
		},
	}
}

func noteField() Field {
	return Field{
		Name:   "note",
		Weight: 0.5,
		Extract: func(item any) (string, error) {
			return item.(expense).Note, nil
		},
	}
}

func asItems(expenses ...expense) []any {
	out := make([]any, len(expenses))
	for i, e := range expenses {
		out[i] = e
	}
	return out
}

func TestSearchPassThroughBrowse(t *testing.T) {
	ix := New([]Field{descField()}, config.SearchConfig{})
	items := asItems(
		expense{Description: "Coffee at Starbucks"},
		expense{Description: "Grocery run"},
		expense{Description: "Gym membership"},
	)

	for _, query := range []string{"", " ", "x"} {
		hits := ix.Search(items, query)
		require.Len(t, hits, len(items), "query %q", query)
		for i, h := range hits {
			assert.Equal(t, i, h.Index)
			assert.Equal(t, 1.0, h.Score)
		}
	}
}

func TestSearchSubstringSpans(t *testing.T) {
	ix := New([]Field{descField()}, config.SearchConfig{})
	items := asItems(expense{Description: "Coffee at Starbucks"})

	hits := ix.Search(items, "Starbucks")
	require.Len(t, hits, 1)
	assert.InDelta(t, 0.8, hits[0].Score, 1e-9)

	spans := hits[0].Highlights["description"]
	require.Len(t, spans, 1)
	original := []rune("Coffee at Starbucks")
	assert.Equal(t, "Starbucks", string(original[spans[0].Start:spans[0].End]))
}

func TestSearchTypoTolerance(t *testing.T) {
	ix := New([]Field{descField()}, config.SearchConfig{})
	items := asItems(
		expense{Description: "Coffee at Starbucks"},
		expense{Description: "Grocery run"},
	)

	// Strict search finds nothing for the misspelling.
	require.Empty(t, ix.Search(items, "stabucks"))

	hits := ix.SearchWithTypoTolerance(items, "stabucks", 2)
	require.Len(t, hits, 1)
	assert.Equal(t, 0, hits[0].Index)
	// One edit against "starbucks", discounted for the loose pass.
	assert.InDelta(t, (1.0-1.0/9.0)*0.7, hits[0].Score, 1e-9)

	spans := hits[0].Highlights["description"]
	require.Len(t, spans, 1)
	original := []rune("Coffee at Starbucks")
	assert.Equal(t, "Starbucks", string(original[spans[0].Start:spans[0].End]))
}

func TestSearchTypoToleranceNeverShrinks(t *testing.T) {
	ix := New([]Field{descField()}, config.SearchConfig{})
	items := asItems(
		expense{Description: "Coffee at Starbucks"},
		expense{Description: "Grocery run"},
		expense{Description: "Taxi home"},
	)

	for _, query := range []string{"coffee", "grocery", "stabucks", "nothing at all"} {
		strict := ix.Search(items, query)
		loose := ix.SearchWithTypoTolerance(items, query, 2)
		assert.GreaterOrEqual(t, len(loose), len(strict), "query %q", query)
		if len(strict) > 0 {
			assert.Equal(t, strict, loose, "query %q: strict results must pass through", query)
		}
	}
}

func TestSearchTypoToleranceRespectsMaxTypos(t *testing.T) {
	ix := New([]Field{descField()}, config.SearchConfig{})
	items := asItems(expense{Description: "Coffee at Starbucks"})

	// "stbucks" is two edits from "starbucks"; one allowed typo is not
	// enough, two are.
	assert.Empty(t, ix.SearchWithTypoTolerance(items, "stbucks", 1))
	assert.Len(t, ix.SearchWithTypoTolerance(items, "stbucks", 2), 1)
}

func TestSearchWeightedFields(t *testing.T) {
	ix := New([]Field{descField(), noteField()}, config.SearchConfig{})
	items := asItems(
		expense{Description: "Coffee at Starbucks", Note: "with sam"},
		expense{Description: "Taxi home", Note: "after coffee"},
	)

	hits := ix.Search(items, "coffee")
	require.Len(t, hits, 1, "a note-only match must stay under the score threshold")
	assert.Equal(t, 0, hits[0].Index)
	// Substring in the full-weight field, averaged over two fields.
	assert.InDelta(t, 0.8/2, hits[0].Score, 1e-9)
}

func TestSearchExtractorErrorSkipsField(t *testing.T) {
	broken := Field{
		Name:   "note",
		Weight: 1.0,
		Extract: func(item any) (string, error) {
			return "", errors.New("no note")
		},
	}
	ix := New([]Field{descField(), broken}, config.SearchConfig{})
	items := asItems(expense{Description: "Coffee at Starbucks"})

	hits := ix.Search(items, "coffee")
	require.Len(t, hits, 1, "a broken field must not sink the whole item")
	assert.InDelta(t, 0.8/2, hits[0].Score, 1e-9)
}

func TestSearchStableTieOrder(t *testing.T) {
	ix := New([]Field{descField()}, config.SearchConfig{})
	items := asItems(
		expense{Description: "coffee one"},
		expense{Description: "unrelated"},
		expense{Description: "coffee two"},
	)

	hits := ix.Search(items, "coffee")
	require.Len(t, hits, 2)
	assert.Equal(t, 0, hits[0].Index)
	assert.Equal(t, 2, hits[1].Index)
}

func TestSearchCapsResults(t *testing.T) {
	ix := New([]Field{descField()}, config.SearchConfig{MaxResults: 2})
	items := asItems(
		expense{Description: "coffee a"},
		expense{Description: "coffee b"},
		expense{Description: "coffee c"},
	)

	hits := ix.Search(items, "coffee")
	assert.Len(t, hits, 2)
}

func TestSearchCaseFoldingPreservesOffsets(t *testing.T) {
	ix := New([]Field{descField()}, config.SearchConfig{})
	items := asItems(expense{Description: "Café COFFEE Überfahrt"})

	hits := ix.Search(items, "coffee")
	require.Len(t, hits, 1)
	spans := hits[0].Highlights["description"]
	require.Len(t, spans, 1)
	original := []rune("Café COFFEE Überfahrt")
	assert.Equal(t, "COFFEE", string(original[spans[0].Start:spans[0].End]))
}
