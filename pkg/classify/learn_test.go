package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xshadow-dev/skipwise-sub000/pkg/category"
	"github.com/0xshadow-dev/skipwise-sub000/pkg/vocab"
)

func TestLearnFromCorrection(t *testing.T) {
	store := vocab.NewStore()
	var sinkCalls int
	e := New(store, nil, WithSink(func(term string, cat category.Category) {
		sinkCalls++
		assert.Equal(t, "xyz widget", term)
		assert.Equal(t, category.Electronics, cat)
	}))

	e.LearnFromCorrection("XYZ Widget", category.Electronics)

	res := e.ClassifyAt("xyz widget", 12)
	assert.Equal(t, category.Electronics, res.Category)
	assert.GreaterOrEqual(t, res.Confidence, 0.95)
	assert.Equal(t, 1, sinkCalls)

	// Different punctuation and case normalize onto the learned pattern.
	res = e.ClassifyAt("  xyz, widget! ", 12)
	assert.Equal(t, category.Electronics, res.Category)
}

func TestLearnFromCorrectionIdempotent(t *testing.T) {
	store := vocab.NewStore()
	var sinkCalls int
	e := New(store, nil, WithSink(func(string, category.Category) { sinkCalls++ }))

	e.LearnFromCorrection("xyz widget", category.Electronics)
	countAfterFirst := store.Consolidated().TermCount()
	patternsAfterFirst := e.LearnedPatterns()

	for i := 0; i < 100; i++ {
		e.LearnFromCorrection("xyz widget", category.Electronics)
	}

	assert.Equal(t, countAfterFirst, store.Consolidated().TermCount())
	assert.Equal(t, patternsAfterFirst, e.LearnedPatterns())
	assert.Equal(t, 1, sinkCalls, "sink must fire only when state changes")
}

func TestLearnFromCorrectionEmptyInput(t *testing.T) {
	store := vocab.NewStore()
	e := New(store, nil)
	before := store.Consolidated().TermCount()

	e.LearnFromCorrection("", category.Coffee)
	e.LearnFromCorrection("   ", category.Coffee)
	e.LearnFromCorrection("widget", category.Category{})

	assert.Equal(t, before, store.Consolidated().TermCount())
	assert.Empty(t, e.LearnedPatterns())
}

func TestLearnFromCorrectionRegistersAbbreviations(t *testing.T) {
	store := vocab.NewStore()
	x := NewExpander()
	e := New(store, nil, WithExpander(x))

	e.LearnFromCorrection("xyz widget", category.Electronics)

	// "xyz" is short and unknown, so it becomes shorthand for the
	// category's strongest term. "widget" is too long to qualify.
	assert.True(t, x.Knows("xyz"))
	assert.False(t, x.Knows("widget"))
}

func TestLearnFromCorrectionSkipsKnownTermPrefixes(t *testing.T) {
	store := vocab.NewStore()
	x := NewExpander()
	e := New(store, nil, WithExpander(x))

	e.LearnFromCorrection("star mug", category.Coffee)

	// "star" prefixes the indexed "starbucks", so it never becomes
	// shorthand; "mug" overlaps nothing and does.
	assert.False(t, x.Knows("star"))
	assert.True(t, x.Knows("mug"))
}

func TestLearnFromCorrectionRecategorizes(t *testing.T) {
	store := vocab.NewStore()
	e := New(store, nil)

	e.LearnFromCorrection("corner kiosk", category.Coffee)
	require.Equal(t, category.Coffee, e.ClassifyAt("corner kiosk", 12).Category)

	// A later correction for the same input wins.
	e.LearnFromCorrection("corner kiosk", category.Groceries)
	assert.Equal(t, category.Groceries, e.ClassifyAt("corner kiosk", 12).Category)
}
