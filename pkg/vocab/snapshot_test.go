package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xshadow-dev/skipwise-sub000/pkg/category"
)

func TestLearnedSnapshotRoundtrip(t *testing.T) {
	s := NewStore()
	require.True(t, s.AddLearnedTerm("blue bottle", category.Coffee))
	require.True(t, s.AddLearnedTerm("night bus", category.Transport))
	require.True(t, s.AddLearnedTerm("dog treats", category.Custom("Pets")))

	data, err := s.EncodeLearned()
	require.NoError(t, err)
	require.NotEmpty(t, data)

	decoded, err := DecodeLearned(data)
	require.NoError(t, err)
	assert.Equal(t, "learned", decoded.Name)
	assert.Equal(t, PriorityLearned, decoded.Priority)

	restored := NewStore(WithLearned(decoded))
	assert.True(t, restored.Consolidated().HasTerm(category.Coffee, "blue bottle"))
	assert.True(t, restored.Consolidated().HasTerm(category.Transport, "night bus"))
	assert.True(t, restored.Consolidated().HasTerm(category.Custom("Pets"), "dog treats"))
}

func TestLearnedSnapshotStableBytes(t *testing.T) {
	s := NewStore()
	require.True(t, s.AddLearnedTerm("blue bottle", category.Coffee))
	require.True(t, s.AddLearnedTerm("night bus", category.Transport))

	first, err := s.EncodeLearned()
	require.NoError(t, err)
	second, err := s.EncodeLearned()
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Round-tripping through decode must reproduce the same bytes.
	decoded, err := DecodeLearned(first)
	require.NoError(t, err)
	again, err := NewStore(WithLearned(decoded)).EncodeLearned()
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

func TestDecodeLearnedRejectsGarbage(t *testing.T) {
	_, err := DecodeLearned([]byte("not msgpack at all"))
	assert.Error(t, err)
}

func TestDecodeLearnedClampsWeights(t *testing.T) {
	src := Source{Terms: map[category.Category][]Term{
		category.Coffee: {{Canonical: "kiosk", Weight: 7.5}},
	}}
	s := NewStore(WithLearned(src))
	data, err := s.EncodeLearned()
	require.NoError(t, err)

	decoded, err := DecodeLearned(data)
	require.NoError(t, err)
	require.Len(t, decoded.Terms[category.Coffee], 1)
	assert.Equal(t, WeightLearned, decoded.Terms[category.Coffee][0].Weight)
}
