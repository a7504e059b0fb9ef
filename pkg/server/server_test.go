package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xshadow-dev/skipwise-sub000/pkg/config"
	"github.com/0xshadow-dev/skipwise-sub000/pkg/search"
)

func TestItemFields(t *testing.T) {
	fields := ItemFields([]string{"description", "note"}, []float64{1.0, 0.5})
	require.Len(t, fields, 2)
	assert.Equal(t, "description", fields[0].Name)
	assert.Equal(t, 1.0, fields[0].Weight)
	assert.Equal(t, 0.5, fields[1].Weight)

	desc, err := fields[0].Extract([]string{"Coffee at Starbucks", "with sam"})
	require.NoError(t, err)
	assert.Equal(t, "Coffee at Starbucks", desc)

	note, err := fields[1].Extract([]string{"Coffee at Starbucks", "with sam"})
	require.NoError(t, err)
	assert.Equal(t, "with sam", note)
}

func TestItemFieldsMissingWeightDefaults(t *testing.T) {
	fields := ItemFields([]string{"description", "note"}, []float64{0.9})
	require.Len(t, fields, 2)
	assert.Equal(t, 0.9, fields[0].Weight)
	assert.Equal(t, 1.0, fields[1].Weight, "missing weights default to full weight")
}

func TestItemFieldsExtractorErrors(t *testing.T) {
	fields := ItemFields([]string{"description", "note"}, nil)

	_, err := fields[1].Extract([]string{"only one value"})
	assert.Error(t, err, "short items must error instead of panicking")

	_, err = fields[0].Extract(42)
	assert.Error(t, err)
}

func TestItemFieldsDriveSearch(t *testing.T) {
	fields := ItemFields([]string{"description", "note"}, []float64{1.0, 0.5})
	ix := search.New(fields, config.DefaultConfig().Search)

	items := []any{
		[]string{"Coffee at Starbucks", "morning run"},
		[]string{"Grocery shopping", ""},
	}
	hits := ix.Search(items, "coffee")
	require.Len(t, hits, 1)
	assert.Equal(t, 0, hits[0].Index)
}
