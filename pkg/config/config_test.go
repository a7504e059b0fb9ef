package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 0.98, cfg.Matching.LearnedConfidence)
	assert.Equal(t, 0.95, cfg.Matching.ExactConfidence)
	assert.Equal(t, 0.3, cfg.Matching.MinConfidence)
	assert.Equal(t, 4, cfg.Matching.MaxAlternatives)
	assert.Equal(t, 0.3, cfg.Search.MinScore)
	assert.Equal(t, 20, cfg.Search.MaxResults)
	assert.Equal(t, 2, cfg.Search.DefaultMaxTypos)
	assert.Equal(t, 0.15, cfg.Context.TimeBandBoost)
	assert.Equal(t, 0.25, cfg.Context.ActionBoost)

	// Discounts order the algorithms: exact > fuzzy > phonetic > semantic.
	assert.Greater(t, cfg.Matching.FuzzyDiscount, cfg.Matching.PhoneticDiscount)
	assert.Greater(t, cfg.Matching.PhoneticDiscount, cfg.Matching.SemanticDiscount)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
[matching]
min_confidence = 0.5
max_alternatives = 2

[search]
max_results = 5
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 0.5, cfg.Matching.MinConfidence)
	assert.Equal(t, 2, cfg.Matching.MaxAlternatives)
	assert.Equal(t, 5, cfg.Search.MaxResults)
	// Untouched keys keep their defaults.
	assert.Equal(t, 0.98, cfg.Matching.LearnedConfidence)
	assert.Equal(t, 0.8, cfg.Search.SubstringScore)
}

func TestLoadConfigIntegerFloats(t *testing.T) {
	// TOML writes whole floats as integers; both forms must load.
	path := writeConfig(t, `
[matching]
min_confidence = 1
agreement_bonus = 0.2
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 1.0, cfg.Matching.MinConfidence)
	assert.Equal(t, 0.2, cfg.Matching.AgreementBonus)
}

func TestLoadConfigMalformedFallsBackToDefaults(t *testing.T) {
	path := writeConfig(t, "this is not [valid toml")
	cfg, err := LoadConfig(path)
	require.NoError(t, err, "malformed config must degrade, not fail")
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveConfigRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := DefaultConfig()
	cfg.Matching.MinConfidence = 0.42
	cfg.Server.SendTrace = true

	require.NoError(t, SaveConfig(cfg, path))
	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestInitConfigCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.FileExists(t, path)
}

func TestUpdate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := DefaultConfig()

	minConf := 0.6
	maxAlt := 7
	require.NoError(t, cfg.Update(path, &minConf, nil, &maxAlt))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 0.6, loaded.Matching.MinConfidence)
	assert.Equal(t, 7, loaded.Matching.MaxAlternatives)
	// The untouched knob keeps its previous value.
	assert.Equal(t, 0.1, loaded.Matching.AgreementBonus)
}
