/*
Package config manages TOML config for the skipwise matching core.

All the empirically chosen scoring constants live here as named,
overridable settings rather than literals buried in the matchers.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/0xshadow-dev/skipwise-sub000/internal/utils"
)

// Config holds the entire config structure
type Config struct {
	Matching MatchingConfig `toml:"matching"`
	Search   SearchConfig   `toml:"search"`
	Context  ContextConfig  `toml:"context"`
	Server   ServerConfig   `toml:"server"`
	CLI      CliConfig      `toml:"cli"`
}

// MatchingConfig carries the classification engine's confidence constants.
type MatchingConfig struct {
	LearnedConfidence float64 `toml:"learned_confidence"`
	ExactConfidence   float64 `toml:"exact_confidence"`
	FuzzyDiscount     float64 `toml:"fuzzy_discount"`
	PhoneticDiscount  float64 `toml:"phonetic_discount"`
	SemanticDiscount  float64 `toml:"semantic_discount"`
	AgreementBonus    float64 `toml:"agreement_bonus"`
	MinConfidence     float64 `toml:"min_confidence"`
	MaxAlternatives   int     `toml:"max_alternatives"`
}

// SearchConfig carries the search index defaults.
type SearchConfig struct {
	MinScore        float64 `toml:"min_score"`
	MaxResults      int     `toml:"max_results"`
	SubstringScore  float64 `toml:"substring_score"`
	FuzzyDiscount   float64 `toml:"fuzzy_discount"`
	FuzzyFloor      float64 `toml:"fuzzy_floor"`
	TypoDiscount    float64 `toml:"typo_discount"`
	MinQueryLength  int     `toml:"min_query_length"`
	CaseSensitive   bool    `toml:"case_sensitive"`
	MinWordLength   int     `toml:"min_word_length"`
	DefaultMaxTypos int     `toml:"default_max_typos"`
}

// ContextConfig carries the time-of-day and action-rule boost sizes.
type ContextConfig struct {
	TimeBandBoost float64 `toml:"time_band_boost"`
	ActionBoost   float64 `toml:"action_boost"`
}

// ServerConfig has IPC server related options.
type ServerConfig struct {
	MaxLimit  int  `toml:"max_limit"`
	MaxInput  int  `toml:"max_input"`
	SendTrace bool `toml:"send_trace"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	DefaultLimit int  `toml:"default_limit"`
	ShowTrace    bool `toml:"show_trace"`
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/
// 2. ~/Library/Application Support/ (macOS)
// 3. Current executable dir
// 4. builtin defaults
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		execDir, execErr := utils.GetExecutableDir()
		if execErr != nil {
			return "", execErr
		}
		return execDir, nil
	}
	primaryPath := filepath.Join(homeDir, ".config", "skipwise")
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	// Not conventional, fallback from ~/.config if not writable
	macOSPath := filepath.Join(homeDir, "Library", "Application Support", "skipwise")
	if result := utils.CheckDirStatus(macOSPath); result.Writable {
		return macOSPath, nil
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/skipwise/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	var config *Config
	var err error

	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err = LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err = InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Matching: MatchingConfig{
			LearnedConfidence: 0.98,
			ExactConfidence:   0.95,
			FuzzyDiscount:     0.8,
			PhoneticDiscount:  0.7,
			SemanticDiscount:  0.6,
			AgreementBonus:    0.1,
			MinConfidence:     0.3,
			MaxAlternatives:   4,
		},
		Search: SearchConfig{
			MinScore:        0.3,
			MaxResults:      20,
			SubstringScore:  0.8,
			FuzzyDiscount:   0.6,
			FuzzyFloor:      0.3,
			TypoDiscount:    0.7,
			MinQueryLength:  2,
			CaseSensitive:   false,
			MinWordLength:   3,
			DefaultMaxTypos: 2,
		},
		Context: ContextConfig{
			TimeBandBoost: 0.15,
			ActionBoost:   0.25,
		},
		Server: ServerConfig{
			MaxLimit:  16,
			MaxInput:  512,
			SendTrace: false,
		},
		CLI: CliConfig{
			DefaultLimit: 4,
			ShowTrace:    false,
		},
	}
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse attempts to parse a TOML file section by section,
// keeping defaults for anything unreadable.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if matchingSection, ok := utils.ExtractSection(tempConfig, "matching"); ok {
		extractMatchingConfig(matchingSection, &config.Matching)
	}
	if searchSection, ok := utils.ExtractSection(tempConfig, "search"); ok {
		extractSearchConfig(searchSection, &config.Search)
	}
	if contextSection, ok := utils.ExtractSection(tempConfig, "context"); ok {
		extractContextConfig(contextSection, &config.Context)
	}
	if serverSection, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(serverSection, &config.Server)
	}
	if cliSection, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(cliSection, &config.CLI)
	}
	return config, nil
}

// extractMatchingConfig extracts matching configuration from a map
func extractMatchingConfig(data map[string]any, matching *MatchingConfig) {
	if val, ok := utils.ExtractFloat64(data, "learned_confidence"); ok {
		matching.LearnedConfidence = val
	}
	if val, ok := utils.ExtractFloat64(data, "exact_confidence"); ok {
		matching.ExactConfidence = val
	}
	if val, ok := utils.ExtractFloat64(data, "fuzzy_discount"); ok {
		matching.FuzzyDiscount = val
	}
	if val, ok := utils.ExtractFloat64(data, "phonetic_discount"); ok {
		matching.PhoneticDiscount = val
	}
	if val, ok := utils.ExtractFloat64(data, "semantic_discount"); ok {
		matching.SemanticDiscount = val
	}
	if val, ok := utils.ExtractFloat64(data, "agreement_bonus"); ok {
		matching.AgreementBonus = val
	}
	if val, ok := utils.ExtractFloat64(data, "min_confidence"); ok {
		matching.MinConfidence = val
	}
	if val, ok := utils.ExtractInt64(data, "max_alternatives"); ok {
		matching.MaxAlternatives = val
	}
}

// extractSearchConfig extracts search configuration from a map
func extractSearchConfig(data map[string]any, search *SearchConfig) {
	if val, ok := utils.ExtractFloat64(data, "min_score"); ok {
		search.MinScore = val
	}
	if val, ok := utils.ExtractInt64(data, "max_results"); ok {
		search.MaxResults = val
	}
	if val, ok := utils.ExtractFloat64(data, "substring_score"); ok {
		search.SubstringScore = val
	}
	if val, ok := utils.ExtractFloat64(data, "fuzzy_discount"); ok {
		search.FuzzyDiscount = val
	}
	if val, ok := utils.ExtractFloat64(data, "fuzzy_floor"); ok {
		search.FuzzyFloor = val
	}
	if val, ok := utils.ExtractFloat64(data, "typo_discount"); ok {
		search.TypoDiscount = val
	}
	if val, ok := utils.ExtractInt64(data, "min_query_length"); ok {
		search.MinQueryLength = val
	}
	if val, ok := utils.ExtractBool(data, "case_sensitive"); ok {
		search.CaseSensitive = val
	}
	if val, ok := utils.ExtractInt64(data, "min_word_length"); ok {
		search.MinWordLength = val
	}
	if val, ok := utils.ExtractInt64(data, "default_max_typos"); ok {
		search.DefaultMaxTypos = val
	}
}

// extractContextConfig extracts context boost configuration from a map
func extractContextConfig(data map[string]any, context *ContextConfig) {
	if val, ok := utils.ExtractFloat64(data, "time_band_boost"); ok {
		context.TimeBandBoost = val
	}
	if val, ok := utils.ExtractFloat64(data, "action_boost"); ok {
		context.ActionBoost = val
	}
}

// extractServerConfig extracts server configuration from a map
func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "max_limit"); ok {
		server.MaxLimit = val
	}
	if val, ok := utils.ExtractInt64(data, "max_input"); ok {
		server.MaxInput = val
	}
	if val, ok := utils.ExtractBool(data, "send_trace"); ok {
		server.SendTrace = val
	}
}

// extractCliConfig extracts CLI config from a map
func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractInt64(data, "default_limit"); ok {
		cli.DefaultLimit = val
	}
	if val, ok := utils.ExtractBool(data, "show_trace"); ok {
		cli.ShowTrace = val
	}
}

// RebuildConfigFile force creates a new config.toml at default
func RebuildConfigFile() error {
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		return err
	}
	configDir := filepath.Dir(defaultPath)
	if err := utils.EnsureDir(configDir); err != nil {
		return err
	}
	config := DefaultConfig()
	return utils.SaveTOMLFile(config, defaultPath)
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// Update changes matching constants and saves to file
func (c *Config) Update(configPath string, minConfidence, agreementBonus *float64, maxAlternatives *int) error {
	matching := &c.Matching
	if minConfidence != nil {
		matching.MinConfidence = *minConfidence
	}
	if agreementBonus != nil {
		matching.AgreementBonus = *agreementBonus
	}
	if maxAlternatives != nil {
		matching.MaxAlternatives = *maxAlternatives
	}
	return SaveConfig(c, configPath)
}
