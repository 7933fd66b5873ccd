/*
Package config manages TOML configuration for lexarbor adapters.

InitConfig handles automatic config file creation and loading with
fallback to defaults. LoadConfig and SaveConfig provide direct fs access
for runtime changes. Update allows targeted parameter changes with
persistence.

The core engine (pkg/wordlib) never parses this file itself — it takes
plain Go structs (tokenizer.Config, a dictionary path string, a result
cap). Configuration file loading is the adapter's job, per spec.md §1's
out-of-scope list; this package exists only to serve cmd/lexarbor.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/kavanhollis/lexarbor/internal/utils"
)

// Config holds the entire adapter-facing configuration structure.
type Config struct {
	Dict      DictConfig      `toml:"dict"`
	Tokenizer TokenizerConfig `toml:"tokenizer"`
	CLI       CliConfig       `toml:"cli"`
}

// DictConfig controls where the dictionary file lives and how suggestion
// queries are bounded.
type DictConfig struct {
	Path           string `toml:"path"`
	MaxSuggestDist int    `toml:"max_suggest_distance"`
}

// TokenizerConfig mirrors tokenizer.Config, kept as a separate TOML-tagged
// struct so the engine package stays free of TOML struct tags.
type TokenizerConfig struct {
	IncludeApostrophes bool `toml:"include_apostrophes"`
	IncludeHyphens     bool `toml:"include_hyphens"`
	IncludeDigits      bool `toml:"include_digits"`
	MinLength          int  `toml:"min_length"`
	MaxLength          int  `toml:"max_length"`
}

// CliConfig holds CLI-facing presentation options.
type CliConfig struct {
	DefaultLimit int  `toml:"default_limit"`
	Quiet        bool `toml:"quiet"`
	JSON         bool `toml:"json"`
}

// DefaultConfig returns a Config with lexarbor's defaults, matching
// spec.md §4.4's tokenizer defaults and §6's CLI contract.
func DefaultConfig() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return &Config{
		Dict: DictConfig{
			Path:           filepath.Join(home, ".lexarbor", "dictionary.txt"),
			MaxSuggestDist: 2,
		},
		Tokenizer: TokenizerConfig{
			IncludeApostrophes: true,
			IncludeHyphens:     false,
			IncludeDigits:      true,
			MinLength:          1,
			MaxLength:          256,
		},
		CLI: CliConfig{
			DefaultLimit: 10,
			Quiet:        false,
			JSON:         false,
		},
	}
}

// InitConfig loads config from file or creates the default one if
// missing.
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)
	if err := utils.EnsureDir(configDir); err != nil {
		return nil, err
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := SaveConfig(cfg, configPath); err != nil {
			return nil, err
		}
		log.Debugf("Created default config file at: ( %s )", configPath)
		return cfg, nil
	}
	cfg, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config, using defaults: %v", err)
		return DefaultConfig(), nil
	}
	return cfg, nil
}

// LoadConfig loads from a TOML file.
func LoadConfig(configPath string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(configPath, &cfg); err != nil {
		log.Errorf("Failed to decode config file: %v", err)
		return nil, err
	}
	return &cfg, nil
}

// SaveConfig saves into a TOML file.
func SaveConfig(cfg *Config, configPath string) error {
	file, err := os.Create(configPath)
	if err != nil {
		log.Errorf("Failed to create config file: %v", err)
		return err
	}
	defer file.Close()
	encoder := toml.NewEncoder(file)
	return encoder.Encode(cfg)
}

// Update changes selected config values and saves to file. Nil pointers
// leave the corresponding field unchanged.
func (c *Config) Update(configPath string, dictPath *string, defaultLimit *int, quiet, jsonOut *bool) error {
	if dictPath != nil {
		c.Dict.Path = *dictPath
	}
	if defaultLimit != nil {
		c.CLI.DefaultLimit = *defaultLimit
	}
	if quiet != nil {
		c.CLI.Quiet = *quiet
	}
	if jsonOut != nil {
		c.CLI.JSON = *jsonOut
	}
	return SaveConfig(c, configPath)
}
