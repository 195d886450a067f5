// Package config loads the notes CLI configuration using koanf.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix for environment overrides, e.g. NOTES_FILE or NOTES_LOG_LEVEL.
const EnvPrefix = "NOTES_"

// Config is the root configuration structure.
type Config struct {
	File          string       `koanf:"file"           validate:"required"`
	SearchParents bool         `koanf:"search_parents"`
	Search        SearchConfig `koanf:"search"`
	Log           LogConfig    `koanf:"log"            validate:"required"`
}

// SearchConfig contains search behaviour settings.
type SearchConfig struct {
	IgnoreCase bool `koanf:"ignore_case"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `koanf:"level"  validate:"required,oneof=debug info warn error"`
	Format string `koanf:"format" validate:"required,oneof=text json pretty"`
}

// defaults returns the default configuration values.
func defaults() map[string]any {
	return map[string]any{
		"file":               "notes.json",
		"search_parents":     false,
		"search.ignore_case": false,
		"log.level":          "warn",
		"log.format":         "pretty",
	}
}

// DefaultPath returns the per-user config file location,
// e.g. ~/.config/notes/config.yaml on Linux.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "notes", "config.yaml")
}

// Load loads configuration with the following precedence (highest to lowest):
//  1. Environment variables (NOTES_ prefix)
//  2. Config file at path (skipped when missing, unless required)
//  3. Default values
//
// The result is validated before it is returned.
func Load(path string, required bool) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if path != "" {
		if err := loadFile(k, path, required); err != nil {
			return nil, fmt.Errorf("loading config file %q: %w", path, err)
		}
	}

	err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadFile loads a YAML config file. A missing file is fine unless required.
func loadFile(k *koanf.Koanf, path string, required bool) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) && !required {
		return nil
	}

	return k.Load(file.Provider(path), yaml.Parser())
}

// sections are the nested config groups; their first underscore becomes a key delimiter.
var sections = []string{"log", "search"}

// envKey maps NOTES_LOG_LEVEL to log.level and NOTES_SEARCH_IGNORE_CASE to search.ignore_case.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if key == "search_parents" {
		return key
	}
	for _, section := range sections {
		if rest, ok := strings.CutPrefix(key, section+"_"); ok {
			return section + "." + rest
		}
	}
	return key
}
