package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

const (
	DefaultVersion  = 1
	DefaultFileName = ".pair.json"

	// Default values for watch configuration.
	DefaultWatchDebounce = 100 * time.Millisecond
	MinWatchDebounce     = 10 * time.Millisecond
	MaxWatchDebounce     = 10 * time.Second
)

// Config defines project configuration stored in .pair.json.
type Config struct {
	Version int `json:"version"`

	// Scenarios is the path to a scenario file (default "" = built-in seed set).
	Scenarios *string `json:"scenarios,omitempty"`

	// Color controls styled output (default true).
	Color *bool `json:"color,omitempty"`

	Watch *WatchConfig `json:"watch,omitempty"`
}

// WatchConfig holds settings for check --watch.
type WatchConfig struct {
	// Debounce is the quiet period before re-running, as a duration string (default "100ms").
	Debounce *string `json:"debounce,omitempty"`
}

// GetScenarios returns the scenario file path (default "").
func (c Config) GetScenarios() string {
	if c.Scenarios == nil {
		return ""
	}
	return *c.Scenarios
}

// ColorEnabled returns whether styled output is enabled (default true).
func (c Config) ColorEnabled() bool {
	if c.Color == nil {
		return true
	}
	return *c.Color
}

// GetDebounce returns the watch debounce (default 100ms).
func (c *WatchConfig) GetDebounce() time.Duration {
	if c == nil || c.Debounce == nil {
		return DefaultWatchDebounce
	}
	d, err := time.ParseDuration(*c.Debounce)
	if err != nil {
		return DefaultWatchDebounce
	}
	return d
}

// Validate checks that watch config values are within sensible ranges.
func (c *WatchConfig) Validate() error {
	if c == nil || c.Debounce == nil {
		return nil
	}

	d, err := time.ParseDuration(*c.Debounce)
	if err != nil {
		return fmt.Errorf("invalid debounce: %w", err)
	}
	if d < MinWatchDebounce {
		return fmt.Errorf("debounce must be at least %v, got %v", MinWatchDebounce, d)
	}
	if d > MaxWatchDebounce {
		return fmt.Errorf("debounce must be at most %v, got %v", MaxWatchDebounce, d)
	}
	return nil
}

// Default returns the default config.
func Default() Config {
	return Config{
		Version: DefaultVersion,
	}
}

// Load reads config from disk and applies defaults for zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("config not found: %w", err)
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return parse(data)
}

// LoadOrDefault reads config from disk, returning defaults if file doesn't exist.
func LoadOrDefault(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if cfg.Version == 0 {
		cfg.Version = DefaultVersion
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Save writes a config to disk.
func Save(path string, cfg Config) error {
	if cfg.Version == 0 {
		cfg.Version = DefaultVersion
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}

// Validate ensures config values are within supported ranges.
func (c Config) Validate() error {
	if c.Version != DefaultVersion {
		return fmt.Errorf("unsupported config version: %d", c.Version)
	}
	if c.Watch != nil {
		if err := c.Watch.Validate(); err != nil {
			return fmt.Errorf("invalid watch config: %w", err)
		}
	}
	return nil
}
