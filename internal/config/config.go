// Package config loads and saves hstreak preferences as TOML.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/theirongolddev/hstreak/internal/model"
)

// Input modes offered by the add form.
const (
	InputStartDate = "start-date"
	InputDayCount  = "day-count"
)

// Config holds all hstreak configuration.
type Config struct {
	General     GeneralConfig     `toml:"general"`
	Appearance  AppearanceConfig  `toml:"appearance"`
	Suggestions SuggestionsConfig `toml:"suggestions"`
	Logging     LoggingConfig     `toml:"logging"`
}

// GeneralConfig holds the add form defaults.
type GeneralConfig struct {
	DefaultFrequency       string `toml:"default_frequency"`
	DefaultInputMode       string `toml:"default_input_mode"`
	DefaultStartOffsetDays int    `toml:"default_start_offset_days"`
	DefaultDayCount        int    `toml:"default_day_count"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// SuggestionsConfig replaces the built-in suggestion pool when non-empty.
type SuggestionsConfig struct {
	Pool []string `toml:"pool,omitempty"`
}

// LoggingConfig controls the zap logger. An empty File disables logging.
type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			DefaultFrequency:       "daily",
			DefaultInputMode:       InputStartDate,
			DefaultStartOffsetDays: 7,
			DefaultDayCount:        30,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "hstreak")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "hstreak")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing config: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing config file: %w", err)
	}
	return nil
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}

// GetTheme returns the theme from env var or config, in that order.
func GetTheme(cfg Config) string {
	if name := os.Getenv("HSTREAK_THEME"); name != "" {
		return name
	}
	return cfg.Appearance.Theme
}

// DefaultFrequencyDays resolves general.default_frequency, falling back to
// daily when the value is not understood.
func (c Config) DefaultFrequencyDays() int {
	days, err := model.ParseFrequency(c.General.DefaultFrequency)
	if err != nil {
		return 1
	}
	return days
}

// SuggestionPool returns the configured pool, or fallback when none is set.
func (c Config) SuggestionPool(fallback []string) []string {
	var pool []string
	for _, s := range c.Suggestions.Pool {
		if s = strings.TrimSpace(s); s != "" {
			pool = append(pool, s)
		}
	}
	if len(pool) == 0 {
		return fallback
	}
	return pool
}

// normalize repairs values a hand-edited file may have left out of range.
func (c *Config) normalize() {
	def := DefaultConfig()
	switch c.General.DefaultInputMode {
	case InputStartDate, InputDayCount:
	default:
		c.General.DefaultInputMode = def.General.DefaultInputMode
	}
	if c.General.DefaultStartOffsetDays < 0 {
		c.General.DefaultStartOffsetDays = def.General.DefaultStartOffsetDays
	}
	if c.General.DefaultDayCount < 0 {
		c.General.DefaultDayCount = def.General.DefaultDayCount
	}
	if c.Appearance.Theme == "" {
		c.Appearance.Theme = def.Appearance.Theme
	}
	if c.Logging.Level == "" {
		c.Logging.Level = def.Logging.Level
	}
}
