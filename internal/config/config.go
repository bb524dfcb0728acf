// Package config loads fuzzydate settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/mph-llm-experiments/acore"
)

// Config holds user settings.
type Config struct {
	NotesDirectory   string `toml:"notes_directory"`
	AbbreviateMonths bool   `toml:"abbreviate_months"`
	Location         string `toml:"location"`
	ReferenceDate    string `toml:"reference_date"`
	SoonHorizon      int    `toml:"soon_horizon"`
	NoColor          bool   `toml:"no_color"`
}

// DefaultConfig returns the settings used when no file exists.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		NotesDirectory: filepath.Join(home, "notes"),
		Location:       "Local",
		SoonHorizon:    30,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/fuzzydate/config.toml, falling back
// to ~/.config.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "fuzzydate", "config.toml")
}

// Load reads the config at path. A missing file yields the defaults. An
// empty path means DefaultPath.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if dir := os.Getenv("FUZZYDATE_NOTES_DIR"); dir != "" {
		cfg.NotesDirectory = dir
	}
	cfg.NotesDirectory = expandHome(cfg.NotesDirectory)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that cannot be defaulted silently.
func (c *Config) Validate() error {
	if c.SoonHorizon < 0 {
		return fmt.Errorf("soon_horizon must not be negative, got %d", c.SoonHorizon)
	}
	if _, err := c.LoadLocation(); err != nil {
		return err
	}
	return nil
}

// LoadLocation resolves the configured time zone name.
func (c *Config) LoadLocation() (*time.Location, error) {
	if c.Location == "" || c.Location == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Location)
	if err != nil {
		return nil, fmt.Errorf("invalid location %q: %w", c.Location, err)
	}
	return loc, nil
}

// ParseReference turns a reference date given as YYYY-MM-DD or in natural
// language ("today", "next friday") into a time in loc. An empty string
// returns nil.
func ParseReference(s string, loc *time.Location) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if t, err := time.ParseInLocation("2006-01-02", s, loc); err == nil {
		return &t, nil
	}
	day, err := acore.ParseNaturalDate(s)
	if err != nil {
		return nil, fmt.Errorf("invalid reference date %q: %w", s, err)
	}
	t, err := time.ParseInLocation("2006-01-02", day, loc)
	if err != nil {
		return nil, fmt.Errorf("invalid reference date %q: %w", s, err)
	}
	return &t, nil
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
