// Package config holds the settings shared by every request. A Config is a
// plain value: consumers replace it as a whole and never mutate it in place.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

const (
	AppName    = "git-graph-go"
	ConfigFile = "config.toml"

	DefaultMaxCommits = 300

	DateAuthor = "author"
	DateCommit = "commit"

	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)

type Config struct {
	GitPath                string `toml:"git_path"`
	DateType               string `toml:"date_type"` // author or commit
	MaxCommits             int    `toml:"max_commits"`
	ShowRemoteBranches     bool   `toml:"show_remote_branches"`
	ShowUncommittedChanges bool   `toml:"show_uncommitted_changes"`
	ShowUntrackedFiles     bool   `toml:"show_untracked_files"`
	Theme                  string `toml:"theme"` // auto, light or dark
}

func Default() Config {
	return Config{
		GitPath:                "git",
		DateType:               DateAuthor,
		MaxCommits:             DefaultMaxCommits,
		ShowRemoteBranches:     true,
		ShowUncommittedChanges: true,
		ShowUntrackedFiles:     true,
		Theme:                  ThemeAuto,
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if strings.TrimSpace(c.GitPath) == "" {
		return errors.New("git_path must not be empty")
	}
	switch c.DateType {
	case DateAuthor, DateCommit:
	default:
		return fmt.Errorf("date_type must be %q or %q, got %q", DateAuthor, DateCommit, c.DateType)
	}
	if c.MaxCommits <= 0 {
		return fmt.Errorf("max_commits must be positive, got %d", c.MaxCommits)
	}
	switch c.Theme {
	case ThemeAuto, ThemeLight, ThemeDark:
	default:
		return fmt.Errorf("theme must be auto, light or dark, got %q", c.Theme)
	}
	return nil
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppName, ConfigFile), nil
}

// Load reads path on top of the defaults. Keys missing from the file keep
// their default value. A missing file is an error unless optional is set.
func Load(path string, optional bool) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	if err := Parse(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse decodes TOML data into cfg and validates the result.
func Parse(data []byte, cfg *Config) error {
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.DateType = strings.ToLower(strings.TrimSpace(cfg.DateType))
	cfg.Theme = strings.ToLower(strings.TrimSpace(cfg.Theme))
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Save writes cfg to path, creating the parent directory.
func Save(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
