package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/raphi011/tajweed/internal/api"
	"github.com/raphi011/tajweed/internal/store"
	"github.com/raphi011/tajweed/internal/sweep"
)

// Environment variables overriding file settings.
const (
	EnvOutputDir = "TAJWEED_OUTPUT_DIR"
	EnvBaseURL   = "TAJWEED_BASE_URL"
)

// Duration is a time.Duration written as a string ("15s", "50ms") in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// ThemeConfig selects the UI color theme
type ThemeConfig struct {
	Name string `toml:"name"` // theme family: default, dracula, nord, none
}

// Config holds the tajweed configuration
type Config struct {
	OutputDir string      `toml:"output_dir"`
	BaseURL   string      `toml:"base_url"`
	Timeout   Duration    `toml:"timeout"`
	Delay     Duration    `toml:"delay"`
	UserAgent string      `toml:"user_agent"`
	Theme     ThemeConfig `toml:"theme"`
}

// Default returns the default configuration
func Default() Config {
	return Config{
		OutputDir: store.DefaultDir,
		BaseURL:   api.DefaultBaseURL,
		Timeout:   Duration{api.DefaultTimeout},
		Delay:     Duration{sweep.DefaultDelay},
		UserAgent: api.DefaultUserAgent,
	}
}

// Path returns the path to the config file
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "tajweed", "config.toml"), nil
}

// Load reads config from ~/.config/tajweed/config.toml and applies env overrides.
// Returns Default() if the file doesn't exist (no error).
// Returns an error only if the file exists but is invalid.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads config from path and applies env overrides.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}
	if err == nil {
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return Default(), fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyEnv(&cfg)

	// Empty values in the file fall back to defaults
	if cfg.OutputDir == "" {
		cfg.OutputDir = store.DefaultDir
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = api.DefaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = api.DefaultUserAgent
	}

	expanded, err := expandPath(cfg.OutputDir)
	if err != nil {
		return Default(), fmt.Errorf("expand output_dir: %w", err)
	}
	cfg.OutputDir = expanded

	if err := cfg.Validate(); err != nil {
		return Default(), err
	}

	return cfg, nil
}

// applyEnv overrides file settings with non-empty environment variables.
func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvOutputDir); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}
}

// expandPath expands ~ to the user's home directory
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}

// Encode renders cfg as TOML.
func (c Config) Encode() (string, error) {
	var buf strings.Builder
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// DefaultConfig returns the commented config file written by `tajweed config init`.
func DefaultConfig() string {
	return `# tajweed configuration
# Location: ~/.config/tajweed/config.toml

# Cache root. Relative paths resolve against the working directory.
# Overridden by TAJWEED_OUTPUT_DIR.
output_dir = "` + store.DefaultDir + `"

# quran.com v4 endpoint serving uthmani tajweed markup.
# Overridden by TAJWEED_BASE_URL.
base_url = "` + api.DefaultBaseURL + `"

# Per-request timeout.
timeout = "` + api.DefaultTimeout.String() + `"

# Pause after each successful fetch. The remote service's limits are unknown;
# keep this conservative.
delay = "` + sweep.DefaultDelay.String() + `"

# user_agent = "` + api.DefaultUserAgent + `"

[theme]
# default, dracula, nord, none
name = "default"
`
}
