package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/raphi011/tajweed/internal/api"
	"github.com/raphi011/tajweed/internal/store"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if cfg.OutputDir != "tajweed_data" {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, "tajweed_data")
	}
	if cfg.BaseURL != "https://api.quran.com/api/v4/quran/verses/uthmani_tajweed" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Timeout.Duration != 15*time.Second {
		t.Errorf("Timeout = %v, want 15s", cfg.Timeout.Duration)
	}
	if cfg.Delay.Duration != 50*time.Millisecond {
		t.Errorf("Delay = %v, want 50ms", cfg.Delay.Duration)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default() does not validate: %v", err)
	}
}

func TestLoadFile_Nonexistent(t *testing.T) {
	t.Parallel()

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadFile returned error for missing file: %v", err)
	}
	if cfg != Default() {
		t.Errorf("LoadFile = %+v, want defaults", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
output_dir = "/srv/tajweed"
base_url = "http://localhost:8080/verses"
timeout = "30s"
delay = "250ms"
user_agent = "mirror-bot"

[theme]
name = "nord"
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	want := Config{
		OutputDir: "/srv/tajweed",
		BaseURL:   "http://localhost:8080/verses",
		Timeout:   Duration{30 * time.Second},
		Delay:     Duration{250 * time.Millisecond},
		UserAgent: "mirror-bot",
		Theme:     ThemeConfig{Name: "nord"},
	}
	if cfg != want {
		t.Errorf("LoadFile =\n%+v\nwant\n%+v", cfg, want)
	}
}

func TestLoadFile_PartialKeepsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := LoadFile(writeConfig(t, `delay = "0s"`))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.Delay.Duration != 0 {
		t.Errorf("Delay = %v, want 0", cfg.Delay.Duration)
	}
	if cfg.OutputDir != store.DefaultDir || cfg.BaseURL != api.DefaultBaseURL || cfg.Timeout.Duration != api.DefaultTimeout {
		t.Errorf("unset keys lost their defaults: %+v", cfg)
	}
}

func TestLoadFile_EmptyStringsFallBack(t *testing.T) {
	t.Parallel()

	cfg, err := LoadFile(writeConfig(t, `output_dir = ""
base_url = ""
user_agent = ""`))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.OutputDir != store.DefaultDir || cfg.BaseURL != api.DefaultBaseURL || cfg.UserAgent != api.DefaultUserAgent {
		t.Errorf("empty values did not fall back to defaults: %+v", cfg)
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		errPart string
	}{
		{"bad toml", `output_dir = `, "failed to parse config file"},
		{"bad duration", `timeout = "soon"`, "failed to parse config file"},
		{"zero timeout", `timeout = "0s"`, "invalid timeout"},
		{"negative delay", `delay = "-1s"`, "invalid delay"},
		{"ftp url", `base_url = "ftp://example.com/x"`, "scheme must be"},
		{"relative url", `base_url = "/verses"`, "scheme must be"},
		{"url with query", `base_url = "https://example.com/x?verse_key=1:1"`, "must not contain a query"},
		{"unknown theme", "[theme]\nname = \"solarized\"", "invalid theme.name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := LoadFile(writeConfig(t, tt.content))
			if err == nil {
				t.Fatalf("expected error containing %q", tt.errPart)
			}
			if !strings.Contains(err.Error(), tt.errPart) {
				t.Errorf("error = %q, want to contain %q", err, tt.errPart)
			}
			if cfg != Default() {
				t.Errorf("invalid config should return defaults, got %+v", cfg)
			}
		})
	}
}

func TestLoadFile_EnvOverrides(t *testing.T) {
	t.Setenv(EnvOutputDir, "/tmp/from-env")
	t.Setenv(EnvBaseURL, "http://127.0.0.1:9999/tajweed")

	cfg, err := LoadFile(writeConfig(t, `output_dir = "/from/file"`))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.OutputDir != "/tmp/from-env" {
		t.Errorf("OutputDir = %q, want env override", cfg.OutputDir)
	}
	if cfg.BaseURL != "http://127.0.0.1:9999/tajweed" {
		t.Errorf("BaseURL = %q, want env override", cfg.BaseURL)
	}
}

func TestLoadFile_ExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := LoadFile(writeConfig(t, `output_dir = "~/quran/tajweed"`))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if want := filepath.Join(home, "quran", "tajweed"); cfg.OutputDir != want {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, want)
	}
}

func TestDefaultConfigParses(t *testing.T) {
	t.Parallel()

	var cfg Config
	if _, err := toml.Decode(DefaultConfig(), &cfg); err != nil {
		t.Fatalf("DefaultConfig() is not valid TOML: %v", err)
	}

	want := Default()
	want.UserAgent = "" // commented out in the template
	want.Theme.Name = "default"
	if cfg != want {
		t.Errorf("DefaultConfig() decodes to %+v, want %+v", cfg, want)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Theme.Name = "dracula"

	text, err := cfg.Encode()
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if !strings.Contains(text, `timeout = "15s"`) {
		t.Errorf("Encode output missing duration string:\n%s", text)
	}

	var back Config
	if _, err := toml.Decode(text, &back); err != nil {
		t.Fatalf("decode encoded config: %v", err)
	}
	if back != cfg {
		t.Errorf("round trip = %+v, want %+v", back, cfg)
	}
}

func TestValidateBaseURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url     string
		wantErr bool
	}{
		{"https://api.quran.com/api/v4/quran/verses/uthmani_tajweed", false},
		{"http://localhost:8080", false},
		{"localhost:8080", true},
		{"https://", true},
		{"://bad", true},
	}

	for _, tt := range tests {
		if err := ValidateBaseURL(tt.url); (err != nil) != tt.wantErr {
			t.Errorf("ValidateBaseURL(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
		}
	}
}

func TestFormatOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		opts []string
		want string
	}{
		{[]string{"a"}, `"a"`},
		{[]string{"a", "b"}, `"a" or "b"`},
		{[]string{"a", "b", "c"}, `"a", "b", or "c"`},
	}
	for _, tt := range tests {
		if got := formatOptions(tt.opts); got != tt.want {
			t.Errorf("formatOptions(%v) = %q, want %q", tt.opts, got, tt.want)
		}
	}
}

func TestWithConfig_FromContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		cfg := Default()
		cfg.OutputDir = "/data"
		got := FromContext(WithConfig(context.Background(), &cfg))
		if got != &cfg {
			t.Error("FromContext did not return the stored config")
		}
	})

	t.Run("defaults when not set", func(t *testing.T) {
		t.Parallel()
		got := FromContext(context.Background())
		if got == nil || *got != Default() {
			t.Errorf("FromContext on empty context = %+v, want defaults", got)
		}
	})
}
