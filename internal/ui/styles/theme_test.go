package styles

import (
	"fmt"
	"strings"
	"testing"

	"charm.land/lipgloss/v2"

	"github.com/raphi011/tajweed/internal/config"
)

func TestInit_DefaultTheme(t *testing.T) {
	Init(config.ThemeConfig{})

	theme := Current()
	if theme.Primary != lipgloss.Color("62") {
		t.Errorf("expected default primary color 62, got %v", theme.Primary)
	}
	if theme.Accent != lipgloss.Color("212") {
		t.Errorf("expected default accent color 212, got %v", theme.Accent)
	}
}

func TestInit_PresetTheme(t *testing.T) {
	tests := []struct {
		preset string
		want   Theme
	}{
		{"dracula", DraculaTheme},
		{"nord", NordTheme},
		{"none", NoneTheme},
		{"default", DefaultTheme},
	}

	for _, tt := range tests {
		t.Run(tt.preset, func(t *testing.T) {
			Init(config.ThemeConfig{Name: tt.preset})
			if got := Current(); got != tt.want {
				t.Errorf("Current() = %+v, want %+v", got, tt.want)
			}
			if Primary != tt.want.Primary {
				t.Errorf("Primary = %v, want %v", Primary, tt.want.Primary)
			}
		})
	}

	// Reset to default
	Init(config.ThemeConfig{})
}

func TestInit_UnknownThemeFallsBack(t *testing.T) {
	Init(config.ThemeConfig{Name: "solarized"})
	if Current() != DefaultTheme {
		t.Errorf("unknown theme should fall back to default, got %+v", Current())
	}
}

func TestPresetsMatchConfig(t *testing.T) {
	for _, name := range config.ValidThemeNames {
		if GetPreset(name) == nil {
			t.Errorf("config accepts theme %q but no preset exists", name)
		}
	}
	if GetPreset("solarized") != nil {
		t.Error("GetPreset should return nil for unknown names")
	}
}

func TestFormatCoverage(t *testing.T) {
	Init(config.ThemeConfig{Name: "none"})
	defer Init(config.ThemeConfig{})

	tests := []struct {
		cached, total int
		symbol        string
	}{
		{7, 7, SymbolComplete},
		{3, 7, SymbolPartial},
		{0, 7, SymbolEmpty},
	}

	for _, tt := range tests {
		got := FormatCoverage(tt.cached, tt.total)
		prefix := fmt.Sprintf("%d/%d ", tt.cached, tt.total)
		if !strings.HasPrefix(got, prefix) || !strings.Contains(got, tt.symbol) {
			t.Errorf("FormatCoverage(%d, %d) = %q, want symbol %q", tt.cached, tt.total, got, tt.symbol)
		}
	}
}
