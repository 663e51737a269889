package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// ValidThemeNames lists the accepted [theme] name values.
var ValidThemeNames = []string{"default", "dracula", "nord", "none"}

// Validate checks every setting and returns the first problem found.
func (c Config) Validate() error {
	if err := ValidateBaseURL(c.BaseURL); err != nil {
		return err
	}
	if c.Timeout.Duration <= 0 {
		return fmt.Errorf("invalid timeout %q: must be positive", c.Timeout.Duration)
	}
	if c.Delay.Duration < 0 {
		return fmt.Errorf("invalid delay %q: must not be negative", c.Delay.Duration)
	}
	return validateEnum(c.Theme.Name, "theme.name", ValidThemeNames)
}

// ValidateBaseURL checks that u is an absolute http(s) URL without a query.
// Exported for use in CLI flag validation.
func ValidateBaseURL(u string) error {
	parsed, err := url.Parse(u)
	if err != nil {
		return fmt.Errorf("invalid base_url %q: %w", u, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("invalid base_url %q: scheme must be %s", u, formatOptions([]string{"http", "https"}))
	}
	if parsed.Host == "" {
		return fmt.Errorf("invalid base_url %q: missing host", u)
	}
	if parsed.RawQuery != "" {
		return fmt.Errorf("invalid base_url %q: must not contain a query, verse_key is appended", u)
	}
	return nil
}

// validateEnum checks that value (if non-empty) is one of the allowed values.
// Returns a formatted error mentioning the field name and allowed options.
func validateEnum(value, field string, allowed []string) error {
	if value == "" {
		return nil
	}
	if !slices.Contains(allowed, value) {
		return fmt.Errorf("invalid %s %q: must be %s", field, value, formatOptions(allowed))
	}
	return nil
}

// formatOptions formats a list of allowed values for error messages.
// E.g., ["a", "b", "c"] -> `"a", "b", or "c"`
func formatOptions(opts []string) string {
	quoted := make([]string, len(opts))
	for i, o := range opts {
		quoted[i] = fmt.Sprintf("%q", o)
	}
	if len(quoted) <= 2 {
		return strings.Join(quoted, " or ")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}
