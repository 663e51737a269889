package styles

import "fmt"

// Coverage symbols for the status table
const (
	SymbolComplete = "✓"
	SymbolPartial  = "◐"
	SymbolEmpty    = "·"
)

// CoverageSymbol returns the styled symbol for cached out of total verses.
func CoverageSymbol(cached, total int) string {
	switch {
	case total > 0 && cached >= total:
		return SuccessStyle.Render(SymbolComplete)
	case cached > 0:
		return WarningStyle.Render(SymbolPartial)
	default:
		return MutedStyle.Render(SymbolEmpty)
	}
}

// FormatCoverage renders "cached/total" followed by the coverage symbol.
func FormatCoverage(cached, total int) string {
	return fmt.Sprintf("%d/%d %s", cached, total, CoverageSymbol(cached, total))
}
