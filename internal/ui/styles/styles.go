// Package styles provides shared lipgloss styles for UI components.
//
// This package centralizes color definitions and styling to ensure
// visual consistency across the static tables and the progress bar.
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette of the active theme. Updated by Init.
var (
	// Primary is the main accent color (cyan/teal)
	Primary color.Color = DefaultTheme.Primary

	// Accent is the highlight color (pink)
	Accent color.Color = DefaultTheme.Accent

	// Success is used for checkmarks and complete chapters (green)
	Success color.Color = DefaultTheme.Success

	// Error is used for error messages (red)
	Error color.Color = DefaultTheme.Error

	// Muted is used for empty chapters (gray)
	Muted color.Color = DefaultTheme.Muted

	// Warning is used for partially cached chapters (orange)
	Warning color.Color = DefaultTheme.Warning
)

// Common styles
var (
	// Bold applies bold formatting
	Bold = lipgloss.NewStyle().Bold(true)

	// PrimaryStyle applies the primary color
	PrimaryStyle = lipgloss.NewStyle().Foreground(Primary)

	// AccentStyle applies the accent color with bold
	AccentStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	// SuccessStyle applies the success color
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)

	// ErrorStyle applies the error color
	ErrorStyle = lipgloss.NewStyle().Foreground(Error)

	// MutedStyle applies the muted color
	MutedStyle = lipgloss.NewStyle().Foreground(Muted)

	// WarningStyle applies the warning color
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)
)
