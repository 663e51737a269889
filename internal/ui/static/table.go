// Package static provides non-interactive terminal output components.
//
// This package contains components for rendering formatted output
// that does not require user interaction, such as the cache status table.
package static

import (
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/raphi011/tajweed/internal/ui/styles"
)

// ChapterStatus is the cache coverage of a single chapter.
type ChapterStatus struct {
	Chapter int    `json:"chapter"`
	Name    string `json:"name"`
	Cached  int    `json:"cached"`
	Total   int    `json:"total"`
	Missing []int  `json:"missing,omitempty"`
}

// Complete reports whether every verse of the chapter is cached.
func (s ChapterStatus) Complete() bool {
	return s.Cached >= s.Total
}

// ChapterTableHeaders are the column headers for ChapterTableRow.
var ChapterTableHeaders = []string{"CHAPTER", "NAME", "CACHED", "MISSING"}

// maxMissingShown caps the verse list in the MISSING column.
const maxMissingShown = 8

// ChapterTableRow renders one status row.
func ChapterTableRow(s ChapterStatus) []string {
	return []string{
		strconv.Itoa(s.Chapter),
		s.Name,
		styles.FormatCoverage(s.Cached, s.Total),
		formatMissing(s.Missing),
	}
}

// formatMissing lists missing verse numbers, collapsing runs into ranges.
func formatMissing(missing []int) string {
	if len(missing) == 0 {
		return ""
	}

	var parts []string
	for i := 0; i < len(missing); {
		j := i
		for j+1 < len(missing) && missing[j+1] == missing[j]+1 {
			j++
		}
		if j > i {
			parts = append(parts, strconv.Itoa(missing[i])+"-"+strconv.Itoa(missing[j]))
		} else {
			parts = append(parts, strconv.Itoa(missing[i]))
		}
		i = j + 1
	}

	if len(parts) > maxMissingShown {
		return strings.Join(parts[:maxMissingShown], ",") + ",…"
	}
	return strings.Join(parts, ",")
}

// RenderTable creates a formatted table with proper column alignment.
// Headers and rows are rendered using lipgloss/table which automatically
// calculates column widths based on content. No borders are rendered.
func RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	var output strings.Builder

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).PaddingRight(2)
			}
			return lipgloss.NewStyle().PaddingRight(2)
		})

	output.WriteString(t.String())
	output.WriteString("\n")

	return output.String()
}
