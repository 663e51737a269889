package static

import (
	"strings"
	"testing"
)

func TestChapterTableRow(t *testing.T) {
	t.Parallel()

	s := ChapterStatus{
		Chapter: 1,
		Name:    "Al-Fatihah",
		Cached:  5,
		Total:   7,
		Missing: []int{3, 6},
	}

	row := ChapterTableRow(s)

	// Must have exactly 4 columns matching headers: CHAPTER, NAME, CACHED, MISSING
	if len(row) != len(ChapterTableHeaders) {
		t.Fatalf("expected %d columns, got %d", len(ChapterTableHeaders), len(row))
	}

	if row[0] != "1" {
		t.Errorf("column 0 (CHAPTER) = %q, want %q", row[0], "1")
	}
	if row[1] != "Al-Fatihah" {
		t.Errorf("column 1 (NAME) = %q, want %q", row[1], "Al-Fatihah")
	}
	if !strings.Contains(row[2], "5/7") {
		t.Errorf("column 2 (CACHED) = %q, want to contain %q", row[2], "5/7")
	}
	if row[3] != "3,6" {
		t.Errorf("column 3 (MISSING) = %q, want %q", row[3], "3,6")
	}
}

func TestChapterStatusComplete(t *testing.T) {
	t.Parallel()

	if !(ChapterStatus{Cached: 7, Total: 7}).Complete() {
		t.Error("7/7 should be complete")
	}
	if (ChapterStatus{Cached: 6, Total: 7}).Complete() {
		t.Error("6/7 should not be complete")
	}
}

func TestFormatMissing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		missing []int
		want    string
	}{
		{"none", nil, ""},
		{"single", []int{4}, "4"},
		{"run", []int{1, 2, 3, 4, 5, 6, 7}, "1-7"},
		{"mixed", []int{1, 2, 4, 6, 7, 8}, "1-2,4,6-8"},
		{"truncated", []int{1, 3, 5, 7, 9, 11, 13, 15, 17, 19}, "1,3,5,7,9,11,13,15,…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := formatMissing(tt.missing); got != tt.want {
				t.Errorf("formatMissing(%v) = %q, want %q", tt.missing, got, tt.want)
			}
		})
	}
}

func TestRenderTable(t *testing.T) {
	t.Parallel()

	t.Run("empty rows render nothing", func(t *testing.T) {
		t.Parallel()
		if got := RenderTable(ChapterTableHeaders, nil); got != "" {
			t.Errorf("RenderTable with no rows = %q, want empty", got)
		}
	})

	t.Run("headers and rows", func(t *testing.T) {
		t.Parallel()
		rows := [][]string{
			{"1", "Al-Fatihah", "7/7", ""},
			{"114", "An-Nas", "0/6", "1-6"},
		}
		got := RenderTable(ChapterTableHeaders, rows)

		for _, want := range []string{"CHAPTER", "NAME", "Al-Fatihah", "An-Nas", "1-6"} {
			if !strings.Contains(got, want) {
				t.Errorf("table missing %q:\n%s", want, got)
			}
		}
		if !strings.HasSuffix(got, "\n") {
			t.Error("table should end with a newline")
		}
		if lines := strings.Count(got, "\n"); lines != 3 {
			t.Errorf("table has %d lines, want 3:\n%s", lines, got)
		}
	})
}
