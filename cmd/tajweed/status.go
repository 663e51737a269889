package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/tajweed/internal/config"
	"github.com/raphi011/tajweed/internal/output"
	"github.com/raphi011/tajweed/internal/quran"
	"github.com/raphi011/tajweed/internal/store"
	"github.com/raphi011/tajweed/internal/ui/static"
	"github.com/raphi011/tajweed/internal/ui/styles"
)

// statusReport is the JSON shape of `tajweed status --json`.
type statusReport struct {
	OutputDir string                 `json:"output_dir"`
	Cached    int                    `json:"cached"`
	Total     int                    `json:"total"`
	Chapters  []static.ChapterStatus `json:"chapters"`
}

func runStatus(cmd *cobra.Command, outputDir, selection string, missingOnly, jsonOutput bool) error {
	ctx := cmd.Context()
	out := output.FromContext(ctx)

	dir := config.FromContext(ctx).OutputDir
	if outputDir != "" {
		dir = outputDir
	}

	chapters, err := quran.ParseSelection(selection)
	if err != nil {
		return err
	}

	report, err := collectStatus(store.New(dir), chapters)
	if err != nil {
		return err
	}

	shown := report.Chapters
	if missingOnly {
		shown = nil
		for _, s := range report.Chapters {
			if !s.Complete() {
				shown = append(shown, s)
			}
		}
	}

	if jsonOutput {
		report.Chapters = shown
		if report.Chapters == nil {
			report.Chapters = []static.ChapterStatus{}
		}
		return out.JSON(report)
	}

	rows := make([][]string, 0, len(shown))
	for _, s := range shown {
		rows = append(rows, static.ChapterTableRow(s))
	}
	out.Print(static.RenderTable(static.ChapterTableHeaders, rows))

	if len(shown) > 0 {
		out.Println()
	}
	out.Printf("%s verses cached in %s\n", styles.FormatCoverage(report.Cached, report.Total), report.OutputDir)
	return nil
}

// collectStatus reads the cache coverage of each chapter.
func collectStatus(st *store.Store, chapters []int) (statusReport, error) {
	report := statusReport{OutputDir: st.Dir()}

	for _, c := range chapters {
		missing, err := st.Missing(c)
		if err != nil {
			return report, fmt.Errorf("read chapter %d: %w", c, err)
		}

		total := quran.VerseCount(c)
		s := static.ChapterStatus{
			Chapter: c,
			Name:    quran.Name(c),
			Cached:  total - len(missing),
			Total:   total,
			Missing: missing,
		}
		report.Chapters = append(report.Chapters, s)
		report.Cached += s.Cached
		report.Total += s.Total
	}

	return report, nil
}
