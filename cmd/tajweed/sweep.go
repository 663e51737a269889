package main

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/tajweed/internal/api"
	"github.com/raphi011/tajweed/internal/config"
	"github.com/raphi011/tajweed/internal/log"
	"github.com/raphi011/tajweed/internal/quran"
	"github.com/raphi011/tajweed/internal/store"
	"github.com/raphi011/tajweed/internal/sweep"
)

func runSweep(cmd *cobra.Command, f sweepFlags) error {
	ctx := cmd.Context()
	l := log.FromContext(ctx)

	cfg, err := f.apply(cmd, *config.FromContext(ctx))
	if err != nil {
		return err
	}

	chapters, err := quran.ParseSelection(f.chapters)
	if err != nil {
		return err
	}

	st := store.New(cfg.OutputDir)
	client := newClient(cfg)

	var rep sweep.Reporter = sweep.LogReporter{L: l}
	var bar *progressReporter
	if f.progress && !l.IsQuiet() && isTerminal(l.Writer()) {
		bar = newProgressReporter()
		rep = bar
	}

	l.Println("Starting Tajweed data download...")
	l.Debug("sweep", "output", st.Dir(), "chapters", len(chapters), "verses", quran.TotalVerses(chapters...), "delay", cfg.Delay.Duration)

	res, err := sweep.Run(ctx, sweep.Options{
		Store:    st,
		Fetcher:  client,
		Reporter: rep,
		Chapters: chapters,
		Delay:    cfg.Delay.Duration,
		DryRun:   f.dryRun,
	})
	if bar != nil {
		bar.Stop()
	}
	if err != nil {
		if ctx.Err() != nil {
			l.Println(summarize(res))
			return fmt.Errorf("download interrupted: %w", err)
		}
		return err
	}

	l.Println(summarize(res))
	if f.dryRun {
		return nil
	}
	// Per-verse failures are reported above and never fail the run.
	l.Println("Download complete.")
	return nil
}

// newClient builds an API client from cfg.
func newClient(cfg config.Config) *api.Client {
	return api.New(
		api.WithBaseURL(cfg.BaseURL),
		api.WithTimeout(cfg.Timeout.Duration),
		api.WithUserAgent(cfg.UserAgent),
	)
}

// summarize renders the counters of a run, e.g.
// "7 saved, 3 skipped, 2 failed (http: 1, transport: 1)".
func summarize(res sweep.Result) string {
	parts := []string{
		fmt.Sprintf("%d saved", res.Fetched),
		fmt.Sprintf("%d skipped", res.Skipped),
	}
	if res.Planned > 0 {
		parts = append(parts, fmt.Sprintf("%d to fetch", res.Planned))
	}
	if res.Failed() == 0 {
		return strings.Join(parts, ", ")
	}

	byKind := make(map[api.ErrorKind]int)
	for _, fail := range res.Failures {
		byKind[fail.Kind]++
	}
	var kinds []string
	for _, k := range slices.Sorted(maps.Keys(byKind)) {
		kinds = append(kinds, fmt.Sprintf("%s: %d", k, byKind[k]))
	}
	parts = append(parts, fmt.Sprintf("%d failed (%s)", res.Failed(), strings.Join(kinds, ", ")))
	return strings.Join(parts, ", ")
}
