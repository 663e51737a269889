package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/raphi011/tajweed/internal/config"
)

// sweepFlags override config settings for a single download run.
type sweepFlags struct {
	output   string
	delay    time.Duration
	timeout  time.Duration
	baseURL  string
	chapters string
	dryRun   bool
	progress bool
}

func (f *sweepFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Output directory (default from config)")
	cmd.Flags().DurationVar(&f.delay, "delay", 0, "Pause after each downloaded verse (default from config)")
	cmd.Flags().DurationVar(&f.timeout, "timeout", 0, "Per-request timeout (default from config)")
	cmd.Flags().StringVar(&f.baseURL, "base-url", "", "API endpoint (default from config)")
	cmd.Flags().StringVarP(&f.chapters, "chapters", "c", "", "Chapters to download, e.g. 1-3,18,yasin (default all)")
	cmd.Flags().BoolVarP(&f.dryRun, "dry-run", "n", false, "List verses that would be downloaded without fetching")
	cmd.Flags().BoolVarP(&f.progress, "progress", "p", false, "Show a progress bar instead of one line per verse (terminal only)")

	cmd.MarkFlagsMutuallyExclusive("dry-run", "progress")
	_ = cmd.MarkFlagDirname("output")
	_ = cmd.RegisterFlagCompletionFunc("chapters", completeChapters)
}

// apply returns cfg with every explicitly set flag applied.
// Flags are checked with Changed so that --delay 0 overrides a configured delay.
func (f *sweepFlags) apply(cmd *cobra.Command, cfg config.Config) (config.Config, error) {
	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.OutputDir = f.output
	}
	if flags.Changed("delay") {
		cfg.Delay = config.Duration{Duration: f.delay}
	}
	if flags.Changed("timeout") {
		cfg.Timeout = config.Duration{Duration: f.timeout}
	}
	if flags.Changed("base-url") {
		cfg.BaseURL = f.baseURL
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
