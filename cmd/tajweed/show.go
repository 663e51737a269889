package main

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/raphi011/tajweed/internal/config"
	"github.com/raphi011/tajweed/internal/log"
	"github.com/raphi011/tajweed/internal/output"
	"github.com/raphi011/tajweed/internal/quran"
	"github.com/raphi011/tajweed/internal/store"
)

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

func runShow(cmd *cobra.Command, arg, outputDir string, fetch, copyOut bool) error {
	ctx := cmd.Context()
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)
	cfg := *config.FromContext(ctx)

	if outputDir != "" {
		cfg.OutputDir = outputDir
	}

	key, err := quran.ParseVerseKey(arg)
	if err != nil {
		return err
	}

	st := store.New(cfg.OutputDir)

	var html string
	switch {
	case st.Exists(key):
		html, err = st.Read(key)
		if err != nil {
			return fmt.Errorf("read %s: %w", key, err)
		}
	case fetch:
		l.Debug("fetching uncached verse", "key", key)
		html, err = newClient(cfg).FetchTajweed(ctx, key)
		if err != nil {
			return fmt.Errorf("fetch %s: %w", key, err)
		}
		// No run lock: a single rename cannot interleave with a sweep's writes.
		if err := st.Write(key, html); err != nil {
			return err
		}
		l.Printf("Saved %s\n", key)
	default:
		return fmt.Errorf("verse %s is not cached in %s (use --fetch to download it)", key, st.Dir())
	}

	out.Println(html)

	if copyOut {
		if err := copyToClipboard(html); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		l.Printf("Copied %s to clipboard\n", key)
	}
	return nil
}
