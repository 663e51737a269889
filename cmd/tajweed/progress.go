package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/raphi011/tajweed/internal/quran"
	"github.com/raphi011/tajweed/internal/ui/progress"
	"github.com/raphi011/tajweed/internal/ui/styles"
)

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// progressReporter renders sweep notices as a progress bar.
// Only failures are printed as lines, above the bar.
type progressReporter struct {
	bar  *progress.ProgressBar
	done int
}

func newProgressReporter() *progressReporter {
	return &progressReporter{}
}

func (r *progressReporter) Start(total int) {
	r.bar = progress.NewProgressBar(total, "Starting")
	r.bar.Start()
}

func (r *progressReporter) advance(message string) {
	r.done++
	r.bar.SetProgress(r.done, message)
}

func (r *progressReporter) Skipped(key quran.VerseKey) {
	r.advance(fmt.Sprintf("Skipping %s", key))
}

func (r *progressReporter) Saved(key quran.VerseKey) {
	r.advance(fmt.Sprintf("Saved %s", key))
}

func (r *progressReporter) Failed(key quran.VerseKey, err error) {
	r.bar.Println(styles.ErrorStyle.Render(fmt.Sprintf("Error on %s: %v", key, err)))
	r.advance(fmt.Sprintf("Failed %s", key))
}

func (r *progressReporter) Planned(key quran.VerseKey) {
	r.advance(fmt.Sprintf("Would fetch %s", key))
}

// Stop removes the bar. Safe to call when Start was never called.
func (r *progressReporter) Stop() {
	if r.bar != nil {
		r.bar.Stop()
	}
}
