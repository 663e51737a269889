package sweep

import (
	"github.com/raphi011/tajweed/internal/log"
	"github.com/raphi011/tajweed/internal/quran"
)

// Reporter receives a notice for every verse the sweep resolves.
type Reporter interface {
	// Start is called once with the number of verses in the selection.
	Start(total int)
	Skipped(key quran.VerseKey)
	Saved(key quran.VerseKey)
	Failed(key quran.VerseKey, err error)
	Planned(key quran.VerseKey)
}

// LogReporter writes one line per verse to a logger.
type LogReporter struct {
	L *log.Logger
}

func (r LogReporter) Start(int) {}

func (r LogReporter) Skipped(key quran.VerseKey) {
	r.L.Printf("Skipping %s (exists)\n", key)
}

func (r LogReporter) Saved(key quran.VerseKey) {
	r.L.Printf("Saved %s\n", key)
}

func (r LogReporter) Failed(key quran.VerseKey, err error) {
	r.L.Printf("Error on %s: %v\n", key, err)
}

func (r LogReporter) Planned(key quran.VerseKey) {
	r.L.Printf("Would fetch %s\n", key)
}

type nopReporter struct{}

func (nopReporter) Start(int)                    {}
func (nopReporter) Skipped(quran.VerseKey)       {}
func (nopReporter) Saved(quran.VerseKey)         {}
func (nopReporter) Failed(quran.VerseKey, error) {}
func (nopReporter) Planned(quran.VerseKey)       {}
