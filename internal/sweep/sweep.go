package sweep

import (
	"context"
	"fmt"
	"time"

	"github.com/raphi011/tajweed/internal/api"
	"github.com/raphi011/tajweed/internal/quran"
	"github.com/raphi011/tajweed/internal/store"
)

// DefaultDelay is the pause after each successful fetch.
const DefaultDelay = 50 * time.Millisecond

// Fetcher retrieves the tajweed markup of a single verse.
type Fetcher interface {
	FetchTajweed(ctx context.Context, key quran.VerseKey) (string, error)
}

// Options configures a sweep.
type Options struct {
	Store    *store.Store
	Fetcher  Fetcher
	Reporter Reporter // nil discards notices

	// Chapters restricts the sweep. Empty means every chapter.
	Chapters []int

	// Delay is the pause after each successful write.
	Delay time.Duration

	// DryRun reports the verses that would be fetched without fetching or writing.
	DryRun bool
}

// Failure records a verse that could not be cached.
type Failure struct {
	Key  quran.VerseKey
	Kind api.ErrorKind
	Err  error
}

func (f Failure) Error() string {
	return fmt.Sprintf("%s: %v", f.Key, f.Err)
}

func (f Failure) Unwrap() error { return f.Err }

// Result summarizes a sweep.
type Result struct {
	Fetched  int
	Skipped  int
	Planned  int // dry run only
	Failures []Failure
}

// Failed returns the number of verses that could not be cached.
func (r Result) Failed() int {
	return len(r.Failures)
}

// Visited returns the number of verses resolved so far.
func (r Result) Visited() int {
	return r.Fetched + r.Skipped + r.Planned + len(r.Failures)
}

// Run sweeps the selected chapters. Per-verse failures are collected in the
// result, not returned. The error is non-nil only when the cache cannot be
// prepared or ctx is cancelled, in which case the partial result is returned.
func Run(ctx context.Context, opts Options) (Result, error) {
	var res Result

	chapters := opts.Chapters
	if len(chapters) == 0 {
		chapters = quran.All()
	}
	for _, c := range chapters {
		if !quran.ValidChapter(c) {
			return res, fmt.Errorf("invalid chapter %d: must be between 1 and %d", c, quran.Chapters)
		}
	}

	rep := opts.Reporter
	if rep == nil {
		rep = nopReporter{}
	}

	if !opts.DryRun {
		unlock, err := opts.Store.Lock()
		if err != nil {
			return res, err
		}
		defer unlock()
	}

	rep.Start(quran.TotalVerses(chapters...))

	for _, c := range chapters {
		var dirErr error
		if !opts.DryRun {
			dirErr = opts.Store.EnsureChapter(c)
		}

		for _, key := range quran.Verses(c) {
			if err := ctx.Err(); err != nil {
				return res, err
			}

			if opts.Store.Exists(key) {
				res.Skipped++
				rep.Skipped(key)
				continue
			}

			if dirErr != nil {
				res.fail(rep, key, dirErr)
				continue
			}

			if opts.DryRun {
				res.Planned++
				rep.Planned(key)
				continue
			}

			if err := fetchOne(ctx, opts, key); err != nil {
				// An interrupted request is not the verse's fault.
				if ctx.Err() != nil {
					return res, ctx.Err()
				}
				res.fail(rep, key, err)
				continue
			}

			res.Fetched++
			rep.Saved(key)

			if err := pause(ctx, opts.Delay); err != nil {
				return res, err
			}
		}
	}

	return res, nil
}

func fetchOne(ctx context.Context, opts Options, key quran.VerseKey) error {
	html, err := opts.Fetcher.FetchTajweed(ctx, key)
	if err != nil {
		return err
	}
	return opts.Store.Write(key, html)
}

func (r *Result) fail(rep Reporter, key quran.VerseKey, err error) {
	r.Failures = append(r.Failures, Failure{Key: key, Kind: api.Kind(err), Err: err})
	rep.Failed(key, err)
}

// pause waits for d or until ctx is done.
func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
