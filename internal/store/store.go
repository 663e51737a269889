package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/raphi011/tajweed/internal/quran"
)

// DefaultDir is the cache root used when none is configured.
const DefaultDir = "tajweed_data"

const (
	lockName  = ".lock"
	tmpPrefix = ".tmp-"
	verseExt  = ".html"
)

// Store is a verse cache rooted at a directory.
type Store struct {
	dir string
}

// New returns a store rooted at dir. Nothing is created until needed.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the cache root.
func (s *Store) Dir() string {
	return s.dir
}

// Init creates the cache root if it is absent.
func (s *Store) Init() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// Lock takes the cache lock without blocking and returns its release function.
// The cache root is created first.
func (s *Store) Lock() (func() error, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	fl := NewFileLock(filepath.Join(s.dir, lockName))
	if err := fl.TryLock(); err != nil {
		return nil, fmt.Errorf("lock %s: %w", s.dir, err)
	}
	return fl.Unlock, nil
}

// ChapterDir returns the directory holding chapter c's verses.
func (s *Store) ChapterDir(c int) string {
	return filepath.Join(s.dir, strconv.Itoa(c))
}

// Path returns the cache file path for key.
func (s *Store) Path(key quran.VerseKey) string {
	return filepath.Join(s.ChapterDir(key.Chapter), strconv.Itoa(key.Verse)+verseExt)
}

// EnsureChapter creates the chapter directory if it is absent.
func (s *Store) EnsureChapter(c int) error {
	if err := os.MkdirAll(s.ChapterDir(c), 0o755); err != nil {
		return fmt.Errorf("failed to create chapter directory: %w", err)
	}
	return nil
}

// Exists reports whether the verse is cached.
func (s *Store) Exists(key quran.VerseKey) bool {
	_, err := os.Stat(s.Path(key))
	return err == nil
}

// Write stores html as the complete content of the verse file.
// The content is written to a temporary file and renamed into place.
func (s *Store) Write(key quran.VerseKey, html string) error {
	if err := s.EnsureChapter(key.Chapter); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.ChapterDir(key.Chapter), tmpPrefix+"*"+verseExt)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(html); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := os.Rename(tmpPath, s.Path(key)); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// Read returns the cached markup for key.
// Returns an error wrapping os.ErrNotExist if the verse is not cached.
func (s *Store) Read(key quran.VerseKey) (string, error) {
	data, err := os.ReadFile(s.Path(key))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Cached returns the verse numbers of chapter c present in the cache, ascending.
// Temporary files and names outside 1..VerseCount(c) are ignored.
func (s *Store) Cached(c int) ([]int, error) {
	entries, err := os.ReadDir(s.ChapterDir(c))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	present := make([]bool, quran.VerseCount(c)+1)
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		v, ok := verseNumber(e.Name())
		if !ok || v < 1 || v >= len(present) {
			continue
		}
		present[v] = true
	}

	var verses []int
	for v := 1; v < len(present); v++ {
		if present[v] {
			verses = append(verses, v)
		}
	}
	return verses, nil
}

// Missing returns the verse numbers of chapter c absent from the cache, ascending.
func (s *Store) Missing(c int) ([]int, error) {
	cached, err := s.Cached(c)
	if err != nil {
		return nil, err
	}

	var missing []int
	next := 0
	for v := 1; v <= quran.VerseCount(c); v++ {
		if next < len(cached) && cached[next] == v {
			next++
			continue
		}
		missing = append(missing, v)
	}
	return missing, nil
}

// verseNumber parses "<n>.html" with n >= 1. Temporary files never parse.
func verseNumber(name string) (int, bool) {
	base, ok := strings.CutSuffix(name, verseExt)
	if !ok || base == "" {
		return 0, false
	}
	n, err := strconv.Atoi(base)
	if err != nil || n < 1 || strconv.Itoa(n) != base {
		return 0, false
	}
	return n, true
}
