package quran

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/sahilm/fuzzy"
)

var rangePattern = regexp.MustCompile(`^(\d+)\s*-\s*(\d+)$`)

// nameSource implements fuzzy.Source over the normalized chapter names.
// Position i maps to chapter i+1.
type nameSource []string

func (s nameSource) String(i int) string { return s[i] }
func (s nameSource) Len() int            { return len(s) }

var normalizedNames = func() nameSource {
	names := make(nameSource, Chapters)
	for c := 1; c <= Chapters; c++ {
		names[c-1] = normalizeName(chapterNames[c])
	}
	return names
}()

// normalizeName lowercases and drops everything that is not a letter,
// so "Ya-Sin", "yasin" and "YA SIN" compare equal.
func normalizeName(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FindChapter resolves a transliterated chapter name.
// An exact match (ignoring case and punctuation) wins, otherwise the best
// fuzzy match is returned.
func FindChapter(query string) (int, bool) {
	q := normalizeName(query)
	if q == "" {
		return 0, false
	}

	for i, name := range normalizedNames {
		if name == q {
			return i + 1, true
		}
	}

	matches := fuzzy.FindFrom(q, normalizedNames)
	if len(matches) == 0 {
		return 0, false
	}
	return matches[0].Index + 1, true
}

// SearchChapters returns the chapters whose names fuzzily match query,
// best match first. An empty query returns every chapter in order.
func SearchChapters(query string) []int {
	q := normalizeName(query)
	if q == "" {
		return All()
	}

	matches := fuzzy.FindFrom(q, normalizedNames)
	chapters := make([]int, len(matches))
	for i, m := range matches {
		chapters[i] = m.Index + 1
	}
	return chapters
}

// ParseSelection parses a comma-separated chapter selection such as
// "1-3,18,yasin". An empty selection means every chapter.
// The result is sorted ascending and free of duplicates.
func ParseSelection(sel string) ([]int, error) {
	if strings.TrimSpace(sel) == "" {
		return All(), nil
	}

	var chapters []int
	for _, part := range strings.Split(sel, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, fmt.Errorf("invalid chapter selection %q: empty element", sel)
		}

		if m := rangePattern.FindStringSubmatch(part); m != nil {
			from, _ := strconv.Atoi(m[1])
			to, _ := strconv.Atoi(m[2])
			if !ValidChapter(from) || !ValidChapter(to) {
				return nil, fmt.Errorf("invalid chapter range %q: chapters must be between 1 and %d", part, Chapters)
			}
			if from > to {
				return nil, fmt.Errorf("invalid chapter range %q: start is after end", part)
			}
			for c := from; c <= to; c++ {
				chapters = append(chapters, c)
			}
			continue
		}

		if n, err := strconv.Atoi(part); err == nil {
			if !ValidChapter(n) {
				return nil, fmt.Errorf("invalid chapter %d: must be between 1 and %d", n, Chapters)
			}
			chapters = append(chapters, n)
			continue
		}

		c, ok := FindChapter(part)
		if !ok {
			return nil, fmt.Errorf("unknown chapter %q", part)
		}
		chapters = append(chapters, c)
	}

	slices.Sort(chapters)
	return slices.Compact(chapters), nil
}
