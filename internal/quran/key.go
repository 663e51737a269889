package quran

import (
	"fmt"
	"strconv"
	"strings"
)

// VerseKey identifies a single verse by chapter and verse number.
type VerseKey struct {
	Chapter int
	Verse   int
}

// String renders the key as "<chapter>:<verse>".
func (k VerseKey) String() string {
	return strconv.Itoa(k.Chapter) + ":" + strconv.Itoa(k.Verse)
}

// Valid reports whether the key addresses a verse present in the index.
func (k VerseKey) Valid() bool {
	return k.Verse >= 1 && k.Verse <= VerseCount(k.Chapter)
}

// ParseVerseKey parses "<chapter>:<verse>" and checks it against the index.
func ParseVerseKey(s string) (VerseKey, error) {
	chapterPart, versePart, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return VerseKey{}, fmt.Errorf("invalid verse key %q: expected <chapter>:<verse>", s)
	}

	chapter, err := strconv.Atoi(chapterPart)
	if err != nil {
		return VerseKey{}, fmt.Errorf("invalid verse key %q: chapter is not a number", s)
	}
	verse, err := strconv.Atoi(versePart)
	if err != nil {
		return VerseKey{}, fmt.Errorf("invalid verse key %q: verse is not a number", s)
	}

	if !ValidChapter(chapter) {
		return VerseKey{}, fmt.Errorf("invalid verse key %q: chapter must be between 1 and %d", s, Chapters)
	}
	key := VerseKey{Chapter: chapter, Verse: verse}
	if !key.Valid() {
		return VerseKey{}, fmt.Errorf("invalid verse key %q: chapter %d has %d verses", s, chapter, VerseCount(chapter))
	}
	return key, nil
}
