// Package quran holds the static chapter index and verse addressing.
//
// The index is a fixed domain fact: 114 chapters with known verse counts.
// It is never fetched or derived at runtime.
//
// # Verse Keys
//
// A verse is addressed by its key "<chapter>:<verse>", the same form the
// quran.com API accepts in its verse_key parameter:
//
//	key, err := quran.ParseVerseKey("2:255")
//
// # Chapter Selection
//
// ParseSelection accepts a comma-separated list of chapter numbers, ranges
// and transliterated names. Names are matched fuzzily:
//
//	quran.ParseSelection("1-3,18,yasin") // [1 2 3 18 36]
package quran
