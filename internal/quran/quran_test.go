package quran

import (
	"slices"
	"testing"
)

func TestIndex(t *testing.T) {
	t.Parallel()

	if got := TotalVerses(); got != 6236 {
		t.Errorf("TotalVerses() = %d, want 6236", got)
	}
	if got := len(All()); got != Chapters {
		t.Errorf("len(All()) = %d, want %d", got, Chapters)
	}

	tests := []struct {
		chapter int
		verses  int
		name    string
	}{
		{1, 7, "Al-Fatihah"},
		{2, 286, "Al-Baqarah"},
		{36, 83, "Ya-Sin"},
		{95, 8, "At-Tin"},
		{96, 19, "Al-Alaq"},
		{97, 5, "Al-Qadr"},
		{98, 8, "Al-Bayyinah"},
		{103, 3, "Al-Asr"},
		{114, 6, "An-Nas"},
		{0, 0, ""},
		{115, 0, ""},
		{-1, 0, ""},
	}

	for _, tt := range tests {
		if got := VerseCount(tt.chapter); got != tt.verses {
			t.Errorf("VerseCount(%d) = %d, want %d", tt.chapter, got, tt.verses)
		}
		if got := Name(tt.chapter); got != tt.name {
			t.Errorf("Name(%d) = %q, want %q", tt.chapter, got, tt.name)
		}
	}
}

func TestVerses(t *testing.T) {
	t.Parallel()

	keys := Verses(1)
	if len(keys) != 7 {
		t.Fatalf("Verses(1) returned %d keys, want 7", len(keys))
	}
	for i, k := range keys {
		if k.Chapter != 1 || k.Verse != i+1 {
			t.Errorf("Verses(1)[%d] = %v, want 1:%d", i, k, i+1)
		}
	}

	if got := Verses(0); len(got) != 0 {
		t.Errorf("Verses(0) returned %d keys, want 0", len(got))
	}
}

func TestVerseKey(t *testing.T) {
	t.Parallel()

	k := VerseKey{Chapter: 2, Verse: 255}
	if k.String() != "2:255" {
		t.Errorf("String() = %q, want %q", k.String(), "2:255")
	}
	if !k.Valid() {
		t.Error("2:255 should be valid")
	}
	if (VerseKey{Chapter: 1, Verse: 8}).Valid() {
		t.Error("1:8 should be invalid")
	}
	if (VerseKey{Chapter: 1, Verse: 0}).Valid() {
		t.Error("1:0 should be invalid")
	}
}

func TestParseVerseKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    VerseKey
		wantErr bool
	}{
		{"1:1", VerseKey{1, 1}, false},
		{"2:255", VerseKey{2, 255}, false},
		{" 114:6 ", VerseKey{114, 6}, false},
		{"1:7", VerseKey{1, 7}, false},
		{"1:8", VerseKey{}, true},
		{"115:1", VerseKey{}, true},
		{"0:1", VerseKey{}, true},
		{"1", VerseKey{}, true},
		{"a:1", VerseKey{}, true},
		{"1:b", VerseKey{}, true},
		{"", VerseKey{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := ParseVerseKey(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseVerseKey(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseVerseKey(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFindChapter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query string
		want  int
		ok    bool
	}{
		{"Al-Fatihah", 1, true},
		{"al fatihah", 1, true},
		{"yasin", 36, true},
		{"YA-SIN", 36, true},
		{"kahf", 18, true},
		{"fatiha", 1, true},
		{"An-Nas", 114, true},
		{"", 0, false},
		{"---", 0, false},
		{"zzzzzz", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			t.Parallel()
			got, ok := FindChapter(tt.query)
			if ok != tt.ok || got != tt.want {
				t.Errorf("FindChapter(%q) = (%d, %v), want (%d, %v)", tt.query, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestSearchChapters(t *testing.T) {
	t.Parallel()

	if got := SearchChapters(""); len(got) != Chapters {
		t.Errorf("SearchChapters(\"\") returned %d chapters, want %d", len(got), Chapters)
	}

	got := SearchChapters("kahf")
	if len(got) == 0 || got[0] != 18 {
		t.Errorf("SearchChapters(\"kahf\") = %v, want 18 first", got)
	}
}

func TestParseSelection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    []int
		wantErr bool
	}{
		{name: "empty means all", input: "", want: All()},
		{name: "single", input: "18", want: []int{18}},
		{name: "range", input: "1-3", want: []int{1, 2, 3}},
		{name: "range with spaces", input: "112 - 114", want: []int{112, 113, 114}},
		{name: "mixed", input: "1-3,18,yasin", want: []int{1, 2, 3, 18, 36}},
		{name: "sorted and deduped", input: "114,2,1-2", want: []int{1, 2, 114}},
		{name: "out of range", input: "115", wantErr: true},
		{name: "zero", input: "0", wantErr: true},
		{name: "reversed range", input: "5-3", wantErr: true},
		{name: "range past end", input: "110-120", wantErr: true},
		{name: "empty element", input: "1,,2", wantErr: true},
		{name: "unknown name", input: "zzzzzz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseSelection(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSelection(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && !slices.Equal(got, tt.want) {
				t.Errorf("ParseSelection(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
