package quran

// Chapters is the number of chapters in the index.
const Chapters = 114

// verseCounts holds the verse count per chapter. Index 0 is unused.
var verseCounts = [Chapters + 1]int{
	0, 7, 286, 200, 176, 120, 165, 206, 75, 129, 109, 123, 111, 43, 52, 99, 128, 111, 110, 98, 135, 112, 78, 118, 64, 77, 227, 93, 88, 69,
	60, 34, 30, 73, 54, 45, 83, 182, 88, 75, 85, 54, 53, 89, 59, 37, 35, 38, 29, 18, 45, 60, 49, 62, 55, 78, 96, 29, 22, 24,
	13, 14, 11, 11, 18, 12, 12, 30, 52, 52, 44, 28, 28, 20, 56, 40, 31, 50, 40, 46, 42, 29, 19, 36, 25, 22, 17, 19, 26, 30,
	20, 15, 21, 11, 8, 8, 19, 5, 8, 8, 11, 11, 8, 3, 9, 5, 4, 7, 3, 6, 3, 5, 4, 5, 6,
}

// chapterNames holds the transliterated chapter names. Index 0 is unused.
var chapterNames = [Chapters + 1]string{
	"",
	"Al-Fatihah", "Al-Baqarah", "Aal-E-Imran", "An-Nisa", "Al-Maidah", "Al-Anam", "Al-Araf", "Al-Anfal", "At-Tawbah", "Yunus",
	"Hud", "Yusuf", "Ar-Rad", "Ibrahim", "Al-Hijr", "An-Nahl", "Al-Isra", "Al-Kahf", "Maryam", "Taha",
	"Al-Anbiya", "Al-Hajj", "Al-Muminun", "An-Nur", "Al-Furqan", "Ash-Shuara", "An-Naml", "Al-Qasas", "Al-Ankabut", "Ar-Rum",
	"Luqman", "As-Sajdah", "Al-Ahzab", "Saba", "Fatir", "Ya-Sin", "As-Saffat", "Sad", "Az-Zumar", "Ghafir",
	"Fussilat", "Ash-Shura", "Az-Zukhruf", "Ad-Dukhan", "Al-Jathiyah", "Al-Ahqaf", "Muhammad", "Al-Fath", "Al-Hujurat", "Qaf",
	"Adh-Dhariyat", "At-Tur", "An-Najm", "Al-Qamar", "Ar-Rahman", "Al-Waqiah", "Al-Hadid", "Al-Mujadila", "Al-Hashr", "Al-Mumtahanah",
	"As-Saff", "Al-Jumuah", "Al-Munafiqun", "At-Taghabun", "At-Talaq", "At-Tahrim", "Al-Mulk", "Al-Qalam", "Al-Haqqah", "Al-Maarij",
	"Nuh", "Al-Jinn", "Al-Muzzammil", "Al-Muddaththir", "Al-Qiyamah", "Al-Insan", "Al-Mursalat", "An-Naba", "An-Naziat", "Abasa",
	"At-Takwir", "Al-Infitar", "Al-Mutaffifin", "Al-Inshiqaq", "Al-Buruj", "At-Tariq", "Al-Ala", "Al-Ghashiyah", "Al-Fajr", "Al-Balad",
	"Ash-Shams", "Al-Lail", "Ad-Dhuha", "Ash-Sharh", "At-Tin", "Al-Alaq", "Al-Qadr", "Al-Bayyinah", "Az-Zalzalah", "Al-Adiyat",
	"Al-Qariah", "At-Takathur", "Al-Asr", "Al-Humazah", "Al-Fil", "Quraysh", "Al-Maun", "Al-Kawthar", "Al-Kafirun", "An-Nasr",
	"Al-Masad", "Al-Ikhlas", "Al-Falaq", "An-Nas",
}

// ValidChapter reports whether c is a chapter number in [1, Chapters].
func ValidChapter(c int) bool {
	return c >= 1 && c <= Chapters
}

// VerseCount returns the number of verses in chapter c, or 0 if c is out of range.
func VerseCount(c int) int {
	if !ValidChapter(c) {
		return 0
	}
	return verseCounts[c]
}

// Name returns the transliterated name of chapter c, or "" if c is out of range.
func Name(c int) string {
	if !ValidChapter(c) {
		return ""
	}
	return chapterNames[c]
}

// TotalVerses returns the number of verses across the given chapters.
// With no arguments it covers the whole index.
func TotalVerses(chapters ...int) int {
	if len(chapters) == 0 {
		chapters = All()
	}
	total := 0
	for _, c := range chapters {
		total += VerseCount(c)
	}
	return total
}

// All returns every chapter number in ascending order.
func All() []int {
	all := make([]int, Chapters)
	for i := range all {
		all[i] = i + 1
	}
	return all
}

// Verses returns the keys of every verse in chapter c, in order.
func Verses(c int) []VerseKey {
	n := VerseCount(c)
	keys := make([]VerseKey, n)
	for v := 1; v <= n; v++ {
		keys[v-1] = VerseKey{Chapter: c, Verse: v}
	}
	return keys
}
