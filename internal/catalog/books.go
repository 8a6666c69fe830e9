package catalog

import "strings"

// canonicalBooks lists the New Testament book names for each supported
// language edition, in canonical order.
var canonicalBooks = map[string][]string{
	"es": {
		"Mateo", "Marcos", "Lucas", "Juan", "Hechos", "Romanos",
		"1 Corintios", "2 Corintios", "Gálatas", "Efesios", "Filipenses",
		"Colosenses", "1 Tesalonicenses", "2 Tesalonicenses", "1 Timoteo",
		"2 Timoteo", "Tito", "Filemón", "Hebreos", "Santiago", "1 Pedro",
		"2 Pedro", "1 Juan", "2 Juan", "3 Juan", "Judas", "Apocalipsis",
	},
	"en": {
		"Matthew", "Mark", "Luke", "John", "Acts", "Romans",
		"1 Corinthians", "2 Corinthians", "Galatians", "Ephesians",
		"Philippians", "Colossians", "1 Thessalonians", "2 Thessalonians",
		"1 Timothy", "2 Timothy", "Titus", "Philemon", "Hebrews", "James",
		"1 Peter", "2 Peter", "1 John", "2 John", "3 John", "Jude",
		"Revelation",
	},
	"pt": {
		"Mateus", "Marcos", "Lucas", "João", "Atos", "Romanos",
		"1 Coríntios", "2 Coríntios", "Gálatas", "Efésios", "Filipenses",
		"Colossenses", "1 Tessalonicenses", "2 Tessalonicenses", "1 Timóteo",
		"2 Timóteo", "Tito", "Filemom", "Hebreus", "Tiago", "1 Pedro",
		"2 Pedro", "1 João", "2 João", "3 João", "Judas", "Apocalipse",
	},
	"fr": {
		"Matthieu", "Marc", "Luc", "Jean", "Actes", "Romains",
		"1 Corinthiens", "2 Corinthiens", "Galates", "Éphésiens",
		"Philippiens", "Colossiens", "1 Thessaloniciens",
		"2 Thessaloniciens", "1 Timothée", "2 Timothée", "Tite", "Philémon",
		"Hébreux", "Jacques", "1 Pierre", "2 Pierre", "1 Jean", "2 Jean",
		"3 Jean", "Jude", "Apocalypse",
	},
	"zh": {
		"马太福音", "马可福音", "路加福音", "约翰福音", "使徒行传", "罗马书",
		"哥林多前书", "哥林多后书", "加拉太书", "以弗所书", "腓立比书", "歌罗西书",
		"帖撒罗尼迦前书", "帖撒罗尼迦后书", "提摩太前书", "提摩太后书", "提多书",
		"腓利门书", "希伯来书", "雅各书", "彼得前书", "彼得后书", "约翰一书",
		"约翰二书", "约翰三书", "犹大书", "启示录",
	},
	"ja": {
		"マタイの福音書", "マルコの福音書", "ルカの福音書", "ヨハネの福音書", "使徒の働き",
		"ローマ人への手紙", "コリント人への手紙第一", "コリント人への手紙第二",
		"ガラテヤ人への手紙", "エペソ人への手紙", "ピリピ人への手紙", "コロサイ人への手紙",
		"テサロニケ人への手紙第一", "テサロニケ人への手紙第二", "テモテへの手紙第一",
		"テモテへの手紙第二", "テトスへの手紙", "ピレモンへの手紙", "ヘブル人への手紙",
		"ヤコブの手紙", "ペテロの手紙第一", "ペテロの手紙第二", "ヨハネの手紙第一",
		"ヨハネの手紙第二", "ヨハネの手紙第三", "ユダの手紙", "ヨハネの黙示録",
	},
}

// bookAbbreviations maps Spanish book names to the short forms used to keep
// prompt token counts down. Other editions fall back to the full name.
var bookAbbreviations = map[string]string{
	"Mateo": "Mt", "Marcos": "Mr", "Lucas": "Lc", "Juan": "Jn",
	"Hechos": "Hch", "Romanos": "Ro", "1 Corintios": "1 Co",
	"2 Corintios": "2 Co", "Gálatas": "Gá", "Efesios": "Ef",
	"Filipenses": "Fil", "Colosenses": "Col", "1 Tesalonicenses": "1 Ts",
	"2 Tesalonicenses": "2 Ts", "1 Timoteo": "1 Ti", "2 Timoteo": "2 Ti",
	"Tito": "Tit", "Filemón": "Flm", "Hebreos": "He", "Santiago": "Stg",
	"1 Pedro": "1 P", "2 Pedro": "2 P", "1 Juan": "1 Jn", "2 Juan": "2 Jn",
	"3 Juan": "3 Jn", "Judas": "Jud", "Apocalipsis": "Ap",
}

// Books returns the canonical New Testament book names for a language, or nil
// when the language is not supported.
func Books(lang string) []string {
	books := canonicalBooks[strings.ToLower(strings.TrimSpace(lang))]
	if books == nil {
		return nil
	}
	out := make([]string, len(books))
	copy(out, books)
	return out
}

// IsCanonicalBook reports whether the raw book name matches a canonical book
// of the language edition, case-insensitively.
func IsCanonicalBook(lang, book string) bool {
	_, ok := NormalizeBook(lang, book)
	return ok
}

// NormalizeBook maps a raw book name onto the canonical spelling for the
// language edition. The generation service frequently drops the ordinal
// prefix of numbered books ("Corintios" for "1 Corintios") or prepends stray
// words from surrounding prose; both cases are recovered here.
func NormalizeBook(lang, book string) (string, bool) {
	books := canonicalBooks[strings.ToLower(strings.TrimSpace(lang))]
	if books == nil {
		return "", false
	}
	raw := collapseSpaces(book)
	if raw == "" {
		return "", false
	}

	lower := strings.ToLower(raw)
	for _, canonical := range books {
		if lower == strings.ToLower(canonical) {
			return canonical, true
		}
	}
	// Ordinal-less match: "Corintios" resolves to the first numbered book.
	for _, canonical := range books {
		trimmed := strings.TrimLeft(canonical, "123 ")
		if trimmed != canonical && lower == strings.ToLower(trimmed) {
			return canonical, true
		}
	}
	// The extraction pattern can swallow leading prose words; retry with the
	// longest suffix of the raw name that still matches.
	words := strings.Fields(raw)
	for i := 1; i < len(words); i++ {
		if canonical, ok := NormalizeBook(lang, strings.Join(words[i:], " ")); ok {
			return canonical, true
		}
	}
	return "", false
}

// Abbreviate renders a citation with the short book form where one exists.
// Used only to compact prompts; stored records always carry full names.
func Abbreviate(c Citation) string {
	if abbrev, ok := bookAbbreviations[c.Book]; ok {
		return abbrev + " " + c.Reference
	}
	return c.String()
}
