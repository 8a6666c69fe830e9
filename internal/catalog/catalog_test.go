package catalog

import "testing"

func TestForLanguageIsNonEmpty(t *testing.T) {
	for _, lang := range Languages() {
		if ForLanguage(lang).Len() == 0 {
			t.Fatalf("catalog for %q is empty", lang)
		}
	}
}

func TestForLanguageUnknownReturnsEmptySet(t *testing.T) {
	if ForLanguage("de").Len() != 0 {
		t.Fatal("expected empty set for unsupported language")
	}
}

func TestCatalogBooksAreCanonical(t *testing.T) {
	for _, lang := range Languages() {
		for _, citation := range ForLanguage(lang).Citations() {
			if !IsCanonicalBook(lang, citation.Book) {
				t.Fatalf("catalog %q citation %q uses non-canonical book %q", lang, citation.String(), citation.Book)
			}
		}
	}
}

func TestContainsIsCaseInsensitive(t *testing.T) {
	set := ForLanguage("es")
	if !set.Contains(Citation{Book: "juan", Reference: "3:16"}) {
		t.Fatal("expected lowercase book to match catalog entry")
	}
	if !set.ContainsString("JUAN 3:16") {
		t.Fatal("expected uppercase citation string to match catalog entry")
	}
	if set.ContainsString("Juan 99:99") {
		t.Fatal("did not expect invented reference to match")
	}
}

func TestNormalizeBook(t *testing.T) {
	tests := []struct {
		lang  string
		input string
		want  string
		ok    bool
	}{
		{"es", "Juan", "Juan", true},
		{"es", "juan", "Juan", true},
		{"es", "Corintios", "1 Corintios", true},
		{"es", "dice Juan", "Juan", true},
		{"es", "Salmos", "", false},
		{"en", "corinthians", "1 Corinthians", true},
		{"ja", "ヨハネの福音書", "ヨハネの福音書", true},
		{"de", "Johannes", "", false},
	}
	for _, tt := range tests {
		got, ok := NormalizeBook(tt.lang, tt.input)
		if ok != tt.ok || got != tt.want {
			t.Fatalf("NormalizeBook(%q, %q) = %q %v, want %q %v", tt.lang, tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestAbbreviate(t *testing.T) {
	got := Abbreviate(Citation{Book: "1 Corintios", Reference: "13:4"})
	if got != "1 Co 13:4" {
		t.Fatalf("Abbreviate = %q, want %q", got, "1 Co 13:4")
	}
	// Editions without an abbreviation table fall back to the full name.
	got = Abbreviate(Citation{Book: "马太福音", Reference: "6:33"})
	if got != "马太福音 6:33" {
		t.Fatalf("Abbreviate fallback = %q", got)
	}
}
