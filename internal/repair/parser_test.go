package repair

import (
	"encoding/json"
	"errors"
	"testing"

	"manna/internal/catalog"
	"manna/internal/exclusion"
)

func payload(t *testing.T, verse string) string {
	t.Helper()
	raw, err := json.Marshal(map[string]any{
		"id":        "ignored",
		"date":      "2025-03-09",
		"language":  "es",
		"version":   "RVR1960",
		"versiculo": verse,
		"reflexion": "Una reflexión.",
		"para_meditar": []map[string]string{
			{"cita": "Romanos 5:8", "texto": `"Mas Dios muestra su amor para con nosotros."`},
		},
		"oracion": "Gracias Señor, en el nombre de Jesús, amén.",
		"tags":    []string{"Amor", "Gracia"},
	})
	if err != nil {
		t.Fatal(err)
	}
	return string(raw)
}

func opts() Options {
	return Options{Language: "es", Version: "RVR1960", Date: "2025-03-09"}
}

func reasonOf(t *testing.T, err error) Reason {
	t.Helper()
	var re *RetryableError
	if !errors.As(err, &re) {
		t.Fatalf("expected retryable error, got %v", err)
	}
	return re.Reason
}

func TestParseWellFormedResponse(t *testing.T) {
	raw := payload(t, `Juan 3:16 RVR1960: "Porque de tal manera amó Dios al mundo"`)

	record, err := Parse(raw, exclusion.NewSet(), opts())
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if record.ID != "juan316RVR1960" {
		t.Fatalf("unexpected id %q", record.ID)
	}
	if record.VerseText != `Juan 3:16 RVR1960: "Porque de tal manera amó Dios al mundo"` {
		t.Fatalf("unexpected verse text %q", record.VerseText)
	}
	if len(record.Meditation) != 1 || record.Meditation[0].Citation != "Romanos 5:8" {
		t.Fatalf("unexpected meditations %+v", record.Meditation)
	}
	if record.Meditation[0].Text != "Mas Dios muestra su amor para con nosotros." {
		t.Fatalf("meditation text kept quoting: %q", record.Meditation[0].Text)
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	// Malformed decorations seen in live responses must all collapse to the
	// exact canonical verse format.
	cases := []string{
		`Juan 3:16: "Texto" (RVR1960)`,
		`18: Juan 3:16: "Texto" (RVR1960)`,
		`Juan 3:16 RVR1960 RVR1960: "Texto"`,
		`Juan 3:16 ES-RVR1960: "Texto"`,
		`"Texto" Juan 3:16 RVR1960`,
	}
	for _, verse := range cases {
		record, err := Parse(payload(t, verse), exclusion.NewSet(), opts())
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", verse, err)
		}
		if record.VerseText != `Juan 3:16 RVR1960: "Texto"` {
			t.Fatalf("Parse(%q) verse = %q", verse, record.VerseText)
		}
	}
}

func TestParseCodeFenceAndCommentary(t *testing.T) {
	raw := "Claro, aquí está el devocional:\n```json\n" +
		payload(t, `Juan 3:16 RVR1960: "Texto"`) + "\n```\nEspero que te sirva."

	record, err := Parse(raw, exclusion.NewSet(), opts())
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if record.ID != "juan316RVR1960" {
		t.Fatalf("unexpected id %q", record.ID)
	}
}

func TestParseMalformedJSON(t *testing.T) {
	_, err := Parse(`{"versiculo": `, exclusion.NewSet(), opts())
	if got := reasonOf(t, err); got != ReasonMalformedJSON {
		t.Fatalf("reason = %s, want %s", got, ReasonMalformedJSON)
	}
}

func TestParseMissingFields(t *testing.T) {
	_, err := Parse(`{"versiculo": "Juan 3:16: \"Texto\"", "reflexion": "r"}`, exclusion.NewSet(), opts())
	if got := reasonOf(t, err); got != ReasonMissingFields {
		t.Fatalf("reason = %s, want %s", got, ReasonMissingFields)
	}
}

func TestParseTypeMismatch(t *testing.T) {
	raw := `{"versiculo": 42, "reflexion": "r", "para_meditar": [], "oracion": "o", "tags": ["a","b"]}`
	_, err := Parse(raw, exclusion.NewSet(), opts())
	if got := reasonOf(t, err); got != ReasonTypeMismatch {
		t.Fatalf("reason = %s, want %s", got, ReasonTypeMismatch)
	}
}

func TestParseNoCitationFound(t *testing.T) {
	_, err := Parse(payload(t, `"Un texto sin ninguna referencia"`), exclusion.NewSet(), opts())
	if got := reasonOf(t, err); got != ReasonNoCitationFound {
		t.Fatalf("reason = %s, want %s", got, ReasonNoCitationFound)
	}
}

func TestParseForeignCitationRejected(t *testing.T) {
	_, err := Parse(payload(t, `Génesis 1:1 RVR1960: "En el principio"`), exclusion.NewSet(), opts())
	if got := reasonOf(t, err); got != ReasonNoCitationFound {
		t.Fatalf("reason = %s, want %s", got, ReasonNoCitationFound)
	}
}

func TestParseDuplicateVerse(t *testing.T) {
	used := exclusion.NewSet()
	used.Add(catalog.Citation{Book: "Juan", Reference: "3:16"})

	_, err := Parse(payload(t, `Juan 3:16 RVR1960: "Texto"`), used, opts())
	if got := reasonOf(t, err); got != ReasonDuplicateVerse {
		t.Fatalf("reason = %s, want %s", got, ReasonDuplicateVerse)
	}
}

func TestParseExpectedCitationOverridesExclusion(t *testing.T) {
	// Sibling translations reuse the day's citation, which is already in the
	// exclusion set by the time they are generated.
	used := exclusion.NewSet()
	used.Add(catalog.Citation{Book: "Juan", Reference: "3:16"})

	expected := catalog.Citation{Book: "Juan", Reference: "3:16"}
	o := opts()
	o.Expected = &expected

	record, err := Parse(payload(t, `Juan 3:16 RVR1960: "Texto"`), used, o)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if record.ID != "juan316RVR1960" {
		t.Fatalf("unexpected id %q", record.ID)
	}

	mismatch := catalog.Citation{Book: "Romanos", Reference: "8:28"}
	o.Expected = &mismatch
	_, err = Parse(payload(t, `Juan 3:16 RVR1960: "Texto"`), exclusion.NewSet(), o)
	if got := reasonOf(t, err); got != ReasonVerseMismatch {
		t.Fatalf("reason = %s, want %s", got, ReasonVerseMismatch)
	}

	// A mismatching citation that is also already used reports the duplicate.
	_, err = Parse(payload(t, `Juan 3:16 RVR1960: "Texto"`), used, o)
	if got := reasonOf(t, err); got != ReasonDuplicateVerse {
		t.Fatalf("reason = %s, want %s", got, ReasonDuplicateVerse)
	}
}

func TestParseEmptyVerseText(t *testing.T) {
	_, err := Parse(payload(t, `Juan 3:16 RVR1960:`), exclusion.NewSet(), opts())
	if got := reasonOf(t, err); got != ReasonEmptyVerseText {
		t.Fatalf("reason = %s, want %s", got, ReasonEmptyVerseText)
	}
}

func TestParseLenientBookNormalization(t *testing.T) {
	record, err := Parse(payload(t, `Corintios 13:13 RVR1960: "Y ahora permanecen la fe, la esperanza y el amor"`), exclusion.NewSet(), opts())
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if record.VerseText != `1 Corintios 13:13 RVR1960: "Y ahora permanecen la fe, la esperanza y el amor"` {
		t.Fatalf("book not normalized: %q", record.VerseText)
	}

	strict := opts()
	strict.Strict = true
	_, err = Parse(payload(t, `Corintios 13:13 RVR1960: "Y ahora permanecen la fe, la esperanza y el amor"`), exclusion.NewSet(), strict)
	if got := reasonOf(t, err); got != ReasonNoCitationFound {
		t.Fatalf("strict mode should reject: got %s", got)
	}
}

func TestParseMeditationVariants(t *testing.T) {
	raw, err := json.Marshal(map[string]any{
		"versiculo": `Juan 3:16 RVR1960: "Texto"`,
		"reflexion": "r",
		"para_meditar": []any{
			map[string]string{"cita": "Filipenses 4:6", "texto": `"Por nada estéis afanosos"`},
			`Romanos 8:28 "A los que aman a Dios todas las cosas les ayudan a bien"`,
			map[string]string{"cita": "sin referencia", "texto": "texto suelto"},
		},
		"oracion": "o",
		"tags":    []string{"Fe"},
	})
	if err != nil {
		t.Fatal(err)
	}

	record, parseErr := Parse(string(raw), exclusion.NewSet(), opts())
	if parseErr != nil {
		t.Fatalf("Parse returned error: %v", parseErr)
	}
	if len(record.Meditation) != 3 {
		t.Fatalf("expected 3 meditations, got %d", len(record.Meditation))
	}
	if record.Meditation[0].Citation != "Filipenses 4:6" || record.Meditation[0].Text != "Por nada estéis afanosos" {
		t.Fatalf("unexpected first meditation %+v", record.Meditation[0])
	}
	if record.Meditation[1].Citation != "Romanos 8:28" {
		t.Fatalf("string entry not split: %+v", record.Meditation[1])
	}
	// No recognizable citation: passes through unchanged.
	if record.Meditation[2].Citation != "sin referencia" || record.Meditation[2].Text != "texto suelto" {
		t.Fatalf("unexpected passthrough meditation %+v", record.Meditation[2])
	}
}

func TestRepairRules(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) string
		in   string
		want string
	}{
		{"code fence", stripCodeFence, "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"code fence bare", stripCodeFence, "```\n{\"a\":1}\n```", `{"a":1}`},
		{"brace slice", sliceBraces, `prefix {"a":1} suffix`, `{"a":1}`},
		{"leading verse number", stripLeadingVerseNumber, `18: Porque por gracia`, "Porque por gracia"},
		{"language version tag", stripLanguageVersionTag, "9 JA-新改訳2003: イエスは言われた", "イエスは言われた"},
		{"no-op on citation", stripLeadingVerseNumber, "Juan 3:16: texto", "Juan 3:16: texto"},
	}
	for _, tc := range tests {
		if got := tc.fn(tc.in); got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestStripVersionTags(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`"Texto" (RVR1960)`, "Texto"},
		{`RVR1960 RVR1960: "Texto"`, "Texto"},
		{`ES-RVR1960: "Texto"`, "Texto"},
	}
	for _, tc := range tests {
		if got := cleanVerseText(tc.in, "RVR1960"); got != tc.want {
			t.Errorf("cleanVerseText(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
