package devotional

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestNewErrorRecordShape(t *testing.T) {
	date := time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC)
	rec := NewErrorRecord(date, "es", "RVR1960", "respuesta vacía")

	if rec.ID != "error_20250309_es_RVR1960" {
		t.Fatalf("unexpected id %q", rec.ID)
	}
	if !rec.IsError() {
		t.Fatal("expected IsError to be true")
	}
	if rec.Date != "2025-03-09" {
		t.Fatalf("unexpected date %q", rec.Date)
	}
	if rec.Meditation == nil {
		t.Fatal("meditation slice must be non-nil so it marshals as []")
	}
	if len(rec.Tags) != 1 || rec.Tags[0] != "Error" {
		t.Fatalf("unexpected tags %v", rec.Tags)
	}
	if !strings.Contains(rec.Reflection, "respuesta vacía") {
		t.Fatalf("reflection should carry the cause, got %q", rec.Reflection)
	}
}

func TestRecordWireFieldNames(t *testing.T) {
	rec := Record{
		ID:         "juan316RVR1960",
		Date:       "2025-03-09",
		Language:   "es",
		Version:    "RVR1960",
		VerseText:  `Juan 3:16 RVR1960: "Porque de tal manera amó Dios al mundo..."`,
		Reflection: "reflexión",
		Meditation: []MeditationEntry{{Citation: "Romanos 5:8", Text: "Mas Dios muestra su amor..."}},
		Prayer:     "oración",
		Tags:       []string{"Amor", "Salvación"},
	}

	raw, err := json.Marshal(rec)
	if err != nil {
		t.Fatal(err)
	}
	for _, field := range []string{`"id"`, `"date"`, `"language"`, `"version"`, `"versiculo"`, `"reflexion"`, `"para_meditar"`, `"cita"`, `"texto"`, `"oracion"`, `"tags"`} {
		if !strings.Contains(string(raw), field) {
			t.Fatalf("marshalled record missing field %s: %s", field, raw)
		}
	}
}

func TestRecordCitation(t *testing.T) {
	rec := Record{VerseText: `Juan 3:16 RVR1960: "Porque de tal manera amó Dios al mundo"`}
	c, ok := rec.Citation()
	if !ok {
		t.Fatal("expected citation")
	}
	if c.Book != "Juan" || c.Reference != "3:16" {
		t.Fatalf("unexpected citation %+v", c)
	}
}

func TestNormalizeLanguage(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "es", want: "es"},
		{in: " EN ", want: "en"},
		{in: "ja", want: "ja"},
		{in: "de", wantErr: true},
		{in: "not a tag", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range tests {
		got, err := NormalizeLanguage(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("NormalizeLanguage(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("NormalizeLanguage(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("NormalizeLanguage(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestResultTree(t *testing.T) {
	tree := NewResultTree()
	day := time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC)

	tree.Append(Record{ID: "juan316RVR1960", Language: "es", Date: "2025-03-09", Version: "RVR1960"})
	tree.Append(Record{ID: "juan316NVI", Language: "es", Date: "2025-03-09", Version: "NVI"})
	tree.Append(NewErrorRecord(day, "en", "KJV", "timeout"))

	if got := tree.Len(); got != 3 {
		t.Fatalf("Len = %d, want 3", got)
	}
	if got := tree.ErrorCount(); got != 1 {
		t.Fatalf("ErrorCount = %d, want 1", got)
	}
	if langs := tree.Languages(); len(langs) != 2 || langs[0] != "en" || langs[1] != "es" {
		t.Fatalf("unexpected languages %v", langs)
	}
	if recs := tree.Records("es", "2025-03-09"); len(recs) != 2 {
		t.Fatalf("expected 2 es records, got %d", len(recs))
	}
	if all := tree.All(); len(all) != 3 || all[0].Language != "en" {
		t.Fatalf("unexpected All() ordering: %+v", all)
	}
}
