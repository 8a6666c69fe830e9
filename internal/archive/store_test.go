package archive

import (
	"context"
	"testing"

	"manna/internal/devotional"
	"manna/internal/testsupport"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(testsupport.NewConfig(t))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func sampleRecord(date, lang, version string) devotional.Record {
	return devotional.Record{
		ID:         "juan316" + version,
		Date:       date,
		Language:   lang,
		Version:    version,
		VerseText:  `Juan 3:16 ` + version + `: "Texto"`,
		Reflection: "reflexión",
		Meditation: []devotional.MeditationEntry{{Citation: "Romanos 5:8", Text: "texto"}},
		Prayer:     "oración",
		Tags:       []string{"Amor", "Gracia"},
	}
}

func TestPutListRoundTrip(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	if err := store.Put(ctx, sampleRecord("2025-03-09", "es", "RVR1960")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := store.Put(ctx, sampleRecord("2025-03-10", "es", "RVR1960")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := store.Put(ctx, sampleRecord("2025-03-09", "en", "KJV")); err != nil {
		t.Fatalf("Put: %v", err)
	}

	all, err := store.List(ctx, Filter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 records, got %d", len(all))
	}
	if all[0].Date != "2025-03-09" || all[0].Language != "en" {
		t.Fatalf("unexpected ordering: %+v", all[0])
	}
	if len(all[0].Meditation) != 1 || all[0].Meditation[0].Citation != "Romanos 5:8" {
		t.Fatalf("meditations not restored: %+v", all[0].Meditation)
	}

	es, err := store.List(ctx, Filter{Language: "es", From: "2025-03-10"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(es) != 1 || es[0].Date != "2025-03-10" {
		t.Fatalf("filter not applied: %+v", es)
	}

	n, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 3 {
		t.Fatalf("Count = %d, want 3", n)
	}
}

func TestPutUpsertsSameSlot(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	rec := sampleRecord("2025-03-09", "es", "RVR1960")
	if err := store.Put(ctx, rec); err != nil {
		t.Fatalf("Put: %v", err)
	}
	rec.Reflection = "actualizada"
	if err := store.Put(ctx, rec); err != nil {
		t.Fatalf("Put (update): %v", err)
	}

	all, err := store.List(ctx, Filter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected upsert to keep 1 record, got %d", len(all))
	}
	if all[0].Reflection != "actualizada" {
		t.Fatalf("reflection not updated: %q", all[0].Reflection)
	}
}
