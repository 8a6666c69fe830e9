package checkpoint

import (
	"os"
	"path/filepath"
	"testing"

	"manna/internal/devotional"
	"manna/internal/logging"
)

func storePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "checkpoint.json")
}

func TestLoadMissingFile(t *testing.T) {
	store := NewStore(storePath(t), logging.NewNop())
	if cp, ok := store.Load(); ok || cp != nil {
		t.Fatalf("expected no checkpoint, got %+v", cp)
	}
}

func TestSaveLoadClearRoundTrip(t *testing.T) {
	path := storePath(t)
	store := NewStore(path, logging.NewNop())

	tree := devotional.NewResultTree()
	tree.Append(devotional.Record{ID: "juan316RVR1960", Language: "es", Date: "2025-03-09", Version: "RVR1960"})
	store.Save(&Checkpoint{Results: tree, NextDate: "2025-03-10"})

	loaded, ok := store.Load()
	if !ok {
		t.Fatal("expected checkpoint to load")
	}
	if loaded.NextDate != "2025-03-10" {
		t.Fatalf("unexpected next date %q", loaded.NextDate)
	}
	if loaded.Results.Len() != 1 {
		t.Fatalf("expected 1 record, got %d", loaded.Results.Len())
	}

	store.Clear()
	if _, ok := store.Load(); ok {
		t.Fatal("checkpoint should be gone after Clear")
	}
	// Clearing twice is harmless.
	store.Clear()
}

func TestLoadCorruptFile(t *testing.T) {
	path := storePath(t)
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	store := NewStore(path, logging.NewNop())
	if _, ok := store.Load(); ok {
		t.Fatal("corrupt checkpoint must not load")
	}
}

func TestLoadMissingNextDate(t *testing.T) {
	path := storePath(t)
	if err := os.WriteFile(path, []byte(`{"response_data": {}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	store := NewStore(path, logging.NewNop())
	if _, ok := store.Load(); ok {
		t.Fatal("checkpoint without next date must not load")
	}
}
