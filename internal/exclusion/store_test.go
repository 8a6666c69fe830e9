package exclusion

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"manna/internal/catalog"
	"manna/internal/logging"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "excluded_verses.json"), logging.NewNop())
}

func TestLoadMissingFileReturnsEmptySet(t *testing.T) {
	store := newTestStore(t)
	if got := store.Load(); got.Len() != 0 {
		t.Fatalf("expected empty set, got %d entries", got.Len())
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)
	set := NewSet()
	set.Add(catalog.Citation{Book: "Juan", Reference: "3:16"})
	set.Add(catalog.Citation{Book: "1 Corintios", Reference: "13:4-7"})
	store.Save(set)

	loaded := store.Load()
	if loaded.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", loaded.Len())
	}
	if !loaded.Contains(catalog.Citation{Book: "juan", Reference: "3:16"}) {
		t.Fatal("expected case-insensitive membership after reload")
	}
}

func TestLoadLegacyBareList(t *testing.T) {
	store := newTestStore(t)
	payload, err := json.Marshal([]string{"Juan 3:16", "Romanos 8:28"})
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(store.Path(), payload, 0o644); err != nil {
		t.Fatal(err)
	}

	loaded := store.Load()
	if loaded.Len() != 2 {
		t.Fatalf("expected 2 entries from legacy list, got %d", loaded.Len())
	}
	if !loaded.Contains(catalog.Citation{Book: "Romanos", Reference: "8:28"}) {
		t.Fatal("expected legacy entry to be present")
	}
}

func TestLoadWrappedObject(t *testing.T) {
	store := newTestStore(t)
	content := `{"versiculos_excluidos": ["Filipenses 4:13"]}`
	if err := os.WriteFile(store.Path(), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	loaded := store.Load()
	if !loaded.Contains(catalog.Citation{Book: "Filipenses", Reference: "4:13"}) {
		t.Fatal("expected wrapped entry to be present")
	}
}

func TestLoadCorruptFileReturnsEmptySet(t *testing.T) {
	store := newTestStore(t)
	if err := os.WriteFile(store.Path(), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := store.Load(); got.Len() != 0 {
		t.Fatalf("expected empty set for corrupt file, got %d entries", got.Len())
	}
}

func TestSetAddIsInsertOnly(t *testing.T) {
	set := NewSet()
	set.Add(catalog.Citation{Book: "Juan", Reference: "3:16"})
	set.Add(catalog.Citation{Book: "JUAN", Reference: "3:16"})
	if set.Len() != 1 {
		t.Fatalf("expected duplicate add to be a no-op, got %d entries", set.Len())
	}
	// First spelling wins.
	if got := set.Citations()[0]; got != "Juan 3:16" {
		t.Fatalf("expected original spelling, got %q", got)
	}
}
