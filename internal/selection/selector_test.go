package selection

import (
	"errors"
	"math/rand"
	"testing"

	"manna/internal/catalog"
	"manna/internal/exclusion"
	"manna/internal/logging"
)

func newSelector() *Selector {
	return NewSelector(logging.NewNop(), WithRand(rand.New(rand.NewSource(1))))
}

func TestSelectHonorsHint(t *testing.T) {
	selector := newSelector()
	got, err := selector.Select(catalog.ForLanguage("es"), exclusion.NewSet(), "Juan 3:16")
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	if got.String() != "Juan 3:16" {
		t.Fatalf("expected hinted citation, got %q", got.String())
	}
}

func TestSelectIgnoresExcludedHint(t *testing.T) {
	selector := newSelector()
	excluded := exclusion.NewSet()
	excluded.Add(catalog.Citation{Book: "Juan", Reference: "3:16"})

	got, err := selector.Select(catalog.ForLanguage("es"), excluded, "Juan 3:16")
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	if got.String() == "Juan 3:16" {
		t.Fatal("hint should not be used when already excluded")
	}
}

func TestSelectIgnoresForeignHint(t *testing.T) {
	selector := newSelector()
	got, err := selector.Select(catalog.ForLanguage("es"), exclusion.NewSet(), "Salmos 23:1")
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	if got.String() == "Salmos 23:1" {
		t.Fatal("hint outside the catalog must never be selected")
	}
}

func TestSelectNeverReturnsExcluded(t *testing.T) {
	selector := newSelector()
	all := catalog.ForLanguage("es")
	excluded := exclusion.NewSet()
	for i := 0; i < all.Len()-1; i++ {
		citation, err := selector.Select(all, excluded, "")
		if err != nil {
			t.Fatalf("Select returned error on iteration %d: %v", i, err)
		}
		if excluded.Contains(citation) {
			t.Fatalf("selected an excluded citation: %s", citation.String())
		}
		excluded.Add(citation)
	}
}

func TestSelectExhaustedCatalog(t *testing.T) {
	selector := newSelector()
	all := catalog.ForLanguage("es")
	excluded := exclusion.NewSet()
	for _, citation := range all.Citations() {
		excluded.Add(citation)
	}
	_, err := selector.Select(all, excluded, "")
	if !errors.Is(err, ErrCatalogExhausted) {
		t.Fatalf("expected ErrCatalogExhausted, got %v", err)
	}
}
