// Package selection picks the day's primary citation: an unused member of the
// language catalog, honoring an optional hint. This is the anti-repetition
// mechanism; the advisory exclusion list embedded in prompts only nudges the
// generation service, while selection guarantees the chosen passage is fresh.
package selection

import (
	"errors"
	"log/slog"
	"math/rand"
	"time"

	"manna/internal/catalog"
	"manna/internal/exclusion"
	"manna/internal/logging"
)

// ErrCatalogExhausted indicates every catalog citation has already been used.
// Fatal for the affected date; the store must be reset or the catalog grown.
var ErrCatalogExhausted = errors.New("no unused citations remain in the catalog")

// Selector chooses citations for generation.
type Selector struct {
	rng    *rand.Rand
	logger *slog.Logger
}

// Option customizes a Selector.
type Option func(*Selector)

// WithRand overrides the random source (useful for deterministic tests).
func WithRand(rng *rand.Rand) Option {
	return func(s *Selector) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// NewSelector constructs a Selector.
func NewSelector(logger *slog.Logger, opts ...Option) *Selector {
	selector := &Selector{
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		logger: logging.NewComponentLogger(logger, "verse-selector"),
	}
	for _, opt := range opts {
		opt(selector)
	}
	return selector
}

// Select returns an unused citation from the catalog. A hint that is a
// catalog member and not yet excluded wins deterministically; otherwise the
// pick is uniform over the remaining citations. Returns ErrCatalogExhausted
// when nothing remains.
func (s *Selector) Select(all catalog.Set, excluded *exclusion.Set, hint string) (catalog.Citation, error) {
	available := make([]catalog.Citation, 0, all.Len())
	for _, citation := range all.Citations() {
		if !excluded.Contains(citation) {
			available = append(available, citation)
		}
	}
	if len(available) == 0 {
		return catalog.Citation{}, ErrCatalogExhausted
	}

	if hint != "" {
		if citation, ok := catalog.ParseCitation(hint); ok {
			switch {
			case !all.Contains(citation):
				s.logger.Info("verse hint is not in the catalog, picking at random", logging.String(logging.FieldCitation, hint))
			case excluded.Contains(citation):
				s.logger.Info("verse hint already used, picking at random", logging.String(logging.FieldCitation, hint))
			default:
				s.logger.Info("using hinted citation", logging.String(logging.FieldCitation, citation.String()))
				return citation, nil
			}
		} else {
			s.logger.Warn("verse hint is not a valid citation", logging.String(logging.FieldCitation, hint))
		}
	}

	selected := available[s.rng.Intn(len(available))]
	s.logger.Info("citation selected", logging.String(logging.FieldCitation, selected.String()))
	return selected, nil
}
