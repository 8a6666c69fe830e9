package exclusion

import (
	"sort"

	"manna/internal/catalog"
)

// Set holds the citations already used, keyed case-insensitively.
type Set struct {
	entries map[string]string
}

// NewSet returns an empty exclusion set.
func NewSet() *Set {
	return &Set{entries: make(map[string]string)}
}

// Add records a citation. Insert-only; adding an existing member is a no-op.
func (s *Set) Add(c catalog.Citation) {
	if c.IsZero() {
		return
	}
	if _, ok := s.entries[c.Key()]; !ok {
		s.entries[c.Key()] = c.String()
	}
}

// AddString records a raw citation string when it parses as a citation.
// Unparseable strings are kept verbatim so legacy file contents survive a
// load/save round trip.
func (s *Set) AddString(raw string) {
	if raw == "" {
		return
	}
	if citation, ok := catalog.ParseCitation(raw); ok {
		s.Add(citation)
		return
	}
	s.entries[raw] = raw
}

// Contains reports whether the citation was already used.
func (s *Set) Contains(c catalog.Citation) bool {
	if s == nil {
		return false
	}
	_, ok := s.entries[c.Key()]
	return ok
}

// Citations returns the members in sorted order, keeping prompt text and file
// contents stable across runs.
func (s *Set) Citations() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.entries))
	for _, value := range s.entries {
		out = append(out, value)
	}
	sort.Strings(out)
	return out
}

// Len returns the member count.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}
