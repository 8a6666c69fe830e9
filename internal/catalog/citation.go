package catalog

import (
	"regexp"
	"strings"
)

// Citation identifies a scripture passage by book name and chapter:verse
// reference, optionally spanning a verse range ("Juan 3:16-18"). Equality is
// case-insensitive on the book name.
type Citation struct {
	Book      string
	Reference string
}

// citationPattern matches a book name (optionally prefixed by an ordinal 1-3)
// followed by chapter:verse digits with an optional range. Book tokens accept
// any letter script so the same pattern serves Latin, CJK, and kana editions.
var citationPattern = regexp.MustCompile(`((?:[123]\s+)?\p{L}+(?:\s+\p{L}+)*)\s+(\d+\s*:\s*\d+(?:\s*-\s*\d+)?)`)

// ParseCitation interprets the whole string as a single citation.
func ParseCitation(s string) (Citation, bool) {
	s = strings.TrimSpace(s)
	match := citationPattern.FindStringSubmatch(s)
	if match == nil || strings.TrimSpace(match[0]) != s {
		return Citation{}, false
	}
	return newCitation(match[1], match[2]), true
}

// ExtractCitation finds the first citation-shaped token in free text. The
// generation service wraps citations in punctuation, parentheses, and stray
// decoration, so only the book and reference groups are taken.
func ExtractCitation(text string) (Citation, bool) {
	match := citationPattern.FindStringSubmatch(text)
	if match == nil {
		return Citation{}, false
	}
	return newCitation(match[1], match[2]), true
}

// FindCitationIndex returns the start and end offsets of the first
// citation-shaped token in the text, or nil when none matches.
func FindCitationIndex(text string) []int {
	return citationPattern.FindStringIndex(text)
}

func newCitation(book, reference string) Citation {
	reference = strings.ReplaceAll(reference, " ", "")
	return Citation{
		Book:      collapseSpaces(book),
		Reference: reference,
	}
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// String renders the canonical citation form "<book> <chapter>:<verse>".
func (c Citation) String() string {
	if c.IsZero() {
		return ""
	}
	return c.Book + " " + c.Reference
}

// Key returns the case-folded identity used for set membership and exclusion
// bookkeeping.
func (c Citation) Key() string {
	return strings.ToLower(collapseSpaces(c.Book)) + " " + c.Reference
}

// IsZero reports whether the citation is empty.
func (c Citation) IsZero() bool {
	return c.Book == "" || c.Reference == ""
}

// IsRange reports whether the citation spans more than one verse.
func (c Citation) IsRange() bool {
	return strings.Contains(c.Reference, "-")
}

// ID derives the deterministic record identifier for this citation and
// translation version: the first five runes of the lowercased book name with
// spaces removed, the reference digits without the colon, then the version
// ("Juan 3:16" + "RVR1960" yields "juan316RVR1960").
func (c Citation) ID(version string) string {
	book := strings.ToLower(strings.ReplaceAll(c.Book, " ", ""))
	runes := []rune(book)
	if len(runes) > 5 {
		runes = runes[:5]
	}
	reference := strings.ReplaceAll(c.Reference, ":", "")
	return string(runes) + reference + version
}

// Equal compares two citations case-insensitively on the book name.
func (c Citation) Equal(other Citation) bool {
	return c.Key() == other.Key()
}
