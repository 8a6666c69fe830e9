package catalog

import (
	"sort"
	"strings"
	"sync"
)

// Set is an immutable collection of permissible citations keyed by their
// case-folded identity.
type Set map[string]Citation

var (
	setsOnce sync.Once
	sets     map[string]Set
)

var verseLists = map[string][]string{
	"es": versesES,
	"en": versesEN,
	"pt": versesPT,
	"fr": versesFR,
	"zh": versesZH,
	"ja": versesJA,
}

func buildSets() {
	sets = make(map[string]Set, len(verseLists))
	for lang, verses := range verseLists {
		set := make(Set, len(verses))
		for _, verse := range verses {
			citation, ok := ParseCitation(verse)
			if !ok {
				continue
			}
			set[citation.Key()] = citation
		}
		sets[lang] = set
	}
}

// ForLanguage returns the full citation catalog for a language edition, or an
// empty set when the language is not supported.
func ForLanguage(lang string) Set {
	setsOnce.Do(buildSets)
	set := sets[strings.ToLower(strings.TrimSpace(lang))]
	if set == nil {
		return Set{}
	}
	return set
}

// Languages returns the supported language codes in sorted order.
func Languages() []string {
	langs := make([]string, 0, len(verseLists))
	for lang := range verseLists {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// Supported reports whether a language edition has a catalog.
func Supported(lang string) bool {
	_, ok := verseLists[strings.ToLower(strings.TrimSpace(lang))]
	return ok
}

// Contains reports set membership, case-insensitive on the book name.
func (s Set) Contains(c Citation) bool {
	_, ok := s[c.Key()]
	return ok
}

// ContainsString parses and checks a raw citation string.
func (s Set) ContainsString(raw string) bool {
	citation, ok := ParseCitation(raw)
	if !ok {
		return false
	}
	return s.Contains(citation)
}

// Citations returns the members sorted by their canonical string form.
func (s Set) Citations() []Citation {
	out := make([]Citation, 0, len(s))
	for _, citation := range s {
		out = append(out, citation)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// Len returns the member count.
func (s Set) Len() int {
	return len(s)
}
