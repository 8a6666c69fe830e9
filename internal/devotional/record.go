// Package devotional defines the generated content unit and the nested
// result structure a batch produces.
package devotional

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"

	"manna/internal/catalog"
)

// DateFormat is the wire format for devotional dates.
const DateFormat = "2006-01-02"

// errorIDPrefix marks synthetic placeholder records substituted when
// generation fails. Placeholders keep the schema shape so downstream
// consumers always find exactly one record per requested slot.
const errorIDPrefix = "error_"

// MeditationEntry is one secondary citation with its quoted text.
type MeditationEntry struct {
	Citation string `json:"cita"`
	Text     string `json:"texto"`
}

// Record is the devotional for one date, language, and translation version.
// Field names on the wire follow the original Spanish schema.
type Record struct {
	ID         string            `json:"id"`
	Date       string            `json:"date"`
	Language   string            `json:"language"`
	Version    string            `json:"version"`
	VerseText  string            `json:"versiculo"`
	Reflection string            `json:"reflexion"`
	Meditation []MeditationEntry `json:"para_meditar"`
	Prayer     string            `json:"oracion"`
	Tags       []string          `json:"tags"`
}

// NewErrorRecord builds the placeholder substituted for a slot that could not
// be generated. The sentinel verse text and id prefix let consumers detect
// and re-request failed slots individually.
func NewErrorRecord(date time.Time, lang, version, cause string) Record {
	return Record{
		ID:         fmt.Sprintf("%s%s_%s_%s", errorIDPrefix, date.Format("20060102"), lang, version),
		Date:       date.Format(DateFormat),
		Language:   lang,
		Version:    version,
		VerseText:  "ERROR EN LA GENERACIÓN",
		Reflection: fmt.Sprintf("No se pudo generar el devocional para esta fecha/versión. Causa: %s.", cause),
		Meditation: []MeditationEntry{},
		Prayer:     "Señor, pedimos tu guía para solucionar este problema técnico. Amén.",
		Tags:       []string{"Error"},
	}
}

// IsError reports whether the record is a synthetic placeholder.
func (r Record) IsError() bool {
	return strings.HasPrefix(r.ID, errorIDPrefix)
}

// Citation extracts the leading citation from the verse text.
func (r Record) Citation() (catalog.Citation, bool) {
	return catalog.ExtractCitation(r.VerseText)
}

// NormalizeLanguage lowercases and validates a language code against both
// BCP 47 syntax and the set of catalog editions.
func NormalizeLanguage(code string) (string, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return "", fmt.Errorf("language code is required")
	}
	if _, err := language.Parse(code); err != nil {
		return "", fmt.Errorf("language %q: %w", code, err)
	}
	if !catalog.Supported(code) {
		return "", fmt.Errorf("language %q has no verse catalog (supported: %s)", code, strings.Join(catalog.Languages(), ", "))
	}
	return code, nil
}
