package repair

import (
	"encoding/json"
	"log/slog"
	"strings"

	"manna/internal/catalog"
	"manna/internal/devotional"
	"manna/internal/exclusion"
	"manna/internal/logging"
)

// Options carries the per-unit context Parse needs to validate and rebuild
// the record.
type Options struct {
	Language string
	Version  string
	Date     string

	// Expected, when set, requires the response to cite this passage instead
	// of checking the exclusion set. Used for sibling translations that must
	// reuse the citation already chosen for the day.
	Expected *catalog.Citation

	// Strict disables lenient book-name normalization against the canonical
	// corpus.
	Strict bool

	Logger *slog.Logger
}

type rawRecord struct {
	Verse      json.RawMessage `json:"versiculo"`
	Reflection json.RawMessage `json:"reflexion"`
	Meditation json.RawMessage `json:"para_meditar"`
	Prayer     json.RawMessage `json:"oracion"`
	Tags       json.RawMessage `json:"tags"`
}

type rawMeditation struct {
	Citation string `json:"cita"`
	Text     string `json:"texto"`
}

// Parse turns the raw response text into a normalized devotional record.
// Unusable responses yield a *RetryableError describing what was wrong so
// the orchestrator can decide whether a fresh attempt is worthwhile.
func Parse(raw string, excluded *exclusion.Set, opts Options) (*devotional.Record, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	payload := sliceBraces(stripCodeFence(raw))
	var fields rawRecord
	if err := json.Unmarshal([]byte(payload), &fields); err != nil {
		return nil, retryable(ReasonMalformedJSON, "%v", err)
	}

	missing := make([]string, 0, 5)
	for name, field := range map[string]json.RawMessage{
		"versiculo":    fields.Verse,
		"reflexion":    fields.Reflection,
		"para_meditar": fields.Meditation,
		"oracion":      fields.Prayer,
		"tags":         fields.Tags,
	} {
		if len(field) == 0 || string(field) == "null" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, retryable(ReasonMissingFields, "%s", strings.Join(missing, ", "))
	}

	var verseRaw, reflection, prayer string
	if err := json.Unmarshal(fields.Verse, &verseRaw); err != nil {
		return nil, retryable(ReasonTypeMismatch, "versiculo is not a string")
	}
	if err := json.Unmarshal(fields.Reflection, &reflection); err != nil {
		return nil, retryable(ReasonTypeMismatch, "reflexion is not a string")
	}
	if err := json.Unmarshal(fields.Prayer, &prayer); err != nil {
		return nil, retryable(ReasonTypeMismatch, "oracion is not a string")
	}
	var tags []string
	if err := json.Unmarshal(fields.Tags, &tags); err != nil {
		return nil, retryable(ReasonTypeMismatch, "tags is not a list of strings")
	}
	var meditationItems []json.RawMessage
	if err := json.Unmarshal(fields.Meditation, &meditationItems); err != nil {
		return nil, retryable(ReasonTypeMismatch, "para_meditar is not a list")
	}

	citation, text, err := normalizeVerse(verseRaw, opts)
	if err != nil {
		return nil, err
	}
	if opts.Expected != nil && !citation.Equal(*opts.Expected) {
		if excluded.Contains(citation) {
			return nil, retryable(ReasonDuplicateVerse, "%s already used", citation.String())
		}
		return nil, retryable(ReasonVerseMismatch, "cited %q, requested %q", citation.String(), opts.Expected.String())
	}
	if opts.Expected == nil && excluded.Contains(citation) {
		return nil, retryable(ReasonDuplicateVerse, "%s already used", citation.String())
	}

	record := &devotional.Record{
		ID:         citation.ID(opts.Version),
		Date:       opts.Date,
		Language:   opts.Language,
		Version:    opts.Version,
		VerseText:  citation.String() + " " + opts.Version + ": \"" + text + "\"",
		Reflection: strings.TrimSpace(reflection),
		Prayer:     strings.TrimSpace(prayer),
		Tags:       normalizeTags(tags),
		Meditation: normalizeMeditations(meditationItems, opts, logger),
	}
	return record, nil
}

// normalizeVerse extracts the citation from the verse field, validates it
// against the canonical corpus, and reduces the rest to pure scripture text.
func normalizeVerse(verseRaw string, opts Options) (catalog.Citation, string, error) {
	cleaned := stripLeadingVerseNumber(stripLanguageVersionTag(strings.TrimSpace(verseRaw)))

	loc := catalog.FindCitationIndex(cleaned)
	if loc == nil {
		return catalog.Citation{}, "", retryable(ReasonNoCitationFound, "%q", snippet(verseRaw))
	}
	citation, _ := catalog.ExtractCitation(cleaned)

	corpus := catalog.ForLanguage(opts.Language)
	if !corpus.Contains(citation) {
		canonical, ok := catalog.NormalizeBook(opts.Language, citation.Book)
		if opts.Strict || !ok {
			return catalog.Citation{}, "", retryable(ReasonNoCitationFound, "%q is not in the %s corpus", citation.String(), opts.Language)
		}
		citation.Book = canonical
		if !corpus.Contains(citation) {
			return catalog.Citation{}, "", retryable(ReasonNoCitationFound, "%q is not in the %s corpus", citation.String(), opts.Language)
		}
	}

	// The service sometimes places the citation after the text instead of
	// before it; whichever side of the match holds the scripture wins.
	text := cleanVerseText(cleaned[loc[1]:], opts.Version)
	if text == "" {
		text = cleanVerseText(cleaned[:loc[0]], opts.Version)
	}
	if text == "" {
		return catalog.Citation{}, "", retryable(ReasonEmptyVerseText, "citation %s carries no text", citation.String())
	}
	return citation, text, nil
}

// normalizeMeditations applies the same citation repair to each meditation
// entry. Entries with no recognizable citation pass through unchanged.
func normalizeMeditations(items []json.RawMessage, opts Options, logger *slog.Logger) []devotional.MeditationEntry {
	out := make([]devotional.MeditationEntry, 0, len(items))
	for _, item := range items {
		var entry rawMeditation
		if err := json.Unmarshal(item, &entry); err != nil {
			var plain string
			if err := json.Unmarshal(item, &plain); err != nil {
				logger.Warn("meditation entry has unknown shape, skipping",
					logging.String("entry", snippet(string(item))))
				continue
			}
			entry = splitMeditationString(plain)
		}
		out = append(out, normalizeMeditation(entry, opts, logger))
	}
	return out
}

func normalizeMeditation(entry rawMeditation, opts Options, logger *slog.Logger) devotional.MeditationEntry {
	source := entry.Citation
	if source == "" {
		source = entry.Text
	}
	citation, ok := catalog.ExtractCitation(source)
	if ok && !opts.Strict {
		if canonical, normalized := catalog.NormalizeBook(opts.Language, citation.Book); normalized {
			citation.Book = canonical
		}
	}
	if !ok {
		logger.Warn("meditation entry has no recognizable citation",
			logging.String(logging.FieldCitation, snippet(entry.Citation)))
		return devotional.MeditationEntry{
			Citation: strings.TrimSpace(entry.Citation),
			Text:     trimQuotes(entry.Text),
		}
	}
	text := entry.Text
	if entry.Citation == "" {
		// Citation was embedded in the text; keep only what follows it.
		if loc := catalog.FindCitationIndex(entry.Text); loc != nil {
			text = entry.Text[loc[1]:]
		}
	}
	return devotional.MeditationEntry{
		Citation: citation.String(),
		Text:     cleanVerseText(text, opts.Version),
	}
}

// splitMeditationString handles the schema variant where a meditation entry
// is a single citation-prefixed string rather than a {cita, texto} object.
func splitMeditationString(s string) rawMeditation {
	if loc := catalog.FindCitationIndex(s); loc != nil {
		return rawMeditation{
			Citation: strings.TrimSpace(s[loc[0]:loc[1]]),
			Text:     s[loc[1]:],
		}
	}
	return rawMeditation{Text: s}
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func snippet(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) > 80 {
		return string(runes[:80]) + "..."
	}
	return s
}
