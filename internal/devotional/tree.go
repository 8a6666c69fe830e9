package devotional

import "sort"

// ResultTree groups records by language, then by date. It is the response
// body shape for a batch generation run and the unit persisted to the
// resume checkpoint between days.
type ResultTree map[string]map[string][]Record

// NewResultTree returns an empty tree.
func NewResultTree() ResultTree {
	return make(ResultTree)
}

// Append adds a record under its language and date.
func (t ResultTree) Append(rec Record) {
	byDate, ok := t[rec.Language]
	if !ok {
		byDate = make(map[string][]Record)
		t[rec.Language] = byDate
	}
	byDate[rec.Date] = append(byDate[rec.Date], rec)
}

// Records returns the records for a language and date, or nil.
func (t ResultTree) Records(lang, date string) []Record {
	return t[lang][date]
}

// Languages returns the languages present, sorted.
func (t ResultTree) Languages() []string {
	langs := make([]string, 0, len(t))
	for lang := range t {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// Dates returns the dates present for a language, sorted.
func (t ResultTree) Dates(lang string) []string {
	byDate := t[lang]
	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// Len counts all records in the tree.
func (t ResultTree) Len() int {
	n := 0
	for _, byDate := range t {
		for _, recs := range byDate {
			n += len(recs)
		}
	}
	return n
}

// ErrorCount counts placeholder records in the tree.
func (t ResultTree) ErrorCount() int {
	n := 0
	for _, byDate := range t {
		for _, recs := range byDate {
			for _, rec := range recs {
				if rec.IsError() {
					n++
				}
			}
		}
	}
	return n
}

// All returns every record in deterministic order (language, date,
// insertion order within a slot).
func (t ResultTree) All() []Record {
	out := make([]Record, 0, t.Len())
	for _, lang := range t.Languages() {
		for _, date := range t.Dates(lang) {
			out = append(out, t[lang][date]...)
		}
	}
	return out
}
