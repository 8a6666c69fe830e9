package batch

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"manna/internal/devotional"
)

// Request describes one batch generation run.
type Request struct {
	StartDate     string              `json:"start_date"`
	EndDate       string              `json:"end_date"`
	MasterLang    string              `json:"master_lang"`
	MasterVersion string              `json:"master_version"`
	Topic         string              `json:"topic,omitempty"`
	MainVerseHint string              `json:"main_verse_hint,omitempty"`
	OtherVersions map[string][]string `json:"other_versions,omitempty"`
}

// Response is the batch envelope returned to callers.
type Response struct {
	Status  string                `json:"status"`
	Message string                `json:"message"`
	Data    devotional.ResultTree `json:"data"`
}

// ValidationError reports a rejected request.
type ValidationError struct {
	Field  string
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request: %s: %s", e.Field, e.Detail)
}

// slot is one requested (language, version) pair.
type slot struct {
	Language string
	Version  string
}

// normalized is a validated request ready to run.
type normalized struct {
	Start   time.Time
	End     time.Time
	Master  slot
	Others  []slot
	Topic   string
	Hint    string
}

func (r Request) normalize() (*normalized, error) {
	start, err := time.Parse(devotional.DateFormat, strings.TrimSpace(r.StartDate))
	if err != nil {
		return nil, &ValidationError{Field: "start_date", Detail: "expected YYYY-MM-DD"}
	}
	end, err := time.Parse(devotional.DateFormat, strings.TrimSpace(r.EndDate))
	if err != nil {
		return nil, &ValidationError{Field: "end_date", Detail: "expected YYYY-MM-DD"}
	}
	if end.Before(start) {
		return nil, &ValidationError{Field: "end_date", Detail: "must not precede start_date"}
	}

	masterLang, err := devotional.NormalizeLanguage(r.MasterLang)
	if err != nil {
		return nil, &ValidationError{Field: "master_lang", Detail: err.Error()}
	}
	masterVersion := strings.TrimSpace(r.MasterVersion)
	if masterVersion == "" {
		return nil, &ValidationError{Field: "master_version", Detail: "is required"}
	}
	master := slot{Language: masterLang, Version: masterVersion}

	seen := map[slot]struct{}{master: {}}
	var others []slot
	for lang, versions := range r.OtherVersions {
		normalizedLang, err := devotional.NormalizeLanguage(lang)
		if err != nil {
			return nil, &ValidationError{Field: "other_versions", Detail: err.Error()}
		}
		for _, version := range versions {
			version = strings.TrimSpace(version)
			if version == "" {
				continue
			}
			s := slot{Language: normalizedLang, Version: version}
			// The master pair is generated once; duplicates are requested
			// slots already covered.
			if _, dup := seen[s]; dup {
				continue
			}
			seen[s] = struct{}{}
			others = append(others, s)
		}
	}
	sort.Slice(others, func(i, j int) bool {
		if others[i].Language != others[j].Language {
			return others[i].Language < others[j].Language
		}
		return others[i].Version < others[j].Version
	})

	return &normalized{
		Start:  start,
		End:    end,
		Master: master,
		Others: others,
		Topic:  strings.TrimSpace(r.Topic),
		Hint:   strings.TrimSpace(r.MainVerseHint),
	}, nil
}

