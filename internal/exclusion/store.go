package exclusion

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"manna/internal/logging"
)

// fileShape is the wrapped on-disk format. Earlier deployments wrote a bare
// JSON array; Load accepts both and Save always writes the wrapped object.
type fileShape struct {
	Excluded []string `json:"versiculos_excluidos"`
}

// Store reads and writes the durable exclusion file.
type Store struct {
	path   string
	logger *slog.Logger
}

// NewStore creates a store for the given file path.
func NewStore(path string, logger *slog.Logger) *Store {
	return &Store{
		path:   path,
		logger: logging.NewComponentLogger(logger, "exclusion-store"),
	}
}

// Path returns the backing file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted exclusions. A missing file yields an empty set;
// unreadable or corrupt content is logged and likewise yields an empty set so
// the caller can proceed.
func (s *Store) Load() *Set {
	set := NewSet()
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Info("no exclusion file found, starting empty", logging.String("path", s.path))
		} else {
			s.logger.Error("read exclusion file", logging.String("path", s.path), logging.Error(err))
		}
		return set
	}

	var wrapped fileShape
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Excluded != nil {
		for _, raw := range wrapped.Excluded {
			set.AddString(raw)
		}
		s.logger.Info("exclusions loaded", logging.Int("count", set.Len()))
		return set
	}

	var legacy []string
	if err := json.Unmarshal(data, &legacy); err == nil {
		s.logger.Info("legacy exclusion list detected, converting", logging.Int("count", len(legacy)))
		for _, raw := range legacy {
			set.AddString(raw)
		}
		return set
	}

	s.logger.Error("exclusion file is corrupt, starting empty", logging.String("path", s.path))
	return NewSet()
}

// Save persists the set, overwriting previous content. Failures are logged
// rather than returned: generation must not abort on a storage hiccup.
func (s *Store) Save(set *Set) {
	payload, err := json.MarshalIndent(fileShape{Excluded: set.Citations()}, "", "    ")
	if err != nil {
		s.logger.Error("encode exclusions", logging.Error(err))
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		s.logger.Error("ensure exclusion directory", logging.Error(err))
		return
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		s.logger.Error("write exclusion file", logging.String("path", s.path), logging.Error(err))
		return
	}
	s.logger.Debug("exclusions saved", logging.Int("count", set.Len()))
}
