// Package checkpoint persists batch progress between days so an interrupted
// run can resume where it stopped.
package checkpoint

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"manna/internal/devotional"
	"manna/internal/logging"
)

// Checkpoint is the durable progress snapshot: everything generated so far
// plus the first date that still needs work.
type Checkpoint struct {
	Results  devotional.ResultTree `json:"response_data"`
	NextDate string                `json:"current_date"`
}

// Store reads and writes the checkpoint file. All failures are logged and
// absorbed; a broken checkpoint must never abort a batch, it only costs the
// resume.
type Store struct {
	path   string
	logger *slog.Logger
}

// NewStore returns a store over the given file path.
func NewStore(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Store{path: path, logger: logger}
}

// Load reads the checkpoint. The second return is false when no usable
// checkpoint exists (missing file, unreadable content).
func (s *Store) Load() (*Checkpoint, bool) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("checkpoint unreadable, starting fresh",
				logging.String("path", s.path), logging.Error(err))
		}
		return nil, false
	}
	var cp Checkpoint
	if err := json.Unmarshal(raw, &cp); err != nil {
		s.logger.Warn("checkpoint corrupt, starting fresh",
			logging.String("path", s.path), logging.Error(err))
		return nil, false
	}
	if cp.NextDate == "" {
		s.logger.Warn("checkpoint missing next date, starting fresh",
			logging.String("path", s.path))
		return nil, false
	}
	if cp.Results == nil {
		cp.Results = devotional.NewResultTree()
	}
	return &cp, true
}

// Save writes the checkpoint, best-effort.
func (s *Store) Save(cp *Checkpoint) {
	raw, err := json.MarshalIndent(cp, "", "  ")
	if err != nil {
		s.logger.Error("encode checkpoint failed", logging.Error(err))
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		s.logger.Error("create checkpoint directory failed",
			logging.String("path", s.path), logging.Error(err))
		return
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		s.logger.Error("write checkpoint failed",
			logging.String("path", s.path), logging.Error(err))
	}
}

// Clear removes the checkpoint file after a batch completes.
func (s *Store) Clear() {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.logger.Warn("remove checkpoint failed",
			logging.String("path", s.path), logging.Error(err))
	}
}
