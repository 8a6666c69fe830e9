// Package archive keeps a durable history of generated devotionals backed
// by SQLite.
package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"manna/internal/config"
	"manna/internal/devotional"
)

const schema = `
CREATE TABLE IF NOT EXISTS devotionals (
	id          TEXT NOT NULL,
	date        TEXT NOT NULL,
	language    TEXT NOT NULL,
	version     TEXT NOT NULL,
	verse_text  TEXT NOT NULL,
	reflection  TEXT NOT NULL,
	meditations TEXT NOT NULL,
	prayer      TEXT NOT NULL,
	tags        TEXT NOT NULL,
	created_at  TEXT NOT NULL,
	PRIMARY KEY (date, language, version, id)
);
CREATE INDEX IF NOT EXISTS idx_devotionals_date ON devotionals(date);
CREATE INDEX IF NOT EXISTS idx_devotionals_language ON devotionals(language);
`

// Store manages devotional persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the archive database under the data
// directory.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := filepath.Join(cfg.Paths.DataDir, "devotionals.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Store{db: db, path: dbPath}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Put upserts a record. Placeholder records are stored too so a failed slot
// remains visible in the history.
func (s *Store) Put(ctx context.Context, rec devotional.Record) error {
	meditations, err := json.Marshal(rec.Meditation)
	if err != nil {
		return fmt.Errorf("encode meditations: %w", err)
	}
	tags, err := json.Marshal(rec.Tags)
	if err != nil {
		return fmt.Errorf("encode tags: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO devotionals (id, date, language, version, verse_text, reflection, meditations, prayer, tags, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (date, language, version, id) DO UPDATE SET
			verse_text = excluded.verse_text,
			reflection = excluded.reflection,
			meditations = excluded.meditations,
			prayer = excluded.prayer,
			tags = excluded.tags`,
		rec.ID, rec.Date, rec.Language, rec.Version,
		rec.VerseText, rec.Reflection, string(meditations), rec.Prayer, string(tags),
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("store devotional %s: %w", rec.ID, err)
	}
	return nil
}

// Filter narrows a List query. Zero values mean no constraint.
type Filter struct {
	From     string
	To       string
	Language string
	Version  string
	Limit    int
}

// List returns matching records ordered by date, language, version.
func (s *Store) List(ctx context.Context, filter Filter) ([]devotional.Record, error) {
	var (
		conds []string
		args  []any
	)
	if filter.From != "" {
		conds = append(conds, "date >= ?")
		args = append(args, filter.From)
	}
	if filter.To != "" {
		conds = append(conds, "date <= ?")
		args = append(args, filter.To)
	}
	if filter.Language != "" {
		conds = append(conds, "language = ?")
		args = append(args, strings.ToLower(filter.Language))
	}
	if filter.Version != "" {
		conds = append(conds, "version = ?")
		args = append(args, filter.Version)
	}

	query := "SELECT id, date, language, version, verse_text, reflection, meditations, prayer, tags FROM devotionals"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY date, language, version"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query devotionals: %w", err)
	}
	defer rows.Close()

	var out []devotional.Record
	for rows.Next() {
		var (
			rec         devotional.Record
			meditations string
			tags        string
		)
		if err := rows.Scan(&rec.ID, &rec.Date, &rec.Language, &rec.Version,
			&rec.VerseText, &rec.Reflection, &meditations, &rec.Prayer, &tags); err != nil {
			return nil, fmt.Errorf("scan devotional: %w", err)
		}
		if err := json.Unmarshal([]byte(meditations), &rec.Meditation); err != nil {
			return nil, fmt.Errorf("decode meditations for %s: %w", rec.ID, err)
		}
		if err := json.Unmarshal([]byte(tags), &rec.Tags); err != nil {
			return nil, fmt.Errorf("decode tags for %s: %w", rec.ID, err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Count returns the number of stored records.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM devotionals").Scan(&n); err != nil {
		return 0, fmt.Errorf("count devotionals: %w", err)
	}
	return n, nil
}
