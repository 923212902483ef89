// Package history keeps a small SQLite log of wallpapers that were installed.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS wallpapers (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	source_url TEXT NOT NULL,
	path TEXT NOT NULL,
	set_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_wallpapers_set_at ON wallpapers(set_at);
`

// Entry is one installed wallpaper.
type Entry struct {
	SourceURL string    `json:"url"`
	Path      string    `json:"path"`
	SetAt     time.Time `json:"set_at"`
}

// Store is a history database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (creating if needed) the database at path. ":memory:" is accepted
// for tests.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	// A single connection keeps ":memory:" databases alive and serializes writers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record appends an installed wallpaper.
func (s *Store) Record(ctx context.Context, sourceURL, path string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO wallpapers (source_url, path, set_at) VALUES (?, ?, ?)`,
		sourceURL, path, s.now().UnixMilli())
	if err != nil {
		return fmt.Errorf("recording wallpaper: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		return []Entry{}, nil
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT source_url, path, set_at FROM wallpapers ORDER BY set_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var (
			e     Entry
			setAt int64
		)
		if err := rows.Scan(&e.SourceURL, &e.Path, &setAt); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		e.SetAt = time.UnixMilli(setAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
