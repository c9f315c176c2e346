// Package cache keeps the last fetched copy of remote documents in SQLite so
// the preview still works offline.
package cache

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tesso57/folio/internal/domain/document"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS documents (
	key        TEXT PRIMARY KEY,
	location   TEXT NOT NULL,
	item       INTEGER NOT NULL,
	title      TEXT NOT NULL,
	byline     TEXT NOT NULL,
	link       TEXT NOT NULL,
	body       TEXT NOT NULL,
	fetched_at INTEGER NOT NULL
)`

// Store implements usecase.DocumentCache on a SQLite database.
type Store struct {
	db *sql.DB
}

// Open creates or opens the cache database at path.
// The special path ":memory:" keeps everything in memory.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
			return nil, fmt.Errorf("failed to create cache directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache: %w", err)
	}
	// A single connection keeps ":memory:" databases alive and serialises writes.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create cache schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Put stores doc, replacing any previous copy of the same source.
func (s *Store) Put(doc *document.Document) error {
	if doc == nil {
		return nil
	}
	_, err := s.db.Exec(
		`INSERT INTO documents (key, location, item, title, byline, link, body, fetched_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET
		   title = excluded.title,
		   byline = excluded.byline,
		   link = excluded.link,
		   body = excluded.body,
		   fetched_at = excluded.fetched_at`,
		doc.Source.Key(), doc.Source.Location, doc.Source.Item,
		doc.Title, doc.Byline, doc.Link, doc.Body, doc.FetchedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to cache %s: %w", doc.Source.Key(), err)
	}
	return nil
}

// Get returns the cached copy of src, or nil when there is none.
func (s *Store) Get(src document.Source) (*document.Document, error) {
	row := s.db.QueryRow(
		`SELECT title, byline, link, body, fetched_at FROM documents WHERE key = ?`,
		src.Key(),
	)

	doc := &document.Document{Source: src}
	var fetchedAt int64
	if err := row.Scan(&doc.Title, &doc.Byline, &doc.Link, &doc.Body, &fetchedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cache for %s: %w", src.Key(), err)
	}
	doc.FetchedAt = time.Unix(fetchedAt, 0)
	return doc, nil
}
