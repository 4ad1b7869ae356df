// Package cache stores analysis reports in a local SQLite database so
// repeated runs over unchanged files skip the page-by-page pass.
//
// Entries are keyed by a digest of the file's content, so a modified
// file naturally misses the cache and gets re-analyzed.
package cache

import (
	"crypto/sha256"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;

CREATE TABLE IF NOT EXISTS reports (
    key        TEXT PRIMARY KEY,
    report     BLOB NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`

// Cache is a SQLite-backed report store. It is safe for use from a
// single process; concurrent writers are serialized by SQLite itself.
type Cache struct {
	db   *sql.DB
	path string
}

// Open opens or creates the cache database at path, creating parent
// directories as needed.
func Open(path string) (*Cache, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cache: creating directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("cache: opening database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("cache: initializing schema: %w", err)
	}

	return &Cache{db: db, path: path}, nil
}

// Path returns the location of the cache database file.
func (c *Cache) Path() string { return c.path }

// Get returns the cached report for key, or false on a miss. Read
// errors are treated as misses; the caller falls back to analyzing.
func (c *Cache) Get(key string) ([]byte, bool) {
	var report []byte
	err := c.db.QueryRow("SELECT report FROM reports WHERE key = ?", key).Scan(&report)
	if err != nil {
		return nil, false
	}
	return report, true
}

// Put stores a report under key, replacing any previous entry.
func (c *Cache) Put(key string, report []byte) error {
	_, err := c.db.Exec(`
		INSERT INTO reports (key, report) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET report = excluded.report, created_at = CURRENT_TIMESTAMP
	`, key, report)
	if err != nil {
		return fmt.Errorf("cache: storing report: %w", err)
	}
	return nil
}

// Delete removes the entry for key, if present.
func (c *Cache) Delete(key string) error {
	if _, err := c.db.Exec("DELETE FROM reports WHERE key = ?", key); err != nil {
		return fmt.Errorf("cache: deleting report: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (c *Cache) Close() error {
	return c.db.Close()
}

// FileKey computes the cache key for the file at path: a hex SHA-256
// digest of its content.
func FileKey(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("cache: keying %s: %w", path, err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("cache: keying %s: %w", path, err)
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// DefaultPath returns the per-user cache database location.
func DefaultPath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", errors.New("cache: no user cache directory available")
	}
	return filepath.Join(dir, "docsift", "reports.db"), nil
}
