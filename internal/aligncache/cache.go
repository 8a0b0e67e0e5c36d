// Copyright © 2025 Verible contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/aligncache/cache.go
// Summary: SQLite-backed cache of column-spacing decisions, keyed by group
// content so repeated identical groups (common in generated or templated
// source) skip re-running the alignment engine.
//
// The cache is output-neutral when no byte ranges are disabled: a lookup
// hit and a cold run of align.TabularAlignTokens over the same (group text
// with row indentation, column limit, scanner name) always assign the same
// SpacesRequired values, because with no disabled ranges that assignment is
// a pure function of those three inputs (§5: the engine has no hidden
// state). Disabled ranges are not part of the key; cmd/verifmt bypasses the
// cache whenever any are given.

package aligncache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS spacings (
	key        TEXT PRIMARY KEY,
	spaces     TEXT NOT NULL,
	created_at INTEGER NOT NULL DEFAULT (unixepoch())
);
`

// Cache is a content-addressed store of one group's resolved leading-space
// values, one entry per token of the group, in row order.
type Cache struct {
	db *sql.DB
}

// Open opens (creating if needed) a cache database at path.
func Open(path string) (*Cache, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("aligncache: create directory: %w", err)
	}
	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("aligncache: open: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("aligncache: connect: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("aligncache: create schema: %w", err)
	}
	return &Cache{db: db}, nil
}

// Close releases the underlying database handle.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Key derives a cache key from a group's text (see GroupText), its column
// budget, and the name of the scanner that produced it — the inputs the
// engine's output is a pure function of when no byte ranges are disabled.
func Key(groupText, scannerName string, columnLimit int) string {
	h := sha256.New()
	h.Write([]byte(scannerName))
	h.Write([]byte{0})
	fmt.Fprintf(h, "%d", columnLimit)
	h.Write([]byte{0})
	h.Write([]byte(groupText))
	return hex.EncodeToString(h.Sum(nil))
}

// Lookup returns the cached leading-space values for key, if present.
func (c *Cache) Lookup(key string) ([]int, bool, error) {
	var raw string
	err := c.db.QueryRow(`SELECT spaces FROM spacings WHERE key = ?`, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("aligncache: lookup: %w", err)
	}
	var spaces []int
	if err := json.Unmarshal([]byte(raw), &spaces); err != nil {
		return nil, false, fmt.Errorf("aligncache: decode: %w", err)
	}
	return spaces, true, nil
}

// Store records the leading-space values produced for key, overwriting any
// prior entry (a fresh run's result always supersedes a stale one).
func (c *Cache) Store(key string, spaces []int) error {
	raw, err := json.Marshal(spaces)
	if err != nil {
		return fmt.Errorf("aligncache: encode: %w", err)
	}
	_, err = c.db.Exec(
		`INSERT INTO spacings (key, spaces) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET spaces = excluded.spaces, created_at = unixepoch()`,
		key, string(raw),
	)
	if err != nil {
		return fmt.Errorf("aligncache: store: %w", err)
	}
	return nil
}
