// Package db opens the project store: a single-file SQLite database where
// saved roadmaps live as JSON documents.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// pragmas applied on every open. WAL keeps overlapping CLI invocations from
// blocking each other on reads; busy_timeout covers the rare write overlap.
var pragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA busy_timeout = 5000",
	"PRAGMA foreign_keys = ON",
}

// Open prepares the project store at path, creating parent directories for
// file-backed stores and migrating the schema. ":memory:" yields a
// throwaway store for tests.
func Open(path string) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating store directory: %w", err)
		}
	}

	store, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}
	for _, pragma := range pragmas {
		if _, err := store.Exec(pragma); err != nil {
			store.Close()
			return nil, fmt.Errorf("applying %q: %w", pragma, err)
		}
	}
	if err := Migrate(store); err != nil {
		store.Close()
		return nil, fmt.Errorf("migrating store: %w", err)
	}
	return store, nil
}
