package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// InMemory is the path that opens a throwaway database.
const InMemory = ":memory:"

var pragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA foreign_keys = ON",
	"PRAGMA busy_timeout = 5000",
}

// OpenDB opens the planner database at path and brings its schema up to
// date. The parent directory is created private (0700) because the
// credentials table holds API keys.
func OpenDB(path string) (*sql.DB, error) {
	if path != InMemory {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", path, err)
	}
	if path == InMemory {
		// one connection, or each pooled connection sees its own empty database
		conn.SetMaxOpenConns(1)
	}

	if err := prepare(conn); err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}

func prepare(conn *sql.DB) error {
	for _, p := range pragmas {
		if _, err := conn.Exec(p); err != nil {
			return fmt.Errorf("applying %q: %w", p, err)
		}
	}
	if err := Migrate(conn); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}
