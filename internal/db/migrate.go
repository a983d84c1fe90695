package db

import (
	"database/sql"
	"fmt"
	"strings"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS credentials (
		id         TEXT PRIMARY KEY,
		label      TEXT NOT NULL DEFAULT '',
		api_key    TEXT NOT NULL,
		active     INTEGER NOT NULL DEFAULT 0,
		valid      INTEGER NOT NULL DEFAULT 1,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_credentials_active ON credentials(active)`,
	`CREATE TABLE IF NOT EXISTS generation_log (
		id         TEXT PRIMARY KEY,
		topic      TEXT NOT NULL,
		grade      TEXT NOT NULL DEFAULT '',
		subject    TEXT NOT NULL DEFAULT '',
		model      TEXT NOT NULL DEFAULT '',
		status     TEXT NOT NULL
		           CHECK(status IN ('ok','credential_unavailable','empty_response','failed','rejected')),
		error_code TEXT NOT NULL DEFAULT '',
		latency_ms INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_generation_log_created ON generation_log(created_at)`,
}

// Migrate runs all schema migrations. Every statement is idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
