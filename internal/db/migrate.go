package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent and re-run
// on every open.
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

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS developers (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS complexes (
		id                    TEXT PRIMARY KEY,
		name                  TEXT NOT NULL,
		developer_id          TEXT REFERENCES developers(id) ON DELETE SET NULL,
		chessboard_id         TEXT,
		chessboard_public_id  TEXT,
		chessboard_public_url TEXT,
		created_at            TEXT NOT NULL,
		updated_at            TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_complexes_developer ON complexes(developer_id)`,

	`CREATE TABLE IF NOT EXISTS chessboards (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL DEFAULT '',
		complex_id    TEXT REFERENCES complexes(id) ON DELETE SET NULL,
		exchange_rate REAL NOT NULL CHECK(exchange_rate > 0),
		sections_json TEXT NOT NULL DEFAULT '[]',
		public_url    TEXT NOT NULL,
		created_by    TEXT NOT NULL DEFAULT '',
		updated_by    TEXT NOT NULL DEFAULT '',
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	// One chessboard per complex; enforced by the store so concurrent
	// creators cannot both pass the service-level check.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_chessboards_complex ON chessboards(complex_id) WHERE complex_id IS NOT NULL`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_chessboards_public_url ON chessboards(public_url)`,

	`CREATE TABLE IF NOT EXISTS chessboard_access (
		chessboard_id TEXT PRIMARY KEY REFERENCES chessboards(id) ON DELETE CASCADE,
		owners_json   TEXT NOT NULL DEFAULT '[]',
		editors_json  TEXT NOT NULL DEFAULT '[]',
		viewers_json  TEXT NOT NULL DEFAULT '[]',
		created_by    TEXT NOT NULL DEFAULT '',
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	// History outlives the chessboard it describes, so no foreign key.
	`CREATE TABLE IF NOT EXISTS chessboard_history (
		id            TEXT PRIMARY KEY,
		chessboard_id TEXT NOT NULL,
		action        TEXT NOT NULL CHECK(action IN ('create','update','delete')),
		actor_id      TEXT NOT NULL DEFAULT '',
		actor_label   TEXT NOT NULL DEFAULT '',
		timestamp     TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_history_chessboard ON chessboard_history(chessboard_id)`,

	`CREATE TABLE IF NOT EXISTS notifications (
		id              TEXT PRIMARY KEY,
		type            TEXT NOT NULL,
		action          TEXT NOT NULL,
		chessboard_id   TEXT NOT NULL DEFAULT '',
		chessboard_name TEXT NOT NULL DEFAULT '',
		created_by      TEXT NOT NULL DEFAULT '',
		status          TEXT NOT NULL DEFAULT 'unread'
		                CHECK(status IN ('unread','read')),
		for_roles_json  TEXT NOT NULL DEFAULT '[]',
		created_at      TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_notifications_status ON notifications(status)`,
}
