package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; ALTER TABLE
// "duplicate column name" errors are tolerated because the whole list re-runs
// on every startup.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS habits (
		id               TEXT PRIMARY KEY,
		title            TEXT NOT NULL,
		color            TEXT NOT NULL DEFAULT '',
		target_min       INTEGER NOT NULL DEFAULT 0 CHECK(target_min >= 0),
		unit             TEXT NOT NULL DEFAULT 'minutes'
		                 CHECK(unit IN ('minutes','hours')),
		points_per_hour  INTEGER NOT NULL DEFAULT 0,
		status           TEXT NOT NULL DEFAULT 'active'
		                 CHECK(status IN ('active','paused','archived')),
		logged_total_min INTEGER NOT NULL DEFAULT 0,
		last_logged_at   TEXT,
		archived_at      TEXT,
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_habits_status ON habits(status)`,

	`CREATE TABLE IF NOT EXISTS habit_logs (
		id         TEXT PRIMARY KEY,
		habit_id   TEXT NOT NULL REFERENCES habits(id) ON DELETE CASCADE,
		started_at TEXT NOT NULL,
		minutes    INTEGER NOT NULL CHECK(minutes > 0),
		source     TEXT NOT NULL DEFAULT 'timer'
		           CHECK(source IN ('timer','manual')),
		note       TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_habit_logs_habit ON habit_logs(habit_id)`,
	`CREATE INDEX IF NOT EXISTS idx_habit_logs_started ON habit_logs(started_at)`,
}
