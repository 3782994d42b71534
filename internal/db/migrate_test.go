package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	// Run migrations a second time — should succeed without error.
	err := Migrate(db)
	require.NoError(t, err)

	err = Migrate(db)
	require.NoError(t, err)
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	expected := []string{"habits", "habit_logs"}
	for _, table := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	expected := []string{"idx_habits_status", "idx_habit_logs_habit", "idx_habit_logs_started"}
	for _, idx := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestOpenDB_EnforcesForeignKeys(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO habit_logs (id, habit_id, started_at, minutes, source, note, created_at)
		VALUES ('l1', 'no-such-habit', '2026-01-01T00:00:00Z', 10, 'timer', '', '2026-01-01T00:00:00Z')`)
	assert.Error(t, err, "orphan log rows must be rejected")
}

func TestSchema_RejectsInvalidRows(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO habits (id, title, unit, created_at, updated_at)
		VALUES ('h1', 'Bad unit', 'fortnights', '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`)
	assert.Error(t, err)

	_, err = db.Exec(`INSERT INTO habits (id, title, target_min, created_at, updated_at)
		VALUES ('h2', 'Negative target', -5, '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`)
	assert.Error(t, err)

	require.NoError(t, insertHabit(db, "h3", "Valid"))
	_, err = db.Exec(`INSERT INTO habit_logs (id, habit_id, started_at, minutes, source, note, created_at)
		VALUES ('l1', 'h3', '2026-01-01T00:00:00Z', 0, 'timer', '', '2026-01-01T00:00:00Z')`)
	assert.Error(t, err, "zero-minute logs must be rejected")
}

func insertHabit(db *sql.DB, id, title string) error {
	_, err := db.Exec(`INSERT INTO habits (id, title, created_at, updated_at)
		VALUES (?, ?, '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`, id, title)
	return err
}
