package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/evanhagen/habitual/internal/db"
	"github.com/evanhagen/habitual/internal/domain"
)

// habitColumns is the canonical SELECT column list for habits.
const habitColumns = `id, title, color, target_min, unit, points_per_hour,
		status, logged_total_min, last_logged_at, archived_at, created_at, updated_at`

// SQLiteHabitRepo implements HabitRepo on a SQLite database. It accepts a
// db.DBTX so the same repository works standalone or inside a transaction.
type SQLiteHabitRepo struct {
	db db.DBTX
}

// NewSQLiteHabitRepo creates a new SQLiteHabitRepo.
func NewSQLiteHabitRepo(db db.DBTX) *SQLiteHabitRepo {
	return &SQLiteHabitRepo{db: db}
}

func (r *SQLiteHabitRepo) Create(ctx context.Context, h *domain.Habit) error {
	query := `INSERT INTO habits (id, title, color, target_min, unit, points_per_hour,
		status, logged_total_min, last_logged_at, archived_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		h.ID,
		h.Title,
		h.Color,
		h.TargetMin,
		string(h.Unit),
		h.PointsPerHour,
		string(h.Status),
		h.LoggedTotalMin,
		nullableTimeToString(h.LastLoggedAt),
		nullableTimeToString(h.ArchivedAt),
		h.CreatedAt.Format(time.RFC3339),
		h.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting habit: %w", err)
	}
	return nil
}

func (r *SQLiteHabitRepo) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	query := `SELECT ` + habitColumns + ` FROM habits WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanHabit(row)
}

func (r *SQLiteHabitRepo) List(ctx context.Context, includeArchived bool) ([]*domain.Habit, error) {
	query := `SELECT ` + habitColumns + ` FROM habits`
	if !includeArchived {
		query += ` WHERE status != 'archived'`
	}
	query += ` ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing habits: %w", err)
	}
	defer rows.Close()
	return r.scanHabits(rows)
}

func (r *SQLiteHabitRepo) Update(ctx context.Context, h *domain.Habit) error {
	h.UpdatedAt = time.Now().UTC()
	query := `UPDATE habits SET title = ?, color = ?, target_min = ?, unit = ?,
		points_per_hour = ?, status = ?, logged_total_min = ?, last_logged_at = ?,
		archived_at = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		h.Title,
		h.Color,
		h.TargetMin,
		string(h.Unit),
		h.PointsPerHour,
		string(h.Status),
		h.LoggedTotalMin,
		nullableTimeToString(h.LastLoggedAt),
		nullableTimeToString(h.ArchivedAt),
		h.UpdatedAt.Format(time.RFC3339),
		h.ID,
	)
	if err != nil {
		return fmt.Errorf("updating habit: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("habit: %w", ErrNotFound)
	}
	return nil
}

func (r *SQLiteHabitRepo) Archive(ctx context.Context, id string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	query := `UPDATE habits SET status = 'archived', archived_at = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, now, now, id)
	if err != nil {
		return fmt.Errorf("archiving habit: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking archive result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("habit: %w", ErrNotFound)
	}
	return nil
}

func (r *SQLiteHabitRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM habits WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting habit: %w", err)
	}
	return nil
}

// scanHabit scans a single habit from a *sql.Row.
func (r *SQLiteHabitRepo) scanHabit(row *sql.Row) (*domain.Habit, error) {
	var h domain.Habit
	var unit, status string
	var lastLoggedAt, archivedAt sql.NullString
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&h.ID, &h.Title, &h.Color, &h.TargetMin, &unit, &h.PointsPerHour,
		&status, &h.LoggedTotalMin, &lastLoggedAt, &archivedAt, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("habit: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning habit: %w", err)
	}

	return r.populateHabit(&h, unit, status, lastLoggedAt, archivedAt, createdAtStr, updatedAtStr)
}

// scanHabits scans multiple habits from *sql.Rows.
func (r *SQLiteHabitRepo) scanHabits(rows *sql.Rows) ([]*domain.Habit, error) {
	var habits []*domain.Habit
	for rows.Next() {
		var h domain.Habit
		var unit, status string
		var lastLoggedAt, archivedAt sql.NullString
		var createdAtStr, updatedAtStr string

		err := rows.Scan(
			&h.ID, &h.Title, &h.Color, &h.TargetMin, &unit, &h.PointsPerHour,
			&status, &h.LoggedTotalMin, &lastLoggedAt, &archivedAt, &createdAtStr, &updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning habit row: %w", err)
		}

		habit, err := r.populateHabit(&h, unit, status, lastLoggedAt, archivedAt, createdAtStr, updatedAtStr)
		if err != nil {
			return nil, err
		}
		habits = append(habits, habit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating habits: %w", err)
	}
	return habits, nil
}

// populateHabit fills in parsed fields after scanning raw strings.
func (r *SQLiteHabitRepo) populateHabit(h *domain.Habit, unit, status string, lastLoggedAt, archivedAt sql.NullString, createdAtStr, updatedAtStr string) (*domain.Habit, error) {
	h.Unit = domain.TimeUnit(unit)
	h.Status = domain.Status(status)
	h.LastLoggedAt = parseNullableTime(lastLoggedAt)
	h.ArchivedAt = parseNullableTime(archivedAt)

	var err error
	h.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	h.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return h, nil
}
