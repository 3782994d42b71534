package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/evanhagen/habitual/internal/db"
	"github.com/evanhagen/habitual/internal/domain"
)

const logColumns = `id, habit_id, started_at, minutes, source, note, created_at`

// SQLiteLogRepo implements LogRepo on a SQLite database.
type SQLiteLogRepo struct {
	db db.DBTX
}

// NewSQLiteLogRepo creates a new SQLiteLogRepo.
func NewSQLiteLogRepo(db db.DBTX) *SQLiteLogRepo {
	return &SQLiteLogRepo{db: db}
}

func (r *SQLiteLogRepo) Create(ctx context.Context, l *domain.HabitLog) error {
	query := `INSERT INTO habit_logs (id, habit_id, started_at, minutes, source, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		l.ID,
		l.HabitID,
		l.StartedAt.Format(time.RFC3339),
		l.Minutes,
		string(l.Source),
		l.Note,
		l.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting habit log: %w", err)
	}
	return nil
}

func (r *SQLiteLogRepo) GetByID(ctx context.Context, id string) (*domain.HabitLog, error) {
	query := `SELECT ` + logColumns + ` FROM habit_logs WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	l, err := scanLogRow(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("habit log: %w", ErrNotFound)
		}
		return nil, err
	}
	return l, nil
}

func (r *SQLiteLogRepo) ListByHabit(ctx context.Context, habitID string, limit int) ([]*domain.HabitLog, error) {
	query := `SELECT ` + logColumns + ` FROM habit_logs
		WHERE habit_id = ? ORDER BY started_at DESC`
	args := []any{habitID}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing logs by habit: %w", err)
	}
	defer rows.Close()
	return scanLogs(rows)
}

func (r *SQLiteLogRepo) ListSince(ctx context.Context, since time.Time) ([]*domain.HabitLog, error) {
	query := `SELECT ` + logColumns + ` FROM habit_logs
		WHERE started_at >= ? ORDER BY started_at DESC`
	rows, err := r.db.QueryContext(ctx, query, since.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("listing logs since: %w", err)
	}
	defer rows.Close()
	return scanLogs(rows)
}

func (r *SQLiteLogRepo) TotalsSince(ctx context.Context, since time.Time) ([]HabitTotal, error) {
	query := `SELECT habit_id, COALESCE(SUM(minutes), 0) FROM habit_logs
		WHERE started_at >= ? GROUP BY habit_id`
	rows, err := r.db.QueryContext(ctx, query, since.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("aggregating log totals: %w", err)
	}
	defer rows.Close()

	var totals []HabitTotal
	for rows.Next() {
		var t HabitTotal
		if err := rows.Scan(&t.HabitID, &t.Minutes); err != nil {
			return nil, fmt.Errorf("scanning total row: %w", err)
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating totals: %w", err)
	}
	return totals, nil
}

func (r *SQLiteLogRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM habit_logs WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting habit log: %w", err)
	}
	return nil
}

// scanLogRow scans one log using the given scan function, shared between
// Row and Rows call sites.
func scanLogRow(scan func(dest ...any) error) (*domain.HabitLog, error) {
	var l domain.HabitLog
	var source, startedAtStr, createdAtStr string

	if err := scan(&l.ID, &l.HabitID, &startedAtStr, &l.Minutes, &source, &l.Note, &createdAtStr); err != nil {
		return nil, err
	}

	l.Source = domain.LogSource(source)
	var err error
	l.StartedAt, err = time.Parse(time.RFC3339, startedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing started_at: %w", err)
	}
	l.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &l, nil
}

func scanLogs(rows *sql.Rows) ([]*domain.HabitLog, error) {
	var logs []*domain.HabitLog
	for rows.Next() {
		l, err := scanLogRow(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning log row: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating logs: %w", err)
	}
	return logs, nil
}
