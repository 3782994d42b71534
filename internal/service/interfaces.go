package service

import (
	"context"
	"time"

	"github.com/evanhagen/habitual/internal/domain"
)

type HabitService interface {
	Create(ctx context.Context, h *domain.Habit) error
	GetByID(ctx context.Context, id string) (*domain.Habit, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Habit, error)
	Update(ctx context.Context, h *domain.Habit) error
	// Pause marks a habit paused without touching its history; Resume
	// returns it to active. Archived habits stay archived.
	Pause(ctx context.Context, id string) error
	Resume(ctx context.Context, id string) error
	Archive(ctx context.Context, id string) error
}

// LogInput is everything needed to commit a session against a habit.
type LogInput struct {
	HabitID   string
	Minutes   int
	Source    domain.LogSource
	StartedAt time.Time
	Note      string
}

type LogService interface {
	// LogSession persists the log and rolls the habit's totals forward in
	// one transaction. Returns the stored log.
	LogSession(ctx context.Context, in LogInput) (*domain.HabitLog, error)
	ListByHabit(ctx context.Context, habitID string, limit int) ([]*domain.HabitLog, error)
	// Recent lists sessions across all habits since the given time,
	// newest first.
	Recent(ctx context.Context, since time.Time) ([]*domain.HabitLog, error)
	Delete(ctx context.Context, id string) error
}

// HabitStats is a habit with its aggregated minutes over the standard
// reporting windows, plus the points earned today.
type HabitStats struct {
	Habit       *domain.Habit
	TodayMin    int
	WeekMin     int
	TodayPoints int
}

type StatsService interface {
	Overview(ctx context.Context, includeArchived bool) ([]HabitStats, error)
}
