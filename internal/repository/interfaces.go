package repository

import (
	"context"
	"time"

	"github.com/evanhagen/habitual/internal/domain"
)

// HabitTotal is an aggregated minutes count for one habit over a window,
// used by the stats service and the dashboard.
type HabitTotal struct {
	HabitID string
	Minutes int
}

type HabitRepo interface {
	Create(ctx context.Context, h *domain.Habit) error
	GetByID(ctx context.Context, id string) (*domain.Habit, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Habit, error)
	Update(ctx context.Context, h *domain.Habit) error
	Archive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type LogRepo interface {
	Create(ctx context.Context, l *domain.HabitLog) error
	GetByID(ctx context.Context, id string) (*domain.HabitLog, error)
	ListByHabit(ctx context.Context, habitID string, limit int) ([]*domain.HabitLog, error)
	ListSince(ctx context.Context, since time.Time) ([]*domain.HabitLog, error)
	TotalsSince(ctx context.Context, since time.Time) ([]HabitTotal, error)
	Delete(ctx context.Context, id string) error
}
