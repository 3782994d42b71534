package testutil

import (
	"time"

	"github.com/evanhagen/habitual/internal/domain"
	"github.com/google/uuid"
)

// Habit options

type HabitOption func(*domain.Habit)

func WithTarget(min int) HabitOption {
	return func(h *domain.Habit) {
		h.TargetMin = min
	}
}

func WithColor(hex string) HabitOption {
	return func(h *domain.Habit) {
		h.Color = hex
	}
}

func WithUnit(u domain.TimeUnit) HabitOption {
	return func(h *domain.Habit) {
		h.Unit = u
	}
}

func WithPointsPerHour(pts int) HabitOption {
	return func(h *domain.Habit) {
		h.PointsPerHour = pts
	}
}

func WithHabitStatus(s domain.Status) HabitOption {
	return func(h *domain.Habit) {
		h.Status = s
	}
}

// NewTestHabit builds a persisted-ready habit with sensible defaults.
func NewTestHabit(title string, opts ...HabitOption) *domain.Habit {
	now := time.Now().UTC()
	h := &domain.Habit{
		ID:            uuid.New().String(),
		Title:         title,
		Color:         "#8ec07c",
		TargetMin:     30,
		Unit:          domain.UnitMinutes,
		PointsPerHour: 60,
		Status:        domain.HabitActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Log options

type LogOption func(*domain.HabitLog)

func WithNote(note string) LogOption {
	return func(l *domain.HabitLog) {
		l.Note = note
	}
}

func WithSource(s domain.LogSource) LogOption {
	return func(l *domain.HabitLog) {
		l.Source = s
	}
}

func WithStartedAt(t time.Time) LogOption {
	return func(l *domain.HabitLog) {
		l.StartedAt = t
	}
}

// NewTestLog builds a habit log for the given habit and minutes.
func NewTestLog(habitID string, minutes int, opts ...LogOption) *domain.HabitLog {
	now := time.Now().UTC()
	l := &domain.HabitLog{
		ID:        uuid.New().String(),
		HabitID:   habitID,
		StartedAt: now,
		Minutes:   minutes,
		Source:    domain.SourceTimer,
		CreatedAt: now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}
