package service

import (
	"context"
	"time"

	"github.com/evanhagen/habitual/internal/repository"
)

type statsService struct {
	habits repository.HabitRepo
	logs   repository.LogRepo
	now    func() time.Time
}

func NewStatsService(habits repository.HabitRepo, logs repository.LogRepo) StatsService {
	return &statsService{habits: habits, logs: logs, now: time.Now}
}

// NewStatsServiceWithClock is used by tests to pin "today".
func NewStatsServiceWithClock(habits repository.HabitRepo, logs repository.LogRepo, now func() time.Time) StatsService {
	return &statsService{habits: habits, logs: logs, now: now}
}

func (s *statsService) Overview(ctx context.Context, includeArchived bool) ([]HabitStats, error) {
	habits, err := s.habits.List(ctx, includeArchived)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	weekStart := dayStart.AddDate(0, 0, -int(dayStart.Weekday()))

	todayTotals, err := s.logs.TotalsSince(ctx, dayStart)
	if err != nil {
		return nil, err
	}
	weekTotals, err := s.logs.TotalsSince(ctx, weekStart)
	if err != nil {
		return nil, err
	}

	todayByHabit := make(map[string]int, len(todayTotals))
	for _, t := range todayTotals {
		todayByHabit[t.HabitID] = t.Minutes
	}
	weekByHabit := make(map[string]int, len(weekTotals))
	for _, t := range weekTotals {
		weekByHabit[t.HabitID] = t.Minutes
	}

	stats := make([]HabitStats, 0, len(habits))
	for _, h := range habits {
		todayMin := todayByHabit[h.ID]
		stats = append(stats, HabitStats{
			Habit:       h,
			TodayMin:    todayMin,
			WeekMin:     weekByHabit[h.ID],
			TodayPoints: h.PointsFor(todayMin),
		})
	}
	return stats, nil
}
