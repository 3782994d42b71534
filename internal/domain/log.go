package domain

import "time"

type HabitLog struct {
	ID        string
	HabitID   string
	StartedAt time.Time
	Minutes   int
	Source    LogSource
	Note      string
	CreatedAt time.Time
}
