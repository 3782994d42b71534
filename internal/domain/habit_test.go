package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validHabit() *Habit {
	return &Habit{
		ID:            "h1",
		Title:         "Reading",
		Color:         "#8ec07c",
		TargetMin:     30,
		Unit:          UnitMinutes,
		PointsPerHour: 60,
		Status:        HabitActive,
	}
}

func TestHabit_Validate(t *testing.T) {
	assert.NoError(t, validHabit().Validate())

	h := validHabit()
	h.Title = ""
	assert.Error(t, h.Validate())

	h = validHabit()
	h.Color = "green"
	assert.Error(t, h.Validate())

	h = validHabit()
	h.Color = "" // color is optional
	assert.NoError(t, h.Validate())

	h = validHabit()
	h.TargetMin = -1
	assert.Error(t, h.Validate())

	h = validHabit()
	h.Unit = "fortnights"
	assert.Error(t, h.Validate())
}

func TestHabit_HasTarget(t *testing.T) {
	h := validHabit()
	assert.True(t, h.HasTarget())
	h.TargetMin = 0
	assert.False(t, h.HasTarget())
}

func TestHabit_PointsFor(t *testing.T) {
	h := validHabit() // 60 points per hour
	assert.Equal(t, 0, h.PointsFor(0))
	assert.Equal(t, 0, h.PointsFor(-10))
	assert.Equal(t, 30, h.PointsFor(30))
	assert.Equal(t, 60, h.PointsFor(60))

	h.PointsPerHour = 90
	assert.Equal(t, 45, h.PointsFor(30))
	// Rounded, not truncated.
	assert.Equal(t, 2, h.PointsFor(1)) // 1.5 rounds up

	h.PointsPerHour = 0
	assert.Equal(t, 0, h.PointsFor(60))
}

func TestHabit_ApplyLog(t *testing.T) {
	h := validHabit()
	h.LoggedTotalMin = 100
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, h.ApplyLog(25, at))
	assert.Equal(t, 125, h.LoggedTotalMin)
	require.NotNil(t, h.LastLoggedAt)
	assert.Equal(t, at, *h.LastLoggedAt)
	assert.Equal(t, at, h.UpdatedAt)

	assert.Error(t, h.ApplyLog(0, at))
	assert.Error(t, h.ApplyLog(-5, at))
}
