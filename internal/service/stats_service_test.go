package service

import (
	"context"
	"testing"
	"time"

	"github.com/evanhagen/habitual/internal/domain"
	"github.com/evanhagen/habitual/internal/repository"
	"github.com/evanhagen/habitual/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsService_Overview(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	habitRepo := repository.NewSQLiteHabitRepo(database)
	logRepo := repository.NewSQLiteLogRepo(database)

	// Pin "now" to a Wednesday so the week window (starting Sunday) is known.
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	svc := NewStatsServiceWithClock(habitRepo, logRepo, func() time.Time { return now })

	h := testutil.NewTestHabit("Reading", testutil.WithPointsPerHour(60))
	require.NoError(t, habitRepo.Create(ctx, h))

	// Today: 30 minutes.
	require.NoError(t, logRepo.Create(ctx, testutil.NewTestLog(h.ID, 30,
		testutil.WithStartedAt(now.Add(-time.Hour)))))
	// Earlier this week (Monday the 24th): 45 minutes.
	require.NoError(t, logRepo.Create(ctx, testutil.NewTestLog(h.ID, 45,
		testutil.WithStartedAt(time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)))))
	// Before this week: excluded from both windows.
	require.NoError(t, logRepo.Create(ctx, testutil.NewTestLog(h.ID, 99,
		testutil.WithStartedAt(time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC)))))

	stats, err := svc.Overview(ctx, false)
	require.NoError(t, err)
	require.Len(t, stats, 1)

	assert.Equal(t, 30, stats[0].TodayMin)
	assert.Equal(t, 75, stats[0].WeekMin)
	// 30 minutes at 60 pts/hour.
	assert.Equal(t, 30, stats[0].TodayPoints)
}

func TestStatsService_Overview_NoLogs(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	habitRepo := repository.NewSQLiteHabitRepo(database)
	logRepo := repository.NewSQLiteLogRepo(database)
	svc := NewStatsService(habitRepo, logRepo)

	h := testutil.NewTestHabit("Empty")
	require.NoError(t, habitRepo.Create(ctx, h))

	stats, err := svc.Overview(ctx, false)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Zero(t, stats[0].TodayMin)
	assert.Zero(t, stats[0].WeekMin)
	assert.Zero(t, stats[0].TodayPoints)
}

func TestStatsService_Overview_ExcludesArchived(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	habitRepo := repository.NewSQLiteHabitRepo(database)
	logRepo := repository.NewSQLiteLogRepo(database)
	svc := NewStatsService(habitRepo, logRepo)

	require.NoError(t, habitRepo.Create(ctx, testutil.NewTestHabit("Active")))
	require.NoError(t, habitRepo.Create(ctx,
		testutil.NewTestHabit("Gone", testutil.WithHabitStatus(domain.HabitArchived))))

	stats, err := svc.Overview(ctx, false)
	require.NoError(t, err)
	assert.Len(t, stats, 1)

	all, err := svc.Overview(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
