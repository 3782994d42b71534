package repository

import (
	"context"
	"testing"
	"time"

	"github.com/evanhagen/habitual/internal/domain"
	"github.com/evanhagen/habitual/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// logTestSetup creates the habit scaffolding needed by log tests.
func logTestSetup(t *testing.T) (*SQLiteLogRepo, string) {
	t.Helper()
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	habitRepo := NewSQLiteHabitRepo(database)
	logRepo := NewSQLiteLogRepo(database)

	h := testutil.NewTestHabit("Running")
	require.NoError(t, habitRepo.Create(ctx, h))

	return logRepo, h.ID
}

func TestLogRepo_CreateAndGetByID(t *testing.T) {
	repo, habitID := logTestSetup(t)
	ctx := context.Background()

	l := testutil.NewTestLog(habitID, 25, testutil.WithNote("Morning run"))
	require.NoError(t, repo.Create(ctx, l))

	fetched, err := repo.GetByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, l.ID, fetched.ID)
	assert.Equal(t, habitID, fetched.HabitID)
	assert.Equal(t, 25, fetched.Minutes)
	assert.Equal(t, domain.SourceTimer, fetched.Source)
	assert.Equal(t, "Morning run", fetched.Note)
}

func TestLogRepo_GetByID_NotFound(t *testing.T) {
	repo, _ := logTestSetup(t)

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLogRepo_ListByHabit_NewestFirst(t *testing.T) {
	repo, habitID := logTestSetup(t)
	ctx := context.Background()

	older := testutil.NewTestLog(habitID, 30, testutil.WithStartedAt(time.Now().Add(-2*time.Hour)))
	newer := testutil.NewTestLog(habitID, 45, testutil.WithStartedAt(time.Now().Add(-1*time.Hour)))
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	list, err := repo.ListByHabit(ctx, habitID, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)
	assert.Equal(t, older.ID, list[1].ID)
}

func TestLogRepo_ListByHabit_Limit(t *testing.T) {
	repo, habitID := logTestSetup(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		l := testutil.NewTestLog(habitID, 10,
			testutil.WithStartedAt(time.Now().Add(-time.Duration(i)*time.Hour)))
		require.NoError(t, repo.Create(ctx, l))
	}

	list, err := repo.ListByHabit(ctx, habitID, 3)
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestLogRepo_ListSince(t *testing.T) {
	repo, habitID := logTestSetup(t)
	ctx := context.Background()

	old := testutil.NewTestLog(habitID, 30, testutil.WithStartedAt(time.Now().Add(-48*time.Hour)))
	recent := testutil.NewTestLog(habitID, 20, testutil.WithStartedAt(time.Now().Add(-1*time.Hour)))
	require.NoError(t, repo.Create(ctx, old))
	require.NoError(t, repo.Create(ctx, recent))

	list, err := repo.ListSince(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, recent.ID, list[0].ID)
}

func TestLogRepo_TotalsSince(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	habitRepo := NewSQLiteHabitRepo(database)
	logRepo := NewSQLiteLogRepo(database)

	h1 := testutil.NewTestHabit("Reading")
	h2 := testutil.NewTestHabit("Writing")
	require.NoError(t, habitRepo.Create(ctx, h1))
	require.NoError(t, habitRepo.Create(ctx, h2))

	require.NoError(t, logRepo.Create(ctx, testutil.NewTestLog(h1.ID, 30)))
	require.NoError(t, logRepo.Create(ctx, testutil.NewTestLog(h1.ID, 15)))
	require.NoError(t, logRepo.Create(ctx, testutil.NewTestLog(h2.ID, 20)))
	// Outside the window.
	require.NoError(t, logRepo.Create(ctx, testutil.NewTestLog(h1.ID, 99,
		testutil.WithStartedAt(time.Now().Add(-72*time.Hour)))))

	totals, err := logRepo.TotalsSince(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	require.Len(t, totals, 2)

	byHabit := make(map[string]int, len(totals))
	for _, tot := range totals {
		byHabit[tot.HabitID] = tot.Minutes
	}
	assert.Equal(t, 45, byHabit[h1.ID])
	assert.Equal(t, 20, byHabit[h2.ID])
}

func TestLogRepo_Delete(t *testing.T) {
	repo, habitID := logTestSetup(t)
	ctx := context.Background()

	l := testutil.NewTestLog(habitID, 25)
	require.NoError(t, repo.Create(ctx, l))
	require.NoError(t, repo.Delete(ctx, l.ID))

	_, err := repo.GetByID(ctx, l.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLogRepo_CascadeOnHabitDelete(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	habitRepo := NewSQLiteHabitRepo(database)
	logRepo := NewSQLiteLogRepo(database)

	h := testutil.NewTestHabit("Cascade")
	require.NoError(t, habitRepo.Create(ctx, h))
	l := testutil.NewTestLog(h.ID, 10)
	require.NoError(t, logRepo.Create(ctx, l))

	require.NoError(t, habitRepo.Delete(ctx, h.ID))

	_, err := logRepo.GetByID(ctx, l.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
