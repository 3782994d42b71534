package service

import (
	"context"
	"fmt"
	"time"

	"github.com/evanhagen/habitual/internal/db"
	"github.com/evanhagen/habitual/internal/domain"
	"github.com/evanhagen/habitual/internal/repository"
	"github.com/google/uuid"
)

type logService struct {
	logs   repository.LogRepo
	habits repository.HabitRepo
	uow    db.UnitOfWork
}

func NewLogService(logs repository.LogRepo, habits repository.HabitRepo, uow db.UnitOfWork) LogService {
	return &logService{logs: logs, habits: habits, uow: uow}
}

func (s *logService) LogSession(ctx context.Context, in LogInput) (*domain.HabitLog, error) {
	if in.Minutes <= 0 {
		return nil, fmt.Errorf("logged minutes must be positive, got %d", in.Minutes)
	}
	if in.Source == "" {
		in.Source = domain.SourceManual
	}

	now := time.Now().UTC()
	startedAt := in.StartedAt
	if startedAt.IsZero() {
		startedAt = now
	}

	log := &domain.HabitLog{
		ID:        uuid.New().String(),
		HabitID:   in.HabitID,
		StartedAt: startedAt.UTC(),
		Minutes:   in.Minutes,
		Source:    in.Source,
		Note:      in.Note,
		CreatedAt: now,
	}

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txHabits := repository.NewSQLiteHabitRepo(tx)
		txLogs := repository.NewSQLiteLogRepo(tx)

		habit, err := txHabits.GetByID(ctx, in.HabitID)
		if err != nil {
			return err
		}
		if err := habit.ApplyLog(log.Minutes, now); err != nil {
			return err
		}
		if err := txHabits.Update(ctx, habit); err != nil {
			return err
		}
		return txLogs.Create(ctx, log)
	})
	if err != nil {
		return nil, err
	}
	return log, nil
}

func (s *logService) ListByHabit(ctx context.Context, habitID string, limit int) ([]*domain.HabitLog, error) {
	return s.logs.ListByHabit(ctx, habitID, limit)
}

func (s *logService) Recent(ctx context.Context, since time.Time) ([]*domain.HabitLog, error) {
	return s.logs.ListSince(ctx, since)
}

func (s *logService) Delete(ctx context.Context, id string) error {
	return s.logs.Delete(ctx, id)
}
