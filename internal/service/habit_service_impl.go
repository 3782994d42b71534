package service

import (
	"context"
	"fmt"
	"time"

	"github.com/evanhagen/habitual/internal/domain"
	"github.com/evanhagen/habitual/internal/repository"
	"github.com/google/uuid"
)

type habitService struct {
	habits repository.HabitRepo
}

func NewHabitService(habits repository.HabitRepo) HabitService {
	return &habitService{habits: habits}
}

func (s *habitService) Create(ctx context.Context, h *domain.Habit) error {
	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	if h.Status == "" {
		h.Status = domain.HabitActive
	}
	if h.Unit == "" {
		h.Unit = domain.UnitMinutes
	}
	now := time.Now().UTC()
	h.CreatedAt = now
	h.UpdatedAt = now

	if err := h.Validate(); err != nil {
		return err
	}
	return s.habits.Create(ctx, h)
}

func (s *habitService) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	return s.habits.GetByID(ctx, id)
}

func (s *habitService) List(ctx context.Context, includeArchived bool) ([]*domain.Habit, error) {
	return s.habits.List(ctx, includeArchived)
}

func (s *habitService) Update(ctx context.Context, h *domain.Habit) error {
	if err := h.Validate(); err != nil {
		return err
	}
	return s.habits.Update(ctx, h)
}

func (s *habitService) Pause(ctx context.Context, id string) error {
	return s.setStatus(ctx, id, domain.HabitPaused)
}

func (s *habitService) Resume(ctx context.Context, id string) error {
	return s.setStatus(ctx, id, domain.HabitActive)
}

func (s *habitService) setStatus(ctx context.Context, id string, status domain.Status) error {
	h, err := s.habits.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if h.Status == domain.HabitArchived {
		return fmt.Errorf("habit %q is archived", h.Title)
	}
	if h.Status == status {
		return nil
	}
	h.Status = status
	h.UpdatedAt = time.Now().UTC()
	return s.habits.Update(ctx, h)
}

func (s *habitService) Archive(ctx context.Context, id string) error {
	return s.habits.Archive(ctx, id)
}
