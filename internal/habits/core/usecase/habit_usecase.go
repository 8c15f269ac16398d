package usecase

import (
	"context"
	"errors"
	"strings"

	"habit-insights-service/internal/habits/core/domain"
	"habit-insights-service/internal/habits/core/ports"
)

var ErrInvalidHabit = errors.New("invalid habit")

const maxHabitFieldLen = 500

type HabitUseCase struct {
	repo ports.HabitRepositoryPort
}

func NewHabitUseCase(repo ports.HabitRepositoryPort) *HabitUseCase {
	return &HabitUseCase{repo: repo}
}

type CreateHabitInput struct {
	UserID   string
	Name     string
	Cue      string
	Response string
	Reward   string
}

func (uc *HabitUseCase) Create(ctx context.Context, in CreateHabitInput) (*domain.Habit, error) {
	h := &domain.Habit{
		UserID:   in.UserID,
		Name:     strings.TrimSpace(in.Name),
		Cue:      strings.TrimSpace(in.Cue),
		Response: strings.TrimSpace(in.Response),
		Reward:   strings.TrimSpace(in.Reward),
	}

	if h.UserID == "" || h.Name == "" {
		return nil, ErrInvalidHabit
	}
	for _, f := range []string{h.Name, h.Cue, h.Response, h.Reward} {
		if len(f) > maxHabitFieldLen {
			return nil, ErrInvalidHabit
		}
	}

	if err := uc.repo.CreateHabit(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (uc *HabitUseCase) List(ctx context.Context, userID string) ([]domain.Habit, error) {
	if userID == "" {
		return nil, ErrInvalidHabit
	}
	return uc.repo.ListHabits(ctx, userID)
}
