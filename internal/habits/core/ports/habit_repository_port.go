package ports

import (
	"context"

	"habit-insights-service/internal/habits/core/domain"
)

type HabitRepositoryPort interface {
	CreateHabit(ctx context.Context, h *domain.Habit) error
	// ListHabits returns the user's habits, newest first.
	ListHabits(ctx context.Context, userID string) ([]domain.Habit, error)
	// RecordCompletion stores the completion and sets the habit's current
	// belief score atomically. domain.ErrHabitNotFound when the habit does
	// not exist or belongs to another user.
	RecordCompletion(ctx context.Context, c *domain.Completion) error
	// RecordCompletions stores all completions in one transaction. Nothing
	// is stored when any of them fails.
	RecordCompletions(ctx context.Context, cs []*domain.Completion) error
}

type CompletionPublisherPort interface {
	PublishCompletion(ctx context.Context, c domain.Completion) error
}
