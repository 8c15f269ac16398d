package ports

import (
	"context"

	"habit-insights-service/internal/trends/core/domain"
)

type CompletionFilter struct {
	UserID  string
	HabitID *int64 // optional, nil = all habits of the user
	Limit   int    // most recent N completions
}

type CompletionReaderPort interface {
	ListCompletions(ctx context.Context, f CompletionFilter) ([]domain.CompletionEvent, error)
}
