package postgres

import (
	"context"
	"fmt"
	"time"

	"habit-insights-service/internal/trends/core/domain"
	"habit-insights-service/internal/trends/core/ports"
)

type CompletionRepository struct {
	db DB
}

func NewCompletionRepository(db DB) *CompletionRepository {
	return &CompletionRepository{db: db}
}

var _ ports.CompletionReaderPort = (*CompletionRepository)(nil)

// ListCompletions returns the most recent completions of the user, newest
// first. Ordering is irrelevant to the aggregator; DESC only makes LIMIT keep
// the latest history.
func (r *CompletionRepository) ListCompletions(ctx context.Context, f ports.CompletionFilter) ([]domain.CompletionEvent, error) {
	where := "h.user_id = $1"
	args := []any{f.UserID}
	argIndex := 2

	if f.HabitID != nil {
		where += fmt.Sprintf(" AND l.habit_id = $%d", argIndex)
		args = append(args, *f.HabitID)
		argIndex++
	}

	query := fmt.Sprintf(`
SELECT
    l.habit_id,
    l.completed_at,
    l.belief_score_snapshot
FROM habit_log l
JOIN user_habits h ON h.id = l.habit_id
WHERE %s
ORDER BY l.completed_at DESC
LIMIT $%d`, where, argIndex)
	args = append(args, f.Limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query completions: %w", err)
	}
	defer rows.Close()

	var events []domain.CompletionEvent
	for rows.Next() {
		var (
			habitID int64
			at      time.Time
			score   int64
		)
		if err := rows.Scan(&habitID, &at, &score); err != nil {
			return nil, fmt.Errorf("scan completion: %w", err)
		}
		events = append(events, domain.CompletionEvent{
			HabitID:     habitID,
			CompletedAt: at.UTC(),
			BeliefScore: int(score),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate completions: %w", err)
	}

	return events, nil
}
