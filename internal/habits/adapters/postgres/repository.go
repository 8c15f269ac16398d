package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"habit-insights-service/internal/habits/core/domain"
	"habit-insights-service/internal/habits/core/ports"
)

type HabitRepository struct {
	db DB
}

func NewHabitRepository(db DB) *HabitRepository {
	return &HabitRepository{db: db}
}

var _ ports.HabitRepositoryPort = (*HabitRepository)(nil)

const insertHabitSQL = `
INSERT INTO user_habits (
    user_id,
    habit_name,
    cue,
    response,
    reward
) VALUES (
    $1, $2, $3, $4, $5
)
RETURNING id, created_at;
`

const listHabitsSQL = `
SELECT
    id,
    user_id,
    habit_name,
    cue,
    response,
    reward,
    belief_score,
    created_at
FROM user_habits
WHERE user_id = $1
ORDER BY created_at DESC, id DESC;
`

// The current score follows the latest completion; a backdated completion
// still matches the row (ownership check) but keeps the newer score.
const updateBeliefScoreSQL = `
UPDATE user_habits h
SET belief_score = CASE
    WHEN EXISTS (
        SELECT 1 FROM habit_log l
        WHERE l.habit_id = h.id AND l.completed_at > $4
    ) THEN h.belief_score
    ELSE $1
END
WHERE h.id = $2 AND h.user_id = $3;
`

const insertCompletionSQL = `
INSERT INTO habit_log (
    habit_id,
    belief_score_snapshot,
    completed_at
) VALUES (
    $1, $2, $3
)
RETURNING id;
`

func (r *HabitRepository) CreateHabit(ctx context.Context, h *domain.Habit) error {
	rows, err := r.db.QueryContext(ctx, insertHabitSQL,
		h.UserID,
		h.Name,
		nullString(h.Cue),
		nullString(h.Response),
		nullString(h.Reward),
	)
	if err != nil {
		return fmt.Errorf("insert habit: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return fmt.Errorf("insert habit: %w", err)
		}
		return fmt.Errorf("insert habit: no row returned")
	}

	var createdAt time.Time
	if err := rows.Scan(&h.ID, &createdAt); err != nil {
		return fmt.Errorf("scan habit id: %w", err)
	}
	h.CreatedAt = createdAt.UTC()

	return rows.Err()
}

func (r *HabitRepository) ListHabits(ctx context.Context, userID string) ([]domain.Habit, error) {
	rows, err := r.db.QueryContext(ctx, listHabitsSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list habits: %w", err)
	}
	defer rows.Close()

	habits := []domain.Habit{}
	for rows.Next() {
		var (
			h                     domain.Habit
			cue, response, reward sql.NullString
			beliefScore           sql.NullInt64
			createdAt             time.Time
		)
		if err := rows.Scan(&h.ID, &h.UserID, &h.Name, &cue, &response, &reward, &beliefScore, &createdAt); err != nil {
			return nil, fmt.Errorf("scan habit: %w", err)
		}
		h.Cue = cue.String
		h.Response = response.String
		h.Reward = reward.String
		if beliefScore.Valid {
			v := int(beliefScore.Int64)
			h.BeliefScore = &v
		}
		h.CreatedAt = createdAt.UTC()
		habits = append(habits, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate habits: %w", err)
	}

	return habits, nil
}

func (r *HabitRepository) RecordCompletion(ctx context.Context, c *domain.Completion) error {
	return r.db.InTx(ctx, func(q Querier) error {
		return recordCompletion(ctx, q, c)
	})
}

func (r *HabitRepository) RecordCompletions(ctx context.Context, cs []*domain.Completion) error {
	return r.db.InTx(ctx, func(q Querier) error {
		for _, c := range cs {
			if err := recordCompletion(ctx, q, c); err != nil {
				return err
			}
		}
		return nil
	})
}

func recordCompletion(ctx context.Context, q Querier, c *domain.Completion) error {
	res, err := q.ExecContext(ctx, updateBeliefScoreSQL, c.BeliefScore, c.HabitID, c.UserID, c.CompletedAt)
	if err != nil {
		return fmt.Errorf("update belief score: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	// rows == 0 -> unknown habit or not owned by the user
	if n == 0 {
		return fmt.Errorf("habit %d: %w", c.HabitID, domain.ErrHabitNotFound)
	}

	rows, err := q.QueryContext(ctx, insertCompletionSQL, c.HabitID, c.BeliefScore, c.CompletedAt)
	if err != nil {
		return fmt.Errorf("insert completion: %w", err)
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&c.ID); err != nil {
			return fmt.Errorf("scan completion id: %w", err)
		}
	}
	return rows.Err()
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
