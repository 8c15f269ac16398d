package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"habit-insights-service/internal/checkins/core/domain"
	"habit-insights-service/internal/checkins/core/ports"
)

type CheckInRepository struct {
	db DB
}

func NewCheckInRepository(db DB) *CheckInRepository {
	return &CheckInRepository{db: db}
}

var _ ports.CheckInRepositoryPort = (*CheckInRepository)(nil)

const checkInColumns = `
    id,
    user_id,
    log_date,
    sleep_duration_minutes,
    sleep_quality,
    exercise_duration_minutes,
    mood_status,
    stress_level,
    notes,
    updated_at`

const upsertCheckInSQL = `
INSERT INTO daily_wellness_logs (
    user_id,
    log_date,
    sleep_duration_minutes,
    sleep_quality,
    exercise_duration_minutes,
    mood_status,
    stress_level,
    notes
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8
)
ON CONFLICT (user_id, log_date) DO UPDATE SET
    sleep_duration_minutes    = EXCLUDED.sleep_duration_minutes,
    sleep_quality             = EXCLUDED.sleep_quality,
    exercise_duration_minutes = EXCLUDED.exercise_duration_minutes,
    mood_status               = EXCLUDED.mood_status,
    stress_level              = EXCLUDED.stress_level,
    notes                     = EXCLUDED.notes,
    updated_at                = now()
RETURNING` + checkInColumns + `;
`

const getCheckInSQL = `
SELECT` + checkInColumns + `
FROM daily_wellness_logs
WHERE user_id = $1 AND log_date = $2;
`

const listCheckInsSQL = `
SELECT` + checkInColumns + `
FROM daily_wellness_logs
WHERE user_id = $1
ORDER BY log_date DESC
LIMIT $2;
`

func (r *CheckInRepository) UpsertCheckIn(ctx context.Context, c domain.CheckIn) (*domain.CheckIn, error) {
	rows, err := r.db.QueryContext(ctx, upsertCheckInSQL,
		c.UserID,
		c.LogDate.Format("2006-01-02"),
		nullInt(c.SleepDurationMinutes),
		nullString(c.SleepQuality),
		nullInt(c.ExerciseDurationMinutes),
		nullString(c.MoodStatus),
		nullInt(c.StressLevel),
		nullString(c.Notes),
	)
	if err != nil {
		return nil, fmt.Errorf("upsert check-in: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("upsert check-in: %w", err)
		}
		return nil, fmt.Errorf("upsert check-in: no row returned")
	}

	saved, err := scanCheckIn(rows)
	if err != nil {
		return nil, err
	}
	return &saved, rows.Err()
}

func (r *CheckInRepository) GetCheckIn(ctx context.Context, userID string, logDate time.Time) (*domain.CheckIn, error) {
	rows, err := r.db.QueryContext(ctx, getCheckInSQL, userID, logDate.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("get check-in: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("get check-in: %w", err)
		}
		return nil, domain.ErrCheckInNotFound
	}

	c, err := scanCheckIn(rows)
	if err != nil {
		return nil, err
	}
	return &c, rows.Err()
}

func (r *CheckInRepository) ListCheckIns(ctx context.Context, userID string, limit int) ([]domain.CheckIn, error) {
	rows, err := r.db.QueryContext(ctx, listCheckInsSQL, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list check-ins: %w", err)
	}
	defer rows.Close()

	out := []domain.CheckIn{}
	for rows.Next() {
		c, err := scanCheckIn(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate check-ins: %w", err)
	}
	return out, nil
}

func scanCheckIn(rows RowScanner) (domain.CheckIn, error) {
	var (
		c                       domain.CheckIn
		logDate, updatedAt      time.Time
		sleep, exercise, stress sql.NullInt64
		quality, mood, notes    sql.NullString
	)
	if err := rows.Scan(
		&c.ID, &c.UserID, &logDate,
		&sleep, &quality, &exercise, &mood, &stress, &notes,
		&updatedAt,
	); err != nil {
		return domain.CheckIn{}, fmt.Errorf("scan check-in: %w", err)
	}

	y, m, d := logDate.Date()
	c.LogDate = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	c.SleepDurationMinutes = intFromNull(sleep)
	c.ExerciseDurationMinutes = intFromNull(exercise)
	c.StressLevel = intFromNull(stress)
	c.SleepQuality = quality.String
	c.MoodStatus = mood.String
	c.Notes = notes.String
	c.UpdatedAt = updatedAt.UTC()
	return c, nil
}

func intFromNull(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}

func nullInt(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
