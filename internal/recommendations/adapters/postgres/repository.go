package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"habit-insights-service/internal/recommendations/core/domain"
	"habit-insights-service/internal/recommendations/core/ports"

	"github.com/lib/pq"
)

type ProfileRepository struct {
	db DB
}

func NewProfileRepository(db DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

var _ ports.ProfileRepositoryPort = (*ProfileRepository)(nil)

const getProfileSQL = `
SELECT
    id,
    primary_concern,
    activity_level,
    circadian_rhythm,
    age,
    height_cm,
    weight_kg,
    sleep_hours,
    stress_level,
    energy_level,
    exercise_types,
    exercise_frequency,
    caffeine_intake,
    alcohol_intake,
    smoking_status,
    meal_pattern,
    medical_conditions,
    medications
FROM profiles
WHERE id = $1;
`

const saveAnalysisSQL = `
UPDATE profiles
SET ai_analysis_result = $1::jsonb,
    ai_recommendation_plan = $2::jsonb
WHERE id = $3;
`

func (r *ProfileRepository) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	rows, err := r.db.QueryContext(ctx, getProfileSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("get profile: %w", err)
		}
		return nil, domain.ErrProfileNotFound
	}

	var (
		p                            domain.Profile
		concern, activity, rhythm    sql.NullString
		frequency, caffeine, alcohol sql.NullString
		smoking, meals               sql.NullString
		age, stress, energy          sql.NullInt64
		height, weight, sleepHours   sql.NullFloat64
	)
	if err := rows.Scan(
		&p.UserID,
		&concern, &activity, &rhythm,
		&age, &height, &weight, &sleepHours, &stress, &energy,
		pq.Array(&p.ExerciseTypes),
		&frequency, &caffeine, &alcohol, &smoking, &meals,
		pq.Array(&p.MedicalConditions),
		pq.Array(&p.Medications),
	); err != nil {
		return nil, fmt.Errorf("scan profile: %w", err)
	}

	p.PrimaryConcern = concern.String
	p.ActivityLevel = activity.String
	p.CircadianRhythm = rhythm.String
	p.ExerciseFrequency = frequency.String
	p.CaffeineIntake = caffeine.String
	p.AlcoholIntake = alcohol.String
	p.SmokingStatus = smoking.String
	p.MealPattern = meals.String
	p.Age = intFromNull(age)
	p.StressLevel = intFromNull(stress)
	p.EnergyLevel = intFromNull(energy)
	p.HeightCM = floatFromNull(height)
	p.WeightKG = floatFromNull(weight)
	p.SleepHours = floatFromNull(sleepHours)

	return &p, rows.Err()
}

func (r *ProfileRepository) SaveAnalysis(ctx context.Context, userID string, a domain.Analysis, p domain.Plan) error {
	analysisJSON, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("encode analysis: %w", err)
	}
	planJSON, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode plan: %w", err)
	}

	res, err := r.db.ExecContext(ctx, saveAnalysisSQL, string(analysisJSON), string(planJSON), userID)
	if err != nil {
		return fmt.Errorf("save analysis: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

func intFromNull(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}

func floatFromNull(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Float64
	return &v
}
