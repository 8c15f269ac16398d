package fiber

import (
	"time"

	"habit-insights-service/internal/checkins/core/domain"
)

// SaveCheckInRequest represents one day of wellness signals
// @Description Daily check-in DTO, omitted fields are stored as null
type SaveCheckInRequest struct {
	LogDate                 string `json:"log_date,omitempty" example:"2024-03-10"`
	TimeZone                string `json:"tz,omitempty" example:"Europe/Berlin"`
	SleepDurationMinutes    *int   `json:"sleep_duration_minutes" example:"420"`
	SleepQuality            string `json:"sleep_quality" example:"good"`
	ExerciseDurationMinutes *int   `json:"exercise_duration_minutes" example:"30"`
	MoodStatus              string `json:"mood_status" example:"focused_calm"`
	StressLevel             *int   `json:"stress_level" example:"4"`
	Notes                   string `json:"notes"`
}

type CheckInResponse struct {
	ID                      int64     `json:"id"`
	LogDate                 string    `json:"log_date"`
	SleepDurationMinutes    *int      `json:"sleep_duration_minutes"`
	SleepQuality            *string   `json:"sleep_quality"`
	ExerciseDurationMinutes *int      `json:"exercise_duration_minutes"`
	MoodStatus              *string   `json:"mood_status"`
	StressLevel             *int      `json:"stress_level"`
	Notes                   *string   `json:"notes"`
	UpdatedAt               time.Time `json:"updated_at"`
}

type ListCheckInsResponse struct {
	CheckIns []CheckInResponse `json:"checkins"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_checkin"`
	Message string `json:"message" example:"stress_level must be between 1 and 10"`
}

func newCheckInResponse(c domain.CheckIn) CheckInResponse {
	return CheckInResponse{
		ID:                      c.ID,
		LogDate:                 c.LogDate.Format("2006-01-02"),
		SleepDurationMinutes:    c.SleepDurationMinutes,
		SleepQuality:            optional(c.SleepQuality),
		ExerciseDurationMinutes: c.ExerciseDurationMinutes,
		MoodStatus:              optional(c.MoodStatus),
		StressLevel:             c.StressLevel,
		Notes:                   optional(c.Notes),
		UpdatedAt:               c.UpdatedAt,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
