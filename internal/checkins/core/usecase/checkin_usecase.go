package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"habit-insights-service/internal/checkins/core/domain"
	"habit-insights-service/internal/checkins/core/ports"
)

var (
	ErrInvalidCheckIn  = errors.New("invalid check-in")
	ErrInvalidTimeZone = errors.New("invalid time zone")
)

const (
	dateLayout = "2006-01-02"

	DefaultHistoryLimit = 14
	MaxHistoryLimit     = 90
)

type SaveCheckInInput struct {
	UserID                  string
	TimeZone                string
	LogDate                 string // YYYY-MM-DD, "" = today in TimeZone
	SleepDurationMinutes    *int
	SleepQuality            string
	ExerciseDurationMinutes *int
	MoodStatus              string
	StressLevel             *int
	Notes                   string
}

type CheckInUseCase struct {
	repo ports.CheckInRepositoryPort
	now  func() time.Time
}

func NewCheckInUseCase(repo ports.CheckInRepositoryPort) *CheckInUseCase {
	return &CheckInUseCase{repo: repo, now: time.Now}
}

// Save validates the day's signals and upserts them. A second save for the
// same day replaces the first.
func (uc *CheckInUseCase) Save(ctx context.Context, in SaveCheckInInput) (*domain.CheckIn, error) {
	if in.UserID == "" {
		return nil, ErrInvalidCheckIn
	}

	today, err := uc.today(in.TimeZone)
	if err != nil {
		return nil, err
	}

	logDate := today
	if in.LogDate != "" {
		d, err := time.Parse(dateLayout, in.LogDate)
		if err != nil {
			return nil, fmt.Errorf("%w: log_date must be YYYY-MM-DD", ErrInvalidCheckIn)
		}
		if d.After(today) {
			return nil, fmt.Errorf("%w: log_date is in the future", ErrInvalidCheckIn)
		}
		logDate = d
	}

	c := domain.CheckIn{
		UserID:                  in.UserID,
		LogDate:                 logDate,
		SleepDurationMinutes:    in.SleepDurationMinutes,
		SleepQuality:            strings.TrimSpace(in.SleepQuality),
		ExerciseDurationMinutes: in.ExerciseDurationMinutes,
		MoodStatus:              strings.TrimSpace(in.MoodStatus),
		StressLevel:             in.StressLevel,
		Notes:                   strings.TrimSpace(in.Notes),
	}
	if err := validate(c); err != nil {
		return nil, err
	}

	return uc.repo.UpsertCheckIn(ctx, c)
}

// Today returns the caller's check-in for the current date in timeZone.
func (uc *CheckInUseCase) Today(ctx context.Context, userID, timeZone string) (*domain.CheckIn, error) {
	if userID == "" {
		return nil, ErrInvalidCheckIn
	}
	today, err := uc.today(timeZone)
	if err != nil {
		return nil, err
	}
	return uc.repo.GetCheckIn(ctx, userID, today)
}

// History returns the most recent check-ins, newest first.
func (uc *CheckInUseCase) History(ctx context.Context, userID string, limit int) ([]domain.CheckIn, error) {
	if userID == "" || limit < 0 || limit > MaxHistoryLimit {
		return nil, ErrInvalidCheckIn
	}
	if limit == 0 {
		limit = DefaultHistoryLimit
	}
	return uc.repo.ListCheckIns(ctx, userID, limit)
}

func (uc *CheckInUseCase) today(timeZone string) (time.Time, error) {
	loc := time.UTC
	if timeZone != "" {
		l, err := time.LoadLocation(timeZone)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %s", ErrInvalidTimeZone, timeZone)
		}
		loc = l
	}
	y, m, d := uc.now().In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

func validate(c domain.CheckIn) error {
	if !c.HasSignal() {
		return fmt.Errorf("%w: at least one signal is required", ErrInvalidCheckIn)
	}
	if v := c.SleepDurationMinutes; v != nil && (*v < 0 || *v > domain.MaxMinutesPerDay) {
		return fmt.Errorf("%w: sleep_duration_minutes out of range", ErrInvalidCheckIn)
	}
	if v := c.ExerciseDurationMinutes; v != nil && (*v < 0 || *v > domain.MaxMinutesPerDay) {
		return fmt.Errorf("%w: exercise_duration_minutes out of range", ErrInvalidCheckIn)
	}
	if v := c.StressLevel; v != nil && (*v < domain.MinStressLevel || *v > domain.MaxStressLevel) {
		return fmt.Errorf("%w: stress_level must be between 1 and 10", ErrInvalidCheckIn)
	}
	if c.SleepQuality != "" && !domain.IsSleepQuality(c.SleepQuality) {
		return fmt.Errorf("%w: unknown sleep_quality %q", ErrInvalidCheckIn, c.SleepQuality)
	}
	if c.MoodStatus != "" && !domain.IsMood(c.MoodStatus) {
		return fmt.Errorf("%w: unknown mood_status %q", ErrInvalidCheckIn, c.MoodStatus)
	}
	if len([]rune(c.Notes)) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes too long", ErrInvalidCheckIn)
	}
	return nil
}
