package ports

import (
	"context"
	"time"

	"habit-insights-service/internal/checkins/core/domain"
)

type CheckInRepositoryPort interface {
	// UpsertCheckIn inserts or replaces the row for (UserID, LogDate).
	UpsertCheckIn(ctx context.Context, c domain.CheckIn) (*domain.CheckIn, error)
	// GetCheckIn returns domain.ErrCheckInNotFound when the day has no row.
	GetCheckIn(ctx context.Context, userID string, logDate time.Time) (*domain.CheckIn, error)
	ListCheckIns(ctx context.Context, userID string, limit int) ([]domain.CheckIn, error)
}
