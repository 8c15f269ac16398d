package ports

import (
	"context"

	"habit-insights-service/internal/recommendations/core/domain"
)

type ProfileRepositoryPort interface {
	// GetProfile returns domain.ErrProfileNotFound for unknown users.
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
	SaveAnalysis(ctx context.Context, userID string, a domain.Analysis, p domain.Plan) error
}
