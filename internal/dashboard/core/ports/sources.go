package ports

import (
	"context"

	habits "habit-insights-service/internal/habits/core/domain"
	recusecase "habit-insights-service/internal/recommendations/core/usecase"
	trends "habit-insights-service/internal/trends/core/domain"
	trendsusecase "habit-insights-service/internal/trends/core/usecase"
)

type RecommendationSource interface {
	Execute(ctx context.Context, userID string) (*recusecase.Recommendation, error)
}

type HabitSource interface {
	List(ctx context.Context, userID string) ([]habits.Habit, error)
}

type TrendsSource interface {
	Execute(ctx context.Context, in trendsusecase.GetTrendsInput) (*trends.Trends, error)
}
