package usecase

import (
	"context"
	"errors"
	"fmt"

	"habit-insights-service/internal/dashboard/core/domain"
	"habit-insights-service/internal/dashboard/core/ports"
	recdomain "habit-insights-service/internal/recommendations/core/domain"
	recusecase "habit-insights-service/internal/recommendations/core/usecase"
	trends "habit-insights-service/internal/trends/core/domain"
	trendsusecase "habit-insights-service/internal/trends/core/usecase"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var ErrInvalidDashboardQuery = errors.New("invalid dashboard query")

type GetDashboardInput struct {
	UserID   string
	TimeZone string
	Language string
}

type GetDashboardUseCase struct {
	recommendations ports.RecommendationSource
	habits          ports.HabitSource
	trends          ports.TrendsSource
	log             *zap.Logger
}

func NewGetDashboardUseCase(
	recommendations ports.RecommendationSource,
	habits ports.HabitSource,
	trends ports.TrendsSource,
	log *zap.Logger,
) *GetDashboardUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &GetDashboardUseCase{
		recommendations: recommendations,
		habits:          habits,
		trends:          trends,
		log:             log,
	}
}

// Execute loads the three dashboard sections concurrently. A failing
// recommendation or habit source fails the whole call and cancels the others;
// a failing trends source only degrades the chart. An unknown time zone is
// the caller's fault and fails the call.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, in GetDashboardInput) (*domain.Dashboard, error) {
	if in.UserID == "" {
		return nil, ErrInvalidDashboardQuery
	}

	var (
		out        domain.Dashboard
		onboarding bool
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rec, err := uc.recommendations.Execute(gctx, in.UserID)
		switch {
		case errors.Is(err, recdomain.ErrProfileNotFound),
			errors.Is(err, recusecase.ErrOnboardingIncomplete):
			onboarding = true
			return nil
		case err != nil:
			return err
		}
		out.Recommendation = rec.Rule
		return nil
	})

	g.Go(func() error {
		list, err := uc.habits.List(gctx, in.UserID)
		if err != nil {
			return err
		}
		out.Habits = list
		return nil
	})

	g.Go(func() error {
		t, err := uc.trends.Execute(gctx, trendsusecase.GetTrendsInput{
			UserID:   in.UserID,
			TimeZone: in.TimeZone,
			Language: in.Language,
		})
		if errors.Is(err, trendsusecase.ErrInvalidTimeZone) {
			return fmt.Errorf("%w: %w", ErrInvalidDashboardQuery, err)
		}
		if err != nil {
			uc.log.Warn("trends unavailable for dashboard",
				zap.String("user_id", in.UserID),
				zap.Error(err),
			)
			out.Trends = trends.Trends{
				CompletionSeries: []trends.AggregatedPeriod{},
				BeliefSeries:     []trends.AggregatedPeriod{},
			}
			out.TrendsUnavailable = true
			return nil
		}
		out.Trends = *t
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if onboarding {
		return &domain.Dashboard{OnboardingRequired: true}, nil
	}
	return &out, nil
}
