package usecase

import (
	"context"
	"errors"

	"habit-insights-service/internal/recommendations/core/domain"
	"habit-insights-service/internal/recommendations/core/ports"
	"habit-insights-service/internal/recommendations/core/rules"
)

var (
	ErrInvalidUser          = errors.New("invalid user")
	ErrOnboardingIncomplete = errors.New("onboarding incomplete")
)

type Recommendation struct {
	Matched bool
	Rule    *domain.Rule
}

type GetRecommendationUseCase struct {
	profiles ports.ProfileRepositoryPort
	rules    []domain.Rule
}

// NewGetRecommendationUseCase uses the built-in rule table when table is nil.
func NewGetRecommendationUseCase(profiles ports.ProfileRepositoryPort, table []domain.Rule) *GetRecommendationUseCase {
	if table == nil {
		table = rules.Default()
	}
	return &GetRecommendationUseCase{profiles: profiles, rules: table}
}

func (uc *GetRecommendationUseCase) Execute(ctx context.Context, userID string) (*Recommendation, error) {
	if userID == "" {
		return nil, ErrInvalidUser
	}

	profile, err := uc.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile.PrimaryConcern == "" {
		return nil, ErrOnboardingIncomplete
	}

	rule, ok := rules.Match(*profile, uc.rules)
	return &Recommendation{Matched: ok, Rule: rule}, nil
}
