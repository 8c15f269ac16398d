package fiber

import "habit-insights-service/internal/recommendations/core/domain"

type RecommendationResponse struct {
	Matched             bool   `json:"matched"`
	RecommendationShort string `json:"recommendation_short,omitempty"`
	RecommendationLong  string `json:"recommendation_long,omitempty"`
}

type AnalysisResponse struct {
	Analysis domain.Analysis `json:"analysis"`
	Plan     domain.Plan     `json:"plan"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"onboarding_required"`
	Message string `json:"message" example:"complete onboarding first"`
}
