package fiber

import (
	habitshttp "habit-insights-service/internal/habits/adapters/http/fiber"
	trendshttp "habit-insights-service/internal/trends/adapters/http/fiber"
)

type RecommendationResponse struct {
	Short string `json:"short"`
	Long  string `json:"long"`
}

type DashboardResponse struct {
	OnboardingRequired bool                       `json:"onboarding_required"`
	Recommendation     *RecommendationResponse    `json:"recommendation"`
	Habits             []habitshttp.HabitResponse `json:"habits"`
	Trends             *trendshttp.TrendsResponse `json:"trends"`
	TrendsUnavailable  bool                       `json:"trends_unavailable,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"internal_server_error"`
	Message string `json:"message,omitempty"`
}
