package domain

import (
	habits "habit-insights-service/internal/habits/core/domain"
	recommendations "habit-insights-service/internal/recommendations/core/domain"
	trends "habit-insights-service/internal/trends/core/domain"
)

// Dashboard is everything the home screen renders in one response.
type Dashboard struct {
	// OnboardingRequired is set instead of an error when the profile is
	// missing or has no primary concern. Other fields are empty then.
	OnboardingRequired bool
	Recommendation     *recommendations.Rule
	Habits             []habits.Habit
	Trends             trends.Trends
	// TrendsUnavailable marks a degraded response: the trends source failed
	// and Trends holds empty series.
	TrendsUnavailable bool
}
