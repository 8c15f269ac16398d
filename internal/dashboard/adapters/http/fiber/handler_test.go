package fiber

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"habit-insights-service/internal/auth"
	"habit-insights-service/internal/dashboard/core/domain"
	"habit-insights-service/internal/dashboard/core/usecase"
	habits "habit-insights-service/internal/habits/core/domain"
	recommendations "habit-insights-service/internal/recommendations/core/domain"
	trends "habit-insights-service/internal/trends/core/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDashboardUseCase struct {
	ExecuteFn func(ctx context.Context, in usecase.GetDashboardInput) (*domain.Dashboard, error)
	lastInput usecase.GetDashboardInput
}

func (f *fakeDashboardUseCase) Execute(ctx context.Context, in usecase.GetDashboardInput) (*domain.Dashboard, error) {
	f.lastInput = in
	return f.ExecuteFn(ctx, in)
}

func get(t *testing.T, uc GetDashboardUseCase, path string, header map[string]string) (int, string) {
	t.Helper()

	app := fiber.New()
	app.Use(auth.WithUserID("user-1"))
	app.Get("/dashboard", NewDashboardHandler(uc).GetDashboard)

	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()
	return resp.StatusCode, string(body)
}

func TestGetDashboard_Full(t *testing.T) {
	series := []trends.AggregatedPeriod{{Key: "2024-01", Period: "Jan 2024", Completions: 9, AverageBeliefScore: 6.5}}
	uc := &fakeDashboardUseCase{
		ExecuteFn: func(ctx context.Context, in usecase.GetDashboardInput) (*domain.Dashboard, error) {
			return &domain.Dashboard{
				Recommendation: &recommendations.Rule{RecommendationShort: "s", RecommendationLong: "l"},
				Habits:         []habits.Habit{{ID: 1, Name: "Walk"}},
				Trends:         trends.Trends{Granularity: trends.GranularityMonth, CompletionSeries: series, BeliefSeries: series},
			}, nil
		},
	}

	code, body := get(t, uc, "/dashboard?tz=Asia/Shanghai", map[string]string{"Accept-Language": "zh-CN"})
	require.Equal(t, http.StatusOK, code)

	assert.Equal(t, usecase.GetDashboardInput{UserID: "user-1", TimeZone: "Asia/Shanghai", Language: "zh-CN"}, uc.lastInput)
	assert.Contains(t, body, `"onboarding_required":false`)
	assert.Contains(t, body, `"recommendation":{"short":"s","long":"l"}`)
	assert.Contains(t, body, `"habit_name":"Walk"`)
	assert.Contains(t, body, `"average_belief_score":6.5`)
	assert.NotContains(t, body, "trends_unavailable")
}

func TestGetDashboard_OnboardingRequired(t *testing.T) {
	uc := &fakeDashboardUseCase{
		ExecuteFn: func(ctx context.Context, in usecase.GetDashboardInput) (*domain.Dashboard, error) {
			return &domain.Dashboard{OnboardingRequired: true}, nil
		},
	}

	code, body := get(t, uc, "/dashboard", nil)
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"onboarding_required":true,"recommendation":null,"habits":[],"trends":null}`, body)
}

func TestGetDashboard_Errors(t *testing.T) {
	uc := &fakeDashboardUseCase{
		ExecuteFn: func(ctx context.Context, in usecase.GetDashboardInput) (*domain.Dashboard, error) {
			return nil, usecase.ErrInvalidDashboardQuery
		},
	}
	code, _ := get(t, uc, "/dashboard?tz=bad", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	uc.ExecuteFn = func(ctx context.Context, in usecase.GetDashboardInput) (*domain.Dashboard, error) {
		return nil, errors.New("pq: too many connections")
	}
	code, body := get(t, uc, "/dashboard", nil)
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.NotContains(t, body, "pq:")
}
