package fiber

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"habit-insights-service/internal/auth"
	"habit-insights-service/internal/trends/core/domain"
	"habit-insights-service/internal/trends/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGetTrendsUseCase struct {
	ExecuteFn func(ctx context.Context, in usecase.GetTrendsInput) (*domain.Trends, error)
	lastInput usecase.GetTrendsInput
	called    bool
}

func (f *fakeGetTrendsUseCase) Execute(ctx context.Context, in usecase.GetTrendsInput) (*domain.Trends, error) {
	f.called = true
	f.lastInput = in
	if f.ExecuteFn != nil {
		return f.ExecuteFn(ctx, in)
	}
	return &domain.Trends{Granularity: domain.GranularityWeek}, nil
}

func setupTestApp(uc GetTrendsUseCase) *fiber.App {
	app := fiber.New()
	h := NewTrendsHandler(uc)
	app.Get("/trends", auth.WithUserID("user-1"), h.GetTrends)
	return app
}

func doGet(t *testing.T, app *fiber.App, path string, header map[string]string) (*http.Response, []byte) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()

	return resp, body
}

func TestGetTrends_Success(t *testing.T) {
	uc := &fakeGetTrendsUseCase{
		ExecuteFn: func(ctx context.Context, in usecase.GetTrendsInput) (*domain.Trends, error) {
			return &domain.Trends{
				Granularity: domain.GranularityMonth,
				CompletionSeries: []domain.AggregatedPeriod{
					{Key: "2024-01", Period: "Jan 2024", Completions: 5, AverageBeliefScore: 6.4},
				},
				BeliefSeries: []domain.AggregatedPeriod{
					{Key: "2024-01", Period: "Jan 2024", Completions: 5, AverageBeliefScore: 6.4},
				},
				Excluded: 1,
			}, nil
		},
	}
	app := setupTestApp(uc)

	resp, body := doGet(t, app, "/trends?habit_id=3&tz=Europe/Berlin&limit=100&granularity=month", map[string]string{
		"Accept-Language": "en-US",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var out TrendsResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "month", out.Granularity)
	require.Len(t, out.CompletionSeries, 1)
	assert.Equal(t, 5, out.CompletionSeries[0].Completions)
	assert.Equal(t, "Jan 2024", out.BeliefSeries[0].Period)
	assert.Equal(t, 6.4, out.BeliefSeries[0].AverageBeliefScore)
	assert.Equal(t, 1, out.Excluded)

	assert.Equal(t, "user-1", uc.lastInput.UserID)
	require.NotNil(t, uc.lastInput.HabitID)
	assert.Equal(t, int64(3), *uc.lastInput.HabitID)
	assert.Equal(t, "Europe/Berlin", uc.lastInput.TimeZone)
	assert.Equal(t, 100, uc.lastInput.Limit)
	assert.Equal(t, "month", uc.lastInput.Granularity)
	assert.Equal(t, "en-US", uc.lastInput.Language)
}

func TestGetTrends_LangOverridesHeader(t *testing.T) {
	uc := &fakeGetTrendsUseCase{}
	app := setupTestApp(uc)

	resp, _ := doGet(t, app, "/trends?lang=zh", map[string]string{"Accept-Language": "en"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "zh", uc.lastInput.Language)
}

func TestGetTrends_EmptySeriesAreArrays(t *testing.T) {
	app := setupTestApp(&fakeGetTrendsUseCase{})

	resp, body := doGet(t, app, "/trends", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"granularity":"week","completion_series":[],"belief_series":[],"excluded":0}`, string(body))
}

func TestGetTrends_InvalidParams(t *testing.T) {
	for _, path := range []string{"/trends?habit_id=abc", "/trends?limit=ten"} {
		uc := &fakeGetTrendsUseCase{}
		app := setupTestApp(uc)

		resp, _ := doGet(t, app, path, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, path)
		assert.False(t, uc.called, path)
	}
}

func TestGetTrends_UseCaseErrors(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidTimeZone, http.StatusBadRequest},
		{usecase.ErrInvalidTrendsQuery, http.StatusBadRequest},
		{usecase.ErrInvalidGranularity, http.StatusBadRequest},
		{errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		uc := &fakeGetTrendsUseCase{
			ExecuteFn: func(ctx context.Context, in usecase.GetTrendsInput) (*domain.Trends, error) {
				return nil, tt.err
			},
		}
		app := setupTestApp(uc)

		resp, body := doGet(t, app, "/trends", nil)
		assert.Equal(t, tt.code, resp.StatusCode, tt.err.Error())
		if tt.code == http.StatusInternalServerError {
			assert.NotContains(t, string(body), "db down")
		}
	}
}
