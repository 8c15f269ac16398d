package fiber

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"habit-insights-service/internal/auth"
	"habit-insights-service/internal/trends/core/domain"
	"habit-insights-service/internal/trends/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type GetTrendsUseCase interface {
	Execute(ctx context.Context, in usecase.GetTrendsInput) (*domain.Trends, error)
}

type TrendsHandler struct {
	uc GetTrendsUseCase
}

func NewTrendsHandler(uc GetTrendsUseCase) *TrendsHandler {
	return &TrendsHandler{uc: uc}
}

// GetTrends godoc
// @Summary Habit completion trends
// @Description Completions and average belief score per week (fewer than 8 completions) or per month
// @Tags Trends
// @Produce json
// @Param habit_id query int false "Restrict to one habit"
// @Param tz query string false "IANA time zone used for bucketing (default UTC)"
// @Param lang query string false "Label language, overrides Accept-Language"
// @Param granularity query string false "auto | week | month"
// @Param limit query int false "Most recent N completions (default 500, max 5000)"
// @Success 200 {object} TrendsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /trends [get]
func (h *TrendsHandler) GetTrends(c *fiber.Ctx) error {
	in := usecase.GetTrendsInput{
		UserID:      auth.UserID(c),
		TimeZone:    c.Query("tz", ""),
		Language:    c.Query("lang", c.Get(fiber.HeaderAcceptLanguage)),
		Granularity: c.Query("granularity", ""),
	}

	if s := c.Query("habit_id", ""); s != "" {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_query",
				Message: "invalid 'habit_id' parameter",
			})
		}
		in.HabitID = &id
	}

	if s := c.Query("limit", ""); s != "" {
		limit, err := strconv.Atoi(s)
		if err != nil {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_query",
				Message: "invalid 'limit' parameter",
			})
		}
		in.Limit = limit
	}

	res, err := h.uc.Execute(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidTrendsQuery),
			errors.Is(err, usecase.ErrInvalidTimeZone),
			errors.Is(err, usecase.ErrInvalidGranularity):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_query",
				Message: err.Error(),
			})
		default:
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	return c.Status(http.StatusOK).JSON(NewTrendsResponse(res))
}

// NewTrendsResponse maps aggregated trends to their wire form. Series are
// never null in JSON.
func NewTrendsResponse(t *domain.Trends) TrendsResponse {
	resp := TrendsResponse{
		Granularity:      string(t.Granularity),
		CompletionSeries: make([]CompletionPointResponse, 0, len(t.CompletionSeries)),
		BeliefSeries:     make([]BeliefPointResponse, 0, len(t.BeliefSeries)),
		Excluded:         t.Excluded,
	}

	for _, p := range t.CompletionSeries {
		resp.CompletionSeries = append(resp.CompletionSeries, CompletionPointResponse{
			Period:      p.Period,
			Key:         p.Key,
			Completions: p.Completions,
		})
	}
	for _, p := range t.BeliefSeries {
		resp.BeliefSeries = append(resp.BeliefSeries, BeliefPointResponse{
			Period:             p.Period,
			Key:                p.Key,
			AverageBeliefScore: p.AverageBeliefScore,
		})
	}

	return resp
}
