package fiber

import (
	"context"
	"errors"
	"net/http"

	"habit-insights-service/internal/auth"
	"habit-insights-service/internal/dashboard/core/domain"
	"habit-insights-service/internal/dashboard/core/usecase"
	habitshttp "habit-insights-service/internal/habits/adapters/http/fiber"
	trendshttp "habit-insights-service/internal/trends/adapters/http/fiber"

	"github.com/gofiber/fiber/v2"
)

type GetDashboardUseCase interface {
	Execute(ctx context.Context, in usecase.GetDashboardInput) (*domain.Dashboard, error)
}

type DashboardHandler struct {
	uc GetDashboardUseCase
}

func NewDashboardHandler(uc GetDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetDashboard godoc
// @Summary Dashboard
// @Description Recommendation, habits and trend charts in one call. When onboarding is not finished only onboarding_required is set.
// @Tags Dashboard
// @Produce json
// @Param tz query string false "IANA time zone for chart buckets, default UTC"
// @Param lang query string false "Label language, overrides Accept-Language"
// @Success 200 {object} DashboardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	d, err := h.uc.Execute(c.UserContext(), usecase.GetDashboardInput{
		UserID:   auth.UserID(c),
		TimeZone: c.Query("tz"),
		Language: c.Query("lang", c.Get(fiber.HeaderAcceptLanguage)),
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidDashboardQuery) {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_query",
				Message: err.Error(),
			})
		}
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{Error: "internal_server_error"})
	}

	return c.Status(http.StatusOK).JSON(newDashboardResponse(d))
}

func newDashboardResponse(d *domain.Dashboard) DashboardResponse {
	resp := DashboardResponse{
		OnboardingRequired: d.OnboardingRequired,
		Habits:             make([]habitshttp.HabitResponse, 0, len(d.Habits)),
		TrendsUnavailable:  d.TrendsUnavailable,
	}
	if d.OnboardingRequired {
		return resp
	}

	if d.Recommendation != nil {
		resp.Recommendation = &RecommendationResponse{
			Short: d.Recommendation.RecommendationShort,
			Long:  d.Recommendation.RecommendationLong,
		}
	}
	for _, h := range d.Habits {
		resp.Habits = append(resp.Habits, habitshttp.NewHabitResponse(h))
	}
	t := trendshttp.NewTrendsResponse(&d.Trends)
	resp.Trends = &t

	return resp
}
