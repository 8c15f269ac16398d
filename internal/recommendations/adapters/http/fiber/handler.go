package fiber

import (
	"context"
	"errors"
	"net/http"

	"habit-insights-service/internal/auth"
	"habit-insights-service/internal/recommendations/core/domain"
	"habit-insights-service/internal/recommendations/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type GetRecommendationUseCase interface {
	Execute(ctx context.Context, userID string) (*usecase.Recommendation, error)
}

type AnalyzeProfileUseCase interface {
	Execute(ctx context.Context, userID string) (*usecase.AnalysisResult, error)
}

type RecommendationHandler struct {
	recommend GetRecommendationUseCase
	analyze   AnalyzeProfileUseCase
}

func NewRecommendationHandler(recommend GetRecommendationUseCase, analyze AnalyzeProfileUseCase) *RecommendationHandler {
	return &RecommendationHandler{recommend: recommend, analyze: analyze}
}

// GetRecommendation godoc
// @Summary Personalized recommendation
// @Description Matches the caller's onboarding answers against the rule table
// @Tags Recommendations
// @Produce json
// @Success 200 {object} RecommendationResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /recommendation [get]
func (h *RecommendationHandler) GetRecommendation(c *fiber.Ctx) error {
	rec, err := h.recommend.Execute(c.UserContext(), auth.UserID(c))
	if err != nil {
		return writeError(c, err)
	}

	resp := RecommendationResponse{Matched: rec.Matched}
	if rec.Rule != nil {
		resp.RecommendationShort = rec.Rule.RecommendationShort
		resp.RecommendationLong = rec.Rule.RecommendationLong
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// AnalyzeProfile godoc
// @Summary Analyze profile
// @Description Runs the lifestyle heuristics and stores analysis and plan on the profile
// @Tags Recommendations
// @Produce json
// @Success 200 {object} AnalysisResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /profile/analysis [post]
func (h *RecommendationHandler) AnalyzeProfile(c *fiber.Ctx) error {
	res, err := h.analyze.Execute(c.UserContext(), auth.UserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(AnalysisResponse{Analysis: res.Analysis, Plan: res.Plan})
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrProfileNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error:   "profile_not_found",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrOnboardingIncomplete):
		return c.Status(http.StatusUnprocessableEntity).JSON(ErrorResponse{
			Error:   "onboarding_required",
			Message: "complete onboarding first",
		})
	case errors.Is(err, usecase.ErrInvalidUser):
		return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{Error: "unauthorized"})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
