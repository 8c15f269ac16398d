package fiber

import (
	"context"
	"errors"
	"net/http"

	"habit-insights-service/internal/auth"
	"habit-insights-service/internal/checkins/core/domain"
	"habit-insights-service/internal/checkins/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type CheckInUseCase interface {
	Save(ctx context.Context, in usecase.SaveCheckInInput) (*domain.CheckIn, error)
	Today(ctx context.Context, userID, timeZone string) (*domain.CheckIn, error)
	History(ctx context.Context, userID string, limit int) ([]domain.CheckIn, error)
}

type CheckInHandler struct {
	uc CheckInUseCase
}

func NewCheckInHandler(uc CheckInUseCase) *CheckInHandler {
	return &CheckInHandler{uc: uc}
}

// SaveCheckIn godoc
// @Summary Save today's check-in
// @Description Creates or replaces the check-in for log_date (default: today in tz)
// @Tags CheckIns
// @Accept json
// @Produce json
// @Param request body SaveCheckInRequest true "Check-in payload"
// @Success 200 {object} CheckInResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /checkins [put]
func (h *CheckInHandler) SaveCheckIn(c *fiber.Ctx) error {
	var req SaveCheckInRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid_json"})
	}

	saved, err := h.uc.Save(c.UserContext(), usecase.SaveCheckInInput{
		UserID:                  auth.UserID(c),
		TimeZone:                req.TimeZone,
		LogDate:                 req.LogDate,
		SleepDurationMinutes:    req.SleepDurationMinutes,
		SleepQuality:            req.SleepQuality,
		ExerciseDurationMinutes: req.ExerciseDurationMinutes,
		MoodStatus:              req.MoodStatus,
		StressLevel:             req.StressLevel,
		Notes:                   req.Notes,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(newCheckInResponse(*saved))
}

// GetToday godoc
// @Summary Get today's check-in
// @Tags CheckIns
// @Produce json
// @Param tz query string false "IANA time zone, default UTC"
// @Success 200 {object} CheckInResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /checkins/today [get]
func (h *CheckInHandler) GetToday(c *fiber.Ctx) error {
	got, err := h.uc.Today(c.UserContext(), auth.UserID(c), c.Query("tz"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(newCheckInResponse(*got))
}

// ListCheckIns godoc
// @Summary Recent check-ins
// @Tags CheckIns
// @Produce json
// @Param limit query int false "Max rows, default 14, max 90"
// @Success 200 {object} ListCheckInsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /checkins [get]
func (h *CheckInHandler) ListCheckIns(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)

	list, err := h.uc.History(c.UserContext(), auth.UserID(c), limit)
	if err != nil {
		return writeError(c, err)
	}

	resp := ListCheckInsResponse{CheckIns: make([]CheckInResponse, 0, len(list))}
	for _, item := range list {
		resp.CheckIns = append(resp.CheckIns, newCheckInResponse(item))
	}
	return c.Status(http.StatusOK).JSON(resp)
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidCheckIn):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_checkin",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrInvalidTimeZone):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_time_zone",
			Message: err.Error(),
		})
	case errors.Is(err, domain.ErrCheckInNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error:   "checkin_not_found",
			Message: "no check-in for today",
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
