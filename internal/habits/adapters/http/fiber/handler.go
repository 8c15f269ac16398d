package fiber

import (
	"context"
	"errors"
	"net/http"

	"habit-insights-service/internal/auth"
	"habit-insights-service/internal/habits/core/domain"
	"habit-insights-service/internal/habits/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type HabitUseCase interface {
	Create(ctx context.Context, in usecase.CreateHabitInput) (*domain.Habit, error)
	List(ctx context.Context, userID string) ([]domain.Habit, error)
}

type RecordCompletionUseCase interface {
	Execute(ctx context.Context, in usecase.RecordCompletionInput) (*domain.Completion, error)
	BulkImport(ctx context.Context, in usecase.BulkImportInput) (usecase.BulkImportResult, error)
}

type HabitHandler struct {
	habits      HabitUseCase
	completions RecordCompletionUseCase
}

func NewHabitHandler(habits HabitUseCase, completions RecordCompletionUseCase) *HabitHandler {
	return &HabitHandler{habits: habits, completions: completions}
}

// CreateHabit godoc
// @Summary Create a habit
// @Description Stores a cue / response / reward habit for the caller
// @Tags Habits
// @Accept json
// @Produce json
// @Param request body CreateHabitRequest true "Habit payload"
// @Success 201 {object} HabitResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /habits [post]
func (h *HabitHandler) CreateHabit(c *fiber.Ctx) error {
	var req CreateHabitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid_json"})
	}

	habit, err := h.habits.Create(c.UserContext(), usecase.CreateHabitInput{
		UserID:   auth.UserID(c),
		Name:     req.HabitName,
		Cue:      req.Cue,
		Response: req.Response,
		Reward:   req.Reward,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(NewHabitResponse(*habit))
}

// ListHabits godoc
// @Summary List habits
// @Description Returns the caller's habits, newest first
// @Tags Habits
// @Produce json
// @Success 200 {object} ListHabitsResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /habits [get]
func (h *HabitHandler) ListHabits(c *fiber.Ctx) error {
	habits, err := h.habits.List(c.UserContext(), auth.UserID(c))
	if err != nil {
		return writeError(c, err)
	}

	resp := ListHabitsResponse{Habits: make([]HabitResponse, 0, len(habits))}
	for _, habit := range habits {
		resp.Habits = append(resp.Habits, NewHabitResponse(habit))
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// RecordCompletion godoc
// @Summary Mark a habit as done
// @Description Stores a completion with the current belief score and updates the habit's score
// @Tags Habits
// @Accept json
// @Produce json
// @Param id path int true "Habit ID"
// @Param request body RecordCompletionRequest true "Completion payload"
// @Success 201 {object} CompletionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /habits/{id}/completions [post]
func (h *HabitHandler) RecordCompletion(c *fiber.Ctx) error {
	habitID, err := c.ParamsInt("id")
	if err != nil || habitID <= 0 {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_completion",
			Message: "invalid habit id",
		})
	}

	var req RecordCompletionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid_json"})
	}

	in := usecase.RecordCompletionInput{
		UserID:      auth.UserID(c),
		HabitID:     int64(habitID),
		BeliefScore: req.BeliefScore,
	}
	if req.CompletedAt != nil {
		in.CompletedAt = *req.CompletedAt
	}

	completion, err := h.completions.Execute(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(CompletionResponse{
		ID:          completion.ID,
		HabitID:     completion.HabitID,
		BeliefScore: completion.BeliefScore,
		CompletedAt: completion.CompletedAt,
	})
}

// BulkImportCompletions godoc
// @Summary Bulk import completions
// @Description Validates every completion, then stores all of them in one transaction. Nothing is stored when any item fails
// @Tags Habits
// @Accept json
// @Produce json
// @Param request body BulkImportRequest true "Completions"
// @Success 201 {object} BulkImportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /completions/bulk [post]
func (h *HabitHandler) BulkImportCompletions(c *fiber.Ctx) error {
	var req BulkImportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid_json"})
	}

	if len(req.Completions) == 0 {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "completions_list_required",
			Message: "completions must not be empty",
		})
	}

	items := make([]usecase.RecordCompletionInput, len(req.Completions))
	for i, item := range req.Completions {
		items[i] = usecase.RecordCompletionInput{
			HabitID:     item.HabitID,
			BeliefScore: item.BeliefScore,
			CompletedAt: item.CompletedAt,
		}
	}

	res, err := h.completions.BulkImport(c.UserContext(), usecase.BulkImportInput{
		UserID: auth.UserID(c),
		Items:  items,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(BulkImportResponse{Imported: res.Imported})
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidHabit):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_habit",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrInvalidCompletion),
		errors.Is(err, usecase.ErrInvalidBeliefScore),
		errors.Is(err, usecase.ErrFutureTime):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_completion",
			Message: err.Error(),
		})
	case errors.Is(err, domain.ErrHabitNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error:   "habit_not_found",
			Message: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}

func NewHabitResponse(h domain.Habit) HabitResponse {
	return HabitResponse{
		ID:          h.ID,
		HabitName:   h.Name,
		Cue:         optional(h.Cue),
		Response:    optional(h.Response),
		Reward:      optional(h.Reward),
		BeliefScore: h.BeliefScore,
		CreatedAt:   h.CreatedAt,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
