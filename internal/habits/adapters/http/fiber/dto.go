package fiber

import "time"

// CreateHabitRequest represents habit creation payload
// @Description Habit creation DTO
type CreateHabitRequest struct {
	HabitName string `json:"habit_name" example:"Evening walk"`
	Cue       string `json:"cue" example:"After dinner"`
	Response  string `json:"response" example:"Walk for 10 minutes"`
	Reward    string `json:"reward" example:"Calmer evening"`
}

type HabitResponse struct {
	ID          int64     `json:"id"`
	HabitName   string    `json:"habit_name"`
	Cue         *string   `json:"cue"`
	Response    *string   `json:"response"`
	Reward      *string   `json:"reward"`
	BeliefScore *int      `json:"belief_score"`
	CreatedAt   time.Time `json:"created_at"`
}

type ListHabitsResponse struct {
	Habits []HabitResponse `json:"habits"`
}

// RecordCompletionRequest marks a habit as done
// @Description Completion DTO, completed_at defaults to now
type RecordCompletionRequest struct {
	BeliefScore int        `json:"belief_score" example:"7"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type CompletionResponse struct {
	ID          int64     `json:"id"`
	HabitID     int64     `json:"habit_id"`
	BeliefScore int       `json:"belief_score"`
	CompletedAt time.Time `json:"completed_at"`
}

type BulkImportRequest struct {
	Completions []bulkCompletionItem `json:"completions"`
}

type bulkCompletionItem struct {
	HabitID     int64     `json:"habit_id"`
	BeliefScore int       `json:"belief_score"`
	CompletedAt time.Time `json:"completed_at"`
}

type BulkImportResponse struct {
	Imported int `json:"imported"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_completion"`
	Message string `json:"message" example:"belief score must be between 1 and 10"`
}
