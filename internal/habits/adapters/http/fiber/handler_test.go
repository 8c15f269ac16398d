package fiber

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"habit-insights-service/internal/auth"
	"habit-insights-service/internal/habits/core/domain"
	"habit-insights-service/internal/habits/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHabitUseCase struct {
	CreateFn   func(ctx context.Context, in usecase.CreateHabitInput) (*domain.Habit, error)
	ListFn     func(ctx context.Context, userID string) ([]domain.Habit, error)
	lastCreate usecase.CreateHabitInput
}

func (f *fakeHabitUseCase) Create(ctx context.Context, in usecase.CreateHabitInput) (*domain.Habit, error) {
	f.lastCreate = in
	if f.CreateFn != nil {
		return f.CreateFn(ctx, in)
	}
	return &domain.Habit{ID: 1, UserID: in.UserID, Name: in.Name}, nil
}

func (f *fakeHabitUseCase) List(ctx context.Context, userID string) ([]domain.Habit, error) {
	if f.ListFn != nil {
		return f.ListFn(ctx, userID)
	}
	return nil, nil
}

type fakeCompletionUseCase struct {
	ExecuteFn   func(ctx context.Context, in usecase.RecordCompletionInput) (*domain.Completion, error)
	BulkFn      func(ctx context.Context, in usecase.BulkImportInput) (usecase.BulkImportResult, error)
	lastExecute usecase.RecordCompletionInput
	lastBulk    usecase.BulkImportInput
	called      bool
}

func (f *fakeCompletionUseCase) Execute(ctx context.Context, in usecase.RecordCompletionInput) (*domain.Completion, error) {
	f.called = true
	f.lastExecute = in
	if f.ExecuteFn != nil {
		return f.ExecuteFn(ctx, in)
	}
	return &domain.Completion{ID: 1, UserID: in.UserID, HabitID: in.HabitID, BeliefScore: in.BeliefScore, CompletedAt: in.CompletedAt}, nil
}

func (f *fakeCompletionUseCase) BulkImport(ctx context.Context, in usecase.BulkImportInput) (usecase.BulkImportResult, error) {
	f.called = true
	f.lastBulk = in
	if f.BulkFn != nil {
		return f.BulkFn(ctx, in)
	}
	return usecase.BulkImportResult{Imported: len(in.Items)}, nil
}

func setupTestApp(habits HabitUseCase, completions RecordCompletionUseCase) *fiber.App {
	app := fiber.New()
	h := NewHabitHandler(habits, completions)

	app.Use(auth.WithUserID("user-1"))
	app.Post("/habits", h.CreateHabit)
	app.Get("/habits", h.ListHabits)
	app.Post("/habits/:id/completions", h.RecordCompletion)
	app.Post("/completions/bulk", h.BulkImportCompletions)

	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, []byte) {
	t.Helper()

	var buf io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		buf = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		buf = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()

	return resp, respBody
}

func TestCreateHabit_Success(t *testing.T) {
	habits := &fakeHabitUseCase{
		CreateFn: func(ctx context.Context, in usecase.CreateHabitInput) (*domain.Habit, error) {
			return &domain.Habit{ID: 4, UserID: in.UserID, Name: "Walk", Cue: "after dinner"}, nil
		},
	}
	app := setupTestApp(habits, &fakeCompletionUseCase{})

	resp, body := doRequest(t, app, http.MethodPost, "/habits", CreateHabitRequest{HabitName: "Walk", Cue: "after dinner"})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	var out HabitResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, int64(4), out.ID)
	require.NotNil(t, out.Cue)
	assert.Equal(t, "after dinner", *out.Cue)
	assert.Nil(t, out.Reward)
	assert.Nil(t, out.BeliefScore)
	assert.Equal(t, "user-1", habits.lastCreate.UserID)
}

func TestCreateHabit_Errors(t *testing.T) {
	app := setupTestApp(&fakeHabitUseCase{}, &fakeCompletionUseCase{})
	resp, _ := doRequest(t, app, http.MethodPost, "/habits", "{bad json")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	habits := &fakeHabitUseCase{
		CreateFn: func(ctx context.Context, in usecase.CreateHabitInput) (*domain.Habit, error) {
			return nil, usecase.ErrInvalidHabit
		},
	}
	app = setupTestApp(habits, &fakeCompletionUseCase{})
	resp, body := doRequest(t, app, http.MethodPost, "/habits", CreateHabitRequest{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "invalid_habit")
}

func TestListHabits(t *testing.T) {
	score := 6
	habits := &fakeHabitUseCase{
		ListFn: func(ctx context.Context, userID string) ([]domain.Habit, error) {
			return []domain.Habit{{ID: 2, Name: "Stretch", BeliefScore: &score}, {ID: 1, Name: "Walk"}}, nil
		},
	}
	app := setupTestApp(habits, &fakeCompletionUseCase{})

	resp, body := doRequest(t, app, http.MethodGet, "/habits", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out ListHabitsResponse
	require.NoError(t, json.Unmarshal(body, &out))
	require.Len(t, out.Habits, 2)
	assert.Equal(t, 6, *out.Habits[0].BeliefScore)
}

func TestListHabits_EmptyIsArray(t *testing.T) {
	app := setupTestApp(&fakeHabitUseCase{}, &fakeCompletionUseCase{})

	_, body := doRequest(t, app, http.MethodGet, "/habits", nil)
	assert.JSONEq(t, `{"habits":[]}`, string(body))
}

func TestRecordCompletion_Success(t *testing.T) {
	completions := &fakeCompletionUseCase{}
	app := setupTestApp(&fakeHabitUseCase{}, completions)

	at := time.Date(2024, 1, 8, 7, 0, 0, 0, time.UTC)
	resp, body := doRequest(t, app, http.MethodPost, "/habits/3/completions", RecordCompletionRequest{BeliefScore: 7, CompletedAt: &at})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	assert.Equal(t, usecase.RecordCompletionInput{UserID: "user-1", HabitID: 3, BeliefScore: 7, CompletedAt: at}, completions.lastExecute)

	var out CompletionResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, int64(3), out.HabitID)
	assert.Equal(t, 7, out.BeliefScore)
}

func TestRecordCompletion_WithoutTimestamp(t *testing.T) {
	completions := &fakeCompletionUseCase{}
	app := setupTestApp(&fakeHabitUseCase{}, completions)

	resp, _ := doRequest(t, app, http.MethodPost, "/habits/3/completions", `{"belief_score":5}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, completions.lastExecute.CompletedAt.IsZero())
}

func TestRecordCompletion_BadHabitID(t *testing.T) {
	completions := &fakeCompletionUseCase{}
	app := setupTestApp(&fakeHabitUseCase{}, completions)

	for _, path := range []string{"/habits/abc/completions", "/habits/0/completions"} {
		resp, _ := doRequest(t, app, http.MethodPost, path, `{"belief_score":5}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, path)
	}
	assert.False(t, completions.called)
}

func TestRecordCompletion_ErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidBeliefScore, http.StatusBadRequest},
		{usecase.ErrFutureTime, http.StatusBadRequest},
		{domain.ErrHabitNotFound, http.StatusNotFound},
		{errors.New("db failure"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		completions := &fakeCompletionUseCase{
			ExecuteFn: func(ctx context.Context, in usecase.RecordCompletionInput) (*domain.Completion, error) {
				return nil, tt.err
			},
		}
		app := setupTestApp(&fakeHabitUseCase{}, completions)

		resp, _ := doRequest(t, app, http.MethodPost, "/habits/3/completions", `{"belief_score":5}`)
		assert.Equal(t, tt.code, resp.StatusCode, tt.err.Error())
	}
}

func TestBulkImport_Success(t *testing.T) {
	completions := &fakeCompletionUseCase{}
	app := setupTestApp(&fakeHabitUseCase{}, completions)

	body := `{"completions":[
		{"habit_id":1,"belief_score":6,"completed_at":"2024-01-08T08:00:00Z"},
		{"habit_id":1,"belief_score":8,"completed_at":"2024-01-08T08:00:00Z"}
	]}`
	resp, respBody := doRequest(t, app, http.MethodPost, "/completions/bulk", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(respBody))
	assert.JSONEq(t, `{"imported":2}`, string(respBody))

	assert.Equal(t, "user-1", completions.lastBulk.UserID)
	require.Len(t, completions.lastBulk.Items, 2)
	assert.Equal(t, 8, completions.lastBulk.Items[1].BeliefScore)
}

func TestBulkImport_Errors(t *testing.T) {
	completions := &fakeCompletionUseCase{}
	app := setupTestApp(&fakeHabitUseCase{}, completions)

	resp, body := doRequest(t, app, http.MethodPost, "/completions/bulk", `{"completions":[]}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "completions_list_required")
	assert.False(t, completions.called)

	completions = &fakeCompletionUseCase{
		BulkFn: func(ctx context.Context, in usecase.BulkImportInput) (usecase.BulkImportResult, error) {
			return usecase.BulkImportResult{}, fmt.Errorf("item 0: %w", usecase.ErrInvalidBeliefScore)
		},
	}
	app = setupTestApp(&fakeHabitUseCase{}, completions)
	resp, _ = doRequest(t, app, http.MethodPost, "/completions/bulk", `{"completions":[{"habit_id":1,"belief_score":0}]}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestBulkImport_UnknownHabitStoresNothing(t *testing.T) {
	completions := &fakeCompletionUseCase{
		BulkFn: func(ctx context.Context, in usecase.BulkImportInput) (usecase.BulkImportResult, error) {
			return usecase.BulkImportResult{}, fmt.Errorf("habit 99: %w", domain.ErrHabitNotFound)
		},
	}
	app := setupTestApp(&fakeHabitUseCase{}, completions)

	resp, body := doRequest(t, app, http.MethodPost, "/completions/bulk",
		`{"completions":[{"habit_id":1,"belief_score":5},{"habit_id":99,"belief_score":5}]}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(body), "habit_not_found")
	assert.Contains(t, string(body), "habit 99")
	assert.NotContains(t, string(body), "imported")
}
