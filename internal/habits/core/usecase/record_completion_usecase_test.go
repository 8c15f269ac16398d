package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"habit-insights-service/internal/habits/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePublisher struct {
	PublishFn func(ctx context.Context, c domain.Completion) error
	published []domain.Completion
}

func (f *fakePublisher) PublishCompletion(ctx context.Context, c domain.Completion) error {
	f.published = append(f.published, c)
	if f.PublishFn != nil {
		return f.PublishFn(ctx, c)
	}
	return nil
}

type countingObserver struct {
	n int
}

func (o *countingObserver) CompletionRecorded() { o.n++ }

var fixedNow = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestUseCase(repo *fakeHabitRepo, pub *fakePublisher, obs *countingObserver) *RecordCompletionUseCase {
	uc := NewRecordCompletionUseCase(repo, nil, nil, zap.NewNop())
	// typed nil pointers must not end up in the interfaces
	if pub != nil {
		uc.publisher = pub
	}
	if obs != nil {
		uc.obs = obs
	}
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func TestRecordCompletion_Success(t *testing.T) {
	repo := &fakeHabitRepo{}
	pub := &fakePublisher{}
	obs := &countingObserver{}
	uc := newTestUseCase(repo, pub, obs)

	shanghai := time.FixedZone("UTC+8", 8*3600)
	at := time.Date(2024, 3, 9, 20, 0, 0, 0, shanghai)

	c, err := uc.Execute(context.Background(), RecordCompletionInput{
		UserID: "user-1", HabitID: 3, BeliefScore: 7, CompletedAt: at,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), c.ID)
	assert.Equal(t, time.UTC, c.CompletedAt.Location())
	assert.True(t, at.Equal(c.CompletedAt))
	require.Len(t, repo.recorded, 1)
	assert.Equal(t, "user-1", repo.recorded[0].UserID)
	require.Len(t, pub.published, 1)
	assert.Equal(t, int64(1), pub.published[0].ID)
	assert.Equal(t, 1, obs.n)
}

func TestRecordCompletion_DefaultsToNow(t *testing.T) {
	repo := &fakeHabitRepo{}
	uc := newTestUseCase(repo, nil, nil)

	c, err := uc.Execute(context.Background(), RecordCompletionInput{UserID: "u", HabitID: 1, BeliefScore: 5})
	require.NoError(t, err)
	assert.Equal(t, fixedNow, c.CompletedAt)
}

func TestRecordCompletion_Validation(t *testing.T) {
	tests := []struct {
		name    string
		in      RecordCompletionInput
		wantErr error
	}{
		{"missing user", RecordCompletionInput{HabitID: 1, BeliefScore: 5}, ErrInvalidCompletion},
		{"missing habit", RecordCompletionInput{UserID: "u", BeliefScore: 5}, ErrInvalidCompletion},
		{"score too low", RecordCompletionInput{UserID: "u", HabitID: 1, BeliefScore: 0}, ErrInvalidBeliefScore},
		{"score too high", RecordCompletionInput{UserID: "u", HabitID: 1, BeliefScore: 11}, ErrInvalidBeliefScore},
		{"future", RecordCompletionInput{UserID: "u", HabitID: 1, BeliefScore: 5, CompletedAt: fixedNow.Add(time.Hour)}, ErrFutureTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeHabitRepo{}
			_, err := newTestUseCase(repo, nil, nil).Execute(context.Background(), tt.in)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, repo.recorded)
		})
	}
}

func TestRecordCompletion_SmallClockSkewAccepted(t *testing.T) {
	repo := &fakeHabitRepo{}
	_, err := newTestUseCase(repo, nil, nil).Execute(context.Background(), RecordCompletionInput{
		UserID: "u", HabitID: 1, BeliefScore: 5, CompletedAt: fixedNow.Add(30 * time.Second),
	})
	assert.NoError(t, err)
}

func TestRecordCompletion_HabitNotFound(t *testing.T) {
	repo := &fakeHabitRepo{
		RecordFn: func(ctx context.Context, c *domain.Completion) error { return domain.ErrHabitNotFound },
	}
	pub := &fakePublisher{}
	obs := &countingObserver{}

	_, err := newTestUseCase(repo, pub, obs).Execute(context.Background(), RecordCompletionInput{UserID: "u", HabitID: 99, BeliefScore: 5})
	assert.ErrorIs(t, err, domain.ErrHabitNotFound)
	assert.Empty(t, pub.published)
	assert.Zero(t, obs.n)
}

func TestRecordCompletion_PublishFailureIsNotFatal(t *testing.T) {
	repo := &fakeHabitRepo{}
	pub := &fakePublisher{
		PublishFn: func(ctx context.Context, c domain.Completion) error { return errors.New("broker down") },
	}

	c, err := newTestUseCase(repo, pub, &countingObserver{}).Execute(context.Background(), RecordCompletionInput{UserID: "u", HabitID: 1, BeliefScore: 5})
	require.NoError(t, err)
	assert.NotNil(t, c)
	assert.Len(t, repo.recorded, 1)
}

func TestBulkImport_Success(t *testing.T) {
	repo := &fakeHabitRepo{}
	uc := newTestUseCase(repo, nil, nil)

	same := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	items := []RecordCompletionInput{
		{HabitID: 1, BeliefScore: 5, CompletedAt: same},
		{HabitID: 1, BeliefScore: 6, CompletedAt: same},
		{HabitID: 2, BeliefScore: 9, CompletedAt: same.Add(24 * time.Hour)},
	}

	res, err := uc.BulkImport(context.Background(), BulkImportInput{UserID: "user-1", Items: items})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Imported)
	require.Len(t, repo.recorded, 3)
	for _, c := range repo.recorded {
		assert.Equal(t, "user-1", c.UserID)
	}
	assert.Empty(t, items[0].UserID, "caller's items are not modified")
}

func TestBulkImport_ValidatesAllBeforeWriting(t *testing.T) {
	repo := &fakeHabitRepo{}
	uc := newTestUseCase(repo, nil, nil)

	res, err := uc.BulkImport(context.Background(), BulkImportInput{UserID: "u", Items: []RecordCompletionInput{
		{HabitID: 1, BeliefScore: 5},
		{HabitID: 1, BeliefScore: 12},
	}})
	assert.ErrorIs(t, err, ErrInvalidBeliefScore)
	assert.ErrorContains(t, err, "item 1")
	assert.Zero(t, res.Imported)
	assert.Empty(t, repo.recorded)
}

func TestBulkImport_Limits(t *testing.T) {
	uc := newTestUseCase(&fakeHabitRepo{}, nil, nil)

	_, err := uc.BulkImport(context.Background(), BulkImportInput{UserID: "u"})
	assert.ErrorIs(t, err, ErrInvalidCompletion)

	_, err = uc.BulkImport(context.Background(), BulkImportInput{UserID: "u", Items: make([]RecordCompletionInput, MaxBulkItems+1)})
	assert.ErrorIs(t, err, ErrInvalidCompletion)
}

func TestBulkImport_NothingStoredWhenAnyItemFails(t *testing.T) {
	repo := &fakeHabitRepo{
		RecordsFn: func(ctx context.Context, cs []*domain.Completion) error {
			for _, c := range cs {
				if c.HabitID == 99 {
					return fmt.Errorf("habit %d: %w", c.HabitID, domain.ErrHabitNotFound)
				}
			}
			return nil
		},
	}
	pub := &fakePublisher{}
	obs := &countingObserver{}
	uc := newTestUseCase(repo, pub, obs)

	in := BulkImportInput{UserID: "u", Items: []RecordCompletionInput{
		{HabitID: 1, BeliefScore: 5},
		{HabitID: 99, BeliefScore: 5},
	}}

	// a retry of the same failing batch must not leave anything behind either
	for i := 0; i < 2; i++ {
		res, err := uc.BulkImport(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrHabitNotFound)
		assert.Zero(t, res.Imported)
	}

	assert.Empty(t, repo.recorded)
	assert.Empty(t, pub.published)
	assert.Zero(t, obs.n)
}

func TestBulkImport_OneBatchOldestFirst(t *testing.T) {
	var batches [][]*domain.Completion
	repo := &fakeHabitRepo{
		RecordsFn: func(ctx context.Context, cs []*domain.Completion) error {
			batches = append(batches, cs)
			return nil
		},
		RecordFn: func(ctx context.Context, c *domain.Completion) error {
			t.Fatal("bulk import must not store items one by one")
			return nil
		},
	}
	pub := &fakePublisher{}
	obs := &countingObserver{}

	day := func(d int) time.Time { return time.Date(2024, 3, d, 8, 0, 0, 0, time.UTC) }
	res, err := newTestUseCase(repo, pub, obs).BulkImport(context.Background(), BulkImportInput{UserID: "u", Items: []RecordCompletionInput{
		{HabitID: 1, BeliefScore: 9, CompletedAt: day(5)},
		{HabitID: 1, BeliefScore: 3, CompletedAt: day(1)},
		{HabitID: 1, BeliefScore: 6, CompletedAt: day(3)},
	}})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Imported)

	require.Len(t, batches, 1)
	require.Len(t, repo.recorded, 3)
	assert.Equal(t, []int{3, 6, 9}, []int{repo.recorded[0].BeliefScore, repo.recorded[1].BeliefScore, repo.recorded[2].BeliefScore})
	assert.Equal(t, day(5), repo.recorded[2].CompletedAt)

	// counted and published only after the batch was stored
	assert.Equal(t, 3, obs.n)
	require.Len(t, pub.published, 3)
	assert.NotZero(t, pub.published[0].ID)
}
