package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"habit-insights-service/internal/habits/core/domain"
	"habit-insights-service/internal/habits/core/ports"

	"go.uber.org/zap"
)

var (
	ErrInvalidCompletion  = errors.New("invalid completion")
	ErrInvalidBeliefScore = errors.New("belief score must be between 1 and 10")
	ErrFutureTime         = errors.New("timestamp cannot be in the future")
)

// allowed clock skew between client and server
const futureTolerance = time.Minute

const MaxBulkItems = 1000

// CompletionObserver counts recorded completions.
type CompletionObserver interface {
	CompletionRecorded()
}

type RecordCompletionUseCase struct {
	repo      ports.HabitRepositoryPort
	publisher ports.CompletionPublisherPort
	obs       CompletionObserver
	log       *zap.Logger
	now       func() time.Time
}

// NewRecordCompletionUseCase wires the use case. publisher and obs may be nil.
func NewRecordCompletionUseCase(
	repo ports.HabitRepositoryPort,
	publisher ports.CompletionPublisherPort,
	obs CompletionObserver,
	log *zap.Logger,
) *RecordCompletionUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &RecordCompletionUseCase{
		repo:      repo,
		publisher: publisher,
		obs:       obs,
		log:       log,
		now:       time.Now,
	}
}

type RecordCompletionInput struct {
	UserID      string
	HabitID     int64
	BeliefScore int
	CompletedAt time.Time // zero = now
}

func (uc *RecordCompletionUseCase) Execute(ctx context.Context, in RecordCompletionInput) (*domain.Completion, error) {
	if err := uc.validateInput(in); err != nil {
		return nil, err
	}

	c := uc.newCompletion(in)
	if err := uc.repo.RecordCompletion(ctx, c); err != nil {
		return nil, err
	}

	uc.recorded(ctx, c)
	return c, nil
}

type BulkImportInput struct {
	UserID string
	Items  []RecordCompletionInput
}

type BulkImportResult struct {
	Imported int
}

// BulkImport validates every item, then stores the batch in one transaction:
// either all completions are imported or none are. Items are written oldest
// first so the habit keeps the score of its latest completion. Identical
// timestamps are kept; repeated completions are legitimate in imported
// histories.
func (uc *RecordCompletionUseCase) BulkImport(ctx context.Context, in BulkImportInput) (BulkImportResult, error) {
	var res BulkImportResult

	if len(in.Items) == 0 || len(in.Items) > MaxBulkItems {
		return res, ErrInvalidCompletion
	}

	batch := make([]*domain.Completion, len(in.Items))
	for i, item := range in.Items {
		item.UserID = in.UserID
		if err := uc.validateInput(item); err != nil {
			return res, fmt.Errorf("item %d: %w", i, err)
		}
		batch[i] = uc.newCompletion(item)
	}

	slices.SortStableFunc(batch, func(a, b *domain.Completion) int {
		return a.CompletedAt.Compare(b.CompletedAt)
	})

	if err := uc.repo.RecordCompletions(ctx, batch); err != nil {
		return res, err
	}

	for _, c := range batch {
		uc.recorded(ctx, c)
	}
	res.Imported = len(batch)

	return res, nil
}

func (uc *RecordCompletionUseCase) newCompletion(in RecordCompletionInput) *domain.Completion {
	completedAt := in.CompletedAt
	if completedAt.IsZero() {
		completedAt = uc.now()
	}
	return &domain.Completion{
		UserID:      in.UserID,
		HabitID:     in.HabitID,
		BeliefScore: in.BeliefScore,
		CompletedAt: completedAt.UTC(),
	}
}

// recorded runs after commit: counts the completion and publishes it.
func (uc *RecordCompletionUseCase) recorded(ctx context.Context, c *domain.Completion) {
	if uc.obs != nil {
		uc.obs.CompletionRecorded()
	}

	if uc.publisher != nil {
		if err := uc.publisher.PublishCompletion(ctx, *c); err != nil {
			uc.log.Warn("publish completion failed",
				zap.Int64("habit_id", c.HabitID),
				zap.Int64("completion_id", c.ID),
				zap.Error(err),
			)
		}
	}
}

func (uc *RecordCompletionUseCase) validateInput(in RecordCompletionInput) error {
	if in.UserID == "" || in.HabitID <= 0 {
		return ErrInvalidCompletion
	}

	if in.BeliefScore < 1 || in.BeliefScore > 10 {
		return ErrInvalidBeliefScore
	}

	if in.CompletedAt.After(uc.now().Add(futureTolerance)) {
		return ErrFutureTime
	}

	return nil
}
