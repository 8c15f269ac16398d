package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"habit-insights-service/internal/trends/core/aggregate"
	"habit-insights-service/internal/trends/core/domain"
	"habit-insights-service/internal/trends/core/ports"
	"habit-insights-service/internal/trends/locale"

	"go.uber.org/zap"
)

var (
	ErrInvalidTrendsQuery = errors.New("invalid trends query")
	ErrInvalidTimeZone    = errors.New("invalid time zone")
	ErrInvalidGranularity = errors.New("invalid granularity")
)

const (
	DefaultLimit = 500
	MaxLimit     = 5000
)

// ExcludedObserver is notified about events dropped by the aggregator.
type ExcludedObserver interface {
	TrendsExcluded(n int)
}

type GetTrendsInput struct {
	UserID      string
	HabitID     *int64
	TimeZone    string // IANA name, "" = UTC
	Language    string // Accept-Language header or bare tag
	Granularity string // "", "auto", "week", "month"
	Limit       int
}

type GetTrendsUseCase struct {
	reader ports.CompletionReaderPort
	log    *zap.Logger
	obs    ExcludedObserver
}

func NewGetTrendsUseCase(reader ports.CompletionReaderPort, log *zap.Logger, obs ExcludedObserver) *GetTrendsUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &GetTrendsUseCase{reader: reader, log: log, obs: obs}
}

func (uc *GetTrendsUseCase) Execute(ctx context.Context, in GetTrendsInput) (*domain.Trends, error) {
	if in.UserID == "" {
		return nil, ErrInvalidTrendsQuery
	}
	if in.HabitID != nil && *in.HabitID <= 0 {
		return nil, ErrInvalidTrendsQuery
	}
	if in.Limit < 0 || in.Limit > MaxLimit {
		return nil, ErrInvalidTrendsQuery
	}
	if in.Limit == 0 {
		in.Limit = DefaultLimit
	}

	loc := time.UTC
	if in.TimeZone != "" {
		l, err := time.LoadLocation(in.TimeZone)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidTimeZone, in.TimeZone)
		}
		loc = l
	}

	g, ok := domain.ParseGranularity(in.Granularity)
	if !ok {
		return nil, ErrInvalidGranularity
	}

	events, err := uc.reader.ListCompletions(ctx, ports.CompletionFilter{
		UserID:  in.UserID,
		HabitID: in.HabitID,
		Limit:   in.Limit,
	})
	if err != nil {
		return nil, err
	}

	trends := aggregate.Aggregate(events,
		aggregate.WithLocation(loc),
		aggregate.WithLabeler(locale.ForAcceptLanguage(in.Language)),
		aggregate.WithGranularity(g),
	)

	if trends.Excluded > 0 {
		uc.log.Warn("skipped malformed completions",
			zap.String("user_id", in.UserID),
			zap.Int("excluded", trends.Excluded),
			zap.Int("total", len(events)),
		)
		if uc.obs != nil {
			uc.obs.TrendsExcluded(trends.Excluded)
		}
	}

	return &trends, nil
}
