package domain

import "time"

// CompletionEvent is one "habit marked done" record as read from storage.
type CompletionEvent struct {
	HabitID     int64
	CompletedAt time.Time
	BeliefScore int // 1..10 snapshot at completion time
}

type Granularity string

const (
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

const (
	MinBeliefScore = 1
	MaxBeliefScore = 10
)

// Valid reports whether the event can take part in an aggregation.
func (e CompletionEvent) Valid() bool {
	if e.CompletedAt.IsZero() {
		return false
	}
	return e.BeliefScore >= MinBeliefScore && e.BeliefScore <= MaxBeliefScore
}

type AggregatedPeriod struct {
	Key                string // sortable bucket key, e.g. "2024-W02" or "2024-01"
	Period             string // display label
	Completions        int
	AverageBeliefScore float64 // rounded to one decimal
}

type Trends struct {
	Granularity      Granularity
	CompletionSeries []AggregatedPeriod
	BeliefSeries     []AggregatedPeriod
	Excluded         int // invalid events skipped during aggregation
}

// ParseGranularity accepts "", "auto", "week" and "month". The empty
// granularity means automatic selection.
func ParseGranularity(s string) (Granularity, bool) {
	switch s {
	case "", "auto":
		return "", true
	case string(GranularityWeek):
		return GranularityWeek, true
	case string(GranularityMonth):
		return GranularityMonth, true
	default:
		return "", false
	}
}
