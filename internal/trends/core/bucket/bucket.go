// Package bucket holds the calendar math used to group completions into
// chart buckets. Keys are zero padded and year-major so lexical order is
// chronological order.
package bucket

import (
	"fmt"
	"time"

	"habit-insights-service/internal/trends/core/domain"
)

// WeeklyThreshold is the number of events from which monthly buckets are used.
const WeeklyThreshold = 8

type Key struct {
	Value string
	Year  int // ISO week-year for weekly keys, calendar year for monthly keys
	Week  int // 1..53, zero for monthly keys
	Month time.Month
}

// KeyFor returns the bucket key of t. t is used in its own location; callers
// convert to the display time zone first.
func KeyFor(t time.Time, g domain.Granularity) Key {
	switch g {
	case domain.GranularityWeek:
		year, week := t.ISOWeek()
		return Key{
			Value: fmt.Sprintf("%04d-W%02d", year, week),
			Year:  year,
			Week:  week,
		}
	default:
		return Key{
			Value: fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month())),
			Year:  t.Year(),
			Month: t.Month(),
		}
	}
}

// Choose picks the granularity for n accepted events.
func Choose(n int) domain.Granularity {
	if n < WeeklyThreshold {
		return domain.GranularityWeek
	}
	return domain.GranularityMonth
}
