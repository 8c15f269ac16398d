// Package aggregate turns raw completion events into the two chart series
// shown on the dashboard: completions per bucket and average belief score per
// bucket.
package aggregate

import (
	"math"
	"sort"
	"time"

	"habit-insights-service/internal/trends/core/bucket"
	"habit-insights-service/internal/trends/core/domain"
)

// Labeler turns a monthly bucket key into its display label.
type Labeler interface {
	MonthLabel(year int, month time.Month) string
}

type options struct {
	loc         *time.Location
	labeler     Labeler
	granularity domain.Granularity
}

type Option func(*options)

// WithLocation sets the time zone calendar buckets are computed in. Default UTC.
func WithLocation(loc *time.Location) Option {
	return func(o *options) {
		if loc != nil {
			o.loc = loc
		}
	}
}

// WithLabeler sets the month label formatter. Without one the month key is used.
func WithLabeler(l Labeler) Option {
	return func(o *options) {
		o.labeler = l
	}
}

// WithGranularity forces a granularity instead of choosing it from the
// number of events. An empty granularity keeps automatic selection.
func WithGranularity(g domain.Granularity) Option {
	return func(o *options) {
		o.granularity = g
	}
}

type group struct {
	key      bucket.Key
	count    int
	scoreSum int
}

// Aggregate buckets events and returns both series over the same sorted
// bucket list. Invalid events are skipped and counted in Trends.Excluded.
// The input slice is not modified.
func Aggregate(events []domain.CompletionEvent, opts ...Option) domain.Trends {
	o := options{loc: time.UTC}
	for _, opt := range opts {
		opt(&o)
	}

	accepted := make([]domain.CompletionEvent, 0, len(events))
	for _, e := range events {
		if !e.Valid() {
			continue
		}
		accepted = append(accepted, e)
	}

	g := o.granularity
	if g == "" {
		g = bucket.Choose(len(accepted))
	}

	groups := make(map[string]*group)
	for _, e := range accepted {
		k := bucket.KeyFor(e.CompletedAt.In(o.loc), g)
		grp, ok := groups[k.Value]
		if !ok {
			grp = &group{key: k}
			groups[k.Value] = grp
		}
		grp.count++
		grp.scoreSum += e.BeliefScore
	}

	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	periods := make([]domain.AggregatedPeriod, 0, len(keys))
	for _, k := range keys {
		grp := groups[k]
		periods = append(periods, domain.AggregatedPeriod{
			Key:                k,
			Period:             o.label(grp.key, g),
			Completions:        grp.count,
			AverageBeliefScore: RoundOneDecimal(float64(grp.scoreSum) / float64(grp.count)),
		})
	}

	// Same buckets, same order; separate backing arrays.
	completions := make([]domain.AggregatedPeriod, len(periods))
	copy(completions, periods)

	return domain.Trends{
		Granularity:      g,
		CompletionSeries: completions,
		BeliefSeries:     periods,
		Excluded:         len(events) - len(accepted),
	}
}

func (o options) label(k bucket.Key, g domain.Granularity) string {
	if g == domain.GranularityMonth && o.labeler != nil {
		return o.labeler.MonthLabel(k.Year, k.Month)
	}
	return k.Value
}

// RoundOneDecimal rounds half away from zero to one decimal place.
func RoundOneDecimal(x float64) float64 {
	return math.Round(x*10) / 10
}
