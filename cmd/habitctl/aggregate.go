package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	trendshttp "habit-insights-service/internal/trends/adapters/http/fiber"
	"habit-insights-service/internal/trends/core/aggregate"
	"habit-insights-service/internal/trends/core/domain"
	"habit-insights-service/internal/trends/locale"

	"github.com/spf13/cobra"
)

// exportRecord is one row of a completion export. completed_at is kept raw so
// one bad timestamp does not fail the whole file.
type exportRecord struct {
	HabitID     int64  `json:"habit_id"`
	CompletedAt string `json:"completed_at"`
	BeliefScore int    `json:"belief_score"`
}

type aggregateOutput struct {
	trendshttp.TrendsResponse
	Unparseable int `json:"unparseable"`
}

type aggregateOptions struct {
	file        string
	tz          string
	lang        string
	granularity string
}

func newAggregateCmd() *cobra.Command {
	var opts aggregateOptions

	cmd := &cobra.Command{
		Use:   "aggregate",
		Short: "Aggregate a completion export into completion and belief series",
		Long: `Reads a JSON array of {habit_id, completed_at, belief_score} records and prints
the weekly or monthly series as JSON. completed_at is RFC3339 or YYYY-MM-DD.
Use --file - to read from stdin.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAggregate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "export file (- for stdin)")
	cmd.Flags().StringVar(&opts.tz, "tz", "UTC", "IANA time zone for bucket boundaries")
	cmd.Flags().StringVar(&opts.lang, "lang", "en", "language for month labels")
	cmd.Flags().StringVar(&opts.granularity, "granularity", "auto", "auto, week or month")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runAggregate(cmd *cobra.Command, opts aggregateOptions) error {
	loc, err := time.LoadLocation(opts.tz)
	if err != nil {
		return fmt.Errorf("invalid --tz %q: %w", opts.tz, err)
	}
	g, ok := domain.ParseGranularity(opts.granularity)
	if !ok {
		return fmt.Errorf("invalid --granularity %q", opts.granularity)
	}

	var r io.Reader = cmd.InOrStdin()
	if opts.file != "-" {
		f, err := os.Open(opts.file)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	var records []exportRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return fmt.Errorf("decode export: %w", err)
	}

	events, unparseable := toEvents(records, loc)
	trends := aggregate.Aggregate(events,
		aggregate.WithLocation(loc),
		aggregate.WithLabeler(locale.ForAcceptLanguage(opts.lang)),
		aggregate.WithGranularity(g),
	)

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(aggregateOutput{
		TrendsResponse: trendshttp.NewTrendsResponse(&trends),
		Unparseable:    unparseable,
	})
}

// toEvents parses timestamps. Date-only values are midnight in loc.
func toEvents(records []exportRecord, loc *time.Location) ([]domain.CompletionEvent, int) {
	events := make([]domain.CompletionEvent, 0, len(records))
	skipped := 0
	for _, rec := range records {
		t, err := time.Parse(time.RFC3339, rec.CompletedAt)
		if err != nil {
			t, err = time.ParseInLocation("2006-01-02", rec.CompletedAt, loc)
		}
		if err != nil {
			skipped++
			continue
		}
		events = append(events, domain.CompletionEvent{
			HabitID:     rec.HabitID,
			CompletedAt: t,
			BeliefScore: rec.BeliefScore,
		})
	}
	return events, skipped
}
