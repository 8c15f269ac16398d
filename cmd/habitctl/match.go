package main

import (
	"errors"
	"fmt"
	"os"

	"habit-insights-service/internal/recommendations/core/domain"
	"habit-insights-service/internal/recommendations/core/rules"

	"github.com/spf13/cobra"
)

var errNoMatch = errors.New("no matching rule")

func newMatchCmd() *cobra.Command {
	var (
		profile   domain.Profile
		rulesFile string
	)

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Print the recommendation a profile would get",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := rules.Default()
			if rulesFile != "" {
				f, err := os.Open(rulesFile)
				if err != nil {
					return err
				}
				defer f.Close()
				if table, err = rules.Load(f); err != nil {
					return err
				}
			}

			rule, ok := rules.Match(profile, table)
			if !ok {
				return errNoMatch
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n%s\n", rule.RecommendationShort, rule.RecommendationLong)
			return err
		},
	}

	cmd.Flags().StringVar(&profile.PrimaryConcern, "primary-concern", "", "anxiety, sleep or energy")
	cmd.Flags().StringVar(&profile.ActivityLevel, "activity-level", "", "low, medium or high")
	cmd.Flags().StringVar(&profile.CircadianRhythm, "circadian-rhythm", "", "early_bird or night_owl")
	cmd.Flags().StringVar(&rulesFile, "rules", "", "YAML rule table instead of the built-in one")
	_ = cmd.MarkFlagRequired("primary-concern")

	return cmd
}
