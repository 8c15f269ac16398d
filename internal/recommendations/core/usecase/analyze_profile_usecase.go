package usecase

import (
	"context"
	"fmt"

	"habit-insights-service/internal/recommendations/core/analysis"
	"habit-insights-service/internal/recommendations/core/domain"
	"habit-insights-service/internal/recommendations/core/ports"

	"go.uber.org/zap"
)

type AnalysisResult struct {
	Analysis domain.Analysis
	Plan     domain.Plan
}

type AnalyzeProfileUseCase struct {
	profiles ports.ProfileRepositoryPort
	log      *zap.Logger
}

func NewAnalyzeProfileUseCase(profiles ports.ProfileRepositoryPort, log *zap.Logger) *AnalyzeProfileUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &AnalyzeProfileUseCase{profiles: profiles, log: log}
}

// Execute analyzes the stored profile and persists analysis and plan on it.
func (uc *AnalyzeProfileUseCase) Execute(ctx context.Context, userID string) (*AnalysisResult, error) {
	if userID == "" {
		return nil, ErrInvalidUser
	}

	profile, err := uc.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	a := analysis.Analyze(*profile)
	plan := analysis.Plan(*profile, a)

	if err := uc.profiles.SaveAnalysis(ctx, userID, a, plan); err != nil {
		return nil, fmt.Errorf("save analysis: %w", err)
	}

	uc.log.Info("profile analyzed",
		zap.String("user_id", userID),
		zap.Int("confidence", a.ConfidenceScore),
		zap.Int("risk_factors", len(a.RiskFactors)),
		zap.Int("micro_habits", len(plan.MicroHabits)),
	)

	return &AnalysisResult{Analysis: a, Plan: plan}, nil
}
