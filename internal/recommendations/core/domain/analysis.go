package domain

type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

type CortisolPattern string

const (
	CortisolElevated CortisolPattern = "elevated"
	CortisolNormal   CortisolPattern = "normal"
	CortisolLow      CortisolPattern = "low"
)

type SleepQuality string

const (
	SleepPoor SleepQuality = "poor"
	SleepFair SleepQuality = "fair"
	SleepGood SleepQuality = "good"
)

// Analysis is the heuristic physiological read of a profile. Stored as jsonb
// in profiles.ai_analysis_result.
type Analysis struct {
	MetabolicRate    Level           `json:"metabolic_rate_estimate"`
	CortisolPattern  CortisolPattern `json:"cortisol_pattern"`
	SleepQuality     SleepQuality    `json:"sleep_quality"`
	RecoveryCapacity Level           `json:"recovery_capacity"`
	StressResilience Level           `json:"stress_resilience"`
	RiskFactors      []string        `json:"risk_factors"`
	Strengths        []string        `json:"strengths"`
	ConfidenceScore  int             `json:"confidence_score"`
}

type MicroHabit struct {
	Name      string `json:"name"`
	Cue       string `json:"cue"`
	Response  string `json:"response"`
	Timing    string `json:"timing"`
	Rationale string `json:"rationale"`
}

// Plan is stored as jsonb in profiles.ai_recommendation_plan.
type Plan struct {
	CorePrinciples     []string     `json:"core_principles"`
	MicroHabits        []MicroHabit `json:"micro_habits"`
	AvoidanceBehaviors []string     `json:"avoidance_behaviors"`
	MonitoringApproach string       `json:"monitoring_approach"`
	ExpectedTimeline   string       `json:"expected_timeline"`
}
