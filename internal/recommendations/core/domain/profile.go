package domain

import "errors"

var ErrProfileNotFound = errors.New("profile not found")

// Onboarding answers.
const (
	ConcernAnxiety = "anxiety"
	ConcernSleep   = "sleep"
	ConcernEnergy  = "energy"

	ActivityLow    = "low"
	ActivityMedium = "medium"
	ActivityHigh   = "high"

	RhythmEarlyBird = "early_bird"
	RhythmNightOwl  = "night_owl"
)

// Lifestyle questionnaire answers used by the analysis heuristics.
const (
	ExerciseRarely        = "rarely"
	ExerciseWeekly1       = "weekly_1"
	ExerciseWeekly2To3    = "weekly_2_3"
	ExerciseWeekly4To5    = "weekly_4_5"
	ExerciseWeekly6To7    = "weekly_6_7"
	ExerciseDailyMultiple = "daily_multiple"

	CaffeineNone      = "none"
	CaffeineDaily1    = "daily_1"
	CaffeineDaily2To3 = "daily_2_3"
	CaffeineDaily4Up  = "daily_4_plus"

	AlcoholWeekly3Up = "weekly_3_plus"

	SmokingNever = "never"
	SmokingQuit  = "quit"

	MealRegular = "regular"

	ConditionAnxiety      = "anxiety"
	MedicationAntiAnxiety = "anti_anxiety"
)

// Profile is the onboarding and lifestyle data for one user. Numeric
// answers are optional.
type Profile struct {
	UserID          string
	PrimaryConcern  string
	ActivityLevel   string
	CircadianRhythm string

	Age         *int
	HeightCM    *float64
	WeightKG    *float64
	SleepHours  *float64
	StressLevel *int
	EnergyLevel *int

	ExerciseTypes     []string
	ExerciseFrequency string
	CaffeineIntake    string
	AlcoholIntake     string
	SmokingStatus     string
	MealPattern       string
	MedicalConditions []string
	Medications       []string
}

// OnboardingComplete reports whether the three matcher inputs are present.
func (p Profile) OnboardingComplete() bool {
	return p.PrimaryConcern != "" && p.ActivityLevel != "" && p.CircadianRhythm != ""
}
