// Package analysis derives a coarse physiological read and a micro-habit plan
// from the lifestyle questionnaire. The heuristics are rules of thumb, not a
// diagnosis; the confidence score only reflects how many answers were present.
package analysis

import (
	"math"
	"slices"

	"habit-insights-service/internal/recommendations/core/domain"
)

const (
	defaultLevel     = 5
	maxConfidence    = 100
	healthySleepLow  = 7.0
	healthySleepHigh = 9.0
	shortSleep       = 6.0
)

// Analyze scores a profile. Missing answers fall back to neutral values.
func Analyze(p domain.Profile) domain.Analysis {
	a := domain.Analysis{
		MetabolicRate:    domain.LevelMedium,
		CortisolPattern:  domain.CortisolNormal,
		SleepQuality:     domain.SleepFair,
		RecoveryCapacity: domain.LevelMedium,
		StressResilience: domain.LevelMedium,
		RiskFactors:      []string{},
		Strengths:        []string{},
	}
	points := 0
	exercise := exerciseScore(p.ExerciseFrequency)

	if age, h, w := intVal(p.Age), floatVal(p.HeightCM), floatVal(p.WeightKG); age > 0 && h > 0 && w > 0 {
		bmi := w / math.Pow(h/100, 2)
		ageFactor := 1
		switch {
		case age > 40:
			ageFactor = -1
		case age > 30:
			ageFactor = 0
		}
		switch {
		case bmi > 25 && ageFactor <= 0 && exercise <= 0:
			a.MetabolicRate = domain.LevelLow
		case bmi < 20 && exercise >= 0:
			a.MetabolicRate = domain.LevelHigh
		}
		points += 15
	}

	stress := orDefault(intVal(p.StressLevel))
	sleepHours := floatVal(p.SleepHours)
	sleepOff := sleepHours > 0 && (sleepHours < healthySleepLow || sleepHours > healthySleepHigh)
	caffeine := caffeineScore(p.CaffeineIntake)
	switch {
	case stress >= 7 || sleepOff || caffeine >= 1:
		a.CortisolPattern = domain.CortisolElevated
	case stress <= 3 && !sleepOff && caffeine == 0:
		a.CortisolPattern = domain.CortisolLow
	}
	points += 20

	if sleepHours > 0 {
		switch {
		case sleepHours < shortSleep:
			a.SleepQuality = domain.SleepPoor
			a.RiskFactors = append(a.RiskFactors, "insufficient sleep")
		case sleepHours >= healthySleepLow && sleepHours <= healthySleepHigh:
			a.SleepQuality = domain.SleepGood
			a.Strengths = append(a.Strengths, "sufficient sleep duration")
		}
		points += 15
	}

	energy := 0
	switch e := orDefault(intVal(p.EnergyLevel)); {
	case e >= 7:
		energy = 1
	case e <= 4:
		energy = -1
	}
	switch {
	case exercise >= 0 && energy >= 0:
		a.RecoveryCapacity = domain.LevelHigh
		a.Strengths = append(a.Strengths, "consistent exercise habit")
	case exercise < 0 && energy < 0:
		a.RecoveryCapacity = domain.LevelLow
		a.RiskFactors = append(a.RiskFactors, "low activity with low energy")
	}
	points += 15

	rawStress := intVal(p.StressLevel)
	switch {
	case rawStress >= 8:
		a.StressResilience = domain.LevelLow
		a.RiskFactors = append(a.RiskFactors, "high stress level")
	case slices.Contains(p.MedicalConditions, domain.ConditionAnxiety):
		a.StressResilience = domain.LevelLow
		a.RiskFactors = append(a.RiskFactors, "anxiety disorder")
	case rawStress > 0 && rawStress <= 4:
		a.StressResilience = domain.LevelHigh
		a.Strengths = append(a.Strengths, "well-managed stress")
	}
	points += 15

	if s := p.SmokingStatus; s != "" && s != domain.SmokingNever && s != domain.SmokingQuit {
		a.RiskFactors = append(a.RiskFactors, "smoking")
	}
	if p.AlcoholIntake == domain.AlcoholWeekly3Up {
		a.RiskFactors = append(a.RiskFactors, "frequent alcohol intake")
	}
	if slices.Contains(p.Medications, domain.MedicationAntiAnxiety) {
		a.RiskFactors = append(a.RiskFactors, "taking anti-anxiety medication")
	}
	points += 10

	if len(p.ExerciseTypes) >= 3 {
		a.Strengths = append(a.Strengths, "varied exercise types")
	}
	if p.MealPattern == domain.MealRegular {
		a.Strengths = append(a.Strengths, "regular meals")
	}

	a.ConfidenceScore = min(points, maxConfidence)
	return a
}

// exerciseScore is 1 for four or more sessions a week, 0 for two to three,
// -1 otherwise (including unanswered).
func exerciseScore(freq string) int {
	switch freq {
	case domain.ExerciseWeekly4To5, domain.ExerciseWeekly6To7, domain.ExerciseDailyMultiple:
		return 1
	case domain.ExerciseWeekly2To3:
		return 0
	default:
		return -1
	}
}

func caffeineScore(intake string) float64 {
	switch intake {
	case domain.CaffeineDaily4Up:
		return 1
	case domain.CaffeineDaily2To3:
		return 0.5
	default:
		return 0
	}
}

func intVal(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func floatVal(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func orDefault(v int) int {
	if v == 0 {
		return defaultLevel
	}
	return v
}
