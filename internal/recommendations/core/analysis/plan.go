package analysis

import "habit-insights-service/internal/recommendations/core/domain"

var corePrinciples = []string{
	"Track body signals, not streaks",
	"Accept the natural decline of metabolism and focus on the responses you control",
	"Ease anxiety (the leading indicator) to improve physical function (the lagging indicator)",
	"Build minimum-effective-dose micro habits instead of high-intensity plans",
}

const (
	monitoringApproach = `Do not count streak days. After each action ask "did this help me?" and rate it 1-10. ` +
		"Watch belief strength, not completion rate."
	expectedTimeline = "Micro habits settle in 2-4 weeks; physiological change shows after 3-6 months. " +
		"Aim for long-term sustainability over quick wins."
)

// Plan turns an analysis into micro habits and behaviours to avoid.
func Plan(_ domain.Profile, a domain.Analysis) domain.Plan {
	p := domain.Plan{
		CorePrinciples:     append([]string(nil), corePrinciples...),
		MicroHabits:        []domain.MicroHabit{},
		AvoidanceBehaviors: []string{},
		MonitoringApproach: monitoringApproach,
		ExpectedTimeline:   expectedTimeline,
	}

	if a.CortisolPattern == domain.CortisolElevated {
		p.MicroHabits = append(p.MicroHabits, domain.MicroHabit{
			Name:      "Stress hormone clearance",
			Cue:       "When you notice anxiety or rising stress",
			Response:  "Walk or breathe deeply for 5 minutes",
			Timing:    "Any time",
			Rationale: "Clears elevated cortisol before stress accumulates",
		})
		p.AvoidanceBehaviors = append(p.AvoidanceBehaviors,
			"High-intensity exercise while stress is high",
			"Caffeine after 15:00",
		)
	}

	if a.SleepQuality == domain.SleepPoor {
		p.MicroHabits = append(p.MicroHabits, domain.MicroHabit{
			Name:      "Sleep signal tuning",
			Cue:       "After 21:00",
			Response:  "Dim the lights and put screens away",
			Timing:    "1-2 hours before bed",
			Rationale: "Supports melatonin release and deeper sleep",
		})
		p.AvoidanceBehaviors = append(p.AvoidanceBehaviors,
			"Eating within 2 hours of bedtime",
			"Using devices in bed",
		)
	}

	if a.RecoveryCapacity == domain.LevelLow {
		p.MicroHabits = append(p.MicroHabits, domain.MicroHabit{
			Name:      "Minimum effective movement",
			Cue:       "When energy feels low",
			Response:  "10 minutes of light movement such as stretching or a slow walk",
			Timing:    "Adjust to your energy level",
			Rationale: "Keeps the habit going without adding load",
		})
	}

	return p
}
