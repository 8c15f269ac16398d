package domain

// Conditions holds the profile values a rule requires. An empty field
// matches any profile value.
type Conditions struct {
	PrimaryConcern  string `yaml:"primary_concern,omitempty" json:"primary_concern,omitempty"`
	ActivityLevel   string `yaml:"activity_level,omitempty" json:"activity_level,omitempty"`
	CircadianRhythm string `yaml:"circadian_rhythm,omitempty" json:"circadian_rhythm,omitempty"`
}

type Rule struct {
	Conditions          Conditions `yaml:"conditions" json:"conditions"`
	RecommendationShort string     `yaml:"recommendation_short" json:"recommendation_short"`
	RecommendationLong  string     `yaml:"recommendation_long" json:"recommendation_long"`
}
