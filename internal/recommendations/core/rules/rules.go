// Package rules matches a profile against the recommendation rule table.
package rules

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"sync"

	"habit-insights-service/internal/recommendations/core/domain"

	"gopkg.in/yaml.v3"
)

// MaxRules bounds the table size; matching is a linear scan.
const MaxRules = 20

var ErrTooManyRules = errors.New("too many rules")

//go:embed rules.yaml
var defaultRulesYAML []byte

type table struct {
	Rules []domain.Rule `yaml:"rules"`
}

var (
	defaultOnce  sync.Once
	defaultRules []domain.Rule
	defaultErr   error
)

// Default returns the built-in rule table. It panics if the embedded table
// is invalid, which is caught by tests.
func Default() []domain.Rule {
	defaultOnce.Do(func() {
		defaultRules, defaultErr = parse(defaultRulesYAML)
	})
	if defaultErr != nil {
		panic(fmt.Sprintf("rules: embedded table: %v", defaultErr))
	}
	return defaultRules
}

// Load reads a rule table in the same YAML layout as the embedded one.
func Load(r io.Reader) ([]domain.Rule, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read rules: %w", err)
	}
	return parse(raw)
}

func parse(raw []byte) ([]domain.Rule, error) {
	var t table
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("parse rules: %w", err)
	}
	if len(t.Rules) > MaxRules {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyRules, len(t.Rules), MaxRules)
	}
	for i, rule := range t.Rules {
		if rule.RecommendationShort == "" {
			return nil, fmt.Errorf("parse rules: rule %d has no recommendation_short", i)
		}
	}
	return t.Rules, nil
}

// Match returns the first rule whose non-empty conditions all equal the
// corresponding profile field.
func Match(p domain.Profile, rules []domain.Rule) (*domain.Rule, bool) {
	for i := range rules {
		if matches(p, rules[i].Conditions) {
			r := rules[i]
			return &r, true
		}
	}
	return nil, false
}

func matches(p domain.Profile, c domain.Conditions) bool {
	return field(c.PrimaryConcern, p.PrimaryConcern) &&
		field(c.ActivityLevel, p.ActivityLevel) &&
		field(c.CircadianRhythm, p.CircadianRhythm)
}

func field(want, got string) bool {
	return want == "" || want == got
}
