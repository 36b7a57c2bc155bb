package analysis

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

type DamageLevel string

const (
	DamageLevelHealthy  DamageLevel = "healthy"
	DamageLevelMinimal  DamageLevel = "minimal"
	DamageLevelModerate DamageLevel = "moderate"
	DamageLevelSevere   DamageLevel = "severe"
)

// DamageAssessment is a pure function of the profile and the scoring config:
// same inputs, same level, always.
type DamageAssessment struct {
	Score               int               `json:"score"`
	Level               DamageLevel       `json:"level"`
	ContributingFactors []DamageIndicator `json:"contributing_factors"`
}

// ScoringConfig is the single source of truth for damage weights and
// threshold cutpoints. Historical quiz revisions shipped with divergent
// tables; every call site must take weights from here.
type ScoringConfig struct {
	Weights    map[DamageIndicator]int `yaml:"weights"`
	Thresholds Thresholds              `yaml:"thresholds"`
}

type Thresholds struct {
	Severe   int `yaml:"severe"`   // score above this is severe
	Moderate int `yaml:"moderate"` // score above this is moderate
	Minimal  int `yaml:"minimal"`  // score above this is minimal
}

func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		Weights: map[DamageIndicator]int{
			DamageBleaching:         3,
			DamageHeatDaily:         3,
			DamageHeatFrequent:      2,
			DamageColoring:          1,
			DamageChemicalRelaxing:  3,
			DamageBreakageExcessive: 4,
			DamageBreakageModerate:  2,
			DamageSunExposureHigh:   1,
			DamageChlorineFrequent:  2,
		},
		Thresholds: Thresholds{Severe: 8, Moderate: 4, Minimal: 0},
	}
}

// LoadScoringConfig reads an operator override from a YAML file. Absent path
// means compiled-in defaults. Overrides are validated the same way the
// defaults are, so an inconsistent table fails at startup, not at request
// time.
func LoadScoringConfig(path string) (ScoringConfig, error) {
	cfg := DefaultScoringConfig()
	if path == "" {
		return cfg, cfg.Validate()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read scoring config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse scoring config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c ScoringConfig) Validate() error {
	if len(c.Weights) == 0 {
		return fmt.Errorf("scoring config: no weights defined")
	}
	for ind, w := range c.Weights {
		if w < 0 {
			return fmt.Errorf("scoring config: negative weight %d for %q", w, ind)
		}
	}
	t := c.Thresholds
	if !(t.Severe > t.Moderate && t.Moderate > t.Minimal && t.Minimal >= 0) {
		return fmt.Errorf("scoring config: thresholds must satisfy severe > moderate > minimal >= 0, got %+v", t)
	}
	return nil
}

// Score sums the configured weight of each distinct indicator on the profile
// and maps the total onto a level via the threshold bands. Defined for every
// profile; a profile with no indicators scores zero and reads healthy.
func Score(p Profile, cfg ScoringConfig) DamageAssessment {
	total := 0
	contributing := []DamageIndicator{}
	seen := map[DamageIndicator]bool{}
	for _, ind := range p.DamageIndicators {
		if seen[ind] {
			continue
		}
		seen[ind] = true
		w := cfg.Weights[ind]
		if w > 0 {
			total += w
			contributing = append(contributing, ind)
		}
	}
	sort.Slice(contributing, func(i, j int) bool { return contributing[i] < contributing[j] })

	t := cfg.Thresholds
	level := DamageLevelHealthy
	switch {
	case total > t.Severe:
		level = DamageLevelSevere
	case total > t.Moderate:
		level = DamageLevelModerate
	case total > t.Minimal:
		level = DamageLevelMinimal
	}

	return DamageAssessment{Score: total, Level: level, ContributingFactors: contributing}
}
