package recommend

import (
	"github.com/kuzanag1/strandly-backend/internal/analysis"
)

// Routine is the cadence descriptor attached to every bundle.
type Routine struct {
	WashFrequency string   `json:"wash_frequency"`
	Daily         []string `json:"daily"`
	Weekly        []string `json:"weekly"`
	Monthly       []string `json:"monthly"`
}

const (
	washBaseline  = "2-3 times per week"
	washReduced   = "1-2 times per week"
	washIncreased = "3-4 times per week"
)

// buildRoutine derives cadence from damage level and scalp type. Severe
// damage wins over an oily scalp: repair takes priority over degreasing.
func buildRoutine(p analysis.Profile, d analysis.DamageAssessment) Routine {
	r := Routine{
		WashFrequency: washBaseline,
		Daily:         []string{"Gentle detangling with a wide-tooth comb"},
		Weekly:        []string{},
		Monthly:       []string{"Trim assessment to prevent split ends"},
	}

	switch {
	case d.Level == analysis.DamageLevelSevere:
		r.WashFrequency = washReduced
		r.Weekly = append(r.Weekly, "Protein or bond-repair treatment")
		r.Daily = append(r.Daily, "Skip heat styling while hair recovers")
	case p.HasScalpType(analysis.ScalpOily):
		r.WashFrequency = washIncreased
		r.Daily = append(r.Daily, "Light scalp massage to regulate oil")
	}

	if d.Level == analysis.DamageLevelModerate {
		r.Weekly = append(r.Weekly, "Deep conditioning mask")
	}
	if p.HasIndicator(analysis.DamageHeatDaily) || p.HasIndicator(analysis.DamageHeatFrequent) {
		r.Daily = append(r.Daily, "Heat protectant before any hot tool")
	}
	if hasLifestyleFactor(p, "hard_water") {
		r.Monthly = append(r.Monthly, "Chelating wash to clear mineral deposits")
	}
	if p.HasScalpType(analysis.ScalpFlaky) {
		r.Weekly = append(r.Weekly, "Anti-dandruff wash with zinc pyrithione")
	}

	return r
}

func hasLifestyleFactor(p analysis.Profile, factor string) bool {
	for _, f := range p.LifestyleFactors {
		if f == factor {
			return true
		}
	}
	return false
}
