package recommend

import (
	"testing"

	"github.com/kuzanag1/strandly-backend/internal/analysis"
)

func TestBuildRoutineBaseline(t *testing.T) {
	t.Parallel()

	r := buildRoutine(analysis.Profile{}, analysis.DamageAssessment{Level: analysis.DamageLevelHealthy})

	if r.WashFrequency != washBaseline {
		t.Fatalf("unexpected wash frequency: %q", r.WashFrequency)
	}
	if len(r.Daily) == 0 || len(r.Monthly) == 0 {
		t.Fatal("baseline routine must carry daily and monthly steps")
	}
	if r.Weekly == nil {
		t.Fatal("weekly list must be non-nil even when empty")
	}
}

func TestBuildRoutineSevereWinsOverOilyScalp(t *testing.T) {
	t.Parallel()

	p := analysis.Profile{ScalpTypes: []analysis.ScalpType{analysis.ScalpOily}}
	r := buildRoutine(p, analysis.DamageAssessment{Level: analysis.DamageLevelSevere})

	if r.WashFrequency != washReduced {
		t.Fatalf("severe damage must reduce washing: got %q", r.WashFrequency)
	}
	if !containsStep(r.Weekly, "Protein or bond-repair treatment") {
		t.Fatalf("missing repair step: %v", r.Weekly)
	}
}

func TestBuildRoutineOilyScalpIncreasesWashing(t *testing.T) {
	t.Parallel()

	p := analysis.Profile{ScalpTypes: []analysis.ScalpType{analysis.ScalpOily}}
	r := buildRoutine(p, analysis.DamageAssessment{Level: analysis.DamageLevelHealthy})

	if r.WashFrequency != washIncreased {
		t.Fatalf("oily scalp should increase washing: got %q", r.WashFrequency)
	}
}

func TestBuildRoutineConditionalSteps(t *testing.T) {
	t.Parallel()

	t.Run("heat_users_get_protectant", func(t *testing.T) {
		t.Parallel()
		p := analysis.Profile{DamageIndicators: []analysis.DamageIndicator{analysis.DamageHeatFrequent}}
		r := buildRoutine(p, analysis.DamageAssessment{Level: analysis.DamageLevelMinimal})
		if !containsStep(r.Daily, "Heat protectant before any hot tool") {
			t.Fatalf("missing heat protectant step: %v", r.Daily)
		}
	})

	t.Run("hard_water_gets_chelating", func(t *testing.T) {
		t.Parallel()
		p := analysis.Profile{LifestyleFactors: []string{"hard_water"}}
		r := buildRoutine(p, analysis.DamageAssessment{Level: analysis.DamageLevelHealthy})
		if !containsStep(r.Monthly, "Chelating wash to clear mineral deposits") {
			t.Fatalf("missing chelating step: %v", r.Monthly)
		}
	})

	t.Run("flaky_scalp_gets_zinc_wash", func(t *testing.T) {
		t.Parallel()
		p := analysis.Profile{ScalpTypes: []analysis.ScalpType{analysis.ScalpFlaky}}
		r := buildRoutine(p, analysis.DamageAssessment{Level: analysis.DamageLevelHealthy})
		if !containsStep(r.Weekly, "Anti-dandruff wash with zinc pyrithione") {
			t.Fatalf("missing anti-dandruff step: %v", r.Weekly)
		}
	})

	t.Run("moderate_damage_gets_deep_conditioning", func(t *testing.T) {
		t.Parallel()
		r := buildRoutine(analysis.Profile{}, analysis.DamageAssessment{Level: analysis.DamageLevelModerate})
		if !containsStep(r.Weekly, "Deep conditioning mask") {
			t.Fatalf("missing deep conditioning step: %v", r.Weekly)
		}
	})
}

func containsStep(steps []string, want string) bool {
	for _, s := range steps {
		if s == want {
			return true
		}
	}
	return false
}
