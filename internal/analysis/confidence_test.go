package analysis

import (
	"strings"
	"testing"
)

func TestAssessSparseSubmission(t *testing.T) {
	t.Parallel()

	// Two of four core fields, no damage answer, no lifestyle context.
	p := Normalize(map[string]any{
		"hair_texture": "wavy",
		"porosity":     "low",
	})
	d := Score(p, DefaultScoringConfig())
	got := Assess(p, d)

	// (50 + 50 + 0) / 3 rounds to 33.
	if got.OverallScore != 33 {
		t.Fatalf("unexpected overall score: got=%d want=33", got.OverallScore)
	}
	if got.Interpretation != interpretationLimited {
		t.Fatalf("unexpected interpretation: %q", got.Interpretation)
	}
}

func TestAssessCompleteSubmission(t *testing.T) {
	t.Parallel()

	p := Normalize(map[string]any{
		"hair_texture":        "curly",
		"hair_thickness":      "coarse",
		"porosity":            "high",
		"chemical_treatments": []any{"coloring"},
		"lifestyle_factors":   []any{"hard_water", "swimming", "outdoor_sports"},
	})
	d := Score(p, DefaultScoringConfig())
	got := Assess(p, d)

	if got.OverallScore != 100 {
		t.Fatalf("unexpected overall score: got=%d want=100", got.OverallScore)
	}
	if got.Interpretation != interpretationHigh {
		t.Fatalf("unexpected interpretation: %q", got.Interpretation)
	}
	if len(got.ConsultationTriggers) != 0 {
		t.Fatalf("unexpected triggers: %v", got.ConsultationTriggers)
	}
}

func TestAssessHealthyProfileWithExplicitNoDamage(t *testing.T) {
	t.Parallel()

	p := Normalize(map[string]any{
		"hair_texture":        "curly",
		"porosity":            "high",
		"chemical_treatments": []any{"none"},
	})
	d := Score(p, DefaultScoringConfig())
	got := Assess(p, d)

	if d.Level != DamageLevelHealthy {
		t.Fatalf("unexpected damage level: %q", d.Level)
	}
	// 3/4 core fields, no indicators, no lifestyle: lands below the good band.
	if got.OverallScore >= 70 {
		t.Fatalf("score %d should sit below the good band", got.OverallScore)
	}
	if len(got.ConsultationTriggers) != 0 {
		t.Fatalf("unexpected triggers: %v", got.ConsultationTriggers)
	}
}

func TestAssessMonotonicInCompleteness(t *testing.T) {
	t.Parallel()

	sparse := Normalize(map[string]any{"hair_texture": "wavy"})
	fuller := Normalize(map[string]any{
		"hair_texture":   "wavy",
		"hair_thickness": "fine",
		"porosity":       "normal",
	})
	d := DamageAssessment{}

	a := Assess(sparse, d)
	b := Assess(fuller, d)
	if b.OverallScore < a.OverallScore {
		t.Fatalf("more answers lowered confidence: %d -> %d", a.OverallScore, b.OverallScore)
	}
}

func TestAssessInterpretationBands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score int
		want  string
	}{
		{95, interpretationHigh},
		{90, interpretationHigh},
		{89, interpretationGood},
		{70, interpretationGood},
		{69, interpretationModerate},
		{50, interpretationModerate},
		{49, interpretationLimited},
		{0, interpretationLimited},
	}

	for _, tt := range tests {
		if got := interpretConfidence(tt.score); got != tt.want {
			t.Fatalf("score %d: got=%q want=%q", tt.score, got, tt.want)
		}
	}
}

func TestConsultationTriggers(t *testing.T) {
	t.Parallel()

	t.Run("severe_damage", func(t *testing.T) {
		t.Parallel()
		got := Assess(Profile{}, DamageAssessment{Level: DamageLevelSevere})
		if !hasTrigger(got, "Severe hair damage detected") {
			t.Fatalf("missing severe damage trigger: %v", got.ConsultationTriggers)
		}
	})

	t.Run("scalp_issues", func(t *testing.T) {
		t.Parallel()
		p := Profile{ScalpTypes: []ScalpType{ScalpOily, ScalpDry, ScalpSensitive, ScalpFlaky}}
		got := Assess(p, DamageAssessment{})
		if !hasTrigger(got, "Persistent scalp issues reported") {
			t.Fatalf("missing scalp trigger: %v", got.ConsultationTriggers)
		}
	})

	t.Run("chemical_history", func(t *testing.T) {
		t.Parallel()
		p := Profile{DamageIndicators: []DamageIndicator{DamageBleaching, DamageColoring, DamageChemicalRelaxing}}
		got := Assess(p, DamageAssessment{})
		if !hasTrigger(got, "Complex chemical processing history") {
			t.Fatalf("missing chemical history trigger: %v", got.ConsultationTriggers)
		}
	})

	t.Run("conflicting_answers", func(t *testing.T) {
		t.Parallel()
		got := Assess(Profile{ConflictingAnswers: true}, DamageAssessment{})
		if !hasTrigger(got, "Conflicting self-assessment results") {
			t.Fatalf("missing conflict trigger: %v", got.ConsultationTriggers)
		}
	})

	t.Run("all_fire_together", func(t *testing.T) {
		t.Parallel()
		p := Profile{
			ScalpTypes:         []ScalpType{ScalpOily, ScalpDry, ScalpSensitive, ScalpFlaky},
			DamageIndicators:   []DamageIndicator{DamageBleaching, DamageColoring, DamageChemicalRelaxing},
			ConflictingAnswers: true,
		}
		got := Assess(p, DamageAssessment{Level: DamageLevelSevere})
		if len(got.ConsultationTriggers) != 4 {
			t.Fatalf("expected all 4 triggers, got %d", len(got.ConsultationTriggers))
		}
	})
}

func hasTrigger(r ConfidenceReport, reason string) bool {
	for _, tr := range r.ConsultationTriggers {
		if strings.EqualFold(tr.Reason, reason) {
			return true
		}
	}
	return false
}
