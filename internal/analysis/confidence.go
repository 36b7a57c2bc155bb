package analysis

import "math"

type ConfidenceFactor struct {
	Factor string `json:"factor"`
	Score  int    `json:"score"`
	Impact string `json:"impact"`
}

type ConsultationTrigger struct {
	Reason       string `json:"reason"`
	Professional string `json:"professional"`
	Urgency      string `json:"urgency"`
}

// ConfidenceReport states how far the recommendations can be trusted given
// what the user actually told us. It never blocks a recommendation; low
// confidence surfaces as interpretation text and consultation triggers.
type ConfidenceReport struct {
	OverallScore         int                   `json:"overall_score"`
	Factors              []ConfidenceFactor    `json:"factors"`
	Interpretation       string                `json:"interpretation"`
	ConsultationTriggers []ConsultationTrigger `json:"consultation_triggers"`
}

const (
	interpretationHigh     = "High confidence - Comprehensive assessment allows for targeted recommendations"
	interpretationGood     = "Good confidence - Sufficient information for reliable general recommendations"
	interpretationModerate = "Moderate confidence - Basic recommendations possible, additional assessment beneficial"
	interpretationLimited  = "Limited confidence - Conservative recommendations, professional consultation advised"
)

// Assess scores input reliability as the unweighted mean of three factors:
// core-field completeness, damage-assessment availability, and lifestyle
// context richness. Consultation triggers fire independently of the score
// and are all reported, not just the first match.
func Assess(p Profile, d DamageAssessment) ConfidenceReport {
	factors := make([]ConfidenceFactor, 0, 3)

	supplied := 0
	for _, f := range CoreFields {
		if p.SuppliedFields[f] {
			supplied++
		}
	}
	completeness := int(math.Round(float64(supplied) / float64(len(CoreFields)) * 100))
	factors = append(factors, ConfidenceFactor{
		Factor: "Core Assessment Completeness",
		Score:  completeness,
		Impact: "High - affects all recommendations",
	})

	if len(p.DamageIndicators) > 0 {
		factors = append(factors, ConfidenceFactor{
			Factor: "Damage Assessment Available",
			Score:  100,
			Impact: "Critical for treatment recommendations",
		})
	} else {
		factors = append(factors, ConfidenceFactor{
			Factor: "Damage Assessment Missing",
			Score:  50,
			Impact: "Conservative recommendations will be provided",
		})
	}

	lifestyle := math.Min(float64(len(p.LifestyleFactors))/3*100, 100)
	factors = append(factors, ConfidenceFactor{
		Factor: "Lifestyle Context",
		Score:  int(math.Round(lifestyle)),
		Impact: "Affects product selection and routine timing",
	})

	sum := 0
	for _, f := range factors {
		sum += f.Score
	}
	overall := int(math.Round(float64(sum) / float64(len(factors))))

	return ConfidenceReport{
		OverallScore:         overall,
		Factors:              factors,
		Interpretation:       interpretConfidence(overall),
		ConsultationTriggers: consultationTriggers(p, d),
	}
}

func interpretConfidence(score int) string {
	switch {
	case score >= 90:
		return interpretationHigh
	case score >= 70:
		return interpretationGood
	case score >= 50:
		return interpretationModerate
	default:
		return interpretationLimited
	}
}

func consultationTriggers(p Profile, d DamageAssessment) []ConsultationTrigger {
	triggers := []ConsultationTrigger{}

	if d.Level == DamageLevelSevere {
		triggers = append(triggers, ConsultationTrigger{
			Reason:       "Severe hair damage detected",
			Professional: "Licensed cosmetologist or trichologist",
			Urgency:      "Recommended before starting intensive treatments",
		})
	}

	if p.ScalpIssueCount() > 3 {
		triggers = append(triggers, ConsultationTrigger{
			Reason:       "Persistent scalp issues reported",
			Professional: "Dermatologist",
			Urgency:      "Address underlying scalp health first",
		})
	}

	if p.ChemicalHistoryCount() > 2 {
		triggers = append(triggers, ConsultationTrigger{
			Reason:       "Complex chemical processing history",
			Professional: "Professional colorist or stylist",
			Urgency:      "Before additional chemical treatments",
		})
	}

	if p.ConflictingAnswers {
		triggers = append(triggers, ConsultationTrigger{
			Reason:       "Conflicting self-assessment results",
			Professional: "Hair care professional for in-person evaluation",
			Urgency:      "For accurate characteristic determination",
		})
	}

	return triggers
}
