package services

import (
	"github.com/kuzanag1/strandly-backend/internal/analysis"
	"github.com/kuzanag1/strandly-backend/internal/catalog"
	"github.com/kuzanag1/strandly-backend/internal/platform/logger"
	"github.com/kuzanag1/strandly-backend/internal/recommend"
)

// AnalysisResult bundles everything the engine derives from one set of quiz
// answers. It is what gets persisted against the submission and rendered
// into the report email.
type AnalysisResult struct {
	CatalogVersion string                    `json:"catalog_version"`
	Profile        analysis.Profile          `json:"profile"`
	Damage         analysis.DamageAssessment `json:"damage"`
	Bundle         recommend.Bundle          `json:"recommendations"`
	Confidence     analysis.ConfidenceReport `json:"confidence"`
}

// AnalysisService runs the full normalize -> score -> resolve -> assess
// pipeline. Stateless over the read-only catalog and scoring config; safe
// for any number of concurrent callers.
type AnalysisService interface {
	Run(rawAnswers map[string]any) AnalysisResult
}

type analysisService struct {
	log     *logger.Logger
	catalog *catalog.Catalog
	scoring analysis.ScoringConfig
	opts    recommend.Options
}

func NewAnalysisService(log *logger.Logger, cat *catalog.Catalog, scoring analysis.ScoringConfig, opts recommend.Options) AnalysisService {
	return &analysisService{
		log:     log.With("service", "AnalysisService"),
		catalog: cat,
		scoring: scoring,
		opts:    opts,
	}
}

func (s *analysisService) Run(rawAnswers map[string]any) AnalysisResult {
	profile := analysis.Normalize(rawAnswers)
	damage := analysis.Score(profile, s.scoring)
	bundle := recommend.Resolve(profile, damage, s.catalog, s.opts)
	confidence := analysis.Assess(profile, damage)

	s.log.Debug("Analysis computed",
		"damage_level", string(damage.Level),
		"confidence", confidence.OverallScore,
		"triggers", len(confidence.ConsultationTriggers),
	)

	return AnalysisResult{
		CatalogVersion: catalog.Version,
		Profile:        profile,
		Damage:         damage,
		Bundle:         bundle,
		Confidence:     confidence,
	}
}
