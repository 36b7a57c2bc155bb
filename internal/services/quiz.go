package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kuzanag1/strandly-backend/internal/data/repos"
	"github.com/kuzanag1/strandly-backend/internal/domain"
	"github.com/kuzanag1/strandly-backend/internal/platform/dbctx"
	"github.com/kuzanag1/strandly-backend/internal/platform/logger"
)

type QuizService interface {
	Submit(ctx context.Context, email string, answers map[string]any) (*domain.QuizSubmission, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.QuizSubmission, error)
}

type quizService struct {
	db          *gorm.DB
	log         *logger.Logger
	submissions repos.SubmissionRepo
}

func NewQuizService(db *gorm.DB, log *logger.Logger, submissions repos.SubmissionRepo) QuizService {
	return &quizService{
		db:          db,
		log:         log.With("service", "QuizService"),
		submissions: submissions,
	}
}

func (s *quizService) Submit(ctx context.Context, email string, answers map[string]any) (*domain.QuizSubmission, error) {
	if email == "" {
		return nil, fmt.Errorf("email required")
	}
	if len(answers) == 0 {
		return nil, fmt.Errorf("answers required")
	}

	raw, err := json.Marshal(answers)
	if err != nil {
		return nil, fmt.Errorf("encode answers: %w", err)
	}

	row := &domain.QuizSubmission{
		ID:             uuid.New(),
		Email:          email,
		Answers:        raw,
		PaymentStatus:  domain.PaymentStatusPending,
		AnalysisStatus: domain.AnalysisStatusPending,
	}
	if err := s.submissions.Create(dbctx.From(ctx), row); err != nil {
		return nil, fmt.Errorf("create submission: %w", err)
	}

	s.log.Info("Quiz submitted", "quiz_id", row.ID.String())
	return row, nil
}

func (s *quizService) Get(ctx context.Context, id uuid.UUID) (*domain.QuizSubmission, error) {
	return s.submissions.GetByID(dbctx.From(ctx), id)
}
