package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kuzanag1/strandly-backend/internal/data/repos"
	"github.com/kuzanag1/strandly-backend/internal/platform/dbctx"
	"github.com/kuzanag1/strandly-backend/internal/platform/logger"
	"github.com/kuzanag1/strandly-backend/internal/platform/stripe"
)

var ErrSubmissionNotFound = fmt.Errorf("submission not found")

type CheckoutService interface {
	// CreateSession opens a payment session for an existing submission and
	// records the session id against it.
	CreateSession(ctx context.Context, quizID uuid.UUID, email string) (*stripe.CheckoutSession, error)
}

type checkoutService struct {
	log         *logger.Logger
	submissions repos.SubmissionRepo
	stripe      stripe.Client
}

func NewCheckoutService(log *logger.Logger, submissions repos.SubmissionRepo, sc stripe.Client) CheckoutService {
	return &checkoutService{
		log:         log.With("service", "CheckoutService"),
		submissions: submissions,
		stripe:      sc,
	}
}

func (s *checkoutService) CreateSession(ctx context.Context, quizID uuid.UUID, email string) (*stripe.CheckoutSession, error) {
	if s.stripe == nil {
		return nil, fmt.Errorf("payment processing unavailable")
	}

	row, err := s.submissions.GetByID(dbctx.From(ctx), quizID)
	if err != nil {
		return nil, fmt.Errorf("load submission: %w", err)
	}
	if row == nil {
		return nil, ErrSubmissionNotFound
	}

	if email == "" {
		email = row.Email
	}

	session, err := s.stripe.CreateCheckoutSession(ctx, stripe.CheckoutRequest{
		QuizID:        quizID.String(),
		CustomerEmail: email,
	})
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}

	if err := s.submissions.SetCheckoutSession(dbctx.From(ctx), quizID, session.ID); err != nil {
		// Session exists at the processor even if we failed to record it; the
		// webhook path recovers via the quiz_id metadata.
		s.log.Error("Failed to record checkout session",
			"quiz_id", quizID.String(),
			"error", err.Error(),
		)
	}

	s.log.Info("Checkout session created", "quiz_id", quizID.String())
	return session, nil
}
