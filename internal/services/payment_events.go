package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	goredis "github.com/kuzanag1/strandly-backend/internal/clients/redis"
	"github.com/kuzanag1/strandly-backend/internal/data/repos"
	"github.com/kuzanag1/strandly-backend/internal/domain"
	"github.com/kuzanag1/strandly-backend/internal/platform/dbctx"
	"github.com/kuzanag1/strandly-backend/internal/platform/logger"
	"github.com/kuzanag1/strandly-backend/internal/platform/stripe"
)

const lockTTL = 2 * time.Minute

// PaymentEventService drives the post-payment pipeline: a completed checkout
// callback marks the submission paid, runs the analysis exactly once, stores
// the result, and emails the report.
type PaymentEventService interface {
	HandleCheckoutCompleted(ctx context.Context, session *stripe.CheckoutSession) error
}

type paymentEventService struct {
	log         *logger.Logger
	submissions repos.SubmissionRepo
	analysis    AnalysisService
	delivery    DeliveryService
	locker      goredis.Locker // nil when redis is not configured
}

func NewPaymentEventService(
	log *logger.Logger,
	submissions repos.SubmissionRepo,
	analysisSvc AnalysisService,
	delivery DeliveryService,
	locker goredis.Locker,
) PaymentEventService {
	return &paymentEventService{
		log:         log.With("service", "PaymentEventService"),
		submissions: submissions,
		analysis:    analysisSvc,
		delivery:    delivery,
		locker:      locker,
	}
}

// HandleCheckoutCompleted is safe to call more than once for the same session.
// The redis lock sheds concurrent duplicates cheaply; the conditional status
// update in the repository is the authoritative dedupe and holds even when
// redis is down or the lock has expired.
func (s *paymentEventService) HandleCheckoutCompleted(ctx context.Context, session *stripe.CheckoutSession) error {
	if session == nil {
		return fmt.Errorf("nil checkout session")
	}

	quizID, err := s.resolveQuizID(ctx, session)
	if err != nil {
		return err
	}
	log := s.log.With("quiz_id", quizID.String())

	if s.locker != nil {
		ok, lockErr := s.locker.Acquire(ctx, quizID.String(), lockTTL)
		if lockErr != nil {
			log.Warn("Lock acquire failed, relying on status guard", "error", lockErr.Error())
		} else if !ok {
			log.Info("Duplicate payment callback shed by lock")
			return nil
		} else {
			defer func() {
				if relErr := s.locker.Release(context.WithoutCancel(ctx), quizID.String()); relErr != nil {
					log.Warn("Lock release failed", "error", relErr.Error())
				}
			}()
		}
	}

	dbc := dbctx.From(ctx)

	if err := s.submissions.MarkPaymentCompleted(dbc, quizID, session.CustomerDetails.Email); err != nil {
		return fmt.Errorf("mark payment completed: %w", err)
	}

	won, err := s.submissions.CompareAndSwapAnalysisStatus(dbc, quizID, domain.AnalysisStatusPending, domain.AnalysisStatusProcessing)
	if err != nil {
		return fmt.Errorf("claim analysis: %w", err)
	}
	if !won {
		log.Info("Analysis already claimed, skipping duplicate callback")
		return nil
	}

	if err := s.runPipeline(ctx, quizID); err != nil {
		if _, casErr := s.submissions.CompareAndSwapAnalysisStatus(dbc, quizID, domain.AnalysisStatusProcessing, domain.AnalysisStatusFailed); casErr != nil {
			log.Error("Failed to mark analysis failed", "error", casErr.Error())
		}
		return err
	}

	if _, err := s.submissions.CompareAndSwapAnalysisStatus(dbc, quizID, domain.AnalysisStatusProcessing, domain.AnalysisStatusCompleted); err != nil {
		return fmt.Errorf("complete analysis: %w", err)
	}

	log.Info("Payment pipeline completed")
	return nil
}

func (s *paymentEventService) resolveQuizID(ctx context.Context, session *stripe.CheckoutSession) (uuid.UUID, error) {
	if raw := session.Metadata["quiz_id"]; raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return uuid.Nil, fmt.Errorf("invalid quiz_id in session metadata: %w", err)
		}
		row, err := s.submissions.GetByID(dbctx.From(ctx), id)
		if err != nil {
			return uuid.Nil, fmt.Errorf("load submission: %w", err)
		}
		if row == nil {
			return uuid.Nil, fmt.Errorf("no submission for quiz_id %s", id)
		}
		return id, nil
	}

	// Older sessions created before metadata was attached; fall back to the
	// recorded session id.
	row, err := s.submissions.GetByCheckoutSession(dbctx.From(ctx), session.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("lookup by session: %w", err)
	}
	if row == nil {
		return uuid.Nil, fmt.Errorf("no submission for checkout session %q", session.ID)
	}
	return row.ID, nil
}

func (s *paymentEventService) runPipeline(ctx context.Context, quizID uuid.UUID) error {
	dbc := dbctx.From(ctx)

	row, err := s.submissions.GetByID(dbc, quizID)
	if err != nil {
		return fmt.Errorf("load submission: %w", err)
	}
	if row == nil {
		return fmt.Errorf("submission %s vanished mid-pipeline", quizID)
	}

	var answers map[string]any
	if err := json.Unmarshal(row.Answers, &answers); err != nil {
		return fmt.Errorf("decode stored answers: %w", err)
	}

	result := s.analysis.Run(answers)

	encoded, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode analysis result: %w", err)
	}
	if err := s.submissions.SaveResult(dbc, quizID, datatypes.JSON(encoded)); err != nil {
		return fmt.Errorf("save analysis result: %w", err)
	}

	to := row.PayerEmail
	if to == "" {
		to = row.Email
	}
	if err := s.delivery.SendReport(ctx, to, result); err != nil {
		// The result is stored and retrievable; email failure must not void
		// the purchase.
		s.log.Error("Report email failed, result remains retrievable",
			"quiz_id", quizID.String(),
			"error", err.Error(),
		)
		return nil
	}
	if err := s.submissions.MarkEmailed(dbc, quizID); err != nil {
		s.log.Error("Failed to record email delivery", "quiz_id", quizID.String(), "error", err.Error())
	}
	return nil
}
