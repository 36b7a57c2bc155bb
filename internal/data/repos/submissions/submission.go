package submissions

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/kuzanag1/strandly-backend/internal/domain"
	"github.com/kuzanag1/strandly-backend/internal/platform/dbctx"
	"github.com/kuzanag1/strandly-backend/internal/platform/logger"
)

type SubmissionRepo interface {
	Create(dbc dbctx.Context, row *domain.QuizSubmission) error
	GetByID(dbc dbctx.Context, id uuid.UUID) (*domain.QuizSubmission, error)
	GetByCheckoutSession(dbc dbctx.Context, sessionID string) (*domain.QuizSubmission, error)
	SetCheckoutSession(dbc dbctx.Context, id uuid.UUID, sessionID string) error
	MarkPaymentCompleted(dbc dbctx.Context, id uuid.UUID, payerEmail string) error
	// CompareAndSwapAnalysisStatus flips analysis_status from expected to next
	// in one conditional update and reports whether this caller won. The
	// losing caller of a duplicated payment callback sees false.
	CompareAndSwapAnalysisStatus(dbc dbctx.Context, id uuid.UUID, expected, next string) (bool, error)
	SaveResult(dbc dbctx.Context, id uuid.UUID, result datatypes.JSON) error
	MarkEmailed(dbc dbctx.Context, id uuid.UUID) error
}

type submissionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSubmissionRepo(db *gorm.DB, baseLog *logger.Logger) SubmissionRepo {
	return &submissionRepo{db: db, log: baseLog.With("repo", "SubmissionRepo")}
}

func (r *submissionRepo) conn(dbc dbctx.Context) *gorm.DB {
	if dbc.Tx != nil {
		return dbc.Tx.WithContext(dbc.Ctx)
	}
	return r.db.WithContext(dbc.Ctx)
}

func (r *submissionRepo) Create(dbc dbctx.Context, row *domain.QuizSubmission) error {
	if row == nil {
		return nil
	}
	return r.conn(dbc).Create(row).Error
}

func (r *submissionRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*domain.QuizSubmission, error) {
	if id == uuid.Nil {
		return nil, nil
	}
	var row domain.QuizSubmission
	err := r.conn(dbc).Where("id = ?", id).First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *submissionRepo) GetByCheckoutSession(dbc dbctx.Context, sessionID string) (*domain.QuizSubmission, error) {
	if sessionID == "" {
		return nil, nil
	}
	var row domain.QuizSubmission
	err := r.conn(dbc).Where("checkout_session_id = ?", sessionID).First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *submissionRepo) SetCheckoutSession(dbc dbctx.Context, id uuid.UUID, sessionID string) error {
	return r.conn(dbc).Model(&domain.QuizSubmission{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"checkout_session_id": sessionID,
			"payment_status":      domain.PaymentStatusProcessing,
			"updated_at":          time.Now().UTC(),
		}).Error
}

func (r *submissionRepo) MarkPaymentCompleted(dbc dbctx.Context, id uuid.UUID, payerEmail string) error {
	return r.conn(dbc).Model(&domain.QuizSubmission{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"payment_status": domain.PaymentStatusCompleted,
			"payer_email":    payerEmail,
			"updated_at":     time.Now().UTC(),
		}).Error
}

func (r *submissionRepo) CompareAndSwapAnalysisStatus(dbc dbctx.Context, id uuid.UUID, expected, next string) (bool, error) {
	res := r.conn(dbc).Model(&domain.QuizSubmission{}).
		Where("id = ? AND analysis_status = ?", id, expected).
		Updates(map[string]any{
			"analysis_status": next,
			"updated_at":      time.Now().UTC(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *submissionRepo) SaveResult(dbc dbctx.Context, id uuid.UUID, result datatypes.JSON) error {
	now := time.Now().UTC()
	return r.conn(dbc).Model(&domain.QuizSubmission{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"result":      result,
			"analyzed_at": now,
			"updated_at":  now,
		}).Error
}

func (r *submissionRepo) MarkEmailed(dbc dbctx.Context, id uuid.UUID) error {
	now := time.Now().UTC()
	return r.conn(dbc).Model(&domain.QuizSubmission{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"emailed_at": now,
			"updated_at": now,
		}).Error
}
