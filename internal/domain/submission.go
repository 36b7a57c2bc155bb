package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Payment status transitions: pending -> processing -> completed.
const (
	PaymentStatusPending    = "pending"
	PaymentStatusProcessing = "processing"
	PaymentStatusCompleted  = "completed"
)

// Analysis status transitions: pending -> processing -> completed, with
// failed as the terminal error state. The pending->processing step is the
// conditional update that deduplicates repeated payment callbacks.
const (
	AnalysisStatusPending    = "pending"
	AnalysisStatusProcessing = "processing"
	AnalysisStatusCompleted  = "completed"
	AnalysisStatusFailed     = "failed"
)

type QuizSubmission struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Email             string         `gorm:"not null;index" json:"email"`
	Answers           datatypes.JSON `gorm:"column:answers;type:jsonb;not null" json:"answers"`
	PaymentStatus     string         `gorm:"column:payment_status;not null;default:'pending';index" json:"payment_status"`
	AnalysisStatus    string         `gorm:"column:analysis_status;not null;default:'pending';index" json:"analysis_status"`
	CheckoutSessionID string         `gorm:"column:checkout_session_id;index" json:"checkout_session_id,omitempty"`
	PayerEmail        string         `gorm:"column:payer_email" json:"payer_email,omitempty"`
	Result            datatypes.JSON `gorm:"column:result;type:jsonb" json:"result,omitempty"`
	AnalyzedAt        *time.Time     `gorm:"column:analyzed_at" json:"analyzed_at,omitempty"`
	EmailedAt         *time.Time     `gorm:"column:emailed_at" json:"emailed_at,omitempty"`
	CreatedAt         time.Time      `gorm:"not null;default:now();index" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (QuizSubmission) TableName() string { return "quiz_submission" }
