package repos

import (
	"gorm.io/gorm"

	"github.com/kuzanag1/strandly-backend/internal/data/repos/submissions"
	"github.com/kuzanag1/strandly-backend/internal/platform/logger"
)

type SubmissionRepo = submissions.SubmissionRepo

func NewSubmissionRepo(db *gorm.DB, baseLog *logger.Logger) SubmissionRepo {
	return submissions.NewSubmissionRepo(db, baseLog)
}
