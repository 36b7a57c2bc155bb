package submissions

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/kuzanag1/strandly-backend/internal/domain"
	"github.com/kuzanag1/strandly-backend/internal/platform/dbctx"
	"github.com/kuzanag1/strandly-backend/internal/platform/logger"
)

func testRepo(t *testing.T) SubmissionRepo {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.QuizSubmission{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			_ = sqlDB.Close()
		}
	})
	return NewSubmissionRepo(db, log)
}

func newSubmission() *domain.QuizSubmission {
	return &domain.QuizSubmission{
		ID:             uuid.New(),
		Email:          "user@example.com",
		Answers:        []byte(`{"hair_texture":"curly"}`),
		PaymentStatus:  domain.PaymentStatusPending,
		AnalysisStatus: domain.AnalysisStatusPending,
	}
}

func TestCreateAndGetByID(t *testing.T) {
	repo := testRepo(t)
	dbc := dbctx.From(context.Background())

	row := newSubmission()
	if err := repo.Create(dbc, row); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByID(dbc, row.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Email != row.Email {
		t.Fatalf("unexpected row: %+v", got)
	}
	if got.AnalysisStatus != domain.AnalysisStatusPending {
		t.Fatalf("unexpected analysis status: %q", got.AnalysisStatus)
	}
}

func TestGetByIDMissingReturnsNil(t *testing.T) {
	repo := testRepo(t)
	dbc := dbctx.From(context.Background())

	got, err := repo.GetByID(dbc, uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for missing row, got %+v", got)
	}
}

func TestSetCheckoutSessionMovesPaymentToProcessing(t *testing.T) {
	repo := testRepo(t)
	dbc := dbctx.From(context.Background())

	row := newSubmission()
	if err := repo.Create(dbc, row); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.SetCheckoutSession(dbc, row.ID, "cs_123"); err != nil {
		t.Fatalf("set session: %v", err)
	}

	got, err := repo.GetByCheckoutSession(dbc, "cs_123")
	if err != nil {
		t.Fatalf("get by session: %v", err)
	}
	if got == nil || got.ID != row.ID {
		t.Fatalf("unexpected row: %+v", got)
	}
	if got.PaymentStatus != domain.PaymentStatusProcessing {
		t.Fatalf("unexpected payment status: %q", got.PaymentStatus)
	}
}

func TestCompareAndSwapAnalysisStatusWinsOnce(t *testing.T) {
	repo := testRepo(t)
	dbc := dbctx.From(context.Background())

	row := newSubmission()
	if err := repo.Create(dbc, row); err != nil {
		t.Fatalf("create: %v", err)
	}

	won, err := repo.CompareAndSwapAnalysisStatus(dbc, row.ID, domain.AnalysisStatusPending, domain.AnalysisStatusProcessing)
	if err != nil {
		t.Fatalf("cas: %v", err)
	}
	if !won {
		t.Fatal("first caller must win the swap")
	}

	// A replayed callback sees the status already moved.
	won, err = repo.CompareAndSwapAnalysisStatus(dbc, row.ID, domain.AnalysisStatusPending, domain.AnalysisStatusProcessing)
	if err != nil {
		t.Fatalf("cas: %v", err)
	}
	if won {
		t.Fatal("second caller must lose the swap")
	}
}

func TestSaveResultAndMarkEmailed(t *testing.T) {
	repo := testRepo(t)
	dbc := dbctx.From(context.Background())

	row := newSubmission()
	if err := repo.Create(dbc, row); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.SaveResult(dbc, row.ID, []byte(`{"damage":{"level":"severe"}}`)); err != nil {
		t.Fatalf("save result: %v", err)
	}
	if err := repo.MarkEmailed(dbc, row.ID); err != nil {
		t.Fatalf("mark emailed: %v", err)
	}

	got, err := repo.GetByID(dbc, row.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Result) == 0 {
		t.Fatal("result not persisted")
	}
	if got.AnalyzedAt == nil || got.EmailedAt == nil {
		t.Fatalf("timestamps not set: analyzed=%v emailed=%v", got.AnalyzedAt, got.EmailedAt)
	}
}

func TestMarkPaymentCompleted(t *testing.T) {
	repo := testRepo(t)
	dbc := dbctx.From(context.Background())

	row := newSubmission()
	if err := repo.Create(dbc, row); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.MarkPaymentCompleted(dbc, row.ID, "payer@example.com"); err != nil {
		t.Fatalf("mark paid: %v", err)
	}

	got, err := repo.GetByID(dbc, row.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.PaymentStatus != domain.PaymentStatusCompleted {
		t.Fatalf("unexpected payment status: %q", got.PaymentStatus)
	}
	if got.PayerEmail != "payer@example.com" {
		t.Fatalf("unexpected payer email: %q", got.PayerEmail)
	}
}
