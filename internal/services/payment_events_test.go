package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/kuzanag1/strandly-backend/internal/analysis"
	"github.com/kuzanag1/strandly-backend/internal/catalog"
	"github.com/kuzanag1/strandly-backend/internal/data/repos"
	"github.com/kuzanag1/strandly-backend/internal/domain"
	"github.com/kuzanag1/strandly-backend/internal/platform/dbctx"
	"github.com/kuzanag1/strandly-backend/internal/platform/logger"
	"github.com/kuzanag1/strandly-backend/internal/platform/stripe"
	"github.com/kuzanag1/strandly-backend/internal/recommend"
)

type fakeDelivery struct {
	mu   sync.Mutex
	sent []string
	fail bool
}

func (f *fakeDelivery) SendReport(ctx context.Context, to string, result AnalysisResult) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return fmt.Errorf("smtp sad")
	}
	f.sent = append(f.sent, to)
	return nil
}

type testEnv struct {
	repo     repos.SubmissionRepo
	analysis AnalysisService
	delivery *fakeDelivery
	events   PaymentEventService
	log      *logger.Logger
}

func newTestEnv(t *testing.T) *testEnv {
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
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			_ = sqlDB.Close()
		}
	})

	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	repo := repos.NewSubmissionRepo(db, log)
	analysisSvc := NewAnalysisService(log, cat, analysis.DefaultScoringConfig(), recommend.Options{})
	delivery := &fakeDelivery{}
	events := NewPaymentEventService(log, repo, analysisSvc, delivery, nil)

	return &testEnv{repo: repo, analysis: analysisSvc, delivery: delivery, events: events, log: log}
}

func (e *testEnv) seedSubmission(t *testing.T) *domain.QuizSubmission {
	t.Helper()
	row := &domain.QuizSubmission{
		ID:    uuid.New(),
		Email: "user@example.com",
		Answers: []byte(`{
			"hair_texture": "curly",
			"hair_thickness": "coarse",
			"porosity": "high",
			"chemical_treatments": ["bleaching", "chemical_relaxing"],
			"heat_styling": "daily"
		}`),
		PaymentStatus:  domain.PaymentStatusPending,
		AnalysisStatus: domain.AnalysisStatusPending,
	}
	if err := e.repo.Create(dbctx.From(context.Background()), row); err != nil {
		t.Fatalf("seed submission: %v", err)
	}
	return row
}

func completedSession(quizID uuid.UUID) *stripe.CheckoutSession {
	return &stripe.CheckoutSession{
		ID:              "cs_" + quizID.String()[:8],
		Metadata:        map[string]string{"quiz_id": quizID.String()},
		CustomerDetails: stripe.CustomerDetails{Email: "payer@example.com"},
	}
}

func TestHandleCheckoutCompletedRunsPipeline(t *testing.T) {
	env := newTestEnv(t)
	row := env.seedSubmission(t)
	ctx := context.Background()

	if err := env.events.HandleCheckoutCompleted(ctx, completedSession(row.ID)); err != nil {
		t.Fatalf("handle: %v", err)
	}

	got, err := env.repo.GetByID(dbctx.From(ctx), row.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.PaymentStatus != domain.PaymentStatusCompleted {
		t.Fatalf("unexpected payment status: %q", got.PaymentStatus)
	}
	if got.AnalysisStatus != domain.AnalysisStatusCompleted {
		t.Fatalf("unexpected analysis status: %q", got.AnalysisStatus)
	}
	if got.PayerEmail != "payer@example.com" {
		t.Fatalf("unexpected payer email: %q", got.PayerEmail)
	}
	if len(got.Result) == 0 || got.AnalyzedAt == nil || got.EmailedAt == nil {
		t.Fatal("pipeline did not persist result and timestamps")
	}

	var result AnalysisResult
	if err := json.Unmarshal(got.Result, &result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if result.Damage.Level != analysis.DamageLevelSevere {
		t.Fatalf("unexpected damage level: %q", result.Damage.Level)
	}

	if len(env.delivery.sent) != 1 || env.delivery.sent[0] != "payer@example.com" {
		t.Fatalf("unexpected delivery log: %v", env.delivery.sent)
	}
}

func TestHandleCheckoutCompletedDeduplicatesReplays(t *testing.T) {
	env := newTestEnv(t)
	row := env.seedSubmission(t)
	ctx := context.Background()
	session := completedSession(row.ID)

	for i := 0; i < 3; i++ {
		if err := env.events.HandleCheckoutCompleted(ctx, session); err != nil {
			t.Fatalf("replay %d: %v", i, err)
		}
	}

	if len(env.delivery.sent) != 1 {
		t.Fatalf("analysis ran %d times, want exactly once", len(env.delivery.sent))
	}
}

func TestHandleCheckoutCompletedEmailFailureKeepsResult(t *testing.T) {
	env := newTestEnv(t)
	env.delivery.fail = true
	row := env.seedSubmission(t)
	ctx := context.Background()

	if err := env.events.HandleCheckoutCompleted(ctx, completedSession(row.ID)); err != nil {
		t.Fatalf("handle: %v", err)
	}

	got, err := env.repo.GetByID(dbctx.From(ctx), row.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.AnalysisStatus != domain.AnalysisStatusCompleted {
		t.Fatalf("email failure must not void the analysis: status=%q", got.AnalysisStatus)
	}
	if len(got.Result) == 0 {
		t.Fatal("result must remain retrievable")
	}
	if got.EmailedAt != nil {
		t.Fatal("emailed_at must stay unset after delivery failure")
	}
}

func TestHandleCheckoutCompletedFallsBackToSessionLookup(t *testing.T) {
	env := newTestEnv(t)
	row := env.seedSubmission(t)
	ctx := context.Background()

	if err := env.repo.SetCheckoutSession(dbctx.From(ctx), row.ID, "cs_legacy"); err != nil {
		t.Fatalf("set session: %v", err)
	}

	session := &stripe.CheckoutSession{
		ID:              "cs_legacy",
		CustomerDetails: stripe.CustomerDetails{Email: "payer@example.com"},
	}
	if err := env.events.HandleCheckoutCompleted(ctx, session); err != nil {
		t.Fatalf("handle: %v", err)
	}

	got, err := env.repo.GetByID(dbctx.From(ctx), row.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.AnalysisStatus != domain.AnalysisStatusCompleted {
		t.Fatalf("unexpected analysis status: %q", got.AnalysisStatus)
	}
}

func TestHandleCheckoutCompletedUnknownSubmission(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	err := env.events.HandleCheckoutCompleted(ctx, completedSession(uuid.New()))
	if err == nil {
		t.Fatal("expected error for unknown submission")
	}
}
