package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/kuzanag1/strandly-backend/internal/data/repos"
	"github.com/kuzanag1/strandly-backend/internal/domain"
	"github.com/kuzanag1/strandly-backend/internal/platform/dbctx"
	"github.com/kuzanag1/strandly-backend/internal/platform/stripe"
)

type fakeStripe struct {
	requests []stripe.CheckoutRequest
	err      error
}

func (f *fakeStripe) CreateCheckoutSession(ctx context.Context, req stripe.CheckoutRequest) (*stripe.CheckoutSession, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.requests = append(f.requests, req)
	return &stripe.CheckoutSession{
		ID:       "cs_fake",
		URL:      "https://checkout.test/cs_fake",
		Metadata: map[string]string{"quiz_id": req.QuizID},
	}, nil
}

func (f *fakeStripe) VerifyWebhook(payload []byte, sigHeader string) (*stripe.Event, error) {
	return nil, stripe.ErrInvalidSignature
}

func checkoutEnv(t *testing.T) (*testEnv, repos.SubmissionRepo, *fakeStripe, CheckoutService) {
	t.Helper()
	env := newTestEnv(t)
	fs := &fakeStripe{}
	svc := NewCheckoutService(env.log, env.repo, fs)
	return env, env.repo, fs, svc
}

func TestCreateSessionRecordsCheckout(t *testing.T) {
	env, repo, fs, svc := checkoutEnv(t)
	row := env.seedSubmission(t)
	ctx := context.Background()

	session, err := svc.CreateSession(ctx, row.ID, "")
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	if session.ID != "cs_fake" || session.URL == "" {
		t.Fatalf("unexpected session: %+v", session)
	}

	// Submission email backfills a missing customer email.
	if len(fs.requests) != 1 || fs.requests[0].CustomerEmail != row.Email {
		t.Fatalf("unexpected checkout request: %+v", fs.requests)
	}
	if fs.requests[0].QuizID != row.ID.String() {
		t.Fatalf("unexpected quiz id: %q", fs.requests[0].QuizID)
	}

	got, err := repo.GetByID(dbctx.From(ctx), row.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.CheckoutSessionID != "cs_fake" {
		t.Fatalf("session id not recorded: %q", got.CheckoutSessionID)
	}
	if got.PaymentStatus != domain.PaymentStatusProcessing {
		t.Fatalf("unexpected payment status: %q", got.PaymentStatus)
	}
}

func TestCreateSessionUnknownSubmission(t *testing.T) {
	_, _, _, svc := checkoutEnv(t)

	_, err := svc.CreateSession(context.Background(), uuid.New(), "")
	if !errors.Is(err, ErrSubmissionNotFound) {
		t.Fatalf("expected ErrSubmissionNotFound, got %v", err)
	}
}

func TestCreateSessionWithoutStripeClient(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCheckoutService(env.log, env.repo, nil)

	if _, err := svc.CreateSession(context.Background(), uuid.New(), ""); err == nil {
		t.Fatal("expected error when payments are unconfigured")
	}
}

func TestQuizSubmitPersistsAnswers(t *testing.T) {
	env := newTestEnv(t)
	svc := NewQuizService(nil, env.log, env.repo)
	ctx := context.Background()

	row, err := svc.Submit(ctx, "user@example.com", map[string]any{"hair_texture": "wavy"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if row.ID == uuid.Nil {
		t.Fatal("submission id not assigned")
	}
	if row.PaymentStatus != domain.PaymentStatusPending || row.AnalysisStatus != domain.AnalysisStatusPending {
		t.Fatalf("unexpected statuses: %q / %q", row.PaymentStatus, row.AnalysisStatus)
	}

	got, err := svc.Get(ctx, row.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || len(got.Answers) == 0 {
		t.Fatal("answers not persisted")
	}
}

func TestQuizSubmitValidation(t *testing.T) {
	env := newTestEnv(t)
	svc := NewQuizService(nil, env.log, env.repo)
	ctx := context.Background()

	if _, err := svc.Submit(ctx, "", map[string]any{"a": "b"}); err == nil {
		t.Fatal("expected error for missing email")
	}
	if _, err := svc.Submit(ctx, "user@example.com", nil); err == nil {
		t.Fatal("expected error for empty answers")
	}
}
