package stripe

import (
	"errors"
	"strings"
	"testing"
	"time"
)

const testSecret = "whsec_test_secret"

func TestValidateSignature(t *testing.T) {
	t.Parallel()

	payload := []byte(`{"id":"evt_1","type":"checkout.session.completed"}`)
	now := time.Now()

	t.Run("valid_signature", func(t *testing.T) {
		t.Parallel()
		header := SignPayload(payload, testSecret, now)
		if err := validateSignature(payload, header, testSecret, now, DefaultTolerance); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("wrong_secret", func(t *testing.T) {
		t.Parallel()
		header := SignPayload(payload, "whsec_other", now)
		if err := validateSignature(payload, header, testSecret, now, DefaultTolerance); !errors.Is(err, ErrInvalidSignature) {
			t.Fatalf("expected ErrInvalidSignature, got %v", err)
		}
	})

	t.Run("tampered_payload", func(t *testing.T) {
		t.Parallel()
		header := SignPayload(payload, testSecret, now)
		tampered := []byte(`{"id":"evt_2","type":"checkout.session.completed"}`)
		if err := validateSignature(tampered, header, testSecret, now, DefaultTolerance); !errors.Is(err, ErrInvalidSignature) {
			t.Fatalf("expected ErrInvalidSignature, got %v", err)
		}
	})

	t.Run("expired_timestamp", func(t *testing.T) {
		t.Parallel()
		header := SignPayload(payload, testSecret, now.Add(-10*time.Minute))
		if err := validateSignature(payload, header, testSecret, now, DefaultTolerance); !errors.Is(err, ErrInvalidSignature) {
			t.Fatalf("expected ErrInvalidSignature, got %v", err)
		}
	})

	t.Run("future_timestamp", func(t *testing.T) {
		t.Parallel()
		header := SignPayload(payload, testSecret, now.Add(10*time.Minute))
		if err := validateSignature(payload, header, testSecret, now, DefaultTolerance); !errors.Is(err, ErrInvalidSignature) {
			t.Fatalf("expected ErrInvalidSignature, got %v", err)
		}
	})

	t.Run("missing_header", func(t *testing.T) {
		t.Parallel()
		if err := validateSignature(payload, "", testSecret, now, DefaultTolerance); !errors.Is(err, ErrInvalidSignature) {
			t.Fatalf("expected ErrInvalidSignature, got %v", err)
		}
	})

	t.Run("malformed_header", func(t *testing.T) {
		t.Parallel()
		if err := validateSignature(payload, "t=notanumber,v1=deadbeef", testSecret, now, DefaultTolerance); !errors.Is(err, ErrInvalidSignature) {
			t.Fatalf("expected ErrInvalidSignature, got %v", err)
		}
	})

	t.Run("extra_v1_candidates", func(t *testing.T) {
		t.Parallel()
		// A rotated-secret header carries multiple v1 entries; any valid one
		// passes.
		header := SignPayload(payload, testSecret, now) + ",v1=deadbeef"
		if err := validateSignature(payload, header, testSecret, now, DefaultTolerance); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestEventSessionDecoding(t *testing.T) {
	t.Parallel()

	ev := Event{}
	ev.Type = EventCheckoutSessionCompleted
	ev.Data.Object = []byte(`{"id":"cs_123","metadata":{"quiz_id":"abc"},"customer_details":{"email":"payer@example.com"}}`)

	s, err := ev.Session()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.ID != "cs_123" || s.Metadata["quiz_id"] != "abc" || s.CustomerDetails.Email != "payer@example.com" {
		t.Fatalf("unexpected session: %+v", s)
	}
}

func TestCheckoutConfigDefaults(t *testing.T) {
	t.Parallel()

	log := testLogger(t)
	cfg := Config{APIKey: "sk_test", WebhookSecret: testSecret}
	c, err := New(log, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	inner := c.(*client)
	if inner.cfg.PriceCents != 2900 {
		t.Fatalf("unexpected default price: %d", inner.cfg.PriceCents)
	}
	if inner.cfg.Currency != "usd" {
		t.Fatalf("unexpected default currency: %q", inner.cfg.Currency)
	}
	if !strings.HasPrefix(inner.cfg.BaseURL, "https://api.stripe.com") {
		t.Fatalf("unexpected base url: %q", inner.cfg.BaseURL)
	}
}

func TestNewRequiresCredentials(t *testing.T) {
	t.Parallel()

	log := testLogger(t)
	if _, err := New(log, Config{WebhookSecret: testSecret}); err == nil {
		t.Fatal("expected error for missing api key")
	}
	if _, err := New(log, Config{APIKey: "sk_test"}); err == nil {
		t.Fatal("expected error for missing webhook secret")
	}
}
