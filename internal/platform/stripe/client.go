package stripe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/kuzanag1/strandly-backend/internal/platform/envutil"
	"github.com/kuzanag1/strandly-backend/internal/platform/httpx"
	"github.com/kuzanag1/strandly-backend/internal/platform/logger"
)

type Client interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error)
	VerifyWebhook(payload []byte, sigHeader string) (*Event, error)
}

type Config struct {
	APIKey        string
	WebhookSecret string
	BaseURL       string
	SuccessURL    string
	CancelURL     string
	PriceCents    int64
	Currency      string
	ProductName   string
	Timeout       time.Duration
	MaxRetries    int
}

func ConfigFromEnv() Config {
	timeoutSec := envutil.Int("STRIPE_TIMEOUT_SECONDS", 30)
	maxRetries := envutil.Int("STRIPE_MAX_RETRIES", 3)
	priceCents := envutil.Int("ANALYSIS_PRICE_CENTS", 2900)
	frontendURL := strings.TrimRight(envutil.Str("FRONTEND_URL", "https://www.strandly.shop"), "/")

	return Config{
		APIKey:        strings.TrimSpace(os.Getenv("STRIPE_SECRET_KEY")),
		WebhookSecret: strings.TrimSpace(os.Getenv("STRIPE_WEBHOOK_SECRET")),
		BaseURL:       strings.TrimSpace(os.Getenv("STRIPE_BASE_URL")),
		SuccessURL:    frontendURL + "/success.html?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:     frontendURL + "/quiz.html",
		PriceCents:    int64(priceCents),
		Currency:      envutil.Str("ANALYSIS_PRICE_CURRENCY", "usd"),
		ProductName:   "Professional Hair Analysis",
		Timeout:       time.Duration(timeoutSec) * time.Second,
		MaxRetries:    maxRetries,
	}
}

func NewFromEnv(log *logger.Logger) (Client, error) {
	return New(log, ConfigFromEnv())
}

func New(log *logger.Logger, cfg Config) (Client, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("missing STRIPE_SECRET_KEY")
	}
	if strings.TrimSpace(cfg.WebhookSecret) == "" {
		return nil, fmt.Errorf("missing STRIPE_WEBHOOK_SECRET")
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = "https://api.stripe.com"
	}
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.PriceCents <= 0 {
		cfg.PriceCents = 2900
	}
	if cfg.Currency == "" {
		cfg.Currency = "usd"
	}

	return &client{
		log:        log.With("client", "StripeClient"),
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

type client struct {
	log        *logger.Logger
	cfg        Config
	httpClient *http.Client
}

type CheckoutRequest struct {
	QuizID        string
	CustomerEmail string
}

type CheckoutSession struct {
	ID              string            `json:"id"`
	URL             string            `json:"url"`
	Metadata        map[string]string `json:"metadata"`
	CustomerDetails CustomerDetails   `json:"customer_details"`
}

type CustomerDetails struct {
	Email string `json:"email"`
}

type Event struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object json.RawMessage `json:"object"`
	} `json:"data"`
}

const EventCheckoutSessionCompleted = "checkout.session.completed"

// Session decodes the event payload as a checkout session object.
func (e *Event) Session() (*CheckoutSession, error) {
	var s CheckoutSession
	if err := json.Unmarshal(e.Data.Object, &s); err != nil {
		return nil, fmt.Errorf("stripe: decode session object: %w", err)
	}
	return &s, nil
}

func (c *client) CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error) {
	if strings.TrimSpace(req.QuizID) == "" {
		return nil, fmt.Errorf("stripe: quiz id required")
	}

	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("success_url", c.cfg.SuccessURL+"&quiz_id="+url.QueryEscape(req.QuizID))
	form.Set("cancel_url", c.cfg.CancelURL)
	form.Set("payment_method_types[0]", "card")
	form.Set("line_items[0][quantity]", "1")
	form.Set("line_items[0][price_data][currency]", c.cfg.Currency)
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(c.cfg.PriceCents, 10))
	form.Set("line_items[0][price_data][product_data][name]", c.cfg.ProductName)
	form.Set("line_items[0][price_data][product_data][description]", "Personalized hair analysis with expert recommendations")
	form.Set("metadata[quiz_id]", req.QuizID)
	if e := strings.TrimSpace(req.CustomerEmail); e != "" {
		form.Set("customer_email", e)
	}

	raw, err := c.do(ctx, "POST", "/v1/checkout/sessions", form)
	if err != nil {
		return nil, err
	}

	var session CheckoutSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("stripe: decode checkout session: %w", err)
	}
	return &session, nil
}

// ---------- HTTP / retry helpers ----------

type apiError struct {
	Error struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type HTTPError struct {
	StatusCode int
	Body       string
	Message    string
}

func (e *HTTPError) Error() string {
	if e == nil {
		return "stripe: <nil error>"
	}
	msg := strings.TrimSpace(e.Message)
	if msg == "" {
		msg = strings.TrimSpace(e.Body)
	}
	if msg == "" {
		msg = "<empty body>"
	}
	if len(msg) > 4000 {
		msg = msg[:4000] + "..."
	}
	return fmt.Sprintf("stripe http %d: %s", e.StatusCode, msg)
}

func (e *HTTPError) HTTPStatusCode() int {
	if e == nil {
		return 0
	}
	return e.StatusCode
}

func (c *client) do(ctx context.Context, method, path string, form url.Values) ([]byte, error) {
	backoff := 1 * time.Second

	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		resp, raw, err := c.doOnce(ctx, method, path, form)
		if err == nil {
			return raw, nil
		}

		if !httpx.IsRetryableError(err) || attempt == c.cfg.MaxRetries {
			return nil, err
		}

		sleepFor := httpx.RetryAfterDuration(resp, backoff, 10*time.Second)
		sleepFor = httpx.JitterSleep(sleepFor)

		c.log.Warn("Stripe request retrying",
			"path", path,
			"attempt", attempt+1,
			"max_retries", c.cfg.MaxRetries,
			"sleep", sleepFor.String(),
			"error", err.Error(),
		)

		time.Sleep(sleepFor)
		backoff *= 2
	}

	return nil, errors.New("unreachable retry loop")
}

func (c *client) doOnce(ctx context.Context, method, path string, form url.Values) (*http.Response, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, err
	}

	raw, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return resp, nil, readErr
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		he := &HTTPError{StatusCode: resp.StatusCode, Body: string(raw)}
		var ae apiError
		if json.Unmarshal(raw, &ae) == nil {
			he.Message = ae.Error.Message
		}
		return resp, raw, he
	}

	return resp, raw, nil
}
