package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kuzanag1/strandly-backend/internal/http/response"
	"github.com/kuzanag1/strandly-backend/internal/platform/logger"
	"github.com/kuzanag1/strandly-backend/internal/platform/stripe"
	"github.com/kuzanag1/strandly-backend/internal/services"
)

type WebhookHandler struct {
	log    *logger.Logger
	stripe stripe.Client
	events services.PaymentEventService
}

func NewWebhookHandler(log *logger.Logger, sc stripe.Client, events services.PaymentEventService) *WebhookHandler {
	return &WebhookHandler{
		log:    log.With("handler", "WebhookHandler"),
		stripe: sc,
		events: events,
	}
}

// HandleStripe verifies the signed payload before any parsing and processes
// checkout completions. Unknown event types acknowledge with 200 so the
// processor stops retrying them.
func (h *WebhookHandler) HandleStripe(c *gin.Context) {
	if h.stripe == nil {
		response.RespondError(c, http.StatusServiceUnavailable, "payments_unconfigured", nil)
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, 1<<20)
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	event, err := h.stripe.VerifyWebhook(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		if errors.Is(err, stripe.ErrInvalidSignature) {
			response.RespondError(c, http.StatusBadRequest, "invalid_signature", err)
			return
		}
		response.RespondError(c, http.StatusBadRequest, "invalid_event", err)
		return
	}

	if event.Type == stripe.EventCheckoutSessionCompleted {
		session, err := event.Session()
		if err != nil {
			response.RespondError(c, http.StatusBadRequest, "invalid_event", err)
			return
		}
		if err := h.events.HandleCheckoutCompleted(c.Request.Context(), session); err != nil {
			// 5xx makes the processor redeliver; the pipeline dedupes replays.
			h.log.Error("Checkout completion failed", "event_id", event.ID, "error", err.Error())
			response.RespondError(c, http.StatusInternalServerError, "processing_failed", err)
			return
		}
	} else {
		h.log.Debug("Ignoring webhook event", "event_type", event.Type)
	}

	response.RespondOK(c, gin.H{"received": true})
}
