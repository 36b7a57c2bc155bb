package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kuzanag1/strandly-backend/internal/http/response"
	"github.com/kuzanag1/strandly-backend/internal/services"
)

type PaymentHandler struct {
	checkout services.CheckoutService
}

func NewPaymentHandler(checkout services.CheckoutService) *PaymentHandler {
	return &PaymentHandler{checkout: checkout}
}

type createCheckoutRequest struct {
	QuizID string `json:"quiz_id" binding:"required"`
	Email  string `json:"email" binding:"omitempty,email"`
}

func (h *PaymentHandler) CreateCheckout(c *gin.Context) {
	var req createCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	quizID, err := uuid.Parse(req.QuizID)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_quiz_id", err)
		return
	}

	session, err := h.checkout.CreateSession(c.Request.Context(), quizID, req.Email)
	if err != nil {
		if errors.Is(err, services.ErrSubmissionNotFound) {
			response.RespondError(c, http.StatusNotFound, "quiz_not_found", err)
			return
		}
		response.RespondError(c, http.StatusInternalServerError, "checkout_failed", err)
		return
	}

	response.RespondOK(c, gin.H{
		"session_id":   session.ID,
		"checkout_url": session.URL,
	})
}
