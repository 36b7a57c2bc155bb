package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kuzanag1/strandly-backend/internal/http/response"
	"github.com/kuzanag1/strandly-backend/internal/services"
)

type QuizHandler struct {
	quiz services.QuizService
}

func NewQuizHandler(quiz services.QuizService) *QuizHandler {
	return &QuizHandler{quiz: quiz}
}

type submitQuizRequest struct {
	Email   string         `json:"email" binding:"required,email"`
	Answers map[string]any `json:"answers" binding:"required"`
}

func (h *QuizHandler) Submit(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, 1<<20)

	var req submitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	row, err := h.quiz.Submit(c.Request.Context(), req.Email, req.Answers)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "quiz_submit_failed", err)
		return
	}

	response.RespondOK(c, gin.H{
		"quiz_id":         row.ID.String(),
		"payment_status":  row.PaymentStatus,
		"analysis_status": row.AnalysisStatus,
	})
}
