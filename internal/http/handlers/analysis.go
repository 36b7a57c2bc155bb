package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kuzanag1/strandly-backend/internal/domain"
	"github.com/kuzanag1/strandly-backend/internal/http/response"
	"github.com/kuzanag1/strandly-backend/internal/services"
)

type AnalysisHandler struct {
	quiz services.QuizService
}

func NewAnalysisHandler(quiz services.QuizService) *AnalysisHandler {
	return &AnalysisHandler{quiz: quiz}
}

// Get returns the stored analysis for a paid submission. Before the pipeline
// finishes it reports the current status instead of a result.
func (h *AnalysisHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_quiz_id", err)
		return
	}

	row, err := h.quiz.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "lookup_failed", err)
		return
	}
	if row == nil {
		response.RespondError(c, http.StatusNotFound, "quiz_not_found", nil)
		return
	}

	if row.AnalysisStatus != domain.AnalysisStatusCompleted || len(row.Result) == 0 {
		response.RespondOK(c, gin.H{
			"quiz_id":         row.ID.String(),
			"payment_status":  row.PaymentStatus,
			"analysis_status": row.AnalysisStatus,
		})
		return
	}

	var result json.RawMessage = json.RawMessage(row.Result)
	response.RespondOK(c, gin.H{
		"quiz_id":         row.ID.String(),
		"analysis_status": row.AnalysisStatus,
		"result":          result,
	})
}
