package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/kuzanag1/strandly-backend/internal/http/handlers"
	httpMW "github.com/kuzanag1/strandly-backend/internal/http/middleware"
	"github.com/kuzanag1/strandly-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	QuizHandler     *httpH.QuizHandler
	PaymentHandler  *httpH.PaymentHandler
	WebhookHandler  *httpH.WebhookHandler
	AnalysisHandler *httpH.AnalysisHandler

	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.Default()
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS())

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		if cfg.QuizHandler != nil {
			api.POST("/quiz/submit", cfg.QuizHandler.Submit)
		}

		if cfg.PaymentHandler != nil {
			api.POST("/payment/create-checkout", cfg.PaymentHandler.CreateCheckout)
		}

		// Signature-verified; stays outside any auth or body-rewriting middleware.
		if cfg.WebhookHandler != nil {
			api.POST("/stripe/webhook", cfg.WebhookHandler.HandleStripe)
		}

		if cfg.AnalysisHandler != nil {
			api.GET("/analysis/:id", cfg.AnalysisHandler.Get)
		}
	}

	return r
}
