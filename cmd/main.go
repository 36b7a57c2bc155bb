package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/kuzanag1/strandly-backend/internal/analysis"
	"github.com/kuzanag1/strandly-backend/internal/catalog"
	goredis "github.com/kuzanag1/strandly-backend/internal/clients/redis"
	"github.com/kuzanag1/strandly-backend/internal/data/db"
	"github.com/kuzanag1/strandly-backend/internal/data/repos"
	httpapi "github.com/kuzanag1/strandly-backend/internal/http"
	httpH "github.com/kuzanag1/strandly-backend/internal/http/handlers"
	"github.com/kuzanag1/strandly-backend/internal/platform/envutil"
	"github.com/kuzanag1/strandly-backend/internal/platform/logger"
	"github.com/kuzanag1/strandly-backend/internal/platform/resend"
	"github.com/kuzanag1/strandly-backend/internal/platform/stripe"
	"github.com/kuzanag1/strandly-backend/internal/recommend"
	"github.com/kuzanag1/strandly-backend/internal/services"
)

func main() {
	// Logger
	logMode := envutil.Str("LOG_MODE", "development")
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Analysis engine config
	scoringPath := os.Getenv("ANALYSIS_SCORING_CONFIG")
	scoring, err := analysis.LoadScoringConfig(scoringPath)
	if err != nil {
		log.Fatal("Invalid scoring config", "path", scoringPath, "error", err)
	}
	cat, err := catalog.Load()
	if err != nil {
		log.Fatal("Catalog failed validation", "error", err)
	}
	log.Info("Catalog loaded", "version", catalog.Version, "products", len(cat.Products))

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Fatal("Postgres init failed", "error", err)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Fatal("Postgres auto migration failed", "error", err)
	}
	thePG := postgresService.DB()

	// Repos
	log.Info("Setting up Repos from main...")
	submissionRepo := repos.NewSubmissionRepo(thePG, log)

	// Redis lock (best effort; pipeline falls back to the DB status guard)
	var locker goredis.Locker
	if os.Getenv("REDIS_ADDR") != "" {
		locker, err = goredis.NewLocker(log)
		if err != nil {
			log.Warn("Redis locker unavailable", "error", err)
			locker = nil
		} else {
			defer locker.Close()
		}
	}

	// External clients
	stripeClient, err := stripe.NewFromEnv(log)
	if err != nil {
		log.Warn("Stripe client unavailable, payments disabled", "error", err)
		stripeClient = nil
	}
	resendClient, err := resend.NewFromEnv(log)
	if err != nil {
		log.Warn("Resend client unavailable, report emails disabled", "error", err)
		resendClient = nil
	}

	// Services
	log.Info("Setting up Services from main...")
	analysisService := services.NewAnalysisService(log, cat, scoring, recommend.Options{
		MaxPerCategory: envutil.Int("RECOMMEND_MAX_PER_CATEGORY", recommend.DefaultMaxPerCategory),
	})
	quizService := services.NewQuizService(thePG, log, submissionRepo)
	checkoutService := services.NewCheckoutService(log, submissionRepo, stripeClient)
	deliveryService := services.NewDeliveryService(log, resendClient)
	paymentEventService := services.NewPaymentEventService(log, submissionRepo, analysisService, deliveryService, locker)

	// Handlers
	log.Info("Setting up handlers from main...")
	quizHandler := httpH.NewQuizHandler(quizService)
	paymentHandler := httpH.NewPaymentHandler(checkoutService)
	webhookHandler := httpH.NewWebhookHandler(log, stripeClient, paymentEventService)
	analysisHandler := httpH.NewAnalysisHandler(quizService)
	healthHandler := httpH.NewHealthHandler(thePG)

	// Router
	log.Info("Setting up router from main...")
	router := httpapi.NewRouter(httpapi.RouterConfig{
		Log:             log,
		QuizHandler:     quizHandler,
		PaymentHandler:  paymentHandler,
		WebhookHandler:  webhookHandler,
		AnalysisHandler: analysisHandler,
		HealthHandler:   healthHandler,
	})

	port := envutil.Str("PORT", "8080")
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("Server listening", "port", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("Server exited", "error", err)
		os.Exit(1)
	}
	log.Info("Server stopped")
}
