package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/emilianoibarrat-bit/Fintal-Movil-3/internal/brain"
	"github.com/emilianoibarrat-bit/Fintal-Movil-3/internal/config"
	"github.com/emilianoibarrat-bit/Fintal-Movil-3/internal/handlers"
	"github.com/emilianoibarrat-bit/Fintal-Movil-3/internal/middleware"
	"github.com/emilianoibarrat-bit/Fintal-Movil-3/internal/notify"
	"github.com/emilianoibarrat-bit/Fintal-Movil-3/internal/store"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	logger := log.New(os.Stdout, "fintal: ", log.LstdFlags|log.Lshortfile)

	// Initialize application state
	notifier := notify.New(notify.DefaultTTL)
	repo := store.NewRepository(notifier)

	// Initialize the text-generation collaborator
	var gen brain.Generator
	if cfg.GeminiAPIKey != "" {
		gemini, err := brain.NewGemini(context.Background(), cfg.GeminiAPIKey)
		if err != nil {
			logger.Fatalf("Gemini initialization error: %v", err)
		}
		gen = gemini
	} else {
		logger.Printf("GEMINI_API_KEY not set, AI advisory runs in degraded mode")
		gen = brain.Unavailable{}
	}

	// Start periodic session cleanup
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if removed := repo.CleanExpiredSessions(); removed > 0 {
				logger.Printf("expired sessions removed: %d", removed)
			}
		}
	}()

	// Create handlers
	authHandler := handlers.NewAuthHandler(repo, logger)
	navHandler := handlers.NewNavHandler(repo, logger)
	postHandler := handlers.NewPostHandler(repo, logger)
	commentHandler := handlers.NewCommentHandler(repo, logger)
	likeHandler := handlers.NewLikeHandler(repo, logger)
	ledgerHandler := handlers.NewLedgerHandler(repo, logger)
	advisorHandler := handlers.NewAdvisorHandler(repo, logger)
	profileHandler := handlers.NewProfileHandler(repo, logger)
	notificationsHandler := handlers.NewNotificationsHandler(repo, logger)
	assistantHandler := handlers.NewAssistantHandler(repo, gen, logger)

	// Set up routes
	router := mux.NewRouter()
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.MetricsMiddleware())

	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy"}`))
	}).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/signup", authHandler.Signup).Methods(http.MethodPost)
	api.HandleFunc("/auth/faceid", authHandler.FaceID).Methods(http.MethodPost)
	api.HandleFunc("/nav", navHandler.Current).Methods(http.MethodGet)
	api.HandleFunc("/nav", navHandler.Request).Methods(http.MethodPost)
	api.HandleFunc("/feed", postHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/profile", profileHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/notification", notificationsHandler.Current).Methods(http.MethodGet)

	private := api.NewRoute().Subrouter()
	private.Use(middleware.AuthMiddleware(repo, logger))
	private.HandleFunc("/feed", postHandler.Create).Methods(http.MethodPost)
	private.HandleFunc("/feed/comments", commentHandler.Add).Methods(http.MethodPost)
	private.HandleFunc("/feed/like", likeHandler.Like).Methods(http.MethodPost)
	private.HandleFunc("/feed/share", likeHandler.Share).Methods(http.MethodPost)
	private.HandleFunc("/ledger", ledgerHandler.List).Methods(http.MethodGet)
	private.HandleFunc("/ledger", ledgerHandler.Create).Methods(http.MethodPost)
	private.HandleFunc("/ledger/trend", ledgerHandler.Trend).Methods(http.MethodGet)
	private.HandleFunc("/ledger/recurring", ledgerHandler.Recurring).Methods(http.MethodGet)
	private.HandleFunc("/ledger/report", ledgerHandler.Report).Methods(http.MethodPost)
	private.HandleFunc("/ledger/{id}", ledgerHandler.Delete).Methods(http.MethodDelete)
	private.HandleFunc("/advisors", advisorHandler.List).Methods(http.MethodGet)
	private.HandleFunc("/advisors/appointments", advisorHandler.Appointment).Methods(http.MethodPost)
	private.HandleFunc("/profile", profileHandler.Update).Methods(http.MethodPut)
	private.HandleFunc("/assistant", assistantHandler.Chat).Methods(http.MethodPost)
	private.HandleFunc("/panel/advice", assistantHandler.Advice).Methods(http.MethodGet)
	private.HandleFunc("/panel/strategy", assistantHandler.Strategy).Methods(http.MethodGet)

	// Start server
	logger.Printf("Server started at http://localhost:%s", cfg.Port)

	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		logger.Fatalf("Server start error: %v", err)
	}
}
