package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"hotelops-backend/internal/analysis"
	httpapi "hotelops-backend/internal/api/http"
	"hotelops-backend/internal/config"
	"hotelops-backend/internal/gemini"
	"hotelops-backend/internal/jobs"
	"hotelops-backend/internal/logger"
	"hotelops-backend/internal/repository/postgres"
	"hotelops-backend/internal/scheduler"
	"hotelops-backend/internal/security"
	"hotelops-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting HotelOps Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.AccessTokenExpiry())

	// Initialize Analyzers
	ruleAnalyzer := analysis.NewLocalRuleAnalyzer(analysis.NewEngine())
	fallbackAnalyzer := analysis.NewFallbackAnalyzer()
	var remoteAnalyzer analysis.Analyzer
	if cfg.Gemini.Enabled() {
		client := gemini.NewClient(gemini.Config{
			APIKey:  cfg.Gemini.APIKey,
			BaseURL: cfg.Gemini.BaseURL,
			Model:   cfg.Gemini.Model,
			Timeout: cfg.Gemini.Timeout(),
		})
		remoteAnalyzer = analysis.NewRemoteAnalyzer(client, fallbackAnalyzer)
		logger.Info("Gemini analysis enabled", "model", cfg.Gemini.Model)
	} else {
		remoteAnalyzer = fallbackAnalyzer
		logger.Info("Gemini analysis disabled, using fallback analyzer")
	}

	// Initialize Services
	snapshotSvc := service.NewSnapshotService(
		store.FinanceRepository,
		store.RoomRepository,
		store.ReservationRepository,
		store.CustomerRepository,
		store.StaffRepository,
	)
	analysisSvc := service.NewAnalysisService(snapshotSvc, ruleAnalyzer, remoteAnalyzer, store.AnalysisReportRepository)
	folioSvc := service.NewFolioService(store.TransactionRepository, store.ReservationRepository)
	checkoutSvc := service.NewCheckoutService(store.ReservationRepository, store.TransactionRepository)
	authSvc := service.NewAuthService(store.StaffRepository, tokenManager)

	// Initialize HTTP router
	router := httpapi.NewRouter(httpapi.RouterConfig{
		Auth:      authSvc,
		Analysis:  analysisSvc,
		Snapshots: snapshotSvc,
		Checkouts: checkoutSvc,
		Folios:    folioSvc,
		Tokens:    tokenManager,
	})

	// Initialize Scheduler
	jobRunner := jobs.NewJobRunner(analysisSvc, cfg)
	cronScheduler := scheduler.NewScheduler(jobRunner)
	cronScheduler.Start()
	defer cronScheduler.Stop()

	// Start HTTP server
	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}
	logger.Info("Server stopped. Goodbye!")
}
