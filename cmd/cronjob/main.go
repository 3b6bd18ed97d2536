package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"hotelops-backend/internal/analysis"
	"hotelops-backend/internal/config"
	"hotelops-backend/internal/gemini"
	"hotelops-backend/internal/jobs"
	"hotelops-backend/internal/logger"
	"hotelops-backend/internal/repository/postgres"
	"hotelops-backend/internal/scheduler"
	"hotelops-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'daily-analysis-report', 'weekly-ai-report', 'all')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting HotelOps Cronjob Runner...", "log_level", cfg.Log.Level)

	// Initialize Database
	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
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

	// Initialize Analyzers
	ruleAnalyzer := analysis.NewLocalRuleAnalyzer(analysis.NewEngine())
	fallbackAnalyzer := analysis.NewFallbackAnalyzer()
	var remoteAnalyzer analysis.Analyzer = fallbackAnalyzer
	if cfg.Gemini.Enabled() {
		client := gemini.NewClient(gemini.Config{
			APIKey:  cfg.Gemini.APIKey,
			BaseURL: cfg.Gemini.BaseURL,
			Model:   cfg.Gemini.Model,
			Timeout: cfg.Gemini.Timeout(),
		})
		remoteAnalyzer = analysis.NewRemoteAnalyzer(client, fallbackAnalyzer)
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

	// Initialize Job Runner
	jobRunner := jobs.NewJobRunner(analysisSvc, cfg)

	// Check if running a single job
	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		runJobOnce(jobRunner, *runOnce)
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	// Initialize Scheduler
	cronScheduler := scheduler.NewScheduler(jobRunner)

	// Start scheduler
	cronScheduler.Start()
	logger.Info("Cronjob scheduler is running. Press Ctrl+C to stop.")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down cronjob scheduler...")
	cronScheduler.Stop()
	logger.Info("Cronjob scheduler stopped. Goodbye!")
}

// runJobOnce runs a specific job once and exits
func runJobOnce(jobRunner *jobs.JobRunner, jobName string) {
	switch jobName {
	case "daily-analysis-report":
		jobRunner.GenerateDailyAnalysisReport()
	case "weekly-ai-report":
		jobRunner.GenerateWeeklyAiReport()
	case "all":
		jobRunner.RunAllJobs()
	default:
		logger.Error("Unknown job name", "job", jobName)
		fmt.Printf("Available jobs:\n")
		fmt.Printf("  - daily-analysis-report\n")
		fmt.Printf("  - weekly-ai-report\n")
		fmt.Printf("  - all\n")
		os.Exit(1)
	}
}
