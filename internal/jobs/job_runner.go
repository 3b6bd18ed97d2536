package jobs

import (
	"hotelops-backend/internal/config"
	"hotelops-backend/internal/logger"
	"hotelops-backend/internal/service"
)

// JobRunner coordinates the scheduled report jobs.
type JobRunner struct {
	analysis service.AnalysisService
	config   *config.Config
}

func NewJobRunner(analysis service.AnalysisService, cfg *config.Config) *JobRunner {
	return &JobRunner{analysis: analysis, config: cfg}
}

// Config exposes the configuration for schedule registration.
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery so a failing job
// cannot take the scheduler down.
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllJobs runs every scheduled job once (for manual execution).
func (jr *JobRunner) RunAllJobs() {
	jr.GenerateDailyAnalysisReport()
	jr.GenerateWeeklyAiReport()
}
