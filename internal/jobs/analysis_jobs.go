package jobs

import (
	"context"
	"time"

	"hotelops-backend/internal/domain"
	"hotelops-backend/internal/logger"
)

// GenerateDailyAnalysisReport runs the rule engine over a fresh snapshot and
// persists the result so the dashboard can serve the last report cheaply.
func (jr *JobRunner) GenerateDailyAnalysisReport() {
	jr.runWithRecovery("GenerateDailyAnalysisReport", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		report, err := jr.analysis.GenerateReport(ctx, domain.ReportKindRules)
		if err != nil {
			logger.Error("Failed to generate daily analysis report", "error", err)
			return
		}
		logger.Info("Daily analysis report stored",
			"report_id", report.ID,
			"score", report.Result.Score)
	})
}

// GenerateWeeklyAiReport runs the remote analyzer and persists the result. A
// remote outage degrades to the fallback analysis, so the report is always
// written unless the snapshot itself cannot be read.
func (jr *JobRunner) GenerateWeeklyAiReport() {
	jr.runWithRecovery("GenerateWeeklyAiReport", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		report, err := jr.analysis.GenerateReport(ctx, domain.ReportKindAI)
		if err != nil {
			logger.Error("Failed to generate weekly AI report", "error", err)
			return
		}
		logger.Info("Weekly AI report stored",
			"report_id", report.ID,
			"score", report.Result.Score)
	})
}
