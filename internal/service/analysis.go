package service

import (
	"context"
	"time"

	"hotelops-backend/internal/analysis"
	"hotelops-backend/internal/domain"
	"hotelops-backend/internal/logger"
	"hotelops-backend/internal/repository"
)

type analysisService struct {
	snapshots  SnapshotService
	rules      analysis.Analyzer
	remote     analysis.Analyzer
	reportRepo repository.AnalysisReportRepository
}

// NewAnalysisService wires the two analysis strategies. The rules analyzer is
// the deterministic engine; the remote analyzer already carries its own
// fallback, so both paths always yield a result for a valid snapshot.
func NewAnalysisService(
	snapshots SnapshotService,
	rules analysis.Analyzer,
	remote analysis.Analyzer,
	reportRepo repository.AnalysisReportRepository,
) AnalysisService {
	return &analysisService{
		snapshots:  snapshots,
		rules:      rules,
		remote:     remote,
		reportRepo: reportRepo,
	}
}

func (s *analysisService) AnalyzeWithRules(ctx context.Context) (domain.AnalysisResult, error) {
	snap, err := s.snapshots.GetComprehensiveSnapshot(ctx)
	if err != nil {
		return domain.AnalysisResult{}, err
	}
	return s.rules.Analyze(ctx, snap)
}

func (s *analysisService) AnalyzeWithAI(ctx context.Context) (domain.AnalysisResult, error) {
	snap, err := s.snapshots.GetComprehensiveSnapshot(ctx)
	if err != nil {
		return domain.AnalysisResult{}, err
	}
	return s.remote.Analyze(ctx, snap)
}

func (s *analysisService) GenerateReport(ctx context.Context, kind domain.AnalysisReportKind) (*domain.AnalysisReport, error) {
	var (
		result domain.AnalysisResult
		err    error
	)
	switch kind {
	case domain.ReportKindAI:
		result, err = s.AnalyzeWithAI(ctx)
	default:
		result, err = s.AnalyzeWithRules(ctx)
	}
	if err != nil {
		return nil, err
	}

	report := &domain.AnalysisReport{
		Kind:        kind,
		GeneratedAt: time.Now().UTC(),
		Result:      result,
	}
	if err := s.reportRepo.Save(ctx, report); err != nil {
		return nil, err
	}
	logger.Info("analysis report generated",
		"kind", string(kind),
		"report_id", report.ID,
		"score", result.Score)
	return report, nil
}

func (s *analysisService) GetLatestReport(ctx context.Context, kind domain.AnalysisReportKind) (*domain.AnalysisReport, error) {
	return s.reportRepo.GetLatest(ctx, kind)
}
