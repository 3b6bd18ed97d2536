package domain

import "time"

// AnalysisReportKind distinguishes how a stored report was produced.
type AnalysisReportKind string

const (
	ReportKindRules AnalysisReportKind = "RULES"
	ReportKindAI    AnalysisReportKind = "AI"
)

// AnalysisReport is a persisted analysis run, written by the scheduled jobs so
// the dashboard can show the last report without recomputing.
type AnalysisReport struct {
	ID          int64              `json:"id"`
	Kind        AnalysisReportKind `json:"kind"`
	GeneratedAt time.Time          `json:"generated_at"`
	Result      AnalysisResult     `json:"result"`
}
