package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"hotelops-backend/internal/domain"
	"hotelops-backend/internal/repository"
)

type analysisReportRepository struct {
	db *sql.DB
}

func NewAnalysisReportRepository(db *sql.DB) repository.AnalysisReportRepository {
	return &analysisReportRepository{db: db}
}

func (r *analysisReportRepository) Save(ctx context.Context, report *domain.AnalysisReport) error {
	payload, err := json.Marshal(report.Result)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis result: %w", err)
	}
	query := `INSERT INTO analysis_reports (kind, generated_at, result)
	          VALUES ($1, $2, $3) RETURNING id`
	return r.db.QueryRowContext(ctx, query, report.Kind, report.GeneratedAt, payload).Scan(&report.ID)
}

func (r *analysisReportRepository) GetLatest(ctx context.Context, kind domain.AnalysisReportKind) (*domain.AnalysisReport, error) {
	query := `SELECT id, kind, generated_at, result
	          FROM analysis_reports WHERE kind = $1
	          ORDER BY generated_at DESC LIMIT 1`
	var report domain.AnalysisReport
	var payload []byte
	err := r.db.QueryRowContext(ctx, query, kind).Scan(&report.ID, &report.Kind, &report.GeneratedAt, &payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("no %s analysis report stored", kind)
		}
		return nil, err
	}
	if err := json.Unmarshal(payload, &report.Result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis result: %w", err)
	}
	return &report, nil
}
