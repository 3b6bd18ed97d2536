package http

import (
	"net/http"
	"strings"

	"hotelops-backend/internal/domain"
	"hotelops-backend/internal/service"
)

type AnalysisHandler struct {
	analysis  service.AnalysisService
	snapshots service.SnapshotService
}

func NewAnalysisHandler(analysis service.AnalysisService, snapshots service.SnapshotService) *AnalysisHandler {
	return &AnalysisHandler{analysis: analysis, snapshots: snapshots}
}

// GetSnapshot returns the current financial snapshot.
func (h *AnalysisHandler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	snap, err := h.snapshots.GetFinancialSnapshot(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// AnalyzeRules runs the deterministic rule engine over a fresh snapshot.
func (h *AnalysisHandler) AnalyzeRules(w http.ResponseWriter, r *http.Request) {
	result, err := h.analysis.AnalyzeWithRules(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// AnalyzeAI runs the remote analyzer. A remote outage degrades to the fallback
// result, so this endpoint only fails when the snapshot itself cannot be read.
func (h *AnalysisHandler) AnalyzeAI(w http.ResponseWriter, r *http.Request) {
	result, err := h.analysis.AnalyzeWithAI(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// GetLatestReport returns the most recent stored report of the requested kind
// (?kind=rules|ai, default rules).
func (h *AnalysisHandler) GetLatestReport(w http.ResponseWriter, r *http.Request) {
	kind := domain.ReportKindRules
	if strings.EqualFold(r.URL.Query().Get("kind"), "ai") {
		kind = domain.ReportKindAI
	}
	report, err := h.analysis.GetLatestReport(r.Context(), kind)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, report)
}
