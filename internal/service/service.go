package service

import (
	"context"

	"hotelops-backend/internal/domain"
)

type AuthService interface {
	Login(ctx context.Context, username, password string) (string, *domain.Staff, error) // access token, staff
}

type SnapshotService interface {
	GetFinancialSnapshot(ctx context.Context) (domain.FinancialSnapshot, error)
	GetComprehensiveSnapshot(ctx context.Context) (domain.ComprehensiveSnapshot, error)
}

type AnalysisService interface {
	// AnalyzeWithRules runs the deterministic rule engine over a fresh snapshot.
	AnalyzeWithRules(ctx context.Context) (domain.AnalysisResult, error)
	// AnalyzeWithAI runs the remote analyzer, falling back to the heuristic
	// result when the remote service is unavailable. It never fails because of
	// a remote outage.
	AnalyzeWithAI(ctx context.Context) (domain.AnalysisResult, error)
	// GenerateReport runs the analysis of the given kind and persists it.
	GenerateReport(ctx context.Context, kind domain.AnalysisReportKind) (*domain.AnalysisReport, error)
	GetLatestReport(ctx context.Context, kind domain.AnalysisReportKind) (*domain.AnalysisReport, error)
}

type FolioService interface {
	// GetFolio reconciles a reservation's charges and payments from one
	// consistent read of its transactions.
	GetFolio(ctx context.Context, reservationID int64) (domain.Folio, error)
	// GetFolioDetail returns the folio together with its invoice lines.
	GetFolioDetail(ctx context.Context, reservationID int64) (*FolioDetail, error)
	AppendTransaction(ctx context.Context, tx *domain.Transaction) error
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}

type CheckoutService interface {
	// ListCheckouts returns the checkout screen rows: active reservations and
	// today's completed checkouts, each with its reconciled balance.
	ListCheckouts(ctx context.Context) ([]CheckoutRow, error)
	// FinalizeCheckout attempts the terminal transition for a reservation.
	FinalizeCheckout(ctx context.Context, reservationID int64) (domain.CheckoutResult, error)
	// RecordPayment appends a payment to the reservation's folio and finalizes
	// the checkout when the payment settles the balance.
	RecordPayment(ctx context.Context, reservationID int64, amount float64, description string) (domain.CheckoutResult, error)
}

// FolioDetail is the folio plus the individual invoice lines behind it.
type FolioDetail struct {
	Folio       domain.Folio        `json:"folio"`
	Reservation *domain.Reservation `json:"reservation"`
	Lines       []InvoiceLine       `json:"lines"`
}

// InvoiceLine is one display line of a folio invoice: the synthesized room
// charge followed by the extra charges, with the legacy correlation tag
// stripped from the description text.
type InvoiceLine struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// CheckoutRow is one row of the checkout screen.
type CheckoutRow struct {
	Reservation   domain.Reservation   `json:"reservation"`
	Folio         domain.Folio         `json:"folio"`
	DisplayStatus domain.DisplayStatus `json:"display_status"`
}
