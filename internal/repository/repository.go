package repository

import (
	"context"

	"hotelops-backend/internal/domain"
)

type TransactionRepository interface {
	// Append records a new transaction. When ReservationID is set the entry is
	// correlated to that reservation's folio.
	Append(ctx context.Context, tx *domain.Transaction) error
	// ListByReservation returns the reservation's transactions in one
	// consistent read.
	ListByReservation(ctx context.Context, reservationID int64) ([]domain.Transaction, error)
	List(ctx context.Context) ([]domain.Transaction, error)
}

type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	// ListCheckoutCandidates returns active reservations plus reservations
	// checked out today, the population of the checkout screen.
	ListCheckoutCandidates(ctx context.Context) ([]domain.Reservation, error)
	CountByStatus(ctx context.Context) (map[domain.ReservationStatus]int, error)
	// FinalizeCheckout atomically rechecks the folio balance and, when
	// settled, transitions the reservation to CHECKED_OUT and the room to
	// CLEANING inside a single database transaction. Concurrent calls for the
	// same reservation resolve to at most one COMPLETED outcome.
	FinalizeCheckout(ctx context.Context, reservationID int64) (domain.CheckoutResult, error)
}

type RoomRepository interface {
	GetStats(ctx context.Context) (domain.RoomStats, error)
}

type CustomerRepository interface {
	Count(ctx context.Context) (int, error)
}

type StaffRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.Staff, error)
	GetStats(ctx context.Context) (domain.StaffStats, error)
}

type FinanceRepository interface {
	// GetTotals returns overall revenue and expense. Expenses are stored as
	// negative amounts in the transaction log; the total is returned positive.
	GetTotals(ctx context.Context) (revenue, expense float64, err error)
	GetExpenseBreakdown(ctx context.Context) (map[string]float64, error)
	// GetMonthlyRevenue and GetMonthlyExpense return the current and previous
	// calendar month totals for trend computation.
	GetMonthlyRevenue(ctx context.Context) (current, last float64, err error)
	GetMonthlyExpense(ctx context.Context) (current, last float64, err error)
}

type AnalysisReportRepository interface {
	Save(ctx context.Context, report *domain.AnalysisReport) error
	GetLatest(ctx context.Context, kind domain.AnalysisReportKind) (*domain.AnalysisReport, error)
}
