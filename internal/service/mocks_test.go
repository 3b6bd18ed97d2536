package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"hotelops-backend/internal/domain"
)

// MockTransactionRepo
type MockTransactionRepo struct {
	mock.Mock
}

func (m *MockTransactionRepo) Append(ctx context.Context, tx *domain.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}
func (m *MockTransactionRepo) ListByReservation(ctx context.Context, reservationID int64) ([]domain.Transaction, error) {
	args := m.Called(ctx, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
func (m *MockTransactionRepo) List(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

// MockReservationRepo
type MockReservationRepo struct {
	mock.Mock
}

func (m *MockReservationRepo) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) ListCheckoutCandidates(ctx context.Context) ([]domain.Reservation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) CountByStatus(ctx context.Context) (map[domain.ReservationStatus]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.ReservationStatus]int), args.Error(1)
}
func (m *MockReservationRepo) FinalizeCheckout(ctx context.Context, reservationID int64) (domain.CheckoutResult, error) {
	args := m.Called(ctx, reservationID)
	return args.Get(0).(domain.CheckoutResult), args.Error(1)
}

// MockRoomRepo
type MockRoomRepo struct {
	mock.Mock
}

func (m *MockRoomRepo) GetStats(ctx context.Context) (domain.RoomStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.RoomStats), args.Error(1)
}

// MockCustomerRepo
type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockStaffRepo
type MockStaffRepo struct {
	mock.Mock
}

func (m *MockStaffRepo) GetByUsername(ctx context.Context, username string) (*domain.Staff, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Staff), args.Error(1)
}
func (m *MockStaffRepo) GetStats(ctx context.Context) (domain.StaffStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.StaffStats), args.Error(1)
}

// MockFinanceRepo
type MockFinanceRepo struct {
	mock.Mock
}

func (m *MockFinanceRepo) GetTotals(ctx context.Context) (float64, float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Get(1).(float64), args.Error(2)
}
func (m *MockFinanceRepo) GetExpenseBreakdown(ctx context.Context) (map[string]float64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]float64), args.Error(1)
}
func (m *MockFinanceRepo) GetMonthlyRevenue(ctx context.Context) (float64, float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Get(1).(float64), args.Error(2)
}
func (m *MockFinanceRepo) GetMonthlyExpense(ctx context.Context) (float64, float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Get(1).(float64), args.Error(2)
}

// MockAnalysisReportRepo
type MockAnalysisReportRepo struct {
	mock.Mock
}

func (m *MockAnalysisReportRepo) Save(ctx context.Context, report *domain.AnalysisReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}
func (m *MockAnalysisReportRepo) GetLatest(ctx context.Context, kind domain.AnalysisReportKind) (*domain.AnalysisReport, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnalysisReport), args.Error(1)
}
