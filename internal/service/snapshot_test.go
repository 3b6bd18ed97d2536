package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"hotelops-backend/internal/domain"
)

func newSnapshotFixture() (*MockFinanceRepo, *MockRoomRepo, *MockReservationRepo, *MockCustomerRepo, *MockStaffRepo, SnapshotService) {
	financeRepo := new(MockFinanceRepo)
	roomRepo := new(MockRoomRepo)
	resRepo := new(MockReservationRepo)
	customerRepo := new(MockCustomerRepo)
	staffRepo := new(MockStaffRepo)
	svc := NewSnapshotService(financeRepo, roomRepo, resRepo, customerRepo, staffRepo)
	return financeRepo, roomRepo, resRepo, customerRepo, staffRepo, svc
}

func TestSnapshotService_GetFinancialSnapshot(t *testing.T) {
	financeRepo, roomRepo, _, _, _, svc := newSnapshotFixture()
	ctx := context.Background()

	financeRepo.On("GetTotals", ctx).Return(150000.0, 90000.0, nil)
	financeRepo.On("GetExpenseBreakdown", ctx).Return(map[string]float64{"Energy": 18000}, nil)
	financeRepo.On("GetMonthlyRevenue", ctx).Return(50000.0, 40000.0, nil)
	financeRepo.On("GetMonthlyExpense", ctx).Return(30000.0, 30000.0, nil)
	roomRepo.On("GetStats", ctx).Return(domain.RoomStats{Total: 40, Occupied: 29}, nil)

	snap, err := svc.GetFinancialSnapshot(ctx)
	assert.NoError(t, err)
	assert.InDelta(t, 150000, snap.Revenue, 0.001)
	assert.InDelta(t, 90000, snap.Expense, 0.001)
	assert.InDelta(t, 72.5, snap.OccupancyRate, 0.001)
	assert.InDelta(t, 25, snap.RevenueChangePct, 0.001)
	assert.InDelta(t, 0, snap.ExpenseChangePct, 0.001)
	assert.Equal(t, map[string]float64{"Energy": 18000}, snap.ExpenseBreakdown)
}

func TestSnapshotService_NoPreviousMonth(t *testing.T) {
	financeRepo, roomRepo, _, _, _, svc := newSnapshotFixture()
	ctx := context.Background()

	financeRepo.On("GetTotals", ctx).Return(10000.0, 5000.0, nil)
	financeRepo.On("GetExpenseBreakdown", ctx).Return(map[string]float64{}, nil)
	financeRepo.On("GetMonthlyRevenue", ctx).Return(10000.0, 0.0, nil)
	financeRepo.On("GetMonthlyExpense", ctx).Return(5000.0, 0.0, nil)
	roomRepo.On("GetStats", ctx).Return(domain.RoomStats{}, nil)

	snap, err := svc.GetFinancialSnapshot(ctx)
	assert.NoError(t, err)
	assert.Zero(t, snap.RevenueChangePct)
	assert.Zero(t, snap.ExpenseChangePct)
	assert.Zero(t, snap.OccupancyRate)
}

func TestSnapshotService_GetComprehensiveSnapshot(t *testing.T) {
	financeRepo, roomRepo, resRepo, customerRepo, staffRepo, svc := newSnapshotFixture()
	ctx := context.Background()

	financeRepo.On("GetTotals", ctx).Return(150000.0, 90000.0, nil)
	financeRepo.On("GetExpenseBreakdown", ctx).Return(map[string]float64{}, nil)
	financeRepo.On("GetMonthlyRevenue", ctx).Return(0.0, 0.0, nil)
	financeRepo.On("GetMonthlyExpense", ctx).Return(0.0, 0.0, nil)
	roomRepo.On("GetStats", ctx).Return(domain.RoomStats{
		Total: 40, Available: 8, Occupied: 29, Cleaning: 2, Maintenance: 1,
	}, nil)
	resRepo.On("CountByStatus", ctx).Return(map[domain.ReservationStatus]int{
		domain.ReservationStatusConfirmed:  10,
		domain.ReservationStatusCheckedIn:  15,
		domain.ReservationStatusPending:    3,
		domain.ReservationStatusCheckedOut: 120,
	}, nil)
	customerRepo.On("Count", ctx).Return(80, nil)
	staffRepo.On("GetStats", ctx).Return(domain.StaffStats{
		Total: 12, ByDepartment: "Front Desk: 4, Housekeeping: 8",
	}, nil)

	snap, err := svc.GetComprehensiveSnapshot(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 40, snap.TotalRooms)
	assert.Equal(t, 25, snap.ActiveReservations)
	assert.Equal(t, 3, snap.PendingReservations)
	assert.Equal(t, 120, snap.CompletedReservations)
	assert.Equal(t, 80, snap.TotalCustomers)
	assert.Equal(t, 12, snap.TotalStaff)
	assert.Equal(t, "Front Desk: 4, Housekeeping: 8", snap.StaffByDepartment)
}
