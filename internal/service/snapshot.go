package service

import (
	"context"

	"hotelops-backend/internal/domain"
	"hotelops-backend/internal/repository"
)

type snapshotService struct {
	financeRepo     repository.FinanceRepository
	roomRepo        repository.RoomRepository
	reservationRepo repository.ReservationRepository
	customerRepo    repository.CustomerRepository
	staffRepo       repository.StaffRepository
}

func NewSnapshotService(
	financeRepo repository.FinanceRepository,
	roomRepo repository.RoomRepository,
	reservationRepo repository.ReservationRepository,
	customerRepo repository.CustomerRepository,
	staffRepo repository.StaffRepository,
) SnapshotService {
	return &snapshotService{
		financeRepo:     financeRepo,
		roomRepo:        roomRepo,
		reservationRepo: reservationRepo,
		customerRepo:    customerRepo,
		staffRepo:       staffRepo,
	}
}

func (s *snapshotService) GetFinancialSnapshot(ctx context.Context) (domain.FinancialSnapshot, error) {
	var snap domain.FinancialSnapshot

	revenue, expense, err := s.financeRepo.GetTotals(ctx)
	if err != nil {
		return snap, err
	}
	snap.Revenue = revenue
	snap.Expense = expense

	breakdown, err := s.financeRepo.GetExpenseBreakdown(ctx)
	if err != nil {
		return snap, err
	}
	snap.ExpenseBreakdown = breakdown

	stats, err := s.roomRepo.GetStats(ctx)
	if err != nil {
		return snap, err
	}
	if stats.Total > 0 {
		snap.OccupancyRate = float64(stats.Occupied) / float64(stats.Total) * 100
	}

	curRev, lastRev, err := s.financeRepo.GetMonthlyRevenue(ctx)
	if err != nil {
		return snap, err
	}
	snap.RevenueChangePct = changePct(curRev, lastRev)

	curExp, lastExp, err := s.financeRepo.GetMonthlyExpense(ctx)
	if err != nil {
		return snap, err
	}
	snap.ExpenseChangePct = changePct(curExp, lastExp)

	return snap, nil
}

func (s *snapshotService) GetComprehensiveSnapshot(ctx context.Context) (domain.ComprehensiveSnapshot, error) {
	var snap domain.ComprehensiveSnapshot

	financial, err := s.GetFinancialSnapshot(ctx)
	if err != nil {
		return snap, err
	}
	snap.Financial = financial

	stats, err := s.roomRepo.GetStats(ctx)
	if err != nil {
		return snap, err
	}
	snap.TotalRooms = stats.Total
	snap.AvailableRooms = stats.Available
	snap.OccupiedRooms = stats.Occupied
	snap.CleaningRooms = stats.Cleaning
	snap.MaintenanceRooms = stats.Maintenance

	counts, err := s.reservationRepo.CountByStatus(ctx)
	if err != nil {
		return snap, err
	}
	snap.ActiveReservations = counts[domain.ReservationStatusConfirmed] + counts[domain.ReservationStatusCheckedIn]
	snap.PendingReservations = counts[domain.ReservationStatusPending]
	snap.CompletedReservations = counts[domain.ReservationStatusCheckedOut]

	customers, err := s.customerRepo.Count(ctx)
	if err != nil {
		return snap, err
	}
	snap.TotalCustomers = customers
	snap.ActiveCustomers = snap.ActiveReservations

	staffStats, err := s.staffRepo.GetStats(ctx)
	if err != nil {
		return snap, err
	}
	snap.TotalStaff = staffStats.Total
	snap.StaffByDepartment = staffStats.ByDepartment

	return snap, nil
}

// changePct returns the month-over-month change as a percentage of the previous
// month, or 0 when there is no previous month to compare against.
func changePct(current, last float64) float64 {
	if last <= 0 {
		return 0
	}
	return (current - last) / last * 100
}
