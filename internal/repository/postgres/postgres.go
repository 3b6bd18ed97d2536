package postgres

import (
	"database/sql"

	"hotelops-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.TransactionRepository
	repository.ReservationRepository
	repository.RoomRepository
	repository.CustomerRepository
	repository.StaffRepository
	repository.FinanceRepository
	repository.AnalysisReportRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                       db,
		TransactionRepository:    NewTransactionRepository(db),
		ReservationRepository:    NewReservationRepository(db),
		RoomRepository:           NewRoomRepository(db),
		CustomerRepository:       NewCustomerRepository(db),
		StaffRepository:          NewStaffRepository(db),
		FinanceRepository:        NewFinanceRepository(db),
		AnalysisReportRepository: NewAnalysisReportRepository(db),
	}
}
