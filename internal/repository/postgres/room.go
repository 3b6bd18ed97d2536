package postgres

import (
	"context"
	"database/sql"

	"hotelops-backend/internal/domain"
	"hotelops-backend/internal/repository"
)

type roomRepository struct {
	db *sql.DB
}

func NewRoomRepository(db *sql.DB) repository.RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) GetStats(ctx context.Context) (domain.RoomStats, error) {
	query := `SELECT
	            COUNT(*),
	            COUNT(*) FILTER (WHERE status = 'AVAILABLE'),
	            COUNT(*) FILTER (WHERE status = 'OCCUPIED'),
	            COUNT(*) FILTER (WHERE status = 'CLEANING'),
	            COUNT(*) FILTER (WHERE status = 'MAINTENANCE')
	          FROM rooms`
	var stats domain.RoomStats
	err := r.db.QueryRowContext(ctx, query).Scan(
		&stats.Total, &stats.Available, &stats.Occupied, &stats.Cleaning, &stats.Maintenance)
	return stats, err
}
