package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"hotelops-backend/internal/domain"
	"hotelops-backend/internal/repository"
)

type staffRepository struct {
	db *sql.DB
}

func NewStaffRepository(db *sql.DB) repository.StaffRepository {
	return &staffRepository{db: db}
}

func (r *staffRepository) GetByUsername(ctx context.Context, username string) (*domain.Staff, error) {
	query := `SELECT id, name, department, username, password_hash, role
	          FROM staff WHERE username = $1`
	var s domain.Staff
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&s.ID, &s.Name, &s.Department, &s.Username, &s.PasswordHash, &s.Role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("staff %q not found", username)
		}
		return nil, err
	}
	return &s, nil
}

func (r *staffRepository) GetStats(ctx context.Context) (domain.StaffStats, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT department, COUNT(*) FROM staff GROUP BY department ORDER BY department`)
	if err != nil {
		return domain.StaffStats{}, err
	}
	defer rows.Close()

	var stats domain.StaffStats
	var parts []string
	for rows.Next() {
		var dept string
		var count int
		if err := rows.Scan(&dept, &count); err != nil {
			return domain.StaffStats{}, err
		}
		stats.Total += count
		parts = append(parts, fmt.Sprintf("%s: %d", dept, count))
	}
	if err := rows.Err(); err != nil {
		return domain.StaffStats{}, err
	}
	stats.ByDepartment = strings.Join(parts, ", ")
	return stats, nil
}
