package postgres

import (
	"context"
	"database/sql"

	"hotelops-backend/internal/domain"
	"hotelops-backend/internal/repository"
)

type transactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Append(ctx context.Context, tx *domain.Transaction) error {
	query := `INSERT INTO transactions (date, description, category, amount, reservation_id)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query, tx.Date, tx.Description, tx.Category, tx.Amount, tx.ReservationID).Scan(&tx.ID)
}

func (r *transactionRepository) ListByReservation(ctx context.Context, reservationID int64) ([]domain.Transaction, error) {
	query := `SELECT id, date, COALESCE(description, ''), category, amount, reservation_id
	          FROM transactions WHERE reservation_id = $1 ORDER BY date, id`
	rows, err := r.db.QueryContext(ctx, query, reservationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTransactions(rows)
}

func (r *transactionRepository) List(ctx context.Context) ([]domain.Transaction, error) {
	query := `SELECT id, date, COALESCE(description, ''), category, amount, reservation_id
	          FROM transactions ORDER BY date DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTransactions(rows)
}

func scanTransactions(rows *sql.Rows) ([]domain.Transaction, error) {
	var txs []domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		if err := rows.Scan(&tx.ID, &tx.Date, &tx.Description, &tx.Category, &tx.Amount, &tx.ReservationID); err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}
