package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hotelops-backend/internal/domain"
	"hotelops-backend/internal/repository"
)

type reservationRepository struct {
	db *sql.DB
}

func NewReservationRepository(db *sql.DB) repository.ReservationRepository {
	return &reservationRepository{db: db}
}

const reservationColumns = `id, customer_id, COALESCE(guest_name, ''), room_no, check_in, check_out, room_charge, guests, status`

func (r *reservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`
	res, err := scanReservation(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("reservation %d not found", id)
		}
		return nil, err
	}
	return res, nil
}

func (r *reservationRepository) ListCheckoutCandidates(ctx context.Context) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
	          FROM reservations
	          WHERE status IN ('CONFIRMED', 'CHECKED_IN', 'PENDING')
	             OR (status = 'CHECKED_OUT' AND check_out >= CURRENT_DATE)
	          ORDER BY check_out, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reservations []domain.Reservation
	for rows.Next() {
		var res domain.Reservation
		if err := rows.Scan(&res.ID, &res.CustomerID, &res.GuestName, &res.RoomNo,
			&res.CheckIn, &res.CheckOut, &res.RoomCharge, &res.Guests, &res.Status); err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}

func (r *reservationRepository) CountByStatus(ctx context.Context) (map[domain.ReservationStatus]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM reservations GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.ReservationStatus]int)
	for rows.Next() {
		var status domain.ReservationStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

// FinalizeCheckout transitions a settled reservation to CHECKED_OUT and marks
// its room for cleaning. The row lock on the reservation serializes concurrent
// attempts so only the first settled call reports COMPLETED.
func (r *reservationRepository) FinalizeCheckout(ctx context.Context, reservationID int64) (domain.CheckoutResult, error) {
	result := domain.CheckoutResult{ReservationID: reservationID}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return result, fmt.Errorf("failed to begin checkout transaction: %w", err)
	}
	defer tx.Rollback()

	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1 FOR UPDATE`
	res, err := scanReservation(tx.QueryRowContext(ctx, query, reservationID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return result, fmt.Errorf("reservation %d not found", reservationID)
		}
		return result, err
	}

	if res.Status == domain.ReservationStatusCheckedOut {
		result.Outcome = domain.CheckoutAlreadyCompleted
		return result, tx.Commit()
	}

	txQuery := `SELECT id, date, COALESCE(description, ''), category, amount, reservation_id
	            FROM transactions WHERE reservation_id = $1 ORDER BY date, id`
	rows, err := tx.QueryContext(ctx, txQuery, reservationID)
	if err != nil {
		return result, err
	}
	txs, err := scanTransactions(rows)
	rows.Close()
	if err != nil {
		return result, err
	}

	folio := domain.BuildFolio(reservationID, res.RoomCharge, txs)
	result.Remaining = folio.Remaining()

	if !folio.Settled() {
		result.Outcome = domain.CheckoutBalanceOutstanding
		return result, tx.Commit()
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE reservations SET status = $1 WHERE id = $2`,
		domain.ReservationStatusCheckedOut, reservationID); err != nil {
		return result, fmt.Errorf("failed to update reservation status: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE rooms SET status = $1 WHERE room_no = $2`,
		domain.RoomStatusCleaning, res.RoomNo); err != nil {
		return result, fmt.Errorf("failed to update room status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return result, fmt.Errorf("failed to commit checkout: %w", err)
	}

	result.Outcome = domain.CheckoutCompleted
	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	err := row.Scan(&res.ID, &res.CustomerID, &res.GuestName, &res.RoomNo,
		&res.CheckIn, &res.CheckOut, &res.RoomCharge, &res.Guests, &res.Status)
	if err != nil {
		return nil, err
	}
	return &res, nil
}
