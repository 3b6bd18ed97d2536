package service

import (
	"context"
	"fmt"
	"time"

	"hotelops-backend/internal/domain"
	"hotelops-backend/internal/logger"
	"hotelops-backend/internal/repository"
)

type checkoutService struct {
	reservationRepo repository.ReservationRepository
	transactionRepo repository.TransactionRepository
}

func NewCheckoutService(
	reservationRepo repository.ReservationRepository,
	transactionRepo repository.TransactionRepository,
) CheckoutService {
	return &checkoutService{
		reservationRepo: reservationRepo,
		transactionRepo: transactionRepo,
	}
}

func (s *checkoutService) ListCheckouts(ctx context.Context) ([]CheckoutRow, error) {
	reservations, err := s.reservationRepo.ListCheckoutCandidates(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]CheckoutRow, 0, len(reservations))
	for _, res := range reservations {
		txs, err := s.transactionRepo.ListByReservation(ctx, res.ID)
		if err != nil {
			return nil, err
		}
		folio := domain.BuildFolio(res.ID, res.RoomCharge, txs)
		rows = append(rows, CheckoutRow{
			Reservation:   res,
			Folio:         folio,
			DisplayStatus: domain.DeriveDisplayStatus(res.Status, folio.Remaining()),
		})
	}
	return rows, nil
}

func (s *checkoutService) FinalizeCheckout(ctx context.Context, reservationID int64) (domain.CheckoutResult, error) {
	result, err := s.reservationRepo.FinalizeCheckout(ctx, reservationID)
	if err != nil {
		return result, err
	}
	logger.Info("checkout finalized",
		"reservation_id", reservationID,
		"outcome", string(result.Outcome),
		"remaining", result.Remaining)
	return result, nil
}

// RecordPayment appends a Tahsilat entry for the reservation and then attempts
// the checkout. The finalize call rereads the folio inside its own transaction,
// so a concurrent payment cannot be double counted.
func (s *checkoutService) RecordPayment(ctx context.Context, reservationID int64, amount float64, description string) (domain.CheckoutResult, error) {
	if amount <= 0 {
		return domain.CheckoutResult{ReservationID: reservationID}, fmt.Errorf("payment amount must be positive")
	}

	res, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return domain.CheckoutResult{ReservationID: reservationID}, err
	}
	if res.Status.IsTerminal() {
		return domain.CheckoutResult{
			ReservationID: reservationID,
			Outcome:       domain.CheckoutAlreadyCompleted,
		}, nil
	}

	if description == "" {
		description = fmt.Sprintf("Payment %s %s", res.GuestName, domain.CorrelationTag(reservationID))
	}
	tx := &domain.Transaction{
		Date:          time.Now().UTC(),
		Description:   description,
		Category:      domain.CategoryPayment,
		Amount:        amount,
		ReservationID: &reservationID,
	}
	if err := s.transactionRepo.Append(ctx, tx); err != nil {
		return domain.CheckoutResult{ReservationID: reservationID}, err
	}

	return s.FinalizeCheckout(ctx, reservationID)
}
