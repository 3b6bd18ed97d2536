package service

import (
	"context"
	"fmt"
	"strings"

	"hotelops-backend/internal/domain"
	"hotelops-backend/internal/repository"
)

type folioService struct {
	transactionRepo repository.TransactionRepository
	reservationRepo repository.ReservationRepository
}

func NewFolioService(
	transactionRepo repository.TransactionRepository,
	reservationRepo repository.ReservationRepository,
) FolioService {
	return &folioService{
		transactionRepo: transactionRepo,
		reservationRepo: reservationRepo,
	}
}

func (s *folioService) GetFolio(ctx context.Context, reservationID int64) (domain.Folio, error) {
	res, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return domain.Folio{}, err
	}
	txs, err := s.transactionRepo.ListByReservation(ctx, reservationID)
	if err != nil {
		return domain.Folio{}, err
	}
	return domain.BuildFolio(reservationID, res.RoomCharge, txs), nil
}

func (s *folioService) GetFolioDetail(ctx context.Context, reservationID int64) (*FolioDetail, error) {
	res, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	txs, err := s.transactionRepo.ListByReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	tag := domain.CorrelationTag(reservationID)
	lines := make([]InvoiceLine, 0, len(txs)+1)
	lines = append(lines, InvoiceLine{
		Description: fmt.Sprintf("Room charge (%d nights)", res.Nights()),
		Amount:      res.RoomCharge,
	})
	for _, tx := range txs {
		if tx.Category != domain.CategoryExtraCharge {
			continue
		}
		lines = append(lines, InvoiceLine{
			Description: strings.TrimSpace(strings.ReplaceAll(tx.Description, tag, "")),
			Amount:      tx.Amount,
		})
	}

	return &FolioDetail{
		Folio:       domain.BuildFolio(reservationID, res.RoomCharge, txs),
		Reservation: res,
		Lines:       lines,
	}, nil
}

func (s *folioService) AppendTransaction(ctx context.Context, tx *domain.Transaction) error {
	if tx.Category == "" {
		return fmt.Errorf("transaction category is required")
	}
	if tx.ReservationID != nil {
		if _, err := s.reservationRepo.GetByID(ctx, *tx.ReservationID); err != nil {
			return fmt.Errorf("invalid reservation reference: %w", err)
		}
	}
	return s.transactionRepo.Append(ctx, tx)
}

func (s *folioService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	return s.transactionRepo.List(ctx)
}
