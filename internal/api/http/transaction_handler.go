package http

import (
	"encoding/json"
	"net/http"
	"time"

	"hotelops-backend/internal/domain"
	"hotelops-backend/internal/service"
)

type TransactionHandler struct {
	folios service.FolioService
}

func NewTransactionHandler(folios service.FolioService) *TransactionHandler {
	return &TransactionHandler{folios: folios}
}

// List returns the full transaction log, newest first.
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	txs, err := h.folios.ListTransactions(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, txs)
}

type appendTransactionRequest struct {
	Date          *time.Time `json:"date"`
	Description   string     `json:"description"`
	Category      string     `json:"category"`
	Amount        float64    `json:"amount"`
	ReservationID *int64     `json:"reservation_id"`
}

// Append records a new transaction.
func (h *TransactionHandler) Append(w http.ResponseWriter, r *http.Request) {
	var req appendTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	date := time.Now().UTC()
	if req.Date != nil {
		date = *req.Date
	}
	tx := &domain.Transaction{
		Date:          date,
		Description:   req.Description,
		Category:      req.Category,
		Amount:        req.Amount,
		ReservationID: req.ReservationID,
	}
	if err := h.folios.AppendTransaction(r.Context(), tx); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, tx)
}
