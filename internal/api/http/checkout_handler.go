package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"hotelops-backend/internal/domain"
	"hotelops-backend/internal/service"
)

type CheckoutHandler struct {
	checkouts service.CheckoutService
	folios    service.FolioService
}

func NewCheckoutHandler(checkouts service.CheckoutService, folios service.FolioService) *CheckoutHandler {
	return &CheckoutHandler{checkouts: checkouts, folios: folios}
}

// List returns the checkout screen rows.
func (h *CheckoutHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.checkouts.ListCheckouts(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// GetFolio returns a reservation's reconciled folio with invoice lines.
func (h *CheckoutHandler) GetFolio(w http.ResponseWriter, r *http.Request) {
	id, err := reservationID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid reservation id")
		return
	}
	detail, err := h.folios.GetFolioDetail(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

type checkoutResponse struct {
	domain.CheckoutResult
	Message string `json:"message"`
}

// Finalize attempts the terminal checkout transition. A refusal for an
// outstanding balance is reported as 409, not as a server error.
func (h *CheckoutHandler) Finalize(w http.ResponseWriter, r *http.Request) {
	id, err := reservationID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid reservation id")
		return
	}
	result, err := h.checkouts.FinalizeCheckout(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, checkoutStatus(result), checkoutResponse{CheckoutResult: result, Message: result.Message()})
}

type paymentRequest struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

// RecordPayment appends a payment and finalizes the checkout when settled.
func (h *CheckoutHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	id, err := reservationID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid reservation id")
		return
	}
	var req paymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	result, err := h.checkouts.RecordPayment(r.Context(), id, req.Amount, req.Description)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, checkoutStatus(result), checkoutResponse{CheckoutResult: result, Message: result.Message()})
}

func checkoutStatus(result domain.CheckoutResult) int {
	if result.Outcome == domain.CheckoutBalanceOutstanding {
		return http.StatusConflict
	}
	return http.StatusOK
}

func reservationID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}
