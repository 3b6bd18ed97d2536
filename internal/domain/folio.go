package domain

// Folio is the reconciled charge/payment record for one reservation. Total and
// Remaining are always recomputed from their inputs; they are never stored, so
// the identities total == roomCharge + extraCharges and
// remaining == total - paid hold by construction.
type Folio struct {
	ReservationID int64   `json:"reservation_id"`
	RoomCharge    float64 `json:"room_charge"`
	ExtraCharges  float64 `json:"extra_charges"`
	Paid          float64 `json:"paid"`
}

// Total returns the full folio debt.
func (f Folio) Total() float64 {
	return f.RoomCharge + f.ExtraCharges
}

// Remaining returns the unsettled balance. A negative value means the guest
// overpaid and the folio counts as settled.
func (f Folio) Remaining() float64 {
	return f.Total() - f.Paid
}

// Settled reports whether the folio carries no outstanding balance.
func (f Folio) Settled() bool {
	return f.Remaining() <= 0
}

// BuildFolio folds a reservation's transactions into its folio. Only the
// Ekstra and Tahsilat categories carry ledger semantics; everything else is
// ignored. Transactions correlated to other reservations are skipped.
func BuildFolio(reservationID int64, roomCharge float64, txs []Transaction) Folio {
	f := Folio{ReservationID: reservationID, RoomCharge: roomCharge}
	for _, tx := range txs {
		if tx.ReservationID == nil || *tx.ReservationID != reservationID {
			continue
		}
		switch tx.Category {
		case CategoryExtraCharge:
			f.ExtraCharges += tx.Amount
		case CategoryPayment:
			f.Paid += tx.Amount
		}
	}
	return f
}
