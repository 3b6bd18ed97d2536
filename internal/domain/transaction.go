package domain

import (
	"fmt"
	"time"
)

// Transaction categories carrying folio semantics. Records in any other
// category are cash-desk movements the ledger ignores.
const (
	CategoryExtraCharge = "Ekstra"   // adds to the guest's folio debt
	CategoryPayment     = "Tahsilat" // settles part of the guest's folio debt
)

// Transaction is one append-only entry in the shared transaction log.
//
// ReservationID is the explicit correlation id linking an entry to a
// reservation's folio. The legacy system embedded a "#RZ-<id>" tag in the
// description text and joined by substring match; the id column replaces that
// join while CorrelationTag keeps the tag available as display text.
type Transaction struct {
	ID            int64     `json:"id"`
	Date          time.Time `json:"date"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	Amount        float64   `json:"amount"`
	ReservationID *int64    `json:"reservation_id,omitempty"`
}

// CorrelationTag renders the display tag for a reservation id.
func CorrelationTag(reservationID int64) string {
	return fmt.Sprintf("#RZ-%d", reservationID)
}
