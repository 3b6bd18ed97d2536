package domain

import "time"

type ReservationStatus string

const (
	ReservationStatusConfirmed  ReservationStatus = "CONFIRMED"
	ReservationStatusCheckedIn  ReservationStatus = "CHECKED_IN"
	ReservationStatusPending    ReservationStatus = "PENDING"
	ReservationStatusCheckedOut ReservationStatus = "CHECKED_OUT"
)

// IsTerminal reports whether the status permits no further transitions.
func (s ReservationStatus) IsTerminal() bool {
	return s == ReservationStatusCheckedOut
}

// IsActive reports whether the reservation occupies a room and may be
// finalized. Pending reservations have no checkout transition.
func (s ReservationStatus) IsActive() bool {
	return s == ReservationStatusConfirmed || s == ReservationStatusCheckedIn
}

type Reservation struct {
	ID         int64             `json:"id"`
	CustomerID int64             `json:"customer_id"`
	GuestName  string            `json:"guest_name"`
	RoomNo     string            `json:"room_no"`
	CheckIn    time.Time         `json:"check_in"`
	CheckOut   time.Time         `json:"check_out"`
	RoomCharge float64           `json:"room_charge"` // fixed per stay
	Guests     int               `json:"guests"`
	Status     ReservationStatus `json:"status"`
}

// Nights returns the stay length in nights.
func (r Reservation) Nights() int {
	return int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
}

// DisplayStatus is the presentation status of a reservation's checkout. It is
// derived from the persisted status and the current folio balance on every
// render; the persisted ReservationStatus stays authoritative. A settled but
// not yet finalized reservation shows as completed while its row remains
// non-terminal until an explicit finalize call.
type DisplayStatus string

const (
	DisplayStatusPaymentPending DisplayStatus = "payment pending"
	DisplayStatusCompleted      DisplayStatus = "completed"
)

// DeriveDisplayStatus maps persisted status and remaining balance to the
// presentation status.
func DeriveDisplayStatus(status ReservationStatus, remaining float64) DisplayStatus {
	if status == ReservationStatusCheckedOut || remaining <= 0 {
		return DisplayStatusCompleted
	}
	return DisplayStatusPaymentPending
}
