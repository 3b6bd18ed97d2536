package domain

import "fmt"

// CheckoutOutcome classifies the result of a finalize-checkout attempt.
type CheckoutOutcome string

const (
	// CheckoutCompleted: the reservation transitioned to CHECKED_OUT and the
	// room was marked for cleaning.
	CheckoutCompleted CheckoutOutcome = "COMPLETED"
	// CheckoutAlreadyCompleted: the reservation was already terminal; the call
	// is an idempotent no-op success.
	CheckoutAlreadyCompleted CheckoutOutcome = "ALREADY_COMPLETED"
	// CheckoutBalanceOutstanding: the folio still carries debt; no state change.
	CheckoutBalanceOutstanding CheckoutOutcome = "BALANCE_OUTSTANDING"
)

// CheckoutResult is the typed result of FinalizeCheckout. A refusal for an
// outstanding balance is a business outcome, not an error.
type CheckoutResult struct {
	ReservationID int64           `json:"reservation_id"`
	Outcome       CheckoutOutcome `json:"outcome"`
	Remaining     float64         `json:"remaining"`
}

// Succeeded reports whether the reservation is terminal after the call.
func (r CheckoutResult) Succeeded() bool {
	return r.Outcome == CheckoutCompleted || r.Outcome == CheckoutAlreadyCompleted
}

// Message renders the outcome for API responses and logs.
func (r CheckoutResult) Message() string {
	switch r.Outcome {
	case CheckoutBalanceOutstanding:
		return fmt.Sprintf("balance outstanding: remaining=%.2f", r.Remaining)
	case CheckoutAlreadyCompleted:
		return "reservation already checked out"
	default:
		return "checkout completed"
	}
}
