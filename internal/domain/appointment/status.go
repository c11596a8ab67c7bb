package appointment

import "github.com/HiteshiPatil10/tressora-backend/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusUpcoming   Status = "upcoming"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// ===============================
// Payment Status
// ===============================

type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentPending PaymentStatus = "pending"
	PaymentPartial PaymentStatus = "partial"
)

// ===============================
// Validations
// ===============================

func CanStart(current Status) error {
	if current != StatusUpcoming {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanCancel(current Status) error {
	if current != StatusUpcoming && current != StatusInProgress {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanComplete(current Status) error {
	if current != StatusUpcoming && current != StatusInProgress {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanReassign limits barber changes to bookings that still occupy a slot.
func CanReassign(current Status) error {
	if current != StatusUpcoming && current != StatusInProgress {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusUpcoming
}

func ValidPaymentStatus(s string) bool {
	switch PaymentStatus(s) {
	case PaymentPaid, PaymentPending, PaymentPartial:
		return true
	}
	return false
}
