package appointment

import (
	"time"

	"github.com/HiteshiPatil10/tressora-backend/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Start(ap *models.Appointment) error {
	if err := CanStart(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusInProgress)
	return nil
}

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

// Reassign moves a booking to another barber; the slot itself is untouched.
func Reassign(ap *models.Appointment, newBarberID uint) error {
	if err := CanReassign(Status(ap.Status)); err != nil {
		return err
	}

	ap.BarberID = newBarberID
	return nil
}
