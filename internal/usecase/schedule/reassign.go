package schedule

import (
	"context"
	"time"

	"github.com/HiteshiPatil10/tressora-backend/internal/audit"
	domain "github.com/HiteshiPatil10/tressora-backend/internal/domain/appointment"
	sched "github.com/HiteshiPatil10/tressora-backend/internal/domain/schedule"
	"github.com/HiteshiPatil10/tressora-backend/internal/httperr"
	"github.com/HiteshiPatil10/tressora-backend/internal/models"
)

type ReassignAppointment struct {
	repo    domain.Repository
	audit   *audit.Dispatcher
	timeout time.Duration
}

func NewReassignAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	timeout time.Duration,
) *ReassignAppointment {
	return &ReassignAppointment{
		repo:    repo,
		audit:   audit,
		timeout: timeout,
	}
}

// Execute moves a booking to another barber. The candidate must
// derive to available at the booking's slot; anything else (booked,
// absent, on break, half-day afternoon) is a conflict. The
// repository re-checks the slot under a lock before persisting, so the
// precondition holds even against concurrent operators.
func (uc *ReassignAppointment) Execute(
	ctx context.Context,
	salonID uint,
	userID uint,
	appointmentID uint,
	newBarberID uint,
) (*models.Appointment, error) {

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	salon, err := uc.repo.GetSalonByID(ctx, salonID)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointment(ctx, salonID, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.CanReassign(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	if newBarberID == ap.BarberID {
		return nil, httperr.ErrBusiness("same_barber")
	}

	candidate, err := uc.repo.GetBarber(ctx, salonID, newBarberID)
	if err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	slot, err := sched.ParseSlotTime(ap.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	dayAppointments, err := uc.repo.ListAppointmentsForDate(ctx, salonID, ap.Date)
	if err != nil {
		return nil, err
	}

	_, rules := GridFor(salon)
	status, _, _ := sched.DeriveSlotStatus(candidate, slot, dayAppointments, rules)
	if status != sched.SlotAvailable {
		return nil, httperr.ErrBusiness("slot_conflict")
	}

	oldBarberID := ap.BarberID
	if err := uc.repo.ReassignAppointment(ctx, ap, newBarberID); err != nil {
		// leave the in-memory record untouched on failure
		ap.BarberID = oldBarberID
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &userID,
		Action:   "appointment_reassigned",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"from_barber_id": oldBarberID,
			"to_barber_id":   newBarberID,
		},
	})

	return ap, nil
}
