package appointment

import (
	"context"
	"time"

	"github.com/HiteshiPatil10/tressora-backend/internal/audit"
	domain "github.com/HiteshiPatil10/tressora-backend/internal/domain/appointment"
	"github.com/HiteshiPatil10/tressora-backend/internal/httperr"
	"github.com/HiteshiPatil10/tressora-backend/internal/models"
)

type StartAppointment struct {
	repo    domain.Repository
	audit   *audit.Dispatcher
	timeout time.Duration
}

func NewStartAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	timeout time.Duration,
) *StartAppointment {
	return &StartAppointment{
		repo:    repo,
		audit:   audit,
		timeout: timeout,
	}
}

func (uc *StartAppointment) Execute(
	ctx context.Context,
	salonID uint,
	userID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	ap, err := uc.repo.GetAppointment(ctx, salonID, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.Start(ap); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &userID,
		Action:   "appointment_started",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
