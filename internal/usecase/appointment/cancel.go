package appointment

import (
	"context"
	"time"

	"github.com/HiteshiPatil10/tressora-backend/internal/audit"
	domain "github.com/HiteshiPatil10/tressora-backend/internal/domain/appointment"
	"github.com/HiteshiPatil10/tressora-backend/internal/httperr"
	"github.com/HiteshiPatil10/tressora-backend/internal/models"
	"github.com/HiteshiPatil10/tressora-backend/internal/timezone"
)

type CancelAppointment struct {
	repo    domain.Repository
	audit   *audit.Dispatcher
	timeout time.Duration
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	timeout time.Duration,
) *CancelAppointment {
	return &CancelAppointment{
		repo:    repo,
		audit:   audit,
		timeout: timeout,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	salonID uint,
	userID uint,
	appointmentID uint,
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

	now := timezone.NowIn(salon.Timezone)
	if err := domain.Cancel(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &userID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
