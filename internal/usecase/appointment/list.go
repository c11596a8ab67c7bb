package appointment

import (
	"context"
	"time"

	domain "github.com/HiteshiPatil10/tressora-backend/internal/domain/appointment"
	"github.com/HiteshiPatil10/tressora-backend/internal/models"
)

// ListFilter narrows a listing; zero values mean "all".
type ListFilter struct {
	BarberID  uint
	Status    string
	ServiceID uint
}

type ListAppointments struct {
	repo    domain.Repository
	timeout time.Duration
}

func NewListAppointments(
	repo domain.Repository,
	timeout time.Duration,
) *ListAppointments {
	return &ListAppointments{
		repo:    repo,
		timeout: timeout,
	}
}

func (uc *ListAppointments) ByDate(
	ctx context.Context,
	salonID uint,
	date string,
	filter ListFilter,
) ([]models.Appointment, error) {

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	apps, err := uc.repo.ListAppointmentsForDate(ctx, salonID, date)
	if err != nil {
		return nil, err
	}

	return applyFilter(apps, filter), nil
}

func (uc *ListAppointments) ByMonth(
	ctx context.Context,
	salonID uint,
	year int,
	month int,
	filter ListFilter,
) ([]models.Appointment, error) {

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	apps, err := uc.repo.ListAppointmentsForPeriod(
		ctx,
		salonID,
		from.Format("2006-01-02"),
		to.Format("2006-01-02"),
	)
	if err != nil {
		return nil, err
	}

	return applyFilter(apps, filter), nil
}

func applyFilter(apps []models.Appointment, f ListFilter) []models.Appointment {
	out := make([]models.Appointment, 0, len(apps))
	for _, ap := range apps {
		if f.BarberID != 0 && ap.BarberID != f.BarberID {
			continue
		}
		if f.Status != "" && ap.Status != f.Status {
			continue
		}
		if f.ServiceID != 0 && ap.ServiceID != f.ServiceID {
			continue
		}
		out = append(out, ap)
	}
	return out
}
