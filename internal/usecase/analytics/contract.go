package analytics

import (
	"context"

	"github.com/HiteshiPatil10/tressora-backend/internal/models"
)

type Repository interface {
	GetSalonByID(
		ctx context.Context,
		id uint,
	) (*models.Salon, error)

	ListBarbers(
		ctx context.Context,
		salonID uint,
	) ([]models.Barber, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		salonID uint,
		fromDate string,
		toDate string,
	) ([]models.Appointment, error)

	ListInvoicesForPeriod(
		ctx context.Context,
		salonID uint,
		fromDate string,
		toDate string,
	) ([]models.Invoice, error)
}
