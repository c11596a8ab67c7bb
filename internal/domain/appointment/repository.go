package appointment

import (
	"context"

	"github.com/HiteshiPatil10/tressora-backend/internal/models"
)

type Repository interface {
	// -------- Salon --------
	GetSalonByID(
		ctx context.Context,
		id uint,
	) (*models.Salon, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		salonID uint,
		serviceID uint,
	) (*models.Service, error)

	// -------- Barber --------
	GetBarber(
		ctx context.Context,
		salonID uint,
		barberID uint,
	) (*models.Barber, error)

	ListBarbers(
		ctx context.Context,
		salonID uint,
	) ([]models.Barber, error)

	UpdateBarber(
		ctx context.Context,
		barber *models.Barber,
	) error

	// -------- Client --------
	GetOrCreateClient(
		ctx context.Context,
		salonID uint,
		name string,
		phone string,
		email string,
	) (*models.Client, error)

	UpdateClient(
		ctx context.Context,
		client *models.Client,
	) error

	// -------- Appointment (create / conflict) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	AssertSlotFree(
		ctx context.Context,
		barberID uint,
		date string,
		slot string,
	) error

	// -------- Appointment (state change) --------
	GetAppointment(
		ctx context.Context,
		salonID uint,
		appointmentID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// ReassignAppointment re-checks the target slot under a lock before
	// moving the booking, so two operators cannot double-book a barber.
	ReassignAppointment(
		ctx context.Context,
		ap *models.Appointment,
		newBarberID uint,
	) error

	// -------- Listings --------
	ListAppointmentsForDate(
		ctx context.Context,
		salonID uint,
		date string,
	) ([]models.Appointment, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		salonID uint,
		fromDate string,
		toDate string,
	) ([]models.Appointment, error)

	// -------- Side records --------
	CreateWhatsAppLog(
		ctx context.Context,
		entry *models.WhatsAppLog,
	) error

	CreateInvoice(
		ctx context.Context,
		inv *models.Invoice,
	) error
}
