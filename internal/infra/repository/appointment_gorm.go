package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/HiteshiPatil10/tressora-backend/internal/domain/appointment"
	"github.com/HiteshiPatil10/tressora-backend/internal/httperr"
	"github.com/HiteshiPatil10/tressora-backend/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Salon
// --------------------------------------------------

func (r *AppointmentGormRepository) GetSalonByID(
	ctx context.Context,
	id uint,
) (*models.Salon, error) {

	var salon models.Salon
	if err := r.db.WithContext(ctx).First(&salon, id).Error; err != nil {
		return nil, err
	}
	return &salon, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	salonID uint,
	serviceID uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", serviceID, salonID).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Barber
// --------------------------------------------------

func (r *AppointmentGormRepository) GetBarber(
	ctx context.Context,
	salonID uint,
	barberID uint,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", barberID, salonID).
		First(&barber).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

func (r *AppointmentGormRepository) ListBarbers(
	ctx context.Context,
	salonID uint,
) ([]models.Barber, error) {

	var barbers []models.Barber
	if err := r.db.WithContext(ctx).
		Where("salon_id = ?", salonID).
		Order("id ASC").
		Find(&barbers).Error; err != nil {
		return nil, err
	}
	return barbers, nil
}

func (r *AppointmentGormRepository) UpdateBarber(
	ctx context.Context,
	barber *models.Barber,
) error {
	return r.db.WithContext(ctx).Save(barber).Error
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *AppointmentGormRepository) GetOrCreateClient(
	ctx context.Context,
	salonID uint,
	name string,
	phone string,
	email string,
) (*models.Client, error) {

	var client models.Client
	err := r.db.WithContext(ctx).
		Where("salon_id = ? AND phone = ?", salonID, phone).
		First(&client).Error

	if err == nil {
		return &client, nil
	}

	client = models.Client{
		SalonID: salonID,
		Name:    name,
		Phone:   phone,
		Email:   email,
	}

	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

func (r *AppointmentGormRepository) UpdateClient(
	ctx context.Context,
	client *models.Client,
) error {
	return r.db.WithContext(ctx).Save(client).Error
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) AssertSlotFree(
	ctx context.Context,
	barberID uint,
	date string,
	slot string,
) error {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"barber_id = ? AND date = ? AND time = ? AND status NOT IN ('cancelled')",
			barberID, date, slot,
		).
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return httperr.ErrBusiness("slot_conflict")
	}

	return nil
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	salonID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", appointmentID, salonID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// ReassignAppointment moves a booking to a new barber inside one
// transaction. The target slot is re-checked under a row lock so a
// concurrent create or reassign cannot double-book the barber.
func (r *AppointmentGormRepository) ReassignAppointment(
	ctx context.Context,
	ap *models.Appointment,
	newBarberID uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var conflicts []models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"barber_id = ? AND date = ? AND time = ? AND status NOT IN ('cancelled') AND id <> ?",
				newBarberID, ap.Date, ap.Time, ap.ID,
			).
			Find(&conflicts).Error; err != nil {
			return err
		}

		if len(conflicts) > 0 {
			return httperr.ErrBusiness("slot_conflict")
		}

		ap.BarberID = newBarberID
		return tx.Save(ap).Error
	})
}

// --------------------------------------------------
// Listings
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointmentsForDate(
	ctx context.Context,
	salonID uint,
	date string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("salon_id = ? AND date = ?", salonID, date).
		Order("time ASC, created_at ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	salonID uint,
	fromDate string,
	toDate string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"salon_id = ? AND date >= ? AND date <= ?",
			salonID, fromDate, toDate,
		).
		Order("date ASC, time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// --------------------------------------------------
// Side records
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateWhatsAppLog(
	ctx context.Context,
	entry *models.WhatsAppLog,
) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *AppointmentGormRepository) CreateInvoice(
	ctx context.Context,
	inv *models.Invoice,
) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
