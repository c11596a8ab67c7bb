package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/HiteshiPatil10/tressora-backend/internal/models"
	ucAnalytics "github.com/HiteshiPatil10/tressora-backend/internal/usecase/analytics"
)

type AnalyticsGormRepository struct {
	db *gorm.DB
}

func NewAnalyticsGormRepository(db *gorm.DB) *AnalyticsGormRepository {
	return &AnalyticsGormRepository{db: db}
}

func (r *AnalyticsGormRepository) GetSalonByID(
	ctx context.Context,
	id uint,
) (*models.Salon, error) {

	var salon models.Salon
	if err := r.db.WithContext(ctx).First(&salon, id).Error; err != nil {
		return nil, err
	}
	return &salon, nil
}

func (r *AnalyticsGormRepository) ListBarbers(
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

func (r *AnalyticsGormRepository) ListAppointmentsForPeriod(
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

func (r *AnalyticsGormRepository) ListInvoicesForPeriod(
	ctx context.Context,
	salonID uint,
	fromDate string,
	toDate string,
) ([]models.Invoice, error) {

	var invoices []models.Invoice
	if err := r.db.WithContext(ctx).
		Where(
			"salon_id = ? AND date >= ? AND date <= ?",
			salonID, fromDate, toDate,
		).
		Order("date ASC, id ASC").
		Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

// Compile-time check
var _ ucAnalytics.Repository = (*AnalyticsGormRepository)(nil)
