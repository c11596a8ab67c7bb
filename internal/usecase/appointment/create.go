package appointment

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/HiteshiPatil10/tressora-backend/internal/audit"
	domain "github.com/HiteshiPatil10/tressora-backend/internal/domain/appointment"
	"github.com/HiteshiPatil10/tressora-backend/internal/domain/schedule"
	"github.com/HiteshiPatil10/tressora-backend/internal/httperr"
	"github.com/HiteshiPatil10/tressora-backend/internal/models"
	"github.com/HiteshiPatil10/tressora-backend/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	SalonID  uint
	UserID   uint
	BarberID uint

	ClientName  string
	ClientPhone string
	ClientEmail string

	ServiceID uint

	Date string
	Time string
	Type string

	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo    domain.Repository
	audit   *audit.Dispatcher
	timeout time.Duration
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	timeout time.Duration,
) *CreateAppointment {
	return &CreateAppointment{
		repo:    repo,
		audit:   audit,
		timeout: timeout,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if strings.TrimSpace(in.ClientName) == "" {
		return nil, httperr.ErrBusiness("validation_client_name")
	}

	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, err
	}

	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	slot, err := schedule.ParseSlotTime(in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	svc, err := uc.repo.GetService(ctx, in.SalonID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	if !svc.Active {
		return nil, httperr.ErrBusiness("service_inactive")
	}

	barber, err := uc.repo.GetBarber(ctx, in.SalonID, in.BarberID)
	if err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	// The slot must derive to available for this barber: bookings on
	// breaks, absences and occupied slots are all rejected here.
	dayAppointments, err := uc.repo.ListAppointmentsForDate(ctx, in.SalonID, in.Date)
	if err != nil {
		return nil, err
	}

	status, _, _ := schedule.DeriveSlotStatus(barber, slot, dayAppointments, rulesFor(salon))
	switch status {
	case schedule.SlotAvailable:
		// free to book
	case schedule.SlotBooked:
		return nil, httperr.ErrBusiness("slot_conflict")
	default:
		return nil, httperr.ErrBusiness("barber_unavailable")
	}

	client, err := uc.repo.GetOrCreateClient(
		ctx,
		in.SalonID,
		in.ClientName,
		in.ClientPhone,
		in.ClientEmail,
	)
	if err != nil {
		return nil, err
	}

	// DB-level recheck: the derive above raced against concurrent writers.
	if err := uc.repo.AssertSlotFree(ctx, in.BarberID, in.Date, slot.String()); err != nil {
		return nil, err
	}

	apType := in.Type
	if apType == "" {
		apType = "walk-in"
	}

	ap := &models.Appointment{
		SalonID:       in.SalonID,
		BarberID:      in.BarberID,
		ClientName:    client.Name,
		ClientPhone:   client.Phone,
		ServiceID:     svc.ID,
		ServiceName:   svc.Name,
		DurationMin:   svc.DurationMin,
		Amount:        svc.Price,
		Date:          in.Date,
		Time:          slot.String(),
		Status:        string(domain.InitialStatus()),
		PaymentStatus: string(domain.PaymentPending),
		Type:          apType,
		Notes:         in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// The confirmation log is an independent write; losing it never
	// rolls back the appointment.
	waLog := &models.WhatsAppLog{
		SalonID:     in.SalonID,
		ClientName:  client.Name,
		Phone:       client.Phone,
		MessageType: "booking-confirmation",
		DateSent:    timezone.NowIn(salon.Timezone),
		Status:      "sent",
	}
	if err := uc.repo.CreateWhatsAppLog(ctx, waLog); err != nil {
		log.Println("whatsapp log write failed:", err)
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  in.SalonID,
		UserID:   &in.UserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

func rulesFor(salon *models.Salon) schedule.Rules {
	rules := schedule.DefaultRules()

	if lunchStart, err := schedule.ParseSlotTime(salon.LunchStart); err == nil {
		rules.LunchStart = lunchStart
	}
	if lunchEnd, err := schedule.ParseSlotTime(salon.LunchEnd); err == nil {
		rules.LunchEnd = lunchEnd
	}

	return rules
}
