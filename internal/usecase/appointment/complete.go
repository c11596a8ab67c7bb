package appointment

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/HiteshiPatil10/tressora-backend/internal/audit"
	domain "github.com/HiteshiPatil10/tressora-backend/internal/domain/appointment"
	"github.com/HiteshiPatil10/tressora-backend/internal/httperr"
	"github.com/HiteshiPatil10/tressora-backend/internal/models"
	"github.com/HiteshiPatil10/tressora-backend/internal/timezone"
)

type CompleteAppointment struct {
	repo    domain.Repository
	audit   *audit.Dispatcher
	timeout time.Duration
}

func NewCompleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	timeout time.Duration,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:    repo,
		audit:   audit,
		timeout: timeout,
	}
}

// Execute marks the appointment completed. When a payment method is
// given the booking is settled: payment status flips to paid, an
// invoice is written, and client/barber running totals are updated.
// The invoice and counter updates are independent writes; losing one
// never rolls back the completion (matching the store contract).
func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	salonID uint,
	userID uint,
	appointmentID uint,
	paymentMethod string,
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

	if paymentMethod != "" && !validPaymentMethod(paymentMethod) {
		return nil, httperr.ErrBusiness("invalid_payment_method")
	}

	now := timezone.NowIn(salon.Timezone)
	if err := domain.Complete(ap, now); err != nil {
		return nil, err
	}

	if paymentMethod != "" {
		ap.PaymentStatus = string(domain.PaymentPaid)
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	if paymentMethod != "" {
		uc.settle(ctx, salon, ap, paymentMethod, now)
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &userID,
		Action:   "appointment_completed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

func (uc *CompleteAppointment) settle(
	ctx context.Context,
	salon *models.Salon,
	ap *models.Appointment,
	paymentMethod string,
	now time.Time,
) {

	inv := &models.Invoice{
		SalonID:       salon.ID,
		InvoiceNumber: newInvoiceNumber(now),
		ClientName:    ap.ClientName,
		Amount:        ap.Amount,
		PaymentMethod: paymentMethod,
		Date:          ap.Date,
		Services:      ap.ServiceName,
		AppointmentID: &ap.ID,
	}

	barber, err := uc.repo.GetBarber(ctx, salon.ID, ap.BarberID)
	if err == nil {
		inv.Barber = barber.Name
		barber.ClientsHandled++
		barber.RevenueGenerated += ap.Amount
		if err := uc.repo.UpdateBarber(ctx, barber); err != nil {
			log.Println("barber totals update failed:", err)
		}
	}

	if err := uc.repo.CreateInvoice(ctx, inv); err != nil {
		log.Println("invoice write failed:", err)
	}

	client, err := uc.repo.GetOrCreateClient(
		ctx, salon.ID, ap.ClientName, ap.ClientPhone, "",
	)
	if err == nil {
		client.TotalVisits++
		client.TotalSpend += ap.Amount
		client.LastVisit = ap.Date
		if err := uc.repo.UpdateClient(ctx, client); err != nil {
			log.Println("client totals update failed:", err)
		}
	}
}

func newInvoiceNumber(now time.Time) string {
	suffix := strings.ToUpper(uuid.NewString()[:8])
	return fmt.Sprintf("INV-%d-%s", now.Year(), suffix)
}

func validPaymentMethod(m string) bool {
	switch m {
	case "cash", "card", "upi", "online":
		return true
	}
	return false
}
