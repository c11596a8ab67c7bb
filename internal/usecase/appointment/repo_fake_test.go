package appointment

import (
	"context"

	domain "github.com/HiteshiPatil10/tressora-backend/internal/domain/appointment"
	"github.com/HiteshiPatil10/tressora-backend/internal/httperr"
	"github.com/HiteshiPatil10/tressora-backend/internal/models"
)

// fakeRepo backs use case tests with plain slices. Side-record writes
// are captured so tests can assert on invoices and message logs.
type fakeRepo struct {
	salon        models.Salon
	services     []models.Service
	barbers      []models.Barber
	clients      []models.Client
	appointments []models.Appointment

	invoices     []models.Invoice
	whatsappLogs []models.WhatsAppLog

	createErr      error
	whatsappErr    error
	updatedBarbers []models.Barber
	updatedClients []models.Client
}

var _ domain.Repository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		salon: models.Salon{
			ID:              1,
			Name:            "Tressora",
			Timezone:        "Asia/Kolkata",
			OpeningTime:     "09:00",
			ClosingTime:     "19:00",
			SlotIntervalMin: 30,
			LunchStart:      "13:00",
			LunchEnd:        "14:00",
		},
	}
}

func (f *fakeRepo) GetSalonByID(_ context.Context, id uint) (*models.Salon, error) {
	if id != f.salon.ID {
		return nil, httperr.ErrBusiness("salon_not_found")
	}
	return &f.salon, nil
}

func (f *fakeRepo) GetService(_ context.Context, salonID, serviceID uint) (*models.Service, error) {
	for i := range f.services {
		if f.services[i].SalonID == salonID && f.services[i].ID == serviceID {
			return &f.services[i], nil
		}
	}
	return nil, httperr.ErrBusiness("service_not_found")
}

func (f *fakeRepo) GetBarber(_ context.Context, salonID, barberID uint) (*models.Barber, error) {
	for i := range f.barbers {
		if f.barbers[i].SalonID == salonID && f.barbers[i].ID == barberID {
			return &f.barbers[i], nil
		}
	}
	return nil, httperr.ErrBusiness("barber_not_found")
}

func (f *fakeRepo) ListBarbers(_ context.Context, salonID uint) ([]models.Barber, error) {
	var out []models.Barber
	for _, b := range f.barbers {
		if b.SalonID == salonID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepo) UpdateBarber(_ context.Context, barber *models.Barber) error {
	f.updatedBarbers = append(f.updatedBarbers, *barber)
	return nil
}

func (f *fakeRepo) GetOrCreateClient(_ context.Context, salonID uint, name, phone, email string) (*models.Client, error) {
	for i := range f.clients {
		if f.clients[i].SalonID == salonID && f.clients[i].Phone == phone && phone != "" {
			return &f.clients[i], nil
		}
	}

	client := models.Client{
		ID:      uint(len(f.clients) + 1),
		SalonID: salonID,
		Name:    name,
		Phone:   phone,
		Email:   email,
	}
	f.clients = append(f.clients, client)
	return &f.clients[len(f.clients)-1], nil
}

func (f *fakeRepo) UpdateClient(_ context.Context, client *models.Client) error {
	f.updatedClients = append(f.updatedClients, *client)
	return nil
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if f.createErr != nil {
		return f.createErr
	}
	ap.ID = uint(len(f.appointments) + 1)
	f.appointments = append(f.appointments, *ap)
	return nil
}

func (f *fakeRepo) AssertSlotFree(_ context.Context, barberID uint, date, slot string) error {
	for _, ap := range f.appointments {
		if ap.BarberID == barberID && ap.Date == date && ap.Time == slot && ap.Status != "cancelled" {
			return httperr.ErrBusiness("slot_conflict")
		}
	}
	return nil
}

func (f *fakeRepo) GetAppointment(_ context.Context, salonID, appointmentID uint) (*models.Appointment, error) {
	for i := range f.appointments {
		if f.appointments[i].SalonID == salonID && f.appointments[i].ID == appointmentID {
			return &f.appointments[i], nil
		}
	}
	return nil, httperr.ErrBusiness("appointment_not_found")
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	for i := range f.appointments {
		if f.appointments[i].ID == ap.ID {
			f.appointments[i] = *ap
			return nil
		}
	}
	return httperr.ErrBusiness("appointment_not_found")
}

func (f *fakeRepo) ReassignAppointment(_ context.Context, ap *models.Appointment, newBarberID uint) error {
	ap.BarberID = newBarberID
	return f.UpdateAppointment(context.Background(), ap)
}

func (f *fakeRepo) ListAppointmentsForDate(_ context.Context, salonID uint, date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.SalonID == salonID && ap.Date == date {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAppointmentsForPeriod(_ context.Context, salonID uint, fromDate, toDate string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.SalonID == salonID && ap.Date >= fromDate && ap.Date <= toDate {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateWhatsAppLog(_ context.Context, entry *models.WhatsAppLog) error {
	if f.whatsappErr != nil {
		return f.whatsappErr
	}
	f.whatsappLogs = append(f.whatsappLogs, *entry)
	return nil
}

func (f *fakeRepo) CreateInvoice(_ context.Context, inv *models.Invoice) error {
	f.invoices = append(f.invoices, *inv)
	return nil
}
