package schedule

import (
	"context"

	domain "github.com/HiteshiPatil10/tressora-backend/internal/domain/appointment"
	"github.com/HiteshiPatil10/tressora-backend/internal/httperr"
	"github.com/HiteshiPatil10/tressora-backend/internal/models"
)

var _ domain.Repository = (*fakeRepo)(nil)

// fakeRepo is an in-memory store for use case tests. Lookups are
// salon-scoped like the real repository; writes mutate the slices in
// place.
type fakeRepo struct {
	salon        models.Salon
	barbers      []models.Barber
	appointments []models.Appointment

	reassignErr   error
	reassignCalls int
}

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

func (f *fakeRepo) GetService(_ context.Context, _ uint, _ uint) (*models.Service, error) {
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

func (f *fakeRepo) UpdateBarber(_ context.Context, _ *models.Barber) error {
	return nil
}

func (f *fakeRepo) GetOrCreateClient(_ context.Context, salonID uint, name, phone, email string) (*models.Client, error) {
	return &models.Client{SalonID: salonID, Name: name, Phone: phone, Email: email}, nil
}

func (f *fakeRepo) UpdateClient(_ context.Context, _ *models.Client) error {
	return nil
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
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
	f.reassignCalls++
	if f.reassignErr != nil {
		return f.reassignErr
	}

	if err := f.AssertSlotFree(context.Background(), newBarberID, ap.Date, ap.Time); err != nil {
		return err
	}

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

func (f *fakeRepo) CreateWhatsAppLog(_ context.Context, _ *models.WhatsAppLog) error {
	return nil
}

func (f *fakeRepo) CreateInvoice(_ context.Context, _ *models.Invoice) error {
	return nil
}
