package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HiteshiPatil10/tressora-backend/internal/httperr"
	"github.com/HiteshiPatil10/tressora-backend/internal/models"
)

func createFixture() *fakeRepo {
	repo := newFakeRepo()
	repo.services = []models.Service{
		{ID: 1, SalonID: 1, Name: "Haircut", Price: 250, DurationMin: 30, Active: true},
		{ID: 2, SalonID: 1, Name: "Retired", Price: 100, DurationMin: 30, Active: false},
	}
	repo.barbers = []models.Barber{
		{ID: 1, SalonID: 1, Name: "Ravi", Status: "present"},
		{ID: 2, SalonID: 1, Name: "Sanjay", Status: "absent"},
	}
	return repo
}

func validInput() CreateAppointmentInput {
	return CreateAppointmentInput{
		SalonID:     1,
		UserID:      5,
		BarberID:    1,
		ServiceID:   1,
		ClientName:  "Priya",
		ClientPhone: "9876543210",
		Date:        "2026-03-02",
		Time:        "10:00",
	}
}

func TestCreate_BooksSlot(t *testing.T) {
	repo := createFixture()
	uc := NewCreateAppointment(repo, nil, time.Second)

	ap, err := uc.Execute(context.Background(), validInput())

	require.NoError(t, err)
	assert.Equal(t, "upcoming", ap.Status)
	assert.Equal(t, "pending", ap.PaymentStatus)
	assert.Equal(t, "walk-in", ap.Type)
	assert.Equal(t, "Haircut", ap.ServiceName)
	assert.Equal(t, float64(250), ap.Amount)
	assert.Equal(t, 30, ap.DurationMin)
	assert.Equal(t, "10:00", ap.Time)

	// confirmation message is logged alongside the booking
	require.Len(t, repo.whatsappLogs, 1)
	assert.Equal(t, "booking-confirmation", repo.whatsappLogs[0].MessageType)
	assert.Equal(t, "Priya", repo.whatsappLogs[0].ClientName)
}

func TestCreate_SlotAlreadyBooked(t *testing.T) {
	repo := createFixture()
	uc := NewCreateAppointment(repo, nil, time.Second)

	_, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)

	in := validInput()
	in.ClientName = "Meera"
	_, err = uc.Execute(context.Background(), in)

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "slot_conflict"))
	assert.Len(t, repo.appointments, 1)
}

func TestCreate_AdjacentSlotStaysFree(t *testing.T) {
	repo := createFixture()
	uc := NewCreateAppointment(repo, nil, time.Second)

	_, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)

	in := validInput()
	in.Time = "10:30"
	_, err = uc.Execute(context.Background(), in)

	require.NoError(t, err)
	assert.Len(t, repo.appointments, 2)
}

func TestCreate_AbsentBarber(t *testing.T) {
	repo := createFixture()
	uc := NewCreateAppointment(repo, nil, time.Second)

	in := validInput()
	in.BarberID = 2
	_, err := uc.Execute(context.Background(), in)

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "barber_unavailable"))
}

func TestCreate_LunchBreak(t *testing.T) {
	repo := createFixture()
	uc := NewCreateAppointment(repo, nil, time.Second)

	in := validInput()
	in.Time = "13:30"
	_, err := uc.Execute(context.Background(), in)

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "barber_unavailable"))
}

func TestCreate_Validation(t *testing.T) {
	cases := []struct {
		name     string
		mutate   func(*CreateAppointmentInput)
		wantCode string
	}{
		{"blank client name", func(in *CreateAppointmentInput) { in.ClientName = "  " }, "validation_client_name"},
		{"bad date", func(in *CreateAppointmentInput) { in.Date = "02/03/2026" }, "invalid_date"},
		{"bad time", func(in *CreateAppointmentInput) { in.Time = "10am" }, "invalid_time"},
		{"unknown service", func(in *CreateAppointmentInput) { in.ServiceID = 99 }, "service_not_found"},
		{"inactive service", func(in *CreateAppointmentInput) { in.ServiceID = 2 }, "service_inactive"},
		{"unknown barber", func(in *CreateAppointmentInput) { in.BarberID = 99 }, "barber_not_found"},
		{"unknown salon", func(in *CreateAppointmentInput) { in.SalonID = 99 }, "salon_not_found"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewCreateAppointment(createFixture(), nil, time.Second)

			in := validInput()
			tc.mutate(&in)
			_, err := uc.Execute(context.Background(), in)

			require.Error(t, err)
			assert.True(t, httperr.IsBusiness(err, tc.wantCode), "got %v", err)
		})
	}
}

func TestCreate_WhatsAppFailureDoesNotFailBooking(t *testing.T) {
	repo := createFixture()
	repo.whatsappErr = errors.New("gateway down")
	uc := NewCreateAppointment(repo, nil, time.Second)

	ap, err := uc.Execute(context.Background(), validInput())

	require.NoError(t, err)
	assert.NotZero(t, ap.ID)
	assert.Len(t, repo.appointments, 1)
}

func TestCreate_OnlineType(t *testing.T) {
	uc := NewCreateAppointment(createFixture(), nil, time.Second)

	in := validInput()
	in.Type = "online"
	ap, err := uc.Execute(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, "online", ap.Type)
}

func TestCreate_ReusesClientByPhone(t *testing.T) {
	repo := createFixture()
	repo.clients = []models.Client{
		{ID: 7, SalonID: 1, Name: "Priya", Phone: "9876543210", TotalVisits: 4},
	}
	uc := NewCreateAppointment(repo, nil, time.Second)

	_, err := uc.Execute(context.Background(), validInput())

	require.NoError(t, err)
	assert.Len(t, repo.clients, 1)
}
