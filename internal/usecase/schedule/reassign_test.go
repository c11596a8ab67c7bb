package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HiteshiPatil10/tressora-backend/internal/httperr"
	"github.com/HiteshiPatil10/tressora-backend/internal/models"
)

func reassignFixture() *fakeRepo {
	repo := newFakeRepo()
	repo.barbers = []models.Barber{
		{ID: 1, SalonID: 1, Name: "Ravi", Status: "present"},
		{ID: 2, SalonID: 1, Name: "Sanjay", Status: "present"},
	}
	repo.appointments = []models.Appointment{
		{
			ID:       1,
			SalonID:  1,
			BarberID: 1,
			Date:     "2026-03-02",
			Time:     "10:00",
			Status:   "upcoming",
		},
	}
	return repo
}

func TestReassign_MovesBooking(t *testing.T) {
	repo := reassignFixture()
	uc := NewReassignAppointment(repo, nil, time.Second)

	ap, err := uc.Execute(context.Background(), 1, 5, 1, 2)

	require.NoError(t, err)
	assert.Equal(t, uint(2), ap.BarberID)
	assert.Equal(t, 1, repo.reassignCalls)

	stored, err := repo.GetAppointment(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, uint(2), stored.BarberID)
}

func TestReassign_TargetSlotBooked(t *testing.T) {
	repo := reassignFixture()
	repo.appointments = append(repo.appointments, models.Appointment{
		ID:       2,
		SalonID:  1,
		BarberID: 2,
		Date:     "2026-03-02",
		Time:     "10:00",
		Status:   "upcoming",
	})
	uc := NewReassignAppointment(repo, nil, time.Second)

	_, err := uc.Execute(context.Background(), 1, 5, 1, 2)

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "slot_conflict"))

	// the booking never moved
	stored, _ := repo.GetAppointment(context.Background(), 1, 1)
	assert.Equal(t, uint(1), stored.BarberID)
}

func TestReassign_CancelledBookingDoesNotBlock(t *testing.T) {
	repo := reassignFixture()
	repo.appointments = append(repo.appointments, models.Appointment{
		ID:       2,
		SalonID:  1,
		BarberID: 2,
		Date:     "2026-03-02",
		Time:     "10:00",
		Status:   "cancelled",
	})
	uc := NewReassignAppointment(repo, nil, time.Second)

	ap, err := uc.Execute(context.Background(), 1, 5, 1, 2)

	require.NoError(t, err)
	assert.Equal(t, uint(2), ap.BarberID)
}

func TestReassign_TargetAbsent(t *testing.T) {
	for _, status := range []string{"absent", "on-leave"} {
		repo := reassignFixture()
		repo.barbers[1].Status = status
		uc := NewReassignAppointment(repo, nil, time.Second)

		_, err := uc.Execute(context.Background(), 1, 5, 1, 2)

		require.Error(t, err, "status %s", status)
		assert.True(t, httperr.IsBusiness(err, "slot_conflict"))
	}
}

func TestReassign_HalfDayAfternoonConflicts(t *testing.T) {
	repo := reassignFixture()
	repo.barbers[1].Status = "half-day"
	repo.appointments[0].Time = "15:00"
	uc := NewReassignAppointment(repo, nil, time.Second)

	_, err := uc.Execute(context.Background(), 1, 5, 1, 2)

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "slot_conflict"))
}

func TestReassign_HalfDayMorningAllowed(t *testing.T) {
	repo := reassignFixture()
	repo.barbers[1].Status = "half-day"
	uc := NewReassignAppointment(repo, nil, time.Second)

	ap, err := uc.Execute(context.Background(), 1, 5, 1, 2)

	require.NoError(t, err)
	assert.Equal(t, uint(2), ap.BarberID)
}

func TestReassign_SameBarber(t *testing.T) {
	repo := reassignFixture()
	uc := NewReassignAppointment(repo, nil, time.Second)

	_, err := uc.Execute(context.Background(), 1, 5, 1, 1)

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "same_barber"))
	assert.Zero(t, repo.reassignCalls)
}

func TestReassign_UnknownTargetBarber(t *testing.T) {
	repo := reassignFixture()
	uc := NewReassignAppointment(repo, nil, time.Second)

	_, err := uc.Execute(context.Background(), 1, 5, 1, 99)

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "barber_not_found"))
}

func TestReassign_FinishedBooking(t *testing.T) {
	for _, status := range []string{"completed", "cancelled"} {
		repo := reassignFixture()
		repo.appointments[0].Status = status
		uc := NewReassignAppointment(repo, nil, time.Second)

		_, err := uc.Execute(context.Background(), 1, 5, 1, 2)

		require.Error(t, err, "status %s", status)
		assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	}
}

func TestReassign_StoreFailureRestoresBarber(t *testing.T) {
	repo := reassignFixture()
	repo.reassignErr = httperr.ErrBusiness("slot_conflict")
	uc := NewReassignAppointment(repo, nil, time.Second)

	_, err := uc.Execute(context.Background(), 1, 5, 1, 2)

	require.Error(t, err)
	stored, _ := repo.GetAppointment(context.Background(), 1, 1)
	assert.Equal(t, uint(1), stored.BarberID)
}
