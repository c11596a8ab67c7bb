package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HiteshiPatil10/tressora-backend/internal/models"
)

func TestBreakdown_ByService(t *testing.T) {
	repo := newFakeAnalyticsRepo()
	repo.appointments = []models.Appointment{
		{Date: daysAgo(1), Status: "completed", ServiceName: "Haircut", Amount: 200},
		{Date: daysAgo(2), Status: "completed", ServiceName: "Shave", Amount: 100},
		{Date: daysAgo(3), Status: "completed", ServiceName: "Haircut", Amount: 200},
		{Date: daysAgo(3), Status: "upcoming", ServiceName: "Haircut", Amount: 999},
	}
	uc := NewBreakdown(repo, nil, time.Second)

	groups, err := uc.ByService(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "Haircut", groups[0].Key)
	assert.Equal(t, float64(400), groups[0].Revenue)
	assert.Equal(t, 2, groups[0].Bookings)
	assert.Equal(t, "Shave", groups[1].Key)
}

func TestBreakdown_ByPaymentMethod(t *testing.T) {
	repo := newFakeAnalyticsRepo()
	repo.invoices = []models.Invoice{
		{Date: daysAgo(1), PaymentMethod: "cash", Amount: 300},
		{Date: daysAgo(2), PaymentMethod: "upi", Amount: 150},
		{Date: daysAgo(2), PaymentMethod: "cash", Amount: 200},
	}
	uc := NewBreakdown(repo, nil, time.Second)

	groups, err := uc.ByPaymentMethod(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "cash", groups[0].Key)
	assert.Equal(t, float64(500), groups[0].Revenue)
	assert.Equal(t, "upi", groups[1].Key)
	assert.Equal(t, float64(150), groups[1].Revenue)
}

func TestBreakdown_PeakHoursRankedDesc(t *testing.T) {
	repo := newFakeAnalyticsRepo()
	repo.appointments = []models.Appointment{
		{Date: daysAgo(1), Status: "completed", Time: "10:00"},
		{Date: daysAgo(1), Status: "upcoming", Time: "11:00"},
		{Date: daysAgo(2), Status: "completed", Time: "11:30"},
		{Date: daysAgo(2), Status: "completed", Time: "11:00"},
		{Date: daysAgo(2), Status: "cancelled", Time: "16:00"},
	}
	uc := NewBreakdown(repo, nil, time.Second)

	groups, err := uc.PeakHours(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, groups, 2)

	// 11:00 and 11:30 share the 11 AM bucket; the cancelled booking is out
	assert.Equal(t, 3, groups[0].Bookings)
	assert.Equal(t, 1, groups[1].Bookings)
	assert.True(t, groups[0].Bookings >= groups[1].Bookings)
}

func TestBreakdown_BarberStats(t *testing.T) {
	repo := newFakeAnalyticsRepo()
	repo.barbers = []models.Barber{
		{ID: 1, Name: "Ravi"},
		{ID: 2, Name: "Sanjay", RevenueGenerated: 1000},
		{ID: 3, Name: "Idle"},
	}
	repo.appointments = []models.Appointment{
		{Date: daysAgo(1), BarberID: 1, Status: "completed", Amount: 200},
		{Date: daysAgo(1), BarberID: 1, Status: "upcoming", Amount: 300},
		{Date: daysAgo(2), BarberID: 2, Status: "completed", Amount: 500},
		{Date: daysAgo(2), BarberID: 1, Status: "cancelled", Amount: 999},
	}
	uc := NewBreakdown(repo, nil, time.Second)

	stats, err := uc.BarberStats(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, stats, 3)

	ravi := stats[0]
	assert.Equal(t, 2, ravi.TotalClients)
	assert.Equal(t, 1, ravi.Completed)
	assert.Equal(t, float64(200), ravi.Revenue)
	assert.Equal(t, float64(100), ravi.AvgPerClient)

	sanjay := stats[1]
	assert.Equal(t, float64(1500), sanjay.Revenue)

	// a barber with no bookings keeps a zero average, not a NaN
	idle := stats[2]
	assert.Zero(t, idle.TotalClients)
	assert.Zero(t, idle.AvgPerClient)
}
