package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HiteshiPatil10/tressora-backend/internal/httperr"
	"github.com/HiteshiPatil10/tressora-backend/internal/models"
)

func TestTransitionGuards(t *testing.T) {
	cases := []struct {
		name    string
		guard   func(Status) error
		allowed []Status
	}{
		{"start", CanStart, []Status{StatusUpcoming}},
		{"cancel", CanCancel, []Status{StatusUpcoming, StatusInProgress}},
		{"complete", CanComplete, []Status{StatusUpcoming, StatusInProgress}},
		{"reassign", CanReassign, []Status{StatusUpcoming, StatusInProgress}},
	}

	all := []Status{StatusUpcoming, StatusInProgress, StatusCompleted, StatusCancelled}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, from := range all {
				err := tc.guard(from)

				permitted := false
				for _, ok := range tc.allowed {
					if from == ok {
						permitted = true
					}
				}

				if permitted {
					assert.NoError(t, err, "from %s", from)
				} else {
					require.Error(t, err, "from %s", from)
					code, ok := httperr.BusinessCode(err)
					require.True(t, ok)
					assert.Equal(t, "invalid_state", code)
				}
			}
		})
	}
}

func TestStartSetsInProgress(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusUpcoming)}

	require.NoError(t, Start(ap))
	assert.Equal(t, string(StatusInProgress), ap.Status)

	assert.Error(t, Start(ap))
}

func TestCancelStampsTime(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ap := &models.Appointment{Status: string(StatusUpcoming)}

	require.NoError(t, Cancel(ap, now))
	assert.Equal(t, string(StatusCancelled), ap.Status)
	require.NotNil(t, ap.CancelledAt)
	assert.Equal(t, now, *ap.CancelledAt)
}

func TestCompleteStampsTime(t *testing.T) {
	now := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)
	ap := &models.Appointment{Status: string(StatusInProgress)}

	require.NoError(t, Complete(ap, now))
	assert.Equal(t, string(StatusCompleted), ap.Status)
	require.NotNil(t, ap.CompletedAt)
	assert.Equal(t, now, *ap.CompletedAt)
}

func TestReassignSwitchesBarber(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusUpcoming), BarberID: 1}

	require.NoError(t, Reassign(ap, 2))
	assert.Equal(t, uint(2), ap.BarberID)

	ap.Status = string(StatusCompleted)
	err := Reassign(ap, 3)
	require.Error(t, err)
	assert.Equal(t, uint(2), ap.BarberID)
}

func TestValidPaymentStatus(t *testing.T) {
	for _, ok := range []string{"paid", "pending", "partial"} {
		assert.True(t, ValidPaymentStatus(ok), ok)
	}
	for _, bad := range []string{"", "refunded", "PAID"} {
		assert.False(t, ValidPaymentStatus(bad), bad)
	}
}
