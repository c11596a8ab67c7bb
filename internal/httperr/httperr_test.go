package httperr

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runFromError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	FromError(c, err)
	return w
}

func TestFromError_StatusMapping(t *testing.T) {
	cases := []struct {
		code string
		want int
	}{
		{"appointment_not_found", http.StatusNotFound},
		{"barber_not_found", http.StatusNotFound},
		{"slot_conflict", http.StatusConflict},
		{"invalid_state", http.StatusConflict},
		{"store_unavailable", http.StatusServiceUnavailable},
		{"validation_client_name", http.StatusBadRequest},
		{"invalid_date", http.StatusBadRequest},
		{"same_barber", http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			w := runFromError(t, ErrBusiness(tc.code))

			assert.Equal(t, tc.want, w.Code)
			assert.Contains(t, w.Body.String(), tc.code)
		})
	}
}

func TestFromError_ContextDeadline(t *testing.T) {
	w := runFromError(t, context.DeadlineExceeded)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "store_unavailable")
}

func TestFromError_UnknownError(t *testing.T) {
	w := runFromError(t, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal_error")
}

func TestBusinessCode(t *testing.T) {
	code, ok := BusinessCode(ErrBusiness("slot_conflict"))
	require.True(t, ok)
	assert.Equal(t, "slot_conflict", code)

	_, ok = BusinessCode(errors.New("plain"))
	assert.False(t, ok)

	assert.True(t, IsBusiness(ErrBusiness("slot_conflict"), "slot_conflict"))
	assert.False(t, IsBusiness(ErrBusiness("slot_conflict"), "invalid_state"))
}
