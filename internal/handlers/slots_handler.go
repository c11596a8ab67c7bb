package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/HiteshiPatil10/tressora-backend/internal/httperr"
	"github.com/HiteshiPatil10/tressora-backend/internal/httpresp"
	ucschedule "github.com/HiteshiPatil10/tressora-backend/internal/usecase/schedule"
)

type SlotsHandler struct {
	matrix *ucschedule.GetSlotMatrix
}

func NewSlotsHandler(matrix *ucschedule.GetSlotMatrix) *SlotsHandler {
	return &SlotsHandler{matrix: matrix}
}

// Matrix returns the availability grid for one date: a row per time
// slot, a cell per barber, each cell carrying the derived status.
func (h *SlotsHandler) Matrix(c *gin.Context) {
	salonID := currentSalonID(c)

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Provide date=YYYY-MM-DD.")
		return
	}

	matrix, err := h.matrix.Execute(c.Request.Context(), salonID, date)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, matrix)
}
