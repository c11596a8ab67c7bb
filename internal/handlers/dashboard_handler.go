package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/HiteshiPatil10/tressora-backend/internal/httperr"
	"github.com/HiteshiPatil10/tressora-backend/internal/httpresp"
	ucanalytics "github.com/HiteshiPatil10/tressora-backend/internal/usecase/analytics"
)

type DashboardHandler struct {
	overview *ucanalytics.GetOverview
}

func NewDashboardHandler(overview *ucanalytics.GetOverview) *DashboardHandler {
	return &DashboardHandler{overview: overview}
}

// Overview serves the landing page KPI cards: today's bookings and
// revenue, active staff, and the walk-in versus online split.
func (h *DashboardHandler) Overview(c *gin.Context) {
	salonID := currentSalonID(c)

	out, err := h.overview.Execute(c.Request.Context(), salonID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, out)
}
