package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/HiteshiPatil10/tressora-backend/internal/httperr"
	"github.com/HiteshiPatil10/tressora-backend/internal/httpresp"
	ucanalytics "github.com/HiteshiPatil10/tressora-backend/internal/usecase/analytics"
)

type AnalyticsHandler struct {
	revenue   *ucanalytics.Revenue
	breakdown *ucanalytics.Breakdown
}

func NewAnalyticsHandler(
	revenue *ucanalytics.Revenue,
	breakdown *ucanalytics.Breakdown,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		revenue:   revenue,
		breakdown: breakdown,
	}
}

func (h *AnalyticsHandler) Revenue(c *gin.Context) {
	salonID := currentSalonID(c)

	period := c.DefaultQuery("period", "weekly")

	report, err := h.revenue.Execute(c.Request.Context(), salonID, period)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, report)
}

func (h *AnalyticsHandler) Services(c *gin.Context) {
	salonID := currentSalonID(c)

	groups, err := h.breakdown.ByService(c.Request.Context(), salonID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, groups)
}

func (h *AnalyticsHandler) PaymentMethods(c *gin.Context) {
	salonID := currentSalonID(c)

	groups, err := h.breakdown.ByPaymentMethod(c.Request.Context(), salonID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, groups)
}

func (h *AnalyticsHandler) PeakHours(c *gin.Context) {
	salonID := currentSalonID(c)

	groups, err := h.breakdown.PeakHours(c.Request.Context(), salonID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, groups)
}

func (h *AnalyticsHandler) BarberStats(c *gin.Context) {
	salonID := currentSalonID(c)

	stats, err := h.breakdown.BarberStats(c.Request.Context(), salonID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, stats)
}
