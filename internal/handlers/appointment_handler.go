package handlers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/HiteshiPatil10/tressora-backend/internal/cache"
	"github.com/HiteshiPatil10/tressora-backend/internal/dto"
	"github.com/HiteshiPatil10/tressora-backend/internal/httperr"
	"github.com/HiteshiPatil10/tressora-backend/internal/httpresp"
	"github.com/HiteshiPatil10/tressora-backend/internal/models"
	ucappointment "github.com/HiteshiPatil10/tressora-backend/internal/usecase/appointment"
	ucschedule "github.com/HiteshiPatil10/tressora-backend/internal/usecase/schedule"
)

type AppointmentHandler struct {
	create   *ucappointment.CreateAppointment
	list     *ucappointment.ListAppointments
	cancel   *ucappointment.CancelAppointment
	start    *ucappointment.StartAppointment
	complete *ucappointment.CompleteAppointment
	reassign *ucschedule.ReassignAppointment
	cache    *cache.Cache
}

func NewAppointmentHandler(
	create *ucappointment.CreateAppointment,
	list *ucappointment.ListAppointments,
	cancel *ucappointment.CancelAppointment,
	start *ucappointment.StartAppointment,
	complete *ucappointment.CompleteAppointment,
	reassign *ucschedule.ReassignAppointment,
	cache *cache.Cache,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:   create,
		list:     list,
		cancel:   cancel,
		start:    start,
		complete: complete,
		reassign: reassign,
		cache:    cache,
	}
}

type createAppointmentRequest struct {
	BarberID    uint   `json:"barber_id" binding:"required"`
	ServiceID   uint   `json:"service_id" binding:"required"`
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone"`
	ClientEmail string `json:"client_email"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Type        string `json:"type"`
	Notes       string `json:"notes"`
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	salonID := currentSalonID(c)

	var req createAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_payload", err.Error())
		return
	}

	var userID uint
	if id := currentUserID(c); id != nil {
		userID = *id
	}

	ap, err := h.create.Execute(c.Request.Context(), ucappointment.CreateAppointmentInput{
		SalonID:     salonID,
		UserID:      userID,
		BarberID:    req.BarberID,
		ServiceID:   req.ServiceID,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		ClientEmail: req.ClientEmail,
		Date:        req.Date,
		Time:        req.Time,
		Type:        req.Type,
		Notes:       req.Notes,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	h.invalidateAnalytics(c, salonID)
	httpresp.Created(c, toAppointmentDTO(ap))
}

// List serves the appointments page. A date narrows to one day, a
// year+month pair narrows to a month; filters stack on top.
func (h *AppointmentHandler) List(c *gin.Context) {
	salonID := currentSalonID(c)

	filter := ucappointment.ListFilter{
		Status: c.Query("status"),
	}
	if v := c.Query("barber_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			httperr.BadRequest(c, "invalid_barber_id", "barber_id must be numeric.")
			return
		}
		filter.BarberID = uint(id)
	}
	if v := c.Query("service_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			httperr.BadRequest(c, "invalid_service_id", "service_id must be numeric.")
			return
		}
		filter.ServiceID = uint(id)
	}

	var (
		apps []models.Appointment
		err  error
	)

	switch {
	case c.Query("date") != "":
		apps, err = h.list.ByDate(c.Request.Context(), salonID, c.Query("date"), filter)

	case c.Query("year") != "" && c.Query("month") != "":
		year, errY := strconv.Atoi(c.Query("year"))
		month, errM := strconv.Atoi(c.Query("month"))
		if errY != nil || errM != nil || month < 1 || month > 12 {
			httperr.BadRequest(c, "invalid_period", "year and month must be numeric, month in 1..12.")
			return
		}
		apps, err = h.list.ByMonth(c.Request.Context(), salonID, year, month, filter)

	default:
		httperr.BadRequest(c, "missing_period", "Provide date=YYYY-MM-DD or year= and month=.")
		return
	}

	if err != nil {
		httperr.FromError(c, err)
		return
	}

	out := make([]dto.AppointmentListDTO, 0, len(apps))
	for i := range apps {
		out = append(out, toAppointmentDTO(&apps[i]))
	}

	httpresp.List(c, out)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.transition(c, func(salonID, userID, apID uint) (*models.Appointment, error) {
		return h.cancel.Execute(c.Request.Context(), salonID, userID, apID)
	})
}

func (h *AppointmentHandler) Start(c *gin.Context) {
	h.transition(c, func(salonID, userID, apID uint) (*models.Appointment, error) {
		return h.start.Execute(c.Request.Context(), salonID, userID, apID)
	})
}

type completeAppointmentRequest struct {
	PaymentMethod string `json:"payment_method"`
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	var req completeAppointmentRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.BadRequest(c, "invalid_payload", err.Error())
			return
		}
	}

	h.transition(c, func(salonID, userID, apID uint) (*models.Appointment, error) {
		return h.complete.Execute(c.Request.Context(), salonID, userID, apID, req.PaymentMethod)
	})
}

type reassignRequest struct {
	BarberID uint `json:"barber_id" binding:"required"`
}

func (h *AppointmentHandler) Reassign(c *gin.Context) {
	var req reassignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_payload", err.Error())
		return
	}

	h.transition(c, func(salonID, userID, apID uint) (*models.Appointment, error) {
		return h.reassign.Execute(c.Request.Context(), salonID, userID, apID, req.BarberID)
	})
}

func (h *AppointmentHandler) transition(
	c *gin.Context,
	run func(salonID, userID, apID uint) (*models.Appointment, error),
) {
	salonID := currentSalonID(c)

	apID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Appointment id must be numeric.")
		return
	}

	var userID uint
	if id := currentUserID(c); id != nil {
		userID = *id
	}

	ap, err := run(salonID, userID, uint(apID))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	h.invalidateAnalytics(c, salonID)
	httpresp.OK(c, toAppointmentDTO(ap))
}

func (h *AppointmentHandler) invalidateAnalytics(c *gin.Context, salonID uint) {
	h.cache.Invalidate(c.Request.Context(), fmt.Sprintf("analytics:%d:*", salonID))
}

func toAppointmentDTO(ap *models.Appointment) dto.AppointmentListDTO {
	return dto.AppointmentListDTO{
		ID:            ap.ID,
		Date:          ap.Date,
		Time:          ap.Time,
		DurationMin:   ap.DurationMin,
		Status:        ap.Status,
		PaymentStatus: ap.PaymentStatus,
		Type:          ap.Type,
		Amount:        ap.Amount,
		ClientName:    ap.ClientName,
		ServiceName:   ap.ServiceName,
		BarberID:      ap.BarberID,
	}
}
