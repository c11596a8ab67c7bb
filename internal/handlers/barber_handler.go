package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/HiteshiPatil10/tressora-backend/internal/domain/schedule"
	"github.com/HiteshiPatil10/tressora-backend/internal/httperr"
	"github.com/HiteshiPatil10/tressora-backend/internal/httpresp"
	"github.com/HiteshiPatil10/tressora-backend/internal/models"
)

type BarberHandler struct {
	db *gorm.DB
}

func NewBarberHandler(db *gorm.DB) *BarberHandler {
	return &BarberHandler{db: db}
}

func (h *BarberHandler) List(c *gin.Context) {
	salonID := currentSalonID(c)

	var barbers []models.Barber
	if err := h.db.WithContext(c.Request.Context()).
		Where("salon_id = ?", salonID).
		Order("name ASC").
		Find(&barbers).Error; err != nil {
		httperr.Internal(c, "list_failed", "Could not list staff.")
		return
	}

	httpresp.List(c, barbers)
}

func (h *BarberHandler) Get(c *gin.Context) {
	salonID := currentSalonID(c)

	barber, ok := h.find(c, salonID)
	if !ok {
		return
	}

	httpresp.OK(c, barber)
}

type barberRequest struct {
	Name       string `json:"name" binding:"required"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Avatar     string `json:"avatar"`
	JoinDate   string `json:"join_date"`
	LoginTime  string `json:"login_time"`
	LogoutTime string `json:"logout_time"`
}

func (h *BarberHandler) Create(c *gin.Context) {
	salonID := currentSalonID(c)

	var req barberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_payload", err.Error())
		return
	}

	barber := models.Barber{
		SalonID:    salonID,
		Name:       strings.TrimSpace(req.Name),
		Phone:      req.Phone,
		Email:      req.Email,
		Role:       req.Role,
		Avatar:     req.Avatar,
		Status:     string(schedule.BarberPresent),
		JoinDate:   req.JoinDate,
		LoginTime:  req.LoginTime,
		LogoutTime: req.LogoutTime,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&barber).Error; err != nil {
		httperr.Internal(c, "create_failed", "Could not create staff member.")
		return
	}

	writeAudit(h.db, salonID, currentUserID(c), "barber_created", "barber", &barber.ID, nil)
	httpresp.Created(c, barber)
}

func (h *BarberHandler) Update(c *gin.Context) {
	salonID := currentSalonID(c)

	barber, ok := h.find(c, salonID)
	if !ok {
		return
	}

	var req barberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_payload", err.Error())
		return
	}

	barber.Name = strings.TrimSpace(req.Name)
	barber.Phone = req.Phone
	barber.Email = req.Email
	barber.Role = req.Role
	barber.Avatar = req.Avatar
	barber.JoinDate = req.JoinDate
	barber.LoginTime = req.LoginTime
	barber.LogoutTime = req.LogoutTime

	if err := h.db.WithContext(c.Request.Context()).Save(barber).Error; err != nil {
		httperr.Internal(c, "update_failed", "Could not update staff member.")
		return
	}

	writeAudit(h.db, salonID, currentUserID(c), "barber_updated", "barber", &barber.ID, nil)
	httpresp.OK(c, barber)
}

type barberStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// SetStatus flips a barber between present, absent, half-day and
// on-leave. The change takes effect on the next slot derivation; no
// appointments are touched here.
func (h *BarberHandler) SetStatus(c *gin.Context) {
	salonID := currentSalonID(c)

	barber, ok := h.find(c, salonID)
	if !ok {
		return
	}

	var req barberStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_payload", err.Error())
		return
	}

	if !schedule.ValidBarberStatus(req.Status) {
		httperr.BadRequest(c, "invalid_status", "Status must be present, absent, half-day or on-leave.")
		return
	}

	previous := barber.Status
	barber.Status = req.Status

	if err := h.db.WithContext(c.Request.Context()).Save(barber).Error; err != nil {
		httperr.Internal(c, "update_failed", "Could not update status.")
		return
	}

	writeAudit(h.db, salonID, currentUserID(c), "barber_status_changed", "barber", &barber.ID, gin.H{
		"from": previous,
		"to":   req.Status,
	})
	httpresp.OK(c, barber)
}

func (h *BarberHandler) Delete(c *gin.Context) {
	salonID := currentSalonID(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Barber id must be numeric.")
		return
	}

	var upcoming int64
	h.db.WithContext(c.Request.Context()).
		Model(&models.Appointment{}).
		Where("salon_id = ? AND barber_id = ? AND status IN ?", salonID, uint(id),
			[]string{"upcoming", "in-progress"}).
		Count(&upcoming)
	if upcoming > 0 {
		httperr.Conflict(c, "barber_has_bookings", "Reassign or cancel open bookings first.")
		return
	}

	res := h.db.WithContext(c.Request.Context()).
		Where("salon_id = ?", salonID).
		Delete(&models.Barber{}, uint(id))
	if res.Error != nil {
		httperr.Internal(c, "delete_failed", "Could not delete staff member.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "barber_not_found", "Record not found.")
		return
	}

	barberID := uint(id)
	writeAudit(h.db, salonID, currentUserID(c), "barber_deleted", "barber", &barberID, nil)
	httpresp.OK(c, gin.H{"deleted": true})
}

// Attendance summarises today's staffing: how many are present, on a
// half day, absent or on leave.
func (h *BarberHandler) Attendance(c *gin.Context) {
	salonID := currentSalonID(c)

	var barbers []models.Barber
	if err := h.db.WithContext(c.Request.Context()).
		Where("salon_id = ?", salonID).
		Find(&barbers).Error; err != nil {
		httperr.Internal(c, "list_failed", "Could not list staff.")
		return
	}

	counts := map[string]int{}
	for _, b := range barbers {
		counts[b.Status]++
	}

	httpresp.OK(c, gin.H{
		"total":    len(barbers),
		"present":  counts[string(schedule.BarberPresent)],
		"half_day": counts[string(schedule.BarberHalfDay)],
		"absent":   counts[string(schedule.BarberAbsent)],
		"on_leave": counts[string(schedule.BarberOnLeave)],
	})
}

func (h *BarberHandler) find(c *gin.Context, salonID uint) (*models.Barber, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Barber id must be numeric.")
		return nil, false
	}

	var barber models.Barber
	if err := h.db.WithContext(c.Request.Context()).
		Where("salon_id = ?", salonID).
		First(&barber, uint(id)).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Record not found.")
		return nil, false
	}

	return &barber, true
}
