package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/HiteshiPatil10/tressora-backend/internal/domain/schedule"
	"github.com/HiteshiPatil10/tressora-backend/internal/httperr"
	"github.com/HiteshiPatil10/tressora-backend/internal/httpresp"
	"github.com/HiteshiPatil10/tressora-backend/internal/models"
	"github.com/HiteshiPatil10/tressora-backend/internal/timezone"
)

type SalonHandler struct {
	db *gorm.DB
}

func NewSalonHandler(db *gorm.DB) *SalonHandler {
	return &SalonHandler{db: db}
}

func (h *SalonHandler) Get(c *gin.Context) {
	salonID := currentSalonID(c)

	var salon models.Salon
	if err := h.db.WithContext(c.Request.Context()).First(&salon, salonID).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Record not found.")
		return
	}

	httpresp.OK(c, salon)
}

type salonUpdateRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`

	Timezone string `json:"timezone"`

	OpeningTime     string `json:"opening_time"`
	ClosingTime     string `json:"closing_time"`
	SlotIntervalMin int    `json:"slot_interval_min"`
	LunchStart      string `json:"lunch_start"`
	LunchEnd        string `json:"lunch_end"`
}

// Update edits salon settings, including the business hours that drive
// the slot grid. Times are validated as real slot times and opening
// must precede closing.
func (h *SalonHandler) Update(c *gin.Context) {
	salonID := currentSalonID(c)

	var salon models.Salon
	if err := h.db.WithContext(c.Request.Context()).First(&salon, salonID).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Record not found.")
		return
	}

	var req salonUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_payload", err.Error())
		return
	}

	if req.Timezone != "" && !timezone.IsValid(req.Timezone) {
		httperr.BadRequest(c, "invalid_timezone", "Unknown timezone.")
		return
	}

	if req.OpeningTime != "" || req.ClosingTime != "" {
		open, err := schedule.ParseSlotTime(firstNonEmpty(req.OpeningTime, salon.OpeningTime))
		if err != nil {
			httperr.BadRequest(c, "invalid_time", "opening_time must be HH:MM.")
			return
		}
		close, err := schedule.ParseSlotTime(firstNonEmpty(req.ClosingTime, salon.ClosingTime))
		if err != nil {
			httperr.BadRequest(c, "invalid_time", "closing_time must be HH:MM.")
			return
		}
		if !open.Before(close) {
			httperr.BadRequest(c, "invalid_hours", "Opening time must precede closing time.")
			return
		}
	}

	if req.LunchStart != "" {
		if _, err := schedule.ParseSlotTime(req.LunchStart); err != nil {
			httperr.BadRequest(c, "invalid_time", "lunch_start must be HH:MM.")
			return
		}
	}
	if req.LunchEnd != "" {
		if _, err := schedule.ParseSlotTime(req.LunchEnd); err != nil {
			httperr.BadRequest(c, "invalid_time", "lunch_end must be HH:MM.")
			return
		}
	}

	if req.SlotIntervalMin < 0 {
		httperr.BadRequest(c, "invalid_interval", "slot_interval_min must be positive.")
		return
	}

	salon.Name = strings.TrimSpace(req.Name)
	salon.Phone = req.Phone
	salon.Address = req.Address
	if req.Timezone != "" {
		salon.Timezone = req.Timezone
	}
	if req.OpeningTime != "" {
		salon.OpeningTime = req.OpeningTime
	}
	if req.ClosingTime != "" {
		salon.ClosingTime = req.ClosingTime
	}
	if req.SlotIntervalMin > 0 {
		salon.SlotIntervalMin = req.SlotIntervalMin
	}
	if req.LunchStart != "" {
		salon.LunchStart = req.LunchStart
	}
	if req.LunchEnd != "" {
		salon.LunchEnd = req.LunchEnd
	}

	if err := h.db.WithContext(c.Request.Context()).Save(&salon).Error; err != nil {
		httperr.Internal(c, "update_failed", "Could not update salon.")
		return
	}

	writeAudit(h.db, salonID, currentUserID(c), "salon_updated", "salon", &salon.ID, nil)
	httpresp.OK(c, salon)
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
