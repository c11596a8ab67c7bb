package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/HiteshiPatil10/tressora-backend/internal/httperr"
	"github.com/HiteshiPatil10/tressora-backend/internal/models"
)

type WhatsAppHandler struct {
	db *gorm.DB
}

func NewWhatsAppHandler(db *gorm.DB) *WhatsAppHandler {
	return &WhatsAppHandler{db: db}
}

// List pages through the outbound message log, newest first, with
// optional type and status filters.
func (h *WhatsAppHandler) List(c *gin.Context) {
	salonID := currentSalonID(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	q := h.db.WithContext(c.Request.Context()).
		Model(&models.WhatsAppLog{}).
		Where("salon_id = ?", salonID)

	if t := c.Query("type"); t != "" {
		q = q.Where("message_type = ?", t)
	}
	if s := c.Query("status"); s != "" {
		q = q.Where("status = ?", s)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "count_failed", "Could not count messages.")
		return
	}

	var logs []models.WhatsAppLog
	if err := q.
		Order("date_sent DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&logs).Error; err != nil {
		httperr.Internal(c, "list_failed", "Could not list messages.")
		return
	}

	c.JSON(200, gin.H{
		"page":  page,
		"limit": limit,
		"total": total,
		"logs":  logs,
	})
}

// Summary counts messages per delivery status for the status chips on
// the messages page.
func (h *WhatsAppHandler) Summary(c *gin.Context) {
	salonID := currentSalonID(c)

	type statusCount struct {
		Status string `json:"status"`
		Count  int64  `json:"count"`
	}

	var rows []statusCount
	if err := h.db.WithContext(c.Request.Context()).
		Model(&models.WhatsAppLog{}).
		Select("status, COUNT(*) as count").
		Where("salon_id = ?", salonID).
		Group("status").
		Find(&rows).Error; err != nil {
		httperr.Internal(c, "summary_failed", "Could not summarise messages.")
		return
	}

	var total int64
	counts := gin.H{}
	for _, r := range rows {
		counts[r.Status] = r.Count
		total += r.Count
	}

	c.JSON(200, gin.H{
		"total":    total,
		"statuses": counts,
	})
}
