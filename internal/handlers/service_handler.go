package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/HiteshiPatil10/tressora-backend/internal/httperr"
	"github.com/HiteshiPatil10/tressora-backend/internal/httpresp"
	"github.com/HiteshiPatil10/tressora-backend/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

func (h *ServiceHandler) List(c *gin.Context) {
	salonID := currentSalonID(c)

	q := h.db.WithContext(c.Request.Context()).
		Where("salon_id = ?", salonID)

	if category := c.Query("category"); category != "" {
		q = q.Where("category = ?", category)
	}
	if c.Query("active") == "true" {
		q = q.Where("active = ?", true)
	}

	var services []models.Service
	if err := q.Order("name ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "list_failed", "Could not list services.")
		return
	}

	httpresp.List(c, services)
}

type serviceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
	DurationMin int     `json:"duration_min" binding:"required"`
	Category    string  `json:"category"`
	Active      *bool   `json:"active"`
}

func (h *ServiceHandler) Create(c *gin.Context) {
	salonID := currentSalonID(c)

	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_payload", err.Error())
		return
	}

	if req.Price < 0 || req.DurationMin <= 0 {
		httperr.BadRequest(c, "invalid_service", "Price must be non-negative and duration positive.")
		return
	}

	svc := models.Service{
		SalonID:     salonID,
		Name:        strings.TrimSpace(req.Name),
		Price:       req.Price,
		DurationMin: req.DurationMin,
		Category:    req.Category,
		Active:      true,
	}
	if req.Active != nil {
		svc.Active = *req.Active
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&svc).Error; err != nil {
		httperr.Internal(c, "create_failed", "Could not create service.")
		return
	}

	writeAudit(h.db, salonID, currentUserID(c), "service_created", "service", &svc.ID, nil)
	httpresp.Created(c, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	salonID := currentSalonID(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Service id must be numeric.")
		return
	}

	var svc models.Service
	if err := h.db.WithContext(c.Request.Context()).
		Where("salon_id = ?", salonID).
		First(&svc, uint(id)).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Record not found.")
		return
	}

	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_payload", err.Error())
		return
	}

	if req.Price < 0 || req.DurationMin <= 0 {
		httperr.BadRequest(c, "invalid_service", "Price must be non-negative and duration positive.")
		return
	}

	svc.Name = strings.TrimSpace(req.Name)
	svc.Price = req.Price
	svc.DurationMin = req.DurationMin
	svc.Category = req.Category
	if req.Active != nil {
		svc.Active = *req.Active
	}

	if err := h.db.WithContext(c.Request.Context()).Save(&svc).Error; err != nil {
		httperr.Internal(c, "update_failed", "Could not update service.")
		return
	}

	writeAudit(h.db, salonID, currentUserID(c), "service_updated", "service", &svc.ID, nil)
	httpresp.OK(c, svc)
}

// Delete deactivates instead of removing when the service has past
// bookings, so history keeps resolving.
func (h *ServiceHandler) Delete(c *gin.Context) {
	salonID := currentSalonID(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Service id must be numeric.")
		return
	}

	var svc models.Service
	if err := h.db.WithContext(c.Request.Context()).
		Where("salon_id = ?", salonID).
		First(&svc, uint(id)).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Record not found.")
		return
	}

	var used int64
	h.db.WithContext(c.Request.Context()).
		Model(&models.Appointment{}).
		Where("salon_id = ? AND service_id = ?", salonID, svc.ID).
		Count(&used)

	if used > 0 {
		svc.Active = false
		if err := h.db.WithContext(c.Request.Context()).Save(&svc).Error; err != nil {
			httperr.Internal(c, "update_failed", "Could not deactivate service.")
			return
		}
		writeAudit(h.db, salonID, currentUserID(c), "service_deactivated", "service", &svc.ID, nil)
		httpresp.OK(c, gin.H{"deactivated": true})
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Delete(&svc).Error; err != nil {
		httperr.Internal(c, "delete_failed", "Could not delete service.")
		return
	}

	writeAudit(h.db, salonID, currentUserID(c), "service_deleted", "service", &svc.ID, nil)
	httpresp.OK(c, gin.H{"deleted": true})
}
