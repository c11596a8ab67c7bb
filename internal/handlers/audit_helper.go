package handlers

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/HiteshiPatil10/tressora-backend/internal/middleware"
	"github.com/HiteshiPatil10/tressora-backend/internal/models"
)

func writeAudit(
	db *gorm.DB,
	salonID uint,
	userID *uint,
	action string,
	entity string,
	entityID *uint,
	meta any,
) {

	var payload string
	if meta != nil {
		if b, err := json.Marshal(meta); err == nil {
			payload = string(b)
		}
	}

	log := models.AuditLog{
		SalonID:  salonID,
		UserID:   userID,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: payload,
	}

	db.Create(&log)
}

func currentUserID(c *gin.Context) *uint {
	if v, ok := c.Get(middleware.ContextUserID); ok {
		if id, ok := v.(uint); ok {
			return &id
		}
	}
	return nil
}

func currentSalonID(c *gin.Context) uint {
	if v, ok := c.Get(middleware.ContextSalonID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
