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

type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

// List supports ?search= against name and phone, matching the way the
// front desk looks clients up mid-call.
func (h *ClientHandler) List(c *gin.Context) {
	salonID := currentSalonID(c)

	q := h.db.WithContext(c.Request.Context()).
		Where("salon_id = ?", salonID)

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(name) LIKE ? OR phone LIKE ?", like, "%"+search+"%")
	}

	var clients []models.Client
	if err := q.Order("name ASC").Find(&clients).Error; err != nil {
		httperr.Internal(c, "list_failed", "Could not list clients.")
		return
	}

	httpresp.List(c, clients)
}

func (h *ClientHandler) Get(c *gin.Context) {
	salonID := currentSalonID(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Client id must be numeric.")
		return
	}

	var client models.Client
	if err := h.db.WithContext(c.Request.Context()).
		Where("salon_id = ?", salonID).
		First(&client, uint(id)).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Record not found.")
		return
	}

	httpresp.OK(c, client)
}

type clientRequest struct {
	Name              string `json:"name" binding:"required"`
	Phone             string `json:"phone"`
	Email             string `json:"email"`
	FavoriteBarber    string `json:"favorite_barber"`
	PreferredServices string `json:"preferred_services"`
}

func (h *ClientHandler) Create(c *gin.Context) {
	salonID := currentSalonID(c)

	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_payload", err.Error())
		return
	}

	if req.Phone != "" {
		var count int64
		h.db.WithContext(c.Request.Context()).
			Model(&models.Client{}).
			Where("salon_id = ? AND phone = ?", salonID, req.Phone).
			Count(&count)
		if count > 0 {
			httperr.Conflict(c, "client_exists", "A client with this phone already exists.")
			return
		}
	}

	client := models.Client{
		SalonID:           salonID,
		Name:              strings.TrimSpace(req.Name),
		Phone:             req.Phone,
		Email:             req.Email,
		FavoriteBarber:    req.FavoriteBarber,
		PreferredServices: req.PreferredServices,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&client).Error; err != nil {
		httperr.Internal(c, "create_failed", "Could not create client.")
		return
	}

	writeAudit(h.db, salonID, currentUserID(c), "client_created", "client", &client.ID, nil)
	httpresp.Created(c, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	salonID := currentSalonID(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Client id must be numeric.")
		return
	}

	var client models.Client
	if err := h.db.WithContext(c.Request.Context()).
		Where("salon_id = ?", salonID).
		First(&client, uint(id)).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Record not found.")
		return
	}

	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_payload", err.Error())
		return
	}

	client.Name = strings.TrimSpace(req.Name)
	client.Phone = req.Phone
	client.Email = req.Email
	client.FavoriteBarber = req.FavoriteBarber
	client.PreferredServices = req.PreferredServices

	if err := h.db.WithContext(c.Request.Context()).Save(&client).Error; err != nil {
		httperr.Internal(c, "update_failed", "Could not update client.")
		return
	}

	writeAudit(h.db, salonID, currentUserID(c), "client_updated", "client", &client.ID, nil)
	httpresp.OK(c, client)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	salonID := currentSalonID(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Client id must be numeric.")
		return
	}

	res := h.db.WithContext(c.Request.Context()).
		Where("salon_id = ?", salonID).
		Delete(&models.Client{}, uint(id))
	if res.Error != nil {
		httperr.Internal(c, "delete_failed", "Could not delete client.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "client_not_found", "Record not found.")
		return
	}

	clientID := uint(id)
	writeAudit(h.db, salonID, currentUserID(c), "client_deleted", "client", &clientID, nil)
	httpresp.OK(c, gin.H{"deleted": true})
}
