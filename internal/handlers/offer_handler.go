package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domainoffer "github.com/HiteshiPatil10/tressora-backend/internal/domain/offer"
	"github.com/HiteshiPatil10/tressora-backend/internal/httperr"
	"github.com/HiteshiPatil10/tressora-backend/internal/httpresp"
	"github.com/HiteshiPatil10/tressora-backend/internal/models"
	"github.com/HiteshiPatil10/tressora-backend/internal/timezone"
)

type OfferHandler struct {
	db *gorm.DB
}

func NewOfferHandler(db *gorm.DB) *OfferHandler {
	return &OfferHandler{db: db}
}

func (h *OfferHandler) List(c *gin.Context) {
	salonID := currentSalonID(c)

	var offers []models.Offer
	if err := h.db.WithContext(c.Request.Context()).
		Where("salon_id = ?", salonID).
		Order("created_at DESC").
		Find(&offers).Error; err != nil {
		httperr.Internal(c, "list_failed", "Could not list offers.")
		return
	}

	// Expiry is derived on read so an offer lapses the day after its
	// valid-till date without a background job.
	now := h.salonNow(c, salonID)
	for i := range offers {
		applyOfferStatus(&offers[i], now)
	}

	httpresp.List(c, offers)
}

type offerRequest struct {
	Title              string  `json:"title" binding:"required"`
	DiscountPercent    float64 `json:"discount_percent" binding:"required"`
	ValidTill          string  `json:"valid_till" binding:"required"`
	Code               string  `json:"code"`
	ApplicableServices string  `json:"applicable_services"`
}

func (h *OfferHandler) Create(c *gin.Context) {
	salonID := currentSalonID(c)

	var req offerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_payload", err.Error())
		return
	}

	if req.DiscountPercent <= 0 || req.DiscountPercent > 100 {
		httperr.BadRequest(c, "invalid_discount", "Discount must be between 0 and 100.")
		return
	}
	if _, err := time.Parse("2006-01-02", req.ValidTill); err != nil {
		httperr.BadRequest(c, "invalid_date", "valid_till must be YYYY-MM-DD.")
		return
	}

	offer := models.Offer{
		SalonID:            salonID,
		Title:              strings.TrimSpace(req.Title),
		DiscountPercent:    req.DiscountPercent,
		ValidTill:          req.ValidTill,
		Code:               strings.ToUpper(strings.TrimSpace(req.Code)),
		ApplicableServices: req.ApplicableServices,
	}
	applyOfferStatus(&offer, h.salonNow(c, salonID))

	if err := h.db.WithContext(c.Request.Context()).Create(&offer).Error; err != nil {
		httperr.Internal(c, "create_failed", "Could not create offer.")
		return
	}

	writeAudit(h.db, salonID, currentUserID(c), "offer_created", "offer", &offer.ID, nil)
	httpresp.Created(c, offer)
}

func (h *OfferHandler) Update(c *gin.Context) {
	salonID := currentSalonID(c)

	offer, ok := h.find(c, salonID)
	if !ok {
		return
	}

	var req offerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_payload", err.Error())
		return
	}

	if req.DiscountPercent <= 0 || req.DiscountPercent > 100 {
		httperr.BadRequest(c, "invalid_discount", "Discount must be between 0 and 100.")
		return
	}
	if _, err := time.Parse("2006-01-02", req.ValidTill); err != nil {
		httperr.BadRequest(c, "invalid_date", "valid_till must be YYYY-MM-DD.")
		return
	}

	offer.Title = strings.TrimSpace(req.Title)
	offer.DiscountPercent = req.DiscountPercent
	offer.ValidTill = req.ValidTill
	offer.Code = strings.ToUpper(strings.TrimSpace(req.Code))
	offer.ApplicableServices = req.ApplicableServices
	applyOfferStatus(offer, h.salonNow(c, salonID))

	if err := h.db.WithContext(c.Request.Context()).Save(offer).Error; err != nil {
		httperr.Internal(c, "update_failed", "Could not update offer.")
		return
	}

	writeAudit(h.db, salonID, currentUserID(c), "offer_updated", "offer", &offer.ID, nil)
	httpresp.OK(c, offer)
}

func (h *OfferHandler) Delete(c *gin.Context) {
	salonID := currentSalonID(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Offer id must be numeric.")
		return
	}

	res := h.db.WithContext(c.Request.Context()).
		Where("salon_id = ?", salonID).
		Delete(&models.Offer{}, uint(id))
	if res.Error != nil {
		httperr.Internal(c, "delete_failed", "Could not delete offer.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "offer_not_found", "Record not found.")
		return
	}

	offerID := uint(id)
	writeAudit(h.db, salonID, currentUserID(c), "offer_deleted", "offer", &offerID, nil)
	httpresp.OK(c, gin.H{"deleted": true})
}

// Broadcast fans the offer out to every client with a phone number.
// Actual WhatsApp delivery is out of process; this endpoint records
// one outbound log entry per recipient.
func (h *OfferHandler) Broadcast(c *gin.Context) {
	salonID := currentSalonID(c)

	offer, ok := h.find(c, salonID)
	if !ok {
		return
	}

	if domainoffer.Status(offer.ValidTill, h.salonNow(c, salonID)) == domainoffer.StatusExpired {
		httperr.Conflict(c, "offer_expired", "Cannot broadcast an expired offer.")
		return
	}

	var clients []models.Client
	if err := h.db.WithContext(c.Request.Context()).
		Where("salon_id = ? AND phone <> ''", salonID).
		Find(&clients).Error; err != nil {
		httperr.Internal(c, "list_failed", "Could not list clients.")
		return
	}

	sent := 0
	for _, client := range clients {
		entry := models.WhatsAppLog{
			SalonID:     salonID,
			ClientName:  client.Name,
			Phone:       client.Phone,
			MessageType: "offer-broadcast",
			DateSent:    time.Now(),
			Status:      "sent",
		}
		if err := h.db.WithContext(c.Request.Context()).Create(&entry).Error; err == nil {
			sent++
		}
	}

	writeAudit(h.db, salonID, currentUserID(c), "offer_broadcast", "offer", &offer.ID, gin.H{
		"recipients": sent,
	})

	httpresp.OK(c, gin.H{
		"offer_id":   offer.ID,
		"recipients": sent,
	})
}

func (h *OfferHandler) find(c *gin.Context, salonID uint) (*models.Offer, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Offer id must be numeric.")
		return nil, false
	}

	var offer models.Offer
	if err := h.db.WithContext(c.Request.Context()).
		Where("salon_id = ?", salonID).
		First(&offer, uint(id)).Error; err != nil {
		httperr.NotFound(c, "offer_not_found", "Record not found.")
		return nil, false
	}

	return &offer, true
}

// A stored "scheduled" status survives until the offer expires; only
// expiry is ever derived over it.
func applyOfferStatus(o *models.Offer, now time.Time) {
	derived := domainoffer.Status(o.ValidTill, now)
	if derived == domainoffer.StatusExpired || o.Status == "" {
		o.Status = derived
		return
	}
	if o.Status != "scheduled" {
		o.Status = derived
	}
}

func (h *OfferHandler) salonNow(c *gin.Context, salonID uint) time.Time {
	var salon models.Salon
	if err := h.db.WithContext(c.Request.Context()).First(&salon, salonID).Error; err != nil {
		return timezone.Now()
	}
	return timezone.NowIn(salon.Timezone)
}
