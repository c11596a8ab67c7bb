package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/HiteshiPatil10/tressora-backend/internal/httperr"
	"github.com/HiteshiPatil10/tressora-backend/internal/models"
)

type InvoiceHandler struct {
	db *gorm.DB
}

func NewInvoiceHandler(db *gorm.DB) *InvoiceHandler {
	return &InvoiceHandler{db: db}
}

// List pages through invoices with optional method and date-range
// filters. Invoices are written by appointment completion, never here.
func (h *InvoiceHandler) List(c *gin.Context) {
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
		Model(&models.Invoice{}).
		Where("salon_id = ?", salonID)

	if method := c.Query("method"); method != "" {
		q = q.Where("payment_method = ?", method)
	}
	if from := c.Query("from"); from != "" {
		q = q.Where("date >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		q = q.Where("date <= ?", to)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "count_failed", "Could not count invoices.")
		return
	}

	var invoices []models.Invoice
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&invoices).Error; err != nil {
		httperr.Internal(c, "list_failed", "Could not list invoices.")
		return
	}

	c.JSON(200, gin.H{
		"page":     page,
		"limit":    limit,
		"total":    total,
		"invoices": invoices,
	})
}

func (h *InvoiceHandler) Get(c *gin.Context) {
	salonID := currentSalonID(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invoice id must be numeric.")
		return
	}

	var invoice models.Invoice
	if err := h.db.WithContext(c.Request.Context()).
		Where("salon_id = ?", salonID).
		First(&invoice, uint(id)).Error; err != nil {
		httperr.NotFound(c, "invoice_not_found", "Record not found.")
		return
	}

	c.JSON(200, invoice)
}

// Summary totals collected revenue per payment method for the billing
// page header.
func (h *InvoiceHandler) Summary(c *gin.Context) {
	salonID := currentSalonID(c)

	type methodTotal struct {
		PaymentMethod string  `json:"payment_method"`
		Amount        float64 `json:"amount"`
		Count         int64   `json:"count"`
	}

	q := h.db.WithContext(c.Request.Context()).
		Model(&models.Invoice{}).
		Select("payment_method, SUM(amount) as amount, COUNT(*) as count").
		Where("salon_id = ?", salonID)

	if from := c.Query("from"); from != "" {
		q = q.Where("date >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		q = q.Where("date <= ?", to)
	}

	var rows []methodTotal
	if err := q.Group("payment_method").Find(&rows).Error; err != nil {
		httperr.Internal(c, "summary_failed", "Could not summarise invoices.")
		return
	}

	var totalAmount float64
	var totalCount int64
	for _, r := range rows {
		totalAmount += r.Amount
		totalCount += r.Count
	}

	c.JSON(200, gin.H{
		"total_amount": totalAmount,
		"total_count":  totalCount,
		"methods":      rows,
	})
}
