package models

import "time"

type Offer struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"index" json:"salon_id"`

	Title           string  `gorm:"size:100;not null" json:"title"`
	DiscountPercent float64 `json:"discount_percent"`
	ValidTill       string  `gorm:"size:10" json:"valid_till"`
	Code            string  `gorm:"size:30" json:"code"`

	// Comma-separated service names the offer applies to.
	ApplicableServices string `gorm:"size:255" json:"applicable_services"`

	// active | expired | scheduled
	Status string `gorm:"size:20;default:'active'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
