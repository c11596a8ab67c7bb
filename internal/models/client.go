package models

import "time"

// Client has no login; it is a salon-side record keyed by phone.
type Client struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"index" json:"salon_id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20" json:"phone"`
	Email string `gorm:"size:100" json:"email"`

	TotalVisits       int     `json:"total_visits"`
	TotalSpend        float64 `json:"total_spend"`
	LastVisit         string  `gorm:"size:10" json:"last_visit"`
	FavoriteBarber    string  `gorm:"size:100" json:"favorite_barber"`
	PreferredServices string  `gorm:"size:255" json:"preferred_services"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
