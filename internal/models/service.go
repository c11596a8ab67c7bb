package models

import "time"

type Service struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"index" json:"salon_id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_min"`
	Category    string  `gorm:"size:50" json:"category"`
	Active      bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
