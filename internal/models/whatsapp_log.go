package models

import "time"

type WhatsAppLog struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"index" json:"salon_id"`

	ClientName string `gorm:"size:100" json:"client_name"`
	Phone      string `gorm:"size:20" json:"phone"`

	// booking-confirmation | bill-receipt | thank-you | offer-broadcast
	MessageType string `gorm:"size:30" json:"message_type"`

	DateSent time.Time `json:"date_sent"`

	// delivered | sent | failed | read
	Status string `gorm:"size:20;default:'sent'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
}
