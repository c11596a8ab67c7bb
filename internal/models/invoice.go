package models

import "time"

type Invoice struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"index" json:"salon_id"`

	InvoiceNumber string `gorm:"size:40;uniqueIndex;not null" json:"invoice_number"`

	ClientName string  `gorm:"size:100" json:"client_name"`
	Amount     float64 `json:"amount"`

	// cash | card | upi | online
	PaymentMethod string `gorm:"size:20" json:"payment_method"`

	Date     string `gorm:"size:10;index" json:"date"`
	Services string `gorm:"size:255" json:"services"`
	Barber   string `gorm:"size:100" json:"barber"`

	AppointmentID *uint `json:"appointment_id"`

	CreatedAt time.Time `json:"created_at"`
}
