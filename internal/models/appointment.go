package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SalonID uint  `gorm:"index" json:"salon_id"`
	Salon   Salon `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	BarberID uint   `gorm:"index" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`

	ClientName  string `gorm:"size:100;not null" json:"client_name"`
	ClientPhone string `gorm:"size:20" json:"client_phone"`

	ServiceID   uint    `json:"service_id"`
	ServiceName string  `gorm:"size:100" json:"service_name"`
	DurationMin int     `json:"duration_min"`
	Amount      float64 `json:"amount"`

	// Date is "YYYY-MM-DD", Time a slot-aligned zero-padded "HH:MM".
	Date string `gorm:"size:10;index" json:"date"`
	Time string `gorm:"size:5" json:"time"`

	// upcoming | in-progress | completed | cancelled
	Status string `gorm:"size:20;default:'upcoming'" json:"status"`
	// paid | pending | partial
	PaymentStatus string `gorm:"size:20;default:'pending'" json:"payment_status"`
	// online | walk-in
	Type string `gorm:"size:20;default:'walk-in'" json:"type"`

	Notes       string     `gorm:"size:255" json:"notes"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
