package models

import "time"

type Barber struct {
	ID      uint  `gorm:"primaryKey" json:"id"`
	SalonID uint  `gorm:"index" json:"salon_id"`
	Salon   Salon `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Name   string `gorm:"size:100;not null" json:"name"`
	Phone  string `gorm:"size:20" json:"phone"`
	Email  string `gorm:"size:100" json:"email"`
	Role   string `gorm:"size:50" json:"role"`
	Avatar string `gorm:"size:10" json:"avatar"`

	// present | absent | half-day | on-leave
	Status string `gorm:"size:20;default:'present'" json:"status"`

	JoinDate   string  `gorm:"size:10" json:"join_date"`
	LoginTime  string  `gorm:"size:5" json:"login_time"`
	LogoutTime string  `gorm:"size:5" json:"logout_time"`
	TotalHours float64 `json:"total_hours"`

	ClientsHandled   int     `json:"clients_handled"`
	RevenueGenerated float64 `json:"revenue_generated"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
