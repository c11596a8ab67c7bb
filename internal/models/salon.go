package models

import "time"

type Salon struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:100;not null" json:"name"`
	Slug    string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Phone   string `gorm:"size:20" json:"phone"`
	Address string `gorm:"size:255" json:"address"`

	Timezone string `gorm:"size:50" json:"timezone"`

	// Business hours drive the slot grid. Times are zero-padded "HH:MM".
	OpeningTime     string `gorm:"size:5;default:'09:00'" json:"opening_time"`
	ClosingTime     string `gorm:"size:5;default:'19:00'" json:"closing_time"`
	SlotIntervalMin int    `gorm:"default:30" json:"slot_interval_min"`
	LunchStart      string `gorm:"size:5;default:'13:00'" json:"lunch_start"`
	LunchEnd        string `gorm:"size:5;default:'14:00'" json:"lunch_end"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
