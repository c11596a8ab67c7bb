package dto

import (
	"github.com/HiteshiPatil10/tressora-backend/internal/domain/schedule"
	"github.com/HiteshiPatil10/tressora-backend/internal/models"
)

type BarberColumn struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type SlotCell struct {
	BarberID    uint                `json:"barber_id"`
	Status      string              `json:"status"`
	Label       string              `json:"label"`
	Color       string              `json:"color"`
	Appointment *models.Appointment `json:"appointment,omitempty"`
}

type SlotRow struct {
	Time  string     `json:"time"`
	Cells []SlotCell `json:"cells"`
}

type SlotMatrix struct {
	Date     string             `json:"date"`
	Barbers  []BarberColumn     `json:"barbers"`
	Rows     []SlotRow          `json:"rows"`
	Warnings []schedule.Warning `json:"warnings,omitempty"`
}
