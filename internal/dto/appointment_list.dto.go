package dto

type AppointmentListDTO struct {
	ID            uint    `json:"id"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	DurationMin   int     `json:"duration_min"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"payment_status"`
	Type          string  `json:"type"`
	Amount        float64 `json:"amount"`
	ClientName    string  `json:"client_name"`
	ServiceName   string  `json:"service_name"`
	BarberID      uint    `json:"barber_id"`
}
