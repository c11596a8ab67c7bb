package analytics

import (
	"context"
	"time"

	"github.com/HiteshiPatil10/tressora-backend/internal/timezone"
)

// Overview is the dashboard KPI payload for today.
type Overview struct {
	Date           string  `json:"date"`
	TodayRevenue   float64 `json:"today_revenue"`
	TotalBookings  int     `json:"total_bookings"`
	ActiveBarbers  int     `json:"active_barbers"`
	TotalBarbers   int     `json:"total_barbers"`
	WalkIns        int     `json:"walk_ins"`
	OnlineBookings int     `json:"online_bookings"`
}

type GetOverview struct {
	repo    Repository
	timeout time.Duration
}

func NewGetOverview(
	repo Repository,
	timeout time.Duration,
) *GetOverview {
	return &GetOverview{
		repo:    repo,
		timeout: timeout,
	}
}

func (uc *GetOverview) Execute(
	ctx context.Context,
	salonID uint,
) (*Overview, error) {

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	salon, err := uc.repo.GetSalonByID(ctx, salonID)
	if err != nil {
		return nil, err
	}

	today := timezone.Today(salon.Timezone)

	apps, err := uc.repo.ListAppointmentsForPeriod(ctx, salonID, today, today)
	if err != nil {
		return nil, err
	}

	barbers, err := uc.repo.ListBarbers(ctx, salonID)
	if err != nil {
		return nil, err
	}

	out := &Overview{
		Date:         today,
		TotalBarbers: len(barbers),
	}

	for _, b := range barbers {
		if b.Status == "present" || b.Status == "half-day" {
			out.ActiveBarbers++
		}
	}

	for _, ap := range apps {
		if ap.Status == "cancelled" {
			continue
		}
		out.TotalBookings++
		if ap.PaymentStatus == "paid" {
			out.TodayRevenue += ap.Amount
		}
		switch ap.Type {
		case "walk-in":
			out.WalkIns++
		case "online":
			out.OnlineBookings++
		}
	}

	return out, nil
}
