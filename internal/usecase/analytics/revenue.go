package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/HiteshiPatil10/tressora-backend/internal/cache"
	domain "github.com/HiteshiPatil10/tressora-backend/internal/domain/analytics"
	"github.com/HiteshiPatil10/tressora-backend/internal/httperr"
	"github.com/HiteshiPatil10/tressora-backend/internal/models"
	"github.com/HiteshiPatil10/tressora-backend/internal/timezone"
)

const cacheTTL = 60 * time.Second

// RevenueReport is the chart payload for one period.
type RevenueReport struct {
	Period            string         `json:"period"`
	Groups            []domain.Group `json:"groups"`
	TotalRevenue      float64        `json:"total_revenue"`
	TotalBookings     int            `json:"total_bookings"`
	AveragePerBooking float64        `json:"average_per_booking"`
}

type Revenue struct {
	repo    Repository
	cache   *cache.Cache
	timeout time.Duration
}

func NewRevenue(
	repo Repository,
	c *cache.Cache,
	timeout time.Duration,
) *Revenue {
	return &Revenue{
		repo:    repo,
		cache:   c,
		timeout: timeout,
	}
}

// Execute aggregates completed-appointment revenue for a period:
// "weekly" (last 7 days, weekday labels), "monthly" (last 12 months,
// month labels) or "yearly" (last 5 years). Reports are served from a
// short-TTL cache; a cold or unreachable cache falls through to the
// store.
func (uc *Revenue) Execute(
	ctx context.Context,
	salonID uint,
	period string,
) (*RevenueReport, error) {

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	key := fmt.Sprintf("analytics:%d:revenue:%s", salonID, period)
	var cached RevenueReport
	if uc.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	salon, err := uc.repo.GetSalonByID(ctx, salonID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(salon.Timezone)

	var from time.Time
	var keyFn func(models.Appointment) string

	switch period {
	case "weekly":
		from = now.AddDate(0, 0, -6)
		keyFn = func(ap models.Appointment) string {
			return dateLabel(ap.Date, "Mon")
		}
	case "monthly":
		from = now.AddDate(0, -11, 0)
		keyFn = func(ap models.Appointment) string {
			return dateLabel(ap.Date, "Jan")
		}
	case "yearly":
		from = now.AddDate(-4, 0, 0)
		keyFn = func(ap models.Appointment) string {
			return dateLabel(ap.Date, "2006")
		}
	default:
		return nil, httperr.ErrBusiness("invalid_period")
	}

	apps, err := uc.repo.ListAppointmentsForPeriod(
		ctx,
		salonID,
		from.Format("2006-01-02"),
		now.Format("2006-01-02"),
	)
	if err != nil {
		return nil, err
	}

	groups := domain.AggregateRevenue(
		completedOnly(apps),
		keyFn,
		appointmentAmount,
	)

	report := &RevenueReport{
		Period:            period,
		Groups:            groups,
		TotalRevenue:      domain.TotalRevenue(groups),
		TotalBookings:     domain.TotalBookings(groups),
		AveragePerBooking: domain.AveragePerBooking(groups),
	}

	uc.cache.Set(ctx, key, report, cacheTTL)

	return report, nil
}

func completedOnly(apps []models.Appointment) []models.Appointment {
	out := make([]models.Appointment, 0, len(apps))
	for _, ap := range apps {
		if ap.Status == "completed" {
			out = append(out, ap)
		}
	}
	return out
}

func appointmentAmount(ap models.Appointment) float64 {
	// amounts are stored zero-valued when missing; never an error
	return ap.Amount
}

// dateLabel formats a canonical "YYYY-MM-DD" date with the given layout,
// leaving unparseable dates as their own bucket rather than failing.
func dateLabel(date string, layout string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format(layout)
}
