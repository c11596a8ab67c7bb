package analytics

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/HiteshiPatil10/tressora-backend/internal/cache"
	domain "github.com/HiteshiPatil10/tressora-backend/internal/domain/analytics"
	"github.com/HiteshiPatil10/tressora-backend/internal/models"
	"github.com/HiteshiPatil10/tressora-backend/internal/timezone"
)

// BarberStat is the per-barber analytics row.
type BarberStat struct {
	BarberID     uint    `json:"barber_id"`
	Name         string  `json:"name"`
	TotalClients int     `json:"total_clients"`
	Completed    int     `json:"completed"`
	Revenue      float64 `json:"revenue"`
	AvgPerClient float64 `json:"avg_per_client"`
}

type Breakdown struct {
	repo    Repository
	cache   *cache.Cache
	timeout time.Duration
}

func NewBreakdown(
	repo Repository,
	c *cache.Cache,
	timeout time.Duration,
) *Breakdown {
	return &Breakdown{
		repo:    repo,
		cache:   c,
		timeout: timeout,
	}
}

// ByService groups completed-appointment revenue by service name over
// the trailing month.
func (uc *Breakdown) ByService(
	ctx context.Context,
	salonID uint,
) ([]domain.Group, error) {

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	key := fmt.Sprintf("analytics:%d:services", salonID)
	var cached []domain.Group
	if uc.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	apps, err := uc.trailingMonth(ctx, salonID)
	if err != nil {
		return nil, err
	}

	groups := domain.AggregateRevenue(
		completedOnly(apps),
		func(ap models.Appointment) string { return ap.ServiceName },
		appointmentAmount,
	)

	uc.cache.Set(ctx, key, groups, cacheTTL)
	return groups, nil
}

// ByPaymentMethod groups invoice revenue by payment method over the
// trailing month.
func (uc *Breakdown) ByPaymentMethod(
	ctx context.Context,
	salonID uint,
) ([]domain.Group, error) {

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	salon, err := uc.repo.GetSalonByID(ctx, salonID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(salon.Timezone)
	invoices, err := uc.repo.ListInvoicesForPeriod(
		ctx,
		salonID,
		now.AddDate(0, -1, 0).Format("2006-01-02"),
		now.Format("2006-01-02"),
	)
	if err != nil {
		return nil, err
	}

	return domain.AggregateRevenue(
		invoices,
		func(inv models.Invoice) string { return inv.PaymentMethod },
		func(inv models.Invoice) float64 { return inv.Amount },
	), nil
}

// PeakHours ranks slot hours by booking count, busiest first. The
// descending sort is the explicit final step over the insertion-ordered
// aggregation.
func (uc *Breakdown) PeakHours(
	ctx context.Context,
	salonID uint,
) ([]domain.Group, error) {

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	apps, err := uc.trailingMonth(ctx, salonID)
	if err != nil {
		return nil, err
	}

	active := make([]models.Appointment, 0, len(apps))
	for _, ap := range apps {
		if ap.Status != "cancelled" {
			active = append(active, ap)
		}
	}

	groups := domain.AggregateRevenue(
		active,
		func(ap models.Appointment) string { return hourLabel(ap.Time) },
		appointmentAmount,
	)

	domain.SortByBookingsDesc(groups)
	return groups, nil
}

// BarberStats computes per-barber totals with zero-safe averages.
func (uc *Breakdown) BarberStats(
	ctx context.Context,
	salonID uint,
) ([]BarberStat, error) {

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	barbers, err := uc.repo.ListBarbers(ctx, salonID)
	if err != nil {
		return nil, err
	}

	apps, err := uc.trailingMonth(ctx, salonID)
	if err != nil {
		return nil, err
	}

	stats := make([]BarberStat, 0, len(barbers))
	for _, b := range barbers {
		stat := BarberStat{BarberID: b.ID, Name: b.Name}

		var revenue float64
		for _, ap := range apps {
			if ap.BarberID != b.ID || ap.Status == "cancelled" {
				continue
			}
			stat.TotalClients++
			if ap.Status == "completed" {
				stat.Completed++
				revenue += ap.Amount
			}
		}

		stat.Revenue = revenue + b.RevenueGenerated
		if stat.TotalClients > 0 {
			stat.AvgPerClient = stat.Revenue / float64(stat.TotalClients)
		}

		stats = append(stats, stat)
	}

	return stats, nil
}

func (uc *Breakdown) trailingMonth(
	ctx context.Context,
	salonID uint,
) ([]models.Appointment, error) {

	salon, err := uc.repo.GetSalonByID(ctx, salonID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(salon.Timezone)
	return uc.repo.ListAppointmentsForPeriod(
		ctx,
		salonID,
		now.AddDate(0, -1, 0).Format("2006-01-02"),
		now.Format("2006-01-02"),
	)
}

func hourLabel(slot string) string {
	t, err := time.Parse("15:04", slot)
	if err != nil {
		return slot
	}
	return strconv.Itoa(t.Hour()) + ":00"
}
