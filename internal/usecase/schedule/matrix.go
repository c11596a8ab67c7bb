package schedule

import (
	"context"
	"time"

	domain "github.com/HiteshiPatil10/tressora-backend/internal/domain/appointment"
	sched "github.com/HiteshiPatil10/tressora-backend/internal/domain/schedule"
	"github.com/HiteshiPatil10/tressora-backend/internal/dto"
	"github.com/HiteshiPatil10/tressora-backend/internal/httperr"
	"github.com/HiteshiPatil10/tressora-backend/internal/models"
)

type GetSlotMatrix struct {
	repo    domain.Repository
	timeout time.Duration
}

func NewGetSlotMatrix(
	repo domain.Repository,
	timeout time.Duration,
) *GetSlotMatrix {
	return &GetSlotMatrix{
		repo:    repo,
		timeout: timeout,
	}
}

// Execute builds the per-barber-per-slot status matrix for one date.
// Barbers and the day's appointments are fetched once; every cell is
// then derived in memory.
func (uc *GetSlotMatrix) Execute(
	ctx context.Context,
	salonID uint,
	date string,
) (*dto.SlotMatrix, error) {

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	salon, err := uc.repo.GetSalonByID(ctx, salonID)
	if err != nil {
		return nil, err
	}

	barbers, err := uc.repo.ListBarbers(ctx, salonID)
	if err != nil {
		return nil, err
	}

	appointments, err := uc.repo.ListAppointmentsForDate(ctx, salonID, date)
	if err != nil {
		return nil, err
	}

	grid, rules := GridFor(salon)

	matrix := &dto.SlotMatrix{
		Date:    date,
		Barbers: make([]dto.BarberColumn, 0, len(barbers)),
		Rows:    make([]dto.SlotRow, 0, len(grid)),
	}

	for _, b := range barbers {
		matrix.Barbers = append(matrix.Barbers, dto.BarberColumn{
			ID:     b.ID,
			Name:   b.Name,
			Status: b.Status,
		})
	}

	for _, slot := range grid {
		row := dto.SlotRow{
			Time:  slot.String(),
			Cells: make([]dto.SlotCell, 0, len(barbers)),
		}

		for i := range barbers {
			status, booking, warnings := sched.DeriveSlotStatus(
				&barbers[i], slot, appointments, rules,
			)

			row.Cells = append(row.Cells, dto.SlotCell{
				BarberID:    barbers[i].ID,
				Status:      string(status),
				Label:       status.Label(),
				Color:       status.Color(),
				Appointment: booking,
			})
			matrix.Warnings = append(matrix.Warnings, warnings...)
		}

		matrix.Rows = append(matrix.Rows, row)
	}

	matrix.Warnings = dedupeWarnings(matrix.Warnings)

	return matrix, nil
}

// GridFor derives the slot grid and derivation rules from salon config.
func GridFor(salon *models.Salon) ([]sched.SlotTime, sched.Rules) {
	open := sched.SlotTime{Hour: 9}
	if t, err := sched.ParseSlotTime(salon.OpeningTime); err == nil {
		open = t
	}

	close := sched.SlotTime{Hour: 19}
	if t, err := sched.ParseSlotTime(salon.ClosingTime); err == nil {
		close = t
	}

	rules := sched.DefaultRules()
	if t, err := sched.ParseSlotTime(salon.LunchStart); err == nil {
		rules.LunchStart = t
	}
	if t, err := sched.ParseSlotTime(salon.LunchEnd); err == nil {
		rules.LunchEnd = t
	}

	return sched.Slots(open, close, salon.SlotIntervalMin), rules
}

// The same duplicate shows up once per grid pass; keep one copy.
func dedupeWarnings(in []sched.Warning) []sched.Warning {
	if len(in) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(in))
	out := make([]sched.Warning, 0, len(in))
	for _, w := range in {
		key := w.Slot + "/" + w.Message
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, w)
	}
	return out
}
