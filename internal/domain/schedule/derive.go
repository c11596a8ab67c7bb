package schedule

import (
	"fmt"

	"github.com/HiteshiPatil10/tressora-backend/internal/models"
)

// Rules carries the salon-level parts of slot derivation: the lunch
// window and the hour after which a half-day barber is gone.
type Rules struct {
	HalfDayCutoffHour int
	LunchStart        SlotTime
	LunchEnd          SlotTime
}

func DefaultRules() Rules {
	return Rules{
		HalfDayCutoffHour: 13,
		LunchStart:        SlotTime{Hour: 13},
		LunchEnd:          SlotTime{Hour: 14},
	}
}

// Warning flags a data-integrity problem found during derivation,
// e.g. two appointments sharing one (barber, slot) pair.
type Warning struct {
	BarberID       uint   `json:"barber_id"`
	Slot           string `json:"slot"`
	AppointmentIDs []uint `json:"appointment_ids"`
	Message        string `json:"message"`
}

// DeriveSlotStatus maps one (barber, slot) pair to exactly one status
// given the appointments already filtered to the target date. It is a
// pure function and never fails; missing data degrades to SlotUnknown.
//
// Precedence: unknown barber > absent/on-leave > half-day afternoon >
// lunch break > booked > available.
func DeriveSlotStatus(
	barber *models.Barber,
	slot SlotTime,
	appointmentsForDate []models.Appointment,
	rules Rules,
) (SlotStatus, *models.Appointment, []Warning) {

	if barber == nil {
		return SlotUnknown, nil, nil
	}

	switch BarberStatus(barber.Status) {
	case BarberAbsent, BarberOnLeave:
		return SlotAbsent, nil, nil
	case BarberHalfDay:
		if slot.Hour >= rules.HalfDayCutoffHour {
			return SlotAbsent, nil, nil
		}
	}

	if !slot.Before(rules.LunchStart) && slot.Before(rules.LunchEnd) {
		return SlotBreak, nil, nil
	}

	booking, warnings := matchBooking(barber.ID, slot, appointmentsForDate)
	if booking != nil {
		return SlotBooked, booking, warnings
	}

	return SlotAvailable, nil, warnings
}

// matchBooking finds the appointment occupying a slot. Creation rejects
// duplicate (barber, slot) pairs, but when the store holds them anyway
// the earliest-created one wins deterministically and the duplication
// is surfaced as a warning.
func matchBooking(
	barberID uint,
	slot SlotTime,
	appointments []models.Appointment,
) (*models.Appointment, []Warning) {

	var matches []*models.Appointment
	for i := range appointments {
		ap := &appointments[i]
		if ap.BarberID != barberID || ap.Status == "cancelled" {
			continue
		}
		apSlot, err := ParseSlotTime(ap.Time)
		if err != nil {
			continue
		}
		if apSlot.Equal(slot) {
			matches = append(matches, ap)
		}
	}

	if len(matches) == 0 {
		return nil, nil
	}

	best := matches[0]
	for _, m := range matches[1:] {
		if m.CreatedAt.Before(best.CreatedAt) ||
			(m.CreatedAt.Equal(best.CreatedAt) && m.ID < best.ID) {
			best = m
		}
	}

	if len(matches) == 1 {
		return best, nil
	}

	ids := make([]uint, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.ID)
	}
	warning := Warning{
		BarberID:       barberID,
		Slot:           slot.String(),
		AppointmentIDs: ids,
		Message: fmt.Sprintf(
			"%d appointments share barber %d at %s; showing the earliest-created",
			len(matches), barberID, slot,
		),
	}
	return best, []Warning{warning}
}
