package schedule

import (
	"fmt"
	"time"
)

// SlotTime is a structured time-of-day parsed once at the boundary.
// Slot comparisons work on hour/minute integers, never on raw strings.
type SlotTime struct {
	Hour   int
	Minute int
}

// ParseSlotTime accepts zero-padded 24-hour "HH:MM".
func ParseSlotTime(s string) (SlotTime, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return SlotTime{}, fmt.Errorf("invalid slot time %q: %w", s, err)
	}
	return SlotTime{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func (s SlotTime) String() string {
	return fmt.Sprintf("%02d:%02d", s.Hour, s.Minute)
}

func (s SlotTime) TotalMinutes() int {
	return s.Hour*60 + s.Minute
}

func (s SlotTime) Before(o SlotTime) bool {
	return s.TotalMinutes() < o.TotalMinutes()
}

func (s SlotTime) Equal(o SlotTime) bool {
	return s.Hour == o.Hour && s.Minute == o.Minute
}

func (s SlotTime) AddMinutes(m int) SlotTime {
	total := s.TotalMinutes() + m
	return SlotTime{Hour: total / 60 % 24, Minute: total % 60}
}
