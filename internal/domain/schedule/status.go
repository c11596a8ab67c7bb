package schedule

// ===============================
// Slot Status
// ===============================

type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotBooked    SlotStatus = "booked"
	SlotAbsent    SlotStatus = "absent"
	SlotBreak     SlotStatus = "break"
	SlotUnknown   SlotStatus = "unknown"
)

// Label is the short cell text shown in the slot matrix.
func (s SlotStatus) Label() string {
	switch s {
	case SlotAvailable:
		return "Free"
	case SlotBooked:
		return "Booked"
	case SlotAbsent:
		return "N/A"
	case SlotBreak:
		return "Break"
	case SlotUnknown:
		return "-"
	}
	return "-"
}

// Color is the UI color token for a status. The set is closed; an
// unmapped status falls back to the unknown token rather than a blank cell.
func (s SlotStatus) Color() string {
	switch s {
	case SlotAvailable:
		return "emerald"
	case SlotBooked:
		return "red"
	case SlotAbsent:
		return "muted"
	case SlotBreak:
		return "amber"
	case SlotUnknown:
		return "muted"
	}
	return "muted"
}

// ===============================
// Barber Status
// ===============================

type BarberStatus string

const (
	BarberPresent BarberStatus = "present"
	BarberAbsent  BarberStatus = "absent"
	BarberHalfDay BarberStatus = "half-day"
	BarberOnLeave BarberStatus = "on-leave"
)

func ValidBarberStatus(s string) bool {
	switch BarberStatus(s) {
	case BarberPresent, BarberAbsent, BarberHalfDay, BarberOnLeave:
		return true
	}
	return false
}
