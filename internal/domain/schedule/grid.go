package schedule

// Slots builds the fixed ordered slot grid from opening to closing time
// at the given step. The closing slot itself is excluded: a salon open
// until 19:00 with 30-minute steps ends its grid at 18:30.
func Slots(open, close SlotTime, stepMin int) []SlotTime {
	if stepMin <= 0 {
		stepMin = 30
	}

	var out []SlotTime
	for cur := open; cur.Before(close); cur = cur.AddMinutes(stepMin) {
		out = append(out, cur)
	}
	return out
}
