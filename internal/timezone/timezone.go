package timezone

import "time"

const DefaultTimezone = "Asia/Kolkata"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// Today is the salon-local calendar date in canonical "YYYY-MM-DD" form.
func Today(tz string) string {
	return NowIn(tz).Format("2006-01-02")
}
