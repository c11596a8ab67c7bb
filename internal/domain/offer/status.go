package offer

import "time"

const (
	StatusActive  = "active"
	StatusExpired = "expired"
)

// Status derives an offer's lifecycle state from its valid-till date.
// An offer is expired once valid-till falls before today; an empty or
// malformed date never expires the offer.
func Status(validTill string, now time.Time) string {
	till, err := time.Parse("2006-01-02", validTill)
	if err != nil {
		return StatusActive
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if till.Before(today) {
		return StatusExpired
	}
	return StatusActive
}
