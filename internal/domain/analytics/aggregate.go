package analytics

import "sort"

// Group is one bucket of the revenue fold: total revenue and booking
// count for everything that mapped to Key.
type Group struct {
	Key      string  `json:"key"`
	Revenue  float64 `json:"revenue"`
	Bookings int     `json:"bookings"`
}

// AggregateRevenue folds records into per-key revenue/booking totals.
// Groups are emitted in insertion order of first occurrence, not sorted;
// consumers that want a ranking sort explicitly afterwards. An empty
// input yields an empty slice.
func AggregateRevenue[T any](
	records []T,
	keyFn func(T) string,
	amountFn func(T) float64,
) []Group {

	groups := make([]Group, 0)
	index := make(map[string]int)

	for _, rec := range records {
		key := keyFn(rec)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Key: key})
		}
		groups[i].Revenue += amountFn(rec)
		groups[i].Bookings++
	}

	return groups
}

// SortByBookingsDesc ranks groups by booking count, highest first.
// This is the explicit separate step used by peak-hour views.
func SortByBookingsDesc(groups []Group) {
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Bookings > groups[j].Bookings
	})
}

// TotalRevenue sums revenue across all groups.
func TotalRevenue(groups []Group) float64 {
	var total float64
	for _, g := range groups {
		total += g.Revenue
	}
	return total
}

// TotalBookings sums bookings across all groups.
func TotalBookings(groups []Group) int {
	var total int
	for _, g := range groups {
		total += g.Bookings
	}
	return total
}

// AveragePerBooking is revenue divided by bookings, with an empty or
// booking-free input producing 0 rather than a division error.
func AveragePerBooking(groups []Group) float64 {
	bookings := TotalBookings(groups)
	if bookings == 0 {
		return 0
	}
	return TotalRevenue(groups) / float64(bookings)
}
