package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	day    string
	amount float64
}

func fold(records []record) []Group {
	return AggregateRevenue(
		records,
		func(r record) string { return r.day },
		func(r record) float64 { return r.amount },
	)
}

func TestAggregateRevenue(t *testing.T) {
	groups := fold([]record{
		{"Mon", 100},
		{"Tue", 75},
		{"Mon", 50},
	})

	require.Len(t, groups, 2)
	assert.Equal(t, Group{Key: "Mon", Revenue: 150, Bookings: 2}, groups[0])
	assert.Equal(t, Group{Key: "Tue", Revenue: 75, Bookings: 1}, groups[1])
}

func TestAggregateRevenue_InsertionOrder(t *testing.T) {
	groups := fold([]record{
		{"Tue", 10},
		{"Mon", 20},
		{"Tue", 5},
	})

	require.Len(t, groups, 2)
	assert.Equal(t, "Tue", groups[0].Key)
	assert.Equal(t, "Mon", groups[1].Key)
}

func TestAggregateRevenue_PermutationKeepsTotals(t *testing.T) {
	records := []record{
		{"Mon", 100},
		{"Tue", 75},
		{"Wed", 25},
		{"Mon", 50},
	}
	reversed := make([]record, len(records))
	for i, r := range records {
		reversed[len(records)-1-i] = r
	}

	a := fold(records)
	b := fold(reversed)

	assert.Equal(t, TotalRevenue(a), TotalRevenue(b))
	assert.Equal(t, TotalBookings(a), TotalBookings(b))
	assert.ElementsMatch(t, a, b)
}

func TestAggregateRevenue_Empty(t *testing.T) {
	groups := fold(nil)

	assert.NotNil(t, groups)
	assert.Empty(t, groups)
	assert.Zero(t, TotalRevenue(groups))
	assert.Zero(t, TotalBookings(groups))
	assert.Zero(t, AveragePerBooking(groups))
}

func TestAggregateRevenue_ZeroAmounts(t *testing.T) {
	// Missing amounts come in as zero; they still count as bookings.
	groups := fold([]record{{"Mon", 0}, {"Mon", 100}})

	require.Len(t, groups, 1)
	assert.Equal(t, float64(100), groups[0].Revenue)
	assert.Equal(t, 2, groups[0].Bookings)
	assert.Equal(t, float64(50), AveragePerBooking(groups))
}

func TestSortByBookingsDesc(t *testing.T) {
	groups := []Group{
		{Key: "10 AM", Bookings: 2},
		{Key: "11 AM", Bookings: 5},
		{Key: "4 PM", Bookings: 3},
	}

	SortByBookingsDesc(groups)

	assert.Equal(t, "11 AM", groups[0].Key)
	assert.Equal(t, "4 PM", groups[1].Key)
	assert.Equal(t, "10 AM", groups[2].Key)
}

func TestSortByBookingsDesc_StableOnTies(t *testing.T) {
	groups := []Group{
		{Key: "first", Bookings: 2},
		{Key: "second", Bookings: 2},
	}

	SortByBookingsDesc(groups)

	assert.Equal(t, "first", groups[0].Key)
	assert.Equal(t, "second", groups[1].Key)
}
