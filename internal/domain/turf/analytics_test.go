package turf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUtilization(t *testing.T) {
	assert.Equal(t, 0.0, Utilization(0, 0))
	assert.Equal(t, 0.0, Utilization(3, 0))
	assert.Equal(t, 50.0, Utilization(2, 4))
	assert.Equal(t, 33.3, Utilization(1, 3))
	assert.Equal(t, 66.7, Utilization(2, 3))
	assert.Equal(t, 100.0, Utilization(5, 5))
}

func TestRevenue(t *testing.T) {
	assert.Equal(t, 1000.0, Revenue(500.0, 2))
	assert.Equal(t, 0.0, Revenue(500.0, 0))
}

func TestSummarize(t *testing.T) {
	d := Summarize([]Stats{
		{TurfID: 1, Name: "North", PricePerHour: 500, TotalSlots: 4, ConfirmedBookings: 2},
		{TurfID: 2, Name: "South", PricePerHour: 800, TotalSlots: 0, ConfirmedBookings: 0},
		{TurfID: 3, Name: "East", PricePerHour: 300, TotalSlots: 2, ConfirmedBookings: 1},
	})

	assert.Len(t, d.Turfs, 3)
	assert.Equal(t, 1000.0, d.Turfs[0].Revenue)
	assert.Equal(t, 50.0, d.Turfs[0].Utilization)
	assert.Equal(t, 0.0, d.Turfs[1].Utilization)

	assert.Equal(t, 1300.0, d.TotalRevenue)
	assert.Equal(t, int64(3), d.TotalBookings)
	assert.Equal(t, int64(6), d.TotalSlots)
	assert.Equal(t, 50.0, d.Utilization)
}

func TestSummarizeEmpty(t *testing.T) {
	d := Summarize(nil)

	assert.Empty(t, d.Turfs)
	assert.NotNil(t, d.Turfs)
	assert.Equal(t, 0.0, d.Utilization)
}
