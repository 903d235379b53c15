package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dining-agent/models"
)

func TestComputeDashboard_Empty(t *testing.T) {
	d := ComputeDashboard(Snapshot{VenueCount: 50})

	assert.Zero(t, d.TotalRevenue)
	assert.Zero(t, d.ConversionRate)
	assert.Zero(t, d.HoursSaved)
	assert.Zero(t, d.AverageTicket)
	assert.Empty(t, d.IntentLog)
	assert.NotNil(t, d.IntentLog)
	assert.Equal(t, 50, d.VenuesLoaded)
	assert.Equal(t, 0, d.ActiveBookings)
	assert.Equal(t, Opportunities, d.Opportunities)
	assert.Equal(t, models.DashboardDisplay{
		ProjectedRevenue: "$0",
		ConversionRate:   "0.0%",
		HoursSaved:       "0.0h",
		AverageTicket:    "$0",
	}, d.Display)
}

func TestComputeDashboard(t *testing.T) {
	snap := Snapshot{
		VenueCount: 50,
		Reservations: []models.Reservation{
			{ID: "RES-1", Revenue: 35000},
			{ID: "RES-2", Revenue: 15000},
		},
		Transcript: make([]models.ChatTurn, 8),
		IntentLog: []models.IntentLogEntry{
			{Timestamp: "10:00:00", Intent: "search_restaurants"},
			{Timestamp: "10:01:00", Intent: "make_reservation"},
		},
	}

	d := ComputeDashboard(snap)

	assert.Equal(t, 50000, d.TotalRevenue)
	assert.InDelta(t, 50.0, d.ConversionRate, 1e-9)
	assert.InDelta(t, 0.5, d.HoursSaved, 1e-9)
	assert.InDelta(t, 25000.0, d.AverageTicket, 1e-9)
	assert.Equal(t, 2, d.ActiveBookings)
	assert.Equal(t, "$50,000", d.Display.ProjectedRevenue)
	assert.Equal(t, "50.0%", d.Display.ConversionRate)
	assert.Equal(t, "0.5h", d.Display.HoursSaved)
	assert.Equal(t, "$25,000", d.Display.AverageTicket)

	assert.Equal(t, "make_reservation", d.IntentLog[0].Intent)
	assert.Equal(t, "search_restaurants", d.IntentLog[1].Intent)
	assert.Equal(t, "search_restaurants", snap.IntentLog[0].Intent, "snapshot is not reordered")
}

func TestComputeDashboard_ConversionCappedForDisplay(t *testing.T) {
	d := ComputeDashboard(Snapshot{
		Reservations: []models.Reservation{{Revenue: 3500}, {Revenue: 3500}},
		Transcript:   make([]models.ChatTurn, 2),
	})

	assert.InDelta(t, 200.0, d.ConversionRate, 1e-9)
	assert.Equal(t, "100.0%", d.Display.ConversionRate)
}

func TestLookupVertical(t *testing.T) {
	v, ok := LookupVertical("hotels")
	assert.True(t, ok)
	assert.Equal(t, "Rooms", v.Inventory)

	v, ok = LookupVertical("Restaurants")
	assert.True(t, ok)
	assert.Equal(t, "90 mins", v.Churn)

	_, ok = LookupVertical("automotive")
	assert.False(t, ok, "listed but not configured")

	_, ok = LookupVertical("")
	assert.False(t, ok)
}

func TestComputeDashboard_OpportunitiesAreCopied(t *testing.T) {
	d := ComputeDashboard(Snapshot{})
	d.Opportunities[0].Title = "changed"

	assert.Equal(t, "Low Utilization Detected", Opportunities[0].Title)
	assert.Equal(t, "Missed Revenue", ComputeDashboard(Snapshot{}).Opportunities[1].Title)
}
