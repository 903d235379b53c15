package services

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"dining-agent/models"
)

// hoursPerBooking is the staff time one automated reservation replaces
const hoursPerBooking = 0.25

var printer = message.NewPrinter(language.English)

// Verticals maps the booking model onto other industries
var Verticals = []models.Vertical{
	{Name: "Restaurants (Current)", Inventory: "Tables", Unit: "Covers", Constraint: "Kitchen Capacity", Churn: "90 mins"},
	{Name: "Hotels & Hospitality", Inventory: "Rooms", Unit: "Nights", Constraint: "Housekeeping", Churn: "24 hours"},
	{Name: "Healthcare Clinics", Inventory: "Doctors", Unit: "Appointments", Constraint: "Specialty", Churn: "30 mins"},
	{Name: "Automotive Service"},
}

// Opportunities are the static revenue suggestions shown beside the metrics
var Opportunities = []models.Insight{
	{Level: "success", Title: "Low Utilization Detected", Detail: "Tuesdays 6-8PM are 80% empty. Suggest running 'Happy Hour'."},
	{Level: "warning", Title: "Missed Revenue", Detail: "45% of users search for 'Vegan' but only 10% convert. Add more Vegan inventory."},
}

// ComputeDashboard derives the business metrics of a session snapshot
func ComputeDashboard(snap Snapshot) models.Dashboard {
	total := 0
	for _, r := range snap.Reservations {
		total += r.Revenue
	}
	count := len(snap.Reservations)

	conversion := 0.0
	if len(snap.Transcript) > 0 {
		conversion = float64(count) / (float64(len(snap.Transcript)) / 2) * 100
	}
	average := 0.0
	if count > 0 {
		average = float64(total) / float64(count)
	}
	hours := float64(count) * hoursPerBooking

	intents := slices.Clone(snap.IntentLog)
	slices.Reverse(intents)
	if intents == nil {
		intents = []models.IntentLogEntry{}
	}

	return models.Dashboard{
		TotalRevenue:   total,
		ConversionRate: conversion,
		HoursSaved:     hours,
		AverageTicket:  average,
		Display: models.DashboardDisplay{
			ProjectedRevenue: printer.Sprintf("$%d", total),
			ConversionRate:   fmt.Sprintf("%.1f%%", min(conversion, 100)),
			HoursSaved:       fmt.Sprintf("%.1fh", hours),
			AverageTicket:    printer.Sprintf("$%.0f", average),
		},
		IntentLog:      intents,
		VenuesLoaded:   snap.VenueCount,
		ActiveBookings: count,
		Opportunities:  slices.Clone(Opportunities),
	}
}

// LookupVertical finds a vertical by case-insensitive name fragment.
// Verticals without a configuration are reported as not found.
func LookupVertical(name string) (models.Vertical, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return models.Vertical{}, false
	}
	for _, v := range Verticals {
		if strings.Contains(strings.ToLower(v.Name), needle) && v.Inventory != "" {
			return v, true
		}
	}
	return models.Vertical{}, false
}
