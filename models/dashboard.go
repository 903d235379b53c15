package models

// Dashboard holds the business metrics derived from a session
type Dashboard struct {
	TotalRevenue   int     `json:"total_revenue"`
	ConversionRate float64 `json:"conversion_rate"`
	HoursSaved     float64 `json:"hours_saved"`
	AverageTicket  float64 `json:"average_ticket"`

	Display DashboardDisplay `json:"display"`

	// Newest first
	IntentLog []IntentLogEntry `json:"intent_log"`

	VenuesLoaded   int `json:"venues_loaded"`
	ActiveBookings int `json:"active_bookings"`

	Opportunities []Insight `json:"opportunities"`
}

// Insight is a suggestion card on the dashboard
type Insight struct {
	Level  string `json:"level"` // success, warning
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// DashboardDisplay holds the formatted metric strings
type DashboardDisplay struct {
	ProjectedRevenue string `json:"projected_revenue"`
	ConversionRate   string `json:"conversion_rate"`
	HoursSaved       string `json:"hours_saved"`
	AverageTicket    string `json:"average_ticket"`
}

// Vertical describes how the booking model maps onto another industry
type Vertical struct {
	Name       string `json:"name"`
	Inventory  string `json:"inventory"`
	Unit       string `json:"unit"`
	Constraint string `json:"constraint"`
	Churn      string `json:"churn"`
}
