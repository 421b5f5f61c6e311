package models

// FilterAll is the sentinel for a categorical filter left untouched. It means
// "no predicate", not "match the literal string All".
const FilterAll = "All"

// FilterSelection captures one round of filter state from the UI. It is
// transient: rebuilt on every interaction, never persisted.
type FilterSelection struct {
	Status        string `json:"status"`
	VehicleType   string `json:"vehicleType"`
	PaymentMethod string `json:"paymentMethod"`

	// Inclusive date range, "YYYY-MM-DD". A predicate is added only when both
	// endpoints are set.
	DateFrom string `json:"dateFrom"`
	DateTo   string `json:"dateTo"`

	// Free-text search across customer id, pickup and drop locations.
	Search string `json:"search"`
}

// KPISet holds the headline numbers for the Explore tab, computed over the
// current filter selection.
type KPISet struct {
	TotalBookings     int     `json:"totalBookings"`
	SuccessfulRides   int     `json:"successfulRides"`
	TotalSuccessValue float64 `json:"totalSuccessValue"`
	AvgRideDistance   float64 `json:"avgRideDistance"`
}
