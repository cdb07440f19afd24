package models

import "time"

// SummaryReport holds the key dashboard metrics for a date range.
type SummaryReport struct {
	TotalCustomers    int     `json:"total_customers"`
	ActiveCustomers   int     `json:"active_customers"`
	ExpiringCustomers int     `json:"expiring_customers"`
	CheckInCount      int     `json:"checkin_count"`
	EstimatedRevenue  float64 `json:"estimated_revenue"` // checkin_count x flat rate

	RangeStart time.Time `json:"range_start"`
	RangeEnd   time.Time `json:"range_end"`
}

// HourBucket is one bar of the hourly traffic histogram.
type HourBucket struct {
	Hour   int  `json:"hour"` // 0-23, local time
	Count  int  `json:"count"`
	IsPeak bool `json:"is_peak"`
}

// TopCustomer is a check-in frequency ranking entry, grouped by the
// denormalized customer name.
type TopCustomer struct {
	CustomerName string `json:"customer_name"`
	CheckInCount int    `json:"checkin_count"`
}

// ReportRequestParams holds common query parameters for report endpoints.
type ReportRequestParams struct {
	Period    string `form:"period"`     // today, yesterday, this_week, this_month, last_month, custom
	StartDate string `form:"start_date"` // YYYY-MM-DD, custom period only
	EndDate   string `form:"end_date"`   // YYYY-MM-DD, custom period only
	Limit     int    `form:"limit"`
}
