package entities

import "time"

// DashboardStats is the headline summary shown after login.
type DashboardStats struct {
	TotalProducts   int     `json:"total_products"`
	ActiveCustomers int     `json:"active_customers"`
	QuotesThisMonth int     `json:"quotes_this_month"`
	ApprovedRevenue float64 `json:"approved_revenue"`
}

// DashboardReport is the payload of the dashboard export.
type DashboardReport struct {
	Stats        DashboardStats
	RecentQuotes []ApprovalRequest
	Role         Role
	GeneratedAt  time.Time
}
