package response

import (
	"time"

	"cablequote/internal/domain/entities"
	"cablequote/pkg/money"
)

type DashboardStatsResponse struct {
	TotalProducts   int     `json:"total_products"`
	ActiveCustomers int     `json:"active_customers"`
	QuotesThisMonth int     `json:"quotes_this_month"`
	ApprovedRevenue float64 `json:"approved_revenue"`
}

type DashboardResponse struct {
	Stats        DashboardStatsResponse `json:"stats"`
	RecentQuotes []ApprovalResponse     `json:"recent_quotes"`
	Role         string                 `json:"role"`
	GeneratedAt  time.Time              `json:"generated_at"`
}

func FromDashboard(r entities.DashboardReport) DashboardResponse {
	return DashboardResponse{
		Stats: DashboardStatsResponse{
			TotalProducts:   r.Stats.TotalProducts,
			ActiveCustomers: r.Stats.ActiveCustomers,
			QuotesThisMonth: r.Stats.QuotesThisMonth,
			ApprovedRevenue: money.Round2(r.Stats.ApprovedRevenue),
		},
		RecentQuotes: FromApprovals(r.RecentQuotes),
		Role:         string(r.Role),
		GeneratedAt:  r.GeneratedAt,
	}
}
