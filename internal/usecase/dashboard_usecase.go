package usecase

import (
	"context"
	"sort"
	"time"

	"cablequote/internal/domain/entities"
	"cablequote/internal/usecase/interfaces"
)

const recentQuotesLimit = 5

type IDashboardUseCase interface {
	Report(ctx context.Context, role entities.Role) (entities.DashboardReport, error)
}

type DashboardUseCase struct {
	products  interfaces.IProductRepository
	customers interfaces.ICustomerRepository
	approvals interfaces.IApprovalRepository
	now       func() time.Time
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(
	products interfaces.IProductRepository,
	customers interfaces.ICustomerRepository,
	approvals interfaces.IApprovalRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		products:  products,
		customers: customers,
		approvals: approvals,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Report summarises the catalog and the approval log. Recent quotes are the
// newest approval requests first.
func (u *DashboardUseCase) Report(ctx context.Context, role entities.Role) (entities.DashboardReport, error) {
	products, err := u.products.List(ctx)
	if err != nil {
		return entities.DashboardReport{}, err
	}
	customers, err := u.customers.List(ctx)
	if err != nil {
		return entities.DashboardReport{}, err
	}
	approvals, err := u.approvals.List(ctx, "")
	if err != nil {
		return entities.DashboardReport{}, err
	}

	now := u.now()
	stats := entities.DashboardStats{
		TotalProducts:   len(products),
		ActiveCustomers: len(customers),
	}
	for _, a := range approvals {
		if a.CreatedAt.Year() == now.Year() && a.CreatedAt.Month() == now.Month() {
			stats.QuotesThisMonth++
		}
		if a.Status == entities.ApprovalStatusApproved {
			stats.ApprovedRevenue += a.Amount
		}
	}

	recent := append([]entities.ApprovalRequest(nil), approvals...)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > recentQuotesLimit {
		recent = recent[:recentQuotesLimit]
	}

	return entities.DashboardReport{
		Stats:        stats,
		RecentQuotes: recent,
		Role:         role,
		GeneratedAt:  now,
	}, nil
}
