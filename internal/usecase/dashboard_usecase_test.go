package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"cablequote/internal/adapter/persistence/seed"
	"cablequote/internal/domain/entities"
	mock_interfaces "cablequote/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDashboardUseCase_Report(t *testing.T) {
	t.Run("stats and recent quotes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		approvals := mock_interfaces.NewMockIApprovalRepository(ctrl)
		uc := NewDashboardUseCase(products, customers, approvals)
		uc.now = func() time.Time { return time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC) }

		extra := make([]entities.ApprovalRequest, 0, 3)
		for i := 0; i < 3; i++ {
			extra = append(extra, entities.ApprovalRequest{ID: "X" + string(rune('1'+i)), Status: entities.ApprovalStatusPending, CreatedAt: time.Date(2023, time.December, 1+i, 0, 0, 0, 0, time.UTC)})
		}
		products.EXPECT().List(gomock.Any()).Return(seed.Products(), nil)
		customers.EXPECT().List(gomock.Any()).Return(seed.Customers(), nil)
		approvals.EXPECT().List(gomock.Any(), entities.ApprovalStatus("")).Return(append(extra, seed.Approvals()...), nil)

		r, err := uc.Report(context.Background(), entities.RoleAdmin)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Stats.TotalProducts != 6 || r.Stats.ActiveCustomers != 6 {
			t.Fatalf("unexpected counts: %+v", r.Stats)
		}
		if r.Stats.QuotesThisMonth != 4 || r.Stats.ApprovedRevenue != 45200 {
			t.Fatalf("unexpected quote stats: %+v", r.Stats)
		}
		if len(r.RecentQuotes) != recentQuotesLimit || r.RecentQuotes[0].ID != "Q001" || r.RecentQuotes[4].ID != "X3" {
			t.Fatalf("unexpected recent quotes: %+v", r.RecentQuotes)
		}
		if r.Role != entities.RoleAdmin {
			t.Fatalf("expected role on report")
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewDashboardUseCase(products, nil, nil)
		products.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		if _, err := uc.Report(context.Background(), entities.RoleAdmin); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
