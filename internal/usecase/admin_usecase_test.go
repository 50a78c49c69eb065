package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"cablequote/internal/domain/entities"
	mock_interfaces "cablequote/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAdminUseCase_ListApprovals(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewAdminUseCase(nil, nil)
		_, err := uc.ListApprovals(context.Background(), "archived")
		if !errors.Is(err, ErrInvalidApprovalStatus) {
			t.Fatalf("expected ErrInvalidApprovalStatus, got %v", err)
		}
	})

	cases := map[string]entities.ApprovalStatus{
		"":          "",
		"all":       "",
		" Pending ": entities.ApprovalStatusPending,
		"rejected":  entities.ApprovalStatusRejected,
	}
	for raw, want := range cases {
		t.Run("status "+raw, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIApprovalRepository(ctrl)
			uc := NewAdminUseCase(repo, nil)
			repo.EXPECT().List(gomock.Any(), want).Return([]entities.ApprovalRequest{{ID: "Q001"}}, nil)

			got, err := uc.ListApprovals(context.Background(), raw)
			if err != nil || len(got) != 1 {
				t.Fatalf("unexpected result: %+v %v", got, err)
			}
		})
	}
}

func TestAdminUseCase_Decide(t *testing.T) {
	cases := []struct {
		name   string
		call   func(uc *AdminUseCase, ctx context.Context, id, by string) (entities.ApprovalRequest, error)
		status entities.ApprovalStatus
	}{
		{name: "approve", call: (*AdminUseCase).Approve, status: entities.ApprovalStatusApproved},
		{name: "reject", call: (*AdminUseCase).Reject, status: entities.ApprovalStatusRejected},
	}

	for _, tc := range cases {
		t.Run(tc.name+" invalid id", func(t *testing.T) {
			uc := NewAdminUseCase(nil, nil)
			_, err := tc.call(uc, context.Background(), " ", "Admin")
			if !errors.Is(err, ErrInvalidApprovalID) {
				t.Fatalf("expected ErrInvalidApprovalID, got %v", err)
			}
		})

		t.Run(tc.name+" not found", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIApprovalRepository(ctrl)
			uc := NewAdminUseCase(repo, nil)
			repo.EXPECT().GetByID(gomock.Any(), "Q009").Return(entities.ApprovalRequest{}, nil)

			_, err := tc.call(uc, context.Background(), "Q009", "Admin")
			if !errors.Is(err, ErrApprovalNotFound) {
				t.Fatalf("expected ErrApprovalNotFound, got %v", err)
			}
		})

		t.Run(tc.name+" already decided", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIApprovalRepository(ctrl)
			uc := NewAdminUseCase(repo, nil)
			repo.EXPECT().GetByID(gomock.Any(), "Q003").Return(entities.ApprovalRequest{ID: "Q003", Status: entities.ApprovalStatusApproved}, nil)

			_, err := tc.call(uc, context.Background(), "Q003", "Admin")
			if !errors.Is(err, ErrApprovalAlreadyDecided) {
				t.Fatalf("expected ErrApprovalAlreadyDecided, got %v", err)
			}
		})

		t.Run(tc.name+" lost race", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIApprovalRepository(ctrl)
			uc := NewAdminUseCase(repo, nil)
			repo.EXPECT().GetByID(gomock.Any(), "Q001").Return(entities.ApprovalRequest{ID: "Q001", Status: entities.ApprovalStatusPending}, nil)
			repo.EXPECT().UpdateStatus(gomock.Any(), "Q001", tc.status, "Admin", gomock.Any()).Return(entities.ApprovalRequest{}, nil)

			_, err := tc.call(uc, context.Background(), "Q001", "Admin")
			if !errors.Is(err, ErrApprovalAlreadyDecided) {
				t.Fatalf("expected ErrApprovalAlreadyDecided, got %v", err)
			}
		})

		t.Run(tc.name+" success", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIApprovalRepository(ctrl)
			uc := NewAdminUseCase(repo, nil)
			repo.EXPECT().GetByID(gomock.Any(), "Q001").Return(entities.ApprovalRequest{ID: "Q001", Status: entities.ApprovalStatusPending}, nil)
			repo.EXPECT().UpdateStatus(gomock.Any(), "Q001", tc.status, "Admin", gomock.AssignableToTypeOf(time.Time{})).
				Return(entities.ApprovalRequest{ID: "Q001", Status: tc.status, DecidedBy: "Admin"}, nil)

			got, err := tc.call(uc, context.Background(), " Q001 ", "Admin")
			if err != nil || got.Status != tc.status {
				t.Fatalf("unexpected result: %+v %v", got, err)
			}
		})
	}
}

func TestAdminUseCase_UpdateMetalPrices(t *testing.T) {
	t.Run("invalid", func(t *testing.T) {
		uc := NewAdminUseCase(nil, nil)
		if _, err := uc.UpdateMetalPrices(context.Background(), 0, 2, "Admin"); !errors.Is(err, ErrInvalidMetalPrice) {
			t.Fatalf("expected ErrInvalidMetalPrice, got %v", err)
		}
		if _, err := uc.UpdateMetalPrices(context.Background(), 8, -1, "Admin"); !errors.Is(err, ErrInvalidMetalPrice) {
			t.Fatalf("expected ErrInvalidMetalPrice, got %v", err)
		}
	})

	t.Run("rounded and stamped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		metals := mock_interfaces.NewMockIMetalPriceRepository(ctrl)
		uc := NewAdminUseCase(nil, metals)
		metals.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.MetalPrices{})).DoAndReturn(
			func(_ context.Context, p entities.MetalPrices) (entities.MetalPrices, error) {
				if p.CopperPerLb != 8.46 || p.AluminumPerLb != 2.2 || p.UpdatedBy != "Super Admin" || p.UpdatedAt.IsZero() {
					t.Fatalf("unexpected prices: %+v", p)
				}
				return p, nil
			},
		)

		if _, err := uc.UpdateMetalPrices(context.Background(), 8.455, 2.2, "Super Admin"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
