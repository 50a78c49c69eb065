package usecase

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"cablequote/internal/adapter/persistence/memory"
	"cablequote/internal/adapter/persistence/seed"
	"cablequote/internal/domain/entities"
	"cablequote/internal/domain/pricing"
	mock_interfaces "cablequote/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

const testToken = "tok-1"

type quoteFixture struct {
	uc        *QuoteUseCase
	sessions  *memory.SessionRepository
	approvals *memory.ApprovalRepository
}

func newQuoteFixture(t *testing.T, role entities.Role) quoteFixture {
	t.Helper()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	f := quoteFixture{
		sessions:  memory.NewSessionRepository(0),
		approvals: memory.NewApprovalRepository(nil),
	}
	f.uc = NewQuoteUseCase(f.sessions, memory.NewProductRepository(seed.Products()), memory.NewCustomerRepository(seed.Customers()), f.approvals)
	f.uc.now = func() time.Time { return now }

	s := entities.Session{
		Token: testToken,
		Email: "agent@cable.com",
		Role:  role,
		Draft: entities.NewQuoteDraft("0a1b2c3d-0000-0000-0000-000000000000", now),
	}
	if err := f.sessions.Save(context.Background(), s); err != nil {
		t.Fatalf("seed session: %v", err)
	}
	return f
}

// toGenerate walks the draft to step 4 with the given items.
func (f quoteFixture) toGenerate(t *testing.T, customerID string, items map[string]int) {
	t.Helper()
	ctx := context.Background()
	if _, err := f.uc.SelectCustomer(ctx, testToken, customerID); err != nil {
		t.Fatalf("select customer: %v", err)
	}
	if _, err := f.uc.Next(ctx, testToken); err != nil {
		t.Fatalf("next to 2: %v", err)
	}
	for id, qty := range items {
		if _, err := f.uc.AddItem(ctx, testToken, id, qty); err != nil {
			t.Fatalf("add item %s: %v", id, err)
		}
	}
	for i := 0; i < 2; i++ {
		if _, err := f.uc.Next(ctx, testToken); err != nil {
			t.Fatalf("next: %v", err)
		}
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestQuoteUseCase_Workflow(t *testing.T) {
	ctx := context.Background()

	t.Run("next without customer is rejected and step is kept", func(t *testing.T) {
		f := newQuoteFixture(t, entities.RoleSalesRep)
		_, err := f.uc.Next(ctx, testToken)
		if !errors.Is(err, entities.ErrStepIncomplete) {
			t.Fatalf("expected ErrStepIncomplete, got %v", err)
		}
		d, _ := f.uc.Current(ctx, testToken)
		if d.CurrentStep != entities.StepCustomerProject {
			t.Fatalf("expected step 1, got %d", d.CurrentStep)
		}
	})

	t.Run("select then next reaches step 2", func(t *testing.T) {
		f := newQuoteFixture(t, entities.RoleSalesRep)
		if _, err := f.uc.SelectCustomer(ctx, testToken, "CUST002"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		d, err := f.uc.Next(ctx, testToken)
		if err != nil || d.CurrentStep != entities.StepAddProducts {
			t.Fatalf("expected step 2, got %d (%v)", d.CurrentStep, err)
		}
	})

	t.Run("unknown customer", func(t *testing.T) {
		f := newQuoteFixture(t, entities.RoleSalesRep)
		_, err := f.uc.SelectCustomer(ctx, testToken, "CUST999")
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		f := newQuoteFixture(t, entities.RoleSalesRep)
		_, _ = f.uc.SelectCustomer(ctx, testToken, "CUST001")
		_, _ = f.uc.Next(ctx, testToken)
		_, err := f.uc.AddItem(ctx, testToken, "CAB999", 1)
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("add item outside step 2 is locked", func(t *testing.T) {
		f := newQuoteFixture(t, entities.RoleSalesRep)
		_, err := f.uc.AddItem(ctx, testToken, "CAB001", 1)
		if !errors.Is(err, entities.ErrStepLocked) {
			t.Fatalf("expected ErrStepLocked, got %v", err)
		}
	})

	t.Run("decrement to zero removes the line and blocks next", func(t *testing.T) {
		f := newQuoteFixture(t, entities.RoleSalesRep)
		_, _ = f.uc.SelectCustomer(ctx, testToken, "CUST001")
		_, _ = f.uc.Next(ctx, testToken)
		_, _ = f.uc.AddItem(ctx, testToken, "CAB001", 1)
		d, err := f.uc.UpdateQuantity(ctx, testToken, "CAB001", 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.HasItems() {
			t.Fatalf("expected no items, got %+v", d.LineItems)
		}
		if _, err := f.uc.Next(ctx, testToken); !errors.Is(err, entities.ErrStepIncomplete) {
			t.Fatalf("expected ErrStepIncomplete, got %v", err)
		}
	})

	t.Run("back keeps selections", func(t *testing.T) {
		f := newQuoteFixture(t, entities.RoleSalesRep)
		f.toGenerate(t, "CUST001", map[string]int{"CAB002": 3})
		d, err := f.uc.Back(ctx, testToken)
		if err != nil || d.CurrentStep != entities.StepReviewPricing || d.Quantity("CAB002") != 3 {
			t.Fatalf("unexpected draft: %+v (%v)", d, err)
		}
	})

	t.Run("reset starts over", func(t *testing.T) {
		f := newQuoteFixture(t, entities.RoleSalesRep)
		f.toGenerate(t, "CUST001", map[string]int{"CAB002": 3})
		d, err := f.uc.Reset(ctx, testToken)
		if err != nil || d.CurrentStep != entities.StepCustomerProject || d.HasCustomer() || d.HasItems() {
			t.Fatalf("unexpected draft after reset: %+v (%v)", d, err)
		}
	})

	t.Run("missing session", func(t *testing.T) {
		f := newQuoteFixture(t, entities.RoleSalesRep)
		_, err := f.uc.Current(ctx, "other")
		if !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})
}

func TestQuoteUseCase_Price(t *testing.T) {
	ctx := context.Background()

	t.Run("no customer", func(t *testing.T) {
		f := newQuoteFixture(t, entities.RoleSalesRep)
		_, err := f.uc.Price(ctx, testToken)
		if !errors.Is(err, ErrCustomerNotSelected) {
			t.Fatalf("expected ErrCustomerNotSelected, got %v", err)
		}
	})

	t.Run("empty draft prices to freight only", func(t *testing.T) {
		f := newQuoteFixture(t, entities.RoleSalesRep)
		_, _ = f.uc.SelectCustomer(ctx, testToken, "CUST002")
		q, err := f.uc.Price(ctx, testToken)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Breakdown.Subtotal != 0 || q.Breakdown.Freight != pricing.FreightCharge || q.Breakdown.Total != 150 {
			t.Fatalf("unexpected breakdown: %+v", q.Breakdown)
		}
	})

	t.Run("uses customer discount", func(t *testing.T) {
		f := newQuoteFixture(t, entities.RoleSalesRep)
		// CUST002 has 10%; CAB002 is 245.75.
		f.toGenerate(t, "CUST002", map[string]int{"CAB002": 4})
		q, err := f.uc.Price(ctx, testToken)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		b := q.Breakdown
		if !almostEqual(b.Subtotal, 884.7) || b.Freight != 150 || !almostEqual(b.Tax, 70.776) || !almostEqual(b.Total, 1105.476) {
			t.Fatalf("unexpected breakdown: %+v", b)
		}
		if q.Customer.ID != "CUST002" || q.PreparedBy != "agent@cable.com" || q.QuoteNumber != "Q-0A1B2C3D" {
			t.Fatalf("unexpected quote header: %+v", q)
		}
	})

	t.Run("customer vanished from reference data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockISessionRepository(ctrl)
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewQuoteUseCase(sessions, nil, customers, nil)

		d := entities.NewQuoteDraft("d-1", time.Now())
		d.CustomerID = "CUST404"
		sessions.EXPECT().Get(gomock.Any(), testToken).Return(entities.Session{Token: testToken, Draft: d}, nil)
		customers.EXPECT().GetByID(gomock.Any(), "CUST404").Return(entities.Customer{}, nil)

		_, err := uc.Price(ctx, testToken)
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})
}

func TestQuoteUseCase_Finalize(t *testing.T) {
	ctx := context.Background()

	t.Run("not at generate step", func(t *testing.T) {
		f := newQuoteFixture(t, entities.RoleSalesRep)
		_, err := f.uc.Finalize(ctx, testToken)
		if !errors.Is(err, ErrQuoteNotReady) {
			t.Fatalf("expected ErrQuoteNotReady, got %v", err)
		}
	})

	t.Run("empty draft at generate step", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockISessionRepository(ctrl)
		uc := NewQuoteUseCase(sessions, nil, nil, nil)

		d := entities.NewQuoteDraft("d-1", time.Now())
		d.CustomerID = "CUST001"
		d.CurrentStep = entities.StepGenerate
		sessions.EXPECT().Get(gomock.Any(), testToken).Return(entities.Session{Token: testToken, Draft: d}, nil)

		_, err := uc.Finalize(ctx, testToken)
		if !errors.Is(err, ErrQuoteEmpty) {
			t.Fatalf("expected ErrQuoteEmpty, got %v", err)
		}
	})

	t.Run("ready", func(t *testing.T) {
		f := newQuoteFixture(t, entities.RoleSalesRep)
		f.toGenerate(t, "CUST006", map[string]int{"CAB006": 20})
		q, err := f.uc.Finalize(ctx, testToken)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 485 * 20 = 9700, less 20% = 7760, over the freight threshold.
		if !almostEqual(q.Breakdown.Subtotal, 7760) || q.Breakdown.Freight != 0 {
			t.Fatalf("unexpected breakdown: %+v", q.Breakdown)
		}
	})
}

func TestQuoteUseCase_RequestApproval(t *testing.T) {
	ctx := context.Background()

	t.Run("role without capability", func(t *testing.T) {
		f := newQuoteFixture(t, entities.RoleSalesRep)
		f.toGenerate(t, "CUST001", map[string]int{"CAB001": 1})
		_, err := f.uc.RequestApproval(ctx, testToken)
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("mini agent files a pending request", func(t *testing.T) {
		f := newQuoteFixture(t, entities.RoleMiniAgent)
		f.toGenerate(t, "CUST001", map[string]int{"CAB001": 10})
		a, err := f.uc.RequestApproval(ctx, testToken)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 1255 less 15% = 1066.75, +150 freight, +85.34 tax.
		if a.Status != entities.ApprovalStatusPending || a.ItemCount != 1 || a.Amount != 1302.09 {
			t.Fatalf("unexpected approval: %+v", a)
		}
		if a.Agent != "agent@cable.com (Mini Agent)" || a.CustomerName != "ABC Construction Co." {
			t.Fatalf("unexpected approval header: %+v", a)
		}
		stored, _ := f.approvals.GetByID(ctx, a.ID)
		if stored.ID == "" {
			t.Fatalf("expected approval to be stored")
		}
		d, _ := f.uc.Current(ctx, testToken)
		if d.CurrentStep != entities.StepGenerate || !d.HasItems() {
			t.Fatalf("expected draft untouched, got %+v", d)
		}
	})
}

func TestQuoteUseCase_Complete(t *testing.T) {
	ctx := context.Background()

	t.Run("not ready", func(t *testing.T) {
		f := newQuoteFixture(t, entities.RoleSalesRep)
		if _, err := f.uc.Complete(ctx, testToken); !errors.Is(err, ErrQuoteNotReady) {
			t.Fatalf("expected ErrQuoteNotReady, got %v", err)
		}
	})

	t.Run("resets draft", func(t *testing.T) {
		f := newQuoteFixture(t, entities.RoleSalesRep)
		f.toGenerate(t, "CUST001", map[string]int{"CAB001": 1})
		before, _ := f.uc.Current(ctx, testToken)

		d, err := f.uc.Complete(ctx, testToken)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.ID == before.ID || d.CurrentStep != entities.StepCustomerProject || d.HasItems() {
			t.Fatalf("expected fresh draft, got %+v", d)
		}
	})
}
