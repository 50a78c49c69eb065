package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cablequote/internal/domain/entities"
	"cablequote/internal/domain/pricing"
	"cablequote/internal/usecase/interfaces"
	logx "cablequote/pkg/logger"
	"cablequote/pkg/money"

	"github.com/google/uuid"
)

var (
	ErrCustomerNotSelected = errors.New("no customer selected")
	ErrQuoteEmpty          = errors.New("quote has no items")
	ErrQuoteNotReady       = errors.New("quote is not at the generate step")
	ErrForbidden           = errors.New("role is not allowed to perform this action")
)

// IQuoteUseCase drives the four-step quote workflow of a session.
//
// Every operation loads the session's draft, applies one change and saves it
// back. Pricing is never stored: Price and Finalize derive it from the draft
// and the reference data on each call.
type IQuoteUseCase interface {
	Current(ctx context.Context, token string) (entities.QuoteDraft, error)
	SelectCustomer(ctx context.Context, token, customerID string) (entities.QuoteDraft, error)
	SetProject(ctx context.Context, token, name, notes string) (entities.QuoteDraft, error)
	AddItem(ctx context.Context, token, productID string, qty int) (entities.QuoteDraft, error)
	UpdateQuantity(ctx context.Context, token, productID string, qty int) (entities.QuoteDraft, error)
	RemoveItem(ctx context.Context, token, productID string) (entities.QuoteDraft, error)
	Next(ctx context.Context, token string) (entities.QuoteDraft, error)
	Back(ctx context.Context, token string) (entities.QuoteDraft, error)
	Price(ctx context.Context, token string) (entities.PricedQuote, error)
	Finalize(ctx context.Context, token string) (entities.PricedQuote, error)
	RequestApproval(ctx context.Context, token string) (entities.ApprovalRequest, error)
	Complete(ctx context.Context, token string) (entities.QuoteDraft, error)
	Reset(ctx context.Context, token string) (entities.QuoteDraft, error)
}

type QuoteUseCase struct {
	sessions  interfaces.ISessionRepository
	products  interfaces.IProductRepository
	customers interfaces.ICustomerRepository
	approvals interfaces.IApprovalRepository
	now       func() time.Time
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(
	sessions interfaces.ISessionRepository,
	products interfaces.IProductRepository,
	customers interfaces.ICustomerRepository,
	approvals interfaces.IApprovalRepository,
) *QuoteUseCase {
	return &QuoteUseCase{
		sessions:  sessions,
		products:  products,
		customers: customers,
		approvals: approvals,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *QuoteUseCase) Current(ctx context.Context, token string) (entities.QuoteDraft, error) {
	s, err := loadSession(ctx, u.sessions, token)
	if err != nil {
		return entities.QuoteDraft{}, err
	}
	return s.Draft, nil
}

// SelectCustomer requires the customer to exist; an empty id clears the
// current selection.
func (u *QuoteUseCase) SelectCustomer(ctx context.Context, token, customerID string) (entities.QuoteDraft, error) {
	return u.mutate(ctx, token, "select_customer", func(d *entities.QuoteDraft, now time.Time) error {
		if d.CurrentStep != entities.StepCustomerProject {
			return entities.ErrStepLocked
		}
		customerID = strings.TrimSpace(customerID)
		if customerID != "" {
			if _, err := u.customer(ctx, customerID); err != nil {
				return err
			}
		}
		return d.SelectCustomer(customerID, now)
	})
}

func (u *QuoteUseCase) SetProject(ctx context.Context, token, name, notes string) (entities.QuoteDraft, error) {
	return u.mutate(ctx, token, "set_project", func(d *entities.QuoteDraft, now time.Time) error {
		return d.SetProject(name, notes, now)
	})
}

func (u *QuoteUseCase) AddItem(ctx context.Context, token, productID string, qty int) (entities.QuoteDraft, error) {
	return u.mutate(ctx, token, "add_item", func(d *entities.QuoteDraft, now time.Time) error {
		if d.CurrentStep != entities.StepAddProducts {
			return entities.ErrStepLocked
		}
		if qty <= 0 {
			return entities.ErrInvalidQuantity
		}
		p, err := u.product(ctx, productID)
		if err != nil {
			return err
		}
		return d.AddItem(p.ID, qty, now)
	})
}

// UpdateQuantity removes the line when qty is zero or negative.
func (u *QuoteUseCase) UpdateQuantity(ctx context.Context, token, productID string, qty int) (entities.QuoteDraft, error) {
	return u.mutate(ctx, token, "update_quantity", func(d *entities.QuoteDraft, now time.Time) error {
		return d.UpdateQuantity(productID, qty, now)
	})
}

func (u *QuoteUseCase) RemoveItem(ctx context.Context, token, productID string) (entities.QuoteDraft, error) {
	return u.mutate(ctx, token, "remove_item", func(d *entities.QuoteDraft, now time.Time) error {
		return d.RemoveItem(productID, now)
	})
}

func (u *QuoteUseCase) Next(ctx context.Context, token string) (entities.QuoteDraft, error) {
	return u.mutate(ctx, token, "next", func(d *entities.QuoteDraft, now time.Time) error {
		return d.Advance(now)
	})
}

func (u *QuoteUseCase) Back(ctx context.Context, token string) (entities.QuoteDraft, error) {
	return u.mutate(ctx, token, "back", func(d *entities.QuoteDraft, now time.Time) error {
		return d.Back(now)
	})
}

// Price computes the quote from the current draft at any step once a
// customer is selected. An empty draft prices to freight only.
func (u *QuoteUseCase) Price(ctx context.Context, token string) (entities.PricedQuote, error) {
	s, err := loadSession(ctx, u.sessions, token)
	if err != nil {
		return entities.PricedQuote{}, err
	}
	return u.price(ctx, s)
}

// Finalize prices a draft that is ready to be generated: it must be at the
// last step and hold at least one item.
func (u *QuoteUseCase) Finalize(ctx context.Context, token string) (entities.PricedQuote, error) {
	s, err := loadSession(ctx, u.sessions, token)
	if err != nil {
		return entities.PricedQuote{}, err
	}
	if err := ready(s.Draft); err != nil {
		return entities.PricedQuote{}, err
	}
	return u.price(ctx, s)
}

// RequestApproval files the finalized quote for admin sign-off. The draft is
// left as is.
func (u *QuoteUseCase) RequestApproval(ctx context.Context, token string) (entities.ApprovalRequest, error) {
	s, err := loadSession(ctx, u.sessions, token)
	if err != nil {
		return entities.ApprovalRequest{}, err
	}
	if !s.Can(entities.FeatureRequestApproval) {
		return entities.ApprovalRequest{}, ErrForbidden
	}
	if err := ready(s.Draft); err != nil {
		return entities.ApprovalRequest{}, err
	}

	q, err := u.price(ctx, s)
	if err != nil {
		return entities.ApprovalRequest{}, err
	}

	now := u.now()
	a := entities.ApprovalRequest{
		ID:           uuid.NewString(),
		QuoteNumber:  q.QuoteNumber,
		CustomerID:   q.Customer.ID,
		CustomerName: q.Customer.Name,
		ProjectName:  q.ProjectName,
		Agent:        fmt.Sprintf("%s (%s)", s.Email, s.Role),
		Amount:       money.Round2(q.Breakdown.Total),
		ItemCount:    q.Breakdown.ItemCount(),
		Status:       entities.ApprovalStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	created, err := u.approvals.Create(ctx, a)
	if err != nil {
		return entities.ApprovalRequest{}, err
	}

	logx.Info().Str("quote_number", a.QuoteNumber).Str("approval_id", a.ID).Float64("amount", a.Amount).Msg("[quote][usecase] approval requested")
	return created, nil
}

// Complete finishes a generated quote and starts a fresh draft.
func (u *QuoteUseCase) Complete(ctx context.Context, token string) (entities.QuoteDraft, error) {
	s, err := loadSession(ctx, u.sessions, token)
	if err != nil {
		return entities.QuoteDraft{}, err
	}
	if err := ready(s.Draft); err != nil {
		return entities.QuoteDraft{}, err
	}

	finished := s.Draft.QuoteNumber()
	s.Draft = entities.NewQuoteDraft(uuid.NewString(), u.now())
	if err := u.sessions.Save(ctx, s); err != nil {
		return entities.QuoteDraft{}, err
	}

	logx.Info().Str("quote_number", finished).Str("email", s.Email).Msg("[quote][usecase] quote completed")
	return s.Draft, nil
}

func (u *QuoteUseCase) Reset(ctx context.Context, token string) (entities.QuoteDraft, error) {
	s, err := loadSession(ctx, u.sessions, token)
	if err != nil {
		return entities.QuoteDraft{}, err
	}

	s.Draft = entities.NewQuoteDraft(uuid.NewString(), u.now())
	if err := u.sessions.Save(ctx, s); err != nil {
		return entities.QuoteDraft{}, err
	}
	return s.Draft, nil
}

func (u *QuoteUseCase) mutate(
	ctx context.Context,
	token, op string,
	apply func(d *entities.QuoteDraft, now time.Time) error,
) (entities.QuoteDraft, error) {
	s, err := loadSession(ctx, u.sessions, token)
	if err != nil {
		return entities.QuoteDraft{}, err
	}

	draft := cloneDraft(s.Draft)
	if err := apply(&draft, u.now()); err != nil {
		logx.Debug().Err(err).Str("op", op).Str("quote_id", s.Draft.ID).Int("step", int(s.Draft.CurrentStep)).Msg("[quote][usecase] rejected")
		return s.Draft, err
	}

	s.Draft = draft
	if err := u.sessions.Save(ctx, s); err != nil {
		return entities.QuoteDraft{}, err
	}

	logx.Debug().Str("op", op).Str("quote_id", draft.ID).Int("step", int(draft.CurrentStep)).Int("items", len(draft.LineItems)).Msg("[quote][usecase] draft updated")
	return draft, nil
}

func (u *QuoteUseCase) price(ctx context.Context, s entities.Session) (entities.PricedQuote, error) {
	d := s.Draft
	if !d.HasCustomer() {
		return entities.PricedQuote{}, ErrCustomerNotSelected
	}
	c, err := u.customer(ctx, d.CustomerID)
	if err != nil {
		return entities.PricedQuote{}, err
	}

	lines := make([]pricing.Line, 0, len(d.LineItems))
	for _, it := range d.LineItems {
		p, err := u.product(ctx, it.ProductID)
		if err != nil {
			return entities.PricedQuote{}, err
		}
		lines = append(lines, pricing.Line{
			ProductID: p.ID,
			Name:      p.Name,
			Unit:      p.Unit,
			BasePrice: p.BasePrice,
			Quantity:  it.Quantity,
		})
	}

	b, err := pricing.Calculate(c.DiscountPercent, lines)
	if err != nil {
		return entities.PricedQuote{}, err
	}

	return entities.PricedQuote{
		QuoteNumber: d.QuoteNumber(),
		Customer:    c,
		ProjectName: d.ProjectName,
		Notes:       d.Notes,
		Breakdown:   b,
		PreparedBy:  s.Email,
		Role:        s.Role,
		GeneratedAt: u.now(),
	}, nil
}

func (u *QuoteUseCase) customer(ctx context.Context, id string) (entities.Customer, error) {
	c, err := u.customers.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

func (u *QuoteUseCase) product(ctx context.Context, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, entities.ErrInvalidProductID
	}
	p, err := u.products.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

func ready(d entities.QuoteDraft) error {
	if d.CurrentStep != entities.StepGenerate {
		return ErrQuoteNotReady
	}
	if !d.HasItems() {
		return ErrQuoteEmpty
	}
	return nil
}

// cloneDraft copies the line slice so a rejected change never leaks into the
// stored session.
func cloneDraft(d entities.QuoteDraft) entities.QuoteDraft {
	d.LineItems = append(make([]entities.LineItem, 0, len(d.LineItems)), d.LineItems...)
	return d
}
