package usecase

import (
	"context"
	"errors"
	"strings"

	"cablequote/internal/domain/entities"
	"cablequote/internal/usecase/interfaces"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrInvalidProductID  = errors.New("invalid product id")
	ErrInvalidCustomerID = errors.New("invalid customer id")
)

// filterAll is accepted as a wildcard for category and tier filters.
const filterAll = "all"

type ProductFilter struct {
	Search   string
	Category string
}

type CustomerFilter struct {
	Search string
	Tier   string
}

// TierCount is one card of the customer tier summary.
type TierCount struct {
	Tier        entities.Tier
	Description string
	Count       int
}

// ICatalogUseCase exposes read-only lookups over products and customers.
type ICatalogUseCase interface {
	GetProduct(ctx context.Context, id string) (entities.Product, error)
	ListProducts(ctx context.Context, f ProductFilter) ([]entities.Product, error)
	Categories(ctx context.Context) ([]string, error)
	GetCustomer(ctx context.Context, id string) (entities.Customer, error)
	ListCustomers(ctx context.Context, f CustomerFilter) ([]entities.Customer, error)
	TierSummary(ctx context.Context) ([]TierCount, error)
}

type CatalogUseCase struct {
	products  interfaces.IProductRepository
	customers interfaces.ICustomerRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(products interfaces.IProductRepository, customers interfaces.ICustomerRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products, customers: customers}
}

func (u *CatalogUseCase) GetProduct(ctx context.Context, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
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

// ListProducts matches Search against name or id, case-insensitively.
func (u *CatalogUseCase) ListProducts(ctx context.Context, f ProductFilter) ([]entities.Product, error) {
	all, err := u.products.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]entities.Product, 0, len(all))
	for _, p := range all {
		if !matchesExact(f.Category, p.Category) {
			continue
		}
		if !containsFold(f.Search, p.Name, p.ID) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// Categories lists distinct categories in the order they first appear.
func (u *CatalogUseCase) Categories(ctx context.Context) ([]string, error) {
	all, err := u.products.List(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(all))
	out := make([]string, 0, len(all))
	for _, p := range all {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out, nil
}

func (u *CatalogUseCase) GetCustomer(ctx context.Context, id string) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}

	c, err := u.customers.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

// ListCustomers matches Search against name, contact or id.
func (u *CatalogUseCase) ListCustomers(ctx context.Context, f CustomerFilter) ([]entities.Customer, error) {
	all, err := u.customers.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]entities.Customer, 0, len(all))
	for _, c := range all {
		if !matchesExact(f.Tier, string(c.Tier)) {
			continue
		}
		if !containsFold(f.Search, c.Name, c.Contact, c.ID) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (u *CatalogUseCase) TierSummary(ctx context.Context) ([]TierCount, error) {
	all, err := u.customers.List(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[entities.Tier]int, len(entities.Tiers))
	for _, c := range all {
		counts[c.Tier]++
	}

	out := make([]TierCount, 0, len(entities.Tiers))
	for _, t := range entities.Tiers {
		out = append(out, TierCount{Tier: t, Description: t.Description(), Count: counts[t]})
	}
	return out, nil
}

func matchesExact(filter, value string) bool {
	filter = strings.TrimSpace(filter)
	if filter == "" || strings.EqualFold(filter, filterAll) {
		return true
	}
	return strings.EqualFold(filter, value)
}

func containsFold(search string, fields ...string) bool {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), search) {
			return true
		}
	}
	return false
}
