// Package memory implements the repositories on process memory. It is the
// default backend and what the service runs on when no database is set up.
package memory

import (
	"context"
	"sync"

	"cablequote/internal/domain/entities"
	"cablequote/internal/usecase/interfaces"
)

type ProductRepository struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]entities.Product
}

var _ interfaces.IProductRepository = (*ProductRepository)(nil)

func NewProductRepository(products []entities.Product) *ProductRepository {
	r := &ProductRepository{byID: make(map[string]entities.Product, len(products))}
	for _, p := range products {
		if _, ok := r.byID[p.ID]; !ok {
			r.order = append(r.order, p.ID)
		}
		r.byID[p.ID] = p
	}
	return r
}

func (r *ProductRepository) GetByID(_ context.Context, id string) (entities.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[id], nil
}

func (r *ProductRepository) List(_ context.Context) ([]entities.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Product, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

type CustomerRepository struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]entities.Customer
}

var _ interfaces.ICustomerRepository = (*CustomerRepository)(nil)

func NewCustomerRepository(customers []entities.Customer) *CustomerRepository {
	r := &CustomerRepository{byID: make(map[string]entities.Customer, len(customers))}
	for _, c := range customers {
		if _, ok := r.byID[c.ID]; !ok {
			r.order = append(r.order, c.ID)
		}
		r.byID[c.ID] = c
	}
	return r
}

func (r *CustomerRepository) GetByID(_ context.Context, id string) (entities.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[id], nil
}

func (r *CustomerRepository) List(_ context.Context) ([]entities.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Customer, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}
