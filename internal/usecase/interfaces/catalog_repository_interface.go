package interfaces

import (
	"context"
	"cablequote/internal/domain/entities"
)

// IProductRepository abstracts the product catalog.
//
// GetByID returns a zero Product and a nil error when the id is unknown.
// List returns products in catalog order.

type IProductRepository interface {
	GetByID(ctx context.Context, id string) (entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
}

// ICustomerRepository abstracts the customer directory, with the same
// miss semantics as IProductRepository.
type ICustomerRepository interface {
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	List(ctx context.Context) ([]entities.Customer, error)
}
