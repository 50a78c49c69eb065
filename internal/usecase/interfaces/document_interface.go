package interfaces

import (
	"context"
	"cablequote/internal/domain/entities"
)

// IDocumentRenderer turns finished, already-priced structures into a file
// of a single format.
type IDocumentRenderer interface {
	Format() entities.DocumentFormat
	RenderQuote(q entities.PricedQuote) ([]byte, error)
	RenderCustomers(customers []entities.Customer, meta entities.DocumentMeta) ([]byte, error)
	RenderProducts(products []entities.Product, meta entities.DocumentMeta) ([]byte, error)
	RenderDashboard(r entities.DashboardReport) ([]byte, error)
}

// IDocumentSink stores a rendered document and returns where it went.
type IDocumentSink interface {
	Save(ctx context.Context, name string, data []byte) (location string, err error)
}
