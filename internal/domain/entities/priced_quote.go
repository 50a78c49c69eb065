package entities

import (
	"time"

	"cablequote/internal/domain/pricing"
)

// PricedQuote is derived from a QuoteDraft and reference data every time it
// is needed. It is never persisted.
type PricedQuote struct {
	QuoteNumber string
	Customer    Customer
	ProjectName string
	Notes       string
	Breakdown   pricing.Breakdown
	PreparedBy  string
	Role        Role
	GeneratedAt time.Time
}
