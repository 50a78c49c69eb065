package response

import (
	"time"

	"cablequote/internal/domain/entities"
	"cablequote/pkg/money"
)

type LineItemResponse struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type DraftResponse struct {
	ID          string             `json:"id"`
	QuoteNumber string             `json:"quote_number"`
	CustomerID  string             `json:"customer_id"`
	ProjectName string             `json:"project_name"`
	Notes       string             `json:"notes"`
	Items       []LineItemResponse `json:"items"`
	Step        int                `json:"step"`
	StepTitle   string             `json:"step_title"`
	CanAdvance  bool               `json:"can_advance"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

func FromDraft(d entities.QuoteDraft) DraftResponse {
	items := make([]LineItemResponse, 0, len(d.LineItems))
	for _, li := range d.LineItems {
		items = append(items, LineItemResponse{ProductID: li.ProductID, Quantity: li.Quantity})
	}
	return DraftResponse{
		ID:          d.ID,
		QuoteNumber: d.QuoteNumber(),
		CustomerID:  d.CustomerID,
		ProjectName: d.ProjectName,
		Notes:       d.Notes,
		Items:       items,
		Step:        int(d.CurrentStep),
		StepTitle:   d.CurrentStep.Title(),
		CanAdvance:  d.CanAdvance(),
		UpdatedAt:   d.UpdatedAt,
	}
}

type QuoteCustomerResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Tier            string  `json:"tier"`
	DiscountPercent float64 `json:"discount_percent"`
}

type PricedLineResponse struct {
	ProductID      string  `json:"product_id"`
	Name           string  `json:"name"`
	Unit           string  `json:"unit"`
	BasePrice      float64 `json:"base_price"`
	Quantity       int     `json:"quantity"`
	LineTotal      float64 `json:"line_total"`
	DiscountAmount float64 `json:"discount_amount"`
	NetPrice       float64 `json:"net_price"`
}

// PricedQuoteResponse carries amounts rounded to cents. The calculator keeps
// full precision, so totals are rounded independently of the lines.
type PricedQuoteResponse struct {
	QuoteNumber   string                `json:"quote_number"`
	Customer      QuoteCustomerResponse `json:"customer"`
	ProjectName   string                `json:"project_name"`
	Notes         string                `json:"notes"`
	Lines         []PricedLineResponse  `json:"lines"`
	TotalDiscount float64               `json:"total_discount"`
	Subtotal      float64               `json:"subtotal"`
	Freight       float64               `json:"freight"`
	Tax           float64               `json:"tax"`
	Total         float64               `json:"total"`
	PreparedBy    string                `json:"prepared_by"`
	GeneratedAt   time.Time             `json:"generated_at"`
}

func FromPricedQuote(q entities.PricedQuote) PricedQuoteResponse {
	b := q.Breakdown
	lines := make([]PricedLineResponse, 0, len(b.Lines))
	for _, l := range b.Lines {
		lines = append(lines, PricedLineResponse{
			ProductID:      l.ProductID,
			Name:           l.Name,
			Unit:           l.Unit,
			BasePrice:      l.BasePrice,
			Quantity:       l.Quantity,
			LineTotal:      money.Round2(l.LineTotal),
			DiscountAmount: money.Round2(l.DiscountAmount),
			NetPrice:       money.Round2(l.NetPrice),
		})
	}
	return PricedQuoteResponse{
		QuoteNumber: q.QuoteNumber,
		Customer: QuoteCustomerResponse{
			ID:              q.Customer.ID,
			Name:            q.Customer.Name,
			Tier:            string(q.Customer.Tier),
			DiscountPercent: q.Customer.DiscountPercent,
		},
		ProjectName:   q.ProjectName,
		Notes:         q.Notes,
		Lines:         lines,
		TotalDiscount: money.Round2(b.TotalDiscount()),
		Subtotal:      money.Round2(b.Subtotal),
		Freight:       money.Round2(b.Freight),
		Tax:           money.Round2(b.Tax),
		Total:         money.Round2(b.Total),
		PreparedBy:    q.PreparedBy,
		GeneratedAt:   q.GeneratedAt,
	}
}
