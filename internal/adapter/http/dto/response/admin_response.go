package response

import (
	"time"

	"cablequote/internal/domain/entities"
)

type ApprovalResponse struct {
	ID           string    `json:"id"`
	QuoteNumber  string    `json:"quote_number"`
	CustomerID   string    `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	ProjectName  string    `json:"project_name,omitempty"`
	Agent        string    `json:"agent"`
	Amount       float64   `json:"amount"`
	ItemCount    int       `json:"item_count"`
	Status       string    `json:"status"`
	DecidedBy    string    `json:"decided_by,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromApproval(a entities.ApprovalRequest) ApprovalResponse {
	return ApprovalResponse{
		ID:           a.ID,
		QuoteNumber:  a.QuoteNumber,
		CustomerID:   a.CustomerID,
		CustomerName: a.CustomerName,
		ProjectName:  a.ProjectName,
		Agent:        a.Agent,
		Amount:       a.Amount,
		ItemCount:    a.ItemCount,
		Status:       string(a.Status),
		DecidedBy:    a.DecidedBy,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func FromApprovals(list []entities.ApprovalRequest) []ApprovalResponse {
	out := make([]ApprovalResponse, 0, len(list))
	for _, a := range list {
		out = append(out, FromApproval(a))
	}
	return out
}

type MetalPricesResponse struct {
	CopperPerLb   float64    `json:"copper_per_lb"`
	AluminumPerLb float64    `json:"aluminum_per_lb"`
	UpdatedBy     string     `json:"updated_by,omitempty"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

func FromMetalPrices(p entities.MetalPrices) MetalPricesResponse {
	res := MetalPricesResponse{
		CopperPerLb:   p.CopperPerLb,
		AluminumPerLb: p.AluminumPerLb,
		UpdatedBy:     p.UpdatedBy,
	}
	if !p.UpdatedAt.IsZero() {
		at := p.UpdatedAt
		res.UpdatedAt = &at
	}
	return res
}
