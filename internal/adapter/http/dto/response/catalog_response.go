package response

import (
	"cablequote/internal/domain/entities"
	"cablequote/internal/usecase"
)

type ProductResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Voltage     string  `json:"voltage"`
	Material    string  `json:"material"`
	Gauge       string  `json:"gauge"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"base_price"`
	Unit        string  `json:"unit"`
	Stock       int     `json:"stock"`
	StockStatus string  `json:"stock_status"`
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Voltage:     p.Voltage,
		Material:    p.Material,
		Gauge:       p.Gauge,
		Description: p.Description(),
		BasePrice:   p.BasePrice,
		Unit:        p.Unit,
		Stock:       p.Stock,
		StockStatus: string(p.StockStatus()),
	}
}

func FromProducts(products []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return out
}

type CustomerResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Contact         string  `json:"contact"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	Address         string  `json:"address"`
	Tier            string  `json:"tier"`
	TierDescription string  `json:"tier_description"`
	DiscountPercent float64 `json:"discount_percent"`
	PaymentTerms    string  `json:"payment_terms"`
	TotalOrders     int     `json:"total_orders"`
	YearlyVolume    float64 `json:"yearly_volume"`
}

func FromCustomer(c entities.Customer) CustomerResponse {
	return CustomerResponse{
		ID:              c.ID,
		Name:            c.Name,
		Contact:         c.Contact,
		Email:           c.Email,
		Phone:           c.Phone,
		Address:         c.Address,
		Tier:            string(c.Tier),
		TierDescription: c.Tier.Description(),
		DiscountPercent: c.DiscountPercent,
		PaymentTerms:    c.PaymentTerms,
		TotalOrders:     c.TotalOrders,
		YearlyVolume:    c.YearlyVolume,
	}
}

func FromCustomers(customers []entities.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, FromCustomer(c))
	}
	return out
}

type TierCountResponse struct {
	Tier        string `json:"tier"`
	Description string `json:"description"`
	Count       int    `json:"count"`
}

func FromTierCounts(counts []usecase.TierCount) []TierCountResponse {
	out := make([]TierCountResponse, 0, len(counts))
	for _, c := range counts {
		out = append(out, TierCountResponse{Tier: string(c.Tier), Description: c.Description, Count: c.Count})
	}
	return out
}
