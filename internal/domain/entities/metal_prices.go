package entities

import "time"

const (
	DefaultCopperPerLb   = 8.45
	DefaultAluminumPerLb = 2.15
)

// MetalPrices are the commodity reference prices maintained by admins.
type MetalPrices struct {
	CopperPerLb   float64   `json:"copper_per_lb"`
	AluminumPerLb float64   `json:"aluminum_per_lb"`
	UpdatedBy     string    `json:"updated_by"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func DefaultMetalPrices() MetalPrices {
	return MetalPrices{
		CopperPerLb:   DefaultCopperPerLb,
		AluminumPerLb: DefaultAluminumPerLb,
	}
}
