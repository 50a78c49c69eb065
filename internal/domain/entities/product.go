package entities

// Product is an immutable catalog record.
//
// BasePrice is per Unit (e.g. "per 1000ft").
type Product struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Voltage   string  `json:"voltage"`
	Material  string  `json:"material"`
	Gauge     string  `json:"gauge"`
	BasePrice float64 `json:"base_price"`
	Unit      string  `json:"unit"`
	Stock     int     `json:"stock"`
}

type StockStatus string

const (
	StockStatusInStock  StockStatus = "In Stock"
	StockStatusLow      StockStatus = "Low Stock"
	StockStatusCritical StockStatus = "Critical"
)

func (p Product) StockStatus() StockStatus {
	switch {
	case p.Stock > 500:
		return StockStatusInStock
	case p.Stock > 100:
		return StockStatusLow
	default:
		return StockStatusCritical
	}
}

// Description is the one-line technical summary used in catalog listings.
func (p Product) Description() string {
	return p.Voltage + " • " + p.Material + " • " + p.Gauge
}
