package entities

// Tier classifies customers by volume; it determines the discount they get.
type Tier string

const (
	TierA Tier = "A"
	TierB Tier = "B"
	TierC Tier = "C"
	TierD Tier = "D"
	TierE Tier = "E"
)

var Tiers = []Tier{TierA, TierB, TierC, TierD, TierE}

func (t Tier) Valid() bool {
	switch t {
	case TierA, TierB, TierC, TierD, TierE:
		return true
	}
	return false
}

// Description falls back to tier E for unknown values.
func (t Tier) Description() string {
	switch t {
	case TierA:
		return "Premium - Highest Volume"
	case TierB:
		return "Gold - High Volume"
	case TierC:
		return "Silver - Medium Volume"
	case TierD:
		return "Bronze - Low Volume"
	default:
		return "Basic - New Customer"
	}
}

// Customer is an immutable directory record.
type Customer struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Contact         string  `json:"contact"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	Address         string  `json:"address"`
	Tier            Tier    `json:"tier"`
	DiscountPercent float64 `json:"discount_percent"`
	PaymentTerms    string  `json:"payment_terms"`
	TotalOrders     int     `json:"total_orders"`
	YearlyVolume    float64 `json:"yearly_volume"`
}
