// Package pricing computes quote totals from a customer discount and line items.
package pricing

import "errors"

const (
	// FreightThreshold is the subtotal above which freight is waived.
	FreightThreshold = 5000.0
	// FreightCharge is the flat freight applied at or below the threshold.
	FreightCharge = 150.0
	// TaxRate applies to the discounted subtotal only, never to freight.
	TaxRate = 0.08
)

var (
	ErrInvalidDiscount = errors.New("discount percent must be between 0 and 100")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrInvalidPrice    = errors.New("base price cannot be negative")
)

// Line is one product/quantity pair fed to the calculator.
type Line struct {
	ProductID string
	Name      string
	Unit      string
	BasePrice float64
	Quantity  int
}

// PricedLine holds the per-line results.
type PricedLine struct {
	Line
	LineTotal      float64 // BasePrice * Quantity
	DiscountAmount float64 // LineTotal * discount / 100
	NetPrice       float64 // LineTotal - DiscountAmount
}

// Breakdown is the full priced result for a quote.
type Breakdown struct {
	Lines           []PricedLine
	DiscountPercent float64
	Subtotal        float64
	Freight         float64
	Tax             float64
	Total           float64
}

// ItemCount is the number of priced lines.
func (b Breakdown) ItemCount() int {
	return len(b.Lines)
}

// TotalDiscount sums the discount granted across all lines.
func (b Breakdown) TotalDiscount() float64 {
	var sum float64
	for _, l := range b.Lines {
		sum += l.DiscountAmount
	}
	return sum
}

// CalcLine prices a single line. No rounding is applied.
func CalcLine(l Line, discountPercent float64) PricedLine {
	lineTotal := l.BasePrice * float64(l.Quantity)
	discountAmount := lineTotal * discountPercent / 100
	return PricedLine{
		Line:           l,
		LineTotal:      lineTotal,
		DiscountAmount: discountAmount,
		NetPrice:       lineTotal - discountAmount,
	}
}

// CalcFreight returns the freight charge for a discounted subtotal.
func CalcFreight(subtotal float64) float64 {
	if subtotal > FreightThreshold {
		return 0
	}
	return FreightCharge
}

// CalcTax returns the tax on a discounted subtotal.
func CalcTax(subtotal float64) float64 {
	return subtotal * TaxRate
}

// Calculate prices every line with the customer's discount and derives
// subtotal, freight, tax and total. An empty line list is valid.
func Calculate(discountPercent float64, lines []Line) (Breakdown, error) {
	if discountPercent < 0 || discountPercent > 100 {
		return Breakdown{}, ErrInvalidDiscount
	}

	out := Breakdown{
		Lines:           make([]PricedLine, 0, len(lines)),
		DiscountPercent: discountPercent,
	}
	for _, l := range lines {
		if l.Quantity <= 0 {
			return Breakdown{}, ErrInvalidQuantity
		}
		if l.BasePrice < 0 {
			return Breakdown{}, ErrInvalidPrice
		}
		pl := CalcLine(l, discountPercent)
		out.Subtotal += pl.NetPrice
		out.Lines = append(out.Lines, pl)
	}

	out.Freight = CalcFreight(out.Subtotal)
	out.Tax = CalcTax(out.Subtotal)
	out.Total = out.Subtotal + out.Freight + out.Tax
	return out, nil
}
