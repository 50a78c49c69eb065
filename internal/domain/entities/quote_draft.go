package entities

import (
	"errors"
	"math"
	"strings"
	"time"
)

// Step is a position in the four-step quote wizard.
type Step int

const (
	StepCustomerProject Step = 1
	StepAddProducts     Step = 2
	StepReviewPricing   Step = 3
	StepGenerate        Step = 4
)

func (s Step) Title() string {
	switch s {
	case StepCustomerProject:
		return "Customer & Project"
	case StepAddProducts:
		return "Add Products"
	case StepReviewPricing:
		return "Review & Pricing"
	case StepGenerate:
		return "Generate Quote"
	default:
		return ""
	}
}

var (
	ErrStepIncomplete   = errors.New("current step is not complete")
	ErrAlreadyLastStep  = errors.New("already at the last step")
	ErrAlreadyFirstStep = errors.New("already at the first step")
	ErrStepLocked       = errors.New("operation not allowed at the current step")
	ErrInvalidQuantity  = errors.New("quantity must be positive")
	ErrItemNotInQuote   = errors.New("item not in quote")
	ErrInvalidProductID = errors.New("invalid product id")
)

// LineItem is a product/quantity pair owned by a draft. Stored quantities
// are always positive.
type LineItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// QuoteDraft is the in-progress quote of a single session.
//
// It holds selections only; prices are always derived on demand from the
// draft and the reference data.
type QuoteDraft struct {
	ID          string     `json:"id"`
	CustomerID  string     `json:"customer_id"`
	ProjectName string     `json:"project_name"`
	Notes       string     `json:"notes"`
	LineItems   []LineItem `json:"line_items"`
	CurrentStep Step       `json:"current_step"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func NewQuoteDraft(id string, now time.Time) QuoteDraft {
	return QuoteDraft{
		ID:          id,
		LineItems:   []LineItem{},
		CurrentStep: StepCustomerProject,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// QuoteNumber is the human-facing reference derived from the draft id.
func (d *QuoteDraft) QuoteNumber() string {
	id := strings.ToUpper(strings.ReplaceAll(d.ID, "-", ""))
	if len(id) > 8 {
		id = id[:8]
	}
	return "Q-" + id
}

func (d *QuoteDraft) HasCustomer() bool {
	return d.CustomerID != ""
}

func (d *QuoteDraft) HasItems() bool {
	return len(d.LineItems) > 0
}

// CanAdvance reports whether the current step's completion predicate holds.
func (d *QuoteDraft) CanAdvance() bool {
	switch d.CurrentStep {
	case StepCustomerProject:
		return d.HasCustomer()
	case StepAddProducts:
		return d.HasItems()
	case StepReviewPricing:
		return true
	default:
		return false
	}
}

func (d *QuoteDraft) Advance(now time.Time) error {
	if d.CurrentStep >= StepGenerate {
		return ErrAlreadyLastStep
	}
	if !d.CanAdvance() {
		return ErrStepIncomplete
	}
	d.CurrentStep++
	d.UpdatedAt = now
	return nil
}

// Back moves one step backward; selections are kept.
func (d *QuoteDraft) Back(now time.Time) error {
	if d.CurrentStep <= StepCustomerProject {
		return ErrAlreadyFirstStep
	}
	d.CurrentStep--
	d.UpdatedAt = now
	return nil
}

// SelectCustomer sets the customer; an empty id clears the selection.
// The caller is responsible for checking the id resolves.
func (d *QuoteDraft) SelectCustomer(customerID string, now time.Time) error {
	if d.CurrentStep != StepCustomerProject {
		return ErrStepLocked
	}
	d.CustomerID = strings.TrimSpace(customerID)
	d.UpdatedAt = now
	return nil
}

func (d *QuoteDraft) SetProject(name, notes string, now time.Time) error {
	if d.CurrentStep != StepCustomerProject {
		return ErrStepLocked
	}
	d.ProjectName = strings.TrimSpace(name)
	d.Notes = strings.TrimSpace(notes)
	d.UpdatedAt = now
	return nil
}

// AddItem increments an existing line or appends a new one.
func (d *QuoteDraft) AddItem(productID string, qty int, now time.Time) error {
	if d.CurrentStep != StepAddProducts {
		return ErrStepLocked
	}
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return ErrInvalidProductID
	}
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	if i := d.indexOf(productID); i >= 0 {
		if qty > math.MaxInt-d.LineItems[i].Quantity {
			return ErrInvalidQuantity
		}
		d.LineItems[i].Quantity += qty
	} else {
		d.LineItems = append(d.LineItems, LineItem{ProductID: productID, Quantity: qty})
	}
	d.UpdatedAt = now
	return nil
}

// UpdateQuantity sets a line's quantity. A quantity of zero or less removes
// the line.
func (d *QuoteDraft) UpdateQuantity(productID string, qty int, now time.Time) error {
	if d.CurrentStep != StepAddProducts {
		return ErrStepLocked
	}
	i := d.indexOf(strings.TrimSpace(productID))
	if i < 0 {
		return ErrItemNotInQuote
	}
	if qty <= 0 {
		d.LineItems = append(d.LineItems[:i], d.LineItems[i+1:]...)
	} else {
		d.LineItems[i].Quantity = qty
	}
	d.UpdatedAt = now
	return nil
}

func (d *QuoteDraft) RemoveItem(productID string, now time.Time) error {
	return d.UpdateQuantity(productID, 0, now)
}

// Quantity returns the quantity of productID, or 0 when absent.
func (d *QuoteDraft) Quantity(productID string) int {
	if i := d.indexOf(productID); i >= 0 {
		return d.LineItems[i].Quantity
	}
	return 0
}

func (d *QuoteDraft) indexOf(productID string) int {
	for i, it := range d.LineItems {
		if it.ProductID == productID {
			return i
		}
	}
	return -1
}
