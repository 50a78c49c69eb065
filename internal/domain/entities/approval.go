package entities

import "time"

// ApprovalStatus is the lifecycle of a quote approval request.
type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

func (s ApprovalStatus) Valid() bool {
	switch s {
	case ApprovalStatusPending, ApprovalStatusApproved, ApprovalStatusRejected:
		return true
	}
	return false
}

// ApprovalRequest is raised by agents whose quotes need sign-off.
//
// Amount is a snapshot of the quote total at request time; the quote itself
// is not stored.
type ApprovalRequest struct {
	ID           string         `json:"id"`
	QuoteNumber  string         `json:"quote_number"`
	CustomerID   string         `json:"customer_id"`
	CustomerName string         `json:"customer_name"`
	ProjectName  string         `json:"project_name"`
	Agent        string         `json:"agent"`
	Amount       float64        `json:"amount"`
	ItemCount    int            `json:"item_count"`
	Status       ApprovalStatus `json:"status"`
	DecidedBy    string         `json:"decided_by,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}
