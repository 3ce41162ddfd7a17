package transaction

import "time"

// Decisions an admin can take on a pending sale.
const (
	DecisionApprove = "approve"
	DecisionReject  = "reject"
)

// CreateSaleRequest is a partner's sale submission. TransactionDate is the
// business date of the sale and defaults to today when zero.
type CreateSaleRequest struct {
	ServiceID       uint      `json:"service_id" validate:"required"`
	CustomerName    string    `json:"customer_name" validate:"required"`
	TotalAmount     float64   `json:"total_amount" validate:"required,gt=0"`
	TransactionDate time.Time `json:"transaction_date,omitempty"`
	Notes           string    `json:"notes,omitempty"`
}

// ListRequest narrows a transaction listing.
type ListRequest struct {
	PartnerID uint
	ServiceID uint
	Status    string
	From      time.Time
	To        time.Time
	Offset    int
	Limit     int
}
