package models

import (
	"time"

	"gorm.io/gorm"
)

// Transaction statuses
const (
	TransactionStatusPending  = "pending"
	TransactionStatusApproved = "approved"
	TransactionStatusRejected = "rejected"
)

// Transaction is one recorded sale. CommissionRate and CommissionAmount are
// snapshotted at creation and never recomputed, even if the service's base
// rate or the partner's override changes later.
type Transaction struct {
	gorm.Model
	Reference        string    `gorm:"uniqueIndex;not null" json:"reference"`
	PartnerID        uint      `gorm:"not null;index" json:"partner_id"`
	ServiceID        uint      `gorm:"not null;index" json:"service_id"`
	CustomerName     string    `gorm:"not null" json:"customer_name"`
	TotalAmount      float64   `gorm:"not null" json:"total_amount"`
	CommissionRate   float64   `gorm:"not null" json:"commission_rate"`
	CommissionAmount float64   `gorm:"not null" json:"commission_amount"`
	Status           string    `gorm:"not null;default:'pending';index" json:"status"`
	TransactionDate  time.Time `gorm:"not null;index" json:"transaction_date"`
	Notes            string    `json:"notes,omitempty"`
	ApprovedAt       *time.Time `json:"approved_at,omitempty"`
	ApprovedBy       *uint      `json:"approved_by,omitempty"`

	Partner *User    `gorm:"foreignKey:PartnerID" json:"partner,omitempty"`
	Service *Service `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
}

// IsDecided reports whether the transaction reached a terminal status.
func (t *Transaction) IsDecided() bool {
	return t.Status != TransactionStatusPending
}
