package models

import "gorm.io/gorm"

// Service is a sellable offering with a base commission rate.
// Rates are percentages in [0,100].
type Service struct {
	gorm.Model
	Name               string  `gorm:"not null" json:"name"`
	Description        string  `json:"description,omitempty"`
	BaseCommissionRate float64 `gorm:"not null" json:"base_commission_rate"`
	IsActive           bool    `gorm:"default:true" json:"is_active"`
}
