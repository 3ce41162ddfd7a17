package models

import "gorm.io/gorm"

// PartnerServiceSetting is the per-(partner, service) override. At most one
// row exists per pair. A nil CustomCommissionRate means the service's base
// rate applies.
type PartnerServiceSetting struct {
	gorm.Model
	PartnerID            uint     `gorm:"not null;uniqueIndex:idx_partner_service" json:"partner_id"`
	ServiceID            uint     `gorm:"not null;uniqueIndex:idx_partner_service" json:"service_id"`
	CustomCommissionRate *float64 `json:"custom_commission_rate,omitempty"`
	IsVisible            bool     `gorm:"default:true" json:"is_visible"`

	Partner *User    `gorm:"foreignKey:PartnerID" json:"partner,omitempty"`
	Service *Service `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
}
