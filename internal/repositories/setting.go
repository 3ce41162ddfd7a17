package repositories

import (
	"context"
	"fmt"

	"mabportal/internal/models"

	"gorm.io/gorm"
)

// SettingRepository handles the per-(partner, service) overrides.
type SettingRepository interface {
	Get(ctx context.Context, partnerID, serviceID uint) (*models.PartnerServiceSetting, error)
	ListForPartner(ctx context.Context, partnerID uint) ([]models.PartnerServiceSetting, error)
	// ReplaceForPartner swaps a partner's whole setting set in one database
	// transaction so a failure never leaves the partner half-configured.
	ReplaceForPartner(ctx context.Context, partnerID uint, settings []models.PartnerServiceSetting) error
}

type settingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{db: db}
}

func (r *settingRepository) Get(ctx context.Context, partnerID, serviceID uint) (*models.PartnerServiceSetting, error) {
	var setting models.PartnerServiceSetting
	err := r.db.WithContext(ctx).
		Where("partner_id = ? AND service_id = ?", partnerID, serviceID).
		First(&setting).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			// No override recorded for this pair; callers fall back to defaults.
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get partner service setting: %w", err)
	}
	return &setting, nil
}

func (r *settingRepository) ListForPartner(ctx context.Context, partnerID uint) ([]models.PartnerServiceSetting, error) {
	var settings []models.PartnerServiceSetting
	err := r.db.WithContext(ctx).
		Preload("Service").
		Where("partner_id = ?", partnerID).
		Find(&settings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list partner service settings: %w", err)
	}
	return settings, nil
}

func (r *settingRepository) ReplaceForPartner(ctx context.Context, partnerID uint, settings []models.PartnerServiceSetting) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("partner_id = ?", partnerID).
			Delete(&models.PartnerServiceSetting{}).Error; err != nil {
			return err
		}
		if len(settings) == 0 {
			return nil
		}
		for i := range settings {
			settings[i].PartnerID = partnerID
		}
		return tx.Create(&settings).Error
	})
	if err != nil {
		return fmt.Errorf("failed to replace partner settings: %w", err)
	}
	return nil
}
