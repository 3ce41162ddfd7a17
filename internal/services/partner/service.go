// Package partner covers the admin-side partner management: account
// provisioning and the per-partner service settings.
package partner

import (
	"context"
	"log"

	domainerrors "mabportal/internal/errors"
	"mabportal/internal/models"
	"mabportal/internal/repositories"
	"mabportal/internal/repositories/cache"
	"mabportal/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

type CreatePartnerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required,max=200"`
}

// SettingInput is one row of a settings replacement. A nil custom rate means
// the service's base rate applies.
type SettingInput struct {
	ServiceID            uint     `json:"service_id" validate:"required"`
	CustomCommissionRate *float64 `json:"custom_commission_rate,omitempty"`
	IsVisible            bool     `json:"is_visible"`
}

type Service interface {
	// Provision creates a new partner account. Role is fixed to partner and
	// is not changeable through this flow.
	Provision(ctx context.Context, req CreatePartnerRequest) (*models.User, error)
	List(ctx context.Context, offset, limit int) ([]models.User, int64, error)
	Settings(ctx context.Context, partnerID uint) ([]models.PartnerServiceSetting, error)
	// ReplaceSettings swaps the partner's whole setting set atomically.
	ReplaceSettings(ctx context.Context, partnerID uint, inputs []SettingInput) error
}

type service struct {
	users    repositories.UserRepository
	settings repositories.SettingRepository
	cache    *cache.CacheService
}

func NewService(users repositories.UserRepository, settings repositories.SettingRepository, cacheService *cache.CacheService) Service {
	if users == nil {
		panic("user repository is required")
	}
	if settings == nil {
		panic("setting repository is required")
	}
	return &service{
		users:    users,
		settings: settings,
		cache:    cacheService,
	}
}

func (s *service) Provision(ctx context.Context, req CreatePartnerRequest) (*models.User, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	if existing, err := s.users.GetByEmail(ctx, req.Email); err == nil && existing != nil {
		return nil, domainerrors.ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    req.Email,
		Password: string(hashed),
		FullName: req.FullName,
		Role:     models.RolePartner,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	log.Printf("Provisioned partner account %d (%s)", user.ID, user.Email)
	return user, nil
}

func (s *service) List(ctx context.Context, offset, limit int) ([]models.User, int64, error) {
	return s.users.ListByRole(ctx, models.RolePartner, offset, limit)
}

func (s *service) Settings(ctx context.Context, partnerID uint) ([]models.PartnerServiceSetting, error) {
	if _, err := s.users.GetByID(ctx, partnerID); err != nil {
		return nil, err
	}
	return s.settings.ListForPartner(ctx, partnerID)
}

func (s *service) ReplaceSettings(ctx context.Context, partnerID uint, inputs []SettingInput) error {
	if _, err := s.users.GetByID(ctx, partnerID); err != nil {
		return err
	}

	seen := make(map[uint]bool, len(inputs))
	settings := make([]models.PartnerServiceSetting, 0, len(inputs))
	for _, in := range inputs {
		if in.ServiceID == 0 {
			return domainerrors.Validation("service_id", "is required")
		}
		if seen[in.ServiceID] {
			return domainerrors.Validation("service_id", "appears more than once")
		}
		seen[in.ServiceID] = true

		if in.CustomCommissionRate != nil {
			if err := validation.CommissionRate("custom_commission_rate", *in.CustomCommissionRate); err != nil {
				return err
			}
		}
		settings = append(settings, models.PartnerServiceSetting{
			ServiceID:            in.ServiceID,
			CustomCommissionRate: in.CustomCommissionRate,
			IsVisible:            in.IsVisible,
		})
	}

	if err := s.settings.ReplaceForPartner(ctx, partnerID, settings); err != nil {
		return err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateCatalog(ctx, partnerID); err != nil {
			log.Printf("Failed to invalidate catalog cache for partner %d: %v", partnerID, err)
		}
	}
	return nil
}
