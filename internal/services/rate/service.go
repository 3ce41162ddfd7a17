// Package rate resolves the effective commission rate for a
// (partner, service) pair, honoring per-partner overrides and visibility.
package rate

import (
	"context"
	"log"

	"mabportal/internal/models"
	"mabportal/internal/repositories"
	"mabportal/internal/repositories/cache"
)

// Resolved is the outcome of a rate lookup. A sale may only be recorded when
// Visible is true; Rate is the percentage snapshotted onto the transaction.
type Resolved struct {
	Rate    float64
	Visible bool
}

type Resolver interface {
	// Resolve returns the effective rate and visibility for one pair.
	// Fails with ErrServiceNotFound when the service does not exist.
	Resolve(ctx context.Context, partnerID, serviceID uint) (Resolved, error)
	// VisibleServices lists everything a partner may currently sell, with
	// effective rates already applied.
	VisibleServices(ctx context.Context, partnerID uint) ([]models.VisibleService, error)
}

type resolver struct {
	services repositories.ServiceRepository
	settings repositories.SettingRepository
	cache    *cache.CacheService
}

// NewResolver creates a rate resolver. The cache is optional; pass nil to
// always resolve from the database (the transaction factory does).
func NewResolver(services repositories.ServiceRepository, settings repositories.SettingRepository, cacheService *cache.CacheService) Resolver {
	if services == nil {
		panic("service repository is required")
	}
	if settings == nil {
		panic("setting repository is required")
	}
	return &resolver{
		services: services,
		settings: settings,
		cache:    cacheService,
	}
}

func (r *resolver) Resolve(ctx context.Context, partnerID, serviceID uint) (Resolved, error) {
	service, err := r.services.GetByID(ctx, serviceID)
	if err != nil {
		return Resolved{}, err
	}

	setting, err := r.settings.Get(ctx, partnerID, serviceID)
	if err != nil {
		return Resolved{}, err
	}

	resolved := Resolved{Rate: service.BaseCommissionRate, Visible: true}
	if setting != nil {
		resolved.Visible = setting.IsVisible
		if setting.CustomCommissionRate != nil {
			resolved.Rate = *setting.CustomCommissionRate
		}
	}

	// An inactive service is never sellable, whatever the setting says.
	if !service.IsActive {
		resolved.Visible = false
	}

	return resolved, nil
}

func (r *resolver) VisibleServices(ctx context.Context, partnerID uint) ([]models.VisibleService, error) {
	if r.cache != nil {
		if catalog, found, err := r.cache.GetCatalog(ctx, partnerID); err == nil && found {
			return catalog, nil
		}
	}

	services, err := r.services.List(ctx, false)
	if err != nil {
		return nil, err
	}

	settings, err := r.settings.ListForPartner(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	byService := make(map[uint]models.PartnerServiceSetting, len(settings))
	for _, s := range settings {
		byService[s.ServiceID] = s
	}

	catalog := make([]models.VisibleService, 0, len(services))
	for _, svc := range services {
		rate := svc.BaseCommissionRate
		visible := true
		if setting, ok := byService[svc.ID]; ok {
			visible = setting.IsVisible
			if setting.CustomCommissionRate != nil {
				rate = *setting.CustomCommissionRate
			}
		}
		if !visible {
			continue
		}
		catalog = append(catalog, models.VisibleService{
			ServiceID:               svc.ID,
			Name:                    svc.Name,
			EffectiveCommissionRate: rate,
		})
	}

	if r.cache != nil {
		if err := r.cache.CacheCatalog(ctx, partnerID, catalog); err != nil {
			log.Printf("Failed to cache catalog for partner %d: %v", partnerID, err)
		}
	}

	return catalog, nil
}
