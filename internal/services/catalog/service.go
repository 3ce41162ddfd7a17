// Package catalog manages the sellable service catalog (admin-owned).
package catalog

import (
	"context"

	domainerrors "mabportal/internal/errors"
	"mabportal/internal/models"
	"mabportal/internal/repositories"
	"mabportal/internal/repositories/cache"
	"mabportal/internal/validation"
)

type CreateServiceRequest struct {
	Name               string  `json:"name" validate:"required,max=200"`
	Description        string  `json:"description,omitempty" validate:"max=500"`
	BaseCommissionRate float64 `json:"base_commission_rate" validate:"gte=0,lte=100"`
}

type UpdateServiceRequest struct {
	Name               string  `json:"name" validate:"required,max=200"`
	Description        string  `json:"description,omitempty" validate:"max=500"`
	BaseCommissionRate float64 `json:"base_commission_rate" validate:"gte=0,lte=100"`
	IsActive           bool    `json:"is_active"`
}

type Service interface {
	Create(ctx context.Context, req CreateServiceRequest) (*models.Service, error)
	Update(ctx context.Context, id uint, req UpdateServiceRequest) (*models.Service, error)
	ToggleActive(ctx context.Context, id uint) (*models.Service, error)
	// Delete removes a service that has never been sold. A service with
	// recorded transactions cannot be deleted, only deactivated.
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, includeInactive bool) ([]models.Service, error)
	Get(ctx context.Context, id uint) (*models.Service, error)
}

type service struct {
	services     repositories.ServiceRepository
	transactions repositories.TransactionRepository
	cache        *cache.CacheService
}

func NewService(services repositories.ServiceRepository, transactions repositories.TransactionRepository, cacheService *cache.CacheService) Service {
	if services == nil {
		panic("service repository is required")
	}
	if transactions == nil {
		panic("transaction repository is required")
	}
	return &service{
		services:     services,
		transactions: transactions,
		cache:        cacheService,
	}
}

func (s *service) Create(ctx context.Context, req CreateServiceRequest) (*models.Service, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	svc := &models.Service{
		Name:               req.Name,
		Description:        req.Description,
		BaseCommissionRate: req.BaseCommissionRate,
		IsActive:           true,
	}
	if err := s.services.Create(ctx, svc); err != nil {
		return nil, err
	}

	s.invalidateCatalogs(ctx)
	return svc, nil
}

func (s *service) Update(ctx context.Context, id uint, req UpdateServiceRequest) (*models.Service, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	svc.Name = req.Name
	svc.Description = req.Description
	svc.BaseCommissionRate = req.BaseCommissionRate
	svc.IsActive = req.IsActive

	if err := s.services.Update(ctx, svc); err != nil {
		return nil, err
	}

	s.invalidateCatalogs(ctx)
	return svc, nil
}

func (s *service) ToggleActive(ctx context.Context, id uint) (*models.Service, error) {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	svc.IsActive = !svc.IsActive
	if err := s.services.Update(ctx, svc); err != nil {
		return nil, err
	}

	s.invalidateCatalogs(ctx)
	return svc, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if _, err := s.services.GetByID(ctx, id); err != nil {
		return err
	}

	count, err := s.transactions.CountByService(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		// Historical transactions keep their snapshots; the service must stay.
		return domainerrors.ErrServiceReferenced
	}

	if err := s.services.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateCatalogs(ctx)
	return nil
}

func (s *service) List(ctx context.Context, includeInactive bool) ([]models.Service, error) {
	return s.services.List(ctx, includeInactive)
}

func (s *service) Get(ctx context.Context, id uint) (*models.Service, error) {
	return s.services.GetByID(ctx, id)
}

func (s *service) invalidateCatalogs(ctx context.Context) {
	if s.cache != nil {
		// Service-level changes affect every partner's visible catalog.
		_ = s.cache.InvalidateAllCatalogs(ctx)
	}
}
