package catalog

import (
	"context"
	"testing"
	"time"

	domainerrors "mabportal/internal/errors"
	"mabportal/internal/models"
	"mabportal/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockServiceRepo struct {
	mock.Mock
}

func (m *MockServiceRepo) Create(ctx context.Context, service *models.Service) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}

func (m *MockServiceRepo) GetByID(ctx context.Context, id uint) (*models.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Service), args.Error(1)
}

func (m *MockServiceRepo) Update(ctx context.Context, service *models.Service) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}

func (m *MockServiceRepo) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockServiceRepo) List(ctx context.Context, includeInactive bool) ([]models.Service, error) {
	args := m.Called(ctx, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Service), args.Error(1)
}

type MockTransactionRepo struct {
	mock.Mock
}

func (m *MockTransactionRepo) Create(ctx context.Context, tx *models.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionRepo) GetByID(ctx context.Context, id uint) (*models.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *MockTransactionRepo) List(ctx context.Context, filter repositories.TransactionFilter) ([]models.Transaction, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Transaction), args.Get(1).(int64), args.Error(2)
}

func (m *MockTransactionRepo) DecideIfPending(ctx context.Context, id uint, status string, approvedBy *uint, approvedAt *time.Time) (*models.Transaction, error) {
	args := m.Called(ctx, id, status, approvedBy, approvedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *MockTransactionRepo) InMonth(ctx context.Context, year int, month time.Month) ([]models.Transaction, error) {
	args := m.Called(ctx, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Transaction), args.Error(1)
}

func (m *MockTransactionRepo) InRange(ctx context.Context, partnerID uint, from, to time.Time) ([]models.Transaction, error) {
	args := m.Called(ctx, partnerID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Transaction), args.Error(1)
}

func (m *MockTransactionRepo) CountByService(ctx context.Context, serviceID uint) (int64, error) {
	args := m.Called(ctx, serviceID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionRepo) StatusCounts(ctx context.Context, partnerID uint) (map[string]int64, error) {
	args := m.Called(ctx, partnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

func storedService(id uint) *models.Service {
	svc := &models.Service{Name: "Consulting", BaseCommissionRate: 10, IsActive: true}
	svc.ID = id
	return svc
}

func TestCreateService(t *testing.T) {
	t.Run("new services start active", func(t *testing.T) {
		services := new(MockServiceRepo)
		transactions := new(MockTransactionRepo)
		services.On("Create", mock.Anything, mock.AnythingOfType("*models.Service")).Return(nil)

		svc := NewService(services, transactions, nil)
		created, err := svc.Create(context.Background(), CreateServiceRequest{
			Name:               "Consulting",
			BaseCommissionRate: 10,
		})

		assert.NoError(t, err)
		assert.True(t, created.IsActive)
		assert.Equal(t, float64(10), created.BaseCommissionRate)
	})

	t.Run("rejects a rate above 100", func(t *testing.T) {
		services := new(MockServiceRepo)
		transactions := new(MockTransactionRepo)

		svc := NewService(services, transactions, nil)
		_, err := svc.Create(context.Background(), CreateServiceRequest{
			Name:               "Consulting",
			BaseCommissionRate: 120,
		})

		var domainErr *domainerrors.DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domainerrors.KindValidation, domainErr.Kind)
		services.AssertNotCalled(t, "Create")
	})
}

func TestToggleActive(t *testing.T) {
	services := new(MockServiceRepo)
	transactions := new(MockTransactionRepo)

	services.On("GetByID", mock.Anything, uint(1)).Return(storedService(1), nil)
	services.On("Update", mock.Anything, mock.AnythingOfType("*models.Service")).Return(nil)

	svc := NewService(services, transactions, nil)
	toggled, err := svc.ToggleActive(context.Background(), 1)

	assert.NoError(t, err)
	assert.False(t, toggled.IsActive)
}

func TestDeleteService(t *testing.T) {
	t.Run("deletes an unsold service", func(t *testing.T) {
		services := new(MockServiceRepo)
		transactions := new(MockTransactionRepo)

		services.On("GetByID", mock.Anything, uint(1)).Return(storedService(1), nil)
		transactions.On("CountByService", mock.Anything, uint(1)).Return(int64(0), nil)
		services.On("Delete", mock.Anything, uint(1)).Return(nil)

		svc := NewService(services, transactions, nil)
		assert.NoError(t, svc.Delete(context.Background(), 1))
		services.AssertExpectations(t)
	})

	t.Run("refuses to delete a sold service", func(t *testing.T) {
		services := new(MockServiceRepo)
		transactions := new(MockTransactionRepo)

		services.On("GetByID", mock.Anything, uint(1)).Return(storedService(1), nil)
		transactions.On("CountByService", mock.Anything, uint(1)).Return(int64(4), nil)

		svc := NewService(services, transactions, nil)
		err := svc.Delete(context.Background(), 1)

		assert.ErrorIs(t, err, domainerrors.ErrServiceReferenced)
		services.AssertNotCalled(t, "Delete")
	})

	t.Run("fails for a missing service", func(t *testing.T) {
		services := new(MockServiceRepo)
		transactions := new(MockTransactionRepo)

		services.On("GetByID", mock.Anything, uint(99)).Return(nil, domainerrors.ErrServiceNotFound)

		svc := NewService(services, transactions, nil)
		err := svc.Delete(context.Background(), 99)

		assert.ErrorIs(t, err, domainerrors.ErrServiceNotFound)
	})
}
