package rate

import (
	"context"
	"testing"

	domainerrors "mabportal/internal/errors"
	"mabportal/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockServiceRepo struct {
	mock.Mock
}

type MockSettingRepo struct {
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

func (m *MockSettingRepo) Get(ctx context.Context, partnerID, serviceID uint) (*models.PartnerServiceSetting, error) {
	args := m.Called(ctx, partnerID, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PartnerServiceSetting), args.Error(1)
}

func (m *MockSettingRepo) ListForPartner(ctx context.Context, partnerID uint) ([]models.PartnerServiceSetting, error) {
	args := m.Called(ctx, partnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PartnerServiceSetting), args.Error(1)
}

func (m *MockSettingRepo) ReplaceForPartner(ctx context.Context, partnerID uint, settings []models.PartnerServiceSetting) error {
	args := m.Called(ctx, partnerID, settings)
	return args.Error(0)
}

func activeService(id uint, baseRate float64) *models.Service {
	svc := &models.Service{
		Name:               "Consulting",
		BaseCommissionRate: baseRate,
		IsActive:           true,
	}
	svc.ID = id
	return svc
}

func TestResolve(t *testing.T) {
	ratePtr := func(r float64) *float64 { return &r }

	tests := []struct {
		name        string
		setupMock   func(*MockServiceRepo, *MockSettingRepo)
		wantRate    float64
		wantVisible bool
		wantErr     error
	}{
		{
			name: "no setting falls back to base rate",
			setupMock: func(services *MockServiceRepo, settings *MockSettingRepo) {
				services.On("GetByID", mock.Anything, uint(1)).Return(activeService(1, 10), nil)
				settings.On("Get", mock.Anything, uint(7), uint(1)).Return(nil, nil)
			},
			wantRate:    10,
			wantVisible: true,
		},
		{
			name: "custom rate overrides base",
			setupMock: func(services *MockServiceRepo, settings *MockSettingRepo) {
				services.On("GetByID", mock.Anything, uint(1)).Return(activeService(1, 10), nil)
				settings.On("Get", mock.Anything, uint(7), uint(1)).Return(&models.PartnerServiceSetting{
					PartnerID:            7,
					ServiceID:            1,
					CustomCommissionRate: ratePtr(5),
					IsVisible:            true,
				}, nil)
			},
			wantRate:    5,
			wantVisible: true,
		},
		{
			name: "setting without custom rate keeps base",
			setupMock: func(services *MockServiceRepo, settings *MockSettingRepo) {
				services.On("GetByID", mock.Anything, uint(1)).Return(activeService(1, 12.5), nil)
				settings.On("Get", mock.Anything, uint(7), uint(1)).Return(&models.PartnerServiceSetting{
					PartnerID: 7,
					ServiceID: 1,
					IsVisible: true,
				}, nil)
			},
			wantRate:    12.5,
			wantVisible: true,
		},
		{
			name: "hidden setting blocks the pair",
			setupMock: func(services *MockServiceRepo, settings *MockSettingRepo) {
				services.On("GetByID", mock.Anything, uint(1)).Return(activeService(1, 10), nil)
				settings.On("Get", mock.Anything, uint(7), uint(1)).Return(&models.PartnerServiceSetting{
					PartnerID: 7,
					ServiceID: 1,
					IsVisible: false,
				}, nil)
			},
			wantRate:    10,
			wantVisible: false,
		},
		{
			name: "inactive service is never visible",
			setupMock: func(services *MockServiceRepo, settings *MockSettingRepo) {
				svc := activeService(1, 10)
				svc.IsActive = false
				services.On("GetByID", mock.Anything, uint(1)).Return(svc, nil)
				settings.On("Get", mock.Anything, uint(7), uint(1)).Return(&models.PartnerServiceSetting{
					PartnerID: 7,
					ServiceID: 1,
					IsVisible: true,
				}, nil)
			},
			wantRate:    10,
			wantVisible: false,
		},
		{
			name: "missing service fails with not found",
			setupMock: func(services *MockServiceRepo, settings *MockSettingRepo) {
				services.On("GetByID", mock.Anything, uint(1)).Return(nil, domainerrors.ErrServiceNotFound)
			},
			wantErr: domainerrors.ErrServiceNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := new(MockServiceRepo)
			settings := new(MockSettingRepo)
			tt.setupMock(services, settings)

			resolver := NewResolver(services, settings, nil)
			resolved, err := resolver.Resolve(context.Background(), 7, 1)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantRate, resolved.Rate)
			assert.Equal(t, tt.wantVisible, resolved.Visible)

			services.AssertExpectations(t)
			settings.AssertExpectations(t)
		})
	}
}

func TestVisibleServices(t *testing.T) {
	ratePtr := func(r float64) *float64 { return &r }

	services := new(MockServiceRepo)
	settings := new(MockSettingRepo)

	consulting := *activeService(1, 10)
	hosting := *activeService(2, 20)
	hosting.Name = "Hosting"

	services.On("List", mock.Anything, false).Return([]models.Service{consulting, hosting}, nil)
	settings.On("ListForPartner", mock.Anything, uint(7)).Return([]models.PartnerServiceSetting{
		{PartnerID: 7, ServiceID: 1, CustomCommissionRate: ratePtr(5), IsVisible: true},
		{PartnerID: 7, ServiceID: 2, IsVisible: false},
	}, nil)

	resolver := NewResolver(services, settings, nil)
	catalog, err := resolver.VisibleServices(context.Background(), 7)

	assert.NoError(t, err)
	assert.Len(t, catalog, 1)
	assert.Equal(t, uint(1), catalog[0].ServiceID)
	assert.Equal(t, float64(5), catalog[0].EffectiveCommissionRate)
}

func TestVisibleServicesEmptyCatalog(t *testing.T) {
	services := new(MockServiceRepo)
	settings := new(MockSettingRepo)

	services.On("List", mock.Anything, false).Return([]models.Service{}, nil)
	settings.On("ListForPartner", mock.Anything, uint(7)).Return([]models.PartnerServiceSetting{}, nil)

	resolver := NewResolver(services, settings, nil)
	catalog, err := resolver.VisibleServices(context.Background(), 7)

	assert.NoError(t, err)
	assert.Empty(t, catalog)
}
