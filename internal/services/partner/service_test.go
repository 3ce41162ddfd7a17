package partner

import (
	"context"
	"testing"

	domainerrors "mabportal/internal/errors"
	"mabportal/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepo) ListByRole(ctx context.Context, role string, offset, limit int) ([]models.User, int64, error) {
	args := m.Called(ctx, role, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepo) IncrementTokenVersion(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepo) UpdatePassword(ctx context.Context, userID uint, hashedPassword string) error {
	args := m.Called(ctx, userID, hashedPassword)
	return args.Error(0)
}

type MockSettingRepo struct {
	mock.Mock
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

func TestProvision(t *testing.T) {
	t.Run("creates a partner with a hashed password", func(t *testing.T) {
		users := new(MockUserRepo)
		settings := new(MockSettingRepo)

		users.On("GetByEmail", mock.Anything, "partner@example.com").Return(nil, domainerrors.ErrPartnerNotFound)
		users.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).Return(nil)

		svc := NewService(users, settings, nil)
		user, err := svc.Provision(context.Background(), CreatePartnerRequest{
			Email:    "partner@example.com",
			Password: "supersecret",
			FullName: "Jordan Partner",
		})

		assert.NoError(t, err)
		assert.Equal(t, models.RolePartner, user.Role)
		assert.NotEqual(t, "supersecret", user.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("supersecret")))
		users.AssertExpectations(t)
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		users := new(MockUserRepo)
		settings := new(MockSettingRepo)

		existing := &models.User{Email: "partner@example.com"}
		users.On("GetByEmail", mock.Anything, "partner@example.com").Return(existing, nil)

		svc := NewService(users, settings, nil)
		_, err := svc.Provision(context.Background(), CreatePartnerRequest{
			Email:    "partner@example.com",
			Password: "supersecret",
			FullName: "Jordan Partner",
		})

		assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
		users.AssertNotCalled(t, "Create")
	})

	t.Run("rejects a short password", func(t *testing.T) {
		users := new(MockUserRepo)
		settings := new(MockSettingRepo)

		svc := NewService(users, settings, nil)
		_, err := svc.Provision(context.Background(), CreatePartnerRequest{
			Email:    "partner@example.com",
			Password: "short",
			FullName: "Jordan Partner",
		})

		var domainErr *domainerrors.DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domainerrors.KindValidation, domainErr.Kind)
		users.AssertNotCalled(t, "Create")
	})
}

func TestReplaceSettings(t *testing.T) {
	ratePtr := func(r float64) *float64 { return &r }

	partnerUser := func() *models.User {
		u := &models.User{Role: models.RolePartner}
		u.ID = 7
		return u
	}

	t.Run("replaces the whole set", func(t *testing.T) {
		users := new(MockUserRepo)
		settings := new(MockSettingRepo)

		users.On("GetByID", mock.Anything, uint(7)).Return(partnerUser(), nil)
		settings.On("ReplaceForPartner", mock.Anything, uint(7), mock.AnythingOfType("[]models.PartnerServiceSetting")).Return(nil)

		svc := NewService(users, settings, nil)
		err := svc.ReplaceSettings(context.Background(), 7, []SettingInput{
			{ServiceID: 1, CustomCommissionRate: ratePtr(5), IsVisible: true},
			{ServiceID: 2, IsVisible: false},
		})

		assert.NoError(t, err)

		replaced := settings.Calls[0].Arguments.Get(2).([]models.PartnerServiceSetting)
		assert.Len(t, replaced, 2)
		assert.Equal(t, float64(5), *replaced[0].CustomCommissionRate)
		assert.Nil(t, replaced[1].CustomCommissionRate)
	})

	t.Run("rejects a duplicate service", func(t *testing.T) {
		users := new(MockUserRepo)
		settings := new(MockSettingRepo)

		users.On("GetByID", mock.Anything, uint(7)).Return(partnerUser(), nil)

		svc := NewService(users, settings, nil)
		err := svc.ReplaceSettings(context.Background(), 7, []SettingInput{
			{ServiceID: 1, IsVisible: true},
			{ServiceID: 1, IsVisible: false},
		})

		var domainErr *domainerrors.DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domainerrors.KindValidation, domainErr.Kind)
		settings.AssertNotCalled(t, "ReplaceForPartner")
	})

	t.Run("rejects a rate above 100", func(t *testing.T) {
		users := new(MockUserRepo)
		settings := new(MockSettingRepo)

		users.On("GetByID", mock.Anything, uint(7)).Return(partnerUser(), nil)

		svc := NewService(users, settings, nil)
		err := svc.ReplaceSettings(context.Background(), 7, []SettingInput{
			{ServiceID: 1, CustomCommissionRate: ratePtr(150), IsVisible: true},
		})

		var domainErr *domainerrors.DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domainerrors.KindValidation, domainErr.Kind)
		settings.AssertNotCalled(t, "ReplaceForPartner")
	})

	t.Run("fails for an unknown partner", func(t *testing.T) {
		users := new(MockUserRepo)
		settings := new(MockSettingRepo)

		users.On("GetByID", mock.Anything, uint(99)).Return(nil, domainerrors.ErrPartnerNotFound)

		svc := NewService(users, settings, nil)
		err := svc.ReplaceSettings(context.Background(), 99, []SettingInput{
			{ServiceID: 1, IsVisible: true},
		})

		assert.ErrorIs(t, err, domainerrors.ErrPartnerNotFound)
	})
}
