package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"halachick.backend/internal/domain/entities"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByVerificationToken(ctx context.Context, token string) (*entities.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) SetVerificationToken(ctx context.Context, id uuid.UUID, token string, expires time.Time) error {
	args := m.Called(ctx, id, token, expires)
	return args.Error(0)
}

func (m *MockUserRepository) MarkEmailVerified(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, search string) ([]*entities.User, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.User), args.Error(1)
}

func (m *MockUserRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) CountByRole(ctx context.Context, role entities.UserRole, activeOnly bool) (int64, error) {
	args := m.Called(ctx, role, activeOnly)
	return args.Get(0).(int64), args.Error(1)
}

type MockFarmRepository struct {
	mock.Mock
}

func (m *MockFarmRepository) Create(ctx context.Context, farm *entities.Farm) error {
	args := m.Called(ctx, farm)
	return args.Error(0)
}

func (m *MockFarmRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Farm, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Farm), args.Error(1)
}

func (m *MockFarmRepository) List(ctx context.Context) ([]*entities.Farm, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Farm), args.Error(1)
}

func (m *MockFarmRepository) ListByFarmer(ctx context.Context, farmerID uuid.UUID) ([]*entities.Farm, error) {
	args := m.Called(ctx, farmerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Farm), args.Error(1)
}

func (m *MockFarmRepository) UpdateVerification(ctx context.Context, id uuid.UUID, status entities.FarmVerificationStatus, verifiedBy uuid.UUID, notes string) error {
	args := m.Called(ctx, id, status, verifiedBy, notes)
	return args.Error(0)
}

type MockInvestmentRepository struct {
	mock.Mock
}

func (m *MockInvestmentRepository) Create(ctx context.Context, investment *entities.Investment) error {
	args := m.Called(ctx, investment)
	return args.Error(0)
}

func (m *MockInvestmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Investment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Investment), args.Error(1)
}

func (m *MockInvestmentRepository) ListByInvestor(ctx context.Context, investorID uuid.UUID) ([]*entities.Investment, error) {
	args := m.Called(ctx, investorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Investment), args.Error(1)
}

func (m *MockInvestmentRepository) List(ctx context.Context) ([]*entities.Investment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Investment), args.Error(1)
}

func (m *MockInvestmentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.InvestmentStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockInvestmentRepository) CountByStatus(ctx context.Context, status entities.InvestmentStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvestmentRepository) CountAndProfitBetween(ctx context.Context, start, end time.Time) (int64, float64, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).(int64), args.Get(1).(float64), args.Error(2)
}

func (m *MockInvestmentRepository) CountByType(ctx context.Context) (map[entities.InvestmentType]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[entities.InvestmentType]int64), args.Error(1)
}

type MockInsuranceFundRepository struct {
	mock.Mock
}

func (m *MockInsuranceFundRepository) AddContribution(ctx context.Context, contribution *entities.FundContribution) error {
	args := m.Called(ctx, contribution)
	return args.Error(0)
}

func (m *MockInsuranceFundRepository) TotalAmount(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockInsuranceFundRepository) ListRecent(ctx context.Context, limit int) ([]*entities.FundContribution, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.FundContribution), args.Error(1)
}

type MockInsuranceClaimRepository struct {
	mock.Mock
}

func (m *MockInsuranceClaimRepository) Create(ctx context.Context, claim *entities.InsuranceClaim) error {
	args := m.Called(ctx, claim)
	return args.Error(0)
}

func (m *MockInsuranceClaimRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.InsuranceClaim, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.InsuranceClaim), args.Error(1)
}

func (m *MockInsuranceClaimRepository) List(ctx context.Context) ([]*entities.InsuranceClaim, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.InsuranceClaim), args.Error(1)
}

func (m *MockInsuranceClaimRepository) ListLatest(ctx context.Context, limit int) ([]*entities.InsuranceClaim, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.InsuranceClaim), args.Error(1)
}

func (m *MockInsuranceClaimRepository) CountByStatus(ctx context.Context, status entities.ClaimStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInsuranceClaimRepository) UpdateReview(ctx context.Context, claim *entities.InsuranceClaim) error {
	args := m.Called(ctx, claim)
	return args.Error(0)
}

type MockMarketProductRepository struct {
	mock.Mock
}

func (m *MockMarketProductRepository) Create(ctx context.Context, product *entities.MarketProduct) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockMarketProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.MarketProduct, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MarketProduct), args.Error(1)
}

func (m *MockMarketProductRepository) List(ctx context.Context) ([]*entities.MarketProduct, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.MarketProduct), args.Error(1)
}

func (m *MockMarketProductRepository) CountByStatus(ctx context.Context, status entities.ProductStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *entities.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) ListByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*entities.Order, error) {
	args := m.Called(ctx, buyerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Order), args.Error(1)
}

func (m *MockOrderRepository) ListRecent(ctx context.Context, limit int) ([]*entities.Order, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Order), args.Error(1)
}

func (m *MockOrderRepository) CountByStatus(ctx context.Context, status entities.OrderStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

type MockSettingRepository struct {
	mock.Mock
}

func (m *MockSettingRepository) GetAll(ctx context.Context) (map[string]interface{}, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]interface{}), args.Error(1)
}

func (m *MockSettingRepository) Save(ctx context.Context, key string, value interface{}) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendVerificationEmail(to, name, token string) error {
	args := m.Called(to, name, token)
	return args.Error(0)
}

func (m *MockMailer) SendNotificationEmail(to, name, subject, body string) error {
	args := m.Called(to, name, subject, body)
	return args.Error(0)
}

type MockTokenRevoker struct {
	mock.Mock
}

func (m *MockTokenRevoker) Revoke(ctx context.Context, token string, remaining time.Duration) error {
	args := m.Called(ctx, token, remaining)
	return args.Error(0)
}

func (m *MockTokenRevoker) IsRevoked(ctx context.Context, token string) (bool, error) {
	args := m.Called(ctx, token)
	return args.Bool(0), args.Error(1)
}
