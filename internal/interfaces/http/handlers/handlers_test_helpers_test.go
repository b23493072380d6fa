package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"halachick.backend/internal/domain/entities"
	domainerrors "halachick.backend/internal/domain/errors"
	"halachick.backend/internal/interfaces/http/middleware"
)

// fakeAuth injects a user identity the way AuthMiddleware would
func fakeAuth(userID uuid.UUID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Set(middleware.UserEmailKey, "test@halachick.io")
		c.Set(middleware.UserRoleKey, role)
		c.Set(middleware.TokenKey, "test-token")
		c.Next()
	}
}

type userRepoStub struct {
	createFn     func(ctx context.Context, user *entities.User) error
	getByIDFn    func(ctx context.Context, id uuid.UUID) (*entities.User, error)
	getByEmailFn func(ctx context.Context, email string) (*entities.User, error)
	listFn       func(ctx context.Context, search string) ([]*entities.User, error)
}

func (s *userRepoStub) Create(ctx context.Context, user *entities.User) error {
	if s.createFn != nil {
		return s.createFn(ctx, user)
	}
	return nil
}

func (s *userRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	if s.getByEmailFn != nil {
		return s.getByEmailFn(ctx, email)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) GetByVerificationToken(context.Context, string) (*entities.User, error) {
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) Update(context.Context, *entities.User) error { return nil }

func (s *userRepoStub) SetVerificationToken(context.Context, uuid.UUID, string, time.Time) error {
	return nil
}

func (s *userRepoStub) MarkEmailVerified(context.Context, uuid.UUID) error { return nil }

func (s *userRepoStub) List(ctx context.Context, search string) ([]*entities.User, error) {
	if s.listFn != nil {
		return s.listFn(ctx, search)
	}
	return nil, nil
}

func (s *userRepoStub) SoftDelete(context.Context, uuid.UUID) error { return nil }

func (s *userRepoStub) CountByRole(context.Context, entities.UserRole, bool) (int64, error) {
	return 0, nil
}

type farmRepoStub struct {
	createFn  func(ctx context.Context, farm *entities.Farm) error
	getByIDFn func(ctx context.Context, id uuid.UUID) (*entities.Farm, error)
	listFn    func(ctx context.Context) ([]*entities.Farm, error)
}

func (s *farmRepoStub) Create(ctx context.Context, farm *entities.Farm) error {
	if s.createFn != nil {
		return s.createFn(ctx, farm)
	}
	return nil
}

func (s *farmRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.Farm, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *farmRepoStub) List(ctx context.Context) ([]*entities.Farm, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return nil, nil
}

func (s *farmRepoStub) ListByFarmer(context.Context, uuid.UUID) ([]*entities.Farm, error) {
	return nil, nil
}

func (s *farmRepoStub) UpdateVerification(context.Context, uuid.UUID, entities.FarmVerificationStatus, uuid.UUID, string) error {
	return nil
}

type investmentRepoStub struct {
	createFn         func(ctx context.Context, investment *entities.Investment) error
	getByIDFn        func(ctx context.Context, id uuid.UUID) (*entities.Investment, error)
	listByInvestorFn func(ctx context.Context, investorID uuid.UUID) ([]*entities.Investment, error)
	updateStatusFn   func(ctx context.Context, id uuid.UUID, status entities.InvestmentStatus) error
}

func (s *investmentRepoStub) Create(ctx context.Context, investment *entities.Investment) error {
	if s.createFn != nil {
		return s.createFn(ctx, investment)
	}
	return nil
}

func (s *investmentRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.Investment, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *investmentRepoStub) ListByInvestor(ctx context.Context, investorID uuid.UUID) ([]*entities.Investment, error) {
	if s.listByInvestorFn != nil {
		return s.listByInvestorFn(ctx, investorID)
	}
	return nil, nil
}

func (s *investmentRepoStub) List(context.Context) ([]*entities.Investment, error) { return nil, nil }

func (s *investmentRepoStub) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.InvestmentStatus) error {
	if s.updateStatusFn != nil {
		return s.updateStatusFn(ctx, id, status)
	}
	return nil
}

func (s *investmentRepoStub) CountByStatus(context.Context, entities.InvestmentStatus) (int64, error) {
	return 0, nil
}

func (s *investmentRepoStub) CountAndProfitBetween(context.Context, time.Time, time.Time) (int64, float64, error) {
	return 0, 0, nil
}

func (s *investmentRepoStub) CountByType(context.Context) (map[entities.InvestmentType]int64, error) {
	return map[entities.InvestmentType]int64{}, nil
}

type fundRepoStub struct {
	addFn   func(ctx context.Context, contribution *entities.FundContribution) error
	totalFn func(ctx context.Context) (float64, error)
}

func (s *fundRepoStub) AddContribution(ctx context.Context, contribution *entities.FundContribution) error {
	if s.addFn != nil {
		return s.addFn(ctx, contribution)
	}
	return nil
}

func (s *fundRepoStub) TotalAmount(ctx context.Context) (float64, error) {
	if s.totalFn != nil {
		return s.totalFn(ctx)
	}
	return 0, nil
}

func (s *fundRepoStub) ListRecent(context.Context, int) ([]*entities.FundContribution, error) {
	return nil, nil
}

type claimRepoStub struct {
	createFn  func(ctx context.Context, claim *entities.InsuranceClaim) error
	getByIDFn func(ctx context.Context, id uuid.UUID) (*entities.InsuranceClaim, error)
	listFn    func(ctx context.Context) ([]*entities.InsuranceClaim, error)
}

func (s *claimRepoStub) Create(ctx context.Context, claim *entities.InsuranceClaim) error {
	if s.createFn != nil {
		return s.createFn(ctx, claim)
	}
	return nil
}

func (s *claimRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.InsuranceClaim, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *claimRepoStub) List(ctx context.Context) ([]*entities.InsuranceClaim, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return nil, nil
}

func (s *claimRepoStub) ListLatest(context.Context, int) ([]*entities.InsuranceClaim, error) {
	return nil, nil
}

func (s *claimRepoStub) CountByStatus(context.Context, entities.ClaimStatus) (int64, error) {
	return 0, nil
}

func (s *claimRepoStub) UpdateReview(context.Context, *entities.InsuranceClaim) error { return nil }

type productRepoStub struct {
	createFn  func(ctx context.Context, product *entities.MarketProduct) error
	getByIDFn func(ctx context.Context, id uuid.UUID) (*entities.MarketProduct, error)
	listFn    func(ctx context.Context) ([]*entities.MarketProduct, error)
}

func (s *productRepoStub) Create(ctx context.Context, product *entities.MarketProduct) error {
	if s.createFn != nil {
		return s.createFn(ctx, product)
	}
	return nil
}

func (s *productRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.MarketProduct, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *productRepoStub) List(ctx context.Context) ([]*entities.MarketProduct, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return nil, nil
}

func (s *productRepoStub) CountByStatus(context.Context, entities.ProductStatus) (int64, error) {
	return 0, nil
}

type orderRepoStub struct {
	createFn func(ctx context.Context, order *entities.Order) error
}

func (s *orderRepoStub) Create(ctx context.Context, order *entities.Order) error {
	if s.createFn != nil {
		return s.createFn(ctx, order)
	}
	return nil
}

func (s *orderRepoStub) ListByBuyer(context.Context, uuid.UUID) ([]*entities.Order, error) {
	return nil, nil
}

func (s *orderRepoStub) ListRecent(context.Context, int) ([]*entities.Order, error) {
	return nil, nil
}

func (s *orderRepoStub) CountByStatus(context.Context, entities.OrderStatus) (int64, error) {
	return 0, nil
}

type settingRepoStub struct {
	getAllFn func(ctx context.Context) (map[string]interface{}, error)
	saveFn   func(ctx context.Context, key string, value interface{}) error
}

func (s *settingRepoStub) GetAll(ctx context.Context) (map[string]interface{}, error) {
	if s.getAllFn != nil {
		return s.getAllFn(ctx)
	}
	return map[string]interface{}{}, nil
}

func (s *settingRepoStub) Save(ctx context.Context, key string, value interface{}) error {
	if s.saveFn != nil {
		return s.saveFn(ctx, key, value)
	}
	return nil
}

type mailerStub struct{}

func (mailerStub) SendVerificationEmail(to, name, token string) error         { return nil }
func (mailerStub) SendNotificationEmail(to, name, subject, body string) error { return nil }

type revokerStub struct{}

func (revokerStub) Revoke(context.Context, string, time.Duration) error { return nil }
func (revokerStub) IsRevoked(context.Context, string) (bool, error)     { return false, nil }
