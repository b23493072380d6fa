package usecases

import (
	"context"
	"errors"
	"math"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"halachick.backend/internal/domain/entities"
	domainerrors "halachick.backend/internal/domain/errors"
	"halachick.backend/internal/domain/repositories"
	"halachick.backend/pkg/logger"
)

// StatusHook runs after an investment status change is persisted.
// Hook failures are logged, never propagated to the caller.
type StatusHook func(ctx context.Context, investment *entities.Investment, status entities.InvestmentStatus) error

// InvestmentUsecase handles investment business logic
type InvestmentUsecase struct {
	investmentRepo repositories.InvestmentRepository
	fundRepo       repositories.InsuranceFundRepository
	statusHooks    []StatusHook
}

// NewInvestmentUsecase creates a new investment usecase
func NewInvestmentUsecase(
	investmentRepo repositories.InvestmentRepository,
	fundRepo repositories.InsuranceFundRepository,
) *InvestmentUsecase {
	return &InvestmentUsecase{
		investmentRepo: investmentRepo,
		fundRepo:       fundRepo,
	}
}

// RegisterStatusHook appends a hook to run on status transitions
func (u *InvestmentUsecase) RegisterStatusHook(hook StatusHook) {
	u.statusHooks = append(u.statusHooks, hook)
}

// CreateInvestment validates and records a new investment. The
// insurance fee, when present, is booked into the fund ledger.
func (u *InvestmentUsecase) CreateInvestment(ctx context.Context, investorID uuid.UUID, input *entities.CreateInvestmentInput) (*entities.Investment, error) {
	pkg, err := validatePackage(input)
	if err != nil {
		return nil, err
	}

	expected := float64(input.Quantity) * input.UnitPrice
	if math.Abs(expected-input.TotalAmount) > 0.01 {
		return nil, domainerrors.BadRequest("totalAmount must equal quantity times unitPrice")
	}

	investment := &entities.Investment{
		InvestorID:       investorID,
		Type:             input.Type,
		Package:          pkg,
		Quantity:         input.Quantity,
		UnitPrice:        input.UnitPrice,
		TotalAmount:      input.TotalAmount,
		ProfitPercentage: input.ProfitPercentage,
		InsuranceFee:     input.InsuranceFee,
		Status:           entities.InvestmentPendingPayment,
	}

	if err := u.investmentRepo.Create(ctx, investment); err != nil {
		return nil, err
	}

	if input.InsuranceFee > 0 {
		contribution := &entities.FundContribution{
			ContributorID:       investorID,
			ContributorType:     entities.ContributorInvestor,
			Amount:              input.InsuranceFee,
			ContributionType:    entities.ContributionInvestmentBased,
			RelatedInvestmentID: &investment.ID,
		}
		if err := u.fundRepo.AddContribution(ctx, contribution); err != nil {
			logger.Error(ctx, "failed to record insurance fee contribution",
				zap.String("investment_id", investment.ID.String()),
				zap.Error(err))
		}
	}

	return investment, nil
}

// GetInvestment returns a single investment
func (u *InvestmentUsecase) GetInvestment(ctx context.Context, id uuid.UUID) (*entities.Investment, error) {
	investment, err := u.investmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("investment not found")
		}
		return nil, err
	}
	return investment, nil
}

// ListMyInvestments lists the caller's investments
func (u *InvestmentUsecase) ListMyInvestments(ctx context.Context, investorID uuid.UUID) ([]*entities.Investment, error) {
	return u.investmentRepo.ListByInvestor(ctx, investorID)
}

// ListInvestments lists all investments
func (u *InvestmentUsecase) ListInvestments(ctx context.Context) ([]*entities.Investment, error) {
	return u.investmentRepo.List(ctx)
}

// SetStatus moves an investment to any valid lifecycle status.
// Transitions carry no ordering rules; registered hooks observe them.
func (u *InvestmentUsecase) SetStatus(ctx context.Context, id uuid.UUID, status entities.InvestmentStatus) (*entities.Investment, error) {
	if !entities.ValidInvestmentStatus(status) {
		return nil, domainerrors.BadRequest("unknown investment status")
	}

	investment, err := u.investmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("investment not found")
		}
		return nil, err
	}

	if err := u.investmentRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	investment.Status = status

	for _, hook := range u.statusHooks {
		if err := hook(ctx, investment, status); err != nil {
			logger.Error(ctx, "investment status hook failed",
				zap.String("investment_id", id.String()),
				zap.String("status", string(status)),
				zap.Error(err))
		}
	}

	return investment, nil
}

func validatePackage(input *entities.CreateInvestmentInput) (entities.InvestmentPackage, error) {
	switch input.Type {
	case entities.InvestmentBaidCash:
		if input.DurationDays == nil || *input.DurationDays <= 0 {
			return entities.InvestmentPackage{}, domainerrors.BadRequest("BaidCash investments require a positive duration")
		}
		return entities.InvestmentPackage{DurationDays: input.DurationDays}, nil
	case entities.InvestmentKtiCash:
		if input.AgePackage == nil || !entities.ValidAgePackage(*input.AgePackage) {
			return entities.InvestmentPackage{}, domainerrors.BadRequest("KtiCash investments require a valid age package")
		}
		return entities.InvestmentPackage{AgePackage: input.AgePackage}, nil
	default:
		return entities.InvestmentPackage{}, domainerrors.BadRequest("unknown investment type")
	}
}
