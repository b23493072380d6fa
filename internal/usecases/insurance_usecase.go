package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"halachick.backend/internal/domain/entities"
	domainerrors "halachick.backend/internal/domain/errors"
	"halachick.backend/internal/domain/repositories"
)

// InsuranceFund is the fund balance plus its latest inflows
type InsuranceFund struct {
	TotalAmount         float64                      `json:"totalAmount"`
	RecentContributions []*entities.FundContribution `json:"recentContributions"`
}

// InsuranceUsecase handles the fund ledger and claim lifecycle
type InsuranceUsecase struct {
	claimRepo repositories.InsuranceClaimRepository
	fundRepo  repositories.InsuranceFundRepository
	farmRepo  repositories.FarmRepository
}

// NewInsuranceUsecase creates a new insurance usecase
func NewInsuranceUsecase(
	claimRepo repositories.InsuranceClaimRepository,
	fundRepo repositories.InsuranceFundRepository,
	farmRepo repositories.FarmRepository,
) *InsuranceUsecase {
	return &InsuranceUsecase{
		claimRepo: claimRepo,
		fundRepo:  fundRepo,
		farmRepo:  farmRepo,
	}
}

// FileClaim records a pending claim against the caller's farm
func (u *InsuranceUsecase) FileClaim(ctx context.Context, farmerID uuid.UUID, input *entities.FileClaimInput) (*entities.InsuranceClaim, error) {
	farm, err := u.farmRepo.GetByID(ctx, input.FarmID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("farm not found")
		}
		return nil, err
	}
	if farm.FarmerID != farmerID {
		return nil, domainerrors.Forbidden("claims can only be filed for your own farm")
	}

	claim := &entities.InsuranceClaim{
		FarmID:          input.FarmID,
		ClaimType:       input.ClaimType,
		Description:     input.Description,
		Evidence:        input.Evidence,
		RequestedAmount: input.RequestedAmount,
		Status:          entities.ClaimPending,
	}

	if err := u.claimRepo.Create(ctx, claim); err != nil {
		return nil, err
	}
	claim.FarmName = farm.Name
	claim.FarmerName = farm.FarmerName
	return claim, nil
}

// ListClaims lists all claims for admin review
func (u *InsuranceUsecase) ListClaims(ctx context.Context) ([]*entities.InsuranceClaim, error) {
	return u.claimRepo.List(ctx)
}

// ReviewClaim approves or rejects a pending claim. A claim that
// already left pending cannot be reviewed again.
func (u *InsuranceUsecase) ReviewClaim(ctx context.Context, adminID uuid.UUID, input *entities.ReviewClaimInput) (*entities.InsuranceClaim, error) {
	if input.Status != entities.ClaimApproved && input.Status != entities.ClaimRejected {
		return nil, domainerrors.BadRequest("status must be approved or rejected")
	}

	claim, err := u.claimRepo.GetByID(ctx, input.ClaimID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("claim not found")
		}
		return nil, err
	}

	if claim.Status != entities.ClaimPending {
		return nil, domainerrors.ClaimAlreadyReviewed("claim has already been reviewed")
	}

	claim.Status = input.Status
	claim.ReviewedBy = &adminID
	claim.ReviewDate = null.TimeFrom(time.Now())
	if input.Status == entities.ClaimApproved {
		approved := claim.RequestedAmount
		if input.ApprovedAmount != nil {
			approved = *input.ApprovedAmount
		}
		claim.ApprovedAmount = null.Float64From(approved)
	}

	if err := u.claimRepo.UpdateReview(ctx, claim); err != nil {
		return nil, err
	}
	return claim, nil
}

// FundStatus returns the fund balance and its latest inflows
func (u *InsuranceUsecase) FundStatus(ctx context.Context) (*InsuranceFund, error) {
	total, err := u.fundRepo.TotalAmount(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := u.fundRepo.ListRecent(ctx, 10)
	if err != nil {
		return nil, err
	}

	return &InsuranceFund{TotalAmount: total, RecentContributions: recent}, nil
}

// Contribute appends a manual ledger entry, used for farmer initial
// contributions and platform top-ups
func (u *InsuranceUsecase) Contribute(ctx context.Context, contribution *entities.FundContribution) error {
	if contribution.Amount <= 0 {
		return domainerrors.BadRequest("contribution amount must be positive")
	}
	return u.fundRepo.AddContribution(ctx, contribution)
}
