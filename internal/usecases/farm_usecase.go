package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"halachick.backend/internal/domain/entities"
	domainerrors "halachick.backend/internal/domain/errors"
	"halachick.backend/internal/domain/repositories"
)

// FarmUsecase handles farm onboarding and verification
type FarmUsecase struct {
	farmRepo repositories.FarmRepository
}

// NewFarmUsecase creates a new farm usecase
func NewFarmUsecase(farmRepo repositories.FarmRepository) *FarmUsecase {
	return &FarmUsecase{farmRepo: farmRepo}
}

// CreateFarm registers a farm pending admin verification
func (u *FarmUsecase) CreateFarm(ctx context.Context, farmerID uuid.UUID, input *entities.CreateFarmInput) (*entities.Farm, error) {
	farm := &entities.Farm{
		FarmerID:           farmerID,
		Name:               input.Name,
		Description:        input.Description,
		Location:           input.Location,
		Flock:              input.Flock,
		Documents:          input.Documents,
		VerificationStatus: entities.FarmVerificationPending,
	}

	if err := u.farmRepo.Create(ctx, farm); err != nil {
		return nil, err
	}
	return farm, nil
}

// GetFarm returns a single farm
func (u *FarmUsecase) GetFarm(ctx context.Context, id uuid.UUID) (*entities.Farm, error) {
	farm, err := u.farmRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("farm not found")
		}
		return nil, err
	}
	return farm, nil
}

// ListFarms lists all farms
func (u *FarmUsecase) ListFarms(ctx context.Context) ([]*entities.Farm, error) {
	return u.farmRepo.List(ctx)
}

// ListMyFarms lists the caller's farms
func (u *FarmUsecase) ListMyFarms(ctx context.Context, farmerID uuid.UUID) ([]*entities.Farm, error) {
	return u.farmRepo.ListByFarmer(ctx, farmerID)
}

// ReviewFarm records an admin verification decision
func (u *FarmUsecase) ReviewFarm(ctx context.Context, adminID, farmID uuid.UUID, input *entities.ReviewFarmInput) (*entities.Farm, error) {
	if input.Status != entities.FarmVerificationVerified && input.Status != entities.FarmVerificationRejected {
		return nil, domainerrors.BadRequest("status must be verified or rejected")
	}

	if err := u.farmRepo.UpdateVerification(ctx, farmID, input.Status, adminID, input.Notes); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("farm not found")
		}
		return nil, err
	}

	return u.farmRepo.GetByID(ctx, farmID)
}
