package repositories

import (
	"context"

	"github.com/google/uuid"
	"halachick.backend/internal/domain/entities"
)

// FarmRepository defines farm data operations
type FarmRepository interface {
	Create(ctx context.Context, farm *entities.Farm) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Farm, error)
	List(ctx context.Context) ([]*entities.Farm, error)
	ListByFarmer(ctx context.Context, farmerID uuid.UUID) ([]*entities.Farm, error)
	// UpdateVerification records an admin review decision.
	UpdateVerification(ctx context.Context, id uuid.UUID, status entities.FarmVerificationStatus, verifiedBy uuid.UUID, notes string) error
}
