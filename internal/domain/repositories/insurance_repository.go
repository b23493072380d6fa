package repositories

import (
	"context"

	"github.com/google/uuid"
	"halachick.backend/internal/domain/entities"
)

// InsuranceFundRepository defines the append-only contribution ledger.
// There is deliberately no update or delete operation.
type InsuranceFundRepository interface {
	AddContribution(ctx context.Context, contribution *entities.FundContribution) error
	// TotalAmount recomputes the fund balance as SUM(amount).
	TotalAmount(ctx context.Context) (float64, error)
	ListRecent(ctx context.Context, limit int) ([]*entities.FundContribution, error)
}

// InsuranceClaimRepository defines claim data operations
type InsuranceClaimRepository interface {
	Create(ctx context.Context, claim *entities.InsuranceClaim) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.InsuranceClaim, error)
	// List returns all claims newest first, joined with farm and farmer.
	List(ctx context.Context) ([]*entities.InsuranceClaim, error)
	ListLatest(ctx context.Context, limit int) ([]*entities.InsuranceClaim, error)
	CountByStatus(ctx context.Context, status entities.ClaimStatus) (int64, error)
	// UpdateReview persists the review fields of a claim.
	UpdateReview(ctx context.Context, claim *entities.InsuranceClaim) error
}
