package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"halachick.backend/internal/domain/entities"
)

// InvestmentRepository defines investment data operations
type InvestmentRepository interface {
	Create(ctx context.Context, investment *entities.Investment) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Investment, error)
	ListByInvestor(ctx context.Context, investorID uuid.UUID) ([]*entities.Investment, error)
	List(ctx context.Context) ([]*entities.Investment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.InvestmentStatus) error
	CountByStatus(ctx context.Context, status entities.InvestmentStatus) (int64, error)
	// CountAndProfitBetween aggregates investments created in
	// [start, end): record count and sum of current profit.
	CountAndProfitBetween(ctx context.Context, start, end time.Time) (int64, float64, error)
	CountByType(ctx context.Context) (map[entities.InvestmentType]int64, error)
}
