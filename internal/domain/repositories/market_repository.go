package repositories

import (
	"context"

	"github.com/google/uuid"
	"halachick.backend/internal/domain/entities"
)

// MarketProductRepository defines catalog data operations
type MarketProductRepository interface {
	Create(ctx context.Context, product *entities.MarketProduct) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.MarketProduct, error)
	List(ctx context.Context) ([]*entities.MarketProduct, error)
	CountByStatus(ctx context.Context, status entities.ProductStatus) (int64, error)
}

// OrderRepository defines order data operations
type OrderRepository interface {
	Create(ctx context.Context, order *entities.Order) error
	ListByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*entities.Order, error)
	ListRecent(ctx context.Context, limit int) ([]*entities.Order, error)
	CountByStatus(ctx context.Context, status entities.OrderStatus) (int64, error)
}
