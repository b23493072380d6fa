package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"halachick.backend/internal/domain/entities"
	domainerrors "halachick.backend/internal/domain/errors"
	"halachick.backend/internal/domain/repositories"
)

const recentOrdersLimit = 5

// MarketUsecase handles the product catalog and orders
type MarketUsecase struct {
	productRepo repositories.MarketProductRepository
	orderRepo   repositories.OrderRepository
	farmRepo    repositories.FarmRepository
}

// NewMarketUsecase creates a new market usecase
func NewMarketUsecase(
	productRepo repositories.MarketProductRepository,
	orderRepo repositories.OrderRepository,
	farmRepo repositories.FarmRepository,
) *MarketUsecase {
	return &MarketUsecase{
		productRepo: productRepo,
		orderRepo:   orderRepo,
		farmRepo:    farmRepo,
	}
}

// CreateProduct lists a product from the seller's own farm
func (u *MarketUsecase) CreateProduct(ctx context.Context, sellerID uuid.UUID, input *entities.CreateProductInput) (*entities.MarketProduct, error) {
	farm, err := u.farmRepo.GetByID(ctx, input.FarmID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("farm not found")
		}
		return nil, err
	}
	if farm.FarmerID != sellerID {
		return nil, domainerrors.Forbidden("products can only be listed for your own farm")
	}

	product := &entities.MarketProduct{
		SellerID:    sellerID,
		FarmID:      input.FarmID,
		Name:        input.Name,
		Category:    input.Category,
		Description: input.Description,
		Price:       input.Price,
		Quantity:    input.Quantity,
		Unit:        input.Unit,
		Images:      input.Images,
		Status:      entities.ProductAvailable,
	}

	if err := u.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	product.FarmName = farm.Name
	return product, nil
}

// ListProducts lists all catalog products
func (u *MarketUsecase) ListProducts(ctx context.Context) ([]*entities.MarketProduct, error) {
	return u.productRepo.List(ctx)
}

// PlaceOrder orders a quantity of an available product
func (u *MarketUsecase) PlaceOrder(ctx context.Context, buyerID uuid.UUID, input *entities.CreateOrderInput) (*entities.Order, error) {
	product, err := u.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("product not found")
		}
		return nil, err
	}

	if product.Status != entities.ProductAvailable {
		return nil, domainerrors.BadRequest("product is not available")
	}
	if input.Quantity > product.Quantity {
		return nil, domainerrors.BadRequest("requested quantity exceeds available stock")
	}

	order := &entities.Order{
		BuyerID:         buyerID,
		ProductID:       input.ProductID,
		Quantity:        input.Quantity,
		TotalAmount:     float64(input.Quantity) * product.Price,
		Status:          entities.OrderPending,
		ShippingAddress: input.ShippingAddress,
	}

	if err := u.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	order.ProductName = product.Name
	return order, nil
}

// ListMyOrders lists the caller's orders
func (u *MarketUsecase) ListMyOrders(ctx context.Context, buyerID uuid.UUID) ([]*entities.Order, error) {
	return u.orderRepo.ListByBuyer(ctx, buyerID)
}

// Overview builds the admin market dashboard
func (u *MarketUsecase) Overview(ctx context.Context) (*entities.MarketOverview, error) {
	overview := &entities.MarketOverview{}

	var err error
	if overview.Products.Available, err = u.productRepo.CountByStatus(ctx, entities.ProductAvailable); err != nil {
		return nil, err
	}
	if overview.Products.SoldOut, err = u.productRepo.CountByStatus(ctx, entities.ProductSoldOut); err != nil {
		return nil, err
	}
	if overview.Products.Hidden, err = u.productRepo.CountByStatus(ctx, entities.ProductHidden); err != nil {
		return nil, err
	}

	if overview.Orders.PendingOrders, err = u.orderRepo.CountByStatus(ctx, entities.OrderPending); err != nil {
		return nil, err
	}
	if overview.Orders.ConfirmedOrders, err = u.orderRepo.CountByStatus(ctx, entities.OrderConfirmed); err != nil {
		return nil, err
	}
	if overview.Orders.ShippedOrders, err = u.orderRepo.CountByStatus(ctx, entities.OrderShipped); err != nil {
		return nil, err
	}
	if overview.Orders.RecentOrders, err = u.orderRepo.ListRecent(ctx, recentOrdersLimit); err != nil {
		return nil, err
	}

	return overview, nil
}
