package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"halachick.backend/internal/domain/entities"
	domainerrors "halachick.backend/internal/domain/errors"
	"halachick.backend/internal/infrastructure/models"
	"halachick.backend/pkg/utils"
)

// MarketProductRepository implements catalog data operations
type MarketProductRepository struct {
	db *gorm.DB
}

// NewMarketProductRepository creates a new market product repository
func NewMarketProductRepository(db *gorm.DB) *MarketProductRepository {
	return &MarketProductRepository{db: db}
}

type productRow struct {
	models.MarketProduct
	FarmName string
}

// Create creates a new listing
func (r *MarketProductRepository) Create(ctx context.Context, product *entities.MarketProduct) error {
	if product.ID == uuid.Nil {
		product.ID = utils.GenerateUUIDv7()
	}

	images, err := json.Marshal(product.Images)
	if err != nil {
		return err
	}

	m := &models.MarketProduct{
		ID:          product.ID,
		SellerID:    product.SellerID,
		FarmID:      product.FarmID,
		Name:        product.Name,
		Category:    string(product.Category),
		Description: product.Description,
		Price:       product.Price,
		Quantity:    product.Quantity,
		Unit:        product.Unit,
		Images:      string(images),
		Status:      string(product.Status),
		CreatedAt:   product.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	product.CreatedAt = m.CreatedAt
	return nil
}

// GetByID gets a listing by ID
func (r *MarketProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.MarketProduct, error) {
	var row productRow
	err := r.db.WithContext(ctx).
		Table("market_products").
		Select("market_products.*, farms.name AS farm_name").
		Joins("LEFT JOIN farms ON farms.id = market_products.farm_id").
		Where("market_products.id = ?", id).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return productToEntity(&row), nil
}

// List lists all listings newest first
func (r *MarketProductRepository) List(ctx context.Context) ([]*entities.MarketProduct, error) {
	var rows []productRow
	err := r.db.WithContext(ctx).
		Table("market_products").
		Select("market_products.*, farms.name AS farm_name").
		Joins("LEFT JOIN farms ON farms.id = market_products.farm_id").
		Order("market_products.created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	products := make([]*entities.MarketProduct, 0, len(rows))
	for i := range rows {
		products = append(products, productToEntity(&rows[i]))
	}
	return products, nil
}

// CountByStatus counts listings in an availability status
func (r *MarketProductRepository) CountByStatus(ctx context.Context, status entities.ProductStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.MarketProduct{}).
		Where("status = ?", string(status)).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func productToEntity(row *productRow) *entities.MarketProduct {
	var images []string
	if row.Images != "" {
		_ = json.Unmarshal([]byte(row.Images), &images)
	}

	return &entities.MarketProduct{
		ID:          row.ID,
		SellerID:    row.SellerID,
		FarmID:      row.FarmID,
		Name:        row.Name,
		Category:    entities.ProductCategory(row.Category),
		Description: row.Description,
		Price:       row.Price,
		Quantity:    row.Quantity,
		Unit:        row.Unit,
		Images:      images,
		Status:      entities.ProductStatus(row.Status),
		CreatedAt:   row.CreatedAt,
		FarmName:    row.FarmName,
	}
}

// OrderRepository implements order data operations
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

type orderRow struct {
	models.Order
	BuyerName   string
	ProductName string
}

// Create creates a new order
func (r *OrderRepository) Create(ctx context.Context, order *entities.Order) error {
	if order.ID == uuid.Nil {
		order.ID = utils.GenerateUUIDv7()
	}

	m := &models.Order{
		ID:          order.ID,
		BuyerID:     order.BuyerID,
		ProductID:   order.ProductID,
		Quantity:    order.Quantity,
		TotalAmount: order.TotalAmount,
		Status:      string(order.Status),
		CreatedAt:   order.CreatedAt,
	}
	if order.ShippingAddress != nil {
		address, err := json.Marshal(order.ShippingAddress)
		if err != nil {
			return err
		}
		s := string(address)
		m.ShippingAddress = &s
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	order.CreatedAt = m.CreatedAt
	return nil
}

// ListByBuyer lists a buyer's orders newest first
func (r *OrderRepository) ListByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*entities.Order, error) {
	var rows []orderRow
	err := r.orderQuery(ctx).
		Where("orders.buyer_id = ?", buyerID).
		Order("orders.created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return ordersToEntities(rows), nil
}

// ListRecent lists the newest orders up to a limit
func (r *OrderRepository) ListRecent(ctx context.Context, limit int) ([]*entities.Order, error) {
	var rows []orderRow
	err := r.orderQuery(ctx).
		Order("orders.created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return ordersToEntities(rows), nil
}

// CountByStatus counts orders in a fulfilment status
func (r *OrderRepository) CountByStatus(ctx context.Context, status entities.OrderStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Order{}).
		Where("status = ?", string(status)).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *OrderRepository) orderQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("orders").
		Select("orders.*, users.full_name AS buyer_name, market_products.name AS product_name").
		Joins("LEFT JOIN users ON users.id = orders.buyer_id").
		Joins("LEFT JOIN market_products ON market_products.id = orders.product_id")
}

func ordersToEntities(rows []orderRow) []*entities.Order {
	orders := make([]*entities.Order, 0, len(rows))
	for i := range rows {
		orders = append(orders, orderToEntity(&rows[i]))
	}
	return orders
}

func orderToEntity(row *orderRow) *entities.Order {
	var address *entities.ShippingAddress
	if row.ShippingAddress != nil && *row.ShippingAddress != "" {
		address = &entities.ShippingAddress{}
		_ = json.Unmarshal([]byte(*row.ShippingAddress), address)
	}

	return &entities.Order{
		ID:              row.ID,
		BuyerID:         row.BuyerID,
		ProductID:       row.ProductID,
		Quantity:        row.Quantity,
		TotalAmount:     row.TotalAmount,
		Status:          entities.OrderStatus(row.Status),
		ShippingAddress: address,
		CreatedAt:       row.CreatedAt,
		BuyerName:       row.BuyerName,
		ProductName:     row.ProductName,
	}
}
