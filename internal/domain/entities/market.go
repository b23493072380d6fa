package entities

import (
	"time"

	"github.com/google/uuid"
)

// ProductCategory represents the market catalog categories
type ProductCategory string

const (
	CategoryEggs   ProductCategory = "eggs"
	CategoryChicks ProductCategory = "chicks"
	CategoryHens   ProductCategory = "hens"
	CategoryFeed   ProductCategory = "feed"
	CategoryOther  ProductCategory = "other"
)

// ProductStatus represents a listing's availability
type ProductStatus string

const (
	ProductAvailable ProductStatus = "available"
	ProductSoldOut   ProductStatus = "sold_out"
	ProductHidden    ProductStatus = "hidden"
)

// OrderStatus represents an order's fulfilment state
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// MarketProduct represents a catalog listing
type MarketProduct struct {
	ID          uuid.UUID       `json:"id"`
	SellerID    uuid.UUID       `json:"sellerId"`
	FarmID      uuid.UUID       `json:"farmId"`
	Name        string          `json:"name"`
	Category    ProductCategory `json:"category"`
	Description string          `json:"description,omitempty"`
	Price       float64         `json:"price"`
	Quantity    int             `json:"quantity"`
	Unit        string          `json:"unit"`
	Images      []string        `json:"images"`
	Status      ProductStatus   `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`

	// Populated on joined reads
	FarmName string `json:"farmName,omitempty"`
}

// ShippingAddress holds an order's delivery address
type ShippingAddress struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postalCode"`
}

// Order represents a buyer's purchase of a product
type Order struct {
	ID              uuid.UUID        `json:"id"`
	BuyerID         uuid.UUID        `json:"buyerId"`
	ProductID       uuid.UUID        `json:"productId"`
	Quantity        int              `json:"quantity"`
	TotalAmount     float64          `json:"totalAmount"`
	Status          OrderStatus      `json:"status"`
	ShippingAddress *ShippingAddress `json:"shippingAddress,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`

	// Populated on joined reads
	BuyerName   string `json:"buyerName,omitempty"`
	ProductName string `json:"productName,omitempty"`
}

// CreateProductInput represents input for creating a listing
type CreateProductInput struct {
	FarmID      uuid.UUID       `json:"farmId" binding:"required"`
	Name        string          `json:"name" binding:"required"`
	Category    ProductCategory `json:"category" binding:"required"`
	Description string          `json:"description"`
	Price       float64         `json:"price" binding:"required,gt=0"`
	Quantity    int             `json:"quantity" binding:"required,gte=0"`
	Unit        string          `json:"unit" binding:"required"`
	Images      []string        `json:"images"`
}

// CreateOrderInput represents input for placing an order
type CreateOrderInput struct {
	ProductID       uuid.UUID        `json:"productId" binding:"required"`
	Quantity        int              `json:"quantity" binding:"required,gt=0"`
	ShippingAddress *ShippingAddress `json:"shippingAddress"`
}

// ProductCounts groups listings by availability
type ProductCounts struct {
	Available int64 `json:"available"`
	SoldOut   int64 `json:"soldOut"`
	Hidden    int64 `json:"hidden"`
}

// OrderCounts groups orders by fulfilment state
type OrderCounts struct {
	PendingOrders   int64    `json:"pendingOrders"`
	ConfirmedOrders int64    `json:"confirmedOrders"`
	ShippedOrders   int64    `json:"shippedOrders"`
	RecentOrders    []*Order `json:"recentOrders"`
}

// MarketOverview is the admin market dashboard payload
type MarketOverview struct {
	Products ProductCounts `json:"products"`
	Orders   OrderCounts   `json:"orders"`
}
