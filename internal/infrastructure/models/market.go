package models

import (
	"time"

	"github.com/google/uuid"
)

type MarketProduct struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	SellerID    uuid.UUID `gorm:"type:uuid;not null;index"`
	FarmID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Category    string    `gorm:"type:varchar(50);not null"`
	Description string    `gorm:"type:text"`
	Price       float64   `gorm:"not null"`
	Quantity    int       `gorm:"not null"`
	Unit        string    `gorm:"type:varchar(50);not null"`
	Images      string    `gorm:"type:text"` // JSON
	Status      string    `gorm:"type:varchar(50);not null;default:'available';index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Order struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	BuyerID         uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity        int       `gorm:"not null"`
	TotalAmount     float64   `gorm:"not null"`
	Status          string    `gorm:"type:varchar(50);not null;default:'pending';index"`
	ShippingAddress *string   `gorm:"type:text"` // JSON
	CreatedAt       time.Time `gorm:"index"`
	UpdatedAt       time.Time
}
