package models

import (
	"time"

	"github.com/google/uuid"
)

type Investment struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	InvestorID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Type             string    `gorm:"type:varchar(50);not null"`
	DurationDays     *int
	AgePackage       *string `gorm:"type:varchar(20)"`
	Quantity         int     `gorm:"not null"`
	UnitPrice        float64 `gorm:"not null"`
	TotalAmount      float64 `gorm:"not null"`
	ProfitPercentage float64 `gorm:"not null"`
	InsuranceFee     float64 `gorm:"not null"`
	CurrentProfit    float64 `gorm:"not null;default:0"`
	Status           string  `gorm:"type:varchar(50);not null;default:'pending_payment';index"`
	StartDate        *time.Time `gorm:"type:timestamp"`
	EndDate          *time.Time `gorm:"type:timestamp"`
	CreatedAt        time.Time  `gorm:"index"`
	UpdatedAt        time.Time
}
