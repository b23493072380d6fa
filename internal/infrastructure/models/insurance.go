package models

import (
	"time"

	"github.com/google/uuid"
)

// FundContribution rows are append-only; there is no update path.
type FundContribution struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ContributorID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	ContributorType     string     `gorm:"type:varchar(50);not null"`
	Amount              float64    `gorm:"not null"`
	ContributionType    string     `gorm:"type:varchar(50);not null"`
	RelatedInvestmentID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt           time.Time
}

type InsuranceClaim struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	FarmID          uuid.UUID `gorm:"type:uuid;not null;index"`
	ClaimType       string    `gorm:"type:varchar(50);not null"`
	Description     string    `gorm:"type:text;not null"`
	Evidence        string    `gorm:"type:text"` // JSON
	RequestedAmount float64   `gorm:"not null"`
	Status          string    `gorm:"type:varchar(50);not null;default:'pending';index"`
	ApprovedAmount  *float64
	ReviewedBy      *uuid.UUID `gorm:"type:uuid"`
	ReviewDate      *time.Time `gorm:"type:timestamp"`
	CreatedAt       time.Time  `gorm:"index"`
	UpdatedAt       time.Time
}
