package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// InvestmentType represents the two investment products
type InvestmentType string

const (
	InvestmentBaidCash InvestmentType = "BaidCash" // egg-laying hen leasing
	InvestmentKtiCash  InvestmentType = "KtiCash"  // chick rearing
)

// AgePackage represents the chick age tiers for KtiCash
type AgePackage string

const (
	AgePackage0Day  AgePackage = "0-day"
	AgePackage7Day  AgePackage = "7-day"
	AgePackage21Day AgePackage = "21-day"
)

// ValidAgePackage reports whether the value is a known age tier
func ValidAgePackage(p AgePackage) bool {
	switch p {
	case AgePackage0Day, AgePackage7Day, AgePackage21Day:
		return true
	}
	return false
}

// InvestmentStatus represents the investment lifecycle state
type InvestmentStatus string

const (
	InvestmentPendingPayment InvestmentStatus = "pending_payment"
	InvestmentActive         InvestmentStatus = "active"
	InvestmentCompleted      InvestmentStatus = "completed"
)

// ValidInvestmentStatus reports whether the value is a known status
func ValidInvestmentStatus(s InvestmentStatus) bool {
	switch s {
	case InvestmentPendingPayment, InvestmentActive, InvestmentCompleted:
		return true
	}
	return false
}

// InvestmentPackage is the type-dependent package sub-document:
// BaidCash carries a lease duration, KtiCash a chick age tier.
type InvestmentPackage struct {
	DurationDays *int        `json:"duration,omitempty"`
	AgePackage   *AgePackage `json:"agePackage,omitempty"`
}

// Investment represents an investor's stake in a package
type Investment struct {
	ID               uuid.UUID         `json:"id"`
	InvestorID       uuid.UUID         `json:"investorId"`
	Type             InvestmentType    `json:"type"`
	Package          InvestmentPackage `json:"package"`
	Quantity         int               `json:"quantity"`
	UnitPrice        float64           `json:"unitPrice"`
	TotalAmount      float64           `json:"totalAmount"`
	ProfitPercentage float64           `json:"profitPercentage"`
	InsuranceFee     float64           `json:"insuranceFee"`
	CurrentProfit    float64           `json:"currentProfit"`
	Status           InvestmentStatus  `json:"status"`
	StartDate        null.Time         `json:"startDate,omitempty"`
	EndDate          null.Time         `json:"endDate,omitempty"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

// CreateInvestmentInput represents input for creating an investment
type CreateInvestmentInput struct {
	Type             InvestmentType `json:"type" binding:"required"`
	DurationDays     *int           `json:"duration"`
	AgePackage       *AgePackage    `json:"agePackage"`
	Quantity         int            `json:"quantity" binding:"required,gt=0"`
	UnitPrice        float64        `json:"unitPrice" binding:"required,gt=0"`
	TotalAmount      float64        `json:"totalAmount" binding:"required,gt=0"`
	ProfitPercentage float64        `json:"profitPercentage" binding:"required,gt=0"`
	InsuranceFee     float64        `json:"insuranceFee" binding:"required,gte=0"`
}
