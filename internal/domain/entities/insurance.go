package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ContributorType represents who paid into the insurance fund
type ContributorType string

const (
	ContributorInvestor ContributorType = "investor"
	ContributorFarmer   ContributorType = "farmer"
	ContributorPlatform ContributorType = "platform"
)

// ContributionType represents what triggered a fund inflow
type ContributionType string

const (
	ContributionInitial         ContributionType = "initial"
	ContributionInvestmentBased ContributionType = "investment_based"
	ContributionProfitBased     ContributionType = "profit_based"
	ContributionPlatformMonthly ContributionType = "platform_monthly"
)

// FundContribution is an immutable insurance fund ledger entry.
// The fund balance is the sum over all entries; no running balance
// is stored.
type FundContribution struct {
	ID                  uuid.UUID        `json:"id"`
	ContributorID       uuid.UUID        `json:"contributorId"`
	ContributorType     ContributorType  `json:"contributorType"`
	Amount              float64          `json:"amount"`
	ContributionType    ContributionType `json:"contributionType"`
	RelatedInvestmentID *uuid.UUID       `json:"relatedInvestmentId,omitempty"`
	CreatedAt           time.Time        `json:"createdAt"`
}

// ClaimType represents the cause of an insurance claim
type ClaimType string

const (
	ClaimDisease         ClaimType = "disease"
	ClaimNaturalDisaster ClaimType = "natural_disaster"
	ClaimOther           ClaimType = "other"
)

// ClaimStatus represents the review state of a claim
type ClaimStatus string

const (
	ClaimPending  ClaimStatus = "pending"
	ClaimApproved ClaimStatus = "approved"
	ClaimRejected ClaimStatus = "rejected"
)

// ClaimEvidence holds uploaded proof for a claim
type ClaimEvidence struct {
	Photos                []string `json:"photos"`
	Videos                []string `json:"videos"`
	VeterinaryCertificate string   `json:"veterinaryCertificate,omitempty"`
}

// InsuranceClaim represents a farmer's compensation request.
// Once status leaves pending the claim is terminal.
type InsuranceClaim struct {
	ID              uuid.UUID     `json:"id"`
	FarmID          uuid.UUID     `json:"farmId"`
	ClaimType       ClaimType     `json:"claimType"`
	Description     string        `json:"description"`
	Evidence        ClaimEvidence `json:"evidence"`
	RequestedAmount float64       `json:"requestedAmount"`
	Status          ClaimStatus   `json:"status"`
	ApprovedAmount  null.Float64  `json:"approvedAmount,omitempty"`
	ReviewedBy      *uuid.UUID    `json:"reviewedBy,omitempty"`
	ReviewDate      null.Time     `json:"reviewDate,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`

	// Populated on joined reads (farm -> farmer)
	FarmName   string `json:"farmName,omitempty"`
	FarmerName string `json:"farmerName,omitempty"`
	FarmerRole string `json:"farmerRole,omitempty"`
}

// FileClaimInput represents input for filing a claim
type FileClaimInput struct {
	FarmID          uuid.UUID     `json:"farmId" binding:"required"`
	ClaimType       ClaimType     `json:"claimType" binding:"required"`
	Description     string        `json:"description" binding:"required"`
	Evidence        ClaimEvidence `json:"evidence"`
	RequestedAmount float64       `json:"requestedAmount" binding:"required,gt=0"`
}

// ReviewClaimInput represents the admin claim review payload
type ReviewClaimInput struct {
	ClaimID        uuid.UUID   `json:"claimId" binding:"required"`
	Status         ClaimStatus `json:"status" binding:"required"`
	ApprovedAmount *float64    `json:"approvedAmount"`
}

// ClaimAlert is the dashboard alert view of a claim
type ClaimAlert struct {
	Type     ClaimType   `json:"type"`
	UserName string      `json:"userName"`
	UserRole string      `json:"userRole"`
	Date     time.Time   `json:"date"`
	Status   ClaimStatus `json:"status"`
}
