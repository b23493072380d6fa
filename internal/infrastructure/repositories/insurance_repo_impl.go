package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"halachick.backend/internal/domain/entities"
	domainerrors "halachick.backend/internal/domain/errors"
	"halachick.backend/internal/infrastructure/models"
	"halachick.backend/pkg/utils"
)

// InsuranceFundRepository implements the append-only contribution ledger
type InsuranceFundRepository struct {
	db *gorm.DB
}

// NewInsuranceFundRepository creates a new insurance fund repository
func NewInsuranceFundRepository(db *gorm.DB) *InsuranceFundRepository {
	return &InsuranceFundRepository{db: db}
}

// AddContribution appends a ledger entry
func (r *InsuranceFundRepository) AddContribution(ctx context.Context, contribution *entities.FundContribution) error {
	if contribution.ID == uuid.Nil {
		contribution.ID = utils.GenerateUUIDv7()
	}

	m := &models.FundContribution{
		ID:                  contribution.ID,
		ContributorID:       contribution.ContributorID,
		ContributorType:     string(contribution.ContributorType),
		Amount:              contribution.Amount,
		ContributionType:    string(contribution.ContributionType),
		RelatedInvestmentID: contribution.RelatedInvestmentID,
		CreatedAt:           contribution.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	contribution.CreatedAt = m.CreatedAt
	return nil
}

// TotalAmount recomputes the fund balance as SUM(amount)
func (r *InsuranceFundRepository) TotalAmount(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&models.FundContribution{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

// ListRecent lists the newest ledger entries
func (r *InsuranceFundRepository) ListRecent(ctx context.Context, limit int) ([]*entities.FundContribution, error) {
	var contributionModels []models.FundContribution
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&contributionModels).Error
	if err != nil {
		return nil, err
	}

	contributions := make([]*entities.FundContribution, 0, len(contributionModels))
	for i := range contributionModels {
		m := &contributionModels[i]
		contributions = append(contributions, &entities.FundContribution{
			ID:                  m.ID,
			ContributorID:       m.ContributorID,
			ContributorType:     entities.ContributorType(m.ContributorType),
			Amount:              m.Amount,
			ContributionType:    entities.ContributionType(m.ContributionType),
			RelatedInvestmentID: m.RelatedInvestmentID,
			CreatedAt:           m.CreatedAt,
		})
	}
	return contributions, nil
}

// InsuranceClaimRepository implements claim data operations
type InsuranceClaimRepository struct {
	db *gorm.DB
}

// NewInsuranceClaimRepository creates a new insurance claim repository
func NewInsuranceClaimRepository(db *gorm.DB) *InsuranceClaimRepository {
	return &InsuranceClaimRepository{db: db}
}

type claimRow struct {
	models.InsuranceClaim
	FarmName   string
	FarmerName string
	FarmerRole string
}

// Create creates a new claim
func (r *InsuranceClaimRepository) Create(ctx context.Context, claim *entities.InsuranceClaim) error {
	if claim.ID == uuid.Nil {
		claim.ID = utils.GenerateUUIDv7()
	}

	evidence, err := json.Marshal(claim.Evidence)
	if err != nil {
		return err
	}

	m := &models.InsuranceClaim{
		ID:              claim.ID,
		FarmID:          claim.FarmID,
		ClaimType:       string(claim.ClaimType),
		Description:     claim.Description,
		Evidence:        string(evidence),
		RequestedAmount: claim.RequestedAmount,
		Status:          string(claim.Status),
		CreatedAt:       claim.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	claim.CreatedAt = m.CreatedAt
	return nil
}

// GetByID gets a claim by ID
func (r *InsuranceClaimRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.InsuranceClaim, error) {
	var row claimRow
	err := r.claimQuery(ctx).Where("insurance_claims.id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return claimToEntity(&row), nil
}

// List lists all claims newest first, joined with farm and farmer
func (r *InsuranceClaimRepository) List(ctx context.Context) ([]*entities.InsuranceClaim, error) {
	var rows []claimRow
	err := r.claimQuery(ctx).Order("insurance_claims.created_at DESC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return claimsToEntities(rows), nil
}

// ListLatest lists the newest claims up to a limit
func (r *InsuranceClaimRepository) ListLatest(ctx context.Context, limit int) ([]*entities.InsuranceClaim, error) {
	var rows []claimRow
	err := r.claimQuery(ctx).
		Order("insurance_claims.created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return claimsToEntities(rows), nil
}

// CountByStatus counts claims in a review status
func (r *InsuranceClaimRepository) CountByStatus(ctx context.Context, status entities.ClaimStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.InsuranceClaim{}).
		Where("status = ?", string(status)).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// UpdateReview persists the review fields of a claim
func (r *InsuranceClaimRepository) UpdateReview(ctx context.Context, claim *entities.InsuranceClaim) error {
	updates := map[string]interface{}{
		"status":          string(claim.Status),
		"approved_amount": claim.ApprovedAmount.Ptr(),
		"reviewed_by":     claim.ReviewedBy,
		"review_date":     claim.ReviewDate.Ptr(),
	}

	result := r.db.WithContext(ctx).Model(&models.InsuranceClaim{}).
		Where("id = ?", claim.ID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *InsuranceClaimRepository) claimQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("insurance_claims").
		Select("insurance_claims.*, farms.name AS farm_name, users.full_name AS farmer_name, users.role AS farmer_role").
		Joins("LEFT JOIN farms ON farms.id = insurance_claims.farm_id").
		Joins("LEFT JOIN users ON users.id = farms.farmer_id")
}

func claimsToEntities(rows []claimRow) []*entities.InsuranceClaim {
	claims := make([]*entities.InsuranceClaim, 0, len(rows))
	for i := range rows {
		claims = append(claims, claimToEntity(&rows[i]))
	}
	return claims
}

func claimToEntity(row *claimRow) *entities.InsuranceClaim {
	var evidence entities.ClaimEvidence
	if row.Evidence != "" {
		_ = json.Unmarshal([]byte(row.Evidence), &evidence)
	}

	return &entities.InsuranceClaim{
		ID:              row.ID,
		FarmID:          row.FarmID,
		ClaimType:       entities.ClaimType(row.ClaimType),
		Description:     row.Description,
		Evidence:        evidence,
		RequestedAmount: row.RequestedAmount,
		Status:          entities.ClaimStatus(row.Status),
		ApprovedAmount:  null.Float64FromPtr(row.ApprovedAmount),
		ReviewedBy:      row.ReviewedBy,
		ReviewDate:      null.TimeFromPtr(row.ReviewDate),
		CreatedAt:       row.CreatedAt,
		FarmName:        row.FarmName,
		FarmerName:      row.FarmerName,
		FarmerRole:      row.FarmerRole,
	}
}
