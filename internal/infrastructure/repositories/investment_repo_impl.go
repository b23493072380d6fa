package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"halachick.backend/internal/domain/entities"
	domainerrors "halachick.backend/internal/domain/errors"
	"halachick.backend/internal/infrastructure/models"
	"halachick.backend/pkg/utils"
)

// InvestmentRepository implements investment data operations
type InvestmentRepository struct {
	db *gorm.DB
}

// NewInvestmentRepository creates a new investment repository
func NewInvestmentRepository(db *gorm.DB) *InvestmentRepository {
	return &InvestmentRepository{db: db}
}

// Create creates a new investment
func (r *InvestmentRepository) Create(ctx context.Context, investment *entities.Investment) error {
	if investment.ID == uuid.Nil {
		investment.ID = utils.GenerateUUIDv7()
	}

	m := &models.Investment{
		ID:               investment.ID,
		InvestorID:       investment.InvestorID,
		Type:             string(investment.Type),
		DurationDays:     investment.Package.DurationDays,
		Quantity:         investment.Quantity,
		UnitPrice:        investment.UnitPrice,
		TotalAmount:      investment.TotalAmount,
		ProfitPercentage: investment.ProfitPercentage,
		InsuranceFee:     investment.InsuranceFee,
		CurrentProfit:    investment.CurrentProfit,
		Status:           string(investment.Status),
		StartDate:        investment.StartDate.Ptr(),
		EndDate:          investment.EndDate.Ptr(),
		CreatedAt:        investment.CreatedAt,
	}
	if investment.Package.AgePackage != nil {
		age := string(*investment.Package.AgePackage)
		m.AgePackage = &age
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	investment.CreatedAt = m.CreatedAt
	return nil
}

// GetByID gets an investment by ID
func (r *InvestmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Investment, error) {
	var m models.Investment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return investmentToEntity(&m), nil
}

// ListByInvestor lists an investor's investments newest first
func (r *InvestmentRepository) ListByInvestor(ctx context.Context, investorID uuid.UUID) ([]*entities.Investment, error) {
	var investmentModels []models.Investment
	err := r.db.WithContext(ctx).
		Where("investor_id = ?", investorID).
		Order("created_at DESC").
		Find(&investmentModels).Error
	if err != nil {
		return nil, err
	}
	return investmentsToEntities(investmentModels), nil
}

// List lists all investments newest first
func (r *InvestmentRepository) List(ctx context.Context) ([]*entities.Investment, error) {
	var investmentModels []models.Investment
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&investmentModels).Error
	if err != nil {
		return nil, err
	}
	return investmentsToEntities(investmentModels), nil
}

// UpdateStatus updates an investment's lifecycle status
func (r *InvestmentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.InvestmentStatus) error {
	result := r.db.WithContext(ctx).Model(&models.Investment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// CountByStatus counts investments in a lifecycle status
func (r *InvestmentRepository) CountByStatus(ctx context.Context, status entities.InvestmentStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Investment{}).
		Where("status = ?", string(status)).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// CountAndProfitBetween aggregates investments created in [start, end)
func (r *InvestmentRepository) CountAndProfitBetween(ctx context.Context, start, end time.Time) (int64, float64, error) {
	var row struct {
		Count  int64
		Profit float64
	}
	err := r.db.WithContext(ctx).Model(&models.Investment{}).
		Select("COUNT(*) AS count, COALESCE(SUM(current_profit), 0) AS profit").
		Where("created_at >= ? AND created_at < ?", start, end).
		Scan(&row).Error
	if err != nil {
		return 0, 0, err
	}
	return row.Count, row.Profit, nil
}

// CountByType counts investments grouped by product type
func (r *InvestmentRepository) CountByType(ctx context.Context) (map[entities.InvestmentType]int64, error) {
	var rows []struct {
		Type  string
		Count int64
	}
	err := r.db.WithContext(ctx).Model(&models.Investment{}).
		Select("type, COUNT(*) AS count").
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[entities.InvestmentType]int64, len(rows))
	for _, row := range rows {
		counts[entities.InvestmentType(row.Type)] = row.Count
	}
	return counts, nil
}

func investmentsToEntities(investmentModels []models.Investment) []*entities.Investment {
	investments := make([]*entities.Investment, 0, len(investmentModels))
	for i := range investmentModels {
		investments = append(investments, investmentToEntity(&investmentModels[i]))
	}
	return investments
}

func investmentToEntity(m *models.Investment) *entities.Investment {
	pkg := entities.InvestmentPackage{DurationDays: m.DurationDays}
	if m.AgePackage != nil {
		age := entities.AgePackage(*m.AgePackage)
		pkg.AgePackage = &age
	}

	return &entities.Investment{
		ID:               m.ID,
		InvestorID:       m.InvestorID,
		Type:             entities.InvestmentType(m.Type),
		Package:          pkg,
		Quantity:         m.Quantity,
		UnitPrice:        m.UnitPrice,
		TotalAmount:      m.TotalAmount,
		ProfitPercentage: m.ProfitPercentage,
		InsuranceFee:     m.InsuranceFee,
		CurrentProfit:    m.CurrentProfit,
		Status:           entities.InvestmentStatus(m.Status),
		StartDate:        null.TimeFromPtr(m.StartDate),
		EndDate:          null.TimeFromPtr(m.EndDate),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}
