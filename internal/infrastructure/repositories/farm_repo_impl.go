package repositories

import (
	"context"
	"encoding/json"
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

// FarmRepository implements farm data operations
type FarmRepository struct {
	db *gorm.DB
}

// NewFarmRepository creates a new farm repository
func NewFarmRepository(db *gorm.DB) *FarmRepository {
	return &FarmRepository{db: db}
}

type farmRow struct {
	models.Farm
	FarmerName string
}

// Create creates a new farm
func (r *FarmRepository) Create(ctx context.Context, farm *entities.Farm) error {
	if farm.ID == uuid.Nil {
		farm.ID = utils.GenerateUUIDv7()
	}

	location, err := json.Marshal(farm.Location)
	if err != nil {
		return err
	}
	flock, err := json.Marshal(farm.Flock)
	if err != nil {
		return err
	}
	documents, err := json.Marshal(farm.Documents)
	if err != nil {
		return err
	}

	m := &models.Farm{
		ID:                 farm.ID,
		FarmerID:           farm.FarmerID,
		Name:               farm.Name,
		Description:        farm.Description,
		Location:           string(location),
		FlockInformation:   string(flock),
		Documents:          string(documents),
		VerificationStatus: string(farm.VerificationStatus),
		CreatedAt:          farm.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	farm.CreatedAt = m.CreatedAt
	return nil
}

// GetByID gets a farm by ID
func (r *FarmRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Farm, error) {
	var row farmRow
	err := r.db.WithContext(ctx).
		Table("farms").
		Select("farms.*, users.full_name AS farmer_name").
		Joins("LEFT JOIN users ON users.id = farms.farmer_id").
		Where("farms.id = ?", id).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return farmToEntity(&row), nil
}

// List lists all farms newest first
func (r *FarmRepository) List(ctx context.Context) ([]*entities.Farm, error) {
	var rows []farmRow
	err := r.db.WithContext(ctx).
		Table("farms").
		Select("farms.*, users.full_name AS farmer_name").
		Joins("LEFT JOIN users ON users.id = farms.farmer_id").
		Order("farms.created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	farms := make([]*entities.Farm, 0, len(rows))
	for i := range rows {
		farms = append(farms, farmToEntity(&rows[i]))
	}
	return farms, nil
}

// ListByFarmer lists farms owned by a farmer
func (r *FarmRepository) ListByFarmer(ctx context.Context, farmerID uuid.UUID) ([]*entities.Farm, error) {
	var rows []farmRow
	err := r.db.WithContext(ctx).
		Table("farms").
		Select("farms.*, users.full_name AS farmer_name").
		Joins("LEFT JOIN users ON users.id = farms.farmer_id").
		Where("farms.farmer_id = ?", farmerID).
		Order("farms.created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	farms := make([]*entities.Farm, 0, len(rows))
	for i := range rows {
		farms = append(farms, farmToEntity(&rows[i]))
	}
	return farms, nil
}

// UpdateVerification records an admin review decision
func (r *FarmRepository) UpdateVerification(ctx context.Context, id uuid.UUID, status entities.FarmVerificationStatus, verifiedBy uuid.UUID, notes string) error {
	updates := map[string]interface{}{
		"verification_status": string(status),
		"verified_by":         verifiedBy,
		"verification_date":   time.Now(),
		"updated_at":          time.Now(),
	}
	if notes != "" {
		updates["verification_notes"] = notes
	}

	result := r.db.WithContext(ctx).Model(&models.Farm{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func farmToEntity(row *farmRow) *entities.Farm {
	var location entities.FarmLocation
	if row.Location != "" {
		_ = json.Unmarshal([]byte(row.Location), &location)
	}
	var flock entities.FlockInformation
	if row.FlockInformation != "" {
		_ = json.Unmarshal([]byte(row.FlockInformation), &flock)
	}
	var documents entities.FarmDocuments
	if row.Documents != "" {
		_ = json.Unmarshal([]byte(row.Documents), &documents)
	}

	return &entities.Farm{
		ID:                 row.ID,
		FarmerID:           row.FarmerID,
		Name:               row.Name,
		Description:        row.Description,
		Location:           location,
		Flock:              flock,
		Documents:          documents,
		VerificationStatus: entities.FarmVerificationStatus(row.VerificationStatus),
		VerifiedBy:         row.VerifiedBy,
		VerificationDate:   null.TimeFromPtr(row.VerificationDate),
		VerificationNotes:  null.StringFromPtr(row.VerificationNotes),
		CreatedAt:          row.CreatedAt,
		FarmerName:         row.FarmerName,
	}
}
