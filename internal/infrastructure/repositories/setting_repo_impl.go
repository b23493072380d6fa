package repositories

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"halachick.backend/internal/infrastructure/models"
)

// SettingRepository implements admin configuration storage
type SettingRepository struct {
	db *gorm.DB
}

// NewSettingRepository creates a new setting repository
func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// GetAll returns all settings as a key to value map
func (r *SettingRepository) GetAll(ctx context.Context) (map[string]interface{}, error) {
	var settingModels []models.Setting
	if err := r.db.WithContext(ctx).Find(&settingModels).Error; err != nil {
		return nil, err
	}

	settings := make(map[string]interface{}, len(settingModels))
	for _, m := range settingModels {
		var value interface{}
		if m.Value != "" {
			if err := json.Unmarshal([]byte(m.Value), &value); err != nil {
				return nil, err
			}
		}
		settings[m.Key] = value
	}
	return settings, nil
}

// Save upserts a setting, last write wins
func (r *SettingRepository) Save(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	m := &models.Setting{
		Key:       key,
		Value:     string(raw),
		UpdatedAt: time.Now(),
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(m).Error
}
