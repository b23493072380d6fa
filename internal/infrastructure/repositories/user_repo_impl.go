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

// UserRepository implements user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	if user.ID == uuid.Nil {
		user.ID = utils.GenerateUUIDv7()
	}

	prefs, err := json.Marshal(user.CommunicationPreferences)
	if err != nil {
		return err
	}

	m := &models.User{
		ID:                       user.ID,
		FullName:                 user.FullName,
		Email:                    user.Email,
		PhoneNumber:              user.PhoneNumber,
		Role:                     string(user.Role),
		PasswordHash:             user.PasswordHash,
		Country:                  user.Country,
		CommunicationPreferences: string(prefs),
		IsActive:                 user.IsActive,
		CreatedAt:                user.CreatedAt,
		UpdatedAt:                user.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	user.CreatedAt = m.CreatedAt
	user.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userToEntity(&m), nil
}

// GetByEmail gets a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userToEntity(&m), nil
}

// GetByVerificationToken gets the user holding an unexpired verification token
func (r *UserRepository) GetByVerificationToken(ctx context.Context, token string) (*entities.User, error) {
	var m models.User
	err := r.db.WithContext(ctx).
		Where("email_verification_token = ? AND email_verification_expires > ?", token, time.Now()).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userToEntity(&m), nil
}

// Update persists mutable account fields
func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	updates := map[string]interface{}{
		"full_name":    user.FullName,
		"phone_number": user.PhoneNumber,
		"role":         string(user.Role),
		"is_active":    user.IsActive,
		"updated_at":   time.Now(),
	}

	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", user.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SetVerificationToken stores a fresh email verification token
func (r *UserRepository) SetVerificationToken(ctx context.Context, id uuid.UUID, token string, expires time.Time) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"email_verification_token":   token,
			"email_verification_expires": expires,
			"updated_at":                 time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// MarkEmailVerified activates the account and clears the token fields
func (r *UserRepository) MarkEmailVerified(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_active":                  true,
			"email_verification_token":   nil,
			"email_verification_expires": nil,
			"updated_at":                 time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists users with optional search filter
func (r *UserRepository) List(ctx context.Context, search string) ([]*entities.User, error) {
	var userModels []models.User
	query := r.db.WithContext(ctx).Order("created_at DESC")

	if search != "" {
		searchTerm := "%" + search + "%"
		query = query.Where("full_name LIKE ? OR email LIKE ?", searchTerm, searchTerm)
	}

	if err := query.Find(&userModels).Error; err != nil {
		return nil, err
	}

	users := make([]*entities.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, userToEntity(&userModels[i]))
	}
	return users, nil
}

// SoftDelete soft deletes a user
func (r *UserRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// CountByRole counts users by role, optionally only active accounts
func (r *UserRepository) CountByRole(ctx context.Context, role entities.UserRole, activeOnly bool) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.User{}).Where("role = ?", string(role))
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func userToEntity(m *models.User) *entities.User {
	var prefs entities.CommunicationPreferences
	if m.CommunicationPreferences != "" {
		_ = json.Unmarshal([]byte(m.CommunicationPreferences), &prefs)
	}

	return &entities.User{
		ID:                       m.ID,
		FullName:                 m.FullName,
		Email:                    m.Email,
		PhoneNumber:              m.PhoneNumber,
		Role:                     entities.UserRole(m.Role),
		PasswordHash:             m.PasswordHash,
		Country:                  m.Country,
		CommunicationPreferences: prefs,
		IsActive:                 m.IsActive,
		EmailVerificationToken:   null.StringFromPtr(m.EmailVerificationToken),
		EmailVerificationExpires: null.TimeFromPtr(m.EmailVerificationExpires),
		CreatedAt:                m.CreatedAt,
		UpdatedAt:                m.UpdatedAt,
	}
}
