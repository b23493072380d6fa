package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID                       uuid.UUID  `gorm:"type:uuid;primaryKey"`
	FullName                 string     `gorm:"type:varchar(100);not null"`
	Email                    string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	PhoneNumber              string     `gorm:"type:varchar(50);not null"`
	Role                     string     `gorm:"type:varchar(50);not null;default:'visitor'"`
	PasswordHash             string     `gorm:"type:varchar(255);not null"`
	Country                  string     `gorm:"type:varchar(100)"`
	CommunicationPreferences string     `gorm:"type:text"` // JSON
	IsActive                 bool       `gorm:"not null;default:false"`
	EmailVerificationToken   *string    `gorm:"type:varchar(255)"`
	EmailVerificationExpires *time.Time `gorm:"type:timestamp"`
	CreatedAt                time.Time
	UpdatedAt                time.Time
	DeletedAt                gorm.DeletedAt `gorm:"index"`
}
