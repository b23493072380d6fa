package models

import (
	"time"

	"github.com/google/uuid"
)

type Farm struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	FarmerID           uuid.UUID `gorm:"type:uuid;not null;index"`
	Name               string    `gorm:"type:varchar(255);not null"`
	Description        string    `gorm:"type:text"`
	Location           string    `gorm:"type:text"` // JSON
	FlockInformation   string    `gorm:"type:text"` // JSON
	Documents          string    `gorm:"type:text"` // JSON
	VerificationStatus string    `gorm:"type:varchar(50);not null;default:'pending'"`
	VerifiedBy         *uuid.UUID `gorm:"type:uuid"`
	VerificationDate   *time.Time `gorm:"type:timestamp"`
	VerificationNotes  *string    `gorm:"type:text"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
