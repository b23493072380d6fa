package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// PoultryType represents the kinds of poultry a farm keeps
type PoultryType string

const (
	PoultryLayingHens PoultryType = "laying_hens"
	PoultryChicks     PoultryType = "chicks"
)

// VaccinationStatus represents a flock's vaccination state
type VaccinationStatus string

const (
	VaccinationUpToDate VaccinationStatus = "up_to_date"
	VaccinationPending  VaccinationStatus = "pending"
	VaccinationOverdue  VaccinationStatus = "overdue"
)

// FarmVerificationStatus represents admin review state of a farm
type FarmVerificationStatus string

const (
	FarmVerificationPending  FarmVerificationStatus = "pending"
	FarmVerificationVerified FarmVerificationStatus = "verified"
	FarmVerificationRejected FarmVerificationStatus = "rejected"
)

// FarmLocation holds a farm's address and optional coordinates
type FarmLocation struct {
	City      string       `json:"city"`
	Province  string       `json:"province"`
	Village   string       `json:"village"`
	Latitude  null.Float64 `json:"latitude,omitempty"`
	Longitude null.Float64 `json:"longitude,omitempty"`
}

// FlockInformation holds a farm's flock metadata
type FlockInformation struct {
	PoultryTypes         []PoultryType     `json:"poultryTypes"`
	CurrentPoultryCount  int               `json:"currentPoultryCount"`
	AvailableSections    int               `json:"availableSections"`
	VaccinationStatus    VaccinationStatus `json:"vaccinationStatus"`
	AzollaPlantAvailable bool              `json:"azollaPlantAvailable"`
}

// FarmDocuments holds uploaded document references
type FarmDocuments struct {
	PersonalPhotos []string `json:"personalPhotos"`
	IDCardImage    string   `json:"idCardImage,omitempty"`
}

// Farm represents a farm owned by a farmer
type Farm struct {
	ID                 uuid.UUID              `json:"id"`
	FarmerID           uuid.UUID              `json:"farmerId"`
	Name               string                 `json:"name"`
	Description        string                 `json:"description,omitempty"`
	Location           FarmLocation           `json:"location"`
	Flock              FlockInformation       `json:"flockInformation"`
	Documents          FarmDocuments          `json:"documents"`
	VerificationStatus FarmVerificationStatus `json:"verificationStatus"`
	VerifiedBy         *uuid.UUID             `json:"verifiedBy,omitempty"`
	VerificationDate   null.Time              `json:"verificationDate,omitempty"`
	VerificationNotes  null.String            `json:"verificationNotes,omitempty"`
	CreatedAt          time.Time              `json:"createdAt"`

	// Populated on joined reads
	FarmerName string `json:"farmerName,omitempty"`
}

// CreateFarmInput represents input for farm onboarding
type CreateFarmInput struct {
	Name        string           `json:"name" binding:"required"`
	Description string           `json:"description"`
	Location    FarmLocation     `json:"location"`
	Flock       FlockInformation `json:"flockInformation"`
	Documents   FarmDocuments    `json:"documents"`
}

// ReviewFarmInput represents the admin farm verification payload
type ReviewFarmInput struct {
	Status FarmVerificationStatus `json:"status" binding:"required"`
	Notes  string                 `json:"notes"`
}
