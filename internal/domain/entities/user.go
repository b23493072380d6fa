package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// UserRole represents user roles
type UserRole string

const (
	UserRoleVisitor     UserRole = "visitor"
	UserRoleInvestor    UserRole = "investor"
	UserRoleFarmer      UserRole = "farmer"
	UserRoleMarketBuyer UserRole = "market_buyer"
	UserRoleAdmin       UserRole = "admin"
)

// ValidUserRole reports whether a role is one of the known roles
func ValidUserRole(r UserRole) bool {
	switch r {
	case UserRoleVisitor, UserRoleInvestor, UserRoleFarmer, UserRoleMarketBuyer, UserRoleAdmin:
		return true
	}
	return false
}

// CommunicationPreferences holds a user's contact channel opt-ins
type CommunicationPreferences struct {
	Whatsapp bool `json:"whatsapp"`
	Email    bool `json:"email"`
	Phone    bool `json:"phone"`
}

// User represents a user account
type User struct {
	ID                       uuid.UUID                `json:"id"`
	FullName                 string                   `json:"fullName"`
	Email                    string                   `json:"email"`
	PhoneNumber              string                   `json:"phoneNumber"`
	Role                     UserRole                 `json:"role"`
	PasswordHash             string                   `json:"-"`
	Country                  string                   `json:"country,omitempty"`
	CommunicationPreferences CommunicationPreferences `json:"communicationPreferences"`
	IsActive                 bool                     `json:"isActive"`
	EmailVerificationToken   null.String              `json:"-"`
	EmailVerificationExpires null.Time                `json:"-"`
	CreatedAt                time.Time                `json:"createdAt"`
	UpdatedAt                time.Time                `json:"updatedAt"`
}

// RegisterInput represents input for user registration
type RegisterInput struct {
	FullName                 string                   `json:"fullName" binding:"required,min=2,max=100"`
	Email                    string                   `json:"email" binding:"required,email"`
	Password                 string                   `json:"password" binding:"required,min=8"`
	PhoneNumber              string                   `json:"phoneNumber" binding:"required"`
	Role                     UserRole                 `json:"role"`
	Country                  string                   `json:"country"`
	CommunicationPreferences CommunicationPreferences `json:"communicationPreferences"`
}

// LoginInput represents input for user login
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	Token string `json:"token,omitempty"`
	User  *User  `json:"user"`
}

// UpdateUserInput represents the admin user mutation payload.
// Pointer fields distinguish "absent" from zero values.
type UpdateUserInput struct {
	Role     *UserRole `json:"role"`
	IsActive *bool     `json:"isActive"`
}
