package usecases

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"halachick.backend/internal/domain/entities"
	domainerrors "halachick.backend/internal/domain/errors"
	"halachick.backend/internal/domain/repositories"
	"halachick.backend/pkg/crypto"
	"halachick.backend/pkg/jwt"
	"halachick.backend/pkg/logger"
)

const verificationTokenTTL = time.Hour

// Mailer sends transactional email
type Mailer interface {
	SendVerificationEmail(to, name, token string) error
	SendNotificationEmail(to, name, subject, body string) error
}

// TokenRevoker invalidates issued tokens until they expire
type TokenRevoker interface {
	Revoke(ctx context.Context, token string, remaining time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// AuthUsecase handles authentication business logic
type AuthUsecase struct {
	userRepo   repositories.UserRepository
	jwtService *jwt.JWTService
	revoker    TokenRevoker
	mailer     Mailer
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	jwtService *jwt.JWTService,
	revoker TokenRevoker,
	mailer Mailer,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:   userRepo,
		jwtService: jwtService,
		revoker:    revoker,
		mailer:     mailer,
	}
}

// Register registers a new user and logs them in
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.AuthResponse, error) {
	// Check if email already exists
	_, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.Conflict("email already registered")
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	// Self-registration can never grant admin
	role := input.Role
	if role == entities.UserRoleAdmin || !entities.ValidUserRole(role) {
		role = entities.UserRoleVisitor
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		FullName:                 input.FullName,
		Email:                    input.Email,
		PhoneNumber:              input.PhoneNumber,
		Role:                     role,
		PasswordHash:             passwordHash,
		Country:                  input.Country,
		CommunicationPreferences: input.CommunicationPreferences,
		// inactive until the email verification link is followed
		IsActive: false,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := u.sendVerification(ctx, user); err != nil {
		// account creation succeeded, verification can be retried
		logger.Warn(ctx, "failed to send verification email",
			zap.String("user_id", user.ID.String()),
			zap.Error(err))
	}

	token, err := u.jwtService.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{Token: token, User: user}, nil
}

// Login authenticates a user and returns a token
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NewAppError(http.StatusUnauthorized, domainerrors.CodeInvalidCredentials, "invalid email or password", domainerrors.ErrInvalidCredentials)
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.NewAppError(http.StatusUnauthorized, domainerrors.CodeInvalidCredentials, "invalid email or password", domainerrors.ErrInvalidCredentials)
	}

	// an unverified account can still sign in and request a new
	// verification mail
	token, err := u.jwtService.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{Token: token, User: user}, nil
}

// Logout revokes the presented token for the rest of its lifetime
func (u *AuthUsecase) Logout(ctx context.Context, token string) error {
	claims, err := u.jwtService.ValidateToken(token)
	if err != nil {
		// an invalid or expired token needs no revocation
		return nil
	}

	remaining := time.Until(claims.ExpiresAt.Time)
	return u.revoker.Revoke(ctx, token, remaining)
}

// Me returns the authenticated user's profile
func (u *AuthUsecase) Me(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, userID)
}

// SendVerificationEmail issues a fresh verification token and mails it
func (u *AuthUsecase) SendVerificationEmail(ctx context.Context, userID uuid.UUID) error {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	return u.sendVerification(ctx, user)
}

// VerifyEmail confirms ownership of the address behind a token
func (u *AuthUsecase) VerifyEmail(ctx context.Context, token string) (*entities.User, error) {
	user, err := u.userRepo.GetByVerificationToken(ctx, token)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.BadRequest("invalid or expired verification token")
		}
		return nil, err
	}

	if err := u.userRepo.MarkEmailVerified(ctx, user.ID); err != nil {
		return nil, err
	}
	user.IsActive = true
	return user, nil
}

func (u *AuthUsecase) sendVerification(ctx context.Context, user *entities.User) error {
	token, err := crypto.GenerateVerificationToken()
	if err != nil {
		return err
	}

	if err := u.userRepo.SetVerificationToken(ctx, user.ID, token, time.Now().Add(verificationTokenTTL)); err != nil {
		return err
	}

	return u.mailer.SendVerificationEmail(user.Email, user.FullName, token)
}
