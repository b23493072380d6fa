package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"halachick.backend/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	// GetByVerificationToken returns the user holding an unexpired
	// verification token.
	GetByVerificationToken(ctx context.Context, token string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	SetVerificationToken(ctx context.Context, id uuid.UUID, token string, expires time.Time) error
	// MarkEmailVerified activates the account and clears the token fields.
	MarkEmailVerified(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, search string) ([]*entities.User, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	CountByRole(ctx context.Context, role entities.UserRole, activeOnly bool) (int64, error)
}
