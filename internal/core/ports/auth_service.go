package ports

import (
	"context"

	"github.com/propchase/rental-api/internal/core/domain"
)

// SignUpInput carries registration data as received, pre-normalization.
type SignUpInput struct {
	Email           string
	DisplayName     string
	Password        string
	ConfirmPassword string
}

// EditProfileInput carries a self-service profile edit. Nil pointers leave
// the field untouched. A password change requires both OldPassword and
// NewPassword.
type EditProfileInput struct {
	DisplayName *string
	Bio         *string
	AvatarRef   *string
	OldPassword string
	NewPassword string
}

// LoginResult is returned on successful authentication.
type LoginResult struct {
	User  *domain.User
	Token string
}

// AuthService defines identity use cases: registration, login, password
// recovery and profile self-service.
type AuthService interface {
	SignUp(ctx context.Context, input SignUpInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	// ResetPassword replaces the user's password with a generated one and
	// returns the plaintext for out-of-band delivery.
	ResetPassword(ctx context.Context, email string) (string, error)
	GetProfile(ctx context.Context, subjectID string) (*domain.User, error)
	EditProfile(ctx context.Context, subjectID string, input EditProfileInput) (*domain.User, error)
}
