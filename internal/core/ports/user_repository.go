package ports

import (
	"context"

	"github.com/propchase/rental-api/internal/core/domain"
)

// UserPatch carries partial user mutations. Nil pointers mean "leave as is".
// PasswordHash must already be hashed by the caller; the repository never
// sees plaintext.
type UserPatch struct {
	DisplayName  *string
	Bio          *string
	AvatarRef    *string
	PasswordHash *string
}

// UserRepository defines persistence for identity records. Email arguments
// are expected in normalized form (trimmed, lower-cased).
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id string, patch UserPatch) (*domain.User, error)
}
