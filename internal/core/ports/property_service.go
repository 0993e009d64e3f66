package ports

import (
	"context"

	"github.com/propchase/rental-api/internal/core/domain"
)

// PropertyDetail is the public view of a single property, expanded with
// the owner's public display fields.
type PropertyDetail struct {
	Property *domain.Property
	Owner    domain.PublicProfile
}

// PropertyService defines property use cases. Ownership is enforced here:
// only the owner may mutate a listing, while reads are public.
type PropertyService interface {
	Create(ctx context.Context, ownerID string, fields PropertyFields) (*domain.Property, error)
	Get(ctx context.Context, id string) (*PropertyDetail, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Property, error)
	ListAll(ctx context.Context) ([]*domain.Property, error)
	// Update applies fields to the property iff subjectID owns it.
	// A missing property yields domain.ErrPropertyNotFound before any
	// ownership decision; a non-owner gets domain.ErrForbidden.
	Update(ctx context.Context, subjectID, id string, fields PropertyFields) (*domain.Property, error)
}
