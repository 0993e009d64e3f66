package ports

import (
	"context"

	"github.com/propchase/rental-api/internal/core/domain"
)

// PropertyFields carries the mutable fields of a property. Used for both
// creation and owner-initiated updates; OwnerID is deliberately absent.
type PropertyFields struct {
	Title       string
	Address     string
	Description string
	ExtraInfo   string
	Perks       []string
	Photos      []string
	CheckIn     string
	CheckOut    string
	MaxGuests   int
	Price       float64
}

// PropertyRepository defines persistence for property listings.
type PropertyRepository interface {
	Create(ctx context.Context, p *domain.Property) (*domain.Property, error)
	FindByID(ctx context.Context, id string) (*domain.Property, error)
	// FindByOwner returns the owner's properties ordered by id for
	// deterministic listings.
	FindByOwner(ctx context.Context, ownerID string) ([]*domain.Property, error)
	FindAll(ctx context.Context) ([]*domain.Property, error)
	// FindByIDs returns the properties matching ids, keyed by id.
	// Unknown ids are simply absent from the map.
	FindByIDs(ctx context.Context, ids []string) (map[string]*domain.Property, error)
	Update(ctx context.Context, id string, fields PropertyFields) (*domain.Property, error)
}
