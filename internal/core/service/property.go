package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/propchase/rental-api/internal/core/domain"
	"github.com/propchase/rental-api/internal/core/ports"
)

// PropertyService implements listing use cases and enforces ownership on
// mutations.
type PropertyService struct {
	properties ports.PropertyRepository
	users      ports.UserRepository
	logger     zerolog.Logger
}

func NewPropertyService(properties ports.PropertyRepository, users ports.UserRepository, logger zerolog.Logger) *PropertyService {
	return &PropertyService{properties: properties, users: users, logger: logger}
}

// Create stores a new listing owned by ownerID. The owner is taken from
// the authenticated subject and can never be reassigned afterwards.
func (s *PropertyService) Create(ctx context.Context, ownerID string, fields ports.PropertyFields) (*domain.Property, error) {
	now := time.Now().UTC()
	created, err := s.properties.Create(ctx, &domain.Property{
		OwnerID:     ownerID,
		Title:       fields.Title,
		Address:     fields.Address,
		Description: fields.Description,
		ExtraInfo:   fields.ExtraInfo,
		Perks:       fields.Perks,
		Photos:      fields.Photos,
		CheckIn:     fields.CheckIn,
		CheckOut:    fields.CheckOut,
		MaxGuests:   fields.MaxGuests,
		Price:       fields.Price,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create property")
		return nil, err
	}

	s.logger.Info().Str("property_id", created.ID).Str("owner_id", ownerID).Msg("property created")
	return created, nil
}

// Get returns the public detail view: the property plus the owner's
// public display fields.
func (s *PropertyService) Get(ctx context.Context, id string) (*ports.PropertyDetail, error) {
	property, err := s.properties.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &ports.PropertyDetail{Property: property}
	owner, err := s.users.FindByID(ctx, property.OwnerID)
	if err == nil {
		detail.Owner = owner.Public()
	} else {
		// A dangling owner reference should not hide a public listing.
		s.logger.Warn().Str("property_id", id).Str("owner_id", property.OwnerID).Msg("property owner not found")
	}
	return detail, nil
}

// ListByOwner returns all properties owned by ownerID.
func (s *PropertyService) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Property, error) {
	return s.properties.FindByOwner(ctx, ownerID)
}

// ListAll returns every listing. Public, no authentication involved.
func (s *PropertyService) ListAll(ctx context.Context) ([]*domain.Property, error) {
	return s.properties.FindAll(ctx)
}

// Update mutates a listing on behalf of subjectID. Existence is checked
// first, so an unknown id is a not-found regardless of who asks; only
// then is ownership enforced.
func (s *PropertyService) Update(ctx context.Context, subjectID, id string, fields ports.PropertyFields) (*domain.Property, error) {
	property, err := s.properties.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !property.OwnedBy(subjectID) {
		s.logger.Warn().Str("property_id", id).Str("subject_id", subjectID).Msg("property mutation denied")
		return nil, domain.ErrForbidden
	}

	updated, err := s.properties.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("property_id", id).Msg("property updated")
	return updated, nil
}
