package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/propchase/rental-api/internal/core/domain"
	"github.com/propchase/rental-api/internal/core/ports"
)

// BookingService implements booking creation and per-user listing.
type BookingService struct {
	bookings   ports.BookingRepository
	properties ports.PropertyRepository
	logger     zerolog.Logger
}

func NewBookingService(bookings ports.BookingRepository, properties ports.PropertyRepository, logger zerolog.Logger) *BookingService {
	return &BookingService{bookings: bookings, properties: properties, logger: logger}
}

// Create records a stay for the authenticated subject. The booker id is
// always subjectID; any user id in the client payload is discarded, so a
// booking can never be filed under someone else's account. The price is
// snapshotted at creation and never changes.
func (s *BookingService) Create(ctx context.Context, subjectID string, input ports.CreateBookingInput) (*domain.Booking, error) {
	if _, err := s.properties.FindByID(ctx, input.PropertyID); err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		PropertyID: input.PropertyID,
		UserID:     subjectID,
		CheckIn:    input.CheckIn,
		CheckOut:   input.CheckOut,
		FullName:   input.FullName,
		Email:      input.Email,
		Price:      input.Price,
		CreatedAt:  time.Now().UTC(),
	}
	if err := booking.ValidateStay(); err != nil {
		return nil, err
	}

	created, err := s.bookings.Create(ctx, booking)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create booking")
		return nil, err
	}

	s.logger.Info().Str("booking_id", created.ID).Str("user_id", subjectID).Msg("booking created")
	return created, nil
}

// ListByUser returns the user's bookings, each expanded with its property.
// Properties are fetched in one query and joined in memory.
func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]*ports.BookingWithProperty, error) {
	bookings, err := s.bookings.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(bookings))
	for _, b := range bookings {
		ids = append(ids, b.PropertyID)
	}
	properties, err := s.properties.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]*ports.BookingWithProperty, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, &ports.BookingWithProperty{
			Booking:  b,
			Property: properties[b.PropertyID],
		})
	}
	return result, nil
}
