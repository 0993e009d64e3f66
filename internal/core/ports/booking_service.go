package ports

import (
	"context"
	"time"

	"github.com/propchase/rental-api/internal/core/domain"
)

// CreateBookingInput carries booking data from the client. Any user id the
// client supplies is ignored; the service stamps the authenticated subject.
type CreateBookingInput struct {
	PropertyID string
	CheckIn    time.Time
	CheckOut   time.Time
	FullName   string
	Email      string
	Price      float64
}

// BookingWithProperty joins a booking with its property for list views.
type BookingWithProperty struct {
	Booking  *domain.Booking
	Property *domain.Property
}

// BookingService defines booking use cases.
type BookingService interface {
	Create(ctx context.Context, subjectID string, input CreateBookingInput) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*BookingWithProperty, error)
}
