package ports

import (
	"context"

	"github.com/propchase/rental-api/internal/core/domain"
)

// BookingRepository defines persistence for bookings. Bookings are
// append-only in scope: created once, queried by booker, never mutated.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	FindByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
}
