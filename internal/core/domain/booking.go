package domain

import (
	"errors"
	"time"
)

var ErrBookingNotFound = errors.New("booking not found")
var ErrInvalidStayDates = errors.New("check-out must be after check-in")

// Booking records a stay reservation. UserID always comes from the
// authenticated subject, never from client input. Price is a snapshot
// taken at booking time and is immutable afterwards.
type Booking struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	PropertyID string    `json:"property_id" bson:"property_id"`
	UserID     string    `json:"user_id" bson:"user_id"`
	CheckIn    time.Time `json:"check_in" bson:"check_in"`
	CheckOut   time.Time `json:"check_out" bson:"check_out"`
	FullName   string    `json:"full_name" bson:"full_name"`
	Email      string    `json:"email" bson:"email"`
	Price      float64   `json:"price" bson:"price"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}

// ValidateStay checks the date invariant.
func (b *Booking) ValidateStay() error {
	if !b.CheckOut.After(b.CheckIn) {
		return ErrInvalidStayDates
	}
	return nil
}
