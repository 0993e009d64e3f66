package domain

import (
	"errors"
	"time"
)

var ErrPropertyNotFound = errors.New("property not found")
var ErrForbidden = errors.New("access forbidden")

// Property is a rentable listing. OwnerID is set once at creation from the
// authenticated subject and is never reassigned.
type Property struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	OwnerID     string    `json:"owner_id" bson:"owner_id"`
	Title       string    `json:"title" bson:"title"`
	Address     string    `json:"address" bson:"address"`
	Description string    `json:"description" bson:"description"`
	ExtraInfo   string    `json:"extra_info,omitempty" bson:"extra_info,omitempty"`
	Perks       []string  `json:"perks" bson:"perks"`
	Photos      []string  `json:"photos" bson:"photos"`
	CheckIn     string    `json:"check_in" bson:"check_in"`
	CheckOut    string    `json:"check_out" bson:"check_out"`
	MaxGuests   int       `json:"max_guests" bson:"max_guests"`
	Price       float64   `json:"price" bson:"price"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// OwnedBy reports whether subjectID is the property's owner.
func (p *Property) OwnedBy(subjectID string) bool {
	return subjectID != "" && p.OwnerID == subjectID
}
