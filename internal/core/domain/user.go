package domain

import (
	"errors"
	"time"
)

// DefaultBio is assigned to newly registered users until they edit it.
const DefaultBio = "About me!"

var ErrUserNotFound = errors.New("user not found")
var ErrDuplicateEmail = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrMissingFields = errors.New("required fields are missing")
var ErrPasswordTooShort = errors.New("password must be at least 8 characters")
var ErrPasswordConfirmation = errors.New("passwords do not match")
var ErrPasswordMismatch = errors.New("old password does not match")
var ErrSamePassword = errors.New("new password equals old password")
var ErrResetThrottled = errors.New("password reset requested too recently")

// User is the canonical identity record. PasswordHash never leaves the server.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"display_name"`
	PasswordHash string    `json:"-"`
	Bio          string    `json:"bio"`
	AvatarRef    string    `json:"avatar_ref,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PublicProfile is the subset of user fields visible to other users,
// e.g. next to a property detail.
type PublicProfile struct {
	DisplayName string `json:"display_name"`
	Bio         string `json:"bio"`
	AvatarRef   string `json:"avatar_ref,omitempty"`
}

// Public returns the externally visible view of the user.
func (u *User) Public() PublicProfile {
	return PublicProfile{
		DisplayName: u.DisplayName,
		Bio:         u.Bio,
		AvatarRef:   u.AvatarRef,
	}
}
