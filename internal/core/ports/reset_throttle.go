package ports

import "context"

// ResetThrottle limits how often a password reset may be requested for a
// given email. Backed by Redis in production; a nil-safe no-op is used in
// tests.
type ResetThrottle interface {
	// IsThrottled reports whether a reset was already requested within
	// the throttle window.
	IsThrottled(ctx context.Context, email string) (bool, error)
	// Mark records a reset request, starting the window.
	Mark(ctx context.Context, email string) error
}
