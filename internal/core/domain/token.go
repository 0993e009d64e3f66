package domain

import "errors"

// Token failures are kept distinct so callers can treat an absent token as
// anonymous on public endpoints while rejecting a tampered one outright.
var ErrMissingToken = errors.New("missing token")
var ErrInvalidToken = errors.New("invalid token")
