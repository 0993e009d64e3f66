package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const throttleWindow = 5 * time.Minute

// ResetThrottle rate-limits password-reset requests per email, backed by
// Redis. Key format: pwreset:<normalized email>
type ResetThrottle struct {
	client *redis.Client
}

func NewResetThrottle(client *redis.Client) *ResetThrottle {
	return &ResetThrottle{client: client}
}

// IsThrottled reports whether a reset was requested within the window.
func (t *ResetThrottle) IsThrottled(ctx context.Context, email string) (bool, error) {
	n, err := t.client.Exists(ctx, t.key(email)).Result()
	if err != nil {
		return false, fmt.Errorf("reset throttle check: %w", err)
	}
	return n > 0, nil
}

// Mark records a reset request (expires after throttleWindow).
func (t *ResetThrottle) Mark(ctx context.Context, email string) error {
	return t.client.Set(ctx, t.key(email), "1", throttleWindow).Err()
}

func (t *ResetThrottle) key(email string) string {
	return "pwreset:" + email
}
