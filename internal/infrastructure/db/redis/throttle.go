package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// attemptWindow is how long a failure streak is remembered; the key
	// expires attemptWindow after the most recent failure.
	attemptWindow = 15 * time.Minute
	maxAttempts   = 10
)

// LoginThrottle counts failed login attempts per username.
// Key format: login_attempts:<username>
type LoginThrottle struct {
	client *redis.Client
}

// NewLoginThrottle creates a LoginThrottle wrapping the given Redis client.
func NewLoginThrottle(client *redis.Client) *LoginThrottle {
	return &LoginThrottle{client: client}
}

// TooMany reports whether the username has exhausted its attempt budget.
func (t *LoginThrottle) TooMany(ctx context.Context, username string) (bool, error) {
	n, err := t.client.Get(ctx, t.key(username)).Int()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("throttle check: %w", err)
	}
	return n >= maxAttempts, nil
}

// RecordFailure increments the failure counter and refreshes its expiry.
func (t *LoginThrottle) RecordFailure(ctx context.Context, username string) error {
	pipe := t.client.TxPipeline()
	pipe.Incr(ctx, t.key(username))
	pipe.Expire(ctx, t.key(username), attemptWindow)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("throttle record: %w", err)
	}
	return nil
}

// Reset clears the failure streak after a successful login.
func (t *LoginThrottle) Reset(ctx context.Context, username string) error {
	return t.client.Del(ctx, t.key(username)).Err()
}

func (t *LoginThrottle) key(username string) string {
	return "login_attempts:" + username
}
