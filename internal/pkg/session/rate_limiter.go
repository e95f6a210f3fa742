// internal/pkg/session/rate_limiter.go
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	maxLoginAttempts = 5
	loginWindow      = 15 * time.Minute
)

// RateLimiter throttles login attempts per client IP. A nil Redis client
// disables it; the login flow then checks credentials unconditionally.
type RateLimiter struct {
	client *redis.Client
}

func NewRateLimiter(client *redis.Client) *RateLimiter {
	return &RateLimiter{client: client}
}

// CheckLoginAttempt reports whether a login attempt from ip is allowed.
// Allows up to 5 attempts per 15 minutes.
func (r *RateLimiter) CheckLoginAttempt(ctx context.Context, ip string) (bool, error) {
	if r == nil || r.client == nil {
		return true, nil
	}

	key := fmt.Sprintf("ratelimit:login:%s", ip)

	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to increment login attempt: %w", err)
	}

	// Set expiration on first attempt
	if count == 1 {
		r.client.Expire(ctx, key, loginWindow)
	}

	return count <= maxLoginAttempts, nil
}

// ResetLoginAttempts clears the counter after a successful login.
func (r *RateLimiter) ResetLoginAttempts(ctx context.Context, ip string) error {
	if r == nil || r.client == nil {
		return nil
	}
	key := fmt.Sprintf("ratelimit:login:%s", ip)
	return r.client.Del(ctx, key).Err()
}
