package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	subscribeWindow = time.Hour
	subscribeLimit  = 10
)

// SubscribeLimiter caps how many subscription requests a single email may
// issue per fixed window, backed by a Redis counter.
// Key format: ratelimit:subscribe:<email>
type SubscribeLimiter struct {
	client *redis.Client
}

// NewSubscribeLimiter creates a SubscribeLimiter wrapping the given client.
func NewSubscribeLimiter(client *redis.Client) *SubscribeLimiter {
	return &SubscribeLimiter{client: client}
}

// Allow increments the caller's window counter and reports whether the
// request is within the limit. The TTL is set on the first hit of a window.
func (l *SubscribeLimiter) Allow(ctx context.Context, email string) (bool, error) {
	key := l.key(email)
	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, key, subscribeWindow).Err(); err != nil {
			return false, fmt.Errorf("rate limit expire: %w", err)
		}
	}
	return n <= subscribeLimit, nil
}

func (l *SubscribeLimiter) key(email string) string {
	return "ratelimit:subscribe:" + email
}
