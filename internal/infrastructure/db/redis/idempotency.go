package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const idempotencyTTL = 24 * time.Hour

// IdempotencyChecker guards order placement against client retries, backed
// by Redis. Key format: order:<user_id>:<idempotency_key>
type IdempotencyChecker struct {
	client *redis.Client
}

// NewIdempotencyChecker creates an IdempotencyChecker wrapping the given
// Redis client.
func NewIdempotencyChecker(client *redis.Client) *IdempotencyChecker {
	return &IdempotencyChecker{client: client}
}

// IsDuplicate reports whether this key has already placed an order.
func (c *IdempotencyChecker) IsDuplicate(ctx context.Context, userID int64, key string) (bool, error) {
	n, err := c.client.Exists(ctx, c.key(userID, key)).Result()
	if err != nil {
		return false, fmt.Errorf("idempotency check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this key placed an order (expires after idempotencyTTL).
func (c *IdempotencyChecker) Mark(ctx context.Context, userID int64, key string) error {
	return c.client.Set(ctx, c.key(userID, key), "1", idempotencyTTL).Err()
}

func (c *IdempotencyChecker) key(userID int64, key string) string {
	return fmt.Sprintf("order:%d:%s", userID, key)
}
