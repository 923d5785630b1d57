package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/valorapay/payment-gateway/internal/logger"
)

// WebhookDeliveryCache remembers webhook deliveries already applied, keyed
// by body digest, so retried at-least-once deliveries can be skipped before
// touching the store. Correctness does not depend on it: the state machine
// is idempotent regardless.
type WebhookDeliveryCache struct {
	client *redis.Client
	exp    time.Duration
}

// NewWebhookDeliveryCache creates a cache with the given entry TTL.
func NewWebhookDeliveryCache(client *redis.Client, expiration time.Duration) *WebhookDeliveryCache {
	return &WebhookDeliveryCache{client: client, exp: expiration}
}

// Seen reports whether a delivery with this digest was already applied.
func (c *WebhookDeliveryCache) Seen(ctx context.Context, digest string) (bool, error) {
	key := "webhook_delivery:" + digest

	err := c.client.Get(ctx, key).Err()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		logger.Log.Errorw("webhook delivery cache read failed", "key", key, "error", err)
		return false, err
	}
	return true, nil
}

// MarkDelivered records a successfully applied delivery.
func (c *WebhookDeliveryCache) MarkDelivered(ctx context.Context, digest string) error {
	key := "webhook_delivery:" + digest

	err := c.client.Set(ctx, key, "1", c.exp).Err()
	if err != nil {
		logger.Log.Errorw("webhook delivery cache write failed", "key", key, "error", err)
	}
	return err
}
