package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/valorapay/payment-gateway/internal/logger"
	"github.com/valorapay/payment-gateway/internal/models"
)

// DeliveryCache is the optional fast path that skips webhook deliveries
// already applied. The guarded state machine stays the source of truth.
type DeliveryCache interface {
	Seen(ctx context.Context, digest string) (bool, error)
	MarkDelivered(ctx context.Context, digest string) error
}

// webhookPayload is the body of a rail-side status notification.
type webhookPayload struct {
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
}

// WebhookService verifies signed rail-side status notifications and applies
// them through the guarded state machine. Delivery is at-least-once:
// duplicates and out-of-order statuses are absorbed as no-ops.
type WebhookService struct {
	secret      []byte
	store       TransactionStore
	cache       DeliveryCache
	kafkaWriter KafkaWriter
}

// NewWebhookService wires the verifier. cache and kafkaWriter may be nil.
func NewWebhookService(secret string, store TransactionStore, cache DeliveryCache, kafkaWriter KafkaWriter) *WebhookService {
	return &WebhookService{
		secret:      []byte(secret),
		store:       store,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

// ValidSignature compares the provided signature against an HMAC-SHA256 of
// the raw body in constant time.
func (s *WebhookService) ValidSignature(body []byte, signature string) bool {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// Apply verifies and applies one webhook delivery. A delivery referencing an
// unknown transaction is dropped silently: retried webhooks for expired or
// foreign transactions are expected traffic, not caller errors.
func (s *WebhookService) Apply(ctx context.Context, body []byte, signature string) error {
	if !s.ValidSignature(body, signature) {
		logger.Log.Warnw("webhook rejected, bad signature")
		return models.ErrInvalidSignature
	}

	digest := sha256.Sum256(body)
	digestHex := hex.EncodeToString(digest[:])

	if s.cache != nil {
		seen, err := s.cache.Seen(ctx, digestHex)
		if err == nil && seen {
			logger.Log.Infow("duplicate webhook delivery skipped", "digest", digestHex)
			return nil
		}
		// A cache failure falls through to the idempotent machine.
	}

	var payload webhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		verr := &models.ValidationError{}
		return verr.Add("body", "must be a JSON status notification")
	}
	verr := &models.ValidationError{}
	if payload.TransactionID == "" {
		verr.Add("transaction_id", "is required")
	}
	if payload.Status == "" {
		verr.Add("status", "is required")
	}
	if !verr.Empty() {
		return verr
	}

	now := time.Now().UTC()
	var changed bool

	txn, err := s.store.Update(ctx, payload.TransactionID, func(t *models.Transaction) error {
		var err error
		changed, err = t.AdvanceSettlement(models.Status(payload.Status), now)
		return err
	})
	if err != nil {
		if errors.Is(err, models.ErrTransactionNotFound) {
			logger.Log.Infow("webhook for unknown transaction dropped",
				"transaction_id", payload.TransactionID, "status", payload.Status)
			return nil
		}
		var conflict *models.ConflictError
		if errors.As(err, &conflict) {
			logger.Log.Warnw("webhook status not applicable, ignored",
				"transaction_id", payload.TransactionID, "status", payload.Status, "reason", conflict.Error())
			return nil
		}
		return err
	}

	if changed {
		publishTransactionEvent(ctx, s.kafkaWriter, txn, "webhook")
	}
	if s.cache != nil {
		_ = s.cache.MarkDelivered(ctx, digestHex)
	}
	return nil
}
