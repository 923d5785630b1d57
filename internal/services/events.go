package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/valorapay/payment-gateway/internal/logger"
	"github.com/valorapay/payment-gateway/internal/models"
)

// TransactionEvent is the lifecycle event published for every transaction
// creation and transition, keyed by transaction id.
type TransactionEvent struct {
	TransactionID string        `json:"transaction_id"`
	Operation     string        `json:"operation"`
	Status        models.Status `json:"status"`
	Rail          models.Rail   `json:"rail"`
	Amount        string        `json:"amount"`
	Currency      string        `json:"currency"`
	Timestamp     int64         `json:"timestamp"`
}

// publishEvent publishes a lifecycle event to Kafka. Publishing is
// best-effort: a missing writer or a broker failure never fails the
// operation that triggered the event.
func (s *PaymentService) publishEvent(ctx context.Context, txn *models.Transaction, operation string) {
	publishTransactionEvent(ctx, s.kafkaWriter, txn, operation)
}

func publishTransactionEvent(ctx context.Context, writer KafkaWriter, txn *models.Transaction, operation string) {
	if writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "transaction_id", txn.ID)
		return
	}

	event := TransactionEvent{
		TransactionID: txn.ID,
		Operation:     operation,
		Status:        txn.Status,
		Rail:          txn.Rail,
		Amount:        txn.Amount.String(),
		Currency:      txn.Currency,
		Timestamp:     time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal transaction event", "transaction_id", txn.ID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(txn.ID),
		Value: data,
	}

	if err := writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish transaction event", "transaction_id", txn.ID, "error", err)
	} else {
		logger.Log.Infow("transaction event published", "transaction_id", txn.ID, "operation", operation, "status", txn.Status)
	}
}
