package services

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"github.com/valorapay/payment-gateway/internal/logger"
	"github.com/valorapay/payment-gateway/internal/models"
	"github.com/valorapay/payment-gateway/internal/validation"
)

// TransactionStore is the keyed-store contract the lifecycle engine needs.
// Update must apply the mutation atomically per id.
type TransactionStore interface {
	Save(ctx context.Context, txn models.Transaction) error
	Get(ctx context.Context, id string) (*models.Transaction, error)
	Update(ctx context.Context, id string, apply func(*models.Transaction) error) (*models.Transaction, error)
}

// RefundStore persists immutable refund records.
type RefundStore interface {
	SaveRefund(ctx context.Context, refund models.Refund) error
	ListRefunds(ctx context.Context, transactionID string) ([]models.Refund, error)
}

// RailProcessor initiates a transaction on its rail and sets the first
// post-creation state.
type RailProcessor interface {
	Initiate(ctx context.Context, txn *models.Transaction, req models.CreateRequest) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// PaymentService owns the transaction lifecycle: creation through the rail
// processors, guarded capture/refund transitions and sandbox settlement
// simulation.
type PaymentService struct {
	store       TransactionStore
	refunds     RefundStore
	processors  map[models.Rail]RailProcessor
	kafkaWriter KafkaWriter
}

// NewPaymentService wires the lifecycle engine.
func NewPaymentService(
	store TransactionStore,
	refunds RefundStore,
	processors map[models.Rail]RailProcessor,
	kafkaWriter KafkaWriter,
) *PaymentService {
	return &PaymentService{
		store:       store,
		refunds:     refunds,
		processors:  processors,
		kafkaWriter: kafkaWriter,
	}
}

// ListPaymentMethods returns the static payment method catalog.
func (s *PaymentService) ListPaymentMethods(_ context.Context) []models.PaymentMethod {
	return models.PaymentMethods()
}

// CreateTransaction validates the request, initiates it on its rail and
// persists the resulting transaction.
func (s *PaymentService) CreateTransaction(ctx context.Context, req models.CreateRequest) (*models.Transaction, error) {
	method, ok := models.MethodByKind(req.PaymentMethod)
	if !ok {
		return nil, models.ErrUnsupportedMethod
	}

	amount, err := validation.ValidateCreate(req, method)
	if err != nil {
		logger.Log.Infow("creation request rejected", "payment_method", req.PaymentMethod, "error", err)
		return nil, err
	}

	processor, ok := s.processors[method.Rail]
	if !ok {
		return nil, models.ErrUnsupportedMethod
	}

	now := time.Now().UTC()
	txn := models.Transaction{
		ID:             models.NewTransactionID(),
		Amount:         amount,
		Currency:       req.Currency,
		Rail:           method.Rail,
		PaymentMethod:  method.Kind,
		Customer:       req.Customer,
		Status:         models.StatusPending,
		RefundedAmount: decimal.Zero,
		Metadata:       req.Metadata,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := processor.Initiate(ctx, &txn, req); err != nil {
		logger.Log.Errorw("rail initiation failed", "transaction_id", txn.ID, "rail", txn.Rail, "error", err)
		return nil, err
	}

	if err := s.store.Save(ctx, txn); err != nil {
		logger.Log.Errorw("failed to save transaction", "transaction_id", txn.ID, "error", err)
		return nil, err
	}

	s.publishEvent(ctx, &txn, "create")
	return &txn, nil
}

// GetTransaction looks a transaction up by id.
func (s *PaymentService) GetTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	return s.store.Get(ctx, id)
}

// Capture settles a previously approved card authorization.
func (s *PaymentService) Capture(ctx context.Context, id string) (*models.Transaction, error) {
	now := time.Now().UTC()
	txn, err := s.store.Update(ctx, id, func(t *models.Transaction) error {
		return t.Capture(now)
	})
	if err != nil {
		logger.Log.Warnw("capture rejected", "transaction_id", id, "error", err)
		return nil, err
	}

	s.publishEvent(ctx, txn, "capture")
	return txn, nil
}

// Refund applies a refund against a transaction. A nil amount refunds the
// full remaining refundable amount. The capacity guard and the state
// transition run atomically under the store's per-id lock.
func (s *PaymentService) Refund(ctx context.Context, id string, amount *decimal.Decimal) (*models.Refund, error) {
	if amount != nil && amount.LessThanOrEqual(decimal.Zero) {
		verr := &models.ValidationError{}
		return nil, verr.Add("amount", "must be greater than zero")
	}

	now := time.Now().UTC()
	var refund models.Refund

	txn, err := s.store.Update(ctx, id, func(t *models.Transaction) error {
		refundAmount := t.RemainingRefundable()
		if amount != nil {
			refundAmount = *amount
		}
		if err := t.ApplyRefund(refundAmount, now); err != nil {
			return err
		}
		refund = models.Refund{
			ID:            models.NewRefundID(),
			TransactionID: t.ID,
			Amount:        refundAmount,
			Status:        models.RefundStatusApproved,
			CreatedAt:     now,
		}
		return nil
	})
	if err != nil {
		logger.Log.Warnw("refund rejected", "transaction_id", id, "error", err)
		return nil, err
	}

	if err := s.refunds.SaveRefund(ctx, refund); err != nil {
		logger.Log.Errorw("failed to save refund record", "refund_id", refund.ID, "error", err)
		return nil, err
	}

	s.publishEvent(ctx, txn, "refund")
	return &refund, nil
}

// SimulateSettlement marks a waiting async-rail transaction as paid. It is
// exposed only in the sandbox environment and only for the rail the caller
// names.
func (s *PaymentService) SimulateSettlement(ctx context.Context, id string, rail models.Rail) (*models.Transaction, error) {
	now := time.Now().UTC()
	var changed bool

	txn, err := s.store.Update(ctx, id, func(t *models.Transaction) error {
		if t.Rail != rail {
			return &models.ConflictError{Op: "simulate settlement", Status: t.Status, Reason: "transaction is not on rail " + string(rail)}
		}
		var err error
		changed, err = t.AdvanceSettlement(models.StatusPaid, now)
		return err
	})
	if err != nil {
		logger.Log.Warnw("settlement simulation rejected", "transaction_id", id, "rail", rail, "error", err)
		return nil, err
	}

	if changed {
		s.publishEvent(ctx, txn, "settlement")
	}
	return txn, nil
}
