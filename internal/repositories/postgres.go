package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/valorapay/payment-gateway/internal/logger"
	"github.com/valorapay/payment-gateway/internal/models"
)

// PostgresStore is the production storage driver. Per-key atomicity of
// Update comes from SELECT ... FOR UPDATE inside a transaction, so
// concurrent operations on the same id serialize on the row lock.
type PostgresStore struct {
	db *sqlx.DB
}

func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type transactionRow struct {
	TransactionID     string          `db:"transaction_id"`
	Amount            decimal.Decimal `db:"amount"`
	Currency          string          `db:"currency"`
	Rail              string          `db:"rail"`
	PaymentMethod     string          `db:"payment_method"`
	Customer          string          `db:"customer"`
	Status            string          `db:"status"`
	Payload           []byte          `db:"payload"`
	AuthorizationCode string          `db:"authorization_code"`
	DeclineReason     string          `db:"decline_reason"`
	RefundedAmount    decimal.Decimal `db:"refunded_amount"`
	Metadata          []byte          `db:"metadata"`
	CreatedAt         time.Time       `db:"created_at"`
	UpdatedAt         time.Time       `db:"updated_at"`
	CapturedAt        *time.Time      `db:"captured_at"`
	PaidAt            *time.Time      `db:"paid_at"`
}

func toRow(txn models.Transaction) (transactionRow, error) {
	payload, err := json.Marshal(txn.Payload)
	if err != nil {
		return transactionRow{}, fmt.Errorf("marshal payload: %w", err)
	}
	metadata, err := json.Marshal(txn.Metadata)
	if err != nil {
		return transactionRow{}, fmt.Errorf("marshal metadata: %w", err)
	}
	return transactionRow{
		TransactionID:     txn.ID,
		Amount:            txn.Amount,
		Currency:          txn.Currency,
		Rail:              string(txn.Rail),
		PaymentMethod:     txn.PaymentMethod,
		Customer:          txn.Customer,
		Status:            string(txn.Status),
		Payload:           payload,
		AuthorizationCode: txn.AuthorizationCode,
		DeclineReason:     txn.DeclineReason,
		RefundedAmount:    txn.RefundedAmount,
		Metadata:          metadata,
		CreatedAt:         txn.CreatedAt,
		UpdatedAt:         txn.UpdatedAt,
		CapturedAt:        txn.CapturedAt,
		PaidAt:            txn.PaidAt,
	}, nil
}

func fromRow(row transactionRow) (models.Transaction, error) {
	txn := models.Transaction{
		ID:                row.TransactionID,
		Amount:            row.Amount,
		Currency:          row.Currency,
		Rail:              models.Rail(row.Rail),
		PaymentMethod:     row.PaymentMethod,
		Customer:          row.Customer,
		Status:            models.Status(row.Status),
		AuthorizationCode: row.AuthorizationCode,
		DeclineReason:     row.DeclineReason,
		RefundedAmount:    row.RefundedAmount,
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
		CapturedAt:        row.CapturedAt,
		PaidAt:            row.PaidAt,
	}
	if len(row.Payload) > 0 {
		if err := json.Unmarshal(row.Payload, &txn.Payload); err != nil {
			return models.Transaction{}, fmt.Errorf("unmarshal payload: %w", err)
		}
	}
	if len(row.Metadata) > 0 && string(row.Metadata) != "null" {
		if err := json.Unmarshal(row.Metadata, &txn.Metadata); err != nil {
			return models.Transaction{}, fmt.Errorf("unmarshal metadata: %w", err)
		}
	}
	return txn, nil
}

// Save persists a new transaction; an existing id is an error.
func (s *PostgresStore) Save(ctx context.Context, txn models.Transaction) error {
	query := `
		INSERT INTO transactions (
			transaction_id, amount, currency, rail, payment_method, customer,
			status, payload, authorization_code, decline_reason,
			refunded_amount, metadata, created_at, updated_at, captured_at, paid_at
		)
		VALUES (
			:transaction_id, :amount, :currency, :rail, :payment_method, :customer,
			:status, :payload, :authorization_code, :decline_reason,
			:refunded_amount, :metadata, :created_at, :updated_at, :captured_at, :paid_at
		)
		ON CONFLICT (transaction_id) DO NOTHING
	`

	row, err := toRow(txn)
	if err != nil {
		return err
	}

	res, err := s.db.NamedExecContext(ctx, query, row)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"transaction_id", txn.ID,
		"error", err,
	)
	if err != nil {
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return models.ErrTransactionExists
	}
	return nil
}

const selectTransaction = `
	SELECT transaction_id, amount, currency, rail, payment_method, customer,
	       status, payload, authorization_code, decline_reason,
	       refunded_amount, metadata, created_at, updated_at, captured_at, paid_at
	FROM transactions
	WHERE transaction_id = $1
`

// Get loads one transaction by id.
func (s *PostgresStore) Get(ctx context.Context, id string) (*models.Transaction, error) {
	var row transactionRow
	err := s.db.GetContext(ctx, &row, selectTransaction, id)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(selectTransaction), " "),
		"transaction_id", id,
		"error", err,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrTransactionNotFound
		}
		return nil, err
	}

	txn, err := fromRow(row)
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// Update locks the row, runs apply, and writes the mutated state back in the
// same database transaction.
func (s *PostgresStore) Update(ctx context.Context, id string, apply func(*models.Transaction) error) (*models.Transaction, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin update: %w", err)
	}
	defer tx.Rollback()

	var row transactionRow
	if err := tx.GetContext(ctx, &row, selectTransaction+" FOR UPDATE", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrTransactionNotFound
		}
		return nil, err
	}

	txn, err := fromRow(row)
	if err != nil {
		return nil, err
	}
	if err := apply(&txn); err != nil {
		return nil, err
	}

	updated, err := toRow(txn)
	if err != nil {
		return nil, err
	}

	updateQuery := `
		UPDATE transactions
		SET status = :status,
		    payload = :payload,
		    authorization_code = :authorization_code,
		    decline_reason = :decline_reason,
		    refunded_amount = :refunded_amount,
		    updated_at = :updated_at,
		    captured_at = :captured_at,
		    paid_at = :paid_at
		WHERE transaction_id = :transaction_id
	`
	if _, err := tx.NamedExecContext(ctx, updateQuery, updated); err != nil {
		logger.Log.Errorw("transaction update failed", "transaction_id", id, "error", err)
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit update: %w", err)
	}
	return &txn, nil
}

// SaveRefund records an immutable refund row.
func (s *PostgresStore) SaveRefund(ctx context.Context, refund models.Refund) error {
	query := `
		INSERT INTO refunds (refund_id, transaction_id, amount, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(ctx, query,
		refund.ID, refund.TransactionID, refund.Amount, refund.Status, refund.CreatedAt)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"refund_id", refund.ID,
		"error", err,
	)
	return err
}

// ListRefunds returns the refunds of a transaction in creation order.
func (s *PostgresStore) ListRefunds(ctx context.Context, transactionID string) ([]models.Refund, error) {
	const query = `
		SELECT refund_id, transaction_id, amount, status, created_at
		FROM refunds
		WHERE transaction_id = $1
		ORDER BY created_at
	`
	var refunds []models.Refund
	err := s.db.SelectContext(ctx, &refunds, query, transactionID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"transaction_id", transactionID,
		"error", err,
	)
	return refunds, err
}
