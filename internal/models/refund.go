package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RefundStatusApproved is the only refund state in scope; refunds are
// approved synchronously and immutable afterward.
const RefundStatusApproved = "approved"

// Refund is an immutable record of money returned against a transaction.
type Refund struct {
	ID            string          `json:"refund_id" db:"refund_id"`
	TransactionID string          `json:"transaction_id" db:"transaction_id"`
	Amount        decimal.Decimal `json:"amount" db:"amount"`
	Status        string          `json:"status" db:"status"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
}

// NewRefundID returns an id in the form ref_<16 hex chars>.
func NewRefundID() string {
	return "ref_" + randomHex(16)
}
