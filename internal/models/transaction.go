package models

import (
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Rail identifies the settlement mechanism a transaction runs on.
type Rail string

const (
	RailCard            Rail = "card"
	RailInstantTransfer Rail = "instant_transfer"
	RailBankSlip        Rail = "bank_slip"
)

// Transaction is the authoritative record of a payment. Amount is immutable
// after creation; only status, payload and the derived timestamps mutate.
type Transaction struct {
	ID                string            `json:"transaction_id" db:"transaction_id"`
	Amount            decimal.Decimal   `json:"amount" db:"amount"`
	Currency          string            `json:"currency" db:"currency"`
	Rail              Rail              `json:"rail" db:"rail"`
	PaymentMethod     string            `json:"payment_method" db:"payment_method"`
	Customer          string            `json:"customer" db:"customer"`
	Status            Status            `json:"status" db:"status"`
	Payload           RailPayload       `json:"payload"`
	AuthorizationCode string            `json:"authorization_code,omitempty" db:"authorization_code"`
	DeclineReason     string            `json:"decline_reason,omitempty" db:"decline_reason"`
	RefundedAmount    decimal.Decimal   `json:"refunded_amount" db:"refunded_amount"`
	Metadata          map[string]string `json:"metadata,omitempty"`
	CreatedAt         time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at" db:"updated_at"`
	CapturedAt        *time.Time        `json:"captured_at,omitempty" db:"captured_at"`
	PaidAt            *time.Time        `json:"paid_at,omitempty" db:"paid_at"`
}

// RailPayload is a tagged union: exactly one variant is populated and it
// matches the transaction's rail.
type RailPayload struct {
	Card            *CardPayload            `json:"card,omitempty"`
	InstantTransfer *InstantTransferPayload `json:"instant_transfer,omitempty"`
	BankSlip        *BankSlipPayload        `json:"bank_slip,omitempty"`
}

// CardPayload holds the tokenized card data kept after an acquirer decision.
// The raw PAN is never stored.
type CardPayload struct {
	Token string `json:"token"`
	Last4 string `json:"last4"`
	Brand string `json:"brand"`
}

// InstantTransferPayload holds the encoded payment string handed to the payer
// and the moment it stops being payable.
type InstantTransferPayload struct {
	SettlementKey  string    `json:"settlement_key"`
	EncodedPayload string    `json:"encoded_payload"`
	ExpiresAt      time.Time `json:"expires_at"`
}

// BankSlipPayload identifies the payable document for the bank-slip rail.
type BankSlipPayload struct {
	Barcode        string    `json:"barcode"`
	CheckDigitLine string    `json:"check_digit_line"`
	DueDate        time.Time `json:"due_date"`
}

// RemainingRefundable is the amount still available for refunds.
func (t *Transaction) RemainingRefundable() decimal.Decimal {
	return t.Amount.Sub(t.RefundedAmount)
}

// NewTransactionID returns an id in the form tx_<16 hex chars>.
func NewTransactionID() string {
	return "tx_" + randomHex(16)
}

func randomHex(n int) string {
	u := uuid.New()
	return hex.EncodeToString(u[:])[:n]
}
