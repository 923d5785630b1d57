// Package rails holds one processor per settlement rail. A processor decides
// how a validated transaction is initiated and which state it lands in right
// after creation.
package rails

import (
	"context"
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/valorapay/payment-gateway/internal/logger"
	"github.com/valorapay/payment-gateway/internal/models"
	"github.com/valorapay/payment-gateway/internal/validation"
)

// CardProcessor initiates card transactions through the acquirer decision
// port. It is the only rail with a synchronous approve-or-decline outcome at
// creation time.
type CardProcessor struct {
	acquirer AcquirerDecider
	timeout  time.Duration
}

// NewCardProcessor wires the acquirer port with a bounded call timeout.
func NewCardProcessor(acquirer AcquirerDecider, timeout time.Duration) *CardProcessor {
	return &CardProcessor{acquirer: acquirer, timeout: timeout}
}

// Initiate tokenizes the card, asks the acquirer for a decision and settles
// the transaction into approved or declined. A timed-out or failed acquirer
// call declines; a transaction is never left pending.
func (p *CardProcessor) Initiate(ctx context.Context, txn *models.Transaction, req models.CreateRequest) error {
	token := CardToken(req.Card)
	brand := validation.DetectBrand(req.Card.Number)

	callCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	result, err := p.acquirer.Authorize(callCtx, AuthorizationRequest{
		TransactionID: txn.ID,
		CardToken:     token,
		CardBrand:     brand,
		Amount:        txn.Amount,
		Currency:      txn.Currency,
	})
	if err != nil {
		logger.Log.Warnw("acquirer call failed, declining transaction",
			"transaction_id", txn.ID, "error", err)
		result = AuthorizationResult{Approved: false, DeclineReason: "acquirer unavailable"}
	}

	if !result.Approved {
		txn.Status = models.StatusDeclined
		txn.DeclineReason = result.DeclineReason
		return nil
	}

	txn.Status = models.StatusApproved
	txn.AuthorizationCode = newAuthorizationCode()
	txn.Payload = models.RailPayload{Card: &models.CardPayload{
		Token: token,
		Last4: last4(req.Card.Number),
		Brand: brand,
	}}
	return nil
}

// newAuthorizationCode returns an opaque code in the form AUTH_<8 HEX>.
func newAuthorizationCode() string {
	u := uuid.New()
	return "AUTH_" + strings.ToUpper(hex.EncodeToString(u[:])[:8])
}

func last4(number string) string {
	digits := make([]byte, 0, len(number))
	for i := 0; i < len(number); i++ {
		if number[i] >= '0' && number[i] <= '9' {
			digits = append(digits, number[i])
		}
	}
	if len(digits) < 4 {
		return string(digits)
	}
	return string(digits[len(digits)-4:])
}
