package rails

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/valorapay/payment-gateway/internal/models"
)

// AuthorizationRequest carries tokenized card data to the acquirer. The raw
// PAN never crosses this boundary.
type AuthorizationRequest struct {
	TransactionID string
	CardToken     string
	CardBrand     string
	Amount        decimal.Decimal
	Currency      string
}

// AuthorizationResult is the acquirer's decision for one authorization.
type AuthorizationResult struct {
	Approved      bool
	DeclineReason string
}

// AcquirerDecider is the decision port the card rail calls for
// approve/decline. Production wires an acquirer client, tests a
// deterministic double.
type AcquirerDecider interface {
	Authorize(ctx context.Context, req AuthorizationRequest) (AuthorizationResult, error)
}

// CardToken derives the opaque deterministic token stored in place of card
// data: tok_<16 hex of sha256(number+expMonth+expYear)>.
func CardToken(card *models.CardDetails) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s%s%s", card.Number, card.ExpMonth, card.ExpYear)))
	return "tok_" + hex.EncodeToString(sum[:])[:16]
}
