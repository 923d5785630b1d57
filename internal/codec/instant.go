// Package codec produces the rail-specific payment encodings. Every encoder
// is a pure function of transaction id, amount and creation time so payloads
// can be regenerated idempotently.
package codec

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// instantRailTag is the wire tag the settlement network expects at the head
// of an instant-transfer payment string.
const instantRailTag = "PIX"

// EncodeInstantTransfer builds the canonical pipe-delimited payment string
// handed to the payer for rendering.
func EncodeInstantTransfer(settlementKey string, amount decimal.Decimal, transactionID string) string {
	return fmt.Sprintf("%s|%s|%s|%s", instantRailTag, settlementKey, amount.String(), transactionID)
}
