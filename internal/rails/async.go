package rails

import (
	"context"
	"time"

	"github.com/valorapay/payment-gateway/internal/codec"
	"github.com/valorapay/payment-gateway/internal/models"
)

// instantTransferExpiry is how long an instant-transfer payment string stays
// payable.
const instantTransferExpiry = 30 * time.Minute

// bankSlipDueDays is how many days the payer has to settle a bank slip.
const bankSlipDueDays = 3

// InstantTransferProcessor initiates instant-transfer transactions. No
// synchronous decision is made; the transaction waits for a rail-side
// settlement event.
type InstantTransferProcessor struct {
	settlementKey string
}

func NewInstantTransferProcessor(settlementKey string) *InstantTransferProcessor {
	return &InstantTransferProcessor{settlementKey: settlementKey}
}

func (p *InstantTransferProcessor) Initiate(_ context.Context, txn *models.Transaction, _ models.CreateRequest) error {
	txn.Status = models.StatusWaitingPayment
	txn.Payload = models.RailPayload{InstantTransfer: &models.InstantTransferPayload{
		SettlementKey:  p.settlementKey,
		EncodedPayload: codec.EncodeInstantTransfer(p.settlementKey, txn.Amount, txn.ID),
		ExpiresAt:      txn.CreatedAt.Add(instantTransferExpiry),
	}}
	return nil
}

// BankSlipProcessor initiates bank-slip transactions by issuing the payable
// document's barcode and check-digit line.
type BankSlipProcessor struct{}

func NewBankSlipProcessor() *BankSlipProcessor {
	return &BankSlipProcessor{}
}

func (p *BankSlipProcessor) Initiate(_ context.Context, txn *models.Transaction, _ models.CreateRequest) error {
	barcode := codec.EncodeBankSlipBarcode(txn.Amount, txn.CreatedAt)

	txn.Status = models.StatusWaitingPayment
	txn.Payload = models.RailPayload{BankSlip: &models.BankSlipPayload{
		Barcode:        barcode,
		CheckDigitLine: codec.CheckDigitLine(barcode),
		DueDate:        txn.CreatedAt.AddDate(0, 0, bankSlipDueDays),
	}}
	return nil
}
