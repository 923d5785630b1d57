package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/valorapay/payment-gateway/internal/logger"
	"github.com/valorapay/payment-gateway/internal/models"
)

// TransactionCreator defines the interface that the service must implement.
type TransactionCreator interface {
	CreateTransaction(ctx context.Context, req models.CreateRequest) (*models.Transaction, error)
}

// CreateData is the rail-specific payload of a creation response
// swagger:model CreateData
type CreateData struct {
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
	PaymentMethod string `json:"payment_method"`

	// Card rail, approved only
	AuthorizationCode string `json:"authorization_code,omitempty"`
	CardLast4         string `json:"card_last4,omitempty"`
	CardBrand         string `json:"card_brand,omitempty"`

	// Card rail, declined only
	DeclineReason string `json:"decline_reason,omitempty"`

	// Instant-transfer rail
	SettlementKey  string     `json:"settlement_key,omitempty"`
	EncodedPayload string     `json:"encoded_payload,omitempty"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`

	// Bank-slip rail
	Barcode        string     `json:"barcode,omitempty"`
	CheckDigitLine string     `json:"check_digit_line,omitempty"`
	DueDate        *time.Time `json:"due_date,omitempty"`
}

func newCreateData(txn *models.Transaction) CreateData {
	data := CreateData{
		TransactionID: txn.ID,
		Status:        string(txn.Status),
		Amount:        txn.Amount.String(),
		Currency:      txn.Currency,
		PaymentMethod: txn.PaymentMethod,
		DeclineReason: txn.DeclineReason,
	}
	switch {
	case txn.Payload.Card != nil:
		data.AuthorizationCode = txn.AuthorizationCode
		data.CardLast4 = txn.Payload.Card.Last4
		data.CardBrand = txn.Payload.Card.Brand
	case txn.Payload.InstantTransfer != nil:
		data.SettlementKey = txn.Payload.InstantTransfer.SettlementKey
		data.EncodedPayload = txn.Payload.InstantTransfer.EncodedPayload
		data.ExpiresAt = &txn.Payload.InstantTransfer.ExpiresAt
	case txn.Payload.BankSlip != nil:
		data.Barcode = txn.Payload.BankSlip.Barcode
		data.CheckDigitLine = txn.Payload.BankSlip.CheckDigitLine
		data.DueDate = &txn.Payload.BankSlip.DueDate
	}
	return data
}

// NewCreatePaymentHandler returns an HTTP handler creating payment
// transactions. A declined card payment is a persisted outcome, not an
// error: it is answered with success=false and the decline detail.
// @Summary Create payment transaction
// @Description Validates the request, initiates the transaction on its rail and persists it.
// @Tags payment
// @Accept json
// @Produce json
// @Param request body models.CreateRequest true "Creation Request"
// @Success 200 {object} handlers.CreateData
// @Failure 400 {object} handlers.ErrorResponse "Validation failure or unsupported method"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /payment/create [post]
// @Security BearerAuth
func NewCreatePaymentHandler(svc TransactionCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode creation request", "error", err)
			verr := &models.ValidationError{}
			writeError(w, verr.Add("body", "must be a JSON creation request"))
			return
		}

		txn, err := svc.CreateTransaction(r.Context(), req)
		if err != nil {
			writeError(w, err)
			return
		}

		if txn.Status == models.StatusDeclined {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(struct {
				Success bool       `json:"success"`
				Error   string     `json:"error"`
				Data    CreateData `json:"data"`
			}{Success: false, Error: "payment declined", Data: newCreateData(txn)})
			return
		}

		writeData(w, http.StatusOK, newCreateData(txn))
	}
}
