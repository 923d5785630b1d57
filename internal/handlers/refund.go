package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/valorapay/payment-gateway/internal/logger"
	"github.com/valorapay/payment-gateway/internal/models"
)

// Refunder defines the interface that the service must implement.
type Refunder interface {
	Refund(ctx context.Context, id string, amount *decimal.Decimal) (*models.Refund, error)
}

// RefundRequest is the JSON body for refunding a transaction
// swagger:model RefundRequest
type RefundRequest struct {
	// Amount to refund; omitted means the full remaining refundable amount
	Amount string `json:"amount,omitempty"`
}

// RefundData is the created refund record
// swagger:model RefundData
type RefundData struct {
	RefundID      string    `json:"refund_id"`
	TransactionID string    `json:"transaction_id"`
	Amount        string    `json:"amount"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewRefundPaymentHandler returns an HTTP handler applying full or partial
// refunds. An empty body refunds the full remaining amount.
// @Summary Refund a transaction
// @Tags payment
// @Accept json
// @Produce json
// @Param transactionID path string true "Transaction ID"
// @Param request body handlers.RefundRequest false "Refund Request"
// @Success 200 {object} handlers.RefundData
// @Failure 400 {object} handlers.ErrorResponse "Invalid refund amount"
// @Failure 404 {object} handlers.ErrorResponse "Transaction not found"
// @Failure 409 {object} handlers.ErrorResponse "Refund illegal in current state or exceeds capacity"
// @Router /payment/{transactionID}/refund [post]
// @Security BearerAuth
func NewRefundPaymentHandler(svc Refunder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "transactionID")

		var amount *decimal.Decimal
		body, err := io.ReadAll(r.Body)
		if err == nil && len(strings.TrimSpace(string(body))) > 0 {
			var req RefundRequest
			if err := json.Unmarshal(body, &req); err != nil {
				logger.Log.Errorw("failed to decode refund request", "transaction_id", id, "error", err)
				verr := &models.ValidationError{}
				writeError(w, verr.Add("body", "must be a JSON refund request"))
				return
			}
			if req.Amount != "" {
				parsed, err := decimal.NewFromString(strings.ReplaceAll(req.Amount, ",", "."))
				if err != nil {
					verr := &models.ValidationError{}
					writeError(w, verr.Add("amount", "must be a fixed-point decimal"))
					return
				}
				amount = &parsed
			}
		}

		refund, err := svc.Refund(r.Context(), id, amount)
		if err != nil {
			writeError(w, err)
			return
		}

		writeData(w, http.StatusOK, RefundData{
			RefundID:      refund.ID,
			TransactionID: refund.TransactionID,
			Amount:        refund.Amount.String(),
			Status:        refund.Status,
			CreatedAt:     refund.CreatedAt,
		})
	}
}
