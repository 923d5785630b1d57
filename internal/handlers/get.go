package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/valorapay/payment-gateway/internal/models"
)

// TransactionGetter defines the interface that the service must implement.
type TransactionGetter interface {
	GetTransaction(ctx context.Context, id string) (*models.Transaction, error)
}

// TransactionSummary is the status view of a transaction
// swagger:model TransactionSummary
type TransactionSummary struct {
	TransactionID string     `json:"transaction_id"`
	Status        string     `json:"status"`
	Amount        string     `json:"amount"`
	Currency      string     `json:"currency"`
	PaymentMethod string     `json:"payment_method"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	CapturedAt    *time.Time `json:"captured_at,omitempty"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
}

// NewGetPaymentHandler returns an HTTP handler serving transaction status.
// @Summary Get transaction status
// @Tags payment
// @Produce json
// @Param transactionID path string true "Transaction ID"
// @Success 200 {object} handlers.TransactionSummary
// @Failure 404 {object} handlers.ErrorResponse "Transaction not found"
// @Router /payment/{transactionID} [get]
// @Security BearerAuth
func NewGetPaymentHandler(svc TransactionGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "transactionID")

		txn, err := svc.GetTransaction(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}

		writeData(w, http.StatusOK, TransactionSummary{
			TransactionID: txn.ID,
			Status:        string(txn.Status),
			Amount:        txn.Amount.String(),
			Currency:      txn.Currency,
			PaymentMethod: txn.PaymentMethod,
			CreatedAt:     txn.CreatedAt,
			UpdatedAt:     txn.UpdatedAt,
			CapturedAt:    txn.CapturedAt,
			PaidAt:        txn.PaidAt,
		})
	}
}
