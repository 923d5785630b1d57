package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/valorapay/payment-gateway/internal/models"
)

// TransactionCapturer defines the interface that the service must implement.
type TransactionCapturer interface {
	Capture(ctx context.Context, id string) (*models.Transaction, error)
}

// CaptureData is a successful capture response
// swagger:model CaptureData
type CaptureData struct {
	TransactionID string     `json:"transaction_id"`
	Status        string     `json:"status"`
	CapturedAt    *time.Time `json:"captured_at"`
}

// NewCapturePaymentHandler returns an HTTP handler settling approved card
// authorizations.
// @Summary Capture an approved transaction
// @Tags payment
// @Produce json
// @Param transactionID path string true "Transaction ID"
// @Success 200 {object} handlers.CaptureData
// @Failure 404 {object} handlers.ErrorResponse "Transaction not found"
// @Failure 409 {object} handlers.ErrorResponse "Transaction not capturable in its current state"
// @Router /payment/{transactionID}/capture [post]
// @Security BearerAuth
func NewCapturePaymentHandler(svc TransactionCapturer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "transactionID")

		txn, err := svc.Capture(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}

		writeData(w, http.StatusOK, CaptureData{
			TransactionID: txn.ID,
			Status:        string(txn.Status),
			CapturedAt:    txn.CapturedAt,
		})
	}
}
