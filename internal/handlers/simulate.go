package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/valorapay/payment-gateway/internal/models"
)

// SettlementSimulator defines the interface that the service must implement.
type SettlementSimulator interface {
	SimulateSettlement(ctx context.Context, id string, rail models.Rail) (*models.Transaction, error)
}

// SimulateData is a successful settlement simulation response
// swagger:model SimulateData
type SimulateData struct {
	TransactionID string     `json:"transaction_id"`
	Status        string     `json:"status"`
	PaidAt        *time.Time `json:"paid_at"`
}

// NewSimulateSettlementHandler returns an HTTP handler marking async-rail
// transactions as paid. It is registered in the sandbox environment only.
// @Summary Simulate rail-side settlement (sandbox)
// @Tags payment
// @Produce json
// @Param rail path string true "Rail" Enums(instant_transfer, bank_slip)
// @Param transactionID path string true "Transaction ID"
// @Success 200 {object} handlers.SimulateData
// @Failure 400 {object} handlers.ErrorResponse "Unknown rail"
// @Failure 404 {object} handlers.ErrorResponse "Transaction not found"
// @Failure 409 {object} handlers.ErrorResponse "Transaction is on a different rail"
// @Router /payment/simulate/{rail}/{transactionID} [post]
func NewSimulateSettlementHandler(svc SettlementSimulator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rail := models.Rail(chi.URLParam(r, "rail"))
		if rail != models.RailInstantTransfer && rail != models.RailBankSlip {
			writeError(w, models.ErrUnsupportedMethod)
			return
		}

		id := chi.URLParam(r, "transactionID")
		txn, err := svc.SimulateSettlement(r.Context(), id, rail)
		if err != nil {
			writeError(w, err)
			return
		}

		writeData(w, http.StatusOK, SimulateData{
			TransactionID: txn.ID,
			Status:        string(txn.Status),
			PaidAt:        txn.PaidAt,
		})
	}
}
