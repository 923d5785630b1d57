package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/valorapay/payment-gateway/internal/logger"
	"github.com/valorapay/payment-gateway/internal/models"
)

// webhookSignatureHeader carries the hex HMAC-SHA256 of the raw body.
const webhookSignatureHeader = "X-Webhook-Signature"

// WebhookApplier defines the interface that the service must implement.
type WebhookApplier interface {
	Apply(ctx context.Context, body []byte, signature string) error
}

// NewWebhookHandler returns an HTTP handler accepting signed rail-side
// settlement notifications.
// @Summary Apply a settlement webhook
// @Description Verifies the signature and applies the reported status through the guarded state machine. Unknown transactions are accepted and dropped.
// @Tags webhook
// @Accept json
// @Produce json
// @Param X-Webhook-Signature header string true "Hex HMAC-SHA256 of the raw body"
// @Success 200 {object} map[string]bool
// @Failure 401 {object} handlers.ErrorResponse "Invalid signature"
// @Router /webhook/settlement [post]
func NewWebhookHandler(svc WebhookApplier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			logger.Log.Errorw("failed to read webhook body", "error", err)
			verr := &models.ValidationError{}
			writeError(w, verr.Add("body", "could not be read"))
			return
		}

		if err := svc.Apply(r.Context(), body, r.Header.Get(webhookSignatureHeader)); err != nil {
			writeError(w, err)
			return
		}

		writeData(w, http.StatusOK, nil)
	}
}
