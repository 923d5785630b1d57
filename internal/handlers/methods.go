package handlers

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/valorapay/payment-gateway/internal/models"
)

// MethodLister defines the interface that the service must implement.
type MethodLister interface {
	ListPaymentMethods(ctx context.Context) []models.PaymentMethod
}

// MethodInfo describes one payment method of the catalog
// swagger:model MethodInfo
type MethodInfo struct {
	Enabled        bool            `json:"enabled"`
	Brands         []string        `json:"brands,omitempty"`
	Currencies     []string        `json:"currencies"`
	MinAmount      decimal.Decimal `json:"min_amount"`
	MaxAmount      decimal.Decimal `json:"max_amount"`
	ProcessingTime string          `json:"processing_time"`
	ExpirationDays int             `json:"expiration_days,omitempty"`
	Fees           models.Fees     `json:"fees"`
}

// NewPaymentMethodsHandler returns an HTTP handler serving the static
// payment method catalog.
// @Summary List payment methods
// @Description Returns the available payment methods with amount bounds, fees and processing times.
// @Tags payment
// @Produce json
// @Success 200 {object} map[string]handlers.MethodInfo
// @Router /payment/methods [get]
func NewPaymentMethodsHandler(svc MethodLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		methods := svc.ListPaymentMethods(r.Context())

		data := make(map[string]MethodInfo, len(methods))
		for _, m := range methods {
			data[m.Kind] = MethodInfo{
				Enabled:        m.Enabled,
				Brands:         m.Brands,
				Currencies:     m.Currencies,
				MinAmount:      m.MinAmount,
				MaxAmount:      m.MaxAmount,
				ProcessingTime: m.ProcessingTime,
				ExpirationDays: m.ExpirationDays,
				Fees:           m.Fees,
			}
		}

		writeData(w, http.StatusOK, data)
	}
}
