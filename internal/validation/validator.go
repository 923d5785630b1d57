package validation

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/valorapay/payment-gateway/internal/models"
)

// ValidateCreate checks a creation request against the resolved payment
// method and returns the parsed amount. Every violation found is collected
// into a single *models.ValidationError rather than stopping at the first.
func ValidateCreate(req models.CreateRequest, method models.PaymentMethod) (decimal.Decimal, error) {
	verr := &models.ValidationError{}

	amount := validateAmount(req.Amount, method, verr)
	validateCurrency(req.Currency, method, verr)
	if strings.TrimSpace(req.Customer) == "" {
		verr.Add("customer", "is required")
	}
	if method.Rail == models.RailCard {
		validateCard(req.Card, verr)
	}

	if !verr.Empty() {
		return decimal.Zero, verr
	}
	return amount, nil
}

func validateAmount(raw string, method models.PaymentMethod, verr *models.ValidationError) decimal.Decimal {
	if strings.TrimSpace(raw) == "" {
		verr.Add("amount", "is required")
		return decimal.Zero
	}
	// Accept comma as decimal separator the way local callers write amounts.
	amount, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", "."))
	if err != nil {
		verr.Add("amount", "must be a fixed-point decimal")
		return decimal.Zero
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		verr.Add("amount", "must be greater than zero")
		return decimal.Zero
	}
	if amount.LessThan(method.MinAmount) || amount.GreaterThan(method.MaxAmount) {
		verr.Add("amount", "is outside the bounds of method "+method.Kind)
	}
	return amount
}

func validateCurrency(currency string, method models.PaymentMethod, verr *models.ValidationError) {
	if strings.TrimSpace(currency) == "" {
		verr.Add("currency", "is required")
		return
	}
	for _, c := range method.Currencies {
		if c == currency {
			return
		}
	}
	verr.Add("currency", "is not supported by method "+method.Kind)
}

func validateCard(card *models.CardDetails, verr *models.ValidationError) {
	if card == nil {
		verr.Add("card", "is required for card payments")
		return
	}
	if strings.TrimSpace(card.Number) == "" {
		verr.Add("card.number", "is required")
	} else if !ValidCardNumber(card.Number) {
		verr.Add("card.number", "fails checksum validation")
	}
	if strings.TrimSpace(card.ExpMonth) == "" {
		verr.Add("card.exp_month", "is required")
	}
	if strings.TrimSpace(card.ExpYear) == "" {
		verr.Add("card.exp_year", "is required")
	}
	if strings.TrimSpace(card.CVC) == "" {
		verr.Add("card.cvc", "is required")
	}
	if strings.TrimSpace(card.HolderName) == "" {
		verr.Add("card.holder_name", "is required")
	}
}
