package models

import "github.com/shopspring/decimal"

// Fees is the fee model of a payment method: a percentage of the amount plus
// a fixed component.
type Fees struct {
	Percentage decimal.Decimal `json:"percentage"`
	Fixed      decimal.Decimal `json:"fixed"`
}

// PaymentMethod describes one entry of the static method catalog. Kind is
// what callers put in creation requests; Rail is the settlement mechanism the
// method runs on.
type PaymentMethod struct {
	Kind           string          `json:"kind"`
	Rail           Rail            `json:"rail"`
	Enabled        bool            `json:"enabled"`
	Brands         []string        `json:"brands,omitempty"`
	Currencies     []string        `json:"currencies"`
	MinAmount      decimal.Decimal `json:"min_amount"`
	MaxAmount      decimal.Decimal `json:"max_amount"`
	ProcessingTime string          `json:"processing_time"`
	ExpirationDays int             `json:"expiration_days,omitempty"`
	Fees           Fees            `json:"fees"`
}

var cardCurrencies = []string{"BRL", "USD", "EUR"}

// The domestic async rails settle in local currency only.
var domesticCurrencies = []string{"BRL"}

var catalog = []PaymentMethod{
	{
		Kind:           "credit_card",
		Rail:           RailCard,
		Enabled:        true,
		Brands:         []string{"visa", "mastercard", "elo", "amex"},
		Currencies:     cardCurrencies,
		MinAmount:      decimal.NewFromFloat(1.00),
		MaxAmount:      decimal.NewFromFloat(50000.00),
		ProcessingTime: "immediate",
		Fees:           Fees{Percentage: decimal.NewFromFloat(3.99), Fixed: decimal.NewFromFloat(0.39)},
	},
	{
		Kind:           "debit_card",
		Rail:           RailCard,
		Enabled:        true,
		Brands:         []string{"visa", "mastercard", "elo"},
		Currencies:     cardCurrencies,
		MinAmount:      decimal.NewFromFloat(1.00),
		MaxAmount:      decimal.NewFromFloat(10000.00),
		ProcessingTime: "immediate",
		Fees:           Fees{Percentage: decimal.NewFromFloat(2.99), Fixed: decimal.NewFromFloat(0.39)},
	},
	{
		Kind:           "instant_transfer",
		Rail:           RailInstantTransfer,
		Enabled:        true,
		Currencies:     domesticCurrencies,
		MinAmount:      decimal.NewFromFloat(0.01),
		MaxAmount:      decimal.NewFromFloat(100000.00),
		ProcessingTime: "immediate",
		Fees:           Fees{Percentage: decimal.NewFromFloat(0.99), Fixed: decimal.Zero},
	},
	{
		Kind:           "bank_slip",
		Rail:           RailBankSlip,
		Enabled:        true,
		Currencies:     domesticCurrencies,
		MinAmount:      decimal.NewFromFloat(5.00),
		MaxAmount:      decimal.NewFromFloat(50000.00),
		ProcessingTime: "1-2 business days",
		ExpirationDays: 3,
		Fees:           Fees{Percentage: decimal.Zero, Fixed: decimal.NewFromFloat(3.50)},
	},
}

// PaymentMethods returns the static method catalog.
func PaymentMethods() []PaymentMethod {
	out := make([]PaymentMethod, len(catalog))
	copy(out, catalog)
	return out
}

// MethodByKind looks a catalog entry up by its kind.
func MethodByKind(kind string) (PaymentMethod, bool) {
	for _, m := range catalog {
		if m.Kind == kind && m.Enabled {
			return m, true
		}
	}
	return PaymentMethod{}, false
}
