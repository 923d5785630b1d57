package models

// CardDetails is the raw card block of a creation request. Fields are kept
// as strings so the validator owns every parse and can report all
// violations together.
type CardDetails struct {
	Number     string `json:"number"`
	ExpMonth   string `json:"exp_month"`
	ExpYear    string `json:"exp_year"`
	CVC        string `json:"cvc"`
	HolderName string `json:"holder_name"`
}

// CreateRequest is a raw transaction creation request as received from the
// caller, before validation.
type CreateRequest struct {
	Amount        string            `json:"amount"`
	Currency      string            `json:"currency"`
	PaymentMethod string            `json:"payment_method"`
	Customer      string            `json:"customer"`
	Metadata      map[string]string `json:"metadata,omitempty"`
	Card          *CardDetails      `json:"card,omitempty"`
}
