package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/valorapay/payment-gateway/internal/models"
)

// ErrorResponse is the envelope returned for any failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Always false
	Success bool `json:"success"`

	// Error message
	Error string `json:"error"`

	// Field-level violations, present for validation failures only
	Details []models.FieldError `json:"details,omitempty"`
}

// successEnvelope wraps every successful payload.
type successEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

func writeData(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(successEnvelope{Success: true, Data: data})
}

// writeError maps the domain error taxonomy onto HTTP status codes. Internal
// failures leak no detail to the caller.
func writeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")

	var verr *models.ValidationError
	var conflict *models.ConflictError

	switch {
	case errors.As(err, &verr):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "validation failed", Details: verr.Fields})
	case errors.Is(err, models.ErrUnsupportedMethod):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "unsupported payment method"})
	case errors.Is(err, models.ErrTransactionNotFound):
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "transaction not found"})
	case errors.As(err, &conflict):
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(ErrorResponse{Error: conflict.Error()})
	case errors.Is(err, models.ErrInvalidSignature):
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid signature"})
	default:
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "internal server error"})
	}
}
