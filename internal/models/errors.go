package models

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors shared across services and repositories.
var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrTransactionExists   = errors.New("transaction already exists")
	ErrUnsupportedMethod   = errors.New("unsupported payment method")
	ErrInvalidSignature    = errors.New("invalid webhook signature")
)

// FieldError names a single violated constraint on a request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every violation found in a request, not only the
// first one.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add appends a violation and returns the receiver for chaining.
func (e *ValidationError) Add(field, message string) *ValidationError {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
	return e
}

// Empty reports whether no violations were collected.
func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

// ConflictError means the requested operation is illegal in the
// transaction's current state.
type ConflictError struct {
	Op     string
	Status Status
	Reason string
}

func (e *ConflictError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("cannot %s transaction in status %q: %s", e.Op, e.Status, e.Reason)
	}
	return fmt.Sprintf("cannot %s transaction in status %q", e.Op, e.Status)
}
