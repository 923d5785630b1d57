package facades

import (
	"context"
	"math/rand"
	"sync"

	"github.com/valorapay/payment-gateway/internal/logger"
	"github.com/valorapay/payment-gateway/internal/rails"
)

// SimulatedAcquirer is the sandbox implementation of the acquirer decision
// port. It approves a configurable share of authorizations using an injected
// randomness source, so tests can make it fully deterministic.
type SimulatedAcquirer struct {
	approvalRate float64

	mu  sync.Mutex // rand.Rand is not safe for concurrent use
	rnd *rand.Rand
}

// NewSimulatedAcquirer creates a simulated acquirer. approvalRate is the
// share of authorizations approved, in [0, 1].
func NewSimulatedAcquirer(approvalRate float64, rnd *rand.Rand) *SimulatedAcquirer {
	return &SimulatedAcquirer{approvalRate: approvalRate, rnd: rnd}
}

// Authorize decides one authorization.
func (a *SimulatedAcquirer) Authorize(_ context.Context, req rails.AuthorizationRequest) (rails.AuthorizationResult, error) {
	a.mu.Lock()
	roll := a.rnd.Float64()
	a.mu.Unlock()

	if roll < a.approvalRate {
		logger.Log.Infow("simulated acquirer approved authorization",
			"transaction_id", req.TransactionID, "card_token", req.CardToken)
		return rails.AuthorizationResult{Approved: true}, nil
	}

	logger.Log.Infow("simulated acquirer declined authorization",
		"transaction_id", req.TransactionID, "card_token", req.CardToken)
	return rails.AuthorizationResult{
		Approved:      false,
		DeclineReason: "card refused by issuing bank",
	}, nil
}
