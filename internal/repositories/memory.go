package repositories

import (
	"context"
	"sync"

	"github.com/valorapay/payment-gateway/internal/models"
)

// MemoryStore keeps transactions and refunds in process memory. It is the
// sandbox storage driver and the reference implementation of the keyed-store
// contract: every mutation of a single transaction goes through a per-id
// lock, so concurrent capture/refund/webhook calls on the same id serialize.
type MemoryStore struct {
	mu      sync.Mutex // guards the maps and the lock table
	txns    map[string]models.Transaction
	refunds map[string][]models.Refund
	locks   map[string]*sync.Mutex
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		txns:    make(map[string]models.Transaction),
		refunds: make(map[string][]models.Refund),
		locks:   make(map[string]*sync.Mutex),
	}
}

func (s *MemoryStore) keyLock(id string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[id]
	if !ok {
		l = &sync.Mutex{}
		s.locks[id] = l
	}
	return l
}

// Save persists a new transaction. Ids are never reused, so an existing id
// is an error.
func (s *MemoryStore) Save(_ context.Context, txn models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.txns[txn.ID]; ok {
		return models.ErrTransactionExists
	}
	s.txns[txn.ID] = cloneTransaction(txn)
	return nil
}

// Get returns a copy of the stored transaction.
func (s *MemoryStore) Get(_ context.Context, id string) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	txn, ok := s.txns[id]
	if !ok {
		return nil, models.ErrTransactionNotFound
	}
	out := cloneTransaction(txn)
	return &out, nil
}

// Update runs apply against the transaction under its per-id lock and
// persists the result only when apply succeeds. The returned transaction is
// a copy of the stored state.
func (s *MemoryStore) Update(_ context.Context, id string, apply func(*models.Transaction) error) (*models.Transaction, error) {
	lock := s.keyLock(id)
	lock.Lock()
	defer lock.Unlock()

	s.mu.Lock()
	stored, ok := s.txns[id]
	s.mu.Unlock()
	if !ok {
		return nil, models.ErrTransactionNotFound
	}

	working := cloneTransaction(stored)
	if err := apply(&working); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.txns[id] = cloneTransaction(working)
	s.mu.Unlock()

	return &working, nil
}

// SaveRefund records an immutable refund under its parent transaction.
func (s *MemoryStore) SaveRefund(_ context.Context, refund models.Refund) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refunds[refund.TransactionID] = append(s.refunds[refund.TransactionID], refund)
	return nil
}

// ListRefunds returns the refunds of a transaction in creation order.
func (s *MemoryStore) ListRefunds(_ context.Context, transactionID string) ([]models.Refund, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Refund, len(s.refunds[transactionID]))
	copy(out, s.refunds[transactionID])
	return out, nil
}

// cloneTransaction deep-copies the mutable parts so callers never share
// state with the store.
func cloneTransaction(txn models.Transaction) models.Transaction {
	out := txn
	if txn.Metadata != nil {
		out.Metadata = make(map[string]string, len(txn.Metadata))
		for k, v := range txn.Metadata {
			out.Metadata[k] = v
		}
	}
	if txn.Payload.Card != nil {
		card := *txn.Payload.Card
		out.Payload.Card = &card
	}
	if txn.Payload.InstantTransfer != nil {
		it := *txn.Payload.InstantTransfer
		out.Payload.InstantTransfer = &it
	}
	if txn.Payload.BankSlip != nil {
		bs := *txn.Payload.BankSlip
		out.Payload.BankSlip = &bs
	}
	if txn.CapturedAt != nil {
		at := *txn.CapturedAt
		out.CapturedAt = &at
	}
	if txn.PaidAt != nil {
		at := *txn.PaidAt
		out.PaidAt = &at
	}
	return out
}
