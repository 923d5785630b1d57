package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is the lifecycle state of a transaction.
type Status string

const (
	StatusPending           Status = "pending"
	StatusApproved          Status = "approved"
	StatusDeclined          Status = "declined"
	StatusWaitingPayment    Status = "waiting_payment"
	StatusPaid              Status = "paid"
	StatusCaptured          Status = "captured"
	StatusRefunded          Status = "refunded"
	StatusPartiallyRefunded Status = "partially_refunded"
)

// Terminal reports whether no further transition of any kind is possible.
// partially_refunded still accepts refunds while capacity remains, so it is
// not terminal here.
func (s Status) Terminal() bool {
	return s == StatusDeclined || s == StatusRefunded
}

// settlementPath is the forward-only status ladder a rail-side settlement
// update may walk. The card rail settles synchronously and has none.
func settlementPath(r Rail) []Status {
	switch r {
	case RailInstantTransfer, RailBankSlip:
		return []Status{StatusPending, StatusWaitingPayment, StatusPaid}
	default:
		return nil
	}
}

// Capturable reports whether the transaction is awaiting capture.
func (t *Transaction) Capturable() bool {
	return t.Status == StatusApproved
}

// Refundable reports whether a refund may be applied in the current state.
func (t *Transaction) Refundable() bool {
	switch t.Status {
	case StatusApproved, StatusCaptured, StatusPaid, StatusPartiallyRefunded:
		return true
	}
	return false
}

// Capture settles a previously approved card authorization. Any other state
// is a conflict.
func (t *Transaction) Capture(at time.Time) error {
	if !t.Capturable() {
		return &ConflictError{Op: "capture", Status: t.Status}
	}
	t.Status = StatusCaptured
	t.CapturedAt = &at
	t.UpdatedAt = at
	return nil
}

// ApplyRefund records a refund of the given amount against the transaction.
// The amount must not exceed the remaining refundable capacity; an exact
// match of the remainder moves the transaction to refunded, anything less to
// partially_refunded.
func (t *Transaction) ApplyRefund(amount decimal.Decimal, at time.Time) error {
	if !t.Refundable() {
		return &ConflictError{Op: "refund", Status: t.Status}
	}
	if amount.GreaterThan(t.RemainingRefundable()) {
		return &ConflictError{Op: "refund", Status: t.Status, Reason: "amount exceeds remaining refundable amount"}
	}
	t.RefundedAmount = t.RefundedAmount.Add(amount)
	if t.RefundedAmount.Equal(t.Amount) {
		t.Status = StatusRefunded
	} else {
		t.Status = StatusPartiallyRefunded
	}
	t.UpdatedAt = at
	return nil
}

// AdvanceSettlement moves the transaction forward along its rail's
// settlement path. Re-applying the current status, an earlier one, or a
// status the rail never reaches is a no-op, so at-least-once and out-of-order
// delivery cannot corrupt state. It reports whether anything changed.
func (t *Transaction) AdvanceSettlement(target Status, at time.Time) (bool, error) {
	path := settlementPath(t.Rail)
	if path == nil {
		return false, &ConflictError{Op: "settlement", Status: t.Status, Reason: "rail settles synchronously"}
	}

	targetIdx := indexOf(path, target)
	if targetIdx < 0 {
		return false, nil
	}
	currentIdx := indexOf(path, t.Status)
	if currentIdx < 0 {
		// Already past settlement (refunded states); nothing to move.
		return false, nil
	}
	if targetIdx <= currentIdx {
		return false, nil
	}

	t.Status = target
	if target == StatusPaid {
		t.PaidAt = &at
	}
	t.UpdatedAt = at
	return true, nil
}

func indexOf(path []Status, s Status) int {
	for i, v := range path {
		if v == s {
			return i
		}
	}
	return -1
}
