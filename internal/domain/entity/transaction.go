package entity

import (
	"time"

	errs "github.com/aabinvest/vip-ledger/internal/domain/error"
	coreport "github.com/aabinvest/vip-ledger/internal/domain/port/core"
)

// TransactionStatus defines the lifecycle states of a ledger entry
type TransactionStatus string

const (
	TxPending   TransactionStatus = "pending"
	TxCompleted TransactionStatus = "completed"
	TxRejected  TransactionStatus = "rejected"
	TxRefunded  TransactionStatus = "refunded"
)

// Well-known transaction type labels. VIP purchase, daily profit and
// referral entries carry composed labels built by the ledger engine.
const (
	TxTypeBonus      = "bonus"
	TxTypeRecharge   = "recharge"
	TxTypeWithdrawal = "withdrawal"
)

// Transaction is one entry in a user's ledger history. Entries are
// append-only: once written, only the status may transition
// (pending -> completed | rejected | refunded).
type Transaction struct {
	ID        string            // Unique identifier
	UserID    string            // Owning user
	RequestID string            // Originating request, empty for direct credits
	Type      string            // Human-readable entry label
	Amount    int64             // Signed amount in whole currency units
	Date      time.Time         // When the entry was created
	Status    TransactionStatus // Current lifecycle state
}

// NewTransaction creates a ledger entry in the given status.
func NewTransaction(id, userID, txType string, amount int64, status TransactionStatus, timeProvider coreport.TimeProvider) (*Transaction, error) {
	if id == "" {
		return nil, errs.ErrInvalidTransactionID
	}
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}
	return &Transaction{
		ID:     id,
		UserID: userID,
		Type:   txType,
		Amount: amount,
		Date:   timeProvider.Now(),
		Status: status,
	}, nil
}

// IsPending reports whether the entry still awaits settlement.
func (t *Transaction) IsPending() bool {
	return t.Status == TxPending
}

// Complete settles a pending entry.
func (t *Transaction) Complete() error {
	return t.transition(TxCompleted)
}

// Reject marks a pending entry as rejected.
func (t *Transaction) Reject() error {
	return t.transition(TxRejected)
}

// Refund marks a pending entry as refunded.
func (t *Transaction) Refund() error {
	return t.transition(TxRefunded)
}

func (t *Transaction) transition(to TransactionStatus) error {
	if !t.IsPending() {
		return errs.ErrTransactionSettled
	}
	t.Status = to
	return nil
}
