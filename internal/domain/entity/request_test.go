package entity

import (
	"testing"
	"time"

	errs "github.com/aabinvest/vip-ledger/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequests(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Recharge carries the proof reference", func(t *testing.T) {
		mockTime := fixedClock(t, fixedTime)

		req, err := NewRechargeRequest("r-1", "u-1", 10000, "txn-ref-99", mockTime)

		require.NoError(t, err)
		assert.Equal(t, KindRecharge, req.Kind)
		assert.Equal(t, ReqPending, req.Status)
		assert.Equal(t, "txn-ref-99", req.ProofRef)
		assert.Equal(t, fixedTime, req.Date)
	})

	t.Run("Withdrawal carries the payout destination", func(t *testing.T) {
		mockTime := fixedClock(t, fixedTime)

		req, err := NewWithdrawalRequest("r-2", "u-1", 5000, "0711000000", "mtn", mockTime)

		require.NoError(t, err)
		assert.Equal(t, KindWithdrawal, req.Kind)
		assert.Equal(t, "0711000000", req.Phone)
		assert.Equal(t, "mtn", req.Network)
	})

	t.Run("VIP snapshots the tier and full cycle length", func(t *testing.T) {
		mockTime := fixedClock(t, fixedTime)
		tier, err := TierForLevel(2)
		require.NoError(t, err)

		req, err := NewVIPRequest("r-3", "u-1", tier, mockTime)

		require.NoError(t, err)
		assert.Equal(t, KindVIP, req.Kind)
		assert.Equal(t, tier.Price, req.Amount)
		assert.Equal(t, 2, req.Level)
		assert.Equal(t, CycleDays, req.DaysRemaining)
	})

	t.Run("Rejects missing identifiers", func(t *testing.T) {
		mockTime := fixedClock(t, fixedTime)

		_, err := NewRechargeRequest("", "u-1", 10000, "", mockTime)
		assert.Equal(t, errs.ErrInvalidRequestID, err)

		_, err = NewRechargeRequest("r-1", "", 10000, "", mockTime)
		assert.Equal(t, errs.ErrInvalidUserID, err)
	})
}

func TestRequestDecision(t *testing.T) {
	t.Run("Approve settles a pending request once", func(t *testing.T) {
		req := &Request{ID: "r-1", Status: ReqPending}

		require.NoError(t, req.Approve())
		assert.Equal(t, ReqApproved, req.Status)

		assert.Equal(t, errs.ErrRequestDecided, req.Approve())
		assert.Equal(t, errs.ErrRequestDecided, req.Reject())
	})

	t.Run("Reject settles a pending request once", func(t *testing.T) {
		req := &Request{ID: "r-1", Status: ReqPending}

		require.NoError(t, req.Reject())
		assert.Equal(t, ReqRejected, req.Status)

		assert.Equal(t, errs.ErrRequestDecided, req.Approve())
	})
}

func TestTransactionTransitions(t *testing.T) {
	t.Run("Pending entries settle exactly once", func(t *testing.T) {
		txn := &Transaction{ID: "t-1", Status: TxPending}

		require.NoError(t, txn.Complete())
		assert.Equal(t, TxCompleted, txn.Status)

		assert.Equal(t, errs.ErrTransactionSettled, txn.Reject())
		assert.Equal(t, errs.ErrTransactionSettled, txn.Refund())
	})

	t.Run("Refund only applies to pending entries", func(t *testing.T) {
		txn := &Transaction{ID: "t-1", Status: TxPending}

		require.NoError(t, txn.Refund())
		assert.Equal(t, TxRefunded, txn.Status)
	})
}
