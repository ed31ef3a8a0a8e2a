package entity

import (
	"encoding/json"
	"testing"
	"time"

	errs "github.com/aabinvest/vip-ledger/internal/domain/error"
	coremocks "github.com/aabinvest/vip-ledger/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t *testing.T, at time.Time) *coremocks.MockTimeProvider {
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(at).Maybe()
	return mockTime
}

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Seeds the signup bonus", func(t *testing.T) {
		mockTime := fixedClock(t, fixedTime)

		user, err := NewUser("u-1", "Alice", "alice@example.com", "0700000000", "secret", "4821", mockTime)

		require.NoError(t, err)
		assert.Equal(t, SignupBonus, user.Balance())
		assert.Equal(t, "4821", user.InvitationCode)
		assert.Equal(t, fixedTime, user.CreatedAt)
	})

	t.Run("Rejects empty ID", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		user, err := NewUser("", "Alice", "alice@example.com", "", "secret", "4821", mockTime)

		assert.Nil(t, user)
		assert.Equal(t, errs.ErrInvalidUserID, err)
	})

	t.Run("Rejects empty email", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		user, err := NewUser("u-1", "Alice", "", "", "secret", "4821", mockTime)

		assert.Nil(t, user)
		assert.Equal(t, errs.ErrInvalidEmail, err)
	})
}

func TestUserBalanceMutations(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Credit adds to balance", func(t *testing.T) {
		mockTime := fixedClock(t, fixedTime)
		user := &User{ID: "u-1"}
		user.SetBalance(1000)

		user.Credit(500, mockTime)

		assert.Equal(t, int64(1500), user.Balance())
		assert.Equal(t, fixedTime, user.UpdatedAt)
	})

	t.Run("Debit subtracts when covered", func(t *testing.T) {
		mockTime := fixedClock(t, fixedTime)
		user := &User{ID: "u-1"}
		user.SetBalance(1000)

		err := user.Debit(400, mockTime)

		require.NoError(t, err)
		assert.Equal(t, int64(600), user.Balance())
	})

	t.Run("Debit fails on shortfall and leaves balance intact", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		user := &User{ID: "u-1"}
		user.SetBalance(300)

		err := user.Debit(400, mockTime)

		assert.Equal(t, errs.ErrInsufficientFunds, err)
		assert.Equal(t, int64(300), user.Balance())
	})

	t.Run("CanAfford is inclusive", func(t *testing.T) {
		user := &User{ID: "u-1"}
		user.SetBalance(300)

		assert.True(t, user.CanAfford(300))
		assert.False(t, user.CanAfford(301))
	})
}

func TestUserVIPLifecycle(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("ActivateVIP restarts the cycle", func(t *testing.T) {
		mockTime := fixedClock(t, fixedTime)
		stale := fixedTime.Add(-40 * 24 * time.Hour)
		user := &User{
			ID:               "u-1",
			VIPLevel:         1,
			VIPApprovedDate:  &stale,
			LastProfitDate:   &stale,
			VIPDaysCompleted: 39,
		}

		tier, err := TierForLevel(3)
		require.NoError(t, err)
		user.ActivateVIP(tier, mockTime)

		assert.Equal(t, 3, user.VIPLevel)
		assert.Equal(t, tier.DailyProfit, user.DailyProfit)
		assert.Equal(t, fixedTime, *user.VIPApprovedDate)
		assert.Nil(t, user.LastProfitDate)
		assert.Equal(t, 0, user.VIPDaysCompleted)
		assert.True(t, user.HasActiveVIP())
	})

	t.Run("AccrueDailyProfit credits and advances the counter", func(t *testing.T) {
		mockTime := fixedClock(t, fixedTime)
		approved := fixedTime.Add(-24 * time.Hour)
		user := &User{
			ID:              "u-1",
			VIPLevel:        2,
			DailyProfit:     6000,
			VIPApprovedDate: &approved,
		}
		user.SetBalance(1000)

		profit := user.AccrueDailyProfit(mockTime)

		assert.Equal(t, int64(6000), profit)
		assert.Equal(t, int64(7000), user.Balance())
		assert.Equal(t, int64(6000), user.TotalEarnings)
		assert.Equal(t, 1, user.VIPDaysCompleted)
		assert.Equal(t, fixedTime, *user.LastProfitDate)
	})

	t.Run("CompleteVIPCycle deactivates the subscription", func(t *testing.T) {
		mockTime := fixedClock(t, fixedTime)
		approved := fixedTime.Add(-61 * 24 * time.Hour)
		user := &User{
			ID:              "u-1",
			VIPLevel:        2,
			DailyProfit:     6000,
			VIPApprovedDate: &approved,
		}

		user.CompleteVIPCycle(mockTime)

		assert.Equal(t, 0, user.VIPLevel)
		assert.Equal(t, int64(0), user.DailyProfit)
		assert.Equal(t, CycleDays, user.VIPDaysCompleted)
		assert.False(t, user.HasActiveVIP())
	})
}

func TestUserReferrals(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("CreditReferralBonus folds into the matching record", func(t *testing.T) {
		mockTime := fixedClock(t, fixedTime)
		user := &User{ID: "inviter"}
		user.SetBalance(2000)
		user.AddReferral("referee@example.com", 0, mockTime)

		user.CreditReferralBonus("referee@example.com", 1500, mockTime)

		assert.Equal(t, int64(3500), user.Balance())
		assert.Equal(t, int64(1500), user.ReferralEarnings)
		require.Len(t, user.Referrals, 1)
		assert.Equal(t, int64(1500), user.Referrals[0].Bonus)
		assert.Equal(t, fixedTime, *user.Referrals[0].LastBonusDate)
	})

	t.Run("CreditReferralBonus without a record still credits", func(t *testing.T) {
		mockTime := fixedClock(t, fixedTime)
		user := &User{ID: "inviter"}
		user.SetBalance(2000)

		user.CreditReferralBonus("ghost@example.com", 300, mockTime)

		assert.Equal(t, int64(2300), user.Balance())
		assert.Equal(t, int64(300), user.ReferralEarnings)
		assert.Empty(t, user.Referrals)
	})
}

func TestUserLookups(t *testing.T) {
	t.Run("FindRequest by ID", func(t *testing.T) {
		user := &User{ID: "u-1"}
		user.AppendRequest(&Request{ID: "r-1", Kind: KindRecharge, Status: ReqPending})
		user.AppendRequest(&Request{ID: "r-2", Kind: KindWithdrawal, Status: ReqPending})

		req, err := user.FindRequest("r-2")
		require.NoError(t, err)
		assert.Equal(t, KindWithdrawal, req.Kind)

		_, err = user.FindRequest("r-404")
		assert.Equal(t, errs.ErrRequestNotFound, err)
	})

	t.Run("FindTransactionByRequest matches the mirror entry", func(t *testing.T) {
		user := &User{ID: "u-1"}
		user.AppendTransaction(&Transaction{ID: "t-1", RequestID: "r-1", Amount: 10000})
		user.AppendTransaction(&Transaction{ID: "t-2", RequestID: "r-2", Amount: 10000})

		txn, err := user.FindTransactionByRequest("r-2")
		require.NoError(t, err)
		assert.Equal(t, "t-2", txn.ID)

		_, err = user.FindTransactionByRequest("r-404")
		assert.Equal(t, errs.ErrTransactionNotFound, err)
	})

	t.Run("PendingRequests filters by kind and status", func(t *testing.T) {
		user := &User{ID: "u-1"}
		user.AppendRequest(&Request{ID: "r-1", Kind: KindRecharge, Status: ReqPending})
		user.AppendRequest(&Request{ID: "r-2", Kind: KindRecharge, Status: ReqApproved})
		user.AppendRequest(&Request{ID: "r-3", Kind: KindVIP, Status: ReqPending})

		pending := user.PendingRequests(KindRecharge)
		require.Len(t, pending, 1)
		assert.Equal(t, "r-1", pending[0].ID)
	})
}

func TestUserJSONRoundTrip(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := fixedClock(t, fixedTime)

	user, err := NewUser("u-1", "Alice", "alice@example.com", "0700000000", "secret", "4821", mockTime)
	require.NoError(t, err)
	user.Credit(5000, mockTime)
	user.AppendTransaction(&Transaction{ID: "t-1", UserID: "u-1", Type: TxTypeBonus, Amount: 2000, Date: fixedTime, Status: TxCompleted})

	data, err := json.Marshal(user)
	require.NoError(t, err)

	var restored User
	require.NoError(t, json.Unmarshal(data, &restored))

	assert.Equal(t, user.Balance(), restored.Balance())
	assert.Equal(t, user.Email, restored.Email)
	require.Len(t, restored.Transactions, 1)
	assert.Equal(t, int64(2000), restored.Transactions[0].Amount)
}
