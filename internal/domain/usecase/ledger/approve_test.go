package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/aabinvest/vip-ledger/internal/domain/entity"
	errs "github.com/aabinvest/vip-ledger/internal/domain/error"
	persistencemocks "github.com/aabinvest/vip-ledger/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userWithPending builds a user holding one pending request and its
// mirrored pending ledger entry.
func userWithPending(balance int64, req *entity.Request) *entity.User {
	user := testUser(balance)
	user.AppendRequest(req)
	user.AppendTransaction(&entity.Transaction{
		ID:        "txn-1",
		UserID:    user.ID,
		RequestID: req.ID,
		Type:      string(req.Kind),
		Amount:    req.Amount,
		Status:    entity.TxPending,
	})
	return user
}

func TestApproveRecharge(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	type txKey struct{}
	txCtx := context.WithValue(ctx, txKey{}, "tx")

	t.Run("Credits the amount and settles the mirror entry", func(t *testing.T) {
		service, m := newTestService(t, fixedTime)
		user := userWithPending(2000, &entity.Request{
			ID: "req-1", UserID: "u-1", Kind: entity.KindRecharge, Amount: 10000, Status: entity.ReqPending,
		})
		txRepo := persistencemocks.NewMockUserRepository(t)

		m.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		m.uow.EXPECT().GetUserRepository(txCtx).Return(txRepo).Once()
		txRepo.EXPECT().GetByID(txCtx, "u-1").Return(user, nil).Once()
		txRepo.EXPECT().Save(txCtx, user).Return(nil).Once()
		m.uow.EXPECT().Commit(txCtx).Return(nil).Once()

		err := service.ApproveRecharge(ctx, "u-1", "req-1")

		require.NoError(t, err)
		assert.Equal(t, int64(12000), user.Balance())
		assert.Equal(t, entity.ReqApproved, user.Requests[0].Status)
		assert.Equal(t, entity.TxCompleted, user.Transactions[0].Status)
	})

	t.Run("Pays the inviter 15 percent inside the same unit of work", func(t *testing.T) {
		service, m := newTestService(t, fixedTime)
		referee := userWithPending(2000, &entity.Request{
			ID: "req-1", UserID: "u-1", Kind: entity.KindRecharge, Amount: 10000, Status: entity.ReqPending,
		})
		referee.InvitedBy = "bob@example.com"
		referee.HasUsedInvite = true

		inviter := &entity.User{ID: "u-2", Name: "Bob", Email: "bob@example.com"}
		inviter.SetBalance(2000)
		inviter.AddReferral("alice@example.com", 0, m.timeProv)

		txRepo := persistencemocks.NewMockUserRepository(t)

		m.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		m.uow.EXPECT().GetUserRepository(txCtx).Return(txRepo).Once()
		txRepo.EXPECT().GetByID(txCtx, "u-1").Return(referee, nil).Once()
		txRepo.EXPECT().Save(txCtx, referee).Return(nil).Once()
		txRepo.EXPECT().GetByEmail(txCtx, "bob@example.com").Return(inviter, nil).Once()
		m.idGen.EXPECT().NewID().Return("txn-bonus").Once()
		txRepo.EXPECT().Save(txCtx, inviter).Return(nil).Once()
		m.uow.EXPECT().Commit(txCtx).Return(nil).Once()

		err := service.ApproveRecharge(ctx, "u-1", "req-1")

		require.NoError(t, err)
		assert.Equal(t, int64(12000), referee.Balance())
		assert.Equal(t, int64(3500), inviter.Balance())
		assert.Equal(t, int64(1500), inviter.ReferralEarnings)
		assert.Equal(t, int64(1500), inviter.Referrals[0].Bonus)

		require.Len(t, inviter.Transactions, 1)
		assert.Equal(t, "referral bonus from alice@example.com", inviter.Transactions[0].Type)
		assert.Equal(t, int64(1500), inviter.Transactions[0].Amount)
		assert.Equal(t, entity.TxCompleted, inviter.Transactions[0].Status)
	})

	t.Run("Skips the bonus when the inviter no longer exists", func(t *testing.T) {
		service, m := newTestService(t, fixedTime)
		referee := userWithPending(2000, &entity.Request{
			ID: "req-1", UserID: "u-1", Kind: entity.KindRecharge, Amount: 10000, Status: entity.ReqPending,
		})
		referee.InvitedBy = "gone@example.com"

		txRepo := persistencemocks.NewMockUserRepository(t)

		m.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		m.uow.EXPECT().GetUserRepository(txCtx).Return(txRepo).Once()
		txRepo.EXPECT().GetByID(txCtx, "u-1").Return(referee, nil).Once()
		txRepo.EXPECT().Save(txCtx, referee).Return(nil).Once()
		txRepo.EXPECT().GetByEmail(txCtx, "gone@example.com").Return(nil, errs.ErrUserNotFound).Once()
		m.uow.EXPECT().Commit(txCtx).Return(nil).Once()

		err := service.ApproveRecharge(ctx, "u-1", "req-1")

		require.NoError(t, err)
		assert.Equal(t, int64(12000), referee.Balance())
	})

	t.Run("Rolls back when the user lookup fails", func(t *testing.T) {
		service, m := newTestService(t, fixedTime)
		txRepo := persistencemocks.NewMockUserRepository(t)

		m.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		m.uow.EXPECT().GetUserRepository(txCtx).Return(txRepo).Once()
		txRepo.EXPECT().GetByID(txCtx, "ghost").Return(nil, errs.ErrUserNotFound).Once()
		m.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		err := service.ApproveRecharge(ctx, "ghost", "req-1")

		assert.Equal(t, errs.ErrUserNotFound, err)
	})

	t.Run("Rolls back a second decision on the same request", func(t *testing.T) {
		service, m := newTestService(t, fixedTime)
		user := userWithPending(12000, &entity.Request{
			ID: "req-1", UserID: "u-1", Kind: entity.KindRecharge, Amount: 10000, Status: entity.ReqApproved,
		})
		txRepo := persistencemocks.NewMockUserRepository(t)

		m.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		m.uow.EXPECT().GetUserRepository(txCtx).Return(txRepo).Once()
		txRepo.EXPECT().GetByID(txCtx, "u-1").Return(user, nil).Once()
		m.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		err := service.ApproveRecharge(ctx, "u-1", "req-1")

		assert.ErrorIs(t, err, errs.ErrRequestDecided)
		assert.Equal(t, int64(12000), user.Balance())
	})
}

func TestRejectRecharge(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Settles request and mirror without a balance change", func(t *testing.T) {
		service, m := newTestService(t, fixedTime)
		user := userWithPending(2000, &entity.Request{
			ID: "req-1", UserID: "u-1", Kind: entity.KindRecharge, Amount: 10000, Status: entity.ReqPending,
		})

		m.userRepo.EXPECT().GetByID(mock.Anything, "u-1").Return(user, nil).Once()
		m.userRepo.EXPECT().Save(mock.Anything, user).Return(nil).Once()

		err := service.RejectRecharge(ctx, "u-1", "req-1")

		require.NoError(t, err)
		assert.Equal(t, int64(2000), user.Balance())
		assert.Equal(t, entity.ReqRejected, user.Requests[0].Status)
		assert.Equal(t, entity.TxRejected, user.Transactions[0].Status)
	})

	t.Run("Rejects a kind mismatch", func(t *testing.T) {
		service, m := newTestService(t, fixedTime)
		user := userWithPending(2000, &entity.Request{
			ID: "req-1", UserID: "u-1", Kind: entity.KindWithdrawal, Amount: 5000, Status: entity.ReqPending,
		})

		m.userRepo.EXPECT().GetByID(mock.Anything, "u-1").Return(user, nil).Once()

		err := service.RejectRecharge(ctx, "u-1", "req-1")

		assert.Equal(t, errs.ErrRequestNotFound, err)
	})
}

func TestApproveWithdrawal(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Debits the balance at approval time", func(t *testing.T) {
		service, m := newTestService(t, fixedTime)
		user := userWithPending(20000, &entity.Request{
			ID: "req-1", UserID: "u-1", Kind: entity.KindWithdrawal, Amount: 5000, Status: entity.ReqPending,
		})

		m.userRepo.EXPECT().GetByID(mock.Anything, "u-1").Return(user, nil).Once()
		m.userRepo.EXPECT().Save(mock.Anything, user).Return(nil).Once()

		err := service.ApproveWithdrawal(ctx, "u-1", "req-1")

		require.NoError(t, err)
		assert.Equal(t, int64(15000), user.Balance())
		assert.Equal(t, entity.ReqApproved, user.Requests[0].Status)
		assert.Equal(t, entity.TxCompleted, user.Transactions[0].Status)
	})

	t.Run("Leaves everything unchanged when funds ran out since submission", func(t *testing.T) {
		service, m := newTestService(t, fixedTime)
		user := userWithPending(3000, &entity.Request{
			ID: "req-1", UserID: "u-1", Kind: entity.KindWithdrawal, Amount: 5000, Status: entity.ReqPending,
		})

		m.userRepo.EXPECT().GetByID(mock.Anything, "u-1").Return(user, nil).Once()

		err := service.ApproveWithdrawal(ctx, "u-1", "req-1")

		assert.True(t, errs.IsInsufficientFundsError(err))
		assert.Equal(t, int64(3000), user.Balance())
		assert.Equal(t, entity.ReqPending, user.Requests[0].Status)
		assert.Equal(t, entity.TxPending, user.Transactions[0].Status)
	})
}

func TestRejectWithdrawal(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	service, m := newTestService(t, fixedTime)
	user := userWithPending(20000, &entity.Request{
		ID: "req-1", UserID: "u-1", Kind: entity.KindWithdrawal, Amount: 5000, Status: entity.ReqPending,
	})

	m.userRepo.EXPECT().GetByID(mock.Anything, "u-1").Return(user, nil).Once()
	m.userRepo.EXPECT().Save(mock.Anything, user).Return(nil).Once()

	err := service.RejectWithdrawal(ctx, "u-1", "req-1")

	require.NoError(t, err)
	assert.Equal(t, int64(20000), user.Balance())
	assert.Equal(t, entity.ReqRejected, user.Requests[0].Status)
	assert.Equal(t, entity.TxRejected, user.Transactions[0].Status)
}

func TestApproveVIP(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Activates the tier and restarts the cycle", func(t *testing.T) {
		service, m := newTestService(t, fixedTime)
		user := userWithPending(20000, &entity.Request{
			ID: "req-1", UserID: "u-1", Kind: entity.KindVIP, Amount: 30000,
			Level: 2, DaysRemaining: entity.CycleDays, Status: entity.ReqPending,
		})
		stale := fixedTime.Add(-10 * 24 * time.Hour)
		user.VIPLevel = 1
		user.VIPApprovedDate = &stale
		user.LastProfitDate = &stale
		user.VIPDaysCompleted = 9

		m.userRepo.EXPECT().GetByID(mock.Anything, "u-1").Return(user, nil).Once()
		m.userRepo.EXPECT().Save(mock.Anything, user).Return(nil).Once()

		err := service.ApproveVIP(ctx, "u-1", "req-1")

		require.NoError(t, err)
		assert.Equal(t, 2, user.VIPLevel)
		assert.Equal(t, int64(6000), user.DailyProfit)
		assert.Equal(t, fixedTime, *user.VIPApprovedDate)
		assert.Nil(t, user.LastProfitDate)
		assert.Equal(t, 0, user.VIPDaysCompleted)
		assert.Equal(t, entity.TxCompleted, user.Transactions[0].Status)

		// The price was debited at submission: approval moves no money.
		assert.Equal(t, int64(20000), user.Balance())
	})
}

func TestRejectVIP(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Refunds the price debited at submission", func(t *testing.T) {
		service, m := newTestService(t, fixedTime)
		user := userWithPending(20000, &entity.Request{
			ID: "req-1", UserID: "u-1", Kind: entity.KindVIP, Amount: 30000,
			Level: 2, DaysRemaining: entity.CycleDays, Status: entity.ReqPending,
		})

		m.userRepo.EXPECT().GetByID(mock.Anything, "u-1").Return(user, nil).Once()
		m.userRepo.EXPECT().Save(mock.Anything, user).Return(nil).Once()

		err := service.RejectVIP(ctx, "u-1", "req-1")

		require.NoError(t, err)
		assert.Equal(t, int64(50000), user.Balance())
		assert.Equal(t, entity.ReqRejected, user.Requests[0].Status)
		assert.Equal(t, entity.TxRefunded, user.Transactions[0].Status)
	})
}
