package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/aabinvest/vip-ledger/internal/domain/entity"
	errs "github.com/aabinvest/vip-ledger/internal/domain/error"
	coremocks "github.com/aabinvest/vip-ledger/mocks/port/core"
	persistencemocks "github.com/aabinvest/vip-ledger/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serviceMocks struct {
	uow      *persistencemocks.MockUnitOfWork
	userRepo *persistencemocks.MockUserRepository
	idGen    *coremocks.MockIDGenerator
	timeProv *coremocks.MockTimeProvider
	logger   *coremocks.MockLogger
}

func newTestService(t *testing.T, at time.Time) (*Service, *serviceMocks) {
	m := &serviceMocks{
		uow:      persistencemocks.NewMockUnitOfWork(t),
		userRepo: persistencemocks.NewMockUserRepository(t),
		idGen:    coremocks.NewMockIDGenerator(t),
		timeProv: coremocks.NewMockTimeProvider(t),
		logger:   coremocks.NewMockLogger(t),
	}
	m.timeProv.EXPECT().Now().Return(at).Maybe()
	m.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return NewService(m.uow, m.userRepo, m.idGen, m.timeProv, m.logger), m
}

func testUser(balance int64) *entity.User {
	user := &entity.User{ID: "u-1", Name: "Alice", Email: "alice@example.com"}
	user.SetBalance(balance)
	return user
}

func TestSubmitRecharge(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Appends a pending request with a mirrored ledger entry", func(t *testing.T) {
		service, m := newTestService(t, fixedTime)
		user := testUser(2000)

		m.userRepo.EXPECT().GetByID(mock.Anything, "u-1").Return(user, nil).Once()
		m.idGen.EXPECT().NewID().Return("req-1").Once()
		m.idGen.EXPECT().NewID().Return("txn-1").Once()
		m.userRepo.EXPECT().Save(mock.Anything, user).Return(nil).Once()

		req, err := service.SubmitRecharge(ctx, "u-1", 10000, "proof-77")

		require.NoError(t, err)
		assert.Equal(t, "req-1", req.ID)
		assert.Equal(t, entity.KindRecharge, req.Kind)
		assert.Equal(t, entity.ReqPending, req.Status)
		assert.Equal(t, "proof-77", req.ProofRef)

		// Balance stays untouched until approval.
		assert.Equal(t, int64(2000), user.Balance())

		require.Len(t, user.Transactions, 1)
		txn := user.Transactions[0]
		assert.Equal(t, "req-1", txn.RequestID)
		assert.Equal(t, int64(10000), txn.Amount)
		assert.Equal(t, entity.TxPending, txn.Status)
	})

	t.Run("Rejects amounts below the floor without touching the store", func(t *testing.T) {
		service, _ := newTestService(t, fixedTime)

		req, err := service.SubmitRecharge(ctx, "u-1", 9999, "proof-77")

		assert.Nil(t, req)
		assert.True(t, errs.IsValidationError(err))
	})

	t.Run("Propagates a missing user", func(t *testing.T) {
		service, m := newTestService(t, fixedTime)
		m.userRepo.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, errs.ErrUserNotFound).Once()

		_, err := service.SubmitRecharge(ctx, "ghost", 10000, "")

		assert.Equal(t, errs.ErrUserNotFound, err)
	})
}

func TestSubmitWithdrawal(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Appends a pending request with a negative mirror entry", func(t *testing.T) {
		service, m := newTestService(t, fixedTime)
		user := testUser(20000)

		m.userRepo.EXPECT().GetByID(mock.Anything, "u-1").Return(user, nil).Once()
		m.idGen.EXPECT().NewID().Return("req-1").Once()
		m.idGen.EXPECT().NewID().Return("txn-1").Once()
		m.userRepo.EXPECT().Save(mock.Anything, user).Return(nil).Once()

		req, err := service.SubmitWithdrawal(ctx, "u-1", 5000, "0711000000", "mtn")

		require.NoError(t, err)
		assert.Equal(t, entity.KindWithdrawal, req.Kind)
		assert.Equal(t, "mtn", req.Network)

		// No reservation: the debit happens at approval.
		assert.Equal(t, int64(20000), user.Balance())

		require.Len(t, user.Transactions, 1)
		assert.Equal(t, int64(-5000), user.Transactions[0].Amount)
		assert.Equal(t, entity.TxPending, user.Transactions[0].Status)
	})

	t.Run("Rejects amounts outside the bounds", func(t *testing.T) {
		service, _ := newTestService(t, fixedTime)

		for _, amount := range []int64{4999, 2000001} {
			_, err := service.SubmitWithdrawal(ctx, "u-1", amount, "0711000000", "mtn")
			assert.True(t, errs.IsValidationError(err))
		}
	})

	t.Run("Rejects a request the balance cannot cover", func(t *testing.T) {
		service, m := newTestService(t, fixedTime)
		user := testUser(4000)

		m.userRepo.EXPECT().GetByID(mock.Anything, "u-1").Return(user, nil).Once()

		_, err := service.SubmitWithdrawal(ctx, "u-1", 5000, "0711000000", "mtn")

		assert.True(t, errs.IsInsufficientFundsError(err))
		assert.Empty(t, user.Requests)
	})
}

func TestSubmitVIPPurchase(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Debits the tier price immediately", func(t *testing.T) {
		service, m := newTestService(t, fixedTime)
		user := testUser(50000)

		m.userRepo.EXPECT().GetByID(mock.Anything, "u-1").Return(user, nil).Once()
		m.idGen.EXPECT().NewID().Return("req-1").Once()
		m.idGen.EXPECT().NewID().Return("txn-1").Once()
		m.userRepo.EXPECT().Save(mock.Anything, user).Return(nil).Once()

		req, err := service.SubmitVIPPurchase(ctx, "u-1", 2)

		require.NoError(t, err)
		assert.Equal(t, entity.KindVIP, req.Kind)
		assert.Equal(t, 2, req.Level)
		assert.Equal(t, int64(30000), req.Amount)

		assert.Equal(t, int64(20000), user.Balance())

		require.Len(t, user.Transactions, 1)
		assert.Equal(t, "VIP 2 purchase", user.Transactions[0].Type)
		assert.Equal(t, int64(-30000), user.Transactions[0].Amount)
		assert.Equal(t, entity.TxPending, user.Transactions[0].Status)
	})

	t.Run("Rejects an unknown tier level", func(t *testing.T) {
		service, _ := newTestService(t, fixedTime)

		_, err := service.SubmitVIPPurchase(ctx, "u-1", 11)

		assert.ErrorIs(t, err, errs.ErrInvalidVIPLevel)
	})

	t.Run("Rejects a purchase the balance cannot cover", func(t *testing.T) {
		service, m := newTestService(t, fixedTime)
		user := testUser(9999)

		m.userRepo.EXPECT().GetByID(mock.Anything, "u-1").Return(user, nil).Once()

		_, err := service.SubmitVIPPurchase(ctx, "u-1", 1)

		assert.True(t, errs.IsInsufficientFundsError(err))
		assert.Equal(t, int64(9999), user.Balance())
	})
}
