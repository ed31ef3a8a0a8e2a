package session

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/aabinvest/vip-ledger/internal/domain/entity"
	errs "github.com/aabinvest/vip-ledger/internal/domain/error"
	coremocks "github.com/aabinvest/vip-ledger/mocks/port/core"
	persistencemocks "github.com/aabinvest/vip-ledger/mocks/port/persistence"
	sessionmocks "github.com/aabinvest/vip-ledger/mocks/port/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type managerMocks struct {
	store    *sessionmocks.MockStore
	userRepo *persistencemocks.MockUserRepository
	logger   *coremocks.MockLogger
}

func newTestManager(t *testing.T) (*Manager, *managerMocks) {
	m := &managerMocks{
		store:    sessionmocks.NewMockStore(t),
		userRepo: persistencemocks.NewMockUserRepository(t),
		logger:   coremocks.NewMockLogger(t),
	}
	m.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return NewManager(m.store, m.userRepo, m.logger), m
}

func TestSetActiveIdentity(t *testing.T) {
	ctx := context.Background()

	t.Run("Setting a user drops any admin session", func(t *testing.T) {
		manager, m := newTestManager(t)
		user := &entity.User{ID: "u-1", Email: "alice@example.com"}

		m.store.EXPECT().ClearAdmin(ctx).Return(nil).Once()
		m.store.EXPECT().SetUser(ctx, user).Return(nil).Once()

		require.NoError(t, manager.SetActiveUser(ctx, user))

		assert.Equal(t, user, manager.ActiveUser())
		assert.Nil(t, manager.ActiveAdmin())
	})

	t.Run("Setting an admin drops any user session", func(t *testing.T) {
		manager, m := newTestManager(t)
		admin := &entity.Admin{Email: "admin@aab.com", Name: "Admin"}

		m.store.EXPECT().ClearUser(ctx).Return(nil).Once()
		m.store.EXPECT().SetAdmin(ctx, admin).Return(nil).Once()

		require.NoError(t, manager.SetActiveAdmin(ctx, admin))

		assert.Equal(t, admin, manager.ActiveAdmin())
		assert.Nil(t, manager.ActiveUser())
	})

	t.Run("A store failure leaves the mirror untouched", func(t *testing.T) {
		manager, m := newTestManager(t)
		user := &entity.User{ID: "u-1"}

		m.store.EXPECT().ClearAdmin(ctx).Return(nil).Once()
		m.store.EXPECT().SetUser(ctx, user).Return(errs.ErrDatabaseConnection).Once()

		err := manager.SetActiveUser(ctx, user)

		assert.Equal(t, errs.ErrDatabaseConnection, err)
		assert.Nil(t, manager.ActiveUser())
	})

	t.Run("Clear logs out both slots", func(t *testing.T) {
		manager, m := newTestManager(t)
		user := &entity.User{ID: "u-1"}

		m.store.EXPECT().ClearAdmin(ctx).Return(nil).Once()
		m.store.EXPECT().SetUser(ctx, user).Return(nil).Once()
		require.NoError(t, manager.SetActiveUser(ctx, user))

		m.store.EXPECT().ClearUser(ctx).Return(nil).Once()
		m.store.EXPECT().ClearAdmin(ctx).Return(nil).Once()
		require.NoError(t, manager.Clear(ctx))

		assert.Nil(t, manager.ActiveUser())
		assert.Nil(t, manager.ActiveAdmin())
	})
}

func TestSync(t *testing.T) {
	ctx := context.Background()

	t.Run("No active user is a no-op", func(t *testing.T) {
		manager, _ := newTestManager(t)

		require.NoError(t, manager.Sync(ctx))
	})

	t.Run("Re-reads the canonical record and writes it through", func(t *testing.T) {
		manager, m := newTestManager(t)
		stale := &entity.User{ID: "u-1", Email: "alice@example.com"}
		stale.SetBalance(2000)
		fresh := &entity.User{ID: "u-1", Email: "alice@example.com"}
		fresh.SetBalance(12000)

		m.store.EXPECT().ClearAdmin(ctx).Return(nil).Once()
		m.store.EXPECT().SetUser(ctx, stale).Return(nil).Once()
		require.NoError(t, manager.SetActiveUser(ctx, stale))

		m.userRepo.EXPECT().GetByID(ctx, "u-1").Return(fresh, nil).Once()
		m.store.EXPECT().SetUser(ctx, fresh).Return(nil).Once()

		require.NoError(t, manager.Sync(ctx))
		assert.Equal(t, int64(12000), manager.ActiveUser().Balance())
	})

	t.Run("A user deleted underneath the session is logged out", func(t *testing.T) {
		manager, m := newTestManager(t)
		user := &entity.User{ID: "u-1"}

		m.store.EXPECT().ClearAdmin(ctx).Return(nil).Once()
		m.store.EXPECT().SetUser(ctx, user).Return(nil).Once()
		require.NoError(t, manager.SetActiveUser(ctx, user))

		m.userRepo.EXPECT().GetByID(ctx, "u-1").Return(nil, errs.ErrUserNotFound).Once()
		m.store.EXPECT().ClearUser(ctx).Return(nil).Once()
		m.store.EXPECT().ClearAdmin(ctx).Return(nil).Once()

		require.NoError(t, manager.Sync(ctx))
		assert.Nil(t, manager.ActiveUser())
	})
}

func TestFollow(t *testing.T) {
	t.Run("Published payloads overwrite the mirror wholesale", func(t *testing.T) {
		manager, m := newTestManager(t)
		userCh := make(chan []byte, 1)
		adminCh := make(chan []byte, 1)

		m.store.EXPECT().Subscribe(mock.Anything, "current_user").Return((<-chan []byte)(userCh), nil).Once()
		m.store.EXPECT().Subscribe(mock.Anything, "current_admin").Return((<-chan []byte)(adminCh), nil).Once()

		require.NoError(t, manager.Follow(context.Background()))
		defer manager.Stop()

		user := &entity.User{ID: "u-1", Email: "alice@example.com"}
		user.SetBalance(12000)
		payload, err := json.Marshal(user)
		require.NoError(t, err)
		userCh <- payload

		require.Eventually(t, func() bool {
			active := manager.ActiveUser()
			return active != nil && active.Balance() == 12000
		}, time.Second, 10*time.Millisecond)
	})

	t.Run("An empty payload logs the identity out", func(t *testing.T) {
		manager, m := newTestManager(t)
		userCh := make(chan []byte, 1)
		adminCh := make(chan []byte, 1)

		m.store.EXPECT().Subscribe(mock.Anything, "current_user").Return((<-chan []byte)(userCh), nil).Once()
		m.store.EXPECT().Subscribe(mock.Anything, "current_admin").Return((<-chan []byte)(adminCh), nil).Once()

		require.NoError(t, manager.Follow(context.Background()))
		defer manager.Stop()

		user := &entity.User{ID: "u-1"}
		payload, err := json.Marshal(user)
		require.NoError(t, err)
		userCh <- payload
		require.Eventually(t, func() bool {
			return manager.ActiveUser() != nil
		}, time.Second, 10*time.Millisecond)

		userCh <- nil
		require.Eventually(t, func() bool {
			return manager.ActiveUser() == nil
		}, time.Second, 10*time.Millisecond)
	})

	t.Run("A malformed payload is discarded", func(t *testing.T) {
		manager, m := newTestManager(t)
		userCh := make(chan []byte, 1)
		adminCh := make(chan []byte, 1)

		m.store.EXPECT().Subscribe(mock.Anything, "current_user").Return((<-chan []byte)(userCh), nil).Once()
		m.store.EXPECT().Subscribe(mock.Anything, "current_admin").Return((<-chan []byte)(adminCh), nil).Once()

		require.NoError(t, manager.Follow(context.Background()))
		defer manager.Stop()

		userCh <- []byte("{not json")

		// The mirror must stay empty; give the goroutine time to consume.
		assert.Never(t, func() bool {
			return manager.ActiveUser() != nil
		}, 100*time.Millisecond, 10*time.Millisecond)
	})

	t.Run("A subscription failure aborts Follow", func(t *testing.T) {
		manager, m := newTestManager(t)

		m.store.EXPECT().Subscribe(mock.Anything, "current_user").Return(nil, errs.ErrDatabaseConnection).Once()

		err := manager.Follow(context.Background())

		assert.Equal(t, errs.ErrDatabaseConnection, err)
	})
}
