package account

import (
	"context"
	"testing"
	"time"

	"github.com/aabinvest/vip-ledger/internal/domain/entity"
	errs "github.com/aabinvest/vip-ledger/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Authenticates a registered user", func(t *testing.T) {
		service, m := newTestService(t, fixedTime)
		user := &entity.User{ID: "u-1", Email: "alice@example.com", Password: "secret1"}

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(user, nil).Once()

		got, err := service.Login(ctx, "alice@example.com", "secret1", "")

		require.NoError(t, err)
		assert.Equal(t, user, got)
	})

	t.Run("Rejects a wrong password", func(t *testing.T) {
		service, m := newTestService(t, fixedTime)
		user := &entity.User{ID: "u-1", Email: "alice@example.com", Password: "secret1"}

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(user, nil).Once()

		_, err := service.Login(ctx, "alice@example.com", "wrong", "")

		assert.Equal(t, errs.ErrInvalidCredentials, err)
	})

	t.Run("Maps an unknown email to invalid credentials", func(t *testing.T) {
		service, m := newTestService(t, fixedTime)

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "ghost@example.com").Return(nil, errs.ErrUserNotFound).Once()

		_, err := service.Login(ctx, "ghost@example.com", "secret1", "")

		assert.Equal(t, errs.ErrInvalidCredentials, err)
	})

	t.Run("Grants the inviter a flat bonus on first invited login", func(t *testing.T) {
		service, m := newTestService(t, fixedTime)
		user := &entity.User{ID: "u-1", Email: "alice@example.com", Password: "secret1"}
		inviter := &entity.User{ID: "u-0", Email: "bob@example.com", InvitationCode: "5521"}
		inviter.SetBalance(2000)

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(user, nil).Once()
		m.userRepo.EXPECT().GetByInvitationCode(mock.Anything, "5521").Return(inviter, nil).Once()
		m.idGen.EXPECT().NewID().Return("txn-1").Once()
		m.userRepo.EXPECT().Save(mock.Anything, inviter).Return(nil).Once()
		m.userRepo.EXPECT().Save(mock.Anything, user).Return(nil).Once()

		got, err := service.Login(ctx, "alice@example.com", "secret1", "5521")

		require.NoError(t, err)
		assert.Equal(t, int64(4000), inviter.Balance())
		assert.Equal(t, LoginInviteBonus, inviter.ReferralEarnings)
		require.Len(t, inviter.Referrals, 1)
		assert.Equal(t, LoginInviteBonus, inviter.Referrals[0].Bonus)
		require.Len(t, inviter.Transactions, 1)
		assert.Equal(t, "referral bonus", inviter.Transactions[0].Type)

		assert.Equal(t, "bob@example.com", got.InvitedBy)
		assert.True(t, got.HasUsedInvite)
	})

	t.Run("Pays the invite bonus at most once", func(t *testing.T) {
		service, m := newTestService(t, fixedTime)
		user := &entity.User{
			ID: "u-1", Email: "alice@example.com", Password: "secret1",
			InvitedBy: "bob@example.com", HasUsedInvite: true,
		}

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(user, nil).Once()

		_, err := service.Login(ctx, "alice@example.com", "secret1", "5521")

		require.NoError(t, err)
	})

	t.Run("The default code never pays a bonus", func(t *testing.T) {
		service, m := newTestService(t, fixedTime)
		user := &entity.User{ID: "u-1", Email: "alice@example.com", Password: "secret1"}

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(user, nil).Once()

		_, err := service.Login(ctx, "alice@example.com", "secret1", DefaultInviteCode)

		require.NoError(t, err)
		assert.False(t, user.HasUsedInvite)
	})

	t.Run("An unknown code does not block the login", func(t *testing.T) {
		service, m := newTestService(t, fixedTime)
		user := &entity.User{ID: "u-1", Email: "alice@example.com", Password: "secret1"}

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(user, nil).Once()
		m.userRepo.EXPECT().GetByInvitationCode(mock.Anything, "9999").Return(nil, errs.ErrUserNotFound).Once()

		got, err := service.Login(ctx, "alice@example.com", "secret1", "9999")

		require.NoError(t, err)
		assert.False(t, got.HasUsedInvite)
	})
}

func TestAdminLogin(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Authenticates an administrator", func(t *testing.T) {
		service, m := newTestService(t, fixedTime)
		admin := &entity.Admin{Email: "admin@aab.com", Password: "admin123", Name: "Admin"}

		m.adminRepo.EXPECT().GetByEmail(mock.Anything, "admin@aab.com").Return(admin, nil).Once()

		got, err := service.AdminLogin(ctx, "admin@aab.com", "admin123")

		require.NoError(t, err)
		assert.Equal(t, admin, got)
	})

	t.Run("Rejects a wrong password", func(t *testing.T) {
		service, m := newTestService(t, fixedTime)
		admin := &entity.Admin{Email: "admin@aab.com", Password: "admin123", Name: "Admin"}

		m.adminRepo.EXPECT().GetByEmail(mock.Anything, "admin@aab.com").Return(admin, nil).Once()

		_, err := service.AdminLogin(ctx, "admin@aab.com", "wrong")

		assert.Equal(t, errs.ErrInvalidCredentials, err)
	})

	t.Run("Maps an unknown email to invalid credentials", func(t *testing.T) {
		service, m := newTestService(t, fixedTime)

		m.adminRepo.EXPECT().GetByEmail(mock.Anything, "ghost@aab.com").Return(nil, errs.ErrAdminNotFound).Once()

		_, err := service.AdminLogin(ctx, "ghost@aab.com", "admin123")

		assert.Equal(t, errs.ErrInvalidCredentials, err)
	})
}
