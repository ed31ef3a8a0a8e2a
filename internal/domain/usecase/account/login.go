package account

import (
	"context"

	"github.com/aabinvest/vip-ledger/internal/domain/entity"
	errs "github.com/aabinvest/vip-ledger/internal/domain/error"
)

// Login authenticates a user by plaintext equality on (email,
// password). The first login with a valid non-default invite code
// grants the inviter a flat bonus and links the accounts.
func (s *Service) Login(ctx context.Context, email, password, inviteCode string) (*entity.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errs.IsNotFoundError(err) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}
	if user.Password != password {
		return nil, errs.ErrInvalidCredentials
	}

	if err := s.processInvitation(ctx, user, inviteCode); err != nil {
		// Invitation processing never blocks the login itself.
		s.logger.Error("Failed to process login invitation", map[string]any{
			"userId": user.ID,
			"error":  err.Error(),
		})
	}

	s.logger.Info("User logged in", map[string]any{
		"userId": user.ID,
		"email":  user.Email,
	})
	return user, nil
}

// AdminLogin authenticates an administrator.
func (s *Service) AdminLogin(ctx context.Context, email, password string) (*entity.Admin, error) {
	admin, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		if errs.IsNotFoundError(err) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}
	if !admin.CheckCredentials(email, password) {
		return nil, errs.ErrInvalidCredentials
	}

	s.logger.Info("Admin logged in", map[string]any{"email": admin.Email})
	return admin, nil
}

// processInvitation applies the one-time login invite bonus: the
// inviter is credited LoginInviteBonus and gains a referral record,
// the user is marked as having used an invite.
func (s *Service) processInvitation(ctx context.Context, user *entity.User, inviteCode string) error {
	if inviteCode == "" || inviteCode == DefaultInviteCode || user.HasUsedInvite {
		return nil
	}

	inviter, err := s.userRepo.GetByInvitationCode(ctx, inviteCode)
	if err != nil {
		if errs.IsNotFoundError(err) {
			return nil
		}
		return err
	}

	inviter.AddReferral(user.Email, LoginInviteBonus, s.timeProvider)
	inviter.Credit(LoginInviteBonus, s.timeProvider)
	inviter.ReferralEarnings += LoginInviteBonus

	txn, err := entity.NewTransaction(s.idGen.NewID(), inviter.ID,
		"referral bonus", LoginInviteBonus, entity.TxCompleted, s.timeProvider)
	if err != nil {
		return err
	}
	inviter.AppendTransaction(txn)

	if err := s.userRepo.Save(ctx, inviter); err != nil {
		return err
	}

	user.InvitedBy = inviter.Email
	user.HasUsedInvite = true
	if err := s.userRepo.Save(ctx, user); err != nil {
		return err
	}

	s.logger.Info("Login invitation processed", map[string]any{
		"userId":    user.ID,
		"inviterId": inviter.ID,
		"bonus":     LoginInviteBonus,
	})
	return nil
}
