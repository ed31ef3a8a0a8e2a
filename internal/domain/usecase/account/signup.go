package account

import (
	"context"

	"github.com/aabinvest/vip-ledger/internal/domain/entity"
	errs "github.com/aabinvest/vip-ledger/internal/domain/error"
	"github.com/aabinvest/vip-ledger/internal/domain/port/usecase"
)

// Signup registers a new user: validates the form, seeds the signup
// bonus with its completed ledger entry, issues a unique invitation
// code, and records the inviter's referral entry (bonus 0 at signup)
// when a valid non-default invite code was supplied.
func (s *Service) Signup(ctx context.Context, input usecase.SignupInput) (*entity.User, error) {
	if input.Password != input.ConfirmPassword {
		return nil, errs.ErrPasswordMismatch
	}

	if _, err := s.userRepo.GetByEmail(ctx, input.Email); err == nil {
		return nil, errs.ErrDuplicateEmail
	} else if !errs.IsNotFoundError(err) {
		return nil, err
	}

	code, err := s.generateInvitationCode(ctx)
	if err != nil {
		return nil, err
	}

	user, err := entity.NewUser(s.idGen.NewID(), input.Name, input.Email, input.Phone, input.Password, code, s.timeProvider)
	if err != nil {
		return nil, err
	}

	// The inviter link is resolved at signup; the bonus itself is only
	// granted when a referred recharge is approved or on first login.
	inviter := s.resolveInviter(ctx, input.InviteCode)
	if inviter != nil {
		user.InvitedBy = inviter.Email
		user.HasUsedInvite = true
	}

	bonusTxn, err := entity.NewTransaction(s.idGen.NewID(), user.ID, entity.TxTypeBonus,
		entity.SignupBonus, entity.TxCompleted, s.timeProvider)
	if err != nil {
		return nil, err
	}
	user.AppendTransaction(bonusTxn)

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	if inviter != nil {
		inviter.AddReferral(user.Email, 0, s.timeProvider)
		if err := s.userRepo.Save(ctx, inviter); err != nil {
			s.logger.Error("Failed to record signup referral", map[string]any{
				"inviterId": inviter.ID,
				"userId":    user.ID,
				"error":     err.Error(),
			})
		}
	}

	s.logger.Info("User registered", map[string]any{
		"userId":         user.ID,
		"email":          user.Email,
		"invitationCode": user.InvitationCode,
		"invitedBy":      user.InvitedBy,
	})
	return user, nil
}

// resolveInviter maps an invite code to its owner. The default code
// and unknown codes resolve to no inviter.
func (s *Service) resolveInviter(ctx context.Context, inviteCode string) *entity.User {
	if inviteCode == "" || inviteCode == DefaultInviteCode {
		return nil
	}
	inviter, err := s.userRepo.GetByInvitationCode(ctx, inviteCode)
	if err != nil {
		return nil
	}
	return inviter
}
