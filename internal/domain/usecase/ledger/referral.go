package ledger

import (
	"context"
	"fmt"

	"github.com/aabinvest/vip-ledger/internal/domain/entity"
	errs "github.com/aabinvest/vip-ledger/internal/domain/error"
	"github.com/aabinvest/vip-ledger/internal/domain/port/persistence"
)

// processReferralBonus credits the inviter 15% of the referee's
// approved recharge, folds it into the inviter's referral record for
// this referee, and appends one completed ledger entry on the
// inviter's side. The referee's balance is never touched, so no entry
// is written for the referee.
//
// Runs inside the caller's unit of work: an inviter that vanished
// since signup (deleted account, dangling email) is not an error, the
// bonus is simply skipped.
func (s *Service) processReferralBonus(ctx context.Context, repo persistence.UserRepository, referee *entity.User, baseAmount int64) error {
	inviter, err := repo.GetByEmail(ctx, referee.InvitedBy)
	if err != nil {
		if errs.IsNotFoundError(err) {
			s.logger.Warn("Inviter no longer exists, skipping referral bonus", map[string]any{
				"userId":    referee.ID,
				"invitedBy": referee.InvitedBy,
			})
			return nil
		}
		return err
	}

	bonus := referralBonus(baseAmount)
	inviter.CreditReferralBonus(referee.Email, bonus, s.timeProvider)

	txn, err := entity.NewTransaction(s.idGen.NewID(), inviter.ID,
		fmt.Sprintf("referral bonus from %s", referee.Email),
		bonus, entity.TxCompleted, s.timeProvider)
	if err != nil {
		return err
	}
	inviter.AppendTransaction(txn)

	if err := repo.Save(ctx, inviter); err != nil {
		return err
	}

	s.logger.Info("Referral bonus credited", map[string]any{
		"inviterId":  inviter.ID,
		"refereeId":  referee.ID,
		"baseAmount": baseAmount,
		"bonus":      bonus,
	})
	return nil
}
