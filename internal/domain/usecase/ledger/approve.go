package ledger

import (
	"context"

	"github.com/aabinvest/vip-ledger/internal/domain/entity"
	errs "github.com/aabinvest/vip-ledger/internal/domain/error"
)

// pendingRequest locates an owned request by ID and checks kind and
// pending status. Deciding a settled request is always an error, which
// makes admin decisions idempotent-safe.
func pendingRequest(user *entity.User, requestID string, kind entity.RequestKind) (*entity.Request, error) {
	req, err := user.FindRequest(requestID)
	if err != nil {
		return nil, err
	}
	if req.Kind != kind {
		return nil, errs.ErrRequestNotFound
	}
	if !req.IsPending() {
		return nil, errs.NewRequestError(req.ID, user.ID, string(kind),
			"request already decided", errs.ErrRequestDecided)
	}
	return req, nil
}

// ApproveRecharge credits the requested amount, settles the mirrored
// ledger entry and propagates the referral bonus when the user was
// referred. The whole decision runs inside one unit of work because
// the bonus touches a second record.
func (s *Service) ApproveRecharge(ctx context.Context, userID, requestID string) error {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return err
	}
	repo := s.uow.GetUserRepository(txCtx)

	user, err := repo.GetByID(txCtx, userID)
	if err != nil {
		return s.rollback(txCtx, err)
	}

	req, err := pendingRequest(user, requestID, entity.KindRecharge)
	if err != nil {
		return s.rollback(txCtx, err)
	}

	if err := req.Approve(); err != nil {
		return s.rollback(txCtx, err)
	}
	user.Credit(req.Amount, s.timeProvider)

	if err := s.settleMirror(user, req.ID, entity.TxCompleted); err != nil {
		return s.rollback(txCtx, err)
	}

	if err := repo.Save(txCtx, user); err != nil {
		return s.rollback(txCtx, err)
	}

	if user.InvitedBy != "" {
		if err := s.processReferralBonus(txCtx, repo, user, req.Amount); err != nil {
			return s.rollback(txCtx, err)
		}
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return err
	}

	s.logger.Info("Recharge approved", map[string]any{
		"userId":     user.ID,
		"requestId":  req.ID,
		"amount":     req.Amount,
		"newBalance": user.Balance(),
	})
	return nil
}

// RejectRecharge settles the request and its ledger entry as rejected.
// No balance change: nothing was credited at submission.
func (s *Service) RejectRecharge(ctx context.Context, userID, requestID string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	req, err := pendingRequest(user, requestID, entity.KindRecharge)
	if err != nil {
		return err
	}

	if err := req.Reject(); err != nil {
		return err
	}
	if err := s.settleMirror(user, req.ID, entity.TxRejected); err != nil {
		return err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return err
	}

	s.logger.Info("Recharge rejected", map[string]any{
		"userId":    user.ID,
		"requestId": req.ID,
		"amount":    req.Amount,
	})
	return nil
}

// ApproveWithdrawal debits the balance at approval time. When the
// balance no longer covers the request, the operation reports
// insufficient funds and leaves everything unchanged.
func (s *Service) ApproveWithdrawal(ctx context.Context, userID, requestID string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	req, err := pendingRequest(user, requestID, entity.KindWithdrawal)
	if err != nil {
		return err
	}

	if err := user.Debit(req.Amount, s.timeProvider); err != nil {
		s.logger.Warn("Withdrawal approval with insufficient funds", map[string]any{
			"userId":    user.ID,
			"requestId": req.ID,
			"amount":    req.Amount,
			"balance":   user.Balance(),
		})
		return errs.NewInsufficientFundsError(user.ID, req.Amount, user.Balance())
	}

	if err := req.Approve(); err != nil {
		return err
	}
	if err := s.settleMirror(user, req.ID, entity.TxCompleted); err != nil {
		return err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return err
	}

	s.logger.Info("Withdrawal approved", map[string]any{
		"userId":     user.ID,
		"requestId":  req.ID,
		"amount":     req.Amount,
		"newBalance": user.Balance(),
	})
	return nil
}

// RejectWithdrawal settles the request as rejected. No balance change:
// the balance was never debited at submission.
func (s *Service) RejectWithdrawal(ctx context.Context, userID, requestID string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	req, err := pendingRequest(user, requestID, entity.KindWithdrawal)
	if err != nil {
		return err
	}

	if err := req.Reject(); err != nil {
		return err
	}
	if err := s.settleMirror(user, req.ID, entity.TxRejected); err != nil {
		return err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return err
	}

	s.logger.Info("Withdrawal rejected", map[string]any{
		"userId":    user.ID,
		"requestId": req.ID,
		"amount":    req.Amount,
	})
	return nil
}

// ApproveVIP activates the requested tier, restarting any prior cycle:
// approval date is stamped now, the day counter resets and the last
// profit date clears.
func (s *Service) ApproveVIP(ctx context.Context, userID, requestID string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	req, err := pendingRequest(user, requestID, entity.KindVIP)
	if err != nil {
		return err
	}

	tier, err := entity.TierForLevel(req.Level)
	if err != nil {
		return err
	}

	if err := req.Approve(); err != nil {
		return err
	}
	user.ActivateVIP(tier, s.timeProvider)

	if err := s.settleMirror(user, req.ID, entity.TxCompleted); err != nil {
		return err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return err
	}

	s.logger.Info("VIP purchase approved", map[string]any{
		"userId":      user.ID,
		"requestId":   req.ID,
		"level":       tier.Level,
		"dailyProfit": tier.DailyProfit,
	})
	return nil
}

// RejectVIP refunds the price (debited at submission) and marks the
// ledger entry refunded.
func (s *Service) RejectVIP(ctx context.Context, userID, requestID string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	req, err := pendingRequest(user, requestID, entity.KindVIP)
	if err != nil {
		return err
	}

	if err := req.Reject(); err != nil {
		return err
	}
	user.Credit(req.Amount, s.timeProvider)

	if err := s.settleMirror(user, req.ID, entity.TxRefunded); err != nil {
		return err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return err
	}

	s.logger.Info("VIP purchase rejected and refunded", map[string]any{
		"userId":     user.ID,
		"requestId":  req.ID,
		"refund":     req.Amount,
		"newBalance": user.Balance(),
	})
	return nil
}

// settleMirror transitions the ledger entry created alongside a
// request. Entries are matched by request ID, never by amount.
func (s *Service) settleMirror(user *entity.User, requestID string, to entity.TransactionStatus) error {
	txn, err := user.FindTransactionByRequest(requestID)
	if err != nil {
		return err
	}
	switch to {
	case entity.TxCompleted:
		return txn.Complete()
	case entity.TxRejected:
		return txn.Reject()
	case entity.TxRefunded:
		return txn.Refund()
	default:
		return errs.ErrInternalServer
	}
}

// rollback discards the unit of work and passes the original error
// through, logging a rollback failure when one happens on top.
func (s *Service) rollback(txCtx context.Context, cause error) error {
	if err := s.uow.Rollback(txCtx); err != nil {
		s.logger.Error("Rollback failed", map[string]any{
			"cause": cause.Error(),
			"error": err.Error(),
		})
	}
	return cause
}
