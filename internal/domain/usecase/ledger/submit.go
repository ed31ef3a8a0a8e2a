package ledger

import (
	"context"
	"fmt"

	"github.com/aabinvest/vip-ledger/internal/domain/entity"
	errs "github.com/aabinvest/vip-ledger/internal/domain/error"
)

// SubmitRecharge appends a pending recharge request and its mirrored
// pending ledger entry. The balance is untouched until approval.
func (s *Service) SubmitRecharge(ctx context.Context, userID string, amount int64, proofRef string) (*entity.Request, error) {
	if err := validateRechargeAmount(amount); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	req, err := entity.NewRechargeRequest(s.idGen.NewID(), user.ID, amount, proofRef, s.timeProvider)
	if err != nil {
		return nil, err
	}

	txn, err := entity.NewTransaction(s.idGen.NewID(), user.ID, entity.TxTypeRecharge, amount, entity.TxPending, s.timeProvider)
	if err != nil {
		return nil, err
	}
	txn.RequestID = req.ID

	user.AppendRequest(req)
	user.AppendTransaction(txn)

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("Recharge request submitted", map[string]any{
		"userId":    user.ID,
		"requestId": req.ID,
		"amount":    amount,
		"proofRef":  proofRef,
	})
	return req, nil
}

// SubmitWithdrawal appends a pending withdrawal request and a pending
// ledger entry of -amount. The balance is NOT debited until approval;
// no reservation is held, so concurrent pending withdrawals may exceed
// the balance and the shortfall surfaces at approval time.
func (s *Service) SubmitWithdrawal(ctx context.Context, userID string, amount int64, phone, network string) (*entity.Request, error) {
	if err := validateWithdrawalAmount(amount); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !user.CanAfford(amount) {
		return nil, errs.NewInsufficientFundsError(user.ID, amount, user.Balance())
	}

	req, err := entity.NewWithdrawalRequest(s.idGen.NewID(), user.ID, amount, phone, network, s.timeProvider)
	if err != nil {
		return nil, err
	}

	txn, err := entity.NewTransaction(s.idGen.NewID(), user.ID, entity.TxTypeWithdrawal, -amount, entity.TxPending, s.timeProvider)
	if err != nil {
		return nil, err
	}
	txn.RequestID = req.ID

	user.AppendRequest(req)
	user.AppendTransaction(txn)

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("Withdrawal request submitted", map[string]any{
		"userId":    user.ID,
		"requestId": req.ID,
		"amount":    amount,
		"network":   network,
	})
	return req, nil
}

// SubmitVIPPurchase debits the tier price immediately and appends a
// pending VIP request plus a pending ledger entry of -price. The
// affordability check lives here, not in the caller.
func (s *Service) SubmitVIPPurchase(ctx context.Context, userID string, level int) (*entity.Request, error) {
	tier, err := entity.TierForLevel(level)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := user.Debit(tier.Price, s.timeProvider); err != nil {
		return nil, errs.NewInsufficientFundsError(user.ID, tier.Price, user.Balance())
	}

	req, err := entity.NewVIPRequest(s.idGen.NewID(), user.ID, tier, s.timeProvider)
	if err != nil {
		return nil, err
	}

	txn, err := entity.NewTransaction(s.idGen.NewID(), user.ID,
		fmt.Sprintf("VIP %d purchase", tier.Level), -tier.Price, entity.TxPending, s.timeProvider)
	if err != nil {
		return nil, err
	}
	txn.RequestID = req.ID

	user.AppendRequest(req)
	user.AppendTransaction(txn)

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("VIP purchase request submitted", map[string]any{
		"userId":     user.ID,
		"requestId":  req.ID,
		"level":      tier.Level,
		"price":      tier.Price,
		"newBalance": user.Balance(),
	})
	return req, nil
}
