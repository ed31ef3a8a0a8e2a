package ledger

import (
	"fmt"

	errs "github.com/aabinvest/vip-ledger/internal/domain/error"
)

// validateRechargeAmount enforces the recharge floor.
func validateRechargeAmount(amount int64) error {
	if amount < MinRechargeAmount {
		return errs.NewValidationError("amount",
			fmt.Sprintf("minimum recharge amount is %d", MinRechargeAmount))
	}
	return nil
}

// validateWithdrawalAmount enforces the withdrawal bounds. The balance
// check at submission time is separate: balance is not reserved, it is
// re-checked at approval time.
func validateWithdrawalAmount(amount int64) error {
	if amount < MinWithdrawalAmount || amount > MaxWithdrawalAmount {
		return errs.NewValidationError("amount",
			fmt.Sprintf("withdrawal amount must be between %d and %d",
				MinWithdrawalAmount, MaxWithdrawalAmount))
	}
	return nil
}
