package ledger

import (
	coreport "github.com/aabinvest/vip-ledger/internal/domain/port/core"
	"github.com/aabinvest/vip-ledger/internal/domain/port/persistence"
)

// Amount bounds in whole currency units
const (
	MinRechargeAmount   int64 = 10000
	MinWithdrawalAmount int64 = 5000
	MaxWithdrawalAmount int64 = 2000000
)

// ReferralBonusPercent of an approved recharge goes to the inviter,
// rounded down.
const ReferralBonusPercent int64 = 15

// Service is the ledger and request engine. Submissions append pending
// requests plus mirrored ledger entries; admin decisions settle both
// and mutate balances. The one two-record mutation (referral bonus)
// runs inside the unit of work so it applies both sides or neither.
type Service struct {
	uow          persistence.UnitOfWork
	userRepo     persistence.UserRepository
	idGen        coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates the ledger engine with its dependencies.
func NewService(
	uow persistence.UnitOfWork,
	userRepo persistence.UserRepository,
	idGen coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:          uow,
		userRepo:     userRepo,
		idGen:        idGen,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// referralBonus computes the inviter's cut of an approved recharge.
func referralBonus(amount int64) int64 {
	return amount * ReferralBonusPercent / 100
}
