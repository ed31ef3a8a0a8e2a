package vipcycle

import (
	"context"
	"fmt"
	"time"

	"github.com/aabinvest/vip-ledger/internal/domain/entity"
	coreport "github.com/aabinvest/vip-ledger/internal/domain/port/core"
	"github.com/aabinvest/vip-ledger/internal/domain/port/persistence"
	"github.com/aabinvest/vip-ledger/internal/domain/port/usecase"
)

// Scheduler drives the per-user VIP state machine:
// inactive -> active (accruing one profit credit per calendar day)
// -> inactive after 60 days. There is no background ownership of a
// user's cycle; evaluation happens whenever it is invoked and is
// idempotent within a calendar day.
type Scheduler struct {
	userRepo     persistence.UserRepository
	idGen        coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewScheduler creates a VIP cycle scheduler.
func NewScheduler(
	userRepo persistence.UserRepository,
	idGen coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Scheduler {
	return &Scheduler{
		userRepo:     userRepo,
		idGen:        idGen,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Evaluate runs one pass of the state machine for a user.
func (s *Scheduler) Evaluate(ctx context.Context, userID string) (*usecase.CycleEvaluation, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.evaluateUser(ctx, user)
}

// SweepActive evaluates every user currently inside a VIP cycle. Used
// by the periodic job; a failure for one user does not stop the sweep.
func (s *Scheduler) SweepActive(ctx context.Context) error {
	users, err := s.userRepo.ListActiveVIP(ctx)
	if err != nil {
		return err
	}

	for _, user := range users {
		if _, err := s.evaluateUser(ctx, user); err != nil {
			s.logger.Error("VIP sweep failed for user", map[string]any{
				"userId": user.ID,
				"error":  err.Error(),
			})
		}
	}
	return nil
}

func (s *Scheduler) evaluateUser(ctx context.Context, user *entity.User) (*usecase.CycleEvaluation, error) {
	// Inactive subscriptions are a no-op.
	if !user.HasActiveVIP() {
		return &usecase.CycleEvaluation{Day: user.VIPDaysCompleted}, nil
	}

	now := s.timeProvider.Now()
	daysSinceApproval := int(now.Sub(*user.VIPApprovedDate) / (24 * time.Hour))

	if daysSinceApproval >= entity.CycleDays {
		level := user.VIPLevel
		user.CompleteVIPCycle(s.timeProvider)
		if err := s.userRepo.Save(ctx, user); err != nil {
			return nil, err
		}
		s.logger.Info("VIP cycle completed", map[string]any{
			"userId": user.ID,
			"level":  level,
		})
		return &usecase.CycleEvaluation{
			CycleCompleted: true,
			Day:            user.VIPDaysCompleted,
		}, nil
	}

	// Accrual is keyed on the calendar date, not elapsed hours:
	// at most one credit per distinct UTC day.
	if user.LastProfitDate != nil && sameCalendarDay(*user.LastProfitDate, now) {
		return &usecase.CycleEvaluation{Day: user.VIPDaysCompleted}, nil
	}

	level := user.VIPLevel
	profit := user.AccrueDailyProfit(s.timeProvider)

	txn, err := entity.NewTransaction(s.idGen.NewID(), user.ID,
		fmt.Sprintf("VIP %d daily profit (Day %d/%d)", level, user.VIPDaysCompleted, entity.CycleDays),
		profit, entity.TxCompleted, s.timeProvider)
	if err != nil {
		return nil, err
	}
	user.AppendTransaction(txn)

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("VIP daily profit accrued", map[string]any{
		"userId": user.ID,
		"level":  level,
		"profit": profit,
		"day":    user.VIPDaysCompleted,
	})
	return &usecase.CycleEvaluation{
		Accrued: true,
		Profit:  profit,
		Day:     user.VIPDaysCompleted,
	}, nil
}

// sameCalendarDay compares the UTC calendar dates of two instants.
func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
