package scheduler

import (
	"context"
	"time"

	coreport "github.com/aabinvest/vip-ledger/internal/domain/port/core"
	usecaseport "github.com/aabinvest/vip-ledger/internal/domain/port/usecase"
	"github.com/aabinvest/vip-ledger/internal/domain/usecase/session"
	"github.com/go-co-op/gocron"
)

// DefaultTickInterval matches the dashboard's background refresh rate.
const DefaultTickInterval = 30 * time.Second

// Scheduler runs the periodic background tick: sweep all active VIP
// cycles for due accruals, then re-sync the active session so the
// dashboard view reflects fresh balances.
type Scheduler struct {
	cron     *gocron.Scheduler
	vipCycle usecaseport.VIPCycleUseCase
	sessions *session.Manager
	logger   coreport.Logger
	interval time.Duration
}

// NewScheduler creates the background scheduler. A non-positive
// interval falls back to the default tick.
func NewScheduler(vipCycle usecaseport.VIPCycleUseCase, sessions *session.Manager, logger coreport.Logger, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Scheduler{
		cron:     gocron.NewScheduler(time.UTC),
		vipCycle: vipCycle,
		sessions: sessions,
		logger:   logger,
		interval: interval,
	}
}

// Start registers the tick job and begins running it asynchronously
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.Every(s.interval).Do(func() {
		s.tick(ctx)
	})
	if err != nil {
		return err
	}

	s.cron.StartAsync()
	s.logger.Info("Background scheduler started", map[string]any{
		"interval": s.interval.String(),
	})
	return nil
}

// Stop halts the scheduler and waits for a running tick to finish
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.logger.Info("Background scheduler stopped", nil)
}

func (s *Scheduler) tick(ctx context.Context) {
	if err := s.vipCycle.SweepActive(ctx); err != nil {
		s.logger.Error("VIP cycle sweep failed", map[string]any{
			"error": err.Error(),
		})
	}
	if err := s.sessions.Sync(ctx); err != nil {
		s.logger.Error("Session sync failed", map[string]any{
			"error": err.Error(),
		})
	}
}
