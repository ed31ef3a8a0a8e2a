package usecase

import (
	"context"
)

// CycleEvaluation reports what one scheduler pass did for a user.
type CycleEvaluation struct {
	Accrued        bool  // one daily profit credit was applied
	CycleCompleted bool  // the 60-day cycle terminated on this pass
	Profit         int64 // amount credited when Accrued
	Day            int   // cycle day counter after this pass
}

// VIPCycleUseCase drives the per-user daily profit state machine.
// Evaluate is idempotent within one calendar day.
type VIPCycleUseCase interface {
	Evaluate(ctx context.Context, userID string) (*CycleEvaluation, error)
	SweepActive(ctx context.Context) error
}
