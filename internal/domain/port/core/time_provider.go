package core

import (
	"context"
	"time"
)

// TimeProvider abstracts clock access so date-driven logic (daily
// profit accrual, cycle completion) is testable.
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
	WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc)
}
