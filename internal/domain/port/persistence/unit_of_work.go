package persistence

import (
	"context"
)

// UnitOfWork coordinates multi-record mutations so they apply both or
// neither. The referral bonus (inviter credit + referee record) is the
// one two-sided mutation in the system and must run inside it.
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetUserRepository returns a user repository bound to the current transaction
	GetUserRepository(ctx context.Context) UserRepository
}
