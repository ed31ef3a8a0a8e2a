package persistence

import (
	"context"

	"github.com/aabinvest/vip-ledger/internal/domain/entity"
)

// UserRepository is the authoritative store of user records. Lookups
// return the full aggregate (transactions, requests, referrals);
// Save persists the aggregate wholesale, mirroring the original
// read-everything / write-everything contract behind an interface.
type UserRepository interface {
	// GetByID retrieves a user aggregate by ID
	//
	// Possible errors:
	// - ErrUserNotFound: if no user with the given ID exists
	// - ErrDatabaseConnection: if the store is unreachable
	GetByID(ctx context.Context, id string) (*entity.User, error)

	// GetByEmail retrieves a user aggregate by unique email
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// GetByInvitationCode retrieves the user owning an invitation code
	GetByInvitationCode(ctx context.Context, code string) (*entity.User, error)

	// Create persists a new user aggregate
	//
	// Possible errors:
	// - ErrDuplicateEmail: if the email is already registered
	Create(ctx context.Context, user *entity.User) error

	// Save persists all mutations to an existing aggregate, including
	// appended transactions, requests and referral records
	Save(ctx context.Context, user *entity.User) error

	// Delete removes the user and every owned request, transaction and
	// referral row as one atomic unit. No tombstone remains.
	Delete(ctx context.Context, id string) error

	// List returns all user aggregates, ordered by creation time
	List(ctx context.Context) ([]*entity.User, error)

	// ListActiveVIP returns users currently inside a VIP cycle
	ListActiveVIP(ctx context.Context) ([]*entity.User, error)

	// InvitationCodeExists reports whether a code is already issued.
	// Used by rejection-sampling code generation.
	InvitationCodeExists(ctx context.Context, code string) (bool, error)
}
