package persistence

import (
	"context"

	"github.com/aabinvest/vip-ledger/internal/domain/entity"
)

// AdminRepository stores administrator records.
type AdminRepository interface {
	// GetByEmail retrieves an admin by email
	//
	// Possible errors:
	// - ErrAdminNotFound: if no admin with the given email exists
	GetByEmail(ctx context.Context, email string) (*entity.Admin, error)

	// Create persists a new admin record
	Create(ctx context.Context, admin *entity.Admin) error

	// Count returns the number of admin records, used to decide
	// whether the default admin must be seeded
	Count(ctx context.Context) (int64, error)
}
