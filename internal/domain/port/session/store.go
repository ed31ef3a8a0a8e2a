package session

import (
	"context"

	"github.com/aabinvest/vip-ledger/internal/domain/entity"
)

// Slot names for the persisted session pointers. At most one of each
// is non-empty; user and admin are mutually exclusive in practice.
const (
	SlotUser  = "current_user"
	SlotAdmin = "current_admin"
)

// Store holds the serialized active identity per named slot and
// pushes change notifications to other views of the same store.
// Receivers overwrite their in-memory mirror wholesale, not merge.
type Store interface {
	// SetUser writes the user slot and publishes the new value
	SetUser(ctx context.Context, user *entity.User) error

	// GetUser reads the user slot; nil when no user is logged in
	GetUser(ctx context.Context) (*entity.User, error)

	// ClearUser empties the user slot and publishes the removal
	ClearUser(ctx context.Context) error

	// SetAdmin writes the admin slot and publishes the new value
	SetAdmin(ctx context.Context, admin *entity.Admin) error

	// GetAdmin reads the admin slot; nil when no admin is logged in
	GetAdmin(ctx context.Context) (*entity.Admin, error)

	// ClearAdmin empties the admin slot and publishes the removal
	ClearAdmin(ctx context.Context) error

	// Subscribe delivers every published value for a slot until the
	// context is cancelled. The payload is the serialized identity,
	// empty on removal.
	Subscribe(ctx context.Context, slot string) (<-chan []byte, error)
}
